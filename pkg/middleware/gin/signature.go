/*
Copyright 2024 The BizDock Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package gin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bizdock/jira-link/pkg/setting"
	"github.com/bizdock/jira-link/pkg/tool/log"
)

// SignatureVerifier checks a request signature against the current shared
// secret.
type SignatureVerifier interface {
	Verify(signature, requestURI string, timestamp int64) (bool, error)
}

// Signature rejects every request whose signature headers do not match the
// shared secret. The signed URI is the path plus the raw query when present,
// so tampering with query parameters breaks the signature too.
func Signature(verifier SignatureVerifier, skippedPaths ...string) gin.HandlerFunc {
	skipped := make(map[string]bool, len(skippedPaths))
	for _, p := range skippedPaths {
		skipped[p] = true
	}

	return func(c *gin.Context) {
		if skipped[c.Request.URL.Path] {
			c.Next()
			return
		}

		signature := c.GetHeader(setting.AuthSignatureHeader)
		timestamp, err := strconv.ParseInt(c.GetHeader(setting.AuthTimestampHeader), 10, 64)
		if err != nil {
			log.Warnf("rejected call to %s: bad timestamp header: %v", c.Request.URL.Path, err)
			abortUnauthenticated(c)
			return
		}

		requestURI := c.Request.URL.Path
		if query := c.Request.URL.RawQuery; query != "" {
			requestURI = requestURI + "?" + query
		}

		ok, err := verifier.Verify(signature, requestURI, timestamp)
		if err != nil {
			log.Errorf("failed to verify signature for %s: %v", requestURI, err)
			abortUnauthenticated(c)
			return
		}
		if !ok {
			log.Warnf("rejected call to %s from %s: signature mismatch", requestURI, c.ClientIP())
			abortUnauthenticated(c)
			return
		}

		c.Next()
	}
}

func abortUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"message": "authentication failed, API call rejected",
		"code":    "unexpected",
	})
}
