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

package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bizdock/jira-link/core"
	"github.com/bizdock/jira-link/pkg/setting"
	internalhandler "github.com/bizdock/jira-link/pkg/shared/handler"
)

type pingResp struct {
	Message              string `json:"message"`
	RequestURI           string `json:"requestURI"`
	AuthenticationHeader string `json:"authenticationHeader"`
	TimeStampHeader      string `json:"timeStampHeader"`
	Authenticated        bool   `json:"authenticated"`
}

// Ping is the unauthenticated liveness probe. It reports whether the
// presented signature would have passed, so a misconfigured caller can see
// exactly what the bridge received.
func Ping(c *gin.Context) {
	ctx := internalhandler.NewContext(c)
	defer func() { internalhandler.JSONResponse(c, ctx) }()

	names, err := core.Projects().Names()
	if err != nil {
		ctx.Err = err
		return
	}

	resp := &pingResp{
		Message:              "I am alive and I know about the following projects : [" + strings.Join(names, ", ") + "]",
		RequestURI:           c.Request.URL.Path,
		AuthenticationHeader: c.GetHeader(setting.AuthSignatureHeader),
		TimeStampHeader:      c.GetHeader(setting.AuthTimestampHeader),
	}
	resp.Authenticated = selfCheck(c)
	ctx.Resp = resp
}

func selfCheck(c *gin.Context) bool {
	signature := c.GetHeader(setting.AuthSignatureHeader)
	timestamp, err := strconv.ParseInt(c.GetHeader(setting.AuthTimestampHeader), 10, 64)
	if err != nil {
		return false
	}

	requestURI := c.Request.URL.Path
	if query := c.Request.URL.RawQuery; query != "" {
		requestURI = requestURI + "?" + query
	}

	ok, err := core.Settings().Verify(signature, requestURI, timestamp)
	return err == nil && ok
}
