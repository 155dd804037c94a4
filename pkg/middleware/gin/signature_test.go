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
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	settings "github.com/bizdock/jira-link/core/settings/service"
	"github.com/bizdock/jira-link/pkg/setting"
)

const testSecret = "0Sb+W1Yyhkg1WCBZwG9lHhAG0XM2sDUhzevWdjauGZM="

type stubVerifier struct{}

func (stubVerifier) Verify(signature, requestURI string, timestamp int64) (bool, error) {
	return signature == settings.Sign(testSecret, requestURI, timestamp), nil
}

func newSignedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	g := gin.New()
	g.Use(Signature(stubVerifier{}, "/api/ping"))
	ok := func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"message": "success"}) }
	g.GET("/api/ping", ok)
	g.GET("/api/projects/all", ok)
	g.GET("/api/projects/find", ok)
	return g
}

func doRequest(g *gin.Engine, target, signedURI string, ts int64) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if signedURI != "" {
		req.Header.Set(setting.AuthSignatureHeader, settings.Sign(testSecret, signedURI, ts))
		req.Header.Set(setting.AuthTimestampHeader, strconv.FormatInt(ts, 10))
	}
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	return w
}

func TestSignatureAcceptsValidRequest(t *testing.T) {
	g := newSignedRouter()
	ts := time.Now().UnixMilli()

	w := doRequest(g, "/api/projects/all", "/api/projects/all", ts)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSignatureCoversQueryString(t *testing.T) {
	g := newSignedRouter()
	ts := time.Now().UnixMilli()

	w := doRequest(g, "/api/projects/find?projectRefId=10001", "/api/projects/find?projectRefId=10001", ts)
	assert.Equal(t, http.StatusOK, w.Code)

	// signature computed without the query must fail
	w = doRequest(g, "/api/projects/find?projectRefId=10001", "/api/projects/find", ts)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSignatureRejectsTampering(t *testing.T) {
	g := newSignedRouter()
	ts := time.Now().UnixMilli()

	// signed for another path
	w := doRequest(g, "/api/projects/all", "/api/ping", ts)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// no headers at all
	w = doRequest(g, "/api/projects/all", "", 0)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSignatureRejectsMalformedTimestamp(t *testing.T) {
	g := newSignedRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/projects/all", nil)
	req.Header.Set(setting.AuthSignatureHeader, "whatever")
	req.Header.Set(setting.AuthTimestampHeader, "not-a-number")
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSignatureSkipsPing(t *testing.T) {
	g := newSignedRouter()

	w := doRequest(g, "/api/ping", "", 0)
	assert.Equal(t, http.StatusOK, w.Code)
}
