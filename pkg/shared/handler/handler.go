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
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bizdock/jira-link/pkg/setting"
	e "github.com/bizdock/jira-link/pkg/tool/errors"
	"github.com/bizdock/jira-link/pkg/tool/log"
)

// Context carries the per-request state between a gin handler and the service
// layer: a request-scoped logger, the response payload and the first error.
type Context struct {
	Logger *zap.SugaredLogger
	Err    error
	Resp   interface{}
}

func NewContext(c *gin.Context) *Context {
	return &Context{
		Logger: log.SugaredLogger().With(setting.RequestID, c.GetString(setting.RequestID)),
	}
}

const (
	classUnexpected    = "unexpected"
	classConfiguration = "configuration"
	classInvalidParam  = "invalid-parameter"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Trace   string `json:"trace,omitempty"`
}

// JSONResponse writes ctx.Resp or an error classification. Internal error
// details are logged server side; the caller only sees the class, the
// registry message and a short diagnostic trace.
func JSONResponse(c *gin.Context, ctx *Context) {
	if ctx.Err != nil {
		ctx.Logger.Errorf("API call error: %v", ctx.Err)
		status, resp := toErrorResponse(ctx.Err)
		c.AbortWithStatusJSON(status, resp)
		return
	}

	if ctx.Resp != nil {
		c.JSON(http.StatusOK, ctx.Resp)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "success"})
}

func toErrorResponse(err error) (int, *errorResponse) {
	v, ok := err.(*e.HTTPError)
	if !ok {
		return http.StatusBadRequest, &errorResponse{Code: classUnexpected, Message: "API call error", Trace: err.Error()}
	}

	resp := &errorResponse{Code: classUnexpected, Message: v.Error(), Trace: v.Desc()}
	status := http.StatusBadRequest

	switch {
	case v.Code() == http.StatusBadRequest:
		resp.Code = classInvalidParam
	case v.Code() == http.StatusUnauthorized:
		status = http.StatusUnauthorized
	case v.Code() < 600:
		status = v.Code()
	case e.IsConfiguration(v):
		resp.Code = classConfiguration
	}

	return status, resp
}
