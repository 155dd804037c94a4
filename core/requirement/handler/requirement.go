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

	"github.com/gin-gonic/gin"

	"github.com/bizdock/jira-link/core"
	internalhandler "github.com/bizdock/jira-link/pkg/shared/handler"
	e "github.com/bizdock/jira-link/pkg/tool/errors"
)

type findArgs struct {
	ProjectRefID string                 `json:"projectRefId"`
	Parameters   map[string]interface{} `json:"parameters"`
}

func (args *findArgs) validate() error {
	if args.ProjectRefID == "" {
		return e.ErrInvalidParam.AddDesc("projectRefId cannot be empty")
	}
	if _, err := strconv.ParseUint(args.ProjectRefID, 10, 64); err != nil {
		return e.ErrInvalidParam.AddDesc("projectRefId must be numeric")
	}
	return nil
}

func FindNeeds(c *gin.Context) {
	ctx := internalhandler.NewContext(c)
	defer func() { internalhandler.JSONResponse(c, ctx) }()

	args := new(findArgs)
	if err := c.ShouldBindJSON(args); err != nil {
		ctx.Err = e.ErrInvalidParam.AddErr(err)
		return
	}
	if err := args.validate(); err != nil {
		ctx.Err = err
		return
	}
	ctx.Resp, ctx.Err = core.Requirements().Needs(args.ProjectRefID, args.Parameters, ctx.Logger)
}

func FindDefects(c *gin.Context) {
	ctx := internalhandler.NewContext(c)
	defer func() { internalhandler.JSONResponse(c, ctx) }()

	args := new(findArgs)
	if err := c.ShouldBindJSON(args); err != nil {
		ctx.Err = e.ErrInvalidParam.AddErr(err)
		return
	}
	if err := args.validate(); err != nil {
		ctx.Err = err
		return
	}
	ctx.Resp, ctx.Err = core.Requirements().Defects(args.ProjectRefID, args.Parameters, ctx.Logger)
}
