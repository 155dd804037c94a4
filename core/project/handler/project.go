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
	"unicode"

	"github.com/gin-gonic/gin"

	"github.com/bizdock/jira-link/core"
	internalhandler "github.com/bizdock/jira-link/pkg/shared/handler"
	e "github.com/bizdock/jira-link/pkg/tool/errors"
)

func ListProjects(c *gin.Context) {
	ctx := internalhandler.NewContext(c)
	defer func() { internalhandler.JSONResponse(c, ctx) }()

	ctx.Resp, ctx.Err = core.Projects().List()
}

func FindProject(c *gin.Context) {
	ctx := internalhandler.NewContext(c)
	defer func() { internalhandler.JSONResponse(c, ctx) }()

	projectRefID := c.Query("projectRefId")
	if projectRefID == "" || !isNumeric(projectRefID) {
		ctx.Err = e.ErrInvalidParam.AddDesc("projectRefId cannot be null or blank and must be numeric")
		return
	}
	ctx.Resp, ctx.Err = core.Projects().Find(projectRefID)
}

type createProjectArgs struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (args *createProjectArgs) validate() error {
	if args.Key == "" || args.Name == "" || args.Description == "" {
		return e.ErrInvalidParam.AddDesc("key, name and description are all required")
	}
	if !isAlpha(args.Key) {
		return e.ErrInvalidParam.AddDesc("project key must contain letters only")
	}
	return nil
}

func CreateProject(c *gin.Context) {
	ctx := internalhandler.NewContext(c)
	defer func() { internalhandler.JSONResponse(c, ctx) }()

	args := new(createProjectArgs)
	if err := c.ShouldBindJSON(args); err != nil {
		ctx.Err = e.ErrInvalidParam.AddErr(err)
		return
	}
	if err := args.validate(); err != nil {
		ctx.Err = err
		return
	}
	ctx.Resp, ctx.Err = core.Projects().Create(args.Name, args.Key, args.Description)
}

func GetInstanceInfo(c *gin.Context) {
	ctx := internalhandler.NewContext(c)
	defer func() { internalhandler.JSONResponse(c, ctx) }()

	ctx.Resp, ctx.Err = core.Projects().InstanceInfo()
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
