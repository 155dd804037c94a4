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
	"github.com/gin-gonic/gin"

	"github.com/bizdock/jira-link/core"
	"github.com/bizdock/jira-link/core/settings/service"
	internalhandler "github.com/bizdock/jira-link/pkg/shared/handler"
	e "github.com/bizdock/jira-link/pkg/tool/errors"
	"github.com/bizdock/jira-link/pkg/types"
)

type fieldMappingEntry struct {
	Field        string   `json:"field"`
	Key          string   `json:"key"`
	Configurable bool     `json:"configurable"`
	Alternatives []string `json:"alternatives,omitempty"`
}

func GetFieldMapping(c *gin.Context) {
	ctx := internalhandler.NewContext(c)
	defer func() { internalhandler.JSONResponse(c, ctx) }()

	mapping, err := core.Settings().Mapping()
	if err != nil {
		ctx.Err = err
		return
	}

	entries := make([]*fieldMappingEntry, 0, len(mapping))
	for _, field := range types.RequirementFields() {
		spec := field.Spec()
		entries = append(entries, &fieldMappingEntry{
			Field:        string(field),
			Key:          mapping[field],
			Configurable: spec.Configurable,
			Alternatives: spec.Alternatives,
		})
	}
	ctx.Resp = entries
}

func UpdateFieldMapping(c *gin.Context) {
	ctx := internalhandler.NewContext(c)
	defer func() { internalhandler.JSONResponse(c, ctx) }()

	args := make(map[string]string)
	if err := c.ShouldBindJSON(&args); err != nil {
		ctx.Err = e.ErrInvalidParam.AddErr(err)
		return
	}

	partial := make(map[types.RequirementField]string, len(args))
	for field, key := range args {
		partial[types.RequirementField(field)] = key
	}
	ctx.Resp, ctx.Err = core.Settings().UpdateMapping(partial)
}

type templatesResp struct {
	Needs   string `json:"needs"`
	Defects string `json:"defects"`
}

func GetTemplates(c *gin.Context) {
	ctx := internalhandler.NewContext(c)
	defer func() { internalhandler.JSONResponse(c, ctx) }()

	conf, err := core.Settings().Configuration()
	if err != nil {
		ctx.Err = err
		return
	}
	ctx.Resp = &templatesResp{
		Needs:   conf.NeedsJQLTemplate,
		Defects: conf.DefectsJQLTemplate,
	}
}

type updateTemplateArgs struct {
	Kind     string `json:"kind"`
	Template string `json:"template"`
}

func UpdateTemplate(c *gin.Context) {
	ctx := internalhandler.NewContext(c)
	defer func() { internalhandler.JSONResponse(c, ctx) }()

	args := new(updateTemplateArgs)
	if err := c.ShouldBindJSON(args); err != nil {
		ctx.Err = e.ErrInvalidParam.AddErr(err)
		return
	}
	ctx.Err = core.Settings().UpdateTemplate(service.TemplateKind(args.Kind), args.Template)
}

type secretResp struct {
	Secret string `json:"secret"`
}

func GetSecret(c *gin.Context) {
	ctx := internalhandler.NewContext(c)
	defer func() { internalhandler.JSONResponse(c, ctx) }()

	secret, err := core.Settings().Secret()
	if err != nil {
		ctx.Err = err
		return
	}
	ctx.Resp = &secretResp{Secret: secret}
}

func RotateSecret(c *gin.Context) {
	ctx := internalhandler.NewContext(c)
	defer func() { internalhandler.JSONResponse(c, ctx) }()

	secret, err := core.Settings().RotateSecret()
	if err != nil {
		ctx.Err = err
		return
	}
	ctx.Resp = &secretResp{Secret: secret}
}

type updateCreationUserArgs struct {
	User string `json:"user"`
}

func UpdateCreationUser(c *gin.Context) {
	ctx := internalhandler.NewContext(c)
	defer func() { internalhandler.JSONResponse(c, ctx) }()

	args := new(updateCreationUserArgs)
	if err := c.ShouldBindJSON(args); err != nil {
		ctx.Err = e.ErrInvalidParam.AddErr(err)
		return
	}
	ctx.Err = core.Settings().UpdateCreationUser(args.User)
}

func ResetSettings(c *gin.Context) {
	ctx := internalhandler.NewContext(c)
	defer func() { internalhandler.JSONResponse(c, ctx) }()

	ctx.Err = core.Settings().Reset()
}
