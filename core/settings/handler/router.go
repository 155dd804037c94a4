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
)

type Router struct{}

func (*Router) Inject(router *gin.RouterGroup) {
	admin := router.Group("admin")
	{
		admin.GET("/mapping", GetFieldMapping)
		admin.PUT("/mapping", UpdateFieldMapping)
		admin.GET("/templates", GetTemplates)
		admin.PUT("/templates", UpdateTemplate)
		admin.GET("/secret", GetSecret)
		admin.POST("/secret/rotate", RotateSecret)
		admin.PUT("/creation-user", UpdateCreationUser)
		admin.POST("/reset", ResetSettings)
	}
}
