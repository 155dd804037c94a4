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

// Package core wires the bridge services together: the mongo backed settings
// store, the Jira REST client and the domain services on top of them.
package core

import (
	"context"

	projectservice "github.com/bizdock/jira-link/core/project/service"
	requirementservice "github.com/bizdock/jira-link/core/requirement/service"
	"github.com/bizdock/jira-link/core/settings/repository/mongodb"
	settingsservice "github.com/bizdock/jira-link/core/settings/service"
	"github.com/bizdock/jira-link/pkg/config"
	"github.com/bizdock/jira-link/pkg/tool/jira"
	"github.com/bizdock/jira-link/pkg/tool/log"
	mongotool "github.com/bizdock/jira-link/pkg/tool/mongo"
)

var (
	settingsService    *settingsservice.Service
	requirementService *requirementservice.Service
	projectService     *projectservice.Service
)

// Start initializes the persistence layer, the Jira client and the domain
// services. It panics on unrecoverable configuration problems.
func Start(ctx context.Context) {
	initDatabase(ctx)

	client := jira.NewClient(config.JiraHost(), config.JiraUser(), config.JiraToken())

	settingsService = settingsservice.New(mongodb.NewSettingColl(), &jiraAdminLister{client: client})
	requirementService = requirementservice.New(client.Issue, client.Project, settingsService)
	projectService = projectservice.New(client.Project, client.Platform, client.Field, settingsService)
}

func Stop(ctx context.Context) {
	mongotool.Close(ctx)
}

func initDatabase(ctx context.Context) {
	mongotool.Init(ctx, config.MongoURI())
	if err := mongotool.Ping(ctx); err != nil {
		panic(err)
	}
	if err := mongodb.NewSettingColl().EnsureIndex(ctx); err != nil {
		panic(err)
	}
	log.Infof("mongodb connection established")
}

func Settings() *settingsservice.Service {
	return settingsService
}

func Requirements() *requirementservice.Service {
	return requirementService
}

func Projects() *projectservice.Service {
	return projectService
}

type jiraAdminLister struct {
	client *jira.Client
}

func (l *jiraAdminLister) Administrators() ([]*jira.User, error) {
	return l.client.User.GroupMembers(config.JiraAdminGroup())
}
