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

// Package service turns Jira issues into canonical Requirement records.
// Field resolution is driven entirely by the configured mapping, so a record
// with an unusable field keeps going with that field unset rather than
// failing the whole batch.
package service

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bizdock/jira-link/core/common/jql"
	settings "github.com/bizdock/jira-link/core/settings/service"
	e "github.com/bizdock/jira-link/pkg/tool/errors"
	"github.com/bizdock/jira-link/pkg/tool/jira"
	"github.com/bizdock/jira-link/pkg/types"
)

// IssueSearcher runs a JQL query and returns every matching issue.
type IssueSearcher interface {
	SearchAll(jql string) ([]*jira.Issue, error)
}

// ProjectGetter resolves a project id or key to the project record.
type ProjectGetter interface {
	Get(idOrKey string) (*jira.Project, error)
}

// ConfigSource provides the active mapping and query templates.
type ConfigSource interface {
	Mapping() (types.FieldMapping, error)
	Template(kind settings.TemplateKind) (string, error)
}

type Service struct {
	issues   IssueSearcher
	projects ProjectGetter
	conf     ConfigSource
}

func New(issues IssueSearcher, projects ProjectGetter, conf ConfigSource) *Service {
	return &Service{issues: issues, projects: projects, conf: conf}
}

// Needs returns the requirement records of the given project, selected by
// the needs template.
func (s *Service) Needs(projectRef string, params map[string]interface{}, logger *zap.SugaredLogger) ([]*types.Requirement, error) {
	reqs, err := s.fetch(settings.TemplateNeeds, false, projectRef, params, logger)
	if err != nil {
		if _, ok := err.(e.IHTTPError); ok {
			return nil, err
		}
		return nil, e.ErrFindNeeds.AddErr(err)
	}
	return reqs, nil
}

// Defects returns the defect records of the given project, selected by the
// defects template. Every record carries the defect flag.
func (s *Service) Defects(projectRef string, params map[string]interface{}, logger *zap.SugaredLogger) ([]*types.Requirement, error) {
	reqs, err := s.fetch(settings.TemplateDefects, true, projectRef, params, logger)
	if err != nil {
		if _, ok := err.(e.IHTTPError); ok {
			return nil, err
		}
		return nil, e.ErrFindDefects.AddErr(err)
	}
	return reqs, nil
}

func (s *Service) fetch(kind settings.TemplateKind, defect bool, projectRef string, params map[string]interface{}, logger *zap.SugaredLogger) ([]*types.Requirement, error) {
	project, err := s.projects.Get(projectRef)
	if err != nil {
		if errors.Is(err, jira.ErrProjectNotFound) {
			return nil, e.ErrNotFound.AddDesc("project " + projectRef + " not found")
		}
		return nil, errors.Wrap(err, "failed to resolve project")
	}

	template, err := s.conf.Template(kind)
	if err != nil {
		return nil, err
	}
	query, err := jql.Expand(template, project.Key, params)
	if err != nil {
		return nil, e.ErrInvalidParam.AddErr(err)
	}

	mapping, err := s.conf.Mapping()
	if err != nil {
		return nil, err
	}

	issues, err := s.issues.SearchAll(query)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to search issues with JQL %s", query)
	}

	reqs := make([]*types.Requirement, 0, len(issues))
	for _, issue := range issues {
		req := translate(issue, mapping, logger)
		req.Defect = defect
		reqs = append(reqs, req)
	}

	logger.Infof("translated %d %s records for project %s", len(reqs), kind, project.Key)
	return reqs, nil
}
