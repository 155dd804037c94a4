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

// Package service exposes the Jira project surface of the bridge: listing,
// lookup, creation and the instance info used to configure the link.
package service

import (
	"strings"

	"github.com/pkg/errors"

	e "github.com/bizdock/jira-link/pkg/tool/errors"
	"github.com/bizdock/jira-link/pkg/tool/jira"
	"github.com/bizdock/jira-link/pkg/tool/log"
	"github.com/bizdock/jira-link/pkg/types"
)

// ProjectStore is the Jira project API surface the service relies on.
type ProjectStore interface {
	List() ([]*jira.Project, error)
	Get(idOrKey string) (*jira.Project, error)
	Exists(key string) (bool, error)
	Create(input *jira.CreateProjectInput) (string, error)
}

// Platform enumerates instance wide constants.
type Platform interface {
	ListStatuses() ([]*jira.Status, error)
	ListPriorities() ([]*jira.Priority, error)
}

// FieldCatalog reads the field catalogue and custom field options.
type FieldCatalog interface {
	List() ([]*jira.Field, error)
	Options(fieldID string) ([]string, error)
}

// ConfigSource provides the settings the project operations depend on.
type ConfigSource interface {
	CreationUser() (string, error)
	Mapping() (types.FieldMapping, error)
}

// ProjectInfo is the wire representation of one Jira project.
type ProjectInfo struct {
	ProjectRefID string `json:"projectRefId"`
	Key          string `json:"key"`
	Name         string `json:"name"`
	Description  string `json:"description"`
}

// CreationResult reports the outcome of a project creation request. An
// already existing key is a regular outcome, not an error.
type CreationResult struct {
	Success       bool   `json:"success"`
	AlreadyExists bool   `json:"alreadyExists"`
	ProjectRefID  string `json:"projectRefId,omitempty"`
}

// InstanceInfo carries the reference data BizDock needs to configure the
// link against this Jira instance.
type InstanceInfo struct {
	Statuses   []string          `json:"statuses"`
	Priorities []string          `json:"priorities"`
	Severities []string          `json:"severities"`
	AllFields  map[string]string `json:"allPossibleJiraFields"`
}

type Service struct {
	projects ProjectStore
	platform Platform
	fields   FieldCatalog
	conf     ConfigSource
}

func New(projects ProjectStore, platform Platform, fields FieldCatalog, conf ConfigSource) *Service {
	return &Service{projects: projects, platform: platform, fields: fields, conf: conf}
}

// List returns every project of the instance.
func (s *Service) List() ([]*ProjectInfo, error) {
	projects, err := s.projects.List()
	if err != nil {
		return nil, e.ErrListProjects.AddErr(err)
	}

	out := make([]*ProjectInfo, 0, len(projects))
	for _, p := range projects {
		out = append(out, toProjectInfo(p))
	}
	return out, nil
}

// Names returns the project names, used by the liveness endpoint.
func (s *Service) Names() ([]string, error) {
	projects, err := s.projects.List()
	if err != nil {
		return nil, e.ErrListProjects.AddErr(err)
	}

	names := make([]string, 0, len(projects))
	for _, p := range projects {
		names = append(names, p.Name)
	}
	return names, nil
}

// Find resolves a project by its reference id.
func (s *Service) Find(projectRefID string) (*ProjectInfo, error) {
	project, err := s.projects.Get(projectRefID)
	if err != nil {
		if errors.Is(err, jira.ErrProjectNotFound) {
			return nil, e.ErrNotFound.AddDesc("unknown project " + projectRefID)
		}
		return nil, e.ErrFindProject.AddErr(err)
	}
	return toProjectInfo(project), nil
}

// Create provisions a new project owned by the configured creation user.
func (s *Service) Create(name, key, description string) (*CreationResult, error) {
	exists, err := s.projects.Exists(key)
	if err != nil {
		return nil, e.ErrCreateProject.AddErr(err)
	}
	if exists {
		return &CreationResult{AlreadyExists: true}, nil
	}

	lead, err := s.conf.CreationUser()
	if err != nil {
		return nil, err
	}

	refID, err := s.projects.Create(&jira.CreateProjectInput{
		Key:         key,
		Name:        name,
		Description: description,
		Lead:        lead,
	})
	if err != nil {
		return nil, e.ErrCreateProject.AddErr(err)
	}

	log.Infof("project %s created with reference id %s", key, refID)
	return &CreationResult{Success: true, ProjectRefID: refID}, nil
}

// InstanceInfo collects statuses, priorities, the severity options and the
// full field catalogue. Severity options are best effort: an unmapped or
// option-less severity field yields an empty list, not an error.
func (s *Service) InstanceInfo() (*InstanceInfo, error) {
	info := &InstanceInfo{
		Statuses:   []string{},
		Priorities: []string{},
		Severities: []string{},
		AllFields:  map[string]string{},
	}

	statuses, err := s.platform.ListStatuses()
	if err != nil {
		return nil, e.ErrGetInstanceInfo.AddErr(err)
	}
	for _, st := range statuses {
		info.Statuses = append(info.Statuses, st.Name)
	}

	priorities, err := s.platform.ListPriorities()
	if err != nil {
		return nil, e.ErrGetInstanceInfo.AddErr(err)
	}
	for _, p := range priorities {
		info.Priorities = append(info.Priorities, p.Name)
	}

	info.Severities = s.severityOptions()

	fields, err := s.fields.List()
	if err != nil {
		return nil, e.ErrGetInstanceInfo.AddErr(err)
	}
	for _, f := range fields {
		info.AllFields[f.ID] = f.Name
	}

	return info, nil
}

func (s *Service) severityOptions() []string {
	mapping, err := s.conf.Mapping()
	if err != nil {
		log.Warnf("failed to read field mapping for severity options: %v", err)
		return []string{}
	}

	key := mapping[types.FieldSeverity]
	if !strings.HasPrefix(key, types.CustomFieldPrefix) {
		return []string{}
	}

	options, err := s.fields.Options(strings.TrimPrefix(key, types.CustomFieldPrefix))
	if err != nil {
		log.Warnf("failed to read severity field options: %v", err)
		return []string{}
	}
	return options
}

func toProjectInfo(p *jira.Project) *ProjectInfo {
	return &ProjectInfo{
		ProjectRefID: p.ID,
		Key:          p.Key,
		Name:         p.Name,
		Description:  p.Description,
	}
}
