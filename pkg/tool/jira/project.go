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

package jira

import (
	"net/http"
	"strconv"

	"github.com/pkg/errors"
)

// ErrProjectNotFound is returned when a project reference cannot be resolved.
var ErrProjectNotFound = errors.New("project not found")

// Project ...
type Project struct {
	ID          string `json:"id,omitempty"`
	Key         string `json:"key,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// ProjectService ...
type ProjectService struct {
	client *Client
}

// List returns all projects visible to the configured user, in the order the
// server reports them.
func (s *ProjectService) List() ([]*Project, error) {
	list := make([]*Project, 0)
	url := s.client.Host + "/rest/api/2/project"

	resp, err := s.client.R().SetResult(&list).Get(url)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, errors.Errorf("get unexpected status code %d, body: %s", resp.StatusCode(), resp.String())
	}

	return list, nil
}

// Get resolves a project by its numeric id or its key.
func (s *ProjectService) Get(idOrKey string) (*Project, error) {
	project := new(Project)
	url := s.client.Host + "/rest/api/2/project/" + idOrKey

	resp, err := s.client.R().SetResult(project).Get(url)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, ErrProjectNotFound
	}
	if resp.IsError() {
		return nil, errors.Errorf("get unexpected status code %d, body: %s", resp.StatusCode(), resp.String())
	}

	return project, nil
}

// Exists reports whether a project with the given key is already registered.
func (s *ProjectService) Exists(key string) (bool, error) {
	_, err := s.Get(key)
	if err == ErrProjectNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

type CreateProjectInput struct {
	Key            string `json:"key"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Lead           string `json:"lead"`
	ProjectTypeKey string `json:"projectTypeKey"`
	AssigneeType   string `json:"assigneeType"`
}

// Create registers a new project and returns its stable numeric id.
func (s *ProjectService) Create(input *CreateProjectInput) (string, error) {
	if input.ProjectTypeKey == "" {
		input.ProjectTypeKey = "software"
	}
	if input.AssigneeType == "" {
		input.AssigneeType = "UNASSIGNED"
	}

	// the create endpoint reports the id as a number, unlike the lookups
	created := new(struct {
		ID  int64  `json:"id"`
		Key string `json:"key"`
	})
	url := s.client.Host + "/rest/api/2/project"

	resp, err := s.client.R().SetBody(input).SetResult(created).Post(url)
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", errors.Errorf("get unexpected status code %d, body: %s", resp.StatusCode(), resp.String())
	}

	return strconv.FormatInt(created.ID, 10), nil
}
