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
	"github.com/pkg/errors"
)

// Status ...
type Status struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// Priority ...
type Priority struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// PlatformService ...
type PlatformService struct {
	client *Client
}

// ListStatuses https://developer.atlassian.com/server/jira/platform/rest-apis/
func (s *PlatformService) ListStatuses() ([]*Status, error) {
	list := make([]*Status, 0)
	url := s.client.Host + "/rest/api/2/status"

	resp, err := s.client.R().SetResult(&list).Get(url)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, errors.Errorf("get unexpected status code %d, body: %s", resp.StatusCode(), resp.String())
	}

	return list, nil
}

// ListPriorities ...
func (s *PlatformService) ListPriorities() ([]*Priority, error) {
	list := make([]*Priority, 0)
	url := s.client.Host + "/rest/api/2/priority"

	resp, err := s.client.R().SetResult(&list).Get(url)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, errors.Errorf("get unexpected status code %d, body: %s", resp.StatusCode(), resp.String())
	}

	return list, nil
}
