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

// Field describes one entry of the field catalogue, native or custom.
type Field struct {
	ID     string `json:"id,omitempty"`
	Name   string `json:"name,omitempty"`
	Custom bool   `json:"custom,omitempty"`
}

// FieldService ...
type FieldService struct {
	client *Client
}

// List returns the complete field catalogue of the instance.
func (s *FieldService) List() ([]*Field, error) {
	list := make([]*Field, 0)
	url := s.client.Host + "/rest/api/2/field"

	resp, err := s.client.R().SetResult(&list).Get(url)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, errors.Errorf("get unexpected status code %d, body: %s", resp.StatusCode(), resp.String())
	}

	return list, nil
}

type fieldOptions struct {
	Values []struct {
		Value string `json:"value"`
	} `json:"values"`
}

// Options returns the configured option values of a select style custom
// field. Fields without options yield an error from the server.
func (s *FieldService) Options(fieldID string) ([]string, error) {
	result := new(fieldOptions)
	url := s.client.Host + "/rest/api/2/field/" + fieldID + "/option"

	resp, err := s.client.R().SetResult(result).Get(url)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, errors.Errorf("get unexpected status code %d, body: %s", resp.StatusCode(), resp.String())
	}

	values := make([]string, 0, len(result.Values))
	for _, v := range result.Values {
		values = append(values, v.Value)
	}

	return values, nil
}
