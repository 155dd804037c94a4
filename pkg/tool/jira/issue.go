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
	"encoding/json"

	"github.com/pkg/errors"
)

const searchPageSize = 100

// Issue ...
type Issue struct {
	ID     string      `json:"id,omitempty"`
	Key    string      `json:"key,omitempty"`
	Fields IssueFields `json:"fields"`
}

// IssueFields keeps the well known fields typed and everything the server
// returned (custom fields included) in the raw map, keyed by field id.
type IssueFields struct {
	Summary              string
	Description          string
	Status               *Status
	Priority             *Priority
	Creator              *User
	Reporter             *User
	Assignee             *User
	TimeOriginalEstimate *int64

	All map[string]interface{}
}

func (f *IssueFields) UnmarshalJSON(data []byte) error {
	var typed struct {
		Summary              string    `json:"summary"`
		Description          string    `json:"description"`
		Status               *Status   `json:"status"`
		Priority             *Priority `json:"priority"`
		Creator              *User     `json:"creator"`
		Reporter             *User     `json:"reporter"`
		Assignee             *User     `json:"assignee"`
		TimeOriginalEstimate *int64    `json:"timeoriginalestimate"`
	}
	if err := json.Unmarshal(data, &typed); err != nil {
		return err
	}

	var all map[string]interface{}
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}

	f.Summary = typed.Summary
	f.Description = typed.Description
	f.Status = typed.Status
	f.Priority = typed.Priority
	f.Creator = typed.Creator
	f.Reporter = typed.Reporter
	f.Assignee = typed.Assignee
	f.TimeOriginalEstimate = typed.TimeOriginalEstimate
	f.All = all

	return nil
}

// CustomField returns the raw value of the given field id, or nil when the
// field is absent on this issue.
func (i *Issue) CustomField(fieldID string) interface{} {
	if i.Fields.All == nil {
		return nil
	}
	return i.Fields.All[fieldID]
}

// IssueService ...
type IssueService struct {
	client *Client
}

type searchRequest struct {
	JQL        string   `json:"jql"`
	StartAt    int      `json:"startAt"`
	MaxResults int      `json:"maxResults"`
	Fields     []string `json:"fields"`
}

type searchResult struct {
	StartAt    int      `json:"startAt"`
	MaxResults int      `json:"maxResults"`
	Total      int      `json:"total"`
	Issues     []*Issue `json:"issues"`
}

// SearchAll runs the JQL query and pages through the result set until it is
// exhausted, so a large project never gets silently truncated.
func (s *IssueService) SearchAll(jql string) ([]*Issue, error) {
	url := s.client.Host + "/rest/api/2/search"

	var issues []*Issue
	startAt := 0
	for {
		result := new(searchResult)
		req := searchRequest{
			JQL:        jql,
			StartAt:    startAt,
			MaxResults: searchPageSize,
			Fields:     []string{"*all"},
		}

		resp, err := s.client.R().SetBody(req).SetResult(result).Post(url)
		if err != nil {
			return nil, err
		}
		if resp.IsError() {
			return nil, errors.Errorf("get unexpected status code %d, body: %s", resp.StatusCode(), resp.String())
		}

		issues = append(issues, result.Issues...)
		startAt += len(result.Issues)
		if len(result.Issues) == 0 || startAt >= result.Total {
			break
		}
	}

	return issues, nil
}
