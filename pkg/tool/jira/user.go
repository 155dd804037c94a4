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
	"fmt"
	"net/url"

	"github.com/pkg/errors"
)

// User ...
type User struct {
	Name         string `json:"name,omitempty"`
	EmailAddress string `json:"emailAddress,omitempty"`
	DisplayName  string `json:"displayName,omitempty"`
	Active       bool   `json:"active,omitempty"`
}

// UserService ...
type UserService struct {
	client *Client
}

type groupMembersResult struct {
	Values []*User `json:"values"`
	IsLast bool    `json:"isLast"`
}

// GroupMembers returns the members of a group in the stable order the server
// reports, paging until the group is exhausted.
func (s *UserService) GroupMembers(group string) ([]*User, error) {
	var members []*User
	startAt := 0
	for {
		result := new(groupMembersResult)
		endpoint := fmt.Sprintf("%s/rest/api/2/group/member?groupname=%s&startAt=%d", s.client.Host, url.QueryEscape(group), startAt)

		resp, err := s.client.R().SetResult(result).Get(endpoint)
		if err != nil {
			return nil, err
		}
		if resp.IsError() {
			return nil, errors.Errorf("get unexpected status code %d, body: %s", resp.StatusCode(), resp.String())
		}

		members = append(members, result.Values...)
		startAt += len(result.Values)
		if result.IsLast || len(result.Values) == 0 {
			break
		}
	}

	return members, nil
}
