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
	"time"

	"github.com/go-resty/resty/v2"
)

const UserAgent = "BizDock Jira Link"

// Client is a thin REST client for the Jira v2 API. Every collaborator the
// bridge needs (project lookup, JQL search, field catalogue, group members)
// is grouped into a service.
type Client struct {
	Host string

	Project  *ProjectService
	Issue    *IssueService
	Field    *FieldService
	User     *UserService
	Platform *PlatformService

	client *resty.Client
}

func NewClient(host, user, token string) *Client {
	r := resty.New().
		SetBasicAuth(user, token).
		SetRetryCount(3).
		SetRetryWaitTime(time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", UserAgent)

	c := &Client{
		Host:   host,
		client: r,
	}
	c.Project = &ProjectService{client: c}
	c.Issue = &IssueService{client: c}
	c.Field = &FieldService{client: c}
	c.User = &UserService{client: c}
	c.Platform = &PlatformService{client: c}

	return c
}

func (c *Client) R() *resty.Request {
	return c.client.R()
}
