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

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizdock/jira-link/pkg/tool/jira"
	"github.com/bizdock/jira-link/pkg/types"
)

type fakeProjectStore struct {
	projects []*jira.Project
	created  *jira.CreateProjectInput
}

func (s *fakeProjectStore) List() ([]*jira.Project, error) {
	return s.projects, nil
}

func (s *fakeProjectStore) Get(idOrKey string) (*jira.Project, error) {
	for _, p := range s.projects {
		if p.ID == idOrKey || p.Key == idOrKey {
			return p, nil
		}
	}
	return nil, jira.ErrProjectNotFound
}

func (s *fakeProjectStore) Exists(key string) (bool, error) {
	for _, p := range s.projects {
		if p.Key == key {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeProjectStore) Create(input *jira.CreateProjectInput) (string, error) {
	s.created = input
	return "10100", nil
}

type fakePlatform struct{}

func (fakePlatform) ListStatuses() ([]*jira.Status, error) {
	return []*jira.Status{{Name: "Open"}, {Name: "Closed"}}, nil
}

func (fakePlatform) ListPriorities() ([]*jira.Priority, error) {
	return []*jira.Priority{{Name: "Major"}, {Name: "Minor"}}, nil
}

type fakeFields struct {
	options map[string][]string
}

func (f *fakeFields) List() ([]*jira.Field, error) {
	return []*jira.Field{
		{ID: "summary", Name: "Summary"},
		{ID: "customfield_10001", Name: "Severity", Custom: true},
	}, nil
}

func (f *fakeFields) Options(fieldID string) ([]string, error) {
	return f.options[fieldID], nil
}

type fakeConf struct {
	mapping      types.FieldMapping
	creationUser string
}

func (c *fakeConf) CreationUser() (string, error) {
	return c.creationUser, nil
}

func (c *fakeConf) Mapping() (types.FieldMapping, error) {
	return c.mapping, nil
}

func newTestService() (*Service, *fakeProjectStore, *fakeConf) {
	store := &fakeProjectStore{projects: []*jira.Project{
		{ID: "10000", Key: "DEMO", Name: "Demo", Description: "Demo project"},
		{ID: "10001", Key: "OPS", Name: "Operations"},
	}}
	conf := &fakeConf{mapping: types.DefaultFieldMapping(), creationUser: "alice"}
	svc := New(store, fakePlatform{}, &fakeFields{options: map[string][]string{
		"customfield_10001": {"Low", "Medium", "High"},
	}}, conf)
	return svc, store, conf
}

func TestListAndNames(t *testing.T) {
	assert := assert.New(t)
	svc, _, _ := newTestService()

	projects, err := svc.List()
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal("10000", projects[0].ProjectRefID)
	assert.Equal("DEMO", projects[0].Key)

	names, err := svc.Names()
	require.NoError(t, err)
	assert.Equal([]string{"Demo", "Operations"}, names)
}

func TestFind(t *testing.T) {
	assert := assert.New(t)
	svc, _, _ := newTestService()

	project, err := svc.Find("10001")
	require.NoError(t, err)
	assert.Equal("OPS", project.Key)

	_, err = svc.Find("424242")
	assert.Error(err)
}

func TestCreate(t *testing.T) {
	assert := assert.New(t)
	svc, store, _ := newTestService()

	result, err := svc.Create("New Product", "PROD", "The new product backlog")
	require.NoError(t, err)
	assert.True(result.Success)
	assert.False(result.AlreadyExists)
	assert.Equal("10100", result.ProjectRefID)
	require.NotNil(t, store.created)
	assert.Equal("alice", store.created.Lead, "projects are created on behalf of the configured user")

	result, err = svc.Create("Demo again", "DEMO", "duplicate key")
	require.NoError(t, err)
	assert.False(result.Success)
	assert.True(result.AlreadyExists)
}

func TestInstanceInfo(t *testing.T) {
	assert := assert.New(t)
	svc, _, conf := newTestService()

	info, err := svc.InstanceInfo()
	require.NoError(t, err)
	assert.Equal([]string{"Open", "Closed"}, info.Statuses)
	assert.Equal([]string{"Major", "Minor"}, info.Priorities)
	assert.Empty(info.Severities, "severity is unmapped by default")
	assert.Equal("Summary", info.AllFields["summary"])

	conf.mapping.Apply(map[types.RequirementField]string{
		types.FieldSeverity: types.CustomFieldPrefix + "customfield_10001",
	})
	info, err = svc.InstanceInfo()
	require.NoError(t, err)
	assert.Equal([]string{"Low", "Medium", "High"}, info.Severities)
}
