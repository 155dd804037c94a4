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

	"github.com/bizdock/jira-link/config"
	"github.com/bizdock/jira-link/pkg/tool/jira"
	"github.com/bizdock/jira-link/pkg/types"
)

type fakeStore struct {
	data map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string]string{}}
}

func (s *fakeStore) Get(key string) (string, bool, error) {
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *fakeStore) Put(key, value string) error {
	s.data[key] = value
	return nil
}

type fakeAdmins struct {
	users []*jira.User
}

func (a *fakeAdmins) Administrators() ([]*jira.User, error) {
	return a.users, nil
}

func newService(store *fakeStore) *Service {
	return New(store, &fakeAdmins{users: []*jira.User{
		{Name: "alice", EmailAddress: "alice@example.com", Active: true},
		{Name: "bob", EmailAddress: "bob@example.com", Active: true},
	}})
}

func TestFirstLoadSeedsDefaults(t *testing.T) {
	assert := assert.New(t)
	store := newFakeStore()
	svc := newService(store)

	conf, err := svc.Configuration()
	require.NoError(t, err)

	assert.Equal(config.DefaultNeedsJQLTemplate, conf.NeedsJQLTemplate)
	assert.Equal(config.DefaultDefectsJQLTemplate, conf.DefectsJQLTemplate)
	assert.Equal(types.DefaultFieldMapping(), conf.Mapping)
	// first administrator is persisted as the creation user
	assert.Equal("alice", conf.CreationUser)
	assert.Equal("alice", store.data[config.SettingCreationUser])
}

func TestLoadUsesPersistedValues(t *testing.T) {
	assert := assert.New(t)
	store := newFakeStore()
	store.data[config.SettingNeedsJQL] = `project = {{.jiraProjectKey}} AND issuetype = Story`
	store.data[config.SettingCreationUser] = "bob"
	store.data[config.SettingFieldMapping] = "Author=assignee\n"
	svc := newService(store)

	conf, err := svc.Configuration()
	require.NoError(t, err)

	assert.Equal(`project = {{.jiraProjectKey}} AND issuetype = Story`, conf.NeedsJQLTemplate)
	assert.Equal("bob", conf.CreationUser)
	assert.Equal("assignee", conf.Mapping[types.FieldAuthor])
	// fields absent from the persisted mapping fall back to their default
	assert.Equal("summary", conf.Mapping[types.FieldName])
}

func TestUpdateMapping(t *testing.T) {
	assert := assert.New(t)
	store := newFakeStore()
	svc := newService(store)

	mapping, err := svc.UpdateMapping(map[types.RequirementField]string{
		types.FieldAuthor:   "reporter",
		types.FieldSeverity: types.CustomFieldPrefix + "customfield_10100",
	})
	require.NoError(t, err)

	assert.Equal("reporter", mapping[types.FieldAuthor])
	assert.Contains(store.data[config.SettingFieldMapping], "Author=reporter")

	// a non-configurable field silently keeps its default
	mapping, err = svc.UpdateMapping(map[types.RequirementField]string{types.FieldName: "labels"})
	require.NoError(t, err)
	assert.Equal("summary", mapping[types.FieldName])

	_, err = svc.UpdateMapping(map[types.RequirementField]string{"NoSuchField": "x"})
	assert.Error(err)
}

func TestUpdateTemplateRejectsBrokenTemplate(t *testing.T) {
	assert := assert.New(t)
	store := newFakeStore()
	svc := newService(store)

	valid := `project = {{.jiraProjectKey}} AND issuetype = Task`
	require.NoError(t, svc.UpdateTemplate(TemplateNeeds, valid))

	err := svc.UpdateTemplate(TemplateNeeds, `project = {{.jiraProjectKey}} AND sprint = {{.sprint}}`)
	assert.Error(err)

	// the previously stored template survives a rejected update
	tpl, err := svc.Template(TemplateNeeds)
	require.NoError(t, err)
	assert.Equal(valid, tpl)

	assert.Error(svc.UpdateTemplate(TemplateKind("nope"), valid))
}

func TestUpdateCreationUser(t *testing.T) {
	assert := assert.New(t)
	store := newFakeStore()
	svc := New(store, &fakeAdmins{users: []*jira.User{
		{Name: "alice", Active: true},
		{Name: "carol", Active: false},
	}})

	require.NoError(t, svc.UpdateCreationUser("alice"))
	user, err := svc.CreationUser()
	require.NoError(t, err)
	assert.Equal("alice", user)

	assert.Error(svc.UpdateCreationUser("carol"), "inactive administrators are rejected")
	assert.Error(svc.UpdateCreationUser("mallory"), "unknown users are rejected")
}

func TestReset(t *testing.T) {
	assert := assert.New(t)
	store := newFakeStore()
	svc := newService(store)

	require.NoError(t, svc.UpdateTemplate(TemplateDefects, `project = {{.jiraProjectKey}}`))
	_, err := svc.UpdateMapping(map[types.RequirementField]string{types.FieldAuthor: "assignee"})
	require.NoError(t, err)

	require.NoError(t, svc.Reset())

	conf, err := svc.Configuration()
	require.NoError(t, err)
	assert.Equal(config.DefaultDefectsJQLTemplate, conf.DefectsJQLTemplate)
	assert.Equal(types.DefaultFieldMapping(), conf.Mapping)
	assert.Equal("alice", conf.CreationUser)
}
