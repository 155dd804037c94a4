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
	"go.uber.org/zap"

	"github.com/bizdock/jira-link/pkg/tool/jira"
	"github.com/bizdock/jira-link/pkg/types"
)

func testLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

func seconds(v int64) *int64 {
	return &v
}

func TestTranslateNativeFields(t *testing.T) {
	assert := assert.New(t)

	issue := &jira.Issue{
		ID:  "10010",
		Key: "DEMO-42",
		Fields: jira.IssueFields{
			Summary:              "Add export button",
			Description:          "Users need a CSV export",
			Status:               &jira.Status{Name: "In Progress"},
			Priority:             &jira.Priority{Name: "Major"},
			Creator:              &jira.User{Name: "alice", EmailAddress: "alice@example.com"},
			TimeOriginalEstimate: seconds(7200),
		},
	}

	req := translate(issue, types.DefaultFieldMapping(), testLogger())

	assert.Equal("DEMO-42", req.ID)
	assert.Equal("Add export button", *req.Name)
	assert.Equal("Users need a CSV export", *req.Description)
	assert.Equal("In Progress", *req.Status)
	assert.Equal("Major", *req.Priority)
	assert.Equal("alice@example.com", *req.AuthorEmail)
	assert.Equal(int64(2), req.Estimation, "estimate is converted from seconds to hours")
	// unmapped by default
	assert.Nil(req.Category)
	assert.Nil(req.Severity)
	assert.Zero(req.StoryPoints)
	assert.False(req.InScope)
}

func TestTranslateMissingEstimateYieldsZero(t *testing.T) {
	issue := &jira.Issue{Key: "DEMO-1", Fields: jira.IssueFields{Summary: "x"}}

	req := translate(issue, types.DefaultFieldMapping(), testLogger())
	assert.Equal(t, int64(0), req.Estimation)
}

func TestTranslateCustomFields(t *testing.T) {
	assert := assert.New(t)

	issue := &jira.Issue{
		Key: "DEMO-7",
		Fields: jira.IssueFields{
			Summary: "x",
			All: map[string]interface{}{
				"customfield_10001": map[string]interface{}{"value": "High"},
				"customfield_10002": float64(5.7),
				"customfield_10003": "true",
				"customfield_10004": "Release Q3",
			},
		},
	}

	mapping := types.DefaultFieldMapping()
	mapping.Apply(map[types.RequirementField]string{
		types.FieldSeverity:    types.CustomFieldPrefix + "customfield_10001",
		types.FieldStoryPoints: types.CustomFieldPrefix + "customfield_10002",
		types.FieldInScope:     types.CustomFieldPrefix + "customfield_10003",
		types.FieldCategory:    types.CustomFieldPrefix + "customfield_10004",
	})

	req := translate(issue, mapping, testLogger())

	assert.Equal("High", *req.Severity)
	assert.Equal(5, req.StoryPoints, "story points are truncated to an integer")
	assert.True(req.InScope)
	assert.Equal("Release Q3", *req.Category)
}

func TestTranslateAbsentCustomFieldStaysUnset(t *testing.T) {
	assert := assert.New(t)

	issue := &jira.Issue{Key: "DEMO-8", Fields: jira.IssueFields{Summary: "x"}}
	mapping := types.DefaultFieldMapping()
	mapping.Apply(map[types.RequirementField]string{
		types.FieldSeverity: types.CustomFieldPrefix + "customfield_10001",
	})

	req := translate(issue, mapping, testLogger())
	assert.Nil(req.Severity)
}

func TestTranslateNonNumericValueIsSkippedNotFatal(t *testing.T) {
	assert := assert.New(t)

	issue := &jira.Issue{
		Key: "DEMO-9",
		Fields: jira.IssueFields{
			Summary: "still translated",
			All: map[string]interface{}{
				"customfield_10002": "not a number",
			},
		},
	}
	mapping := types.DefaultFieldMapping()
	mapping.Apply(map[types.RequirementField]string{
		types.FieldStoryPoints: types.CustomFieldPrefix + "customfield_10002",
		types.FieldEstimation:  types.CustomFieldPrefix + "customfield_10002",
	})

	req := translate(issue, mapping, testLogger())

	assert.Zero(req.StoryPoints)
	assert.Zero(req.Estimation)
	assert.Equal("still translated", *req.Name)
}

func TestTranslateInScopeIsLenient(t *testing.T) {
	assert := assert.New(t)

	mapping := types.DefaultFieldMapping()
	mapping.Apply(map[types.RequirementField]string{
		types.FieldInScope: types.CustomFieldPrefix + "customfield_10003",
	})

	for raw, expected := range map[interface{}]bool{
		"true":  true,
		"TRUE":  true,
		"false": false,
		"yes":   false,
		true:    true,
	} {
		issue := &jira.Issue{
			Key: "DEMO-10",
			Fields: jira.IssueFields{
				All: map[string]interface{}{"customfield_10003": raw},
			},
		}
		req := translate(issue, mapping, testLogger())
		assert.Equal(expected, req.InScope, "value %v", raw)
	}
}

func TestTranslateAuthorAlternatives(t *testing.T) {
	assert := assert.New(t)

	issue := &jira.Issue{
		Key: "DEMO-11",
		Fields: jira.IssueFields{
			Creator:  &jira.User{EmailAddress: "creator@example.com"},
			Reporter: &jira.User{EmailAddress: "reporter@example.com"},
		},
	}

	mapping := types.DefaultFieldMapping()
	req := translate(issue, mapping, testLogger())
	assert.Equal("creator@example.com", *req.AuthorEmail)

	mapping.Apply(map[types.RequirementField]string{types.FieldAuthor: "reporter"})
	req = translate(issue, mapping, testLogger())
	assert.Equal("reporter@example.com", *req.AuthorEmail)

	// unassigned issue with the assignee mapping keeps the author null
	mapping.Apply(map[types.RequirementField]string{types.FieldAuthor: "assignee"})
	req = translate(issue, mapping, testLogger())
	assert.Nil(req.AuthorEmail)
}
