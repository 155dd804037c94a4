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
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/bizdock/jira-link/pkg/tool/jira"
	"github.com/bizdock/jira-link/pkg/types"
)

// translate maps one issue to a Requirement, field by field. A field whose
// value cannot be coerced is logged and left unset; the record itself is
// always produced.
func translate(issue *jira.Issue, mapping types.FieldMapping, logger *zap.SugaredLogger) *types.Requirement {
	req := &types.Requirement{ID: issue.Key}

	for _, field := range types.RequirementFields() {
		key := mapping[field]
		if key == "" {
			continue
		}
		value := resolve(issue, key)

		switch field {
		case types.FieldName:
			req.Name = stringifyPtr(value)
		case types.FieldDescription:
			req.Description = stringifyPtr(value)
		case types.FieldCategory:
			req.Category = stringifyPtr(value)
		case types.FieldStatus:
			req.Status = stringifyPtr(value)
		case types.FieldPriority:
			req.Priority = stringifyPtr(value)
		case types.FieldSeverity:
			req.Severity = stringifyPtr(value)
		case types.FieldAuthor:
			if user, ok := value.(*jira.User); ok {
				req.AuthorEmail = &user.EmailAddress
			} else {
				req.AuthorEmail = stringifyPtr(value)
			}
		case types.FieldStoryPoints:
			if value == nil {
				break
			}
			points, err := strconv.ParseFloat(stringify(value), 64)
			if err != nil {
				logger.Warnf("issue %s: field %s mapped to %s is not a number: %v", issue.Key, field, key, err)
				break
			}
			req.StoryPoints = int(points)
		case types.FieldEstimation:
			if value == nil {
				break
			}
			hours, err := strconv.ParseFloat(stringify(value), 64)
			if err != nil {
				logger.Warnf("issue %s: field %s mapped to %s is not a number: %v", issue.Key, field, key, err)
				break
			}
			req.Estimation = int64(hours)
		case types.FieldInScope:
			if value != nil {
				req.InScope = strings.EqualFold(stringify(value), "true")
			}
		}
	}

	return req
}

// resolve reads the value of one mapped field key from the issue. Custom
// field references carry the custom field id after the prefix; every other
// key names one of the supported native fields.
func resolve(issue *jira.Issue, key string) interface{} {
	if strings.HasPrefix(key, types.CustomFieldPrefix) {
		return issue.CustomField(strings.TrimPrefix(key, types.CustomFieldPrefix))
	}

	fields := issue.Fields
	switch key {
	case "summary":
		return nonEmpty(fields.Summary)
	case "description":
		return nonEmpty(fields.Description)
	case "status":
		if fields.Status != nil {
			return fields.Status.Name
		}
	case "priority":
		if fields.Priority != nil {
			return fields.Priority.Name
		}
	case "creator":
		if fields.Creator != nil {
			return fields.Creator
		}
	case "reporter":
		if fields.Reporter != nil {
			return fields.Reporter
		}
	case "assignee":
		if fields.Assignee != nil {
			return fields.Assignee
		}
	case "timeoriginalestimate":
		// Jira stores the estimate in seconds.
		if fields.TimeOriginalEstimate != nil {
			return *fields.TimeOriginalEstimate / 3600
		}
		return int64(0)
	}
	return nil
}

func nonEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// stringify renders a raw field value the way it should appear in a text
// attribute. Jira option and object values carry the display text under
// "value" or "name".
func stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(v, 10)
	case map[string]interface{}:
		if s, ok := v["value"].(string); ok {
			return s
		}
		if s, ok := v["name"].(string); ok {
			return s
		}
		raw, _ := json.Marshal(v)
		return string(raw)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func stringifyPtr(value interface{}) *string {
	if value == nil {
		return nil
	}
	s := stringify(value)
	return &s
}
