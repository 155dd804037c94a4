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

// Package jql expands stored JQL query templates. A template is plain JQL
// with Go template placeholders; {{.jiraProjectKey}} is reserved for the
// resolved project key, every other placeholder is filled from the caller
// supplied parameters.
package jql

import (
	"bytes"
	gotemplate "text/template"

	"github.com/pkg/errors"

	"github.com/bizdock/jira-link/config"
)

// Expand renders the template against the project key and parameters.
// Rendering is strict: an unresolvable placeholder or malformed template
// fails, a partially expanded query is never returned.
func Expand(template, projectKey string, parameters map[string]interface{}) (string, error) {
	tmpl, err := gotemplate.New("jql").Option("missingkey=error").Parse(template)
	if err != nil {
		return "", errors.Wrap(err, "failed to parse JQL template")
	}

	data := make(map[string]interface{}, len(parameters)+1)
	for k, v := range parameters {
		data[k] = v
	}
	data[config.ProjectKeyVariable] = projectKey

	buf := bytes.NewBufferString("")
	if err := tmpl.Execute(buf, data); err != nil {
		return "", errors.Wrap(err, "failed to expand JQL template")
	}

	return buf.String(), nil
}

// Validate dry-runs the template against a synthetic context, the same check
// performed before a new template is persisted.
func Validate(template string) error {
	_, err := Expand(template, "SYNTHETIC", nil)
	return err
}
