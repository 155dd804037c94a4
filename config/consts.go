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

package config

// Persisted setting keys. These round-trip through the settings store and
// must stay stable across releases.
const (
	SettingSecretKey    = "config.secret.key"
	SettingNeedsJQL     = "config.needs.jql"
	SettingDefectsJQL   = "config.defects.jql"
	SettingFieldMapping = "config.field.mapping"
	SettingCreationUser = "config.create.project.user"
)

// ProjectKeyVariable is the reserved template variable which is bound to the
// resolved Jira project key when a JQL template is expanded.
const ProjectKeyVariable = "jiraProjectKey"

const (
	DefaultNeedsJQLTemplate   = `project = {{.jiraProjectKey}} AND issuetype in (Epic, Improvement, "New Feature")`
	DefaultDefectsJQLTemplate = `project = {{.jiraProjectKey}} AND issuetype = Bug`
)
