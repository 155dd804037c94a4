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

package setting

const (
	ProductName = "jira-link"

	ENVMode          = "MODE"
	ENVPort          = "PORT"
	ENVMongoURI      = "MONGODB_URI"
	ENVMongoDatabase = "MONGODB_DB"
	ENVJiraHost      = "JIRA_HOST"
	ENVJiraUser      = "JIRA_USER"
	ENVJiraToken     = "JIRA_TOKEN"
	ENVAdminGroup    = "JIRA_ADMIN_GROUP"

	DebugMode   = "debug"
	ReleaseMode = "release"
	TestMode    = "test"

	RequestID = "requestID"

	// Headers carried by every signed BizDock call.
	AuthSignatureHeader = "X-Jira-Bizdock-Auth"
	AuthTimestampHeader = "X-Jira-Bizdock-Timestamp"
)
