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

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/bizdock/jira-link/pkg/setting"
)

func Mode() string {
	mode := viper.GetString(setting.ENVMode)
	if mode == "" {
		return setting.DebugMode
	}

	return mode
}

func Port() int {
	port := viper.GetInt(setting.ENVPort)
	if port == 0 {
		return 25000
	}

	return port
}

func MongoURI() string {
	return viper.GetString(setting.ENVMongoURI)
}

func MongoDatabase() string {
	db := viper.GetString(setting.ENVMongoDatabase)
	if db == "" {
		return setting.ProductName
	}

	return db
}

// JiraHost is the base URL of the Jira installation,
// for example: https://jira.example.org or http://1.2.3.4:8080
func JiraHost() string {
	return viper.GetString(setting.ENVJiraHost)
}

func JiraUser() string {
	return viper.GetString(setting.ENVJiraUser)
}

func JiraToken() string {
	return viper.GetString(setting.ENVJiraToken)
}

// JiraAdminGroup is the group whose members may be picked as the
// project creation user.
func JiraAdminGroup() string {
	group := viper.GetString(setting.ENVAdminGroup)
	if group == "" {
		return "jira-administrators"
	}

	return group
}

func LogLevel() string {
	return "debug"
}

func SendLogToFile() bool {
	return true
}

func LogPath() string {
	return fmt.Sprintf("/var/log/%s/", setting.ProductName)
}

func LogName() string {
	return "bridge.log"
}

func RequestLogName() string {
	return "request.log"
}

func LogFile() string {
	return LogPath() + LogName()
}

func RequestLogFile() string {
	return LogPath() + RequestLogName()
}
