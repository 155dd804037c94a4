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

package errors

var (
	//-----------------------------------------------------------------------------------------------
	// Standard Error
	//-----------------------------------------------------------------------------------------------

	// ErrInvalidParam ...
	ErrInvalidParam = NewHTTPError(400, "Bad Request")
	// ErrUnauthorized ...
	ErrUnauthorized = NewHTTPError(401, "Unauthorized")
	// ErrForbidden ...
	ErrForbidden = NewHTTPError(403, "Forbidden")
	// ErrNotFound ...
	ErrNotFound = NewHTTPError(404, "Request Not Found")
	// ErrInternalError ...
	ErrInternalError = NewHTTPError(500, "Internal Error")

	//-----------------------------------------------------------------------------------------------
	// Requirement APIs Range: 6000 - 6019
	//-----------------------------------------------------------------------------------------------

	// ErrFindNeeds ...
	ErrFindNeeds = NewHTTPError(6000, "failed to retrieve needs")
	// ErrFindDefects ...
	ErrFindDefects = NewHTTPError(6001, "failed to retrieve defects")

	//-----------------------------------------------------------------------------------------------
	// Project APIs Range: 6020 - 6039
	//-----------------------------------------------------------------------------------------------

	// ErrListProjects ...
	ErrListProjects = NewHTTPError(6020, "failed to list projects")
	// ErrFindProject ...
	ErrFindProject = NewHTTPError(6021, "failed to find project")
	// ErrCreateProject ...
	ErrCreateProject = NewHTTPError(6022, "failed to create project")
	// ErrGetInstanceInfo ...
	ErrGetInstanceInfo = NewHTTPError(6023, "failed to read Jira instance information")

	//-----------------------------------------------------------------------------------------------
	// Configuration APIs Range: 6100 - 6119 (reported as configuration errors)
	//-----------------------------------------------------------------------------------------------

	// ErrLoadSettings ...
	ErrLoadSettings = NewHTTPError(6100, "failed to load the bridge configuration")
	// ErrUpdateMapping ...
	ErrUpdateMapping = NewHTTPError(6101, "failed to update the field mapping")
	// ErrUpdateTemplate ...
	ErrUpdateTemplate = NewHTTPError(6102, "failed to update the JQL template")
	// ErrValidateTemplate ...
	ErrValidateTemplate = NewHTTPError(6103, "the JQL template does not expand")
	// ErrUpdateCreationUser ...
	ErrUpdateCreationUser = NewHTTPError(6104, "failed to update the project creation user")
	// ErrRotateSecret ...
	ErrRotateSecret = NewHTTPError(6105, "failed to rotate the secret key")
	// ErrResetSettings ...
	ErrResetSettings = NewHTTPError(6106, "failed to reset the bridge configuration")
)

// configuration error code range
const (
	configErrCodeFirst = 6100
	configErrCodeLast  = 6119
)

// IsConfiguration reports whether the error belongs to the configuration
// range, which callers surface with a dedicated classification.
func IsConfiguration(err error) bool {
	v, ok := err.(*HTTPError)
	return ok && v.code >= configErrCodeFirst && v.code <= configErrCodeLast
}
