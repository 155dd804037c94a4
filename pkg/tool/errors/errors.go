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

// IHTTPError ...
type IHTTPError interface {
	Code() int
	Error() string
	Desc() string
}

// HTTPError ...
type HTTPError struct {
	code int
	err  string
	desc string
}

// NewHTTPError ...
func NewHTTPError(code int, errStr string, args ...string) *HTTPError {
	var desc string
	if len(args) > 0 {
		desc = args[0]
	}

	return &HTTPError{
		code: code,
		err:  errStr,
		desc: desc,
	}
}

// Code ...
func (e *HTTPError) Code() int {
	return e.code
}

// Error ...
func (e *HTTPError) Error() string {
	return e.err
}

// Desc ...
func (e *HTTPError) Desc() string {
	return e.desc
}

// AddDesc returns a copy of the error with the description replaced, so the
// registry entries stay immutable.
func (e *HTTPError) AddDesc(desc string) *HTTPError {
	err := *e
	err.desc = desc
	return &err
}

// AddErr ...
func (e *HTTPError) AddErr(err error) *HTTPError {
	return e.AddDesc(err.Error())
}
