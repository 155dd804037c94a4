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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultFieldMapping(t *testing.T) {
	assert := assert.New(t)

	m := DefaultFieldMapping()
	assert.Len(m, len(RequirementFields()))
	assert.Equal("summary", m[FieldName])
	assert.Equal("creator", m[FieldAuthor])
	assert.Equal("timeoriginalestimate", m[FieldEstimation])
	assert.Equal("", m[FieldSeverity])
}

func TestApplyOnlyTouchesConfigurableFields(t *testing.T) {
	assert := assert.New(t)

	m := DefaultFieldMapping()
	m.Apply(map[RequirementField]string{
		FieldName:     "somethingelse",
		FieldAuthor:   "reporter",
		FieldSeverity: CustomFieldPrefix + "customfield_10001",
		"Bogus":       "whatever",
	})

	assert.Equal("summary", m[FieldName])
	assert.Equal("reporter", m[FieldAuthor])
	assert.Equal(CustomFieldPrefix+"customfield_10001", m[FieldSeverity])
	assert.NotContains(m, RequirementField("Bogus"))
}

func TestSerializeParseRoundTrip(t *testing.T) {
	assert := assert.New(t)

	m := DefaultFieldMapping()
	m.Apply(map[RequirementField]string{
		FieldAuthor:      "assignee",
		FieldStoryPoints: CustomFieldPrefix + "customfield_10002",
	})

	parsed := ParseFieldMapping(m.Serialize())
	assert.Equal(m, parsed)
}

func TestParseFieldMappingIgnoresJunk(t *testing.T) {
	assert := assert.New(t)

	parsed := ParseFieldMapping("# a comment\n\nAuthor=reporter\nnot a pair\nUnknown=x\nStatus=\n")
	assert.Equal("reporter", parsed[FieldAuthor])
	// blank value keeps the default
	assert.Equal("status", parsed[FieldStatus])
	// every canonical field still has an entry
	assert.Len(parsed, len(RequirementFields()))
}
