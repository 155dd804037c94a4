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
	"fmt"
	"sort"
	"strings"
)

// RequirementField enumerates the canonical attributes of a Requirement,
// independent of how the Jira instance names its fields.
type RequirementField string

const (
	FieldName        RequirementField = "Name"
	FieldDescription RequirementField = "Description"
	FieldCategory    RequirementField = "Category"
	FieldStatus      RequirementField = "Status"
	FieldPriority    RequirementField = "Priority"
	FieldSeverity    RequirementField = "Severity"
	FieldAuthor      RequirementField = "Author"
	FieldStoryPoints RequirementField = "StoryPoints"
	FieldEstimation  RequirementField = "Estimation"
	FieldInScope     RequirementField = "InScope"
)

// CustomFieldPrefix tags a mapped Jira field key as a custom field
// reference. The remainder of the key is the custom field id.
const CustomFieldPrefix = "#!custom!#"

// FieldSpec describes how one canonical field may be mapped:
// the default Jira field key ("" means unmapped by default), whether an
// administrator may repoint it, and the closed list of legal alternatives.
// An alternative equal to CustomFieldPrefix means "any custom field".
type FieldSpec struct {
	Default      string
	Configurable bool
	Alternatives []string
}

var fieldSpecs = map[RequirementField]FieldSpec{
	FieldName:        {Default: "summary"},
	FieldDescription: {Default: "description"},
	FieldCategory:    {Configurable: true, Alternatives: []string{CustomFieldPrefix}},
	FieldStatus:      {Default: "status"},
	FieldPriority:    {Default: "priority"},
	FieldSeverity:    {Configurable: true, Alternatives: []string{CustomFieldPrefix}},
	FieldAuthor:      {Default: "creator", Configurable: true, Alternatives: []string{CustomFieldPrefix, "reporter", "assignee"}},
	FieldStoryPoints: {Configurable: true, Alternatives: []string{CustomFieldPrefix}},
	FieldEstimation:  {Default: "timeoriginalestimate", Configurable: true, Alternatives: []string{CustomFieldPrefix}},
	FieldInScope:     {Configurable: true, Alternatives: []string{CustomFieldPrefix}},
}

var fieldOrder = []RequirementField{
	FieldName, FieldDescription, FieldCategory, FieldStatus, FieldPriority,
	FieldSeverity, FieldAuthor, FieldStoryPoints, FieldEstimation, FieldInScope,
}

// RequirementFields returns every canonical field in a stable order.
func RequirementFields() []RequirementField {
	out := make([]RequirementField, len(fieldOrder))
	copy(out, fieldOrder)
	return out
}

func (f RequirementField) Spec() FieldSpec {
	return fieldSpecs[f]
}

func (f RequirementField) Valid() bool {
	_, ok := fieldSpecs[f]
	return ok
}

// FieldMapping maps every canonical field to exactly one Jira field key.
type FieldMapping map[RequirementField]string

// DefaultFieldMapping returns a fully populated mapping seeded with every
// field's default key.
func DefaultFieldMapping() FieldMapping {
	m := make(FieldMapping, len(fieldOrder))
	for _, f := range fieldOrder {
		m[f] = fieldSpecs[f].Default
	}
	return m
}

// Apply overlays the configurable entries of partial onto the mapping.
// Non-configurable fields keep their default key no matter what.
func (m FieldMapping) Apply(partial map[RequirementField]string) {
	for f, key := range partial {
		if f.Valid() && f.Spec().Configurable {
			m[f] = key
		}
	}
}

// Serialize renders the mapping as one "Field=key" line per canonical field,
// the stable representation persisted in the settings store.
func (m FieldMapping) Serialize() string {
	var sb strings.Builder
	for _, f := range fieldOrder {
		fmt.Fprintf(&sb, "%s=%s\n", f, m[f])
	}
	return sb.String()
}

// ParseFieldMapping loads a serialized mapping over the defaults, so every
// canonical field always ends up with exactly one key. Unknown field names
// and blank values are ignored.
func ParseFieldMapping(serialized string) FieldMapping {
	m := DefaultFieldMapping()
	for _, line := range strings.Split(serialized, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		f := RequirementField(strings.TrimSpace(parts[0]))
		key := strings.TrimSpace(parts[1])
		if f.Valid() && key != "" {
			m[f] = key
		}
	}
	return m
}

// SortedFieldNames is a convenience for deterministic admin output.
func (m FieldMapping) SortedFieldNames() []string {
	names := make([]string, 0, len(m))
	for f := range m {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return names
}

// Requirement is the canonical record handed back to BizDock. String fields
// are pointers so an unmapped or missing Jira field stays null on the wire.
type Requirement struct {
	ID          string  `json:"id"`
	Defect      bool    `json:"defect"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	Severity    *string `json:"severity"`
	AuthorEmail *string `json:"authorEmail"`
	StoryPoints int     `json:"storyPoints"`
	Estimation  int64   `json:"estimation"`
	Iteration   *string `json:"iteration"`
	InScope     bool    `json:"inScope"`
}
