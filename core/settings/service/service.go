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

// Package service owns the bridge configuration: the field mapping, the two
// JQL templates, the shared secret and the project creation user. Values are
// loaded lazily from the settings store, cached for the process lifetime and
// mutated under a single lock so readers always see a consistent snapshot.
package service

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/bizdock/jira-link/config"
	"github.com/bizdock/jira-link/core/common/jql"
	e "github.com/bizdock/jira-link/pkg/tool/errors"
	"github.com/bizdock/jira-link/pkg/tool/jira"
	"github.com/bizdock/jira-link/pkg/tool/log"
	"github.com/bizdock/jira-link/pkg/types"
)

// SettingStore is the key/value persistence collaborator.
type SettingStore interface {
	Get(key string) (string, bool, error)
	Put(key, value string) error
}

// AdminLister yields the Jira administrators in a stable order, used to pick
// a default project creation user deterministically.
type AdminLister interface {
	Administrators() ([]*jira.User, error)
}

type TemplateKind string

const (
	TemplateNeeds   TemplateKind = "needs"
	TemplateDefects TemplateKind = "defects"
)

// Configuration is an immutable snapshot of the bridge settings.
type Configuration struct {
	NeedsJQLTemplate   string             `json:"needsJqlTemplate"`
	DefectsJQLTemplate string             `json:"defectsJqlTemplate"`
	Mapping            types.FieldMapping `json:"mapping"`
	CreationUser       string             `json:"creationUser"`
}

type Service struct {
	store  SettingStore
	admins AdminLister

	mu     sync.RWMutex
	conf   *Configuration
	secret string
}

func New(store SettingStore, admins AdminLister) *Service {
	return &Service{store: store, admins: admins}
}

// Configuration returns the current settings snapshot, loading and seeding
// defaults on first access.
func (s *Service) Configuration() (*Configuration, error) {
	s.mu.RLock()
	if s.conf != nil {
		conf := snapshot(s.conf)
		s.mu.RUnlock()
		return conf, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoadedLocked(); err != nil {
		return nil, err
	}
	return snapshot(s.conf), nil
}

func (s *Service) ensureLoadedLocked() error {
	if s.conf != nil {
		return nil
	}

	conf := &Configuration{
		NeedsJQLTemplate:   config.DefaultNeedsJQLTemplate,
		DefectsJQLTemplate: config.DefaultDefectsJQLTemplate,
		Mapping:            types.DefaultFieldMapping(),
	}

	if v, ok, err := s.store.Get(config.SettingNeedsJQL); err != nil {
		return e.ErrLoadSettings.AddErr(err)
	} else if ok {
		conf.NeedsJQLTemplate = v
	}
	if v, ok, err := s.store.Get(config.SettingDefectsJQL); err != nil {
		return e.ErrLoadSettings.AddErr(err)
	} else if ok {
		conf.DefectsJQLTemplate = v
	}
	if v, ok, err := s.store.Get(config.SettingFieldMapping); err != nil {
		return e.ErrLoadSettings.AddErr(err)
	} else if ok {
		conf.Mapping = types.ParseFieldMapping(v)
	}

	v, ok, err := s.store.Get(config.SettingCreationUser)
	if err != nil {
		return e.ErrLoadSettings.AddErr(err)
	}
	if ok {
		conf.CreationUser = v
	} else {
		user, err := s.defaultCreationUser()
		if err != nil {
			return e.ErrLoadSettings.AddErr(err)
		}
		if err := s.store.Put(config.SettingCreationUser, user); err != nil {
			return e.ErrLoadSettings.AddErr(err)
		}
		conf.CreationUser = user
	}

	s.conf = conf
	return nil
}

func (s *Service) defaultCreationUser() (string, error) {
	admins, err := s.admins.Administrators()
	if err != nil {
		return "", errors.Wrap(err, "failed to list administrators")
	}
	if len(admins) == 0 {
		return "", errors.New("no administrator available for project creation")
	}
	return admins[0].Name, nil
}

func snapshot(conf *Configuration) *Configuration {
	out := *conf
	out.Mapping = make(types.FieldMapping, len(conf.Mapping))
	for f, key := range conf.Mapping {
		out.Mapping[f] = key
	}
	return &out
}

// Mapping returns the full field mapping, every canonical field mapped to
// exactly one key.
func (s *Service) Mapping() (types.FieldMapping, error) {
	conf, err := s.Configuration()
	if err != nil {
		return nil, err
	}
	return conf.Mapping, nil
}

// UpdateMapping overlays the configurable entries of partial and persists
// the result atomically with the cache update.
func (s *Service) UpdateMapping(partial map[types.RequirementField]string) (types.FieldMapping, error) {
	for f := range partial {
		if !f.Valid() {
			return nil, e.ErrInvalidParam.AddDesc("unknown requirement field " + string(f))
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoadedLocked(); err != nil {
		return nil, err
	}

	mapping := snapshot(s.conf).Mapping
	mapping.Apply(partial)

	if err := s.store.Put(config.SettingFieldMapping, mapping.Serialize()); err != nil {
		return nil, e.ErrUpdateMapping.AddErr(err)
	}
	s.conf.Mapping = mapping

	log.Infof("requirement field mapping updated: %d entries changed", len(partial))
	return snapshot(s.conf).Mapping, nil
}

// Template returns the stored template of the given kind.
func (s *Service) Template(kind TemplateKind) (string, error) {
	conf, err := s.Configuration()
	if err != nil {
		return "", err
	}
	switch kind {
	case TemplateNeeds:
		return conf.NeedsJQLTemplate, nil
	case TemplateDefects:
		return conf.DefectsJQLTemplate, nil
	}
	return "", e.ErrInvalidParam.AddDesc("unknown template kind " + string(kind))
}

// UpdateTemplate validates the new template by a dry-run expansion and
// persists it. A template that does not expand is rejected and the stored
// value is left untouched.
func (s *Service) UpdateTemplate(kind TemplateKind, template string) error {
	if kind != TemplateNeeds && kind != TemplateDefects {
		return e.ErrInvalidParam.AddDesc("unknown template kind " + string(kind))
	}
	if err := jql.Validate(template); err != nil {
		return e.ErrValidateTemplate.AddErr(err)
	}

	key := config.SettingNeedsJQL
	if kind == TemplateDefects {
		key = config.SettingDefectsJQL
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoadedLocked(); err != nil {
		return err
	}
	if err := s.store.Put(key, template); err != nil {
		return e.ErrUpdateTemplate.AddErr(err)
	}
	if kind == TemplateNeeds {
		s.conf.NeedsJQLTemplate = template
	} else {
		s.conf.DefectsJQLTemplate = template
	}

	log.Infof("JQL template %s updated", kind)
	return nil
}

// CreationUser returns the user on whose behalf projects are created.
func (s *Service) CreationUser() (string, error) {
	conf, err := s.Configuration()
	if err != nil {
		return "", err
	}
	return conf.CreationUser, nil
}

// UpdateCreationUser repoints project creation to the given user, who must
// be an active administrator.
func (s *Service) UpdateCreationUser(name string) error {
	admins, err := s.admins.Administrators()
	if err != nil {
		return e.ErrUpdateCreationUser.AddErr(err)
	}
	valid := false
	for _, admin := range admins {
		if admin.Name == name && admin.Active {
			valid = true
			break
		}
	}
	if !valid {
		return e.ErrInvalidParam.AddDesc("unknown or inactive administrator " + name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoadedLocked(); err != nil {
		return err
	}
	if err := s.store.Put(config.SettingCreationUser, name); err != nil {
		return e.ErrUpdateCreationUser.AddErr(err)
	}
	s.conf.CreationUser = name

	return nil
}

// Reset restores the default templates, mapping and creation user, keeping
// the secret untouched.
func (s *Service) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.defaultCreationUser()
	if err != nil {
		return e.ErrResetSettings.AddErr(err)
	}

	conf := &Configuration{
		NeedsJQLTemplate:   config.DefaultNeedsJQLTemplate,
		DefectsJQLTemplate: config.DefaultDefectsJQLTemplate,
		Mapping:            types.DefaultFieldMapping(),
		CreationUser:       user,
	}

	if err := s.store.Put(config.SettingNeedsJQL, conf.NeedsJQLTemplate); err != nil {
		return e.ErrResetSettings.AddErr(err)
	}
	if err := s.store.Put(config.SettingDefectsJQL, conf.DefectsJQLTemplate); err != nil {
		return e.ErrResetSettings.AddErr(err)
	}
	if err := s.store.Put(config.SettingFieldMapping, conf.Mapping.Serialize()); err != nil {
		return e.ErrResetSettings.AddErr(err)
	}
	if err := s.store.Put(config.SettingCreationUser, conf.CreationUser); err != nil {
		return e.ErrResetSettings.AddErr(err)
	}

	s.conf = conf
	log.Warnf("bridge configuration reset to defaults")
	return nil
}
