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
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"strconv"

	"github.com/google/uuid"

	"github.com/bizdock/jira-link/config"
	e "github.com/bizdock/jira-link/pkg/tool/errors"
	"github.com/bizdock/jira-link/pkg/tool/log"
)

// Secret returns the shared request signing secret, generating and
// persisting one on first use.
func (s *Service) Secret() (string, error) {
	s.mu.RLock()
	if s.secret != "" {
		secret := s.secret
		s.mu.RUnlock()
		return secret, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.secret != "" {
		return s.secret, nil
	}

	value, ok, err := s.store.Get(config.SettingSecretKey)
	if err != nil {
		return "", e.ErrLoadSettings.AddErr(err)
	}
	if !ok {
		value = newSecret()
		if err := s.store.Put(config.SettingSecretKey, value); err != nil {
			return "", e.ErrLoadSettings.AddErr(err)
		}
		log.Infof("generated initial request signing secret")
	}
	s.secret = value
	return s.secret, nil
}

// RotateSecret replaces the shared secret. Signatures computed against the
// previous secret stop verifying immediately.
func (s *Service) RotateSecret() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value := newSecret()
	if err := s.store.Put(config.SettingSecretKey, value); err != nil {
		return "", e.ErrRotateSecret.AddErr(err)
	}
	s.secret = value

	log.Warnf("request signing secret rotated")
	return value, nil
}

func newSecret() string {
	sum := sha256.Sum256([]byte(uuid.NewString()))
	return base64.StdEncoding.EncodeToString(sum[:])
}

// Sign computes the request signature over the secret, the request URI and
// the millisecond timestamp, joined by '#'. The digest is encoded URL-safe
// without padding so it can travel in a header unescaped.
func Sign(secret, requestURI string, timestamp int64) string {
	sum := sha256.Sum256([]byte(secret + "#" + requestURI + "#" + strconv.FormatInt(timestamp, 10)))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

// Verify checks a signature presented for the given request URI and
// timestamp against the current secret in constant time.
func (s *Service) Verify(signature, requestURI string, timestamp int64) (bool, error) {
	secret, err := s.Secret()
	if err != nil {
		return false, err
	}
	expected := Sign(secret, requestURI, timestamp)
	return subtle.ConstantTimeCompare([]byte(signature), []byte(expected)) == 1, nil
}
