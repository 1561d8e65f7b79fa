// platform/settings.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package platform

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/stopbars/bars/log"

	"github.com/iancoleman/orderedmap"
)

// Settings is the host's durable, string-keyed storage for a single
// view. Set is fire-and-forget: failures are the store's concern.
type Settings interface {
	Get(key string) (string, bool)
	Set(key, description, value string)
}

// FileSettings stores settings for one view as a JSON object in a file,
// preserving the order in which keys were first written so that the file
// stays stable and readable across saves.
type FileSettings struct {
	path   string
	values *orderedmap.OrderedMap
	lg     *log.Logger
}

var _ Settings = (*FileSettings)(nil)

// LoadFileSettings reads the settings stored at path. A missing file is
// not an error; it gives empty settings that will be created on the
// first Set.
func LoadFileSettings(path string, lg *log.Logger) (*FileSettings, error) {
	s := &FileSettings{
		path:   path,
		values: orderedmap.New(),
		lg:     lg,
	}
	s.values.SetEscapeHTML(false)

	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		lg.Debugf("%s: no settings file; starting empty", path)
		return s, nil
	} else if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(b, s.values); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func (s *FileSettings) Path() string {
	return s.path
}

func (s *FileSettings) Keys() []string {
	return s.values.Keys()
}

func (s *FileSettings) Get(key string) (string, bool) {
	v, ok := s.values.Get(key)
	if !ok {
		return "", false
	}
	str, ok := v.(string)
	return str, ok
}

func (s *FileSettings) Set(key, description, value string) {
	s.values.Set(key, value)
	s.lg.Debug("saving setting", "key", key, "description", description, "value", value)

	if err := s.save(); err != nil {
		s.lg.Errorf("%s: unable to save settings: %v", s.path, err)
	}
}

func (s *FileSettings) save() error {
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}

	b, err := json.MarshalIndent(s.values, "", "    ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// MemorySettings is a Settings that is never persisted.
type MemorySettings map[string]string

func (m MemorySettings) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m MemorySettings) Set(key, description, value string) {
	m[key] = value
}
