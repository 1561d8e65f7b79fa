// config/local.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
)

const (
	DefaultPort   = 6866
	DefaultServer = "https://v2.stopbars.com/"

	LocalConfigFilename = "local.json"
	MappingFilename     = "config.json"
)

// LocalConfig holds the per-installation settings: the user's API token,
// the port used for local connections, and the server to connect to.
type LocalConfig struct {
	Token  string `json:"token,omitempty"`
	Port   int    `json:"port"`
	Server string `json:"server"`

	// S3 holds credentials for s3:// config sources; when empty, the
	// default AWS credential chain is used.
	S3 *S3Credentials `json:"s3,omitempty"`
}

type S3Credentials struct {
	Region          string `json:"region"`
	AccessKeyID     string `json:"access_key_id"`
	SecretAccessKey string `json:"secret_access_key"`
}

// LoadLocalConfig reads local.json from dir. Comments and trailing commas
// are allowed. A missing file gives the defaults.
func LoadLocalConfig(dir string) (LocalConfig, error) {
	lc := LocalConfig{Port: DefaultPort, Server: DefaultServer}

	fn := filepath.Join(dir, LocalConfigFilename)
	data, err := os.ReadFile(fn)
	if errors.Is(err, fs.ErrNotExist) {
		return lc, nil
	} else if err != nil {
		return lc, fmt.Errorf("reading %s: %w", fn, err)
	}

	if err := json.Unmarshal(jsonc.ToJSON(data), &lc); err != nil {
		return lc, fmt.Errorf("%s: %w", fn, err)
	}
	if lc.Port == 0 {
		lc.Port = DefaultPort
	}
	if lc.Server == "" {
		lc.Server = DefaultServer
	}
	return lc, nil
}

// Source maps a config package location to the aerodromes it provides.
// Src is a path relative to the mapping's base directory or a URL with
// an http, https, gs, or s3 scheme.
type Source struct {
	Src        string   `json:"src"`
	Aerodromes []string `json:"aerodromes"`
}

type Mapping struct {
	Config []Source `json:"config"`
	// Base is the directory relative paths are resolved against.
	Base string `json:"base,omitempty"`
}

// LoadMapping reads config.json from dir. A missing file gives an empty
// mapping.
func LoadMapping(dir string) (Mapping, error) {
	fn := filepath.Join(dir, MappingFilename)
	data, err := os.ReadFile(fn)
	if errors.Is(err, fs.ErrNotExist) {
		return Mapping{Base: dir}, nil
	} else if err != nil {
		return Mapping{}, fmt.Errorf("reading %s: %w", fn, err)
	}

	var m Mapping
	if err := json.Unmarshal(jsonc.ToJSON(data), &m); err != nil {
		return Mapping{}, fmt.Errorf("%s: %w", fn, err)
	}
	m.Base = dir
	return m, nil
}
