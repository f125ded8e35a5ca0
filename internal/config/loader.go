// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader merges an optional YAML profile with explicitly set flags.
type Loader struct {
	configPath string
}

// NewLoader creates a loader for the profile at configPath. An empty path
// means flags only.
func NewLoader(configPath string) *Loader {
	return &Loader{configPath: strings.TrimSpace(configPath)}
}

// Load resolves the effective options with precedence:
// explicit flag > profile file > flag default.
// explicit reports whether a flag was set on the command line.
func (l *Loader) Load(flags Options, explicit func(flag string) bool) (Options, error) {
	var file *FileConfig
	if l.configPath != "" {
		var err error
		file, err = LoadFileConfig(l.configPath)
		if err != nil {
			return Options{}, fmt.Errorf("load profile %s: %w", l.configPath, err)
		}
	}

	opts := Merge(file, flags, explicit)
	if err := Validate(opts); err != nil {
		return opts, err
	}
	return opts, nil
}

// Merge overlays flags onto the profile. A profile value is used only when
// the corresponding flag was not set explicitly and is non-empty.
func Merge(file *FileConfig, flags Options, explicit func(flag string) bool) Options {
	if explicit == nil {
		explicit = func(string) bool { return false }
	}
	fromFile := file.options()
	out := flags
	for _, e := range registry {
		if explicit(e.Flag) {
			continue
		}
		if v := *e.field(&fromFile); v != "" {
			*e.field(&out) = v
		}
	}
	return out
}

// LoadFileConfig loads a YAML profile with STRICT parsing.
// Unknown fields are rejected to catch misspelled keys.
func LoadFileConfig(path string) (*FileConfig, error) {
	path = filepath.Clean(path)

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("unsupported config format: %s (only YAML supported)", ext)
	}

	// #nosec G304 -- profile paths are provided by the operator via CLI
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var fileCfg FileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true) // Reject unknown fields

	if err := dec.Decode(&fileCfg); err != nil {
		if errors.Is(err, io.EOF) {
			return &FileConfig{}, nil
		}
		if strings.Contains(err.Error(), "field") && strings.Contains(err.Error(), "not found") {
			return nil, fmt.Errorf("%w: %v", ErrUnknownField, err)
		}
		return nil, fmt.Errorf("strict config parse error: %w", err)
	}

	// Strict: Ensure no multiple documents or trailing content
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config file contains multiple documents or trailing content")
	}

	return &fileCfg, nil
}
