// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

// Options is the effective set of generator parameters after flags and the
// optional profile file have been merged.
type Options struct {
	Arch        string
	ProjectName string
	XSAPath     string
	ELFPath     string
	FSBLPath    string
	ProjectDir  string
	Output      string

	LogLevel  string
	LogFormat string
}

// FileConfig is the on-disk YAML profile. Every key is optional; explicitly
// set flags take precedence over it.
type FileConfig struct {
	Arch        string `yaml:"arch,omitempty"`
	ProjectName string `yaml:"projectName,omitempty"`
	XSAPath     string `yaml:"xsaPath,omitempty"`
	ELFPath     string `yaml:"elfPath,omitempty"`
	FSBLPath    string `yaml:"fsblPath,omitempty"`
	ProjectDir  string `yaml:"projectDir,omitempty"`
	Output      string `yaml:"output,omitempty"`

	LogLevel  string `yaml:"logLevel,omitempty"`
	LogFormat string `yaml:"logFormat,omitempty"`
}

func (f *FileConfig) options() Options {
	if f == nil {
		return Options{}
	}
	return Options{
		Arch:        f.Arch,
		ProjectName: f.ProjectName,
		XSAPath:     f.XSAPath,
		ELFPath:     f.ELFPath,
		FSBLPath:    f.FSBLPath,
		ProjectDir:  f.ProjectDir,
		Output:      f.Output,
		LogLevel:    f.LogLevel,
		LogFormat:   f.LogFormat,
	}
}
