// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ManuGH/vitislaunch/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func fullOptions() Options {
	return Options{
		Arch:        "psu_cortexa53_0",
		ProjectName: "demo",
		XSAPath:     "system_top.xsa",
		ELFPath:     "/abs/app.elf",
		FSBLPath:    "build/fsbl.elf",
		ProjectDir:  "/abs",
		Output:      "/abs/_ide/launch.json",
		LogLevel:    "info",
		LogFormat:   "console",
	}
}

func explicitSet(names ...string) func(string) bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return func(flag string) bool { return set[flag] }
}

func TestLoadFileConfig_Valid(t *testing.T) {
	p := writeProfile(t, "profile.yaml", `
arch: ps7_cortexa9_0
projectName: blinky
xsaPath: hw/zed.xsa
elfPath: /abs/blinky.elf
fsblPath: build/fsbl.elf
projectDir: /abs
output: /abs/.vscode/launch.json
logLevel: debug
`)
	cfg, err := LoadFileConfig(p)
	require.NoError(t, err)
	assert.Equal(t, "ps7_cortexa9_0", cfg.Arch)
	assert.Equal(t, "blinky", cfg.ProjectName)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Empty(t, cfg.LogFormat)
}

func TestLoadFileConfig_Errors(t *testing.T) {
	t.Run("unknown key", func(t *testing.T) {
		p := writeProfile(t, "profile.yaml", "arch: sys_mb\nboard: zcu102\n")
		_, err := LoadFileConfig(p)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnknownField), err.Error())
	})
	t.Run("wrong extension", func(t *testing.T) {
		p := writeProfile(t, "profile.json", `{"arch":"sys_mb"}`)
		_, err := LoadFileConfig(p)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "only YAML supported")
	})
	t.Run("multiple documents", func(t *testing.T) {
		p := writeProfile(t, "profile.yml", "arch: sys_mb\n---\narch: psu_cortexr5_0\n")
		_, err := LoadFileConfig(p)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "multiple documents")
	})
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFileConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})
	t.Run("malformed yaml", func(t *testing.T) {
		p := writeProfile(t, "profile.yaml", "arch: [unterminated\n")
		_, err := LoadFileConfig(p)
		require.Error(t, err)
		assert.False(t, errors.Is(err, ErrUnknownField))
	})
}

func TestLoadFileConfig_EmptyFile(t *testing.T) {
	p := writeProfile(t, "profile.yaml", "")
	cfg, err := LoadFileConfig(p)
	require.NoError(t, err)
	assert.Equal(t, FileConfig{}, *cfg)
}

func TestMerge_Precedence(t *testing.T) {
	file := &FileConfig{
		Arch:        "sys_mb",
		ProjectName: "from-file",
		Output:      "/file/launch.json",
		LogFormat:   "json",
	}
	flags := Options{
		Arch:        "psu_cortexr5_0",
		ProjectName: "",
		Output:      "",
		LogLevel:    "info",
		LogFormat:   "console",
	}

	got := Merge(file, flags, explicitSet(FlagArch, FlagLogFormat))

	assert.Equal(t, "psu_cortexr5_0", got.Arch, "explicit flag beats profile")
	assert.Equal(t, "from-file", got.ProjectName, "profile fills unset flag")
	assert.Equal(t, "/file/launch.json", got.Output)
	assert.Equal(t, "console", got.LogFormat, "explicit flag beats profile even when it equals the default")
	assert.Equal(t, "info", got.LogLevel, "flag default kept when profile is silent")
}

func TestMerge_NilFile(t *testing.T) {
	flags := fullOptions()
	assert.Equal(t, flags, Merge(nil, flags, nil))
}

func TestValidate_ReportsAllMissing(t *testing.T) {
	opts := fullOptions()
	opts.ProjectName = ""
	opts.FSBLPath = "  "
	opts.Output = ""

	err := Validate(opts)
	require.Error(t, err)

	var verr validate.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{FlagProjectName, FlagFSBLPath, FlagOutput}, verr.Fields())
}

func TestValidate_LoggingOptions(t *testing.T) {
	opts := fullOptions()
	opts.LogLevel = "chatty"
	opts.LogFormat = "xml"

	var verr validate.ValidationError
	require.True(t, errors.As(Validate(opts), &verr))
	assert.Equal(t, []string{FlagLogLevel, FlagLogFormat}, verr.Fields())

	assert.NoError(t, Validate(fullOptions()))
}

func TestLoader_Load(t *testing.T) {
	p := writeProfile(t, "profile.yaml", `
arch: psv_cortexa72_0
projectName: adrv904x
xsaPath: vck190.xsa
elfPath: /abs/adrv904x.elf
fsblPath: unused.elf
projectDir: /abs
`)
	flags := Options{Output: "/tmp/launch.json", LogLevel: "info", LogFormat: "console"}

	opts, err := NewLoader(p).Load(flags, explicitSet(FlagOutput))
	require.NoError(t, err)
	assert.Equal(t, "psv_cortexa72_0", opts.Arch)
	assert.Equal(t, "/tmp/launch.json", opts.Output)

	_, err = NewLoader("").Load(Options{}, nil)
	require.Error(t, err)
	var verr validate.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Errors(), 7)
}

func TestEntries(t *testing.T) {
	entries := Entries()
	required := 0
	seenFlags := map[string]bool{}
	seenPaths := map[string]bool{}
	for _, e := range entries {
		assert.False(t, seenFlags[e.Flag], "duplicate flag %s", e.Flag)
		assert.False(t, seenPaths[e.Path], "duplicate path %s", e.Path)
		seenFlags[e.Flag] = true
		seenPaths[e.Path] = true
		if e.Required {
			required++
		}
	}
	assert.Equal(t, 7, required)

	var o Options
	*entries[0].Bind(&o) = "sys_mb"
	assert.Equal(t, "sys_mb", o.Arch)
}
