// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

// ConfigEntry describes one generator parameter on every surface it appears on.
type ConfigEntry struct {
	Flag     string // CLI flag name without dashes (e.g. "project-name")
	Path     string // YAML profile key (e.g. "projectName")
	Usage    string // flag help text
	Default  string
	Required bool

	field func(*Options) *string
}

// Flag names of the generator parameters.
const (
	FlagArch        = "arch"
	FlagProjectName = "project-name"
	FlagXSAPath     = "xsa-path"
	FlagELFPath     = "elf-path"
	FlagFSBLPath    = "fsbl-path"
	FlagProjectDir  = "project-dir"
	FlagOutput      = "output"
	FlagLogLevel    = "log-level"
	FlagLogFormat   = "log-format"
)

var registry = []ConfigEntry{
	{
		Flag: FlagArch, Path: "arch", Required: true,
		Usage: "Architecture string (e.g., psu_cortexa53_0, ps7_cortexa9_0)",
		field: func(o *Options) *string { return &o.Arch },
	},
	{
		Flag: FlagProjectName, Path: "projectName", Required: true,
		Usage: "Project name (e.g., adrv904x)",
		field: func(o *Options) *string { return &o.ProjectName },
	},
	{
		Flag: FlagXSAPath, Path: "xsaPath", Required: true,
		Usage: "XSA file path relative to project (e.g., system_top.xsa)",
		field: func(o *Options) *string { return &o.XSAPath },
	},
	{
		Flag: FlagELFPath, Path: "elfPath", Required: true,
		Usage: "Absolute path to ELF file",
		field: func(o *Options) *string { return &o.ELFPath },
	},
	{
		Flag: FlagFSBLPath, Path: "fsblPath", Required: true,
		Usage: "FSBL path relative to project (e.g., build/tmp/output/hw0/export/hw0/sw/hw0/boot/fsbl.elf)",
		field: func(o *Options) *string { return &o.FSBLPath },
	},
	{
		Flag: FlagProjectDir, Path: "projectDir", Required: true,
		Usage: "Project directory (absolute path)",
		field: func(o *Options) *string { return &o.ProjectDir },
	},
	{
		Flag: FlagOutput, Path: "output", Required: true,
		Usage: "Output path for launch.json",
		field: func(o *Options) *string { return &o.Output },
	},
	{
		Flag: FlagLogLevel, Path: "logLevel", Default: "info",
		Usage: "log level (debug, info, warn, error)",
		field: func(o *Options) *string { return &o.LogLevel },
	},
	{
		Flag: FlagLogFormat, Path: "logFormat", Default: "console",
		Usage: "log format (console, json)",
		field: func(o *Options) *string { return &o.LogFormat },
	},
}

// Entries returns the parameter registry in flag declaration order.
func Entries() []ConfigEntry {
	out := make([]ConfigEntry, len(registry))
	copy(out, registry)
	return out
}

// Bind returns a pointer to the Options field described by e, suitable for
// flag.StringVar.
func (e ConfigEntry) Bind(o *Options) *string {
	return e.field(o)
}
