// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package log

// Canonical field name constants for structured logging.
const (
	// Identity fields
	FieldService       = "service"
	FieldVersion       = "version"
	FieldCorrelationID = "correlation_id"

	// Process fields
	FieldEvent     = "event"
	FieldComponent = "component"

	// Target fields
	FieldArch      = "arch"
	FieldDebugType = "debug_type"
	FieldTargetCPU = "target_cpu"
	FieldFamily    = "init_family"
	FieldProject   = "project"

	// Path fields
	FieldPath       = "path"
	FieldProjectDir = "project_dir"
	FieldConfigPath = "config_path"
	FieldBytes      = "bytes"
)
