// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"github.com/ManuGH/vitislaunch/internal/validate"
)

// Validate reports every missing required parameter at once, plus any
// malformed logging option.
func Validate(opts Options) error {
	v := validate.New()

	for _, e := range registry {
		if e.Required {
			v.Required(e.Flag, *e.field(&opts))
		}
	}

	v.LogLevel(FlagLogLevel, opts.LogLevel)
	if opts.LogFormat != "" {
		v.OneOf(FlagLogFormat, opts.LogFormat, []string{"console", "json"})
	}

	return v.Err()
}
