// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/ManuGH/vitislaunch/internal/arch"
	"github.com/ManuGH/vitislaunch/internal/config"
	"github.com/ManuGH/vitislaunch/internal/launch"
	xglog "github.com/ManuGH/vitislaunch/internal/log"
	"github.com/ManuGH/vitislaunch/internal/platform/fs"
	"github.com/ManuGH/vitislaunch/internal/version"
	"github.com/google/uuid"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

const outputPerm = 0o644

func run(args []string, stdout, stderr io.Writer) int {
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}

	set := flag.NewFlagSet("vitislaunch", flag.ContinueOnError)
	set.SetOutput(stderr)

	var flags config.Options
	for _, e := range config.Entries() {
		set.StringVar(e.Bind(&flags), e.Flag, e.Default, e.Usage)
	}
	configPath := set.String("config", "", "optional YAML profile supplying any of the parameters")
	dryRun := set.Bool("dry-run", false, "print launch.json to stdout instead of writing --output")
	listArch := set.Bool("list-arch", false, "print the recognised architectures and exit")
	showVersion := set.Bool("version", false, "print version and exit")

	if err := set.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if set.NArg() != 0 {
		fmt.Fprintf(stderr, "vitislaunch: unexpected positional arguments: %q\n", strings.Join(set.Args(), " "))
		return exitUsage
	}

	if *showVersion {
		fmt.Fprintln(stdout, version.String())
		return exitOK
	}
	if *listArch {
		printArchTable(stdout)
		return exitOK
	}

	explicit := map[string]bool{}
	set.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	opts, err := config.NewLoader(*configPath).Load(flags, func(name string) bool { return explicit[name] })
	if err != nil {
		fmt.Fprintf(stderr, "vitislaunch: %v\n", err)
		fmt.Fprintln(stderr, "Run 'vitislaunch -h' for usage.")
		return exitUsage
	}

	ctx := xglog.ContextWithCorrelationID(context.Background(), uuid.NewString())
	logger := xglog.New(xglog.Config{
		Level:   opts.LogLevel,
		Format:  opts.LogFormat,
		Output:  stderr,
		Version: version.Version,
	})
	logger = xglog.WithContext(ctx, logger).With().Str(xglog.FieldComponent, "cli").Logger()
	ctx = logger.WithContext(ctx)

	if *configPath != "" {
		logger.Debug().
			Str(xglog.FieldEvent, "config.loaded").
			Str(xglog.FieldConfigPath, *configPath).
			Msg("loaded profile")
	}

	profile, data, err := generate(ctx, opts)
	if err != nil {
		fmt.Fprintf(stderr, "vitislaunch: %v\n", err)
		return exitError
	}

	if *dryRun {
		if _, err := stdout.Write(data); err != nil {
			fmt.Fprintf(stderr, "vitislaunch: write stdout: %v\n", err)
			return exitError
		}
		return exitOK
	}

	if err := fs.WriteFileAtomic(ctx, opts.Output, data, outputPerm); err != nil {
		logger.Error().
			Err(err).
			Str(xglog.FieldEvent, "launch.write_failed").
			Str(xglog.FieldPath, opts.Output).
			Msg("failed to write launch configuration")
		fmt.Fprintf(stderr, "vitislaunch: %v\n", err)
		return exitError
	}
	logger.Debug().
		Str(xglog.FieldEvent, "launch.written").
		Str(xglog.FieldPath, opts.Output).
		Str(xglog.FieldProjectDir, opts.ProjectDir).
		Int(xglog.FieldBytes, len(data)).
		Msg("launch configuration written")

	printReport(stdout, opts, profile)
	return exitOK
}

// generate runs the pure part of the pipeline: classify, assemble, check, encode.
func generate(ctx context.Context, opts config.Options) (arch.Profile, []byte, error) {
	profile := arch.Classify(ctx, opts.Arch)

	doc := launch.Assemble(launch.Input{
		ProjectName: opts.ProjectName,
		Profile:     profile,
		Paths: launch.Paths{
			XSAPath:  opts.XSAPath,
			ELFPath:  opts.ELFPath,
			FSBLPath: opts.FSBLPath,
		},
	})
	xglog.FromContext(ctx).Debug().
		Str(xglog.FieldEvent, "launch.assembled").
		Str(xglog.FieldProject, opts.ProjectName).
		Str(xglog.FieldDebugType, profile.DebugType).
		Str(xglog.FieldFamily, string(profile.Family)).
		Msg("assembled launch configuration")

	if err := launch.Validate(ctx, doc); err != nil {
		return profile, nil, err
	}
	data, err := launch.Encode(doc)
	if err != nil {
		return profile, nil, err
	}
	return profile, data, nil
}
