// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package launch builds Vitis Unified IDE launch.json documents.
package launch

import "github.com/ManuGH/vitislaunch/internal/arch"

// SchemaVersion is the launch.json format version the IDE accepts.
const SchemaVersion = "0.2.0"

// Input is everything Assemble needs to produce a document.
type Input struct {
	ProjectName string
	Profile     arch.Profile
	Paths       Paths
}

// ConfigName is the launch entry name the IDE uses for the first hardware
// debug configuration of an application project.
func ConfigName(projectName string) string {
	return projectName + "_app_hw_1"
}

// Assemble builds the launch document for in. It has no side effects and
// equal inputs yield deeply equal documents.
func Assemble(in Input) *Document {
	setup := TargetSetup{
		ResetSystem:       true,
		ProgramDevice:     true,
		PartialBitstream:  false,
		SkipRevisionCheck: false,
		Device: Device{
			PLDevice: "Auto Detect",
			PSDevice: "Auto Detect",
		},
		EnableRPUSplitMode: false,
		ResetAPU:           false,
		ResetRPU:           false,
		BitstreamFile:      workspacePath(in.Paths.BitstreamPath()),
		DownloadELF: []DownloadELF{{
			Core:                in.Profile.TargetCPU,
			ResetProcessor:      false,
			ELFFile:             in.Paths.ELFPath,
			StopAtEntry:         false,
			IsSelfRelocatingApp: false,
			RelativeAddress:     "",
		}},
		CrossTriggerBreakpoints: CrossTriggerBreakpoints{
			IsSelected:  false,
			Breakpoints: []any{},
		},
	}
	InitializerFor(in.Profile.Family, in.Paths).Apply(&setup)

	return &Document{
		Version: SchemaVersion,
		Configurations: []Configuration{{
			Type:      "tcf-debug",
			Request:   "launch",
			Name:      ConfigName(in.ProjectName),
			DebugType: in.Profile.DebugType,
			XSAPath:   workspacePath(in.Paths.XSAPath),
			AttachToRunningTargetOptions: AttachOptions{
				TargetSetupMode: "standalone",
				ExecuteScript:   true,
				ScriptPath:      "",
			},
			AutoAttachProcessChildren: false,
			Target: Target{
				TargetConnectionID: "Local",
				PeersIniPath:       "../_ide/.peers.ini",
				Context:            "Device",
			},
			PathMap:                []PathMapping{},
			TargetSetup:            setup,
			InternalConsoleOptions: "openOnSessionStart",
		}},
	}
}
