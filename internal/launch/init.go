// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package launch

import "github.com/ManuGH/vitislaunch/internal/arch"

// Initializer fills in the family-specific bring-up block of a TargetSetup.
type Initializer interface {
	Apply(ts *TargetSetup)
}

// InitializerFor selects the initializer for family. Unknown families get
// one that leaves the target setup untouched.
func InitializerFor(family arch.InitFamily, p Paths) Initializer {
	switch family {
	case arch.FamilyZU:
		return zuInit{fsblPath: p.FSBLPath, xsaStem: p.XSAStem()}
	case arch.FamilyZynq:
		return zynqInit{fsblPath: p.FSBLPath, xsaStem: p.XSAStem()}
	case arch.FamilyMB:
		return mbInit{}
	case arch.FamilyVersal:
		return versalInit{}
	default:
		return noInit{}
	}
}

type zuInit struct {
	fsblPath string
	xsaStem  string
}

func (z zuInit) Apply(ts *TargetSetup) {
	ts.ZUInitialization = &ZUInitialization{
		IsFSBL: true,
		UsingFSBL: UsingFSBL{
			InitWithFSBL:   true,
			FSBLExitSymbol: "XFsbl_Exit",
			FSBLFile:       workspacePath(z.fsblPath),
		},
		UsingPsuInit: UsingPsuInit{
			RunPsuInit:     true,
			PLPowerup:      true,
			PsuInitTclFile: workspacePath(ideDir(z.xsaStem) + "/psu_init.tcl"),
		},
	}
	ts.ZUTraceOptions = &ZUTraceOptions{
		IsSelected:      false,
		ScratchAddress:  "0x60000",
		ScratchSize:     "0x60000",
		TraceOutputPath: "",
	}
}

type zynqInit struct {
	fsblPath string
	xsaStem  string
}

func (z zynqInit) Apply(ts *TargetSetup) {
	ts.ZynqInitialization = &ZynqInitialization{
		IsFSBL: true,
		UsingFSBL: UsingFSBL{
			InitWithFSBL:   true,
			FSBLExitSymbol: "FsblExit",
			FSBLFile:       workspacePath(z.fsblPath),
		},
		UsingPsInit: UsingPsInit{
			RunPsInit:     true,
			PLPowerup:     true,
			PsInitTclFile: workspacePath(ideDir(z.xsaStem) + "/ps_init.tcl"),
		},
	}
}

type mbInit struct{}

func (mbInit) Apply(ts *TargetSetup) {
	ts.MBInitialization = &MBInitialization{InitWithFSBL: false}
}

type versalInit struct{}

func (versalInit) Apply(ts *TargetSetup) {
	ts.VersalInitialization = &VersalInitialization{UsePLM: true, PLMFile: ""}
}

type noInit struct{}

func (noInit) Apply(*TargetSetup) {}
