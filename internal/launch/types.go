// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package launch

// Field order in these structs is the emitted key order.

// Document is the top level of a Vitis launch.json file.
type Document struct {
	Version        string          `json:"version"`
	Configurations []Configuration `json:"configurations"`
}

// Configuration is a single tcf-debug launch entry.
type Configuration struct {
	Type                         string        `json:"type"`
	Request                      string        `json:"request"`
	Name                         string        `json:"name"`
	DebugType                    string        `json:"debugType"`
	XSAPath                      string        `json:"xsaPath"`
	AttachToRunningTargetOptions AttachOptions `json:"attachToRunningTargetOptions"`
	AutoAttachProcessChildren    bool          `json:"autoAttachProcessChildren"`
	Target                       Target        `json:"target"`
	PathMap                      []PathMapping `json:"pathMap"`
	TargetSetup                  TargetSetup   `json:"targetSetup"`
	InternalConsoleOptions       string        `json:"internalConsoleOptions"`
}

type AttachOptions struct {
	TargetSetupMode string `json:"targetSetupMode"`
	ExecuteScript   bool   `json:"executeScript"`
	ScriptPath      string `json:"scriptPath"`
}

type Target struct {
	TargetConnectionID string `json:"targetConnectionId"`
	PeersIniPath       string `json:"peersIniPath"`
	Context            string `json:"context"`
}

// PathMapping is a source path remap. Generated files always carry an empty list.
type PathMapping struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
}

// TargetSetup describes how the board is brought up before the ELF download.
// Exactly one family-specific initialization block is set.
type TargetSetup struct {
	ResetSystem        bool   `json:"resetSystem"`
	ProgramDevice      bool   `json:"programDevice"`
	PartialBitstream   bool   `json:"partialBitstream"`
	SkipRevisionCheck  bool   `json:"skipRevisionCheck"`
	Device             Device `json:"device"`
	EnableRPUSplitMode bool   `json:"enableRPUSplitMode"`
	ResetAPU           bool   `json:"resetAPU"`
	ResetRPU           bool   `json:"resetRPU"`
	BitstreamFile      string `json:"bitstreamFile"`

	ZUInitialization     *ZUInitialization     `json:"zuInitialization,omitempty"`
	ZUTraceOptions       *ZUTraceOptions       `json:"zuTraceOptions,omitempty"`
	ZynqInitialization   *ZynqInitialization   `json:"zynqInitialization,omitempty"`
	MBInitialization     *MBInitialization     `json:"mbInitialization,omitempty"`
	VersalInitialization *VersalInitialization `json:"versalInitialization,omitempty"`

	DownloadELF             []DownloadELF           `json:"downloadElf"`
	CrossTriggerBreakpoints CrossTriggerBreakpoints `json:"crossTriggerBreakpoints"`
}

type Device struct {
	PLDevice string `json:"plDevice"`
	PSDevice string `json:"psDevice"`
}

type UsingFSBL struct {
	InitWithFSBL   bool   `json:"initWithFSBL"`
	FSBLExitSymbol string `json:"fsblExitSymbol"`
	FSBLFile       string `json:"fsblFile"`
}

// ZUInitialization is the Zynq UltraScale+ bring-up block.
type ZUInitialization struct {
	IsFSBL       bool         `json:"isFsbl"`
	UsingFSBL    UsingFSBL    `json:"usingFSBL"`
	UsingPsuInit UsingPsuInit `json:"usingPsuInit"`
}

type UsingPsuInit struct {
	RunPsuInit     bool   `json:"runPsuInit"`
	PLPowerup      bool   `json:"plPowerup"`
	PsuInitTclFile string `json:"psuInitTclFile"`
}

type ZUTraceOptions struct {
	IsSelected      bool   `json:"isSelected"`
	ScratchAddress  string `json:"scratchAddress"`
	ScratchSize     string `json:"scratchSize"`
	TraceOutputPath string `json:"traceOutputPath"`
}

// ZynqInitialization is the Zynq-7000 bring-up block.
type ZynqInitialization struct {
	IsFSBL      bool        `json:"isFsbl"`
	UsingFSBL   UsingFSBL   `json:"usingFSBL"`
	UsingPsInit UsingPsInit `json:"usingPsInit"`
}

type UsingPsInit struct {
	RunPsInit     bool   `json:"runPsInit"`
	PLPowerup     bool   `json:"plPowerup"`
	PsInitTclFile string `json:"psInitTclFile"`
}

type MBInitialization struct {
	InitWithFSBL bool `json:"initWithFSBL"`
}

// VersalInitialization boots through the PLM; plmFile is normally taken from the PDI.
type VersalInitialization struct {
	UsePLM  bool   `json:"usePLM"`
	PLMFile string `json:"plmFile"`
}

type DownloadELF struct {
	Core                string `json:"core"`
	ResetProcessor      bool   `json:"resetProcessor"`
	ELFFile             string `json:"elfFile"`
	StopAtEntry         bool   `json:"stopAtEntry"`
	IsSelfRelocatingApp bool   `json:"isSelfRelocatingApp"`
	RelativeAddress     string `json:"relativeAddress"`
}

// Breakpoint entries are opaque to the generator.
type CrossTriggerBreakpoints struct {
	IsSelected  bool  `json:"isSelected"`
	Breakpoints []any `json:"breakpoints"`
}
