// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package arch maps free-form processor identifiers onto the debug
// profile the Vitis IDE expects for that processor family.
package arch

import (
	"context"
	"strings"

	xglog "github.com/ManuGH/vitislaunch/internal/log"
	"golang.org/x/text/cases"
)

// InitFamily selects the shape of the target-setup initialization section.
type InitFamily string

const (
	FamilyZU     InitFamily = "zu"     // Zynq UltraScale+ (FSBL + psu_init)
	FamilyZynq   InitFamily = "zynq"   // Zynq-7000 (FSBL + ps7_init)
	FamilyMB     InitFamily = "mb"     // MicroBlaze soft core
	FamilyVersal InitFamily = "versal" // Versal (PLM)
)

// Profile is the fixed record attached to a recognised architecture.
type Profile struct {
	DebugType string
	TargetCPU string
	UseFSBL   bool
	Family    InitFamily
}

// Rule matches when any of its substrings occurs in the folded identifier.
type Rule struct {
	Name       string
	Substrings []string
	Profile    Profile
}

var zynqMP = Profile{
	DebugType: "baremetal-zu",
	TargetCPU: "psu_cortexa53_0",
	UseFSBL:   true,
	Family:    FamilyZU,
}

// Evaluated in order; the first match wins.
var rules = []Rule{
	{
		Name:       "zynqmp-apu",
		Substrings: []string{"cortexa53", "psu_cortexa53"},
		Profile:    zynqMP,
	},
	{
		Name:       "zynqmp-rpu",
		Substrings: []string{"cortexr5", "psu_cortexr5"},
		Profile: Profile{
			DebugType: "baremetal-zu",
			TargetCPU: "psu_cortexr5_0",
			UseFSBL:   true,
			Family:    FamilyZU,
		},
	},
	{
		Name:       "zynq7000",
		Substrings: []string{"cortexa9", "ps7_cortexa9"},
		Profile: Profile{
			DebugType: "baremetal-zynq",
			TargetCPU: "ps7_cortexa9_0",
			UseFSBL:   true,
			Family:    FamilyZynq,
		},
	},
	{
		Name:       "microblaze",
		Substrings: []string{"microblaze", "sys_mb"},
		Profile: Profile{
			DebugType: "baremetal-mb",
			TargetCPU: "microblaze_0",
			UseFSBL:   false,
			Family:    FamilyMB,
		},
	},
	{
		Name:       "versal-apu",
		Substrings: []string{"cortexa72", "psv_cortexa72"},
		Profile: Profile{
			DebugType: "baremetal-versal",
			TargetCPU: "psv_cortexa72_0",
			UseFSBL:   false,
			Family:    FamilyVersal,
		},
	},
}

// Default returns the profile used for unrecognised identifiers.
func Default() Profile {
	return zynqMP
}

// Rules returns a copy of the classification table in priority order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		out[i] = r
		out[i].Substrings = append([]string(nil), r.Substrings...)
	}
	return out
}

// Detect classifies arch case-insensitively. The boolean reports whether a
// rule matched; when it is false the ZynqMP default profile is returned.
func Detect(arch string) (Profile, bool) {
	folded := cases.Fold().String(arch)
	for _, r := range rules {
		for _, sub := range r.Substrings {
			if strings.Contains(folded, sub) {
				return r.Profile, true
			}
		}
	}
	return Default(), false
}

// Classify is Detect with the unknown-architecture fallback reported as a
// warning on the context logger.
func Classify(ctx context.Context, arch string) Profile {
	p, ok := Detect(arch)
	if !ok {
		logger := xglog.FromContext(ctx)
		logger.Warn().
			Str(xglog.FieldEvent, "arch.unknown").
			Str(xglog.FieldArch, arch).
			Str(xglog.FieldTargetCPU, p.TargetCPU).
			Msgf("Unknown architecture '%s'. Using default ZynqMP settings.", arch)
	}
	return p
}
