// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package launch

import (
	"context"
	"testing"

	"github.com/ManuGH/vitislaunch/internal/arch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_AssembledDocumentsPass(t *testing.T) {
	for _, r := range arch.Rules() {
		t.Run(r.Name, func(t *testing.T) {
			doc := Assemble(Input{
				ProjectName: "demo",
				Profile:     r.Profile,
				Paths:       Paths{XSAPath: "system_top.xsa", ELFPath: "/abs/app.elf", FSBLPath: "build/fsbl.elf"},
			})
			require.NoError(t, Validate(context.Background(), doc))
		})
	}
}

func TestValidate_RejectsBrokenDocuments(t *testing.T) {
	base := func() *Document {
		return Assemble(Input{
			ProjectName: "demo",
			Profile:     arch.Default(),
			Paths:       Paths{XSAPath: "system_top.xsa", ELFPath: "/abs/app.elf", FSBLPath: "build/fsbl.elf"},
		})
	}

	tests := []struct {
		name   string
		mutate func(d *Document)
	}{
		{"wrong version", func(d *Document) { d.Version = "0.3.0" }},
		{"no configurations", func(d *Document) { d.Configurations = []Configuration{} }},
		{"two configurations", func(d *Document) { d.Configurations = append(d.Configurations, d.Configurations[0]) }},
		{"wrong type", func(d *Document) { d.Configurations[0].Type = "gdb" }},
		{"empty name", func(d *Document) { d.Configurations[0].Name = "" }},
		{"unknown debug type", func(d *Document) { d.Configurations[0].DebugType = "baremetal-riscv" }},
		{"null path map", func(d *Document) { d.Configurations[0].PathMap = nil }},
		{"missing elf download", func(d *Document) { d.Configurations[0].TargetSetup.DownloadELF = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := base()
			tt.mutate(doc)
			assert.Error(t, Validate(context.Background(), doc))
		})
	}
}

func TestValidate_NilDocument(t *testing.T) {
	assert.Error(t, Validate(context.Background(), nil))
}
