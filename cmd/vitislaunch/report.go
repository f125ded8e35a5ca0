// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ManuGH/vitislaunch/internal/arch"
	"github.com/ManuGH/vitislaunch/internal/config"
)

func printReport(w io.Writer, opts config.Options, p arch.Profile) {
	fmt.Fprintf(w, "Generated Vitis launch configuration: %s\n", opts.Output)
	fmt.Fprintf(w, "  Architecture: %s\n", opts.Arch)
	fmt.Fprintf(w, "  Debug type: %s\n", p.DebugType)
	fmt.Fprintf(w, "  Target CPU: %s\n", p.TargetCPU)
	fmt.Fprintf(w, "  Uses FSBL: %s\n", yesNo(p.UseFSBL))
}

func yesNo(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

func printArchTable(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RULE\tMATCHES\tDEBUG TYPE\tTARGET CPU\tFSBL\tINIT")
	for _, r := range arch.Rules() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%t\t%s\n",
			r.Name, strings.Join(r.Substrings, ","), r.Profile.DebugType,
			r.Profile.TargetCPU, r.Profile.UseFSBL, r.Profile.Family)
	}
	d := arch.Default()
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%t\t%s\n",
		"default", "*", d.DebugType, d.TargetCPU, d.UseFSBL, d.Family)
	_ = tw.Flush()
}
