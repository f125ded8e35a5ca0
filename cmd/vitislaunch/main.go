// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// vitislaunch generates a Vitis Unified IDE launch.json for a bare-metal
// application project.
//
// Usage:
//
//	vitislaunch --arch psu_cortexa53_0 --project-name demo \
//	    --xsa-path system_top.xsa --elf-path /abs/build/demo.elf \
//	    --fsbl-path build/fsbl.elf --project-dir /abs \
//	    --output /abs/_ide/launch.json
//
// Exit codes:
//   - 0: launch.json written (or printed with --dry-run)
//   - 1: generation or filesystem failure
//   - 2: usage error (bad flags, missing parameters, invalid profile)
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
