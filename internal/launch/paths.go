// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package launch

import (
	"path/filepath"
	"strings"
)

// WorkspaceFolder is the IDE variable that every project-relative path is anchored to.
const WorkspaceFolder = "${workspaceFolder}"

// Paths are the project file locations baked into the launch entry.
// XSAPath and FSBLPath are project-relative; ELFPath is used verbatim.
type Paths struct {
	XSAPath  string
	ELFPath  string
	FSBLPath string
}

// XSAStem is the XSA file name without its final extension
// ("hw/system_top.xsa" -> "system_top").
func (p Paths) XSAStem() string {
	return fileStem(p.XSAPath)
}

// BitstreamPath is the project-relative location where the IDE unpacks the bitstream.
func (p Paths) BitstreamPath() string {
	stem := p.XSAStem()
	return ideDir(stem) + "/" + stem + ".bit"
}

// fileStem strips the last extension from the final path element. A dot in
// first or last position does not start an extension, so ".xsa" and "xsa."
// are returned unchanged.
func fileStem(path string) string {
	path = strings.TrimRight(filepath.ToSlash(path), "/")
	name := path
	if i := strings.LastIndex(path, "/"); i >= 0 {
		name = path[i+1:]
	}
	if name == "." {
		return ""
	}
	i := strings.LastIndex(name, ".")
	if i > 0 && i < len(name)-1 {
		return name[:i]
	}
	return name
}

func ideDir(stem string) string {
	return "_ide/" + stem
}

func workspacePath(rel string) string {
	return WorkspaceFolder + "/" + rel
}
