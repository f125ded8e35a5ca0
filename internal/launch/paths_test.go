// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package launch

import "testing"

func TestXSAStem(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"system_top.xsa", "system_top"},
		{"hw/export/system_top.xsa", "system_top"},
		{"/abs/path/zcu102.XSA", "zcu102"},
		{"design.v2.xsa", "design.v2"},
		{"noext", "noext"},
		{".xsa", ".xsa"},
		{"trailing.", "trailing."},
		{"dir/", "dir"},
		{"", ""},
		{".", ""},
	}
	for _, tt := range tests {
		if got := (Paths{XSAPath: tt.in}).XSAStem(); got != tt.want {
			t.Errorf("XSAStem(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBitstreamPath(t *testing.T) {
	p := Paths{XSAPath: "hw/zed.xsa"}
	if got, want := p.BitstreamPath(), "_ide/zed/zed.bit"; got != want {
		t.Fatalf("BitstreamPath() = %q, want %q", got, want)
	}
}
