// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package launch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Encode serializes doc with tab indentation and a single trailing newline.
// HTML characters are left unescaped so paths survive byte-for-byte.
func Encode(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteJSON streams the encoded document to w.
func WriteJSON(w io.Writer, doc *Document) error {
	if doc == nil {
		return fmt.Errorf("encode launch document: nil document")
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "\t")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode launch document: %w", err)
	}
	return nil
}
