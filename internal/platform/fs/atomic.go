// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package fs holds filesystem helpers shared by the CLI.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	xglog "github.com/ManuGH/vitislaunch/internal/log"
	"github.com/google/renameio/v2"
)

// DirPerm is applied to parent directories created on demand.
const DirPerm os.FileMode = 0o755

// WriteFileAtomic creates any missing parent directories of path and then
// replaces path with data in one step: readers see either the previous file
// or the complete new one, never a partial write.
func WriteFileAtomic(ctx context.Context, path string, data []byte, perm os.FileMode) error {
	logger := xglog.FromContext(ctx)

	if path == "" {
		return fmt.Errorf("write file: empty path")
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return fmt.Errorf("create output directory %s: %w", dir, err)
	}

	// renameio handles: temp file creation, fsync, atomic rename, cleanup on error
	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(perm))
	if err != nil {
		return fmt.Errorf("create pending file: %w", err)
	}
	defer func() {
		// No-op once the file has been committed.
		if err := pendingFile.Cleanup(); err != nil {
			logger.Debug().Err(err).Str(xglog.FieldPath, path).Msg("cleanup pending file")
		}
	}()

	if _, err := pendingFile.Write(data); err != nil {
		return fmt.Errorf("write pending file: %w", err)
	}

	// CloseAtomicallyReplace: fsync + rename (durable + atomic)
	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace %s: %w", path, err)
	}
	return nil
}
