package render

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	ferrors "git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
	"git.home.luguber.info/inful/sitecfg/internal/logfields"
	"github.com/google/renameio/v2"
)

// WriteFile atomically replaces path with data. Readers observe either the
// old or the new content, never a partial file.
func WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to create output directory").
			WithContext("path", filepath.Dir(path)).Build()
	}

	pending, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to create output file").
			WithContext("path", path).Build()
	}
	defer func() {
		if cerr := pending.Cleanup(); cerr != nil {
			slog.Debug("Cleanup pending output file", logfields.Path(path), logfields.Error(cerr))
		}
	}()

	if _, err := pending.Write(data); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write output file").
			WithContext("path", path).Build()
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to replace output file").
			WithContext("path", path).Build()
	}
	return nil
}

// Check compares data with the current content of path. It returns a unified
// diff, empty when the file is up to date. A missing file counts as empty.
func Check(path string, data []byte) (string, error) {
	current, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to read output file").
			WithContext("path", path).Build()
	}
	if bytes.Equal(current, data) {
		return "", nil
	}
	return Diff(path, current, data), nil
}
