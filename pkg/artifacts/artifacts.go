// Package artifacts manages the on-disk figure and script files.
//
// Artifact paths are keyed by spec fingerprint, so the output directory
// doubles as the render cache: a figure that already exists at its
// derived path can be reused without invoking a toolkit. There is no
// separate index to go stale; presence on disk is the whole cache state.
package artifacts

import (
	"os"

	"github.com/plotfence/plotfence/pkg/errors"
)

// Store manages one output directory.
type Store struct {
	dir string
}

// NewStore opens the store at dir, creating the directory when missing.
// Creation is idempotent, so concurrent render tasks sharing a target
// directory can all open it.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeFilesystem, err,
			"failed to create output directory %s", dir)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the store's directory.
func (s *Store) Dir() string { return s.dir }

// Has reports whether an artifact exists at path.
func (s *Store) Has(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Size returns an artifact's size in bytes, or zero when it cannot be
// read.
func (s *Store) Size(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}

// WriteScript persists the assembled script text. Script content is a
// pure function of the spec, so writers racing on the same fingerprint
// produce identical bytes.
func (s *Store) WriteScript(path, script string) error {
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeFilesystem, err,
			"failed to write script %s", path)
	}
	return nil
}

// Remove deletes an output directory and everything in it. A missing
// directory is not an error.
func Remove(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return errors.Wrap(errors.ErrCodeFilesystem, err,
			"failed to remove %s", dir)
	}
	return nil
}
