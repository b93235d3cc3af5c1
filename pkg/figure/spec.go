// Package figure derives validated render specifications from fenced
// code blocks.
//
// A Builder inspects a block's classes and attributes against the loaded
// configuration, assembles the final script text, and produces an
// immutable Spec whose fingerprint keys every artifact path.
package figure

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/plotfence/plotfence/pkg/document"
	"github.com/plotfence/plotfence/pkg/errors"
	"github.com/plotfence/plotfence/pkg/toolkit"
)

// Spec is a complete, validated description of one figure render. Built
// once per eligible code block and immutable afterwards.
type Spec struct {
	// Toolkit renders this spec.
	Toolkit toolkit.Toolkit

	// Script is the final assembled script text: generated header,
	// preamble, and body, newline-joined with blank segments omitted.
	Script string

	// Directory is the normalized output directory.
	Directory string

	// Format is the validated output format.
	Format toolkit.Format

	// DPI is the raster resolution.
	DPI int

	// Caption is raw caption text for the substituted figure.
	Caption string

	// IncludeSource inserts a link to the persisted script after the
	// figure.
	IncludeSource bool

	// Dependencies are extra files the render depends on. Their
	// contents participate in the fingerprint.
	Dependencies []string

	// ID is the block identifier, carried over to the figure.
	ID string

	// Attrs are the surviving block attributes, re-attached to the
	// substituted figure.
	Attrs document.Attributes

	fingerprint string
}

// Fingerprint returns the content hash that keys cached artifacts.
func (s *Spec) Fingerprint() string { return s.fingerprint }

// OutputPath returns the figure artifact path for this spec.
func (s *Spec) OutputPath() string {
	return filepath.Join(s.Directory, s.fingerprint+s.Format.Extension())
}

// ScriptPath returns the persisted script path for this spec.
func (s *Spec) ScriptPath() string {
	return filepath.Join(s.Directory, s.fingerprint+s.Toolkit.ScriptExtension())
}

// fingerprint hashes everything that determines the rendered artifact:
// script text, toolkit, format, resolution, and the contents of every
// dependency file. The hash is a pure function of that content, so
// repeated runs over unchanged input resolve to the same paths.
func fingerprint(s *Spec) (string, error) {
	parts := []any{s.Toolkit.Tag(), s.Script, string(s.Format), s.DPI}
	for _, dep := range s.Dependencies {
		data, err := os.ReadFile(dep)
		if err != nil {
			if os.IsNotExist(err) {
				return "", errors.New(errors.ErrCodeFileNotFound,
					"dependency file not found: %s", dep)
			}
			return "", errors.Wrap(errors.ErrCodeFilesystem, err,
				"failed to read dependency file %s", dep)
		}
		parts = append(parts, string(data))
	}

	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:]), nil
}
