package figure

import (
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/plotfence/plotfence/pkg/config"
	"github.com/plotfence/plotfence/pkg/document"
	"github.com/plotfence/plotfence/pkg/errors"
	"github.com/plotfence/plotfence/pkg/toolkit"
)

// Attribute keys consumed by the builder. Everything else passes through
// to the substituted figure untouched. Keys are case-sensitive.
const (
	attrCaption      = "caption"
	attrDirectory    = "directory"
	attrFormat       = "format"
	attrDPI          = "dpi"
	attrSource       = "source"
	attrPreamble     = "preamble"
	attrFile         = "file"
	attrDependencies = "dependencies"
)

var consumedAttrs = []string{
	attrCaption,
	attrDirectory,
	attrFormat,
	attrDPI,
	attrSource,
	attrPreamble,
	attrFile,
	attrDependencies,
}

// Builder derives Specs from fenced code blocks against a fixed
// configuration. Safe for concurrent use; it holds no mutable state.
type Builder struct {
	cfg     *config.Config
	version string
	logger  *log.Logger
}

// NewBuilder returns a Builder. The version string goes into the
// generated header comment of every assembled script.
func NewBuilder(cfg *config.Config, version string, logger *log.Logger) *Builder {
	return &Builder{cfg: cfg, version: version, logger: logger}
}

// Build derives a Spec from block. The boolean reports applicability:
// blocks without a toolkit tag (or with an unparseable info string)
// return (nil, false, nil) and pass through unmodified. Applicable
// blocks either yield a Spec or an error that is fatal to that block
// alone.
func (b *Builder) Build(block *document.CodeBlock) (*Spec, bool, error) {
	if block.InfoErr != nil {
		b.logger.Debug("skipping block with malformed attributes", "err", block.InfoErr)
		return nil, false, nil
	}
	tk, ok := toolkit.Match(block.Classes)
	if !ok {
		return nil, false, nil
	}

	body := block.Text
	if path, ok := block.Attrs.Get(attrFile); ok {
		if err := errors.ValidateScriptPath(path); err != nil {
			return nil, true, err
		}
		if strings.TrimSpace(body) != "" {
			b.logger.Warn("block has both inline content and a file attribute; using the file",
				"toolkit", tk.Tag(), "file", path)
		}
		data, err := readAttachment(path, "content")
		if err != nil {
			return nil, true, err
		}
		body = string(data)
	}

	preamble := tk.DefaultPreamble()
	preamblePath, _ := block.Attrs.Get(attrPreamble)
	if preamblePath == "" {
		preamblePath = b.cfg.Toolkit(tk.Tag()).Preamble
	}
	if preamblePath != "" {
		data, err := readAttachment(preamblePath, "preamble")
		if err != nil {
			return nil, true, err
		}
		preamble = string(data)
	}

	formatTag := b.cfg.Format
	if v, ok := block.Attrs.Get(attrFormat); ok {
		formatTag = v
	}
	format, err := toolkit.ParseFormat(formatTag)
	if err != nil {
		return nil, true, err
	}
	if !tk.Supports(format) {
		return nil, true, errors.New(errors.ErrCodeInvalidFormat,
			"%s cannot produce %s output (supported: %s)",
			tk.Tag(), format, toolkit.FormatList(tk.Formats()))
	}

	dpi := b.cfg.DPI
	if v, ok := block.Attrs.Get(attrDPI); ok {
		dpi, err = strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, true, errors.New(errors.ErrCodeInvalidAttribute,
				"cannot parse dpi value %q", v)
		}
	}
	if err := errors.ValidateDPI(dpi); err != nil {
		return nil, true, err
	}

	dir := b.cfg.Directory
	if v, ok := block.Attrs.Get(attrDirectory); ok {
		dir = v
	}
	if err := errors.ValidateDirectory(dir); err != nil {
		return nil, true, err
	}

	includeSource := b.cfg.Source
	if v, ok := block.Attrs.Get(attrSource); ok {
		includeSource, err = ParseBool(v)
		if err != nil {
			return nil, true, err
		}
	}

	deps := slices.Clone(b.cfg.Dependencies)
	if v, ok := block.Attrs.Get(attrDependencies); ok {
		extra, err := ParseFileList(v)
		if err != nil {
			return nil, true, err
		}
		deps = append(deps, extra...)
	}

	caption, _ := block.Attrs.Get(attrCaption)

	spec := &Spec{
		Toolkit:       tk,
		Script:        assembleScript(tk.Comment("Generated by plotfence "+b.version), preamble, body),
		Directory:     filepath.Clean(dir),
		Format:        format,
		DPI:           dpi,
		Caption:       caption,
		IncludeSource: includeSource,
		Dependencies:  deps,
		ID:            block.ID,
		Attrs:         block.Attrs.Without(consumedAttrs...),
	}
	spec.fingerprint, err = fingerprint(spec)
	if err != nil {
		return nil, true, err
	}

	return spec, true, nil
}

// Directory returns the output directory block would render into,
// before validation. Cleanup uses this to locate artifacts without
// building a full spec.
func Directory(cfg *config.Config, block *document.CodeBlock) (string, bool) {
	if block.InfoErr != nil {
		return "", false
	}
	if _, ok := toolkit.Match(block.Classes); !ok {
		return "", false
	}

	dir := cfg.Directory
	if v, ok := block.Attrs.Get(attrDirectory); ok {
		dir = v
	}
	return filepath.Clean(dir), true
}

// assembleScript joins the given segments on their own lines, omitting
// blank ones.
func assembleScript(segments ...string) string {
	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		if strings.TrimSpace(seg) == "" {
			continue
		}
		parts = append(parts, seg)
	}
	return strings.Join(parts, "\n")
}

// readAttachment loads a file referenced from a block attribute. The
// role names the attribute in error messages.
func readAttachment(path, role string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound,
				"%s file not found: %s", role, path)
		}
		return nil, errors.Wrap(errors.ErrCodeFilesystem, err,
			"failed to read %s file %s", role, path)
	}
	return data, nil
}

// ParseBool parses attribute booleans permissively: case-insensitive
// true/false, optionally single-quoted, or 1/0. Anything else is an
// error naming the offending token.
func ParseBool(s string) (bool, error) {
	t := strings.TrimSpace(s)
	if len(t) >= 2 && t[0] == '\'' && t[len(t)-1] == '\'' {
		t = t[1 : len(t)-1]
	}
	switch strings.ToLower(t) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	}
	return false, errors.New(errors.ErrCodeInvalidAttribute,
		"cannot parse %q as a boolean", s)
}

// ParseFileList parses a bracket-delimited, comma-separated file list
// attribute like "[data.csv, helpers.py]". Items may be quoted.
func ParseFileList(s string) ([]string, error) {
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "[") || !strings.HasSuffix(t, "]") {
		return nil, errors.New(errors.ErrCodeInvalidAttribute,
			"cannot parse file list %q: expected [a, b, ...]", s)
	}

	var files []string
	for _, item := range strings.Split(t[1:len(t)-1], ",") {
		item = strings.Trim(strings.TrimSpace(item), `"'`)
		if item == "" {
			continue
		}
		files = append(files, item)
	}
	return files, nil
}
