// Package toolkit defines the supported plotting toolkits and their
// invocation conventions.
//
// A Toolkit describes everything needed to turn a script into a figure:
// the class tag marking code blocks, the interpreter to run, the comment
// syntax for the generated header, the supported output formats, and the
// command line template. The set is a closed enumeration compiled into
// the binary; [All] returns it in registration order.
package toolkit

import (
	"os/exec"
	"slices"
	"strconv"
	"strings"

	"github.com/plotfence/plotfence/pkg/config"
	"github.com/plotfence/plotfence/pkg/errors"
)

// Format identifies an output image format.
type Format string

// Formats some toolkit can produce. Individual toolkits support subsets;
// see Toolkit.Formats.
const (
	PNG  Format = "png"
	PDF  Format = "pdf"
	SVG  Format = "svg"
	JPG  Format = "jpg"
	EPS  Format = "eps"
	GIF  Format = "gif"
	TIFF Format = "tiff"
	WEBP Format = "webp"
)

var knownFormats = []Format{PNG, PDF, SVG, JPG, EPS, GIF, TIFF, WEBP}

// ParseFormat normalizes a format tag. Matching is case-insensitive and
// tolerates a leading dot and the common "jpeg"/"tif" aliases.
func ParseFormat(s string) (Format, error) {
	tag := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "."))
	switch tag {
	case "jpeg":
		tag = "jpg"
	case "tif":
		tag = "tiff"
	}
	for _, f := range knownFormats {
		if string(f) == tag {
			return f, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidFormat,
		"unknown format %q (supported: %s)", s, FormatList(knownFormats))
}

// Extension returns the artifact file extension, including the dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// FormatList renders formats as a comma-separated string for messages.
func FormatList(formats []Format) string {
	parts := make([]string, len(formats))
	for i, f := range formats {
		parts[i] = string(f)
	}
	return strings.Join(parts, ", ")
}

// Toolkit describes one supported plotting program family.
//
// Implementations are static values registered in this package. Every
// capability must be provided; the renderer performs no nil checks.
type Toolkit interface {
	// Tag returns the class name that marks code blocks for this toolkit.
	Tag() string

	// DefaultExecutable returns the interpreter name looked up on PATH
	// when configuration supplies no override.
	DefaultExecutable() string

	// Comment formats line as a script comment, used for the generated
	// header at the top of every assembled script.
	Comment(line string) string

	// ScriptExtension returns the extension for persisted scripts,
	// including the dot.
	ScriptExtension() string

	// DefaultPreamble returns the toolkit's built-in preamble text.
	// May be empty; configuration and block attributes override it.
	DefaultPreamble() string

	// Formats returns the supported output formats in preference order.
	Formats() []Format

	// Supports reports whether the toolkit can produce format f.
	Supports(f Format) bool

	// Command returns the interpreter arguments (not including the
	// executable itself) that render script into output.
	Command(script, output string, f Format, dpi int) []string
}

// definition is the data-driven Toolkit implementation backing every
// registered variant.
type definition struct {
	tag        string
	executable string
	comment    string
	extension  string
	preamble   string
	formats    []Format
	argv       []string          // command template words, see Command
	devices    map[Format]string // $DEVICE expansion for toolkits that need one
}

func (d *definition) Tag() string               { return d.tag }
func (d *definition) DefaultExecutable() string { return d.executable }
func (d *definition) ScriptExtension() string   { return d.extension }
func (d *definition) DefaultPreamble() string   { return d.preamble }

func (d *definition) Comment(line string) string {
	return d.comment + line
}

func (d *definition) Formats() []Format {
	return slices.Clone(d.formats)
}

func (d *definition) Supports(f Format) bool {
	return slices.Contains(d.formats, f)
}

// Command expands the template words. Recognized placeholders: $SCRIPT,
// $OUTPUT, $FORMAT, $DPI, and $DEVICE (the toolkit's format-specific
// device or terminal name).
func (d *definition) Command(script, output string, f Format, dpi int) []string {
	r := strings.NewReplacer(
		"$SCRIPT", script,
		"$OUTPUT", output,
		"$FORMAT", string(f),
		"$DPI", strconv.Itoa(dpi),
		"$DEVICE", d.devices[f],
	)
	args := make([]string, len(d.argv))
	for i, word := range d.argv {
		args[i] = r.Replace(word)
	}
	return args
}

// Executable is a resolved toolkit interpreter.
type Executable struct {
	Name string // configured or default command name
	Path string // absolute path from the PATH lookup, empty when not found
}

// Available reports whether the interpreter was found.
func (e Executable) Available() bool { return e.Path != "" }

// ResolveExecutable determines the interpreter for tk. A configured
// override wins over the built-in default name. The PATH lookup is
// advisory: an unavailable executable only becomes an error when a
// render is attempted.
func ResolveExecutable(tk Toolkit, cfg *config.Config) Executable {
	name := tk.DefaultExecutable()
	if override := cfg.Toolkit(tk.Tag()).Executable; override != "" {
		name = override
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return Executable{Name: name}
	}
	return Executable{Name: name, Path: path}
}

// registry holds every toolkit in a fixed order. Match scans it first to
// last, which defines the tie-break when a block names several toolkits.
var registry = []Toolkit{
	Matplotlib,
	Octave,
	Gnuplot,
	Graphviz,
	GGPlot2,
	D2,
}

// All returns the supported toolkits in registration order.
func All() []Toolkit {
	return slices.Clone(registry)
}

// Lookup returns the toolkit registered under tag.
func Lookup(tag string) (Toolkit, bool) {
	for _, tk := range registry {
		if tk.Tag() == tag {
			return tk, true
		}
	}
	return nil, false
}

// Match returns the first registered toolkit whose tag appears among
// classes. Blocks naming several toolkits resolve to the earliest
// registry entry; this is a documented tie-break, not an error.
func Match(classes []string) (Toolkit, bool) {
	for _, tk := range registry {
		if slices.Contains(classes, tk.Tag()) {
			return tk, true
		}
	}
	return nil, false
}
