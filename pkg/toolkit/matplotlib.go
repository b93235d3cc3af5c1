package toolkit

// Matplotlib renders Python scripts that draw with the matplotlib
// library. The script runs through a small harness that forces the
// non-interactive Agg backend and saves the active figure, so scripts
// do not need their own savefig call.
var Matplotlib Toolkit = &definition{
	tag:        "matplotlib",
	executable: "python3",
	comment:    "# ",
	extension:  ".py",
	formats:    []Format{PNG, PDF, SVG, JPG, EPS, GIF, TIFF, WEBP},
	argv: []string{
		"-c",
		matplotlibHarness,
	},
}

// matplotlibHarness executes the persisted script and captures the
// active figure. Paths are spliced into raw string literals.
const matplotlibHarness = `import matplotlib
matplotlib.use("Agg")
exec(compile(open(r"$SCRIPT", "rb").read(), r"$SCRIPT", "exec"))
import matplotlib.pyplot
matplotlib.pyplot.savefig(r"$OUTPUT", dpi=$DPI)`
