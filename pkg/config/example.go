package config

// Example returns a commented configuration file with all settings at
// their defaults. Used by "plotfence config init".
func Example() string {
	return `# plotfence configuration.
# Every setting is optional; the values below are the built-in defaults.

# Output directory for figures and their source scripts.
directory = "plotfence-output"

# Default figure format: png, pdf, svg, jpg, eps, gif, tiff or webp.
# Not every toolkit supports every format.
format = "png"

# Raster resolution in dots per inch. Ignored by vector formats.
dpi = 80

# Insert a link to the figure's source script after each figure.
source = false

# Number of figures rendered concurrently. Zero or omitted uses the
# number of CPUs.
#jobs = 4

# Per-figure rendering budget, e.g. "30s" or "2m". Empty means no limit.
#timeout = "2m"

# Files every figure depends on. Changing one invalidates all cached
# figures.
#dependencies = ["style.mplstyle"]

# Per-toolkit overrides. "executable" replaces the interpreter looked up
# on PATH; "preamble" names a file prepended to every script.

#[matplotlib]
#executable = "python3"
#preamble = "preamble.py"

#[octave]
#executable = "octave"

#[gnuplot]
#executable = "gnuplot"

#[graphviz]
#executable = "dot"

#[ggplot2]
#executable = "Rscript"

#[d2]
#executable = "d2"
`
}
