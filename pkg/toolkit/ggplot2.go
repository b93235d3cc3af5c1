package toolkit

// GGPlot2 renders R scripts that build a ggplot object. The last plot
// is captured with ggsave, which infers the graphics device from the
// output extension.
var GGPlot2 Toolkit = &definition{
	tag:        "ggplot2",
	executable: "Rscript",
	comment:    "# ",
	extension:  ".r",
	formats:    []Format{PNG, PDF, SVG, JPG, EPS, TIFF},
	argv: []string{
		"-e",
		`source("$SCRIPT")`,
		"-e",
		`ggplot2::ggsave("$OUTPUT", dpi=$DPI)`,
	},
}
