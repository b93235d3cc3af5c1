package toolkit

// Gnuplot renders gnuplot scripts. Terminal and output file are
// injected ahead of the script with -e, so scripts stay free of output
// paths.
var Gnuplot Toolkit = &definition{
	tag:        "gnuplot",
	executable: "gnuplot",
	comment:    "# ",
	extension:  ".gp",
	formats:    []Format{PNG, PDF, SVG, JPG, EPS, GIF},
	argv: []string{
		"-e",
		`set terminal $DEVICE; set output "$OUTPUT"`,
		"$SCRIPT",
	},
	devices: map[Format]string{
		PNG: "pngcairo",
		PDF: "pdfcairo",
		SVG: "svg",
		JPG: "jpeg",
		EPS: "epscairo",
		GIF: "gif",
	},
}
