package toolkit

// Graphviz renders DOT graphs with the dot layout engine, which takes
// the format and output path as native flags.
var Graphviz Toolkit = &definition{
	tag:        "graphviz",
	executable: "dot",
	comment:    "// ",
	extension:  ".dot",
	formats:    []Format{PNG, PDF, SVG, JPG, GIF, WEBP},
	argv: []string{
		"-T$FORMAT",
		"-Gdpi=$DPI",
		"-o",
		"$OUTPUT",
		"$SCRIPT",
	},
}
