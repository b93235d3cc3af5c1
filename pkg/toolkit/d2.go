package toolkit

// D2 renders D2 diagram scripts. The d2 compiler takes the output path
// directly and infers the format from its extension.
var D2 Toolkit = &definition{
	tag:        "d2",
	executable: "d2",
	comment:    "# ",
	extension:  ".d2",
	formats:    []Format{PNG, PDF, SVG},
	argv: []string{
		"$SCRIPT",
		"$OUTPUT",
	},
}
