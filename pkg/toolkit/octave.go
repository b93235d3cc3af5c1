package toolkit

// Octave renders GNU Octave scripts. The figure is captured with
// print() after the script runs, keeping the graphics toolkit
// offscreen.
var Octave Toolkit = &definition{
	tag:        "octave",
	executable: "octave",
	comment:    "% ",
	extension:  ".m",
	formats:    []Format{PNG, PDF, SVG, JPG, EPS, GIF, TIFF},
	argv: []string{
		"--no-gui",
		"--norc",
		"--silent",
		"--eval",
		`run("$SCRIPT"); print("$OUTPUT", "-d$DEVICE", "-r$DPI");`,
	},
	devices: map[Format]string{
		PNG:  "png",
		PDF:  "pdf",
		SVG:  "svg",
		JPG:  "jpg",
		EPS:  "epsc",
		GIF:  "gif",
		TIFF: "tiff",
	},
}
