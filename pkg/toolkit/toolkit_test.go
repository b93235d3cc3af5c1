package toolkit

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/plotfence/plotfence/pkg/config"
	"github.com/plotfence/plotfence/pkg/errors"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Format
		wantErr bool
	}{
		{"lowercase", "png", PNG, false},
		{"uppercase", "PNG", PNG, false},
		{"mixed case", "Svg", SVG, false},
		{"leading dot", ".pdf", PDF, false},
		{"jpeg alias", "jpeg", JPG, false},
		{"tif alias", "tif", TIFF, false},
		{"surrounding space", " webp ", WEBP, false},

		{"empty", "", "", true},
		{"unknown", "bmp", "", true},
		{"garbage", "not-a-format", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInvalidFormat) {
					t.Errorf("ParseFormat(%q) error code = %v, want INVALID_FORMAT", tt.input, errors.GetCode(err))
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatExtension(t *testing.T) {
	if got := PNG.Extension(); got != ".png" {
		t.Errorf("PNG.Extension() = %q, want %q", got, ".png")
	}
	if got := TIFF.Extension(); got != ".tiff" {
		t.Errorf("TIFF.Extension() = %q, want %q", got, ".tiff")
	}
}

func TestRegistryComplete(t *testing.T) {
	all := All()
	if len(all) != 6 {
		t.Fatalf("All() returned %d toolkits, want 6", len(all))
	}

	seen := make(map[string]bool)
	for _, tk := range all {
		if tk.Tag() == "" {
			t.Error("toolkit with empty tag")
		}
		if seen[tk.Tag()] {
			t.Errorf("duplicate toolkit tag %q", tk.Tag())
		}
		seen[tk.Tag()] = true

		if tk.DefaultExecutable() == "" {
			t.Errorf("%s: empty default executable", tk.Tag())
		}
		if tk.ScriptExtension() == "" || !strings.HasPrefix(tk.ScriptExtension(), ".") {
			t.Errorf("%s: bad script extension %q", tk.Tag(), tk.ScriptExtension())
		}
		if len(tk.Formats()) == 0 {
			t.Errorf("%s: no supported formats", tk.Tag())
		}
		if tk.Comment("x") == "x" {
			t.Errorf("%s: Comment does not prefix", tk.Tag())
		}

		// Every advertised format must survive a Supports round trip.
		for _, f := range tk.Formats() {
			if !tk.Supports(f) {
				t.Errorf("%s: Supports(%s) = false for advertised format", tk.Tag(), f)
			}
		}
	}
}

func TestLookup(t *testing.T) {
	for _, tag := range []string{"matplotlib", "octave", "gnuplot", "graphviz", "ggplot2", "d2"} {
		tk, ok := Lookup(tag)
		if !ok {
			t.Errorf("Lookup(%q) not found", tag)
			continue
		}
		if tk.Tag() != tag {
			t.Errorf("Lookup(%q).Tag() = %q", tag, tk.Tag())
		}
	}

	if _, ok := Lookup("plotly"); ok {
		t.Error("Lookup(plotly) should not be found")
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name    string
		classes []string
		wantTag string
		wantOK  bool
	}{
		{"single tag", []string{"matplotlib"}, "matplotlib", true},
		{"tag among classes", []string{"numberLines", "gnuplot", "wide"}, "gnuplot", true},
		{"no toolkit class", []string{"python", "example"}, "", false},
		{"empty classes", nil, "", false},
		// Registry order breaks the tie, not class order.
		{"two toolkit tags", []string{"d2", "octave"}, "octave", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk, ok := Match(tt.classes)
			if ok != tt.wantOK {
				t.Fatalf("Match(%v) ok = %v, want %v", tt.classes, ok, tt.wantOK)
			}
			if ok && tk.Tag() != tt.wantTag {
				t.Errorf("Match(%v) = %q, want %q", tt.classes, tk.Tag(), tt.wantTag)
			}
		})
	}
}

func TestSupports(t *testing.T) {
	tests := []struct {
		toolkit Toolkit
		format  Format
		want    bool
	}{
		{Matplotlib, WEBP, true},
		{Matplotlib, PNG, true},
		{Octave, WEBP, false},
		{Gnuplot, TIFF, false},
		{Graphviz, EPS, false},
		{GGPlot2, GIF, false},
		{D2, SVG, true},
		{D2, GIF, false},
	}

	for _, tt := range tests {
		t.Run(tt.toolkit.Tag()+"/"+string(tt.format), func(t *testing.T) {
			if got := tt.toolkit.Supports(tt.format); got != tt.want {
				t.Errorf("Supports(%s) = %v, want %v", tt.format, got, tt.want)
			}
		})
	}
}

func TestCommandExpansion(t *testing.T) {
	t.Run("graphviz", func(t *testing.T) {
		got := Graphviz.Command("g.dot", "g.png", PNG, 96)
		want := []string{"-Tpng", "-Gdpi=96", "-o", "g.png", "g.dot"}
		if !slices.Equal(got, want) {
			t.Errorf("Command = %v, want %v", got, want)
		}
	})

	t.Run("d2", func(t *testing.T) {
		got := D2.Command("in.d2", "out.svg", SVG, 80)
		want := []string{"in.d2", "out.svg"}
		if !slices.Equal(got, want) {
			t.Errorf("Command = %v, want %v", got, want)
		}
	})

	t.Run("octave device", func(t *testing.T) {
		got := Octave.Command("fig.m", "fig.eps", EPS, 300)
		joined := strings.Join(got, " ")
		if !strings.Contains(joined, `run("fig.m")`) {
			t.Errorf("missing script in %q", joined)
		}
		if !strings.Contains(joined, "-depsc") {
			t.Errorf("missing eps device in %q", joined)
		}
		if !strings.Contains(joined, "-r300") {
			t.Errorf("missing resolution in %q", joined)
		}
	})

	t.Run("gnuplot terminal", func(t *testing.T) {
		got := Gnuplot.Command("plot.gp", "plot.pdf", PDF, 80)
		if got[len(got)-1] != "plot.gp" {
			t.Errorf("script should be last argument, got %v", got)
		}
		joined := strings.Join(got, " ")
		if !strings.Contains(joined, "set terminal pdfcairo") {
			t.Errorf("missing terminal in %q", joined)
		}
		if !strings.Contains(joined, `set output "plot.pdf"`) {
			t.Errorf("missing output in %q", joined)
		}
	})

	t.Run("matplotlib harness", func(t *testing.T) {
		got := Matplotlib.Command("p.py", "p.png", PNG, 80)
		if len(got) != 2 || got[0] != "-c" {
			t.Fatalf("Command = %v, want [-c <harness>]", got)
		}
		if !strings.Contains(got[1], `r"p.py"`) {
			t.Errorf("harness missing script path: %q", got[1])
		}
		if !strings.Contains(got[1], "dpi=80") {
			t.Errorf("harness missing dpi: %q", got[1])
		}
	})

	t.Run("ggplot2 chain", func(t *testing.T) {
		got := GGPlot2.Command("p.r", "p.png", PNG, 150)
		joined := strings.Join(got, " ")
		if !strings.Contains(joined, `source("p.r")`) {
			t.Errorf("missing source in %q", joined)
		}
		if !strings.Contains(joined, "dpi=150") {
			t.Errorf("missing dpi in %q", joined)
		}
	})
}

func TestResolveExecutable(t *testing.T) {
	t.Run("missing default", func(t *testing.T) {
		cfg := config.Default()
		cfg.Gnuplot.Executable = "definitely-not-installed-anywhere"

		exe := ResolveExecutable(Gnuplot, cfg)
		if exe.Available() {
			t.Errorf("expected unavailable, got path %q", exe.Path)
		}
		if exe.Name != "definitely-not-installed-anywhere" {
			t.Errorf("Name = %q, want configured override", exe.Name)
		}
	})

	t.Run("override with absolute path", func(t *testing.T) {
		dir := t.TempDir()
		fake := filepath.Join(dir, "fake-gnuplot")
		if err := os.WriteFile(fake, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
			t.Fatal(err)
		}

		cfg := config.Default()
		cfg.Gnuplot.Executable = fake

		exe := ResolveExecutable(Gnuplot, cfg)
		if !exe.Available() {
			t.Fatal("expected override executable to resolve")
		}
		if exe.Path != fake {
			t.Errorf("Path = %q, want %q", exe.Path, fake)
		}
	})

	t.Run("default name used without override", func(t *testing.T) {
		cfg := config.Default()
		exe := ResolveExecutable(D2, cfg)
		if exe.Name != "d2" {
			t.Errorf("Name = %q, want default d2", exe.Name)
		}
	})
}
