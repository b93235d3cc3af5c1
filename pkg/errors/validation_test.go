package errors

import (
	"strings"
	"testing"
)

func TestValidateDirectory(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid relative", "plots", false},
		{"valid nested", "figures/generated", false},
		{"valid absolute", "/tmp/figures", false},
		{"valid with parent", "../figures", false},
		{"valid with dot", "./plots", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 600), true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDirectory(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDirectory(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidateDirectory(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestValidateScriptPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "plot.py", false},
		{"valid nested", "scripts/plot.py", false},
		{"valid absolute", "/home/user/plot.py", false},

		{"empty", "", true},
		{"trailing slash", "scripts/", true},
		{"null byte", "plot\x00.py", true},
		{"control char", "plot\x01.py", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateScriptPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateScriptPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDPI(t *testing.T) {
	tests := []struct {
		name    string
		input   int
		wantErr bool
	}{
		{"default", 80, false},
		{"print quality", 300, false},
		{"max", 10000, false},

		{"zero", 0, true},
		{"negative", -80, true},
		{"too large", 10001, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDPI(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDPI(%d) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateJobs(t *testing.T) {
	tests := []struct {
		name    string
		input   int
		wantErr bool
	}{
		{"one", 1, false},
		{"many", 16, false},

		{"zero", 0, true},
		{"negative", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJobs(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateJobs(%d) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
