package errors

import (
	"strings"
	"testing"
)

func TestValidateChartName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "vehicle-sales", false},
		{"with spaces", "Vehicle Sales 2024", false},
		{"unicode", "Fahrzeugverkäufe", false},

		{"empty", "", true},
		{"blank", "   ", true},
		{"too long", strings.Repeat("a", 200), true},
		{"slash", "sales/2024", true},
		{"backslash", "sales\\2024", true},
		{"control char", "sales\x01", true},
		{"newline", "sales\nq1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateChartName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateChartName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateChartName(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	valid := []string{"svg", "png"}

	if err := ValidateFormat("svg", valid); err != nil {
		t.Errorf("ValidateFormat(svg) = %v", err)
	}

	err := ValidateFormat("gif", valid)
	if err == nil {
		t.Fatal("ValidateFormat(gif) should fail")
	}
	if !Is(err, ErrCodeInvalidFormat) {
		t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidFormat)
	}
	if !strings.Contains(err.Error(), "svg, png") {
		t.Errorf("error should list valid formats: %v", err)
	}
}
