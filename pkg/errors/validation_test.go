package errors

import (
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty", "", false},
		{"preset", "912.5", false},
		{"with slash", "WS8 / WS108", false},
		{"spaces", "Shop Bench", false},

		{"too long", strings.Repeat("x", 65), true},
		{"null byte", "foo\x00bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidName) {
				t.Errorf("ValidateName(%q) code = %s", tt.input, GetCode(err))
			}
		})
	}
}

func TestValidateChoice(t *testing.T) {
	if err := ValidateChoice("roll count", 6, 6, 10); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	err := ValidateChoice("roll count", 8, 6, 10)
	if !Is(err, ErrCodeInvalidInput) {
		t.Fatalf("ValidateChoice(8) = %v, want INVALID_INPUT", err)
	}
	if want := "roll count must be one of [6 10], got 8"; UserMessage(err) != want {
		t.Errorf("message = %q, want %q", UserMessage(err), want)
	}
}
