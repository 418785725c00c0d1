package fraction

import (
	"fmt"
	"math"
	"testing"

	"github.com/jmclachlan11/boxbuilder/pkg/errors"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{6, "6"},
		{5.5, "5 1/2"},
		{5.9375, "5 15/16"},
		{0.0625, "1/16"},
		{0.5, "1/2"},
		{4.25, "4 1/4"},
		{1.132, "1 3/16"},
		{2.188, "2 1/4"},
		{3.125, "3 1/8"},
		{5.99, "6"},
		{0.99, "1"},
		{12, "12"},
	}
	for _, tt := range tests {
		if got := Format(tt.in); got != tt.want {
			t.Errorf("Format(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDegenerate(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), -0.5, 0} {
		_ = Format(v) // must terminate without panicking
	}
	if got := Format(math.NaN()); got != "NaN" {
		t.Errorf("Format(NaN) = %q", got)
	}
}

func TestInches(t *testing.T) {
	if got := Inches(5.5); got != `5 1/2"` {
		t.Errorf("Inches(5.5) = %q", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"5", 5},
		{"2.188", 2.188},
		{"3/16", 0.1875},
		{"5 3/16", 5.1875},
		{" 9.5 ", 9.5},
		{"1  1/2", 1.5},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in   string
		code errors.Code
	}{
		{"", errors.ErrCodeEmptyField},
		{"   ", errors.ErrCodeEmptyField},
		{"abc", errors.ErrCodeInvalidFormat},
		{"123 456", errors.ErrCodeInvalidFormat},
		{"3/", errors.ErrCodeInvalidFormat},
		{"1/2/3", errors.ErrCodeInvalidFormat},
		{"3/0", errors.ErrCodeDivideByZero},
		{"5 1/0", errors.ErrCodeDivideByZero},
		{"5 -1/2", errors.ErrCodeInvalidFormat},
		{"5 +1/2", errors.ErrCodeInvalidFormat},
		{"5 1/-2", errors.ErrCodeInvalidFormat},
		{"0", errors.ErrCodeOutOfRange},
		{"-2", errors.ErrCodeOutOfRange},
		{"10000", errors.ErrCodeOutOfRange},
		{"NaN", errors.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := Parse(tt.in)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want %s", tt.in, tt.code)
			}
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("Parse(%q) code = %s, want %s", tt.in, got, tt.code)
			}
		})
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"5 8/16", "5 1/2"},
		{"5 15/16", "5 15/16"},
		{"2/16", "1/8"},
		{"7 4/8", "7 1/2"},
		{"6", "6"},
		{"12 12/16", "12 3/4"},
	}
	for _, tt := range tests {
		v, err := Parse(tt.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.in, err)
		}
		if got := Format(v); got != tt.want {
			t.Errorf("Format(Parse(%q)) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func ExampleFormat() {
	fmt.Println(Format(5.9375))
	fmt.Println(Format(6))
	fmt.Println(Format(0.0625))
	// Output:
	// 5 15/16
	// 6
	// 1/16
}
