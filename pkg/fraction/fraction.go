// Package fraction converts between decimal inches and the sixteenth-inch
// fractions woodworkers read off a tape measure.
//
// [Format] renders a measurement for labels and cut lists ("5 15/16").
// [Parse] accepts user input in either decimal ("2.188") or mixed-fraction
// ("5 3/16") form and enforces the accepted measurement range.
package fraction

import (
	"math"
	"strconv"
	"strings"

	"github.com/jmclachlan11/boxbuilder/pkg/errors"
)

// Denominator is the finest division Format emits.
const Denominator = 16

// Accepted input range, in inches.
const (
	MinValue = 0.0001
	MaxValue = 9999.0
)

// Format renders v as a whole number plus a reduced fraction of sixteenths.
//
// The fractional part is consumed one sixteenth at a time until nothing is
// left, so values that are not an exact sixteenth round up to the next one.
// A remainder that needs all sixteen sixteenths becomes the next whole inch.
// Values below one inch have no whole part ("1/16"); whole values have no
// fraction ("6").
func Format(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	whole := math.Floor(v)
	decimal := v - whole
	if decimal == 0 {
		return strconv.Itoa(int(v))
	}

	numerator := 0
	for decimal > 0 {
		decimal -= 1.0 / Denominator
		numerator++
	}
	if numerator >= Denominator && decimal != 0 {
		return strconv.Itoa(int(v + 1))
	}

	denominator := Denominator
	for numerator > 0 && numerator%2 == 0 {
		numerator /= 2
		denominator /= 2
	}

	frac := strconv.Itoa(numerator) + "/" + strconv.Itoa(denominator)
	if v < 1 {
		return frac
	}
	return strconv.Itoa(int(v)) + " " + frac
}

// Inches formats v followed by an inch mark, as used on drawing labels.
func Inches(v float64) string {
	return Format(v) + `"`
}

// Parse reads a measurement in decimal or mixed-fraction form.
//
// Accepted forms are "5", "2.188", "3/16" and "5 3/16". Surrounding
// whitespace is ignored. Errors carry one of the codes
// [errors.ErrCodeEmptyField], [errors.ErrCodeInvalidFormat],
// [errors.ErrCodeDivideByZero] or [errors.ErrCodeOutOfRange].
func Parse(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New(errors.ErrCodeEmptyField, "empty field")
	}

	var v float64
	var err error
	switch whole, frac, mixed := strings.Cut(s, " "); {
	case mixed:
		v, err = parseMixed(whole, strings.TrimSpace(frac))
	case strings.Contains(s, "/"):
		v, err = parseRatio(s)
	default:
		v, err = parseDecimal(s)
	}
	if err != nil {
		return 0, err
	}

	if v < MinValue || v > MaxValue {
		return 0, errors.New(errors.ErrCodeOutOfRange, "%s is outside the accepted range %g to %g", s, MinValue, MaxValue)
	}
	return v, nil
}

func parseMixed(whole, frac string) (float64, error) {
	if !strings.Contains(frac, "/") {
		return 0, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q needs a fraction after the space", whole+" "+frac)
	}
	if strings.ContainsAny(frac, "+-") {
		return 0, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q has a signed fraction", whole+" "+frac)
	}
	w, err := parseDecimal(whole)
	if err != nil {
		return 0, err
	}
	f, err := parseRatio(frac)
	if err != nil {
		return 0, err
	}
	return w + f, nil
}

func parseRatio(s string) (float64, error) {
	num, den, _ := strings.Cut(s, "/")
	if num == "" || den == "" || strings.Contains(den, "/") {
		return 0, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q", s)
	}
	n, err := parseDecimal(num)
	if err != nil {
		return 0, err
	}
	d, err := parseDecimal(den)
	if err != nil {
		return 0, err
	}
	if d == 0 {
		return 0, errors.New(errors.ErrCodeDivideByZero, "divide by 0 in %q", s)
	}
	return n / d, nil
}

func parseDecimal(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q is not a number", s)
	}
	return v, nil
}
