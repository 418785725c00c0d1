// Package machine lists the named roll sizes of common machines so a box can
// be built by picking a machine instead of measuring a roll.
package machine

import (
	"strings"
	"sync"

	"github.com/jmclachlan11/boxbuilder/pkg/box"
	"github.com/jmclachlan11/boxbuilder/pkg/errors"
	"github.com/jmclachlan11/boxbuilder/pkg/fraction"
)

// Custom is the picker entry for a roll that is measured by hand.
const Custom = "Custom"

// Machine is a preset roll size. Length and Diameter keep the notation the
// size is published in (decimal or fractional inches).
type Machine struct {
	Name     string `json:"name" toml:"name"`
	Length   string `json:"length" toml:"length"`
	Diameter string `json:"diameter" toml:"diameter"`
}

var presets = []Machine{
	{"911.25", "2.188", "0.566"},
	{"912.5", "3", "1.132"},
	{"914.5", "5 3/16", "2.030"},
	{"916", "6 9/16", "2.543"},
	{"920", "8 15/16", "3.672"},
	{"922", "11 3/16", "4.621"},
	{"924R", "12 23/32", "5.283"},
	{"926", "18 1/2", "5.526"},
	{"927", "15 5/8", "6.215"},
	{"930", "17 3/8", "7.147"},
	{"935", "22 5/8", "8.806"},
	{"940", "27 3/8", "11.27"},
	{"AYZ", "2 11/16", "0.879"},
	{"AY", "5 15/16", "1.791"},
	{"AYY", "7 13/32", "2.725"},
	{"AXY", "9 1/2", "3.698"},
	{"AX", "14", "4.576"},
	{"AXN", "19 11/16", "5.916"},
	{"AN", "21 3/16", "7.126"},
	{"A0", "24 3/4", "9.269"},
	{"A1", "27 5/16", "10.907"},
	{"A2", "26 3/4", "12.140"},
	{"WS1 / WS101", "3.051", "1.142"},
	{"WS1A / WS101A", "4.843", "1.772"},
	{"WS2 / WS102", "9.843", "3.543"},
	{"WS3 / WS103", "15", "4.331"},
	{"WS4 / WS104", "17.205", "5.512"},
	{"WS5 / WS105", "20.079", "7"},
	{"WS6 / WS106", "24.213", "8.858"},
	{"WS6HD / WS106HD", "23.228", "8.858"},
	{"WS7 / WS107", "27.402", "10.236"},
	{"WS8 / WS108", "31.496", "11.811"},
}

type parsed struct {
	length, diameter float64
}

var (
	parseOnce sync.Once
	values    []parsed
)

func parsedValues() []parsed {
	parseOnce.Do(func() {
		values = make([]parsed, len(presets))
		for i, m := range presets {
			l, _ := fraction.Parse(m.Length)
			d, _ := fraction.Parse(m.Diameter)
			values[i] = parsed{l, d}
		}
	})
	return values
}

// All returns the presets in display order. The slice is a copy.
func All() []Machine {
	out := make([]Machine, len(presets))
	copy(out, presets)
	return out
}

// Lookup returns the preset with the given name. Names compare
// case-insensitively; surrounding space is ignored.
func Lookup(name string) (Machine, error) {
	name = strings.TrimSpace(name)
	for _, m := range presets {
		if strings.EqualFold(m.Name, name) {
			return m, nil
		}
	}
	return Machine{}, errors.New(errors.ErrCodeMachineNotFound, "unknown machine %q", name)
}

// Match returns the name of the first preset whose parsed length and
// diameter equal the given values exactly, or "" when none does.
func Match(length, diameter float64) string {
	for i, v := range parsedValues() {
		if v.length == length && v.diameter == diameter {
			return presets[i].Name
		}
	}
	return ""
}

// Values parses the preset's length and diameter.
func (m Machine) Values() (length, diameter float64, err error) {
	if length, err = fraction.Parse(m.Length); err != nil {
		return 0, 0, err
	}
	if diameter, err = fraction.Parse(m.Diameter); err != nil {
		return 0, 0, err
	}
	return length, diameter, nil
}

// Roll returns the preset as a named roll.
func (m Machine) Roll() (box.Roll, error) {
	l, d, err := m.Values()
	if err != nil {
		return box.Roll{}, err
	}
	return box.Roll{Name: m.Name, Length: l, Diameter: d}, nil
}
