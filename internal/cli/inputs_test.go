package cli

import (
	"testing"

	"github.com/spf13/cobra"

	"github.com/jmclachlan11/boxbuilder/pkg/box"
	"github.com/jmclachlan11/boxbuilder/pkg/config"
	"github.com/jmclachlan11/boxbuilder/pkg/errors"
	"github.com/jmclachlan11/boxbuilder/pkg/machine"
)

func TestBoxFlagsForm(t *testing.T) {
	prefs := config.Prefs{
		RollCount:     box.TenRolls,
		Force:         box.RowForce{Enabled: true, Count: 2},
		WoodThickness: "3/4",
		Machine:       "916",
	}
	tests := []struct {
		name string
		args []string
		want machine.Form
	}{
		{
			name: "all from prefs",
			want: machine.Form{RollCount: 10, Machine: "916", Thickness: "3/4", Rows: 2},
		},
		{
			name: "flags win",
			args: []string{"-n", "6", "-m", "920", "-t", "1/2", "--rows", "1"},
			want: machine.Form{RollCount: 6, Machine: "920", Thickness: "1/2", Rows: 1},
		},
		{
			name: "explicit size drops stored machine",
			args: []string{"-l", "3", "-d", "1"},
			want: machine.Form{RollCount: 10, Length: "3", Diameter: "1", Thickness: "3/4", Rows: 2},
		},
		{
			name: "rows zero overrides stored force",
			args: []string{"--rows", "0"},
			want: machine.Form{RollCount: 10, Machine: "916", Thickness: "3/4"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f boxFlags
			cmd := &cobra.Command{Use: "test"}
			f.register(cmd)
			if err := cmd.ParseFlags(tt.args); err != nil {
				t.Fatal(err)
			}
			if got := f.form(cmd, prefs); got != tt.want {
				t.Errorf("form() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBoxFlagsResolve(t *testing.T) {
	var f boxFlags
	cmd := &cobra.Command{Use: "test"}
	f.register(cmd)
	if err := cmd.ParseFlags([]string{"-m", "912.5"}); err != nil {
		t.Fatal(err)
	}
	in, err := f.resolve(cmd, config.DefaultPrefs())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	want := box.Inputs{RollCount: 6, RollLength: 3, RollDiameter: 1.132, WoodThickness: 0.5, Name: "912.5"}
	if in != want {
		t.Errorf("resolve() = %+v, want %+v", in, want)
	}
}

func TestParsePage(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"1", 0},
		{" 3 ", 2},
		{"column-divider", 4},
		{"Row Divider", 5},
		{"TOP", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parsePage(tt.in)
			if err != nil || got != tt.want {
				t.Errorf("parsePage(%q) = %d, %v; want %d", tt.in, got, err, tt.want)
			}
		})
	}
	if _, err := parsePage("lid"); errors.GetCode(err) != errors.ErrCodeInvalidPage {
		t.Errorf("parsePage(lid) = %v, want INVALID_PAGE", err)
	}
}
