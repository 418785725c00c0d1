package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jmclachlan11/boxbuilder/pkg/box"
	"github.com/jmclachlan11/boxbuilder/pkg/fraction"
	"github.com/jmclachlan11/boxbuilder/pkg/pipeline"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)
	styleHeader   = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleKey      = lipgloss.NewStyle().Foreground(colorGray).Width(12)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// =============================================================================
// Status Output
// =============================================================================

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printError(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+fmt.Sprintf(format, args...))
}

func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+fmt.Sprintf(format, args...))
}

// printDetail prints an indented, dimmed line.
func printDetail(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, styleKey.Render(key)+" "+StyleValue.Render(value))
}

// printArtifact prints a written file and whether it came from the cache.
func printArtifact(w io.Writer, path string, cached bool) {
	status, style := iconFresh, styleComputed
	if cached {
		status, style = iconCached, styleCached
	}
	fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path)+" "+style.Render(status))
}

// printStats prints render statistics on a single line.
func printStats(w io.Writer, s pipeline.Stats) {
	line := "  " + StyleDim.Render(fmt.Sprintf("%d rendered", s.Rendered))
	line += StyleDim.Render(" · ") + StyleDim.Render(fmt.Sprintf("%d from cache", s.CacheHits))
	line += StyleDim.Render(" · ") + StyleDim.Render(s.RenderTime.Round(1e6).String())
	fmt.Fprintln(w, line)
}

// =============================================================================
// Cut List
// =============================================================================

// machineLabel names the roll's machine, or "custom" for an unmatched roll.
func machineLabel(r box.Roll) string {
	if r.Name == "" {
		return "custom"
	}
	return r.Name
}

// cutListTable lays out the pieces of set, numbered by page.
func cutListTable(set box.Set) *table.Table {
	var rows [][]string
	for i, p := range set.CutList() {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			p.Title(),
			strconv.Itoa(p.Quantity),
			fraction.Inches(p.Length),
			fraction.Inches(p.Width),
			fraction.Inches(p.Height),
		})
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Page", "Piece", "Qty", "Length", "Width", "Height").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == -1:
				return base.Inherit(styleHeader)
			case col == 0 || col == 2:
				return base.Foreground(colorCyan).Align(lipgloss.Right)
			case col >= 3:
				return base.Foreground(colorWhite).Align(lipgloss.Right)
			}
			return base
		})
}

// printCutList prints the box summary, its cut list and a material estimate.
func printCutList(w io.Writer, set box.Set) {
	fmt.Fprintln(w, StyleTitle.Render(set.Config.Summary()))
	printKeyValue(w, "Machine", machineLabel(set.Roll))
	printKeyValue(w, "Roll", fraction.Inches(set.Roll.Length)+" x "+fraction.Inches(set.Roll.Diameter))
	printKeyValue(w, "Wood", fraction.Inches(set.Config.WoodThickness))
	fmt.Fprintln(w, cutListTable(set).Render())

	e := set.Estimate()
	d := set.ModelDimensions()
	printKeyValue(w, "Outside", fraction.Inches(d.Length)+" x "+fraction.Inches(d.Width)+" x "+fraction.Inches(d.Height))
	printKeyValue(w, "Pieces", StyleNumber.Render(strconv.Itoa(e.Pieces)))
	printKeyValue(w, "Material", fmt.Sprintf("%.1f sq in · %.2f board ft", e.FaceArea, e.BoardFeet))
}
