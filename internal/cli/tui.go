package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jmclachlan11/boxbuilder/pkg/fraction"
	"github.com/jmclachlan11/boxbuilder/pkg/machine"
)

var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// =============================================================================
// MachineListModel - Interactive machine selection
// =============================================================================

// MachineListModel is the bubbletea model for picking a machine preset.
// Typing filters the list by name; the last entry is always Custom.
type MachineListModel struct {
	All      []machine.Machine
	Filter   string
	Cursor   int
	Offset   int
	Height   int
	Selected *machine.Machine
}

// NewMachineListModel creates a picker over the given presets.
func NewMachineListModel(machines []machine.Machine) MachineListModel {
	return MachineListModel{All: machines, Height: 15}
}

// Visible returns the presets matching Filter, followed by Custom.
func (m MachineListModel) Visible() []machine.Machine {
	var out []machine.Machine
	f := strings.ToLower(m.Filter)
	for _, mc := range m.All {
		if f == "" || strings.Contains(strings.ToLower(mc.Name), f) {
			out = append(out, mc)
		}
	}
	return append(out, machine.Machine{Name: machine.Custom})
}

func (m MachineListModel) Init() tea.Cmd {
	return nil
}

func (m MachineListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		visible := m.Visible()
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyUp:
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case tea.KeyDown:
			if m.Cursor < len(visible)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case tea.KeyEnter:
			sel := visible[m.Cursor]
			m.Selected = &sel
			return m, tea.Quit
		case tea.KeyBackspace:
			if m.Filter != "" {
				m.Filter = m.Filter[:len(m.Filter)-1]
				m.Cursor, m.Offset = 0, 0
			}
		case tea.KeyRunes:
			m.Filter += string(msg.Runes)
			m.Cursor, m.Offset = 0, 0
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m MachineListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Machine"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  type to filter  esc quit"))
	b.WriteString("\n")
	if m.Filter != "" {
		b.WriteString(StyleValue.Render("filter: " + m.Filter))
	}
	b.WriteString("\n\n")

	visible := m.Visible()
	end := m.Offset + m.Height
	if end > len(visible) {
		end = len(visible)
	}

	var rows [][]string
	for i := m.Offset; i < end; i++ {
		mc := visible[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		length, diameter := "—", "—"
		if l, d, err := mc.Values(); err == nil && mc.Name != machine.Custom {
			length, diameter = fraction.Inches(l), fraction.Inches(d)
		}
		rows = append(rows, []string{cursor, mc.Name, length, diameter})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Machine", "Length", "Diameter").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if m.Offset+row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			}
			if col >= 2 {
				return lipgloss.NewStyle().Foreground(colorGray)
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(visible))))

	return b.String()
}
