package cli

import (
	"strconv"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmclachlan11/boxbuilder/pkg/machine"
)

func press(m MachineListModel, keys ...tea.KeyMsg) MachineListModel {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(MachineListModel)
	}
	return m
}

func typed(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMachineListVisible(t *testing.T) {
	m := NewMachineListModel(machine.All())
	v := m.Visible()
	if len(v) != len(machine.All())+1 {
		t.Fatalf("Visible() = %d entries, want presets plus Custom", len(v))
	}
	if v[len(v)-1].Name != machine.Custom {
		t.Errorf("last entry = %q, want %q", v[len(v)-1].Name, machine.Custom)
	}

	m.Filter = "ws6"
	names := []string{}
	for _, mc := range m.Visible() {
		names = append(names, mc.Name)
	}
	want := "WS6 / WS106,WS6HD / WS106HD,Custom"
	if got := strings.Join(names, ","); got != want {
		t.Errorf("filtered = %q, want %q", got, want)
	}
}

func TestMachineListNavigation(t *testing.T) {
	m := NewMachineListModel(machine.All())
	m.Height = 3

	m = press(m, tea.KeyMsg{Type: tea.KeyUp})
	if m.Cursor != 0 {
		t.Errorf("up at top moved cursor to %d", m.Cursor)
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
	if m.Cursor != 3 || m.Offset != 1 {
		t.Errorf("cursor/offset = %d/%d, want 3/1", m.Cursor, m.Offset)
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp})
	if m.Cursor != 0 || m.Offset != 0 {
		t.Errorf("cursor/offset = %d/%d, want 0/0", m.Cursor, m.Offset)
	}
}

func TestMachineListFilterAndSelect(t *testing.T) {
	m := NewMachineListModel(machine.All())
	m = press(m, tea.KeyMsg{Type: tea.KeyDown}, typed("92"), typed("4"))
	if m.Filter != "924" || m.Cursor != 0 {
		t.Fatalf("filter/cursor = %q/%d", m.Filter, m.Cursor)
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyBackspace})
	if m.Filter != "92" {
		t.Errorf("backspace left %q", m.Filter)
	}
	m = press(m, typed("4"))

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MachineListModel)
	if m.Selected == nil || m.Selected.Name != "924R" {
		t.Fatalf("Selected = %+v, want 924R", m.Selected)
	}
	if cmd == nil {
		t.Error("enter should quit the program")
	}
}

func TestMachineListView(t *testing.T) {
	m := NewMachineListModel(machine.All())
	view := m.View()
	for _, want := range []string{"Select Machine", "911.25", `2 3/16"`, "▸"} {
		if !strings.Contains(view, want) {
			t.Errorf("view lacks %q", want)
		}
	}
	if !strings.Contains(view, "[1/"+strconv.Itoa(len(machine.All())+1)+"]") {
		t.Error("view lacks the position counter")
	}
}
