package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wippyai/grid"
	"github.com/wippyai/grid/internal/coerce"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	axisStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// isTerminal reports whether stdout is an interactive terminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Browse the grid interactively",
		Long: `Browse the grid one z plane at a time.

Keys: arrows or hjkl move, [ and ] change plane, g jumps to a coordinate,
q quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal() {
				return fmt.Errorf("inspect needs an interactive terminal; use dump instead")
			}
			s, cfg, err := sheetFrom(cmd)
			if err != nil {
				return err
			}
			p := tea.NewProgram(newInspectModel(s, cfg.Cursor), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}
}

type inspectModel struct {
	err    error
	sheet  sheet
	input  textinput.Model
	cursor grid.Coord
	going  bool
}

func newInspectModel(s sheet, start grid.Coord) *inspectModel {
	ti := textinput.New()
	ti.Placeholder = "x,y"
	if s.Rank() == 3 {
		ti.Placeholder = "x,y,z"
	}
	ti.Prompt = "goto: "
	ti.CharLimit = 32
	ti.Width = 20

	m := &inspectModel{sheet: s, input: ti}
	if s.Extents().Contains(start) {
		m.cursor = start
	}
	return m
}

func (m *inspectModel) Init() tea.Cmd {
	return nil
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.going {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.going {
		switch key.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "enter":
			m.jump(m.input.Value())
			m.closeInput()
			return m, nil
		case "esc":
			m.closeInput()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	e := m.sheet.Extents()
	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "left", "h":
		if m.cursor.X > 0 {
			m.cursor.X--
		}
	case "right", "l":
		if m.cursor.X < e.X-1 {
			m.cursor.X++
		}
	case "up", "k":
		if m.cursor.Y > 0 {
			m.cursor.Y--
		}
	case "down", "j":
		if m.cursor.Y < e.Y-1 {
			m.cursor.Y++
		}
	case "[":
		if m.cursor.Z > 0 {
			m.cursor.Z--
		}
	case "]":
		if m.cursor.Z < e.Z-1 {
			m.cursor.Z++
		}
	case "g":
		m.going = true
		m.err = nil
		return m, m.input.Focus()
	}
	return m, nil
}

func (m *inspectModel) closeInput() {
	m.going = false
	m.input.Blur()
	m.input.Reset()
}

// jump moves the cursor to the coordinate typed into the goto prompt.
func (m *inspectModel) jump(text string) {
	parts, ok := coerce.ToInts(text)
	if !ok || len(parts) == 0 {
		m.err = fmt.Errorf("goto: %q is not a coordinate", text)
		return
	}
	values := make([]any, len(parts))
	for i, p := range parts {
		values[i] = p
	}
	c, err := grid.ParseCoord(values...)
	if err != nil {
		m.err = err
		return
	}
	if !m.sheet.Extents().Contains(c) {
		m.err = fmt.Errorf("goto: %v is outside %s", c, describe(m.sheet))
		return
	}
	m.cursor = c
	m.err = nil
}

func (m *inspectModel) View() string {
	var b strings.Builder
	e := m.sheet.Extents()

	b.WriteString(titleStyle.Render("Grid Inspector"))
	b.WriteString(" ")
	b.WriteString(describe(m.sheet))
	if m.sheet.Rank() == 3 {
		b.WriteString(axisStyle.Render(fmt.Sprintf("  plane z=%d/%d", m.cursor.Z, e.Z-1)))
	}
	b.WriteString("\n\n")

	width := 1
	for y := 0; y < e.Y; y++ {
		for x := 0; x < e.X; x++ {
			width = max(width, len(m.sheet.Cell(grid.XYZ(x, y, m.cursor.Z))))
		}
	}

	for y := 0; y < e.Y; y++ {
		for x := 0; x < e.X; x++ {
			c := grid.XYZ(x, y, m.cursor.Z)
			cell := fmt.Sprintf(" %*s ", width, m.sheet.Cell(c))
			if c == m.cursor {
				cell = selectedStyle.Render(cell)
			}
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(axisStyle.Render(m.cursor.String()))
	b.WriteString(" = ")
	b.WriteString(valueStyle.Render(m.sheet.Cell(m.cursor)))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}
	if m.going {
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter jump • esc cancel"))
		return b.String()
	}

	b.WriteString("\n")
	help := "←/→/↑/↓ move • g goto • q quit"
	if m.sheet.Rank() == 3 {
		help = "←/→/↑/↓ move • [/] plane • g goto • q quit"
	}
	b.WriteString(helpStyle.Render(help))
	return b.String()
}
