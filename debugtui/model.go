// Package debugtui is a terminal step-debugger for the core, adapted from
// the teacher pack's bubbletea-based 6502 debugger into a register/memory
// inspector over a gb.Cpu instead.
package debugtui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/n-ulricksen/gb-emulator/gb"
)

type model struct {
	cpu    *gb.Cpu
	prevPC uint16
	err    error
}

// Run starts an interactive terminal session stepping cpu one instruction
// at a time. Space or 'j' steps, 'q' quits.
func Run(cpu *gb.Cpu) error {
	m, err := tea.NewProgram(model{cpu: cpu}).Run()
	if err != nil {
		return err
	}
	if final, ok := m.(model); ok && final.err != nil {
		return final.err
	}
	return nil
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "j":
			m.prevPC = m.cpu.Reg.PC
			if err := m.cpu.Step(); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m model) renderPage(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i, b := range m.cpu.ReadBytes(start, 16) {
		addr := start + uint16(i)
		if addr == m.cpu.Reg.PC {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m model) pageTable() string {
	header := "page | "
	for b := 0; b < 16; b++ {
		header += fmt.Sprintf("  %01x  ", b)
	}
	lines := []string{header}
	base := m.cpu.Reg.PC &^ 0x0F
	for row := -2; row <= 2; row++ {
		lines = append(lines, m.renderPage(uint16(int32(base)+int32(row)*16)))
	}
	return strings.Join(lines, "\n")
}

func (m model) status() string {
	snap := m.cpu.Snapshot()
	return fmt.Sprintf(`
PC: %04x (prev %04x)
SP: %04x
 A: %02x   F: %02x
 B: %02x   C: %02x
 D: %02x   E: %02x
 H: %02x   L: %02x
LY: %d  cycles: %d  IME: %v
`,
		snap.PC, m.prevPC, snap.SP,
		snap.A, snap.F,
		snap.B, snap.C,
		snap.D, snap.E,
		snap.H, snap.L,
		snap.LY, snap.Cycles, snap.IME,
	)
}

func (m model) View() string {
	name, opcode, cb := m.cpu.CurrentInstruction()
	next := fmt.Sprintf("next: %s (opcode 0x%02X, cb=%v)", name, opcode, cb)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
		),
		"",
		next,
		spew.Sdump(m.cpu.Snapshot()),
	)
}
