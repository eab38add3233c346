// Package debugger is an interactive single-step viewer for a running
// CPU: press a key to execute one Step, and watch registers, flags and
// the surrounding memory page update.
package debugger

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"sm83core/internal/cpu"
)

var (
	pcStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

const pageWidth = 16
const pageRows = 8

type model struct {
	core   *cpu.CPU
	mem    cpu.Memory
	offset uint16
	err    error
}

// New returns a debugger model stepping core against mem, with the
// memory page initially starting at the 16-byte row that contains the
// CPU's current PC.
func New(core *cpu.CPU, mem cpu.Memory) tea.Model {
	pc := core.Reg.PC
	return model{core: core, mem: mem, offset: pc &^ 0x0F}
}

// Debug runs the debugger as a full-screen program until the user quits.
func Debug(core *cpu.CPU, mem cpu.Memory) error {
	_, err := tea.NewProgram(New(core, mem)).Run()
	return err
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "n", "enter":
		if err := m.core.Step(m.mem); err != nil {
			m.err = err
		}
		m.offset = m.core.Reg.PC &^ 0x0F
	case "down", "j":
		m.offset += pageWidth
	case "up", "k":
		m.offset -= pageWidth
	}
	return m, nil
}

func (m model) View() string {
	status := m.status()
	page := m.renderPage()
	instr := m.decodedInstruction()

	body := lipgloss.JoinHorizontal(lipgloss.Top, page, "  ", instr)
	view := lipgloss.JoinVertical(lipgloss.Left, status, "", body)

	if m.err != nil {
		view = lipgloss.JoinVertical(lipgloss.Left, view, "", errStyle.Render(m.err.Error()))
	}
	return view + "\n\n(n: step, q: quit)\n"
}

func (m model) status() string {
	r := m.core.Reg
	flags := ""
	for _, f := range []struct {
		name string
		mask uint8
	}{{"Z", cpu.FlagZ}, {"N", cpu.FlagN}, {"H", cpu.FlagH}, {"C", cpu.FlagC}} {
		if r.F&f.mask != 0 {
			flags += f.name
		} else {
			flags += "-"
		}
	}
	hi, lo := m.core.Cycles()
	return headerStyle.Render("sm83 debugger") + "\n" +
		fmt.Sprintf("A=%02X F=%02X (%s) BC=%04X DE=%04X HL=%04X SP=%04X PC=%04X IME=%v cycles=%d:%d",
			r.A, r.F, flags, r.BC(), r.DE(), r.HL(), r.SP, r.PC, m.core.IME, hi, lo)
}

func (m model) renderPage() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("memory") + "\n")
	for row := 0; row < pageRows; row++ {
		rowStart := m.offset + uint16(row*pageWidth)
		b.WriteString(fmt.Sprintf("%04X  ", rowStart))
		for col := 0; col < pageWidth; col++ {
			addr := rowStart + uint16(col)
			v := m.mem.Read(addr)
			cell := fmt.Sprintf("%02x ", v)
			if addr == m.core.Reg.PC {
				cell = pcStyle.Render(fmt.Sprintf("[%02x]", v))
			}
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m model) decodedInstruction() string {
	ir := m.mem.Read(m.core.Reg.PC)
	var instr cpu.Instruction
	if ir == 0xCB {
		instr = cpu.DecodeCB(m.mem.Read(m.core.Reg.PC + 1))
	} else {
		instr = cpu.DecodeBase(ir)
	}
	return headerStyle.Render("instruction at PC") + "\n" + spew.Sdump(instr)
}
