// Package tui is an interactive terminal converter: type a value, pick a
// quantity and species, and read off the equivalent wavelength, energy,
// momentum and velocity.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/nconv/internal/physics"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

var quantities = []physics.Quantity{
	physics.QuantityWavelength,
	physics.QuantityEnergy,
	physics.QuantityMomentum,
	physics.QuantityVelocity,
}

var speciesCycle = []physics.Species{physics.Neutron, physics.He3, physics.He4}

type model struct {
	quantity int // index into quantities
	species  int // index into speciesCycle

	value   float64
	editBuf string
	editing bool
	badBuf  bool
}

// New returns the converter model, seeded with a thermal neutron.
func New() *model {
	return &model{value: 1.8e-10}
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.editing {
		switch key.String() {
		case "enter":
			v, err := strconv.ParseFloat(m.editBuf, 64)
			if err != nil {
				m.badBuf = true
				return m, nil
			}
			m.value = v
			m.editing = false
			m.badBuf = false
		case "esc":
			m.editing = false
			m.badBuf = false
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
				m.badBuf = false
			}
		default:
			s := key.String()
			if len(s) == 1 && strings.ContainsAny(s, "0123456789.eE+-") {
				m.editBuf += s
				m.badBuf = false
			}
		}
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "left", "h":
		m.quantity = (m.quantity + len(quantities) - 1) % len(quantities)
	case "right", "l", "tab":
		m.quantity = (m.quantity + 1) % len(quantities)
	case "s":
		m.species = (m.species + 1) % len(speciesCycle)
	case "enter", "e", "i":
		m.editing = true
		m.editBuf = ""
	}
	return m, nil
}

func (m *model) View() string {
	sp := speciesCycle[m.species]
	from := quantities[m.quantity]
	q := sp.Derive(from, m.value)

	var b strings.Builder
	b.WriteString("\n  " + cyan.Render("nconv") + dim.Render("  particle unit converter") + "\n\n")

	b.WriteString("  " + dim.Render("species") + "  ")
	for i, s := range speciesCycle {
		name := s.String()
		if i == m.species {
			b.WriteString(green.Render("["+name+"]") + " ")
		} else {
			b.WriteString(dimmer.Render(name) + " ")
		}
	}
	b.WriteString("\n\n")

	rows := []struct {
		q   physics.Quantity
		val float64
	}{
		{physics.QuantityWavelength, q.Wavelength},
		{physics.QuantityEnergy, q.Energy},
		{physics.QuantityMomentum, q.Momentum},
		{physics.QuantityVelocity, q.Velocity},
	}
	for _, r := range rows {
		marker := "  "
		style := white
		if r.q == from {
			marker = "> "
			style = cyan
		}
		line := fmt.Sprintf("  %s%-11s %s %s", marker, r.q.String(),
			style.Render(fmt.Sprintf("%12.6g", r.val)), dimmer.Render(r.q.Unit()))
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")

	if m.editing {
		prompt := fmt.Sprintf("  %s %s_", dim.Render("new "+from.String()+":"), m.editBuf)
		b.WriteString(prompt + "\n")
		if m.badBuf {
			b.WriteString("  " + yellow.Render("not a number") + "\n")
		}
	} else {
		b.WriteString("  " + dimmer.Render("←/→ quantity · s species · enter edit · q quit") + "\n")
	}
	return b.String()
}

// Run starts the interactive converter.
func Run() error {
	_, err := tea.NewProgram(New()).Run()
	return err
}
