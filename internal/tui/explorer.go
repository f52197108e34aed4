// Package tui is an interactive terminal explorer for the one-zone model:
// arrow keys tweak parameters and the abundance track replots immediately,
// recomputing derived state only when a parameter actually changed.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/onezone/internal/chem"
	"github.com/san-kum/onezone/internal/quantity"
	"github.com/san-kum/onezone/internal/series"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

type param struct {
	name string
	step float64
	min  float64
	get  func(*chem.OneZone) float64
	set  func(*chem.OneZone, float64)
}

func gyrParam(name string, step, min float64, get func(*chem.OneZone) quantity.Quantity, set func(*chem.OneZone, quantity.Quantity)) param {
	return param{
		name: name + " [Gyr]",
		step: step,
		min:  min,
		get:  func(m *chem.OneZone) float64 { return get(m).Gyrs() },
		set:  func(m *chem.OneZone, v float64) { set(m, quantity.New(v, quantity.Gyr)) },
	}
}

var editable = []param{
	{"eta", 0.1, 0,
		func(m *chem.OneZone) float64 { return m.Eta },
		func(m *chem.OneZone, v float64) { m.Eta = v }},
	gyrParam("tau_SFE", 0.1, 0.1,
		func(m *chem.OneZone) quantity.Quantity { return m.TauSFE },
		func(m *chem.OneZone, q quantity.Quantity) { m.TauSFE = q }),
	gyrParam("tau_SFH", 0.5, 0.5,
		func(m *chem.OneZone) quantity.Quantity { return m.TauSFH },
		func(m *chem.OneZone, q quantity.Quantity) { m.TauSFH = q }),
	gyrParam("tau_Ia", 0.1, 0.1,
		func(m *chem.OneZone) quantity.Quantity { return m.TauIa },
		func(m *chem.OneZone, q quantity.Quantity) { m.TauIa = q }),
	gyrParam("min_dt_Ia", 0.05, 0,
		func(m *chem.OneZone) quantity.Quantity { return m.MinDtIa },
		func(m *chem.OneZone, q quantity.Quantity) { m.MinDtIa = q }),
	{"mCC_O", 0.001, 0,
		func(m *chem.OneZone) float64 { return m.MCCO },
		func(m *chem.OneZone, v float64) { m.MCCO = v }},
	{"mCC_Fe", 0.0001, 0,
		func(m *chem.OneZone) float64 { return m.MCCFe },
		func(m *chem.OneZone, v float64) { m.MCCFe = v }},
	{"mIa_Fe", 0.0001, 0,
		func(m *chem.OneZone) float64 { return m.MIaFe },
		func(m *chem.OneZone, v float64) { m.MIaFe = v }},
	{"r", 0.05, 0,
		func(m *chem.OneZone) float64 { return m.R },
		func(m *chem.OneZone, v float64) { m.R = v }},
}

type trackKind int

const (
	trackOH trackKind = iota
	trackFeH
	trackOFe
)

func (k trackKind) label() string {
	switch k {
	case trackOH:
		return "[O/H]"
	case trackFeH:
		return "[Fe/H]"
	}
	return "[O/Fe]"
}

type Model struct {
	zone   *chem.OneZone
	grid   series.Series
	cursor int
	track  trackKind
	width  int
	height int
}

func NewModel(zone *chem.OneZone, grid series.Series) Model {
	return Model{zone: zone, grid: grid, width: 80, height: 24}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(editable)-1 {
				m.cursor++
			}
		case "left", "h":
			m.adjust(-1)
		case "right", "l":
			m.adjust(+1)
		case "s":
			if m.zone.SFH == chem.SFHExp {
				m.zone.SFH = chem.SFHLinExp
			} else {
				m.zone.SFH = chem.SFHExp
			}
		case "tab":
			m.track = (m.track + 1) % 3
		case "d":
			m.zone.ResetToDefault()
		case "i":
			m.zone.ResetToInitial()
		}
	}
	return m, nil
}

func (m Model) adjust(dir float64) {
	p := editable[m.cursor]
	v := p.get(m.zone) + dir*p.step
	if v < p.min {
		v = p.min
	}
	p.set(m.zone, v)
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(cyan.Render("onezone explorer"))
	b.WriteString(dim.Render(fmt.Sprintf("  sfh=%s  track=%s", m.zone.SFH, m.track.label())))
	b.WriteString("\n\n")

	for i, p := range editable {
		line := fmt.Sprintf("  %-14s %10.4g", p.name, p.get(m.zone))
		if i == m.cursor {
			b.WriteString(yellow.Render("> " + line[2:]))
		} else {
			b.WriteString(white.Render(line))
		}
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(m.plot())
	b.WriteByte('\n')

	rc := m.zone.Recalcs()
	b.WriteString(green.Render(fmt.Sprintf("  derivations: timescales=%d equilibrium=%d solar=%d",
		rc.Timescales, rc.Equilibrium, rc.Solar)))
	b.WriteByte('\n')
	b.WriteString(dim.Render("  ↑/↓ select  ←/→ adjust  s sfh  tab track  d defaults  i initial  q quit"))
	return b.String()
}

func (m Model) plot() string {
	var track series.Series
	switch m.track {
	case trackOH:
		track = m.zone.OH(m.grid)
	case trackFeH:
		track = m.zone.FeH(m.grid)
	default:
		track = m.zone.OFe(m.grid)
	}
	if !track.IsFinite() {
		return dim.Render("  track is not finite for the current parameters")
	}

	w := m.width - 14
	if w < 20 {
		w = 20
	}
	return asciigraph.Plot(track,
		asciigraph.Height(10),
		asciigraph.Width(w),
		asciigraph.Caption(fmt.Sprintf("%s over %.2g-%.3g Gyr", m.track.label(), m.grid.Min(), m.grid.Max())))
}

// Run starts the explorer over the given model and time grid.
func Run(zone *chem.OneZone, grid series.Series) error {
	_, err := tea.NewProgram(NewModel(zone, grid), tea.WithAltScreen()).Run()
	return err
}
