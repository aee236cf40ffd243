// Package tui is the interactive live view: it samples the keyboard for a
// thrust command each tick, advances the simulation, and draws the central
// body, the probe, its trail, and the coasting forecast.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/orbitsim/internal/control"
	"github.com/san-kum/orbitsim/internal/forces"
	"github.com/san-kum/orbitsim/internal/orbit"
	"github.com/san-kum/orbitsim/internal/sim"
	"github.com/san-kum/orbitsim/internal/viz"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// viewSpan is the world width/height shown on screen, in multiples of the
// central body radius (matches the original camera framing).
const viewSpan = 6.0

type model struct {
	simulator *sim.Simulator
	body      *orbit.Body
	keys      *control.Keys
	initial   orbit.State

	lookahead []orbit.Point
	simTime   float64
	lastCmd   orbit.ThrustCommand
	paused    bool
	err       error

	// key state for the current tick; bubbletea reports presses, not
	// holds, so each press thrusts for one tick.
	upHeld   bool
	downHeld bool

	width  int
	height int
}

func New(simulator *sim.Simulator, initial orbit.State) *model {
	return &model{
		simulator: simulator,
		body:      simulator.NewBody(1, 1.0, initial),
		keys:      control.NewKeys(),
		initial:   initial,
		width:     80,
		height:    24,
	}
}

// Run starts the live view and blocks until the user quits.
func Run(simulator *sim.Simulator, initial orbit.State) error {
	p := tea.NewProgram(New(simulator, initial), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(33*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *model) Init() tea.Cmd { return tick() }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			m.upHeld = true
		case "down", "j":
			m.downHeld = true
		case " ":
			m.paused = !m.paused
		case "r":
			m.body = m.simulator.NewBody(1, 1.0, m.initial)
			m.simTime = 0
			m.lookahead = nil
			m.err = nil
			m.paused = false
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if !m.paused && m.err == nil {
			m.step()
		}
		return m, tick()
	}
	return m, nil
}

func (m *model) step() {
	m.keys.Set(m.upHeld, m.downHeld)
	m.upHeld = false
	m.downHeld = false

	cmd := m.keys.Command(m.body.State, m.simTime)

	next, _, err := m.simulator.Advance(m.body, cmd)
	if err != nil {
		m.err = err
		return
	}
	m.lastCmd = cmd
	m.simTime += m.simulator.Config().Dt

	path, err := m.simulator.Predict(next)
	if err != nil {
		m.err = err
		return
	}
	m.lookahead = path
}

func (m *model) View() string {
	canvasH := m.height - 3
	if canvasH < 4 {
		canvasH = 4
	}
	canvasW := m.width
	if canvasW < 20 {
		canvasW = 20
	}

	canvas := viz.NewCanvas(canvasW, canvasH)

	subW := canvasW * 2
	subH := canvasH * 4
	span := viewSpan * forces.EarthRadius
	scale := float64(subH) / span
	if s := float64(subW) / span; s < scale {
		scale = s
	}
	cx, cy := subW/2, subH/2

	toPix := func(p orbit.Point) (int, int) {
		// screen y grows downward
		return cx + int(p.X*scale), cy - int(p.Y*scale)
	}

	ex, ey := toPix(orbit.Point{})
	canvas.FillCircle(ex, ey, int(forces.EarthRadius*scale))

	for _, p := range m.lookahead {
		x, y := toPix(p)
		canvas.Set(x, y)
	}

	for _, s := range m.body.History.Snapshot() {
		x, y := toPix(s.Position())
		canvas.FillCircle(x, y, 1)
	}

	// the probe marker grows while thrust is firing
	bodyR := 2
	if m.lastCmd != orbit.ThrustNone {
		bodyR = 3
	}
	bx, by := toPix(m.body.State.Position())
	canvas.FillCircle(bx, by, bodyR)

	return canvas.String() + m.statusLine()
}

func (m *model) statusLine() string {
	if m.err != nil {
		return red.Render(fmt.Sprintf("error: %v", m.err)) + dim.Render("  [r]eset [q]uit")
	}

	s := m.body.State
	altitude := (s.Radius() - forces.EarthRadius) / 1000.0

	thrust := dim.Render("thrust: none")
	switch m.lastCmd {
	case orbit.ThrustPrograde:
		thrust = green.Render("thrust: prograde")
	case orbit.ThrustRetrograde:
		thrust = yellow.Render("thrust: retrograde")
	}

	status := fmt.Sprintf("%s  %s  %s  %s",
		cyan.Render(fmt.Sprintf("t=%.0fs", m.simTime)),
		white.Render(fmt.Sprintf("alt=%.0fkm", altitude)),
		white.Render(fmt.Sprintf("v=%.0fm/s", s.Speed())),
		thrust,
	)

	help := dim.Render("[↑] prograde  [↓] retrograde  [space] pause  [r]eset  [q]uit")
	if m.paused {
		help = yellow.Render("paused") + "  " + help
	}

	return status + "\n" + help
}
