package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/mkol/gravsim/internal/gravity"
	"github.com/mkol/gravsim/internal/orbit"
	"github.com/mkol/gravsim/internal/sim"
)

const (
	width           = 80
	height          = 24
	historyCapacity = 600
	trailCapacity   = 240
	maxPanelBodies  = 6
)

var (
	canvasStyle      = lipgloss.NewStyle().Padding(1, 2)
	statsStyle       = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(45)
	headerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeParamStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

// The knobs tab cycles through. Time scale has its own keys since it
// lives outside the physics.
var tunables = []string{"g", "softening", "dt"}

type TickMsg time.Time

// Model owns the render loop around a Simulator. Each frame it feeds
// the real elapsed wall time, scaled, into the fixed-step clock; the
// simulation speed therefore survives dropped frames and slow
// terminals.
type Model struct {
	sim    *sim.Simulator
	field  gravity.Field
	scene  string
	canvas *Canvas
	camera *Camera

	trails     [][]orbit.Vec3
	energyHist []float64

	timeScale  float64
	running    bool
	autoRotate bool
	showTrails bool
	showHelp   bool
	selected   int
	lastTick   time.Time
	frameSteps int

	initialEnergy   float64
	initialMomentum orbit.Vec3
	initialField    gravity.Field
	initialDt       float64
}

// NewModel wraps a ready Simulator. The field must be the one the
// Simulator was built with; the view mutates its own copy when tuning
// and pushes it back through SetField.
func NewModel(s *sim.Simulator, field gravity.Field, scene string) Model {
	w := s.World()
	trails := make([][]orbit.Vec3, len(w.Bodies))
	for i := range trails {
		trails[i] = make([]orbit.Vec3, 0, trailCapacity)
	}

	m := Model{
		sim:             s,
		field:           field,
		scene:           scene,
		canvas:          NewCanvas(width, height),
		camera:          NewCamera(1.1 * w.MaxRadius(orbit.Vec3{})),
		trails:          trails,
		energyHist:      make([]float64, 0, historyCapacity),
		timeScale:       1,
		running:         true,
		showTrails:      true,
		initialEnergy:   field.Energy(w.Bodies),
		initialMomentum: field.Momentum(w.Bodies),
		initialField:    field,
		initialDt:       s.Dt(),
	}
	m.record()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input and drives the tick loop.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "tab":
			m.selected = (m.selected + 1) % len(tunables)
		case "shift+up":
			m.adjustParam(1.05)
		case "shift+down":
			m.adjustParam(0.95)
		case "up":
			m.camera.Orbit(0, 0.1)
		case "down":
			m.camera.Orbit(0, -0.1)
		case "left":
			m.camera.Orbit(-0.1, 0)
		case "right":
			m.camera.Orbit(0.1, 0)
		case "+", "=":
			m.camera.ZoomIn()
		case "-", "_":
			m.camera.ZoomOut()
		case "[":
			m.timeScale = math.Max(0.0625, m.timeScale/2)
			m.syncClock()
		case "]":
			m.timeScale = math.Min(64, m.timeScale*2)
			m.syncClock()
		case "a":
			m.autoRotate = !m.autoRotate
		case "o":
			m.showTrails = !m.showTrails
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		now := time.Time(msg)
		if m.running && !m.lastTick.IsZero() {
			elapsed := now.Sub(m.lastTick).Seconds() * m.timeScale
			m.frameSteps = m.sim.Advance(elapsed)
			if m.frameSteps > 0 {
				m.record()
			}
		}
		m.lastTick = now
		if m.autoRotate {
			m.camera.Orbit(0.01, 0)
		}
		return m, tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) adjustParam(factor float64) {
	switch tunables[m.selected] {
	case "g":
		m.field.G *= factor
		m.sim.SetField(m.field)
	case "softening":
		m.field.Softening *= factor
		m.sim.SetField(m.field)
	case "dt":
		m.sim.SetDt(m.sim.Dt() * factor)
	}
}

// syncClock keeps the frame-time clamp above one 30 FPS frame at the
// current scale, otherwise fast-forward is silently capped.
func (m *Model) syncClock() {
	m.sim.Clock().MaxFrameTime = math.Max(sim.DefaultMaxFrameTime, m.timeScale/30)
}

// record samples trails and the energy history after a frame that
// stepped.
func (m *Model) record() {
	w := m.sim.World()
	for i := range w.Bodies {
		m.trails[i] = append(m.trails[i], w.Bodies[i].Pos)
		if len(m.trails[i]) > trailCapacity {
			m.trails[i] = m.trails[i][1:]
		}
	}
	m.energyHist = append(m.energyHist, m.field.Energy(w.Bodies))
	if len(m.energyHist) > historyCapacity {
		m.energyHist = m.energyHist[1:]
	}
	m.camera.Fit(w.MaxRadius(orbit.Vec3{}))
}

// reset rewinds the simulation and restores the launch parameters.
func (m *Model) reset() {
	m.sim.Reset()
	m.field = m.initialField
	m.sim.SetField(m.field)
	m.sim.SetDt(m.initialDt)
	m.timeScale = 1
	m.syncClock()
	for i := range m.trails {
		m.trails[i] = m.trails[i][:0]
	}
	m.energyHist = m.energyHist[:0]
	m.frameSteps = 0
	m.lastTick = time.Time{}
	m.record()
}

func (m *Model) draw() {
	m.canvas.Clear()
	sw, sh := m.canvas.Width*2, m.canvas.Height*4

	m.drawAxes(sw, sh)
	if m.showTrails {
		m.drawTrails(sw, sh)
	}

	bodies := m.sim.World().Bodies
	maxMass := 0.0
	for i := range bodies {
		if bodies[i].Mass > maxMass {
			maxMass = bodies[i].Mass
		}
	}
	for i := range bodies {
		x, y, _, ok := m.camera.Project(bodies[i].Pos, sw, sh)
		if !ok {
			continue
		}
		m.canvas.Blob(x, y, markerRadius(bodies[i].Mass, maxMass))
	}
}

// drawAxes marks the origin with a short cross along the world axes.
func (m *Model) drawAxes(sw, sh int) {
	l := 0.25 * m.camera.Extent
	axes := [][2]orbit.Vec3{
		{{X: -l}, {X: l}},
		{{Y: -l}, {Y: l}},
		{{Z: -l}, {Z: l}},
	}
	for _, a := range axes {
		x0, y0, _, ok0 := m.camera.Project(a[0], sw, sh)
		x1, y1, _, ok1 := m.camera.Project(a[1], sw, sh)
		if ok0 && ok1 {
			m.canvas.DrawLine(x0, y0, x1, y1)
		}
	}
}

// drawTrails renders recent positions, thinning older points so the
// trail fades out.
func (m *Model) drawTrails(sw, sh int) {
	for _, trail := range m.trails {
		n := len(trail)
		for i, p := range trail {
			age := n - i
			if age > n/2 && i%3 != 0 {
				continue
			}
			if age > n/4 && i%2 != 0 {
				continue
			}
			if x, y, _, ok := m.camera.Project(p, sw, sh); ok {
				m.canvas.Set(x, y)
			}
		}
	}
}

// markerRadius scales body dots by the cube root of mass, so a
// thousandfold heavier star reads as a modestly bigger disc.
func markerRadius(mass, maxMass float64) int {
	if maxMass <= 0 {
		return 1
	}
	r := 1 + int(3*math.Cbrt(mass/maxMass))
	if r > 4 {
		r = 4
	}
	return r
}

// View renders the canvas and the stats panel.
func (m Model) View() string {
	m.draw()
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.scene)) + "\n")
	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(fmt.Sprintf("%s  x%g\n\n", status, m.timeScale))

	if len(m.energyHist) > 1 {
		chart := asciigraph.Plot(m.energyHist, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Energy"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	w := m.sim.World()
	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2fs", m.sim.Time())) + "\n")
	s.WriteString(labelStyle.Render("Steps") + valueStyle.Render(fmt.Sprintf("%d (+%d)", m.sim.Steps(), m.frameSteps)) + "\n")

	energy := m.field.Energy(w.Bodies)
	drift := 0.0
	if m.initialEnergy != 0 {
		drift = math.Abs(energy-m.initialEnergy) / math.Abs(m.initialEnergy)
	}
	s.WriteString(labelStyle.Render("Energy") + valueStyle.Render(fmt.Sprintf("%.3f", energy)) + "\n")
	s.WriteString(labelStyle.Render("E drift") + valueStyle.Render(fmt.Sprintf("%.2e", drift)) + "\n")
	pDrift := m.field.Momentum(w.Bodies).Sub(m.initialMomentum).Norm()
	s.WriteString(labelStyle.Render("P drift") + valueStyle.Render(fmt.Sprintf("%.2e", pDrift)) + "\n")

	s.WriteString("\nBODIES\n")
	for i := range w.Bodies {
		if i == maxPanelBodies {
			s.WriteString(labelStyle.Render(fmt.Sprintf("  +%d more", len(w.Bodies)-i)) + "\n")
			break
		}
		b := &w.Bodies[i]
		line := fmt.Sprintf("%-8s r=%-8.2f v=%.2f", b.Name, b.Pos.Norm(), b.Vel.Norm())
		s.WriteString("  " + valueStyle.Render(line) + "\n")
	}

	s.WriteString("\nPARAMETERS\n")
	for i, name := range tunables {
		val, initial := m.tunable(i)
		barWidth, ratio := 10, 0.0
		if initial != 0 {
			ratio = val / (2.0 * initial)
		}
		if ratio > 1 {
			ratio = 1
		} else if ratio < 0 {
			ratio = 0
		}
		filled := int(ratio * float64(barWidth))
		bar := "[" + strings.Repeat("=", filled) + strings.Repeat("-", barWidth-filled) + "]"
		line := fmt.Sprintf("%-10s %s %.4g", name, bar, val)
		if i == m.selected {
			s.WriteString(activeParamStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + labelStyle.Render(line) + "\n")
		}
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause R:Reset Q:Quit\nArrows:Orbit +/-:Zoom A:Spin\n[ ]:Speed Tab ⇧↑↓:Tune ?:Help"))

	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space      - Pause/Resume           ║
║  R          - Reset simulation       ║
║  Q          - Quit                   ║
║  Arrows     - Orbit camera           ║
║  +/-        - Zoom                   ║
║  A          - Auto-rotate            ║
║  [ ]        - Time scale             ║
║  Tab        - Cycle tunables         ║
║  Shift+Up   - Raise tunable (+5%)    ║
║  Shift+Down - Lower tunable (-5%)    ║
║  O          - Toggle trails          ║
║  ?          - Toggle this help       ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

// tunable reports the current and launch value of the i-th knob.
func (m Model) tunable(i int) (val, initial float64) {
	switch tunables[i] {
	case "g":
		return m.field.G, m.initialField.G
	case "softening":
		return m.field.Softening, m.initialField.Softening
	default:
		return m.sim.Dt(), m.initialDt
	}
}
