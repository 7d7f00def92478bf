package analysis

import (
	"fmt"
	"strings"

	"github.com/mkol/gravsim/internal/orbit"
)

// Point is one sample of a 2D phase-plane view.
type Point struct{ X, Y float64 }

// PhasePortrait holds a body's trajectory projected onto a plane.
type PhasePortrait struct {
	XLabel, YLabel string
	Points         []Point
}

// PhaseFromFrames projects a body's recorded trajectory. Modes "xy",
// "xz" and "yz" plot position planes; "radial" plots distance from
// center against radial speed. A negative center means the origin.
func PhaseFromFrames(frames [][]orbit.BodyState, body, center int, mode string) (*PhasePortrait, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("no frames recorded")
	}
	if body < 0 || body >= len(frames[0]) {
		return nil, fmt.Errorf("body %d out of range", body)
	}

	p := &PhasePortrait{Points: make([]Point, 0, len(frames))}

	switch mode {
	case "xy":
		p.XLabel, p.YLabel = "x", "y"
		for _, f := range frames {
			p.Points = append(p.Points, Point{X: f[body].Pos.X, Y: f[body].Pos.Y})
		}
	case "xz":
		p.XLabel, p.YLabel = "x", "z"
		for _, f := range frames {
			p.Points = append(p.Points, Point{X: f[body].Pos.X, Y: f[body].Pos.Z})
		}
	case "yz":
		p.XLabel, p.YLabel = "y", "z"
		for _, f := range frames {
			p.Points = append(p.Points, Point{X: f[body].Pos.Y, Y: f[body].Pos.Z})
		}
	case "radial":
		p.XLabel, p.YLabel = "r", "vr"
		for _, f := range frames {
			refPos, refVel := orbit.Vec3{}, orbit.Vec3{}
			if center >= 0 && center < len(f) {
				refPos, refVel = f[center].Pos, f[center].Vel
			}
			rel := f[body].Pos.Sub(refPos)
			r := rel.Norm()
			if r == 0 {
				continue
			}
			vr := f[body].Vel.Sub(refVel).Dot(rel) / r
			p.Points = append(p.Points, Point{X: r, Y: vr})
		}
	default:
		return nil, fmt.Errorf("unknown phase mode %q (want xy, xz, yz or radial)", mode)
	}

	return p, nil
}

// ASCII renders the portrait on a rune canvas with axes where they
// cross the visible window.
func (p *PhasePortrait) ASCII(width, height int) string {
	if p == nil || len(p.Points) == 0 || width < 2 || height < 2 {
		return ""
	}

	minX, maxX := p.Points[0].X, p.Points[0].X
	minY, maxY := p.Points[0].Y, p.Points[0].Y
	for _, pt := range p.Points {
		if pt.X < minX {
			minX = pt.X
		}
		if pt.X > maxX {
			maxX = pt.X
		}
		if pt.Y < minY {
			minY = pt.Y
		}
		if pt.Y > maxY {
			maxY = pt.Y
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	for _, pt := range p.Points {
		col := int((pt.X - minX) / rangeX * float64(width-1))
		row := height - 1 - int((pt.Y-minY)/rangeY*float64(height-1))
		if row >= 0 && row < height && col >= 0 && col < width {
			canvas[row][col] = '•'
		}
	}

	if minX <= 0 && maxX >= 0 {
		col := int((0 - minX) / rangeX * float64(width-1))
		for row := 0; row < height; row++ {
			if col >= 0 && col < width && canvas[row][col] == ' ' {
				canvas[row][col] = '│'
			}
		}
	}
	if minY <= 0 && maxY >= 0 {
		row := height - 1 - int((0-minY)/rangeY*float64(height-1))
		for col := 0; col < width; col++ {
			if row >= 0 && row < height && canvas[row][col] == ' ' {
				canvas[row][col] = '─'
			}
		}
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}

// PoincareFromFrames records (x, vx) each time a body's z coordinate
// crosses zero going positive, interpolating between the straddling
// frames. For orbits near the xz plane this strobes once per revolution.
func PoincareFromFrames(frames [][]orbit.BodyState, body int) (*PhasePortrait, error) {
	if len(frames) < 2 {
		return nil, fmt.Errorf("need at least 2 frames")
	}
	if body < 0 || body >= len(frames[0]) {
		return nil, fmt.Errorf("body %d out of range", body)
	}

	section := &PhasePortrait{XLabel: "x", YLabel: "vx"}
	prev := frames[0][body]

	for _, f := range frames[1:] {
		curr := f[body]
		if prev.Pos.Z < 0 && curr.Pos.Z >= 0 {
			frac := -prev.Pos.Z / (curr.Pos.Z - prev.Pos.Z)
			x := prev.Pos.X + frac*(curr.Pos.X-prev.Pos.X)
			vx := prev.Vel.X + frac*(curr.Vel.X-prev.Vel.X)
			section.Points = append(section.Points, Point{X: x, Y: vx})
		}
		prev = curr
	}

	return section, nil
}
