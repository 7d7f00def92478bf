package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/mkol/gravsim/internal/orbit"
)

var pathPalette = []string{"#4fc3f7", "#ffb74d", "#81c784", "#e57373", "#ba68c8", "#fff176"}

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// TrajectoriesSVG renders recorded body paths as one polyline per body,
// viewed face-on through the default camera orientation, with a marker
// and label at each final position. Returns "" when there is nothing to
// draw.
func TrajectoriesSVG(frames [][]orbit.BodyState, names []string, width, height int) string {
	if len(frames) < 2 || len(frames[0]) == 0 {
		return ""
	}
	n := len(frames[0])
	cam := NewCamera(1)

	paths := make([][][2]float64, n)
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for b := 0; b < n; b++ {
		pts := make([][2]float64, 0, len(frames))
		for _, frame := range frames {
			if b >= len(frame) {
				continue
			}
			rot := cam.RotatePoint(frame[b].Pos)
			pts = append(pts, [2]float64{rot.X, rot.Y})
			minX, maxX = math.Min(minX, rot.X), math.Max(maxX, rot.X)
			minY, maxY = math.Min(minY, rot.Y), math.Max(maxY, rot.Y)
		}
		paths[b] = pts
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
	minY -= rangeY * 0.1
	rangeX *= 1.2
	rangeY *= 1.2

	toScreen := func(p [2]float64) (float64, float64) {
		x := (p[0] - minX) / rangeX * float64(width)
		y := float64(height) - (p[1]-minY)/rangeY*float64(height)
		return x, y
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for b, pts := range paths {
		if len(pts) < 2 {
			continue
		}
		color := pathPalette[b%len(pathPalette)]

		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, color))
		for i, p := range pts {
			x, y := toScreen(p)
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")

		x, y := toScreen(pts[len(pts)-1])
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="3" fill="%s"/>
`, x, y, color))
		if b < len(names) {
			sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s" font-family="monospace" font-size="11">%s</text>
`, x+5, y-5, color, xmlEscaper.Replace(names[b])))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}
