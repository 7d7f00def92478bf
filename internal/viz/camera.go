package viz

import (
	"math"

	"github.com/mkol/gravsim/internal/orbit"
)

// Perspective distance and clip plane, in view units (world radii after
// extent scaling).
const (
	cameraDist = 4.0
	cameraNear = 0.1
)

// Camera is an orbit camera: yaw spins the scene about the world Y
// axis, pitch tilts it toward the viewer. Extent is the world radius
// mapped to the canvas; Fit grows it as bodies wander.
type Camera struct {
	Yaw, Pitch float64
	Zoom       float64
	Extent     float64
}

// NewCamera starts pitched so the XZ orbital plane faces the viewer,
// with +X right and +Z up.
func NewCamera(extent float64) *Camera {
	if extent <= 0 || math.IsNaN(extent) {
		extent = 1
	}
	return &Camera{Pitch: -math.Pi / 2, Zoom: 1, Extent: extent}
}

// Orbit adds to the yaw and pitch angles.
func (c *Camera) Orbit(dYaw, dPitch float64) {
	c.Yaw += dYaw
	c.Pitch += dPitch
}

func (c *Camera) ZoomIn()  { c.Zoom = math.Min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut() { c.Zoom = math.Max(0.1, c.Zoom/1.2) }

// Fit widens the view to cover radius r. The view never shrinks back,
// so an escaping body stays on screen instead of pumping the scale.
func (c *Camera) Fit(r float64) {
	if r > c.Extent {
		c.Extent = r
	}
}

// RotatePoint applies yaw about Y, then pitch about X.
func (c *Camera) RotatePoint(p orbit.Vec3) orbit.Vec3 {
	cy, sy := math.Cos(c.Yaw), math.Sin(c.Yaw)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	cx, sx := math.Cos(c.Pitch), math.Sin(c.Pitch)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	return p
}

// Project maps a world point to sub-pixel canvas coordinates. sw and sh
// are the canvas size in sub-pixels. Returns screen x, y, view depth,
// and whether the point is in front of the clip plane and on screen.
func (c *Camera) Project(p orbit.Vec3, sw, sh int) (int, int, float64, bool) {
	rot := c.RotatePoint(p).Scale(c.Zoom / c.Extent)
	if rot.Z >= cameraDist-cameraNear {
		return 0, 0, 0, false
	}
	scale := cameraDist / (cameraDist - rot.Z)
	minDim := float64(sh)
	if float64(sw) < minDim {
		minDim = float64(sw)
	}
	pScale := minDim / 2.2
	sx := int(rot.X*scale*pScale) + sw/2
	sy := int(-rot.Y*scale*pScale) + sh/2
	return sx, sy, rot.Z, sx >= 0 && sx < sw && sy >= 0 && sy < sh
}
