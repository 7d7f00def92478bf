package viz

import (
	"testing"

	"github.com/mkol/gravsim/internal/orbit"
)

func TestProjectCentersOrigin(t *testing.T) {
	cam := NewCamera(10)
	x, y, depth, ok := cam.Project(orbit.Vec3{}, 160, 96)
	if !ok {
		t.Fatal("origin should be visible")
	}
	if x != 80 || y != 48 {
		t.Errorf("origin projected to (%d,%d), want (80,48)", x, y)
	}
	if depth != 0 {
		t.Errorf("origin depth = %g, want 0", depth)
	}
}

func TestProjectFaceOnPlane(t *testing.T) {
	cam := NewCamera(10)

	// +X lands right of centre at equal height.
	x, y, _, ok := cam.Project(orbit.Vec3{X: 10}, 160, 96)
	if !ok || x <= 80 || y != 48 {
		t.Errorf("+X projected to (%d,%d,%v)", x, y, ok)
	}

	// +Z lands above centre with the default pitch.
	x, y, _, ok = cam.Project(orbit.Vec3{Z: 10}, 160, 96)
	if !ok || y >= 48 || x != 80 {
		t.Errorf("+Z projected to (%d,%d,%v)", x, y, ok)
	}
}

func TestProjectZoom(t *testing.T) {
	cam := NewCamera(10)
	x1, _, _, _ := cam.Project(orbit.Vec3{X: 5}, 160, 96)
	cam.ZoomIn()
	x2, _, _, _ := cam.Project(orbit.Vec3{X: 5}, 160, 96)
	if x2 <= x1 {
		t.Errorf("zoom in should push points outward: %d then %d", x1, x2)
	}
}

func TestZoomClamps(t *testing.T) {
	cam := NewCamera(1)
	for i := 0; i < 50; i++ {
		cam.ZoomIn()
	}
	if cam.Zoom > 10 {
		t.Errorf("zoom exceeded cap: %g", cam.Zoom)
	}
	for i := 0; i < 100; i++ {
		cam.ZoomOut()
	}
	if cam.Zoom < 0.1 {
		t.Errorf("zoom under floor: %g", cam.Zoom)
	}
}

func TestFitGrowsOnly(t *testing.T) {
	cam := NewCamera(5)
	cam.Fit(3)
	if cam.Extent != 5 {
		t.Errorf("Fit shrank the extent to %g", cam.Extent)
	}
	cam.Fit(8)
	if cam.Extent != 8 {
		t.Errorf("Fit did not grow the extent: %g", cam.Extent)
	}
}

func TestOrbitYawMovesPointInward(t *testing.T) {
	cam := NewCamera(10)
	x1, _, _, _ := cam.Project(orbit.Vec3{X: 10}, 160, 96)
	cam.Orbit(0.5, 0)
	x2, _, _, _ := cam.Project(orbit.Vec3{X: 10}, 160, 96)
	if x2 >= x1 {
		t.Errorf("yaw should move a +X point toward the centre: %d then %d", x1, x2)
	}
}

func TestProjectCullsBehindCamera(t *testing.T) {
	cam := NewCamera(10)
	cam.Zoom = 10
	// The default pitch carries -Y to +Z, straight at the viewer.
	if _, _, _, ok := cam.Project(orbit.Vec3{Y: -10}, 160, 96); ok {
		t.Error("point at the camera should be culled")
	}
}

func TestNewCameraDegenerateExtent(t *testing.T) {
	cam := NewCamera(0)
	if cam.Extent != 1 {
		t.Errorf("zero extent should fall back to 1, got %g", cam.Extent)
	}
}
