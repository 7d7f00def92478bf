// Package viz renders n-body simulations in the terminal.
//
// The interactive view is a Bubble Tea program built from three pieces:
//
//   - [Canvas]: Braille-based pixel canvas, 2x4 sub-pixels per cell
//   - [Camera]: yaw/pitch orbit camera with perspective projection
//   - [Model]: the live view; feeds scaled wall-clock time into the
//     simulator's fixed-step clock each frame
//
// [TrajectoriesSVG] reuses the camera to export recorded runs as SVG.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Reset to initial state
//	Tab   - Cycle tunables (G, softening, dt)
//	⇧↑/⇧↓ - Nudge the selected tunable
//	[ ]   - Halve/double the time scale
//	↑↓←→  - Orbit the camera, +/- zooms, A auto-rotates
//	O     - Toggle trails
//	?     - Help overlay
package viz
