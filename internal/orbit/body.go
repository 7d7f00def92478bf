package orbit

// Body is a point mass. Position and velocity are the only fields that
// change during a run; mass and name are fixed at construction.
type Body struct {
	Name string  `json:"name"`
	Mass float64 `json:"mass"`
	Pos  Vec3    `json:"pos"`
	Vel  Vec3    `json:"vel"`
}

// BodyState is a body's kinematic snapshot, the unit of recorded history.
type BodyState struct {
	Pos Vec3 `json:"pos"`
	Vel Vec3 `json:"vel"`
}

func (b Body) State() BodyState { return BodyState{Pos: b.Pos, Vel: b.Vel} }

func (b Body) Speed() float64 { return b.Vel.Norm() }

// Momentum returns m*v.
func (b Body) Momentum() Vec3 { return b.Vel.Scale(b.Mass) }

// KineticEnergy returns (1/2)*m*|v|^2.
func (b Body) KineticEnergy() float64 { return 0.5 * b.Mass * b.Vel.Norm2() }
