package integrators

import (
	"testing"

	"github.com/mkol/gravsim/internal/gravity"
	"github.com/mkol/gravsim/internal/orbit"
)

func benchBodies() (gravity.Field, []orbit.Body) {
	field := gravity.New(0.1, 2.0)
	bodies := []orbit.Body{
		{Name: "sun", Mass: 1000},
		{Name: "inner", Mass: 5, Pos: orbit.Vec3{X: 12}, Vel: orbit.Vec3{Z: 0.8}},
		{Name: "middle", Mass: 8, Pos: orbit.Vec3{X: 20}, Vel: orbit.Vec3{Z: 0.6}},
		{Name: "outer", Mass: 6, Pos: orbit.Vec3{X: 30}, Vel: orbit.Vec3{Z: 0.4}},
	}
	return field, bodies
}

func BenchmarkEuler(b *testing.B) {
	integ := NewEuler()
	field, bodies := benchBodies()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		integ.Step(field, bodies, 0.001)
	}
}

func BenchmarkSymplecticEuler(b *testing.B) {
	integ := NewSymplecticEuler()
	field, bodies := benchBodies()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		integ.Step(field, bodies, 0.001)
	}
}

func BenchmarkLeapfrog(b *testing.B) {
	integ := NewLeapfrog()
	field, bodies := benchBodies()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		integ.Step(field, bodies, 0.001)
	}
}

func BenchmarkVerlet(b *testing.B) {
	integ := NewVerlet()
	field, bodies := benchBodies()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		integ.Step(field, bodies, 0.001)
	}
}

func BenchmarkRK4(b *testing.B) {
	integ := NewRK4()
	field, bodies := benchBodies()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		integ.Step(field, bodies, 0.001)
	}
}
