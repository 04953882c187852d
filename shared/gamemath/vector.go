package gamemath

import (
	stdmath "math"

	"github.com/yohamta/donburi/features/math"
)

// Vector is a 2D value in game units. A changed vector is always a new value;
// equality is by value.
type Vector = math.Vec2

// Vec returns a Vector with the given components.
func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Delta returns to - from, component-wise.
func Delta(from, to Vector) Vector {
	return Vector{X: to.X - from.X, Y: to.Y - from.Y}
}

// ToDisplayUnits scales a game-unit vector for rendering.
func ToDisplayUnits(v Vector, scale float64) Vector {
	return Vector{X: v.X * scale, Y: v.Y * scale}
}

// ToDisplayLength scales a game-unit length for rendering.
func ToDisplayLength(length, scale float64) float64 {
	return length * scale
}

// SameFloat reports whether a and b hold the same value. Unlike ==, two NaNs
// are the same, so a NaN that has propagated into state compares equal to itself.
func SameFloat(a, b float64) bool {
	return a == b || (stdmath.IsNaN(a) && stdmath.IsNaN(b))
}

// SameVector is SameFloat on both components.
func SameVector(a, b Vector) bool {
	return SameFloat(a.X, b.X) && SameFloat(a.Y, b.Y)
}
