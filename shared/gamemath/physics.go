package gamemath

import "math"

// VelocityAfter returns the velocity after accelerating for intervalMs milliseconds.
func VelocityAfter(acceleration, velocity, intervalMs float64) float64 {
	return acceleration*intervalMs/1000 + velocity
}

// PositionAfter returns the position after moving for intervalMs milliseconds.
// The acceleration term uses the full dt squared (no half step).
func PositionAfter(acceleration, velocity, position, intervalMs float64) float64 {
	return acceleration*math.Pow(intervalMs/1000, 2) + velocity*intervalMs/1000 + position
}

// StepVelocity applies VelocityAfter to both axes.
func StepVelocity(acceleration, velocity Vector, intervalMs float64) Vector {
	return Vector{
		X: VelocityAfter(acceleration.X, velocity.X, intervalMs),
		Y: VelocityAfter(acceleration.Y, velocity.Y, intervalMs),
	}
}

// StepPosition applies PositionAfter to both axes using the given velocity.
func StepPosition(acceleration, velocity, position Vector, intervalMs float64) Vector {
	return Vector{
		X: PositionAfter(acceleration.X, velocity.X, position.X, intervalMs),
		Y: PositionAfter(acceleration.Y, velocity.Y, position.Y, intervalMs),
	}
}

// Integrate advances velocity and position over one interval. The position
// term is computed from the velocity passed in, not the updated one.
func Integrate(acceleration, velocity, position Vector, intervalMs float64) (newVelocity, newPosition Vector) {
	newVelocity = StepVelocity(acceleration, velocity, intervalMs)
	newPosition = StepPosition(acceleration, velocity, position, intervalMs)
	return newVelocity, newPosition
}
