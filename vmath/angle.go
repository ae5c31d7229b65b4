package vmath

import "math"

// Angles are radians in the simulation; rotation 0 points "up" (-Y) in scene coordinates
// and positive rotation turns clockwise on screen

const (
	// QuarterTurn is π/2, the offset between the "up" convention and the +X axis
	QuarterTurn = math.Pi / 2

	radToDeg = 180 / math.Pi
)

// Direction returns the unit vector a body with the given rotation faces
// Direction(0) = (0, -1), Direction(π/2) = (1, 0)
func Direction(angle float64) Vec2 {
	a := angle - QuarterTurn
	return Vec2{X: math.Cos(a), Y: math.Sin(a)}
}

// AimAngle returns the rotation that makes Direction point from 'from' to 'to'
// Quadrant-correct inverse of Direction; returns 0 for coincident points
func AimAngle(from, to Vec2) float64 {
	d := to.Sub(from)
	if d.X == 0 && d.Y == 0 {
		return 0
	}
	return math.Atan2(d.X, -d.Y)
}

// RadToDeg converts a simulation angle to the scene's angle unit
// This is the only simulation -> presentation angle conversion; sync calls it once per entity
func RadToDeg(rad float64) float64 {
	return rad * radToDeg
}

// NormalizeDeg wraps degrees into [0, 360)
func NormalizeDeg(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
