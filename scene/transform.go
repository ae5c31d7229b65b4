package scene

import "github.com/lixenwraith/zombies/vmath"

// Transform is a 2x3 affine map from world units to terminal cells
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Transform struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the transform that leaves points unchanged
func Identity() Transform {
	return Transform{A: 1, E: 1}
}

// Viewport centers the world point center on a cols x rows grid,
// with unitsPerCol/unitsPerRow world units per cell
func Viewport(center vmath.Vec2, cols, rows int, unitsPerCol, unitsPerRow float64) Transform {
	toOrigin := Transform{A: 1, C: -center.X, E: 1, F: -center.Y}
	toCells := Transform{A: 1 / unitsPerCol, E: 1 / unitsPerRow}
	toMiddle := Transform{A: 1, C: float64(cols) / 2, E: 1, F: float64(rows) / 2}
	return toOrigin.Then(toCells).Then(toMiddle)
}

// Apply maps a world point to cell space
func (t Transform) Apply(p vmath.Vec2) vmath.Vec2 {
	return vmath.Vec2{
		X: t.A*p.X + t.B*p.Y + t.C,
		Y: t.D*p.X + t.E*p.Y + t.F,
	}
}

// Then returns the transform applying t first, then next
func (t Transform) Then(next Transform) Transform {
	return Transform{
		A: next.A*t.A + next.B*t.D,
		B: next.A*t.B + next.B*t.E,
		C: next.A*t.C + next.B*t.F + next.C,
		D: next.D*t.A + next.E*t.D,
		E: next.D*t.B + next.E*t.E,
		F: next.D*t.C + next.E*t.F + next.F,
	}
}

// Inverse returns the cell-to-world transform; ok is false for a singular transform
func (t Transform) Inverse() (Transform, bool) {
	det := t.A*t.E - t.B*t.D
	if det == 0 {
		return Transform{}, false
	}
	inv := 1 / det
	a := t.E * inv
	b := -t.B * inv
	d := -t.D * inv
	e := t.A * inv
	return Transform{
		A: a, B: b, C: -(a*t.C + b*t.F),
		D: d, E: e, F: -(d*t.C + e*t.F),
	}, true
}
