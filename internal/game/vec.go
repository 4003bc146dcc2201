package game

import "math"

// Vec is a point or velocity in screen space.
type Vec struct{ X, Y float64 }

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(s float64) Vec { return Vec{v.X * s, v.Y * s} }
func (v Vec) Dot(o Vec) float64 { return v.X*o.X + v.Y*o.Y }
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }
func (v Vec) Finite() bool { return isFinite(v.X) && isFinite(v.Y) }
func (v Vec) Angle() float64 { return math.Atan2(v.Y, v.X) }
func polar(angle, r float64) Vec { return Vec{math.Cos(angle) * r, math.Sin(angle) * r} }
func dist(a, b Vec) float64 { return math.Hypot(a.X-b.X, a.Y-b.Y) }
func isFinite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// reflect mirrors v across the surface with unit normal n: v - 2(v·n)n.
func reflect(v, n Vec) Vec {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Arena is the circular playfield.
type Arena struct {
	Center Vec
	Radius float64
}

func DefaultArena() Arena {
	return Arena{Center: Vec{ArenaCenterX, ArenaCenterY}, Radius: ArenaRadius}
}

// Contains reports whether p lies inside or on the arena circle.
func (a Arena) Contains(p Vec) bool {
	return dist(p, a.Center) <= a.Radius
}

// Clamp pulls p back onto the circle of radius Radius-margin when it lies
// beyond it. The angle from the center is preserved.
func (a Arena) Clamp(p Vec, margin float64) (Vec, bool) {
	d := p.Sub(a.Center)
	limit := a.Radius - margin
	if d.Len() <= limit {
		return p, false
	}
	return a.Center.Add(polar(d.Angle(), limit)), true
}
