// Package geom implements the small set of 2-D point and vector primitives
// shared by the bezier, path and raster packages.
package geom

import "github.com/chewxy/math32"

// Point2 is a position in 2-D space.
type Point2 struct {
	X, Y float32
}

// Vector2 is a displacement in 2-D space.
type Vector2 struct {
	X, Y float32
}

// Add returns p translated by v.
func (p Point2) Add(v Vector2) Point2 {
	return Point2{p.X + v.X, p.Y + v.Y}
}

// Sub returns the vector from q to p.
func (p Point2) Sub(q Point2) Vector2 {
	return Vector2{p.X - q.X, p.Y - q.Y}
}

// Lerp returns the point a fraction t of the way from p to q.
func (p Point2) Lerp(q Point2, t float32) Point2 {
	return Point2{
		p.X + (q.X-p.X)*t,
		p.Y + (q.Y-p.Y)*t,
	}
}

// Midpoint returns the point halfway between p and q.
func (p Point2) Midpoint(q Point2) Point2 {
	return p.Lerp(q, 0.5)
}

// Add returns the sum of two vectors.
func (v Vector2) Add(w Vector2) Vector2 {
	return Vector2{v.X + w.X, v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vector2) Sub(w Vector2) Vector2 {
	return Vector2{v.X - w.X, v.Y - w.Y}
}

// Scale returns v scaled by s.
func (v Vector2) Scale(s float32) Vector2 {
	return Vector2{v.X * s, v.Y * s}
}

// Dot returns the dot product of v and w.
func (v Vector2) Dot(w Vector2) float32 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the z-component of the 3-D cross product of v and w.
func (v Vector2) Cross(w Vector2) float32 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the Euclidean length of v.
func (v Vector2) Length() float32 {
	return math32.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vector2) Normalize() Vector2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Normal returns the vector rotated 90 degrees counter-clockwise, i.e. the
// left-hand perpendicular of v.
func (v Vector2) Normal() Vector2 {
	return Vector2{-v.Y, v.X}
}

// Aarect is an axis-aligned rectangle given by a corner and an extent.
type Aarect struct {
	Min    Point2
	Extent Vector2
}

// MakeAarectFromPoints returns the smallest Aarect containing both points.
func MakeAarectFromPoints(a, b Point2) Aarect {
	minX, maxX := a.X, b.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := a.Y, b.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return Aarect{
		Min:    Point2{minX, minY},
		Extent: Vector2{maxX - minX, maxY - minY},
	}
}

// Contains reports whether p lies within r, inclusive of the boundary.
func (r Aarect) Contains(p Point2) bool {
	return p.X >= r.Min.X && p.X <= r.Min.X+r.Extent.X &&
		p.Y >= r.Min.Y && p.Y <= r.Min.Y+r.Extent.Y
}

// Union returns the smallest Aarect containing both r and s.
func (r Aarect) Union(s Aarect) Aarect {
	minX := math32.Min(r.Min.X, s.Min.X)
	minY := math32.Min(r.Min.Y, s.Min.Y)
	maxX := math32.Max(r.Min.X+r.Extent.X, s.Min.X+s.Extent.X)
	maxY := math32.Max(r.Min.Y+r.Extent.Y, s.Min.Y+s.Extent.Y)
	return Aarect{Min: Point2{minX, minY}, Extent: Vector2{maxX - minX, maxY - minY}}
}

// Center returns the midpoint of r.
func (r Aarect) Center() Point2 {
	return Point2{r.Min.X + r.Extent.X/2, r.Min.Y + r.Extent.Y/2}
}
