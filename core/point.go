package core

import "math"

// Point is a 2D position in hourglass-local units (y up)
type Point struct {
	X, Y float64
}

// Sub returns p - q
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Len returns the euclidean length of p as a vector
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the euclidean distance between p and q
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Len()
}
