// Package layout holds the 2D geometry shared by reels and machines.
//
// Coordinates are Y-up: Rect.Min is the bottom-left corner and slot 0 of a
// reel sits in the bottom row of that reel's rectangle.
package layout

import "fmt"

// Vec2 is a 2D point or size.
type Vec2 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies component-wise.
func (v Vec2) Scale(o Vec2) Vec2 {
	return Vec2{X: v.X * o.X, Y: v.Y * o.Y}
}

// InverseScale divides component-wise.
func (v Vec2) InverseScale(o Vec2) Vec2 {
	return Vec2{X: v.X / o.X, Y: v.Y / o.Y}
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// GridSize is a (columns, rows) pair.
type GridSize struct {
	Columns int `json:"columns" yaml:"columns"`
	Rows    int `json:"rows" yaml:"rows"`
}

// Valid reports whether both dimensions are positive.
func (g GridSize) Valid() bool {
	return g.Columns > 0 && g.Rows > 0
}

// Vec2 converts the grid size to floating point.
func (g GridSize) Vec2() Vec2 {
	return Vec2{X: float64(g.Columns), Y: float64(g.Rows)}
}

// Rect is an axis-aligned rectangle anchored at its minimum corner.
type Rect struct {
	Min  Vec2 `json:"min" yaml:"min"`
	Size Vec2 `json:"size" yaml:"size"`
}

// NewRect builds a rectangle from its minimum corner and size.
func NewRect(x, y, width, height float64) Rect {
	return Rect{Min: Vec2{X: x, Y: y}, Size: Vec2{X: width, Y: height}}
}

// Max returns the maximum corner.
func (r Rect) Max() Vec2 {
	return r.Min.Add(r.Size)
}

// Center returns the midpoint.
func (r Rect) Center() Vec2 {
	return r.Min.Add(r.Size.Scale(Vec2{X: 0.5, Y: 0.5}))
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Size.X <= 0 || r.Size.Y <= 0
}

// Split cuts the rectangle into splitX by splitY equal cells and returns the
// cell at (x, y), counted from the bottom-left.
func (r Rect) Split(splitX, splitY, x, y int) Rect {
	cell := r.Size.InverseScale(Vec2{X: float64(splitX), Y: float64(splitY)})
	return Rect{
		Min:  r.Min.Add(cell.Scale(Vec2{X: float64(x), Y: float64(y)})),
		Size: cell,
	}
}

// Columns splits the rectangle into n vertical strips, left to right.
func (r Rect) Columns(n int) []Rect {
	strips := make([]Rect, n)
	for i := range strips {
		strips[i] = r.Split(n, 1, i, 0)
	}
	return strips
}

// Bounds is a center/extents box, the shape hosts usually hand over.
type Bounds struct {
	Center  Vec2 `json:"center" yaml:"center"`
	Extents Vec2 `json:"extents" yaml:"extents"`
}

// Rect converts the box to a min/size rectangle.
func (b Bounds) Rect() Rect {
	return Rect{
		Min:  b.Center.Sub(b.Extents),
		Size: b.Extents.Scale(Vec2{X: 2, Y: 2}),
	}
}
