// Package geometry provides the plane primitives shared by the layout side of
// a map: points, centre-based bounding boxes and arc segments.
//
// Bounding boxes are stored by their centre, which is how layout elements are
// positioned. The wire format uses top-left corners instead, so conversions
// go through [FromTopLeft] and [Bbox.TopLeft].
package geometry

import "math"

// Point is a position in diagram coordinates. Y grows downwards.
type Point struct {
	X float64 `json:"x" yaml:"x" msgpack:"x"`
	Y float64 `json:"y" yaml:"y" msgpack:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Distance returns the euclidean distance between p and q.
func (p Point) Distance(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// Bbox is an axis-aligned box described by its centre and size.
type Bbox struct {
	Position Point   `json:"position" yaml:"position" msgpack:"position"`
	Width    float64 `json:"width" yaml:"width" msgpack:"width"`
	Height   float64 `json:"height" yaml:"height" msgpack:"height"`
}

// FromTopLeft builds a box from its top-left corner and size.
func FromTopLeft(x, y, w, h float64) Bbox {
	return Bbox{Position: Point{x + w/2, y + h/2}, Width: w, Height: h}
}

// TopLeft returns the corner the wire format stores.
func (b Bbox) TopLeft() Point {
	return Point{b.Position.X - b.Width/2, b.Position.Y - b.Height/2}
}

func (b Bbox) Left() float64   { return b.Position.X - b.Width/2 }
func (b Bbox) Right() float64  { return b.Position.X + b.Width/2 }
func (b Bbox) Top() float64    { return b.Position.Y - b.Height/2 }
func (b Bbox) Bottom() float64 { return b.Position.Y + b.Height/2 }

// Contains reports whether p lies inside b or on its border.
func (b Bbox) Contains(p Point) bool {
	return p.X >= b.Left() && p.X <= b.Right() && p.Y >= b.Top() && p.Y <= b.Bottom()
}

// Union returns the smallest box containing both b and o.
func (b Bbox) Union(o Bbox) Bbox {
	return fromBounds(
		math.Min(b.Left(), o.Left()), math.Min(b.Top(), o.Top()),
		math.Max(b.Right(), o.Right()), math.Max(b.Bottom(), o.Bottom()),
	)
}

func fromBounds(minX, minY, maxX, maxY float64) Bbox {
	return FromTopLeft(minX, minY, maxX-minX, maxY-minY)
}

// Segment is one straight piece of an arc.
type Segment struct {
	P1 Point `json:"p1" yaml:"p1" msgpack:"p1"`
	P2 Point `json:"p2" yaml:"p2" msgpack:"p2"`
}

// Length returns the euclidean length of s.
func (s Segment) Length() float64 { return s.P1.Distance(s.P2) }

// Polyline joins consecutive points into segments. Fewer than two points
// yield no segments.
func Polyline(points []Point) []Segment {
	if len(points) < 2 {
		return nil
	}
	segs := make([]Segment, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		segs = append(segs, Segment{P1: points[i-1], P2: points[i]})
	}
	return segs
}

// Points returns the ordered vertices of a chain of segments, the inverse of
// [Polyline].
func Points(segs []Segment) []Point {
	if len(segs) == 0 {
		return nil
	}
	pts := make([]Point, 0, len(segs)+1)
	pts = append(pts, segs[0].P1)
	for _, s := range segs {
		pts = append(pts, s.P2)
	}
	return pts
}

// Reverse returns points in the opposite order without modifying the input.
func Reverse(points []Point) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[len(points)-1-i] = p
	}
	return out
}

// Fit returns the smallest box containing every box and point given.
// ok is false when nothing was given.
func Fit(boxes []Bbox, points []Point) (b Bbox, ok bool) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, bb := range boxes {
		minX, minY = math.Min(minX, bb.Left()), math.Min(minY, bb.Top())
		maxX, maxY = math.Max(maxX, bb.Right()), math.Max(maxY, bb.Bottom())
		ok = true
	}
	for _, p := range points {
		minX, minY = math.Min(minX, p.X), math.Min(minY, p.Y)
		maxX, maxY = math.Max(maxX, p.X), math.Max(maxY, p.Y)
		ok = true
	}
	if !ok {
		return Bbox{}, false
	}
	return fromBounds(minX, minY, maxX, maxY), true
}
