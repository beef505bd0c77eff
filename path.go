package pathdata

import "math"

// Segment is one drawing segment of a subpath. It starts at the end point of the previous segment, or at the
// subpath's start point for the first segment. The set of implementations is closed: Line, Quad, Cube and Arc.
type Segment interface {
	End() Point
	isSegment()
}

// Line is a straight line to To. Horizontal and vertical line commands produce Lines as well.
type Line struct {
	To Point
}

// Quad is a quadratic Bézier with control point Ctrl.
type Quad struct {
	Ctrl, To Point
}

// Cube is a cubic Bézier with control points Ctrl1 and Ctrl2.
type Cube struct {
	Ctrl1, Ctrl2, To Point
}

// Arc is an elliptical arc in SVG endpoint notation with radii Rx and Ry, the x-axis rotation Rot in degrees and
// the large-arc and sweep flags.
type Arc struct {
	Rx, Ry, Rot  float64
	Large, Sweep bool
	To           Point
}

func (s Line) End() Point { return s.To }
func (s Quad) End() Point { return s.To }
func (s Cube) End() Point { return s.To }
func (s Arc) End() Point  { return s.To }

func (Line) isSegment() {}
func (Quad) isSegment() {}
func (Cube) isSegment() {}
func (Arc) isSegment()  {}

////////////////////////////////////////////////////////////////

// Subpath is a contiguous run of segments starting at Start. A closed subpath implicitly returns to Start.
// Subpaths without segments are meaningful, they may still render as a marker or a round cap.
type Subpath struct {
	Start    Point
	Segments []Segment
	Closed   bool
}

// End returns the last explicit point of the subpath, ie. not its start point when closed.
func (sp Subpath) End() Point {
	if len(sp.Segments) == 0 {
		return sp.Start
	}
	return sp.Segments[len(sp.Segments)-1].End()
}

// PathVector is an ordered list of subpaths. Order is significant for rendering and is preserved by parsing and
// writing.
type PathVector []Subpath

// Empty returns true if there are no subpaths.
func (pv PathVector) Empty() bool {
	return len(pv) == 0
}

// Segments returns the total number of segments over all subpaths.
func (pv PathVector) Segments() int {
	n := 0
	for _, sp := range pv {
		n += len(sp.Segments)
	}
	return n
}

// Closed returns true if the last subpath is closed.
func (pv PathVector) Closed() bool {
	return 0 < len(pv) && pv[len(pv)-1].Closed
}

// Pos returns the current point, ie. where the next drawing command starts. After a close this is the start of the
// closed subpath.
func (pv PathVector) Pos() Point {
	if len(pv) == 0 {
		return Point{}
	}
	sp := pv[len(pv)-1]
	if sp.Closed {
		return sp.Start
	}
	return sp.End()
}

// Copy returns a deep copy.
func (pv PathVector) Copy() PathVector {
	if pv == nil {
		return nil
	}
	q := make(PathVector, len(pv))
	for i, sp := range pv {
		q[i] = Subpath{
			Start:    sp.Start,
			Segments: append([]Segment(nil), sp.Segments...),
			Closed:   sp.Closed,
		}
	}
	return q
}

// Equals returns true if P and Q have the same subpaths, closedness and segment kinds, and all coordinates differ by
// at most eps.
func (pv PathVector) Equals(q PathVector, eps float64) bool {
	if len(pv) != len(q) {
		return false
	}
	for i := range pv {
		a, b := pv[i], q[i]
		if a.Closed != b.Closed || len(a.Segments) != len(b.Segments) || !a.Start.Near(b.Start, eps) {
			return false
		}
		for j := range a.Segments {
			if !segmentEquals(a.Segments[j], b.Segments[j], eps) {
				return false
			}
		}
	}
	return true
}

func segmentEquals(a, b Segment, eps float64) bool {
	switch s := a.(type) {
	case Line:
		t, ok := b.(Line)
		return ok && s.To.Near(t.To, eps)
	case Quad:
		t, ok := b.(Quad)
		return ok && s.Ctrl.Near(t.Ctrl, eps) && s.To.Near(t.To, eps)
	case Cube:
		t, ok := b.(Cube)
		return ok && s.Ctrl1.Near(t.Ctrl1, eps) && s.Ctrl2.Near(t.Ctrl2, eps) && s.To.Near(t.To, eps)
	case Arc:
		t, ok := b.(Arc)
		return ok && math.Abs(s.Rx-t.Rx) <= eps && math.Abs(s.Ry-t.Ry) <= eps && math.Abs(s.Rot-t.Rot) <= eps &&
			s.Large == t.Large && s.Sweep == t.Sweep && s.To.Near(t.To, eps)
	}
	return false
}

// Translate returns a copy of the path vector moved by (x,y).
func (pv PathVector) Translate(x, y float64) PathVector {
	d := Point{x, y}
	q := pv.Copy()
	for i := range q {
		q[i].Start = q[i].Start.Add(d)
		for j, seg := range q[i].Segments {
			switch s := seg.(type) {
			case Line:
				s.To = s.To.Add(d)
				q[i].Segments[j] = s
			case Quad:
				s.Ctrl = s.Ctrl.Add(d)
				s.To = s.To.Add(d)
				q[i].Segments[j] = s
			case Cube:
				s.Ctrl1 = s.Ctrl1.Add(d)
				s.Ctrl2 = s.Ctrl2.Add(d)
				s.To = s.To.Add(d)
				q[i].Segments[j] = s
			case Arc:
				s.To = s.To.Add(d)
				q[i].Segments[j] = s
			}
		}
	}
	return q
}

// String returns the path data in the default writing mode.
func (pv PathVector) String() string {
	return Write(pv, false)
}

////////////////////////////////////////////////////////////////

// MoveTo starts a new subpath at (x,y).
func (pv *PathVector) MoveTo(x, y float64) *PathVector {
	*pv = append(*pv, Subpath{Start: Point{x, y}})
	return pv
}

// current returns the subpath that drawing commands append to. A drawing command after a close, or before any move,
// starts a new subpath at the current point.
func (pv *PathVector) current() *Subpath {
	if len(*pv) == 0 || (*pv)[len(*pv)-1].Closed {
		pv.MoveTo(pv.Pos().X, pv.Pos().Y)
	}
	return &(*pv)[len(*pv)-1]
}

// LineTo adds a straight line to (x,y).
func (pv *PathVector) LineTo(x, y float64) *PathVector {
	sp := pv.current()
	sp.Segments = append(sp.Segments, Line{Point{x, y}})
	return pv
}

// QuadTo adds a quadratic Bézier with control point (cpx,cpy) and end point (x,y).
func (pv *PathVector) QuadTo(cpx, cpy, x, y float64) *PathVector {
	sp := pv.current()
	sp.Segments = append(sp.Segments, Quad{Point{cpx, cpy}, Point{x, y}})
	return pv
}

// CubeTo adds a cubic Bézier with control points (cpx1,cpy1) and (cpx2,cpy2) and end point (x,y).
func (pv *PathVector) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64) *PathVector {
	sp := pv.current()
	sp.Segments = append(sp.Segments, Cube{Point{cpx1, cpy1}, Point{cpx2, cpy2}, Point{x, y}})
	return pv
}

// ArcTo adds an elliptical arc with radii rx and ry, with rot the counter clockwise rotation with respect to the
// coordinate system in degrees, large and sweep booleans (see https://developer.mozilla.org/en-US/docs/Web/SVG/Tutorial/Paths#Arcs),
// and (x,y) the end position of the pen.
func (pv *PathVector) ArcTo(rx, ry, rot float64, large, sweep bool, x, y float64) *PathVector {
	sp := pv.current()
	sp.Segments = append(sp.Segments, Arc{rx, ry, rot, large, sweep, Point{x, y}})
	return pv
}

// Close closes the current subpath. Closing an already closed subpath or an empty path vector has no effect.
func (pv *PathVector) Close() *PathVector {
	if len(*pv) != 0 {
		(*pv)[len(*pv)-1].Closed = true
	}
	return pv
}

////////////////////////////////////////////////////////////////

// Rect returns a closed rectangle at (x,y) with width w and height h.
func Rect(x, y, w, h float64) PathVector {
	pv := PathVector{}
	pv.MoveTo(x, y).LineTo(x+w, y).LineTo(x+w, y+h).LineTo(x, y+h).Close()
	return pv
}

// Ellipse returns a closed ellipse centered at (x,y) with radii rx and ry, made of two arcs.
func Ellipse(x, y, rx, ry float64) PathVector {
	pv := PathVector{}
	pv.MoveTo(x+rx, y).ArcTo(rx, ry, 0, false, false, x-rx, y).ArcTo(rx, ry, 0, false, false, x+rx, y).Close()
	return pv
}
