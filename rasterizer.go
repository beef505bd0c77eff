package pathdata

import (
	"github.com/srwiley/rasterx"
)

// AddTo feeds the path vector to a rasterx path adder in 26.6 fixed point coordinates, such as a rasterx.Filler,
// Stroker or rasterx.Path. Arcs are approximated by cubic Béziers. Subpaths without segments are skipped since they
// enclose nothing.
func (pv PathVector) AddTo(a rasterx.Adder) {
	for s := pv.Scanner(); s.Scan(); {
		if s.First() {
			a.Start(toP26_6(s.Start()))
		}
		switch seg := s.Segment().(type) {
		case Line:
			a.Line(toP26_6(seg.To))
		case Quad:
			a.QuadBezier(toP26_6(seg.Ctrl), toP26_6(seg.To))
		case Cube:
			a.CubeBezier(toP26_6(seg.Ctrl1), toP26_6(seg.Ctrl2), toP26_6(seg.To))
		case Arc:
			for _, cube := range arcToCubics(s.Start(), seg) {
				a.CubeBezier(toP26_6(cube.Ctrl1), toP26_6(cube.Ctrl2), toP26_6(cube.To))
			}
		}
		if s.Last() {
			a.Stop(s.Closed())
		}
	}
}
