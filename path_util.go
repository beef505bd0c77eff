package pathdata

import "math"

// arcToCenter changes between the SVG arc format to the center and angles format. It returns the center, the
// radii scaled up when they are too small to span the end points, the start angle and the end angle in radians.
// see https://www.w3.org/TR/SVG/implnote.html#ArcImplementationNotes
// and http://commons.oreilly.com/wiki/index.php/SVG_Essentials/Paths#Technique:_Converting_from_Other_Arc_Formats
func arcToCenter(x1, y1, rx, ry, rot float64, large, sweep bool, x2, y2 float64) (Point, float64, float64, float64, float64) {
	rx, ry = math.Abs(rx), math.Abs(ry)
	if x1 == x2 && y1 == y2 {
		return Point{x1, y1}, rx, ry, 0.0, 0.0
	}

	sinphi, cosphi := math.Sincos(rot * math.Pi / 180.0)
	x1p := cosphi*(x1-x2)/2.0 + sinphi*(y1-y2)/2.0
	y1p := -sinphi*(x1-x2)/2.0 + cosphi*(y1-y2)/2.0

	// reduce rouding errors
	radiiCheck := x1p*x1p/rx/rx + y1p*y1p/ry/ry
	if radiiCheck > 1.0 {
		rx *= math.Sqrt(radiiCheck)
		ry *= math.Sqrt(radiiCheck)
	}

	sq := (rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p) / (rx*rx*y1p*y1p + ry*ry*x1p*x1p)
	if sq < 0.0 || math.IsNaN(sq) {
		sq = 0.0
	}
	coef := math.Sqrt(sq)
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := coef * -ry * x1p / rx
	cx := cosphi*cxp - sinphi*cyp + (x1+x2)/2.0
	cy := sinphi*cxp + cosphi*cyp + (y1+y2)/2.0

	// specify U and V vectors; theta = arccos(U*V / sqrt(U*U + V*V))
	ux := (x1p - cxp) / rx
	uy := (y1p - cyp) / ry
	vx := -(x1p + cxp) / rx
	vy := -(y1p + cyp) / ry

	theta := math.Atan2(uy, ux)
	delta := math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
	if !sweep && delta > 0.0 {
		delta -= 2.0 * math.Pi
	} else if sweep && delta < 0.0 {
		delta += 2.0 * math.Pi
	}
	return Point{cx, cy}, rx, ry, theta, theta + delta
}

// ellipsePos returns the position on the ellipse at angle theta.
func ellipsePos(rx, ry, phi float64, c Point, theta float64) Point {
	sintheta, costheta := math.Sincos(theta)
	sinphi, cosphi := math.Sincos(phi)
	x := c.X + rx*costheta*cosphi - ry*sintheta*sinphi
	y := c.Y + rx*costheta*sinphi + ry*sintheta*cosphi
	return Point{x, y}
}

// ellipseDeriv returns the derivative of the ellipse at angle theta, in the direction of increasing theta.
func ellipseDeriv(rx, ry, phi float64, theta float64) Point {
	sintheta, costheta := math.Sincos(theta)
	sinphi, cosphi := math.Sincos(phi)
	dx := -rx*sintheta*cosphi - ry*costheta*sinphi
	dy := -rx*sintheta*sinphi + ry*costheta*cosphi
	return Point{dx, dy}
}

// arcToCubics approximates the arc from start by cubic Béziers spanning at most 90 degrees each. The last end point
// is exactly the arc's end point. Degenerate arcs are returned as a single straight cubic or nothing when the end
// points coincide.
func arcToCubics(start Point, arc Arc) []Cube {
	end := arc.To
	if start == end {
		return nil
	} else if arc.Rx == 0.0 || arc.Ry == 0.0 {
		return []Cube{lineToCube(start, end)}
	}

	c, rx, ry, theta0, theta1 := arcToCenter(start.X, start.Y, arc.Rx, arc.Ry, arc.Rot, arc.Large, arc.Sweep, end.X, end.Y)
	phi := arc.Rot * math.Pi / 180.0
	if math.IsNaN(theta0) || math.IsNaN(theta1) || math.IsInf(rx, 0) || math.IsInf(ry, 0) {
		return []Cube{lineToCube(start, end)}
	}

	n := int(math.Ceil(math.Abs(theta1-theta0)/(math.Pi/2.0) - Epsilon))
	if n < 1 {
		n = 1
	}
	dtheta := (theta1 - theta0) / float64(n)
	kappa := 4.0 / 3.0 * math.Tan(dtheta/4.0)

	cubes := make([]Cube, 0, n)
	p0 := start
	d0 := ellipseDeriv(rx, ry, phi, theta0)
	for i := 1; i <= n; i++ {
		theta := theta0 + float64(i)*dtheta
		p1 := ellipsePos(rx, ry, phi, c, theta)
		if i == n {
			p1 = end
		}
		d1 := ellipseDeriv(rx, ry, phi, theta)
		cubes = append(cubes, Cube{p0.Add(d0.Mul(kappa)), p1.Sub(d1.Mul(kappa)), p1})
		p0, d0 = p1, d1
	}
	return cubes
}

// quadToCube elevates a quadratic Bézier to the equivalent cubic Bézier.
func quadToCube(start Point, q Quad) Cube {
	cp1 := start.Interpolate(q.Ctrl, 2.0/3.0)
	cp2 := q.To.Interpolate(q.Ctrl, 2.0/3.0)
	return Cube{cp1, cp2, q.To}
}

// lineToCube returns a straight cubic Bézier with control points on the line at one and two thirds.
func lineToCube(start, end Point) Cube {
	return Cube{start.Interpolate(end, 1.0/3.0), start.Interpolate(end, 2.0/3.0), end}
}

// ToCubics returns a copy where quadratic Béziers and arcs are replaced by cubic Béziers. Lines are kept.
func (pv PathVector) ToCubics() PathVector {
	q := make(PathVector, 0, len(pv))
	for _, sp := range pv {
		nsp := Subpath{Start: sp.Start, Closed: sp.Closed}
		start := sp.Start
		for _, seg := range sp.Segments {
			switch s := seg.(type) {
			case Quad:
				nsp.Segments = append(nsp.Segments, quadToCube(start, s))
			case Arc:
				if s.Rx == 0.0 || s.Ry == 0.0 {
					nsp.Segments = append(nsp.Segments, Line{s.To})
					break
				}
				for _, cube := range arcToCubics(start, s) {
					nsp.Segments = append(nsp.Segments, cube)
				}
			default:
				nsp.Segments = append(nsp.Segments, seg)
			}
			start = seg.End()
		}
		q = append(q, nsp)
	}
	return q
}
