package pathdata

import "math/rand"

// RandomPath returns a subpath of n segments with coordinates normally distributed around the origin.
func RandomPath(n int, closed bool) PathVector {
	pv := PathVector{}
	if 0 < n {
		pv.MoveTo(rand.NormFloat64(), rand.NormFloat64())
		for i := 1; i < n; i++ {
			switch rand.Intn(5) {
			case 0:
				pv.LineTo(rand.NormFloat64(), rand.NormFloat64())
			case 1:
				pv.QuadTo(rand.NormFloat64(), rand.NormFloat64(), rand.NormFloat64(), rand.NormFloat64())
			case 2:
				pv.CubeTo(rand.NormFloat64(), rand.NormFloat64(), rand.NormFloat64(), rand.NormFloat64(), rand.NormFloat64(), rand.NormFloat64())
			case 3:
				large, sweep := rand.Intn(2) == 0, rand.Intn(2) == 0
				pv.ArcTo(1.0+rand.Float64(), 1.0+rand.Float64(), 360.0*rand.Float64(), large, sweep, rand.NormFloat64(), rand.NormFloat64())
			case 4:
				// axis aligned, written as H or V
				p := pv.Pos()
				if rand.Intn(2) == 0 {
					pv.LineTo(rand.NormFloat64(), p.Y)
				} else {
					pv.LineTo(p.X, rand.NormFloat64())
				}
			}
		}
		if closed {
			pv.Close()
		}
	}
	return pv
}

// RandomPathVector returns n random subpaths, some of them closed or without segments.
func RandomPathVector(n int) PathVector {
	pv := PathVector{}
	for i := 0; i < n; i++ {
		pv = append(pv, RandomPath(rand.Intn(6), rand.Intn(2) == 0)...)
	}
	return pv
}
