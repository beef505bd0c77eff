package pathdata

// PathScanner iterates over the segments of a path vector, keeping track of where each segment starts.
type PathScanner struct {
	pv    PathVector
	i, j  int // subpath and segment index, j is -1 before the first segment of a subpath
	start Point
}

// Scanner returns a scanner positioned before the first segment.
func (pv PathVector) Scanner() *PathScanner {
	return &PathScanner{pv: pv, j: -1}
}

// Scan advances to the next segment and returns false when there are none left. Subpaths without segments are
// skipped.
func (s *PathScanner) Scan() bool {
	for s.i < len(s.pv) {
		sp := s.pv[s.i]
		if s.j+1 < len(sp.Segments) {
			if s.j == -1 {
				s.start = sp.Start
			} else {
				s.start = sp.Segments[s.j].End()
			}
			s.j++
			return true
		}
		s.i++
		s.j = -1
	}
	return false
}

// Subpath returns the index of the current subpath.
func (s *PathScanner) Subpath() int {
	return s.i
}

// First returns true if the current segment is the first of its subpath.
func (s *PathScanner) First() bool {
	return s.j == 0
}

// Last returns true if the current segment is the last of its subpath.
func (s *PathScanner) Last() bool {
	return s.j == len(s.pv[s.i].Segments)-1
}

// Closed returns true if the current subpath is closed.
func (s *PathScanner) Closed() bool {
	return s.pv[s.i].Closed
}

// Segment returns the current segment.
func (s *PathScanner) Segment() Segment {
	return s.pv[s.i].Segments[s.j]
}

// Start returns the start point of the current segment.
func (s *PathScanner) Start() Point {
	return s.start
}

// End returns the end point of the current segment.
func (s *PathScanner) End() Point {
	return s.Segment().End()
}
