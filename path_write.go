package pathdata

// Write returns the path vector as SVG path data. It uses NormalizeOptions when normalize is set and DefaultOptions
// otherwise.
func Write(pv PathVector, normalize bool) string {
	if normalize {
		return WriteOptions(pv, NormalizeOptions)
	}
	return WriteOptions(pv, DefaultOptions)
}

// WriteOptions returns the path vector as SVG path data written with the given options.
func WriteOptions(pv PathVector, o Options) string {
	return string(AppendPath(nil, pv, o))
}

// AppendPath appends the path vector as SVG path data to dst.
func AppendPath(dst []byte, pv PathVector, o Options) []byte {
	return appendCommands(dst, pathCommands(pv, &o), &o)
}

// FormatCommands returns the commands as SVG path data. Consecutive commands of the same kind are merged into one
// command letter unless the options force repeated commands.
func FormatCommands(cmds []Command, o Options) string {
	return string(appendCommands(nil, cmds, &o))
}

////////////////////////////////////////////////////////////////

// commandWriter converts geometry into commands. It tracks the current point as a reader of the written numbers
// will reconstruct it, so that relative coordinates never accumulate rounding differences.
type commandWriter struct {
	o     *Options
	cur   Point
	start Point
	cmds  []Command
}

func pathCommands(pv PathVector, o *Options) []Command {
	if o.Normalize {
		pv = pv.ToCubics()
	}
	w := commandWriter{o: o}
	for _, sp := range pv {
		w.add(MoveToOp, [7]float64{sp.Start.X, sp.Start.Y})
		w.start = w.cur
		for _, seg := range sp.Segments {
			w.segment(seg)
		}
		if sp.Closed {
			w.cmds = append(w.cmds, Command{Op: CloseOp, Rel: w.relative()})
			w.cur = w.start
		}
	}
	return w.cmds
}

func (w *commandWriter) relative() bool {
	return w.o.AllowRelative && !w.o.Normalize
}

func (w *commandWriter) segment(seg Segment) {
	switch s := seg.(type) {
	case Line:
		if !w.o.Normalize {
			if w.o.roundNum(s.To.Y) == w.cur.Y {
				w.add(HLineToOp, [7]float64{s.To.X})
				return
			} else if w.o.roundNum(s.To.X) == w.cur.X {
				w.add(VLineToOp, [7]float64{s.To.Y})
				return
			}
		}
		w.add(LineToOp, [7]float64{s.To.X, s.To.Y})
	case Quad:
		w.add(QuadToOp, [7]float64{s.Ctrl.X, s.Ctrl.Y, s.To.X, s.To.Y})
	case Cube:
		w.add(CubeToOp, [7]float64{s.Ctrl1.X, s.Ctrl1.Y, s.Ctrl2.X, s.Ctrl2.Y, s.To.X, s.To.Y})
	case Arc:
		flarge, fsweep := fromArcFlags(s.Large, s.Sweep)
		w.add(ArcToOp, [7]float64{s.Rx, s.Ry, s.Rot, flarge, fsweep, s.To.X, s.To.Y})
	}
}

// coordOffset returns the value that a relative command adds to its k-th argument, and whether the argument is a
// coordinate at all.
func coordOffset(op Op, k int, cur Point) (float64, bool) {
	switch op {
	case HLineToOp:
		return cur.X, true
	case VLineToOp:
		return cur.Y, true
	case ArcToOp:
		if k == 5 {
			return cur.X, true
		} else if k == 6 {
			return cur.Y, true
		}
		return 0.0, false
	}
	if k%2 == 0 {
		return cur.X, true
	}
	return cur.Y, true
}

// add appends the command in absolute or relative form, whichever is shorter. The relative form is only used when
// it reads back to exactly the same values as the absolute form.
func (w *commandWriter) add(op Op, args [7]float64) {
	abs := Command{Op: op}
	rel := Command{Op: op, Rel: true}
	relOK := w.relative()
	for k := 0; k < op.Arity(); k++ {
		abs.Args[k] = w.o.roundNum(args[k])
		off, ok := coordOffset(op, k, w.cur)
		if !ok {
			rel.Args[k] = abs.Args[k]
			continue
		}
		rel.Args[k] = w.o.roundNum(args[k] - off)
		if off+rel.Args[k] != abs.Args[k] {
			relOK = false
		}
	}

	cmd := abs
	if relOK && len(appendCommands(nil, []Command{rel}, w.o)) < len(appendCommands(nil, []Command{abs}, w.o)) {
		cmd = rel
	}
	w.cmds = append(w.cmds, cmd)

	a := abs.Args
	switch op {
	case MoveToOp, LineToOp, SmoothQuadOp:
		w.cur = Point{a[0], a[1]}
	case HLineToOp:
		w.cur.X = a[0]
	case VLineToOp:
		w.cur.Y = a[0]
	case QuadToOp, SmoothCubeOp:
		w.cur = Point{a[2], a[3]}
	case CubeToOp:
		w.cur = Point{a[4], a[5]}
	case ArcToOp:
		w.cur = Point{a[5], a[6]}
	}
}

////////////////////////////////////////////////////////////////

// pairEnd returns true if the k-th argument is the second coordinate of a point, which is separated from the first
// by a comma.
func pairEnd(op Op, k int) bool {
	switch op {
	case HLineToOp, VLineToOp:
		return false
	case ArcToOp:
		return k == 1 || k == 6
	}
	return k%2 == 1
}

func appendCommands(b []byte, cmds []Command, o *Options) []byte {
	var prev Command
	for i, c := range cmds {
		implicit := false
		if 0 < i && !o.ForceRepeatCommands && c.Op != MoveToOp && c.Op != CloseOp && c.Rel == prev.Rel {
			implicit = c.Op == prev.Op || c.Op == LineToOp && prev.Op == MoveToOp
		}
		if !implicit {
			if 0 < i && !o.Minify {
				b = append(b, ' ')
			}
			b = append(b, c.Op.Letter(c.Rel))
		}

		for k, f := range c.Params() {
			num := o.appendNum(nil, f)
			if o.Minify {
				if (0 < k || implicit) && num[0] != '-' {
					b = append(b, ' ')
				}
			} else if 0 < k && pairEnd(c.Op, k) {
				b = append(b, ',')
			} else {
				b = append(b, ' ')
			}
			b = append(b, num...)
		}
		prev = c
	}
	return b
}
