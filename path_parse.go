package pathdata

import (
	"errors"
	"fmt"
	stdStrconv "strconv"

	"github.com/tdewolff/parse/v2/strconv"
)

// Errors that stop the parser. They are wrapped by ParseError.
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadNumber      = errors.New("bad number")
	ErrBadFlag        = errors.New("bad arc flag")
	ErrUnexpected     = errors.New("unexpected character")
)

// ParseError is the condition that stopped the parser. Pos is the byte offset in the input.
type ParseError struct {
	Pos int
	Err error
	msg string
}

func (e *ParseError) Error() string {
	return "bad path: " + e.msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

////////////////////////////////////////////////////////////////

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\r' || c == '\t' || c == '\f'
}

func isNumberStart(c byte) bool {
	return '0' <= c && c <= '9' || c == '.' || c == '+' || c == '-'
}

func isLetter(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z'
}

// lexer splits path data into commands, one per parameter group. It stops at the first error and never returns a
// partially read group.
type lexer struct {
	b   []byte
	i   int
	err error

	op    Op   // active command for implicit repetition
	rel   bool // active command is relative
	first bool // next group is the first after the command letter
}

func newLexer(b []byte) *lexer {
	return &lexer{b: b}
}

func (l *lexer) errorf(pos int, err error, format string, args ...interface{}) {
	l.err = &ParseError{Pos: pos, Err: err, msg: fmt.Sprintf(format, args...)}
}

func (l *lexer) skipWhitespace() {
	for l.i < len(l.b) && isWhitespace(l.b[l.i]) {
		l.i++
	}
}

// skipCommaWhitespace skips the separator between two parameters, which is whitespace with at most one comma.
func (l *lexer) skipCommaWhitespace() {
	l.skipWhitespace()
	if l.i < len(l.b) && l.b[l.i] == ',' {
		l.i++
		l.skipWhitespace()
	}
}

// Next returns the next command. It returns false at the end of the input or on error, see Err.
func (l *lexer) Next() (Command, bool) {
	if l.err != nil {
		return Command{}, false
	}
	l.skipWhitespace()
	if len(l.b) <= l.i {
		return Command{}, false
	}

	c := l.b[l.i]
	cmdPos := l.i
	if isLetter(c) {
		op, rel := opFromLetter(c)
		if op == 0 {
			l.errorf(l.i, ErrUnknownCommand, "unknown command '%c' at position %d", c, l.i+1)
			return Command{}, false
		}
		l.op, l.rel, l.first = op, rel, true
		l.i++
		if op == CloseOp {
			return Command{Op: CloseOp, Rel: rel}, true
		}
		l.skipWhitespace()
	} else if l.op == 0 {
		l.errorf(l.i, ErrUnexpected, "path should start with command")
		return Command{}, false
	} else if l.op == CloseOp {
		l.errorf(l.i, ErrUnexpected, "unexpected '%c' after close at position %d", c, l.i+1)
		return Command{}, false
	} else if c == ',' {
		// a comma may separate two parameter groups of the same command
		l.i++
		l.skipWhitespace()
		if len(l.b) <= l.i || !isNumberStart(l.b[l.i]) {
			l.errorf(l.i-1, ErrUnexpected, "unexpected ',' at position %d", cmdPos+1)
			return Command{}, false
		}
	} else if !isNumberStart(c) {
		l.errorf(l.i, ErrUnexpected, "unexpected '%c' at position %d", c, l.i+1)
		return Command{}, false
	}

	cmd := Command{Op: l.op, Rel: l.rel}
	if l.op == MoveToOp && !l.first {
		cmd.Op = LineToOp
	}
	l.first = false

	n := l.op.Arity()
	for k := 0; k < n; k++ {
		if 0 < k {
			l.skipCommaWhitespace()
		}
		if len(l.b) <= l.i || isLetter(l.b[l.i]) && !(l.b[l.i] == 'e' || l.b[l.i] == 'E') {
			l.errorf(cmdPos, ErrBadNumber, "%d numbers should follow command '%c' at position %d", n, l.op.Letter(l.rel), cmdPos+1)
			return Command{}, false
		}
		if l.op == ArcToOp && (k == 3 || k == 4) {
			if l.b[l.i] != '0' && l.b[l.i] != '1' {
				l.errorf(l.i, ErrBadFlag, "bad arc flag '%c' at position %d", l.b[l.i], l.i+1)
				return Command{}, false
			}
			cmd.Args[k] = float64(l.b[l.i] - '0')
			l.i++
			continue
		}
		f, ok := l.number()
		if !ok {
			l.errorf(l.i, ErrBadNumber, "bad number at position %d", l.i+1)
			return Command{}, false
		}
		cmd.Args[k] = f
	}
	return cmd, true
}

// number reads a number at the current position. The extent follows the number grammar of tdewolff/parse, the value
// is converted with correct rounding so that written numbers read back exactly.
func (l *lexer) number() (float64, bool) {
	_, n := strconv.ParseFloat(l.b[l.i:])
	if n == 0 {
		return 0.0, false
	}
	f, err := stdStrconv.ParseFloat(string(l.b[l.i:l.i+n]), 64)
	if err != nil {
		return 0.0, false
	}
	l.i += n
	return f, true
}

// Err returns the error that stopped the lexer, or nil if it reached the end of the input.
func (l *lexer) Err() error {
	return l.err
}

////////////////////////////////////////////////////////////////

// pathBuilder turns commands into geometry. It tracks the state needed for relative and smooth commands.
type pathBuilder struct {
	pv   PathVector
	ctrl Point // last control point of the previous curve
	prev Op
}

func (b *pathBuilder) add(c Command) {
	p0 := b.pv.Pos()
	a := c.Args
	if c.Rel {
		switch c.Op {
		case MoveToOp, LineToOp, SmoothQuadOp:
			a[0] += p0.X
			a[1] += p0.Y
		case HLineToOp:
			a[0] += p0.X
		case VLineToOp:
			a[0] += p0.Y
		case QuadToOp, SmoothCubeOp:
			a[0] += p0.X
			a[1] += p0.Y
			a[2] += p0.X
			a[3] += p0.Y
		case CubeToOp:
			a[0] += p0.X
			a[1] += p0.Y
			a[2] += p0.X
			a[3] += p0.Y
			a[4] += p0.X
			a[5] += p0.Y
		case ArcToOp:
			a[5] += p0.X
			a[6] += p0.Y
		}
	}

	switch c.Op {
	case MoveToOp:
		b.pv.MoveTo(a[0], a[1])
	case LineToOp:
		b.pv.LineTo(a[0], a[1])
	case HLineToOp:
		b.pv.LineTo(a[0], p0.Y)
	case VLineToOp:
		b.pv.LineTo(p0.X, a[0])
	case CubeToOp:
		b.pv.CubeTo(a[0], a[1], a[2], a[3], a[4], a[5])
		b.ctrl = Point{a[2], a[3]}
	case SmoothCubeOp:
		cp1 := p0
		if b.prev == CubeToOp || b.prev == SmoothCubeOp {
			cp1 = b.ctrl.Reflect(p0)
		}
		b.pv.CubeTo(cp1.X, cp1.Y, a[0], a[1], a[2], a[3])
		b.ctrl = Point{a[0], a[1]}
	case QuadToOp:
		b.pv.QuadTo(a[0], a[1], a[2], a[3])
		b.ctrl = Point{a[0], a[1]}
	case SmoothQuadOp:
		cp := p0
		if b.prev == QuadToOp || b.prev == SmoothQuadOp {
			cp = b.ctrl.Reflect(p0)
		}
		b.pv.QuadTo(cp.X, cp.Y, a[0], a[1])
		b.ctrl = cp
	case ArcToOp:
		large, sweep := toArcFlags(a[3], a[4])
		b.pv.ArcTo(a[0], a[1], a[2], large, sweep, a[5], a[6])
	case CloseOp:
		b.pv.Close()
	}
	b.prev = c.Op
}

////////////////////////////////////////////////////////////////

// Parse parses SVG path data. It never fails: on malformed input it returns everything that was read before the
// offending command group. Empty input returns an empty path vector.
func Parse(s string) PathVector {
	pv, _ := ParseStrict(s)
	return pv
}

// ParseStrict parses SVG path data like Parse, but also returns the error that stopped the parser, if any. The path
// vector is the same partial result Parse returns.
func ParseStrict(s string) (PathVector, error) {
	l := newLexer([]byte(s))
	b := pathBuilder{}
	for {
		c, ok := l.Next()
		if !ok {
			break
		}
		b.add(c)
	}
	return b.pv, l.Err()
}

// MustParse parses SVG path data and panics on error.
func MustParse(s string) PathVector {
	pv, err := ParseStrict(s)
	if err != nil {
		panic(err)
	}
	return pv
}

// Scan splits SVG path data into its commands without interpreting them. Implicit repetitions are returned as
// separate commands, where repeated move groups become line commands.
func Scan(s string) ([]Command, error) {
	l := newLexer([]byte(s))
	cmds := []Command{}
	for {
		c, ok := l.Next()
		if !ok {
			break
		}
		cmds = append(cmds, c)
	}
	return cmds, l.Err()
}
