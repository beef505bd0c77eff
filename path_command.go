package pathdata

// Op is a path data command, named by its absolute (upper case) letter.
type Op byte

// Path data commands.
const (
	MoveToOp     Op = 'M'
	LineToOp     Op = 'L'
	HLineToOp    Op = 'H'
	VLineToOp    Op = 'V'
	CubeToOp     Op = 'C'
	SmoothCubeOp Op = 'S'
	QuadToOp     Op = 'Q'
	SmoothQuadOp Op = 'T'
	ArcToOp      Op = 'A'
	CloseOp      Op = 'Z'
)

// Arity returns the number of parameters in one parameter group of the command.
func (op Op) Arity() int {
	switch op {
	case MoveToOp, LineToOp, SmoothQuadOp:
		return 2
	case HLineToOp, VLineToOp:
		return 1
	case QuadToOp, SmoothCubeOp:
		return 4
	case CubeToOp:
		return 6
	case ArcToOp:
		return 7
	}
	return 0
}

// Letter returns the command letter, lower case for relative commands.
func (op Op) Letter(rel bool) byte {
	if rel {
		return byte(op) + 'a' - 'A'
	}
	return byte(op)
}

func (op Op) String() string {
	return string(rune(op))
}

// opFromLetter returns the command for c and whether it is relative. Unknown letters return zero.
func opFromLetter(c byte) (Op, bool) {
	rel := false
	if 'a' <= c && c <= 'z' {
		rel = true
		c -= 'a' - 'A'
	}
	switch Op(c) {
	case MoveToOp, LineToOp, HLineToOp, VLineToOp, CubeToOp, SmoothCubeOp, QuadToOp, SmoothQuadOp, ArcToOp, CloseOp:
		return Op(c), rel
	}
	return 0, false
}

// Command is one parameter group of path data together with its command. Implicitly repeated groups are separate
// commands with the same Op. For arcs the flags are stored as 0 or 1 in Args[3] and Args[4].
type Command struct {
	Op   Op
	Rel  bool
	Args [7]float64
}

// Params returns the used arguments.
func (c Command) Params() []float64 {
	return c.Args[:c.Op.Arity()]
}

func (c Command) String() string {
	return FormatCommands([]Command{c}, DefaultOptions)
}

func fromArcFlags(large, sweep bool) (float64, float64) {
	flarge, fsweep := 0.0, 0.0
	if large {
		flarge = 1.0
	}
	if sweep {
		fsweep = 1.0
	}
	return flarge, fsweep
}

func toArcFlags(flarge, fsweep float64) (bool, bool) {
	return flarge == 1.0, fsweep == 1.0
}
