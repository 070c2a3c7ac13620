package svgoffset

import "fmt"

// Tuple is an X,Y coordinate in source units.
type Tuple [2]float64

// InstructionType tells the flattener how to interpret a DrawingInstruction.
type InstructionType int

// These are the drawing directives produced by the path parser.
const (
	// MoveInstruction begins a sub-path at T.
	MoveInstruction InstructionType = iota
	// LineInstruction draws a straight line to T.
	LineInstruction
	// CubicInstruction draws a cubic Bézier to T with controls C1 and C2.
	CubicInstruction
	// QuadInstruction draws a quadratic Bézier to T with control C1.
	QuadInstruction
	// CloseInstruction closes the current sub-path.
	CloseInstruction
	// EndInstruction ends the current sub-path without closing it. It is
	// emitted when a new M command starts while a sub-path is open.
	EndInstruction
)

func (k InstructionType) String() string {
	switch k {
	case MoveInstruction:
		return "M"
	case LineInstruction:
		return "L"
	case CubicInstruction:
		return "C"
	case QuadInstruction:
		return "Q"
	case CloseInstruction:
		return "Z"
	case EndInstruction:
		return "end"
	default:
		return fmt.Sprintf("InstructionType(%d)", int(k))
	}
}

// DrawingInstruction is one directive of a parsed path. All coordinates are
// absolute.
type DrawingInstruction struct {
	Kind InstructionType
	C1   Tuple
	C2   Tuple
	T    Tuple
}
