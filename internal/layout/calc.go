package layout

// CalcOp identifies the operation of a CalcNode.
type CalcOp uint8

const (
	CalcLeaf       CalcOp = iota // Value resolved against the reference
	CalcNumber                   // Unitless number
	CalcSum                      // Args[0] + Args[1] + ...
	CalcDifference               // Args[0] - Args[1] - ...
	CalcProduct                  // Args[0] * Args[1] * ...
	CalcQuotient                 // Args[0] / Args[1]
	CalcNegate                   // -Args[0]
	CalcMin                      // min(Args...)
	CalcMax                      // max(Args...)
	CalcClamp                    // clamp(Args[0], Args[1], Args[2])
)

// CalcNode is an immutable calc() expression tree. Nodes may be shared between
// styles; nothing mutates them after construction.
type CalcNode struct {
	Op     CalcOp
	Leaf   Value
	Number float32
	Args   []*CalcNode
}

// CalcValue wraps a length or percentage as a leaf.
func CalcValue(v Value) *CalcNode { return &CalcNode{Op: CalcLeaf, Leaf: v} }

// CalcNum wraps a unitless number.
func CalcNum(n float32) *CalcNode { return &CalcNode{Op: CalcNumber, Number: n} }

// CalcAdd builds a sum.
func CalcAdd(args ...*CalcNode) *CalcNode { return &CalcNode{Op: CalcSum, Args: args} }

// CalcSub builds a difference.
func CalcSub(args ...*CalcNode) *CalcNode { return &CalcNode{Op: CalcDifference, Args: args} }

// CalcMul builds a product.
func CalcMul(args ...*CalcNode) *CalcNode { return &CalcNode{Op: CalcProduct, Args: args} }

// CalcDiv builds a quotient.
func CalcDiv(a, b *CalcNode) *CalcNode { return &CalcNode{Op: CalcQuotient, Args: []*CalcNode{a, b}} }

// CalcNeg builds a negation.
func CalcNeg(a *CalcNode) *CalcNode { return &CalcNode{Op: CalcNegate, Args: []*CalcNode{a}} }

// CalcMinOf builds min().
func CalcMinOf(args ...*CalcNode) *CalcNode { return &CalcNode{Op: CalcMin, Args: args} }

// CalcMaxOf builds max().
func CalcMaxOf(args ...*CalcNode) *CalcNode { return &CalcNode{Op: CalcMax, Args: args} }

// CalcClampOf builds clamp(lo, center, hi).
func CalcClampOf(lo, center, hi *CalcNode) *CalcNode {
	return &CalcNode{Op: CalcClamp, Args: []*CalcNode{lo, center, hi}}
}

// Resolve evaluates the tree against ref. Any unresolvable leaf, a division by
// zero or a malformed node makes the whole expression None.
func (c *CalcNode) Resolve(ref Opt) Opt {
	if c == nil {
		return None
	}
	switch c.Op {
	case CalcLeaf:
		if c.Leaf.Unit == UnitCalc && c.Leaf.Calc == c {
			return None
		}
		return c.Leaf.Resolve(ref)
	case CalcNumber:
		return Some(c.Number)
	case CalcNegate:
		if len(c.Args) != 1 {
			return None
		}
		v, ok := c.Args[0].Resolve(ref).Get()
		if !ok {
			return None
		}
		return Some(-v)
	case CalcQuotient:
		vals, ok := c.resolveArgs(ref)
		if !ok || len(vals) != 2 || vals[1] == 0 {
			return None
		}
		return Some(vals[0] / vals[1])
	case CalcClamp:
		vals, ok := c.resolveArgs(ref)
		if !ok || len(vals) != 3 {
			return None
		}
		lo, center, hi := vals[0], vals[1], vals[2]
		return Some(max(lo, min(center, hi)))
	}

	vals, ok := c.resolveArgs(ref)
	if !ok || len(vals) == 0 {
		return None
	}
	acc := vals[0]
	for _, v := range vals[1:] {
		switch c.Op {
		case CalcSum:
			acc += v
		case CalcDifference:
			acc -= v
		case CalcProduct:
			acc *= v
		case CalcMin:
			acc = min(acc, v)
		case CalcMax:
			acc = max(acc, v)
		default:
			return None
		}
	}
	return Some(acc)
}

func (c *CalcNode) resolveArgs(ref Opt) ([]float32, bool) {
	vals := make([]float32, len(c.Args))
	for i, a := range c.Args {
		v, ok := a.Resolve(ref).Get()
		if !ok {
			return nil, false
		}
		vals[i] = v
	}
	return vals, true
}
