package sim

import "github.com/dascript-lang/dascript/internal/errcat"

// Ref2Value loads through a reference to a simple scalar (spec §4.2):
// since scalars already travel in Register.Bits, the node is a pure
// passthrough — the "load" already happened wherever the reference's
// value was produced (LocalRef/GlobalRef/ArgRef.Eval already read the
// slot).
type Ref2ValueNode struct {
	Operand SimNode
}

func (n *Ref2ValueNode) Eval(ctx *Context) Register { return n.Operand.Eval(ctx) }

// Ptr2RefNode dereferences a pointer (spec §4.2): a struct/array/table
// pointee's Register already carries its heap reference directly, so
// dereferencing is identity; a scalar field pointer (produced by
// SafeFieldRef) is unwrapped into its current value. Either way, a null
// pointer throws (the "non-safe" contract — SafeFieldExpr itself never
// produces a literal Ptr2Ref over a null result because it short-
// circuits before this node runs).
type Ptr2RefNode struct {
	Operand SimNode
}

func (n *Ptr2RefNode) Eval(ctx *Context) Register {
	r := n.Operand.Eval(ctx)
	if ctx.IsThrowing() {
		return Null
	}
	if r.IsNullPointer() {
		ctx.Throw(errcat.MsgNullDereference)
		return Null
	}
	if s, ok := r.Ref.(slot); ok {
		return s.Get()
	}
	return r
}

// NullCoalescingNode evaluates Pointer; if null, evaluates and returns
// Default instead (spec §4.2).
type NullCoalescingNode struct {
	Pointer SimNode
	Default SimNode
}

func (n *NullCoalescingNode) Eval(ctx *Context) Register {
	p := n.Pointer.Eval(ctx)
	if ctx.IsThrowing() {
		return Null
	}
	if p.IsNullPointer() {
		return n.Default.Eval(ctx)
	}
	if s, ok := p.Ref.(slot); ok {
		return s.Get()
	}
	return p
}
