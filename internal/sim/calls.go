package sim

import "github.com/dascript-lang/dascript/internal/errcat"

// CallNode evaluates its arguments left to right, short-circuiting on
// the first throw (spec §8 property 6), then dispatches either to a
// Native closure (built-in functions bypass the normal call prologue,
// spec §4.4 "Calls") or to a user-defined function's compiled entry via
// Context.Eval (which owns the push/pop of its own frame).
type CallNode struct {
	Args   []SimNode
	Native NativeFunc // non-nil for a built-in function
	FnIdx  int         // Program.Functions index, used when Native is nil
}

func (n *CallNode) Eval(ctx *Context) Register {
	argv := make([]Register, len(n.Args))
	for i, a := range n.Args {
		argv[i] = a.Eval(ctx)
		if ctx.IsThrowing() {
			return Null
		}
	}
	if n.Native != nil {
		return n.Native(ctx, argv)
	}
	return ctx.Eval(n.FnIdx, argv)
}

// MakeBlockNode captures the current frame by reference, producing a
// BlockValue a later InvokeNode can call (spec §4.4, "Blocks" — Go's
// native closure-by-reference used in place of the host's raw stack-base
// pointer, per BlockValue's doc comment).
type MakeBlockNode struct {
	Params []SimNode // unused at eval time; kept for symmetry/debug info
	Body   SimNode
}

func (n *MakeBlockNode) Eval(ctx *Context) Register {
	return Register{Ref: &BlockValue{Body: n.Body, Frame: ctx.Stack.Top()}}
}

// InvokeNode calls a block/function/lambda value (spec §4.4, "Invoke"):
// arguments are evaluated left to right with short-circuit on throw,
// then the block's body runs against the frame it was made in — not the
// caller's frame, so nested invokes can't see each other's locals by
// accident.
type InvokeNode struct {
	Block SimNode
	Args  []SimNode
}

func (n *InvokeNode) Eval(ctx *Context) Register {
	b := n.Block.Eval(ctx)
	if ctx.IsThrowing() {
		return Null
	}
	bv, ok := b.Ref.(*BlockValue)
	if !ok || bv == nil {
		return ctx.Throw2(errcat.MsgNullDereference)
	}

	argv := make([]Register, len(n.Args))
	for i, a := range n.Args {
		argv[i] = a.Eval(ctx)
		if ctx.IsThrowing() {
			return Null
		}
	}

	savedArgv := bv.Frame.Argv
	bv.Frame.Argv = argv
	savedOverride := ctx.Stack.swapTop(bv.Frame)
	ctx.Stop &^= StopForReturn
	result := bv.Body.Eval(ctx)
	if ctx.IsReturning() {
		result = bv.Frame.Result
	}
	ctx.ClearReturn()
	ctx.Stack.restoreTop(savedOverride)
	bv.Frame.Argv = savedArgv

	if ctx.IsThrowing() {
		return Null
	}
	return result
}
