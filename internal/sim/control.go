package sim

// IfNode evaluates Cond, then Then or (if present) Else (spec §4.2). A
// nil Else with a false Cond is a no-op yielding Null, matching a
// statement-form if with no value.
type IfNode struct {
	Cond, Then, Else SimNode
}

func (n *IfNode) Eval(ctx *Context) Register {
	c := n.Cond.Eval(ctx)
	if ctx.IsThrowing() {
		return Null
	}
	if c.Bool() {
		return n.Then.Eval(ctx)
	}
	if n.Else != nil {
		return n.Else.Eval(ctx)
	}
	return Null
}

// WhileNode re-evaluates Cond before every iteration, clearing
// stop_for_continue at each boundary and stopping on stop_for_break
// (spec §4.4's control-flow containment: a loop absorbs break/continue
// raised by its own body, but lets return/throw propagate past it).
type WhileNode struct {
	Cond, Body SimNode
}

func (n *WhileNode) Eval(ctx *Context) Register {
	for {
		c := n.Cond.Eval(ctx)
		if ctx.IsThrowing() {
			return Null
		}
		if !c.Bool() {
			return Null
		}
		n.Body.Eval(ctx)
		if ctx.IsReturning() || ctx.IsThrowing() {
			return Null
		}
		if ctx.IsBreaking() {
			ctx.ClearBreak()
			return Null
		}
		ctx.ClearContinue()
	}
}

// Iterator is the runtime shape of a for-loop source (spec §4.4): First
// seeds the loop variable's initial value, Next advances to the
// following one and reports whether an element was produced, Close
// releases any source-specific resources (handle iterators only;
// fixed-dim/array/table/range iterators have nothing to release).
type Iterator interface {
	First(ctx *Context) (Register, bool)
	Next(ctx *Context) (Register, bool)
	Close(ctx *Context)
}

// ForNode drives 1..ast.MaxForSources parallel Iterators in lockstep,
// stopping as soon as any source is exhausted (spec §8 property 8: "the
// loop runs for min(source lengths)"; a lone fixed-dim source is its own
// bound since its length is static).
type ForNode struct {
	Sources []Iterator
	Vars    []LValue
	Body    SimNode
}

func (n *ForNode) Eval(ctx *Context) Register {
	defer func() {
		for _, it := range n.Sources {
			it.Close(ctx)
		}
	}()

	values := make([]Register, len(n.Sources))
	for i, it := range n.Sources {
		v, ok := it.First(ctx)
		if ctx.IsThrowing() {
			return Null
		}
		if !ok {
			return Null
		}
		values[i] = v
	}

	for {
		for i, v := range values {
			n.Vars[i].Set(ctx, v)
		}
		n.Body.Eval(ctx)
		if ctx.IsReturning() || ctx.IsThrowing() {
			return Null
		}
		if ctx.IsBreaking() {
			ctx.ClearBreak()
			return Null
		}
		ctx.ClearContinue()

		for i, it := range n.Sources {
			v, ok := it.Next(ctx)
			if ctx.IsThrowing() {
				return Null
			}
			if !ok {
				return Null
			}
			values[i] = v
		}
	}
}

// LetNode evaluates every variable's initializer in order and stores it
// through Slot (spec §4.2); a nil initializer leaves the slot at its
// already-zeroed Register (frame locals start zero, spec §4.4's
// prologue).
type LetNode struct {
	Vars  []LValue
	Inits []SimNode // parallel to Vars; nil entry means no initializer
}

func (n *LetNode) Eval(ctx *Context) Register {
	for i, init := range n.Inits {
		if init == nil {
			continue
		}
		v := init.Eval(ctx)
		if ctx.IsThrowing() {
			return Null
		}
		n.Vars[i].Set(ctx, v)
	}
	return Null
}

// BlockNode evaluates Statements in order, stopping immediately if any
// statement raises a stop flag (spec §8 property 5, control-flow
// containment: the block itself does not absorb break/continue/return/
// throw, it only stops iterating its own children). If ReturnsValue, the
// last statement's result becomes the block's own result.
type BlockNode struct {
	Statements   []SimNode
	ReturnsValue bool
}

func (n *BlockNode) Eval(ctx *Context) Register {
	var last Register
	for _, stmt := range n.Statements {
		last = stmt.Eval(ctx)
		if ctx.Stop.Any() {
			return Null
		}
	}
	if n.ReturnsValue {
		return last
	}
	return Null
}

// ReturnNode evaluates Operand (if any), stores it as the current
// frame's result, and raises stop_for_return (spec §4.4).
type ReturnNode struct {
	Operand SimNode // nil for a void return
}

func (n *ReturnNode) Eval(ctx *Context) Register {
	var v Register
	if n.Operand != nil {
		v = n.Operand.Eval(ctx)
		if ctx.IsThrowing() {
			return Null
		}
	}
	if f := ctx.Stack.Top(); f != nil {
		f.Result = v
	}
	ctx.SetReturn()
	return Null
}

// BreakNode raises stop_for_break; the nearest enclosing WhileNode or
// ForNode clears it (spec §4.4).
type BreakNode struct{}

func (BreakNode) Eval(ctx *Context) Register { ctx.SetBreak(); return Null }

// ContinueNode raises stop_for_continue.
type ContinueNode struct{}

func (ContinueNode) Eval(ctx *Context) Register { ctx.SetContinue(); return Null }

// TryCatchNode evaluates Try; if it left stop_for_throw set, the throw
// is cleared, the exception message is bound through CatchVar (if
// present), and Catch runs (spec §4.4, §7: try/catch intercepts throws
// only — break/return/continue already propagated past Try untouched
// since those flags are distinct bits the catch below never clears).
type TryCatchNode struct {
	Try, Catch SimNode
	CatchVar   LValue // nil if the catch clause doesn't bind the message
}

func (n *TryCatchNode) Eval(ctx *Context) Register {
	result := n.Try.Eval(ctx)
	if !ctx.IsThrowing() {
		return result
	}
	msg := ctx.LastException
	ctx.ClearThrow()
	if n.CatchVar != nil {
		n.CatchVar.Set(ctx, StringRegister(msg))
	}
	return n.Catch.Eval(ctx)
}
