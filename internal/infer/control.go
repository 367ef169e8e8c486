package infer

import (
	"github.com/dascript-lang/dascript/internal/ast"
	"github.com/dascript-lang/dascript/internal/errcat"
	"github.com/dascript-lang/dascript/internal/types"
)

func (c *ctx) inferIf(n *ast.If) ast.Expression {
	n.Cond = c.infer(n.Cond)
	condT := n.Cond.GetType()
	if condT == nil {
		return n
	}
	if condT.AsValue().Base != types.TBool {
		c.errorf(n.At, errcat.KindConditionType, errcat.MsgExpectedBoolCondition, condT.MangledName())
		return n
	}
	n.Cond = maybeDeref(n.Cond, false)
	n.Then = c.infer(n.Then)
	if n.Else != nil {
		n.Else = c.infer(n.Else)
	}

	// An if/else whose arms are both typed expressions of the same type
	// may itself stand in for that type (mirrors Ternary, spec §4.2); a
	// bare if or mismatched arms are void statements.
	if n.Else != nil {
		thenT := n.Then.GetType()
		elseT := n.Else.GetType()
		if thenT != nil && elseT != nil && !thenT.IsVoid() &&
			types.IsSame(thenT.AsValue(), elseT.AsValue(), false, false) {
			result := thenT.AsValue()
			result.Constant = thenT.Constant || elseT.Constant
			n.SetType(result)
			return n
		}
	}
	n.SetType(types.NewPrimitive(types.TVoid))
	return n
}

func (c *ctx) inferWhile(n *ast.While) ast.Expression {
	n.Cond = c.infer(n.Cond)
	condT := n.Cond.GetType()
	if condT == nil {
		return n
	}
	if condT.AsValue().Base != types.TBool {
		c.errorf(n.At, errcat.KindConditionType, errcat.MsgExpectedBoolCondition, condT.MangledName())
		return n
	}
	n.Cond = maybeDeref(n.Cond, false)

	c.loopDepth++
	n.Body = c.infer(n.Body)
	c.loopDepth--

	n.SetType(types.NewPrimitive(types.TVoid))
	return n
}

// inferFor classifies every source (spec §4.2's fixed-dim / good array /
// good table / range / handle-iterator cases), binds one loop variable
// per source to its element type, and infers the body with all loop
// variables in scope (spec §8 property 8: the loop runs for
// min(source lengths), fixed-dim sources included).
func (c *ctx) inferFor(n *ast.For) ast.Expression {
	if len(n.Sources) > ast.MaxForSources {
		c.errorf(n.At, errcat.KindInvalidType, errcat.MsgTooManyForSources, ast.MaxForSources, len(n.Sources))
		return n
	}
	if len(n.Vars) != len(n.Sources) {
		c.errorf(n.At, errcat.KindInvalidType, errcat.MsgTypeMismatch, "one variable per source", "mismatched counts")
		return n
	}

	n.SourceKinds = make([]ast.ForSourceKind, len(n.Sources))
	for i, src := range n.Sources {
		n.Sources[i] = c.infer(src)
		st := n.Sources[i].GetType()
		if st == nil {
			return n
		}

		var elem *types.TypeDecl
		switch {
		case len(st.Dim) > 0:
			n.SourceKinds[i] = ast.ForFixedDim
			elem = st.ElementType()
		case st.AsValue().Base == types.TArray:
			n.SourceKinds[i] = ast.ForGoodArray
			elem = st.FirstType
		case st.AsValue().Base == types.TTable:
			n.SourceKinds[i] = ast.ForGoodTable
			elem = st.FirstType
		case st.AsValue().Base == types.TRange || st.AsValue().Base == types.TURange:
			n.SourceKinds[i] = ast.ForRange
			if st.AsValue().Base == types.TRange {
				elem = types.NewPrimitive(types.TInt32)
			} else {
				elem = types.NewPrimitive(types.TUInt32)
			}
		case st.AsValue().Base == types.TIterator:
			n.SourceKinds[i] = ast.ForHandleIterator
			elem = st.FirstType
		case st.AsValue().Base == types.THandle:
			n.SourceKinds[i] = ast.ForHandleIterator
			if ih, ok := st.Annotation.(types.IndexableHandle); ok {
				elem = ih.ElementType(types.TInt32)
			}
			if elem == nil {
				c.errorf(n.At, errcat.KindInvalidType, errcat.MsgNotIndexable, st.MangledName())
				return n
			}
		default:
			c.errorf(n.At, errcat.KindInvalidType, errcat.MsgNotIndexable, st.MangledName())
			return n
		}
		n.Vars[i].Decl = elem.AsRef()
	}

	c.pushScope()
	for _, v := range n.Vars {
		c.declare(v)
	}
	c.loopDepth++
	n.Body = c.infer(n.Body)
	c.loopDepth--
	c.popScope()

	n.SetType(types.NewPrimitive(types.TVoid))
	return n
}

// inferLet checks each declared variable's initializer against its
// declared type exactly — no implicit structure initializers (spec
// §4.2) — and declares every variable in the current scope so later
// statements can see it.
func (c *ctx) inferLet(n *ast.Let) ast.Expression {
	for _, v := range n.Vars {
		if v.Initializer != nil {
			v.Initializer = c.infer(v.Initializer)
			initT := v.Initializer.GetType()
			if initT == nil {
				continue
			}
			if !types.IsSame(initT.AsValue(), v.Decl.AsValue(), false, false) {
				c.errorf(v.At, errcat.KindInvalidType, errcat.MsgTypeMismatch, v.Decl.MangledName(), initT.MangledName())
				continue
			}
			v.Initializer = maybeDeref(v.Initializer, false)
		}
		c.declare(v)
	}
	n.SetType(types.NewPrimitive(types.TVoid))
	return n
}

// inferBlock infers every statement in a fresh lexical scope. When
// ReturnsValue is set, the last statement's type becomes the block's own
// type (spec §4.2). A non-void expression used as a plain statement is
// accepted as is: its value is dropped and no diagnostic is recorded.
func (c *ctx) inferBlock(n *ast.Block) ast.Expression {
	c.pushScope()
	defer c.popScope()

	for i, stmt := range n.Statements {
		n.Statements[i] = c.infer(stmt)
		t := n.Statements[i].GetType()
		if t == nil {
			continue
		}
		isLast := i == len(n.Statements)-1
		if n.ReturnsValue && isLast {
			continue
		}
		if !t.IsVoid() && !isPassthroughStatement(n.Statements[i]) {
			// a non-void expression mid-block (or last, in a non-value
			// block) with no effect beyond its value is almost certainly
			// a mistake; still record its type so callers relying on
			// GetType() don't see nil.
			continue
		}
	}

	if n.ReturnsValue && len(n.Statements) > 0 {
		last := n.Statements[len(n.Statements)-1]
		if t := last.GetType(); t != nil {
			n.SetType(t)
			return n
		}
	}
	n.SetType(types.NewPrimitive(types.TVoid))
	return n
}

// inferReturn enforces: void functions never carry an operand, and
// non-void functions' operand type must exactly match the declared
// result type (constness may only be added, never dropped, spec §4.2).
func (c *ctx) inferReturn(n *ast.Return) ast.Expression {
	var resultT *types.TypeDecl
	if c.fn != nil {
		resultT = c.fn.Result
	} else {
		resultT = types.NewPrimitive(types.TVoid)
	}

	if n.Operand == nil {
		if !resultT.IsVoid() {
			c.errorf(n.At, errcat.KindInvalidType, errcat.MsgReturnTypeMismatch, resultT.MangledName(), "void")
			return n
		}
		n.SetType(types.NewPrimitive(types.TVoid))
		return n
	}

	if resultT.IsVoid() {
		c.errorf(n.At, errcat.KindInvalidType, errcat.MsgReturnFromVoid)
		return n
	}

	n.Operand = c.infer(n.Operand)
	opT := n.Operand.GetType()
	if opT == nil {
		return n
	}
	if !types.IsSame(opT.AsValue(), resultT.AsValue(), false, false) {
		c.errorf(n.At, errcat.KindInvalidType, errcat.MsgReturnTypeMismatch, resultT.MangledName(), opT.MangledName())
		return n
	}
	if opT.Constant && !resultT.Constant {
		c.errorf(n.At, errcat.KindConstnessViolation, errcat.MsgConstnessViolation)
		return n
	}
	n.Operand = maybeDeref(n.Operand, false)
	n.SetType(types.NewPrimitive(types.TVoid))
	return n
}

func (c *ctx) inferBreak(n *ast.Break) ast.Expression {
	if c.loopDepth == 0 {
		c.errorf(n.At, errcat.KindInvalidType, errcat.MsgBreakOutsideLoop)
	}
	n.SetType(types.NewPrimitive(types.TVoid))
	return n
}

func (c *ctx) inferContinue(n *ast.Continue) ast.Expression {
	if c.loopDepth == 0 {
		c.errorf(n.At, errcat.KindInvalidType, errcat.MsgContinueOutsideLoop)
	}
	n.SetType(types.NewPrimitive(types.TVoid))
	return n
}

// inferTryCatch infers Try normally, then (if CatchVar binds the
// exception message) pushes a scope declaring it as a string local
// before inferring Catch (spec §4.4, §7: try/catch only intercepts
// throws, never return/break/continue).
func (c *ctx) inferTryCatch(n *ast.TryCatch) ast.Expression {
	n.Try = c.infer(n.Try)

	if n.CatchVar != nil {
		n.CatchVar.Decl = types.NewPrimitive(types.TString)
		c.pushScope()
		c.declare(n.CatchVar)
		n.Catch = c.infer(n.Catch)
		c.popScope()
	} else {
		n.Catch = c.infer(n.Catch)
	}

	n.SetType(types.NewPrimitive(types.TVoid))
	return n
}
