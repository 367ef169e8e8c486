package infer

import (
	"github.com/dascript-lang/dascript/internal/ast"
	"github.com/dascript-lang/dascript/internal/errcat"
	"github.com/dascript-lang/dascript/internal/source"
	"github.com/dascript-lang/dascript/internal/types"
)

// unaryFuncName and binaryFuncName implement operators.go's documented
// convention: an operator resolves as a call to the built-in or user
// function named "op"+Op (e.g. Op "-" looks up "op-").
func unaryFuncName(op string) string  { return "op" + op }
func binaryFuncName(op string) string { return "op" + op }

func (c *ctx) inferUnary(n *ast.UnaryOp) ast.Expression {
	n.Operand = c.infer(n.Operand)
	opT := n.Operand.GetType()
	if opT == nil {
		return n
	}
	candidates, _ := c.lib.FindOverloads("", unaryFuncName(n.Op))
	res := ResolveOverload(candidates, []*types.TypeDecl{opT}, []bool{opT.Ref})
	if res.Chosen == nil {
		reportOverloadFailure(c, n.At, unaryFuncName(n.Op), []*types.TypeDecl{opT}, res)
		return n
	}
	n.Resolved = res.Chosen
	if !res.Chosen.Arguments[0].Decl.Ref {
		n.Operand = maybeDeref(n.Operand, false)
	}
	n.SetType(res.Chosen.Result.AsValue())
	return n
}

func (c *ctx) inferBinary(n *ast.BinaryOp) ast.Expression {
	n.Left = c.infer(n.Left)
	n.Right = c.infer(n.Right)
	lt := n.Left.GetType()
	rt := n.Right.GetType()
	if lt == nil || rt == nil {
		return n
	}
	candidates, _ := c.lib.FindOverloads("", binaryFuncName(n.Op))
	argTypes := []*types.TypeDecl{lt, rt}
	argIsRef := []bool{lt.Ref, rt.Ref}
	res := ResolveOverload(candidates, argTypes, argIsRef)
	if res.Chosen == nil {
		reportOverloadFailure(c, n.At, binaryFuncName(n.Op), argTypes, res)
		return n
	}
	n.Resolved = res.Chosen
	if !res.Chosen.Arguments[0].Decl.Ref {
		n.Left = maybeDeref(n.Left, false)
	}
	if !res.Chosen.Arguments[1].Decl.Ref {
		n.Right = maybeDeref(n.Right, false)
	}
	n.SetType(res.Chosen.Result.AsValue())
	return n
}

func (c *ctx) inferTernary(n *ast.Ternary) ast.Expression {
	n.Cond = c.infer(n.Cond)
	n.Then = c.infer(n.Then)
	n.Else = c.infer(n.Else)
	condT := n.Cond.GetType()
	thenT := n.Then.GetType()
	elseT := n.Else.GetType()
	if condT == nil || thenT == nil || elseT == nil {
		return n
	}
	if condT.AsValue().Base != types.TBool {
		c.errorf(n.At, errcat.KindConditionType, errcat.MsgExpectedBoolCondition, condT.MangledName())
		return n
	}
	n.Cond = maybeDeref(n.Cond, false)
	if !types.IsSame(thenT.AsValue(), elseT.AsValue(), false, false) {
		c.errorf(n.At, errcat.KindInvalidType, errcat.MsgTypeMismatch, thenT.MangledName(), elseT.MangledName())
		return n
	}
	thenIsRef := thenT.Ref
	elseIsRef := elseT.Ref
	if thenIsRef != elseIsRef {
		n.Then = maybeDeref(n.Then, false)
		n.Else = maybeDeref(n.Else, false)
		thenT = n.Then.GetType()
	}
	result := thenT.AsValue()
	result.Constant = thenT.Constant || elseT.Constant
	n.SetType(result)
	return n
}

func (c *ctx) inferCopy(n *ast.Copy) ast.Expression {
	n.Left = c.infer(n.Left)
	n.Right = c.infer(n.Right)
	lt := n.Left.GetType()
	rt := n.Right.GetType()
	if lt == nil || rt == nil {
		return n
	}
	if !lt.Ref && !lt.IsRef() {
		c.errorf(n.At, errcat.KindInvalidType, errcat.MsgAssignToNonReference, "=")
		return n
	}
	if lt.Constant {
		c.errorf(n.At, errcat.KindConstnessViolation, errcat.MsgConstnessViolation)
		return n
	}
	if !types.IsSame(lt.AsValue(), rt.AsValue(), false, false) {
		c.errorf(n.At, errcat.KindInvalidType, errcat.MsgTypeMismatch, lt.MangledName(), rt.MangledName())
		return n
	}
	if !lt.CanCopy() {
		c.errorf(n.At, errcat.KindNotCopyable, errcat.MsgTypeNotCopyable, lt.MangledName())
		return n
	}
	n.Right = maybeDeref(n.Right, false)
	n.SetType(types.NewPrimitive(types.TVoid))
	return n
}

func (c *ctx) inferMove(n *ast.Move) ast.Expression {
	n.Left = c.infer(n.Left)
	n.Right = c.infer(n.Right)
	lt := n.Left.GetType()
	rt := n.Right.GetType()
	if lt == nil || rt == nil {
		return n
	}
	if !lt.Ref && !lt.IsRef() {
		c.errorf(n.At, errcat.KindInvalidType, errcat.MsgAssignToNonReference, "<-")
		return n
	}
	if lt.Constant {
		c.errorf(n.At, errcat.KindConstnessViolation, errcat.MsgConstnessViolation)
		return n
	}
	if !types.IsSame(lt.AsValue(), rt.AsValue(), false, false) {
		c.errorf(n.At, errcat.KindInvalidType, errcat.MsgTypeMismatch, lt.MangledName(), rt.MangledName())
		return n
	}
	if !lt.CanMove() {
		c.errorf(n.At, errcat.KindNotMovable, errcat.MsgTypeNotMovable, lt.MangledName())
		return n
	}
	n.SetType(types.NewPrimitive(types.TVoid))
	return n
}

// reportOverloadFailure records the "no matching function" or "too many
// matching functions" diagnostic for an operator or call resolution
// failure (spec §4.2.1): zero survivors means no candidate matched, more
// than one means the call is genuinely ambiguous.
func reportOverloadFailure(c *ctx, at source.Position, name string, argTypes []*types.TypeDecl, res Resolution) {
	if len(res.Matches) == 0 {
		c.errorf(at, errcat.KindNoMatchingFunction, errcat.MsgNoMatchingFunction, name, FormatArgTypes(argTypes))
		return
	}
	c.errorf(at, errcat.KindTooManyMatchingFunctions, errcat.MsgTooManyMatchingFns, name, FormatArgTypes(argTypes), FormatCandidates(res.Matches))
}
