package infer

import (
	"github.com/dascript-lang/dascript/internal/ast"
	"github.com/dascript-lang/dascript/internal/errcat"
	"github.com/dascript-lang/dascript/internal/types"
)

func (c *ctx) inferCall(n *ast.Call) ast.Expression {
	argTypes := make([]*types.TypeDecl, len(n.Args))
	argIsRef := make([]bool, len(n.Args))
	for i, a := range n.Args {
		n.Args[i] = c.infer(a)
		t := n.Args[i].GetType()
		if t == nil {
			return n
		}
		argTypes[i] = t
		argIsRef[i] = t.Ref
	}

	candidates, ok := c.lib.FindOverloads(n.Module, n.Name)
	if !ok {
		c.errorf(n.At, errcat.KindModuleNotFound, errcat.MsgModuleNotFound, n.Module)
		return n
	}
	res := ResolveOverload(candidates, argTypes, argIsRef)
	if res.Chosen == nil {
		reportOverloadFailure(c, n.At, n.Name, argTypes, res)
		return n
	}
	n.Resolved = res.Chosen
	for i, slot := range res.Chosen.Arguments {
		if i >= len(n.Args) {
			break
		}
		if !slot.Decl.Ref {
			n.Args[i] = maybeDeref(n.Args[i], false)
		}
	}
	n.SetType(res.Chosen.Result.AsValue())
	return n
}

// inferMakeBlock type-checks a block literal's body in a fresh scope that
// sees the block's own parameters plus the enclosing scope (blocks close
// over their defining context, spec §4.4 "Blocks").
func (c *ctx) inferMakeBlock(n *ast.MakeBlock) ast.Expression {
	c.pushScope()
	for _, p := range n.Params {
		c.declare(p)
	}
	c.blockValueDepth++
	n.Body = c.infer(n.Body)
	c.blockValueDepth--
	c.popScope()

	bodyT := n.Body.GetType()
	if bodyT == nil {
		return n
	}
	argTypes := make([]*types.TypeDecl, len(n.Params))
	for i, p := range n.Params {
		argTypes[i] = p.Decl
	}
	n.SetType(types.NewBlockType(bodyT.AsValue(), argTypes...))
	return n
}

func (c *ctx) inferInvoke(n *ast.Invoke) ast.Expression {
	n.Block = c.infer(n.Block)
	blockT := n.Block.GetType()
	if blockT == nil {
		return n
	}
	if blockT.AsValue().Base != types.TBlock && blockT.AsValue().Base != types.TFunction && blockT.AsValue().Base != types.TLambda {
		c.errorf(n.At, errcat.KindInvalidType, errcat.MsgTypeMismatch, "block", blockT.MangledName())
		return n
	}
	if len(n.Args) != len(blockT.ArgTypes) {
		c.errorf(n.At, errcat.KindNoMatchingFunction, errcat.MsgNoMatchingFunction, "invoke", FormatArgTypes(blockT.ArgTypes))
		return n
	}
	for i, a := range n.Args {
		n.Args[i] = c.infer(a)
		at := n.Args[i].GetType()
		if at == nil {
			return n
		}
		if !types.IsSame(at.AsValue(), blockT.ArgTypes[i].AsValue(), false, false) {
			c.errorf(n.At, errcat.KindInvalidType, errcat.MsgTypeMismatch, blockT.ArgTypes[i].MangledName(), at.MangledName())
			return n
		}
		if !blockT.ArgTypes[i].Ref {
			n.Args[i] = maybeDeref(n.Args[i], false)
		}
	}
	n.SetType(blockT.FirstType.AsValue())
	return n
}
