package simulate

import (
	"fmt"

	"github.com/dascript-lang/dascript/internal/ast"
	"github.com/dascript-lang/dascript/internal/sim"
)

func (fr *frame) lowerCall(n *ast.Call) (sim.SimNode, error) {
	if n.Resolved == nil {
		return nil, fmt.Errorf("call to %q was not resolved to an overload", n.Name)
	}
	args, err := fr.lowerMany(n.Args)
	if err != nil {
		return nil, err
	}
	if n.Resolved.BuiltIn {
		native, err := fr.nativeFor(n.Resolved)
		if err != nil {
			return nil, err
		}
		return &sim.CallNode{Args: args, Native: native}, nil
	}
	idx, ok := fr.funcIndex[n.Resolved.Mangled()]
	if !ok {
		return nil, fmt.Errorf("no compiled entry for function %s", n.Resolved.Mangled())
	}
	return &sim.CallNode{Args: args, FnIdx: idx}, nil
}

func (fr *frame) lowerUnary(n *ast.UnaryOp) (sim.SimNode, error) {
	if n.Resolved == nil {
		return nil, fmt.Errorf("unary operator %q was not resolved to an overload", n.Op)
	}
	operand, err := fr.lower(n.Operand)
	if err != nil {
		return nil, err
	}
	native, err := fr.nativeFor(n.Resolved)
	if err != nil {
		return nil, err
	}
	return &sim.UnaryOpNode{Operand: operand, Native: native}, nil
}

func (fr *frame) lowerBinary(n *ast.BinaryOp) (sim.SimNode, error) {
	if n.Resolved == nil {
		return nil, fmt.Errorf("binary operator %q was not resolved to an overload", n.Op)
	}
	left, err := fr.lower(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := fr.lower(n.Right)
	if err != nil {
		return nil, err
	}
	native, err := fr.nativeFor(n.Resolved)
	if err != nil {
		return nil, err
	}
	return &sim.BinaryOpNode{Left: left, Right: right, Native: native}, nil
}

// lowerMakeBlock lowers a block body against a child frame that shares
// the enclosing function's locals map and slot counter by reference
// (sim.MakeBlockNode captures the live *Frame, spec §4.4 "Blocks") but
// gets its own argument bindings for the block's own parameters — those
// resolve through ArgRef, which sim.InvokeNode services by temporarily
// swapping the captured frame's Argv for the call's arguments.
//
// A consequence of that swap: the enclosing function's own arguments are
// not visible from inside a nested block, since Argv no longer holds
// them while the block runs. A function that needs to expose a parameter
// to a block it creates must first bind it to a local with `let`, which
// is shared storage and stays visible.
func (fr *frame) lowerMakeBlock(n *ast.MakeBlock) (sim.SimNode, error) {
	child := &frame{
		lowering: fr.lowering,
		fn:       fr.fn,
		args:     map[*ast.Variable]int{},
		locals:   fr.locals,
		nextSlot: fr.nextSlot,
	}
	for i, p := range n.Params {
		child.args[p] = i
	}
	body, err := child.lower(n.Body)
	if err != nil {
		return nil, err
	}
	fr.nextSlot = child.nextSlot
	return &sim.MakeBlockNode{Body: body}, nil
}

func (fr *frame) lowerInvoke(n *ast.Invoke) (sim.SimNode, error) {
	block, err := fr.lower(n.Block)
	if err != nil {
		return nil, err
	}
	args, err := fr.lowerMany(n.Args)
	if err != nil {
		return nil, err
	}
	return &sim.InvokeNode{Block: block, Args: args}, nil
}
