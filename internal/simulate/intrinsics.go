package simulate

import (
	"fmt"

	"github.com/dascript-lang/dascript/internal/ast"
	"github.com/dascript-lang/dascript/internal/sim"
)

// stringLiteral extracts the literal text of an expression that inference
// requires to be a *ast.StringConst (Assert's Message, Debug's Label);
// a nil expression yields ("", nil).
func stringLiteral(e ast.Expression) (string, error) {
	if e == nil {
		return "", nil
	}
	sc, ok := e.(*ast.StringConst)
	if !ok {
		return "", fmt.Errorf("expected a string constant, got %T", e)
	}
	return sc.Value, nil
}

func (fr *frame) lowerAssert(n *ast.Assert) (sim.SimNode, error) {
	cond, err := fr.lower(n.Cond)
	if err != nil {
		return nil, err
	}
	msg, err := stringLiteral(n.Message)
	if err != nil {
		return nil, err
	}
	return &sim.AssertNode{Cond: cond, Message: msg}, nil
}

func (fr *frame) lowerDebug(n *ast.Debug) (sim.SimNode, error) {
	operand, err := fr.lower(n.Operand)
	if err != nil {
		return nil, err
	}
	label, err := stringLiteral(n.Label)
	if err != nil {
		return nil, err
	}
	return &sim.DebugNode{Operand: operand, Label: label, Type: n.Operand.GetType()}, nil
}

func (fr *frame) lowerArrayPush(n *ast.ArrayPush) (sim.SimNode, error) {
	array, err := fr.lower(n.Array)
	if err != nil {
		return nil, err
	}
	value, err := fr.lower(n.Value)
	if err != nil {
		return nil, err
	}
	index, err := fr.lower(n.Index)
	if err != nil {
		return nil, err
	}
	return &sim.ArrayPushNode{Array: array, Value: value, Index: index}, nil
}
