package ast

import "github.com/dascript-lang/dascript/internal/types"

// This file mirrors the teacher's internal/ast/test_helpers.go: small
// constructor functions so tests (and internal/infer, internal/simulate
// fixtures) can build trees without verbose struct literals. Positions are
// left zero-valued; none of the consumers in this module care.

func Int(v int32) *IntConst       { return &IntConst{Value: v} }
func UInt(v uint32) *UIntConst    { return &UIntConst{Value: v} }
func Int64(v int64) *Int64Const   { return &Int64Const{Value: v} }
func Float(v float32) *FloatConst { return &FloatConst{Value: v} }
func Double(v float64) *DoubleConst { return &DoubleConst{Value: v} }
func Str(v string) *StringConst   { return &StringConst{Value: v} }
func Bool(v bool) *BoolConst      { return &BoolConst{Value: v} }
func Null() *PtrConst             { return &PtrConst{} }

func Var(name string) *VariableRef { return &VariableRef{Name: name} }

func BinOp(op string, l, r Expression) *BinaryOp {
	return &BinaryOp{Op: op, Left: l, Right: r}
}

func UnOp(op string, operand Expression) *UnaryOp {
	return &UnaryOp{Op: op, Operand: operand}
}

func Blk(stmts ...Statement) *Block {
	return &Block{Statements: stmts}
}

func BlkValue(stmts ...Statement) *Block {
	return &Block{Statements: stmts, ReturnsValue: true}
}

func LetOne(name string, t *types.TypeDecl, init Expression) *Let {
	v := NewVariable(name, t)
	v.Initializer = init
	return &Let{Vars: []*Variable{v}}
}

func Ret(e Expression) *Return { return &Return{Operand: e} }

func If1(cond, then Expression) *If { return &If{Cond: cond, Then: then} }
func IfElse(cond, then, els Expression) *If { return &If{Cond: cond, Then: then, Else: els} }

func Call1(name string, args ...Expression) *Call {
	return &Call{Name: name, Args: args}
}

func Field(operand Expression, name string) *FieldExpr {
	return &FieldExpr{Operand: operand, Field: name}
}

func Index(operand, index Expression) *IndexExpr {
	return &IndexExpr{Operand: operand, Index: index}
}

func AssertCond(cond Expression, msg ...string) *Assert {
	a := &Assert{Cond: cond}
	if len(msg) > 0 {
		a.Message = Str(msg[0])
	}
	return a
}

func NewFunc(name string, result *types.TypeDecl, body Expression, args ...*Variable) *Function {
	return &Function{Name: name, Result: result, Body: body, Arguments: args}
}

func Arg(name string, t *types.TypeDecl) *Variable {
	v := NewVariable(name, t)
	v.IsArgument = true
	return v
}
