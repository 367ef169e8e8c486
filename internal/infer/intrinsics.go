package infer

import (
	"github.com/dascript-lang/dascript/internal/ast"
	"github.com/dascript-lang/dascript/internal/errcat"
	"github.com/dascript-lang/dascript/internal/types"
)

// inferNew validates `new T` per SPEC_FULL.md's decided Open Question:
// T must be a structure or handle type, never a primitive (new is not
// supported for primitives).
func (c *ctx) inferNew(n *ast.New) ast.Expression {
	t := n.Target
	if t == nil {
		c.errorf(n.At, errcat.KindInvalidType, errcat.MsgNewRequiresStructOrHandle, "void")
		return n
	}
	if t.Ref || len(t.Dim) > 0 {
		c.errorf(n.At, errcat.KindInvalidType, errcat.MsgNewRequiresStructOrHandle, t.MangledName())
		return n
	}
	switch t.Base {
	case types.TStructure, types.THandle:
		n.SetType(types.NewPointerTo(t))
		return n
	default:
		c.errorf(n.At, errcat.KindInvalidType, errcat.MsgNewNotSupportedOnPrimitive)
		return n
	}
}

func (c *ctx) inferSizeof(n *ast.Sizeof) ast.Expression {
	n.Operand = c.infer(n.Operand)
	if n.Operand.GetType() == nil {
		return n
	}
	n.SetType(types.NewPrimitive(types.TUInt32))
	return n
}

func (c *ctx) inferAssert(n *ast.Assert) ast.Expression {
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
	if n.Message != nil {
		if _, ok := n.Message.(*ast.StringConst); !ok {
			c.errorf(n.At, errcat.KindInvalidType, errcat.MsgMessageMustBeConstant)
			return n
		}
		n.Message.SetType(types.NewPrimitive(types.TString))
	}
	n.SetType(types.NewPrimitive(types.TVoid))
	return n
}

func (c *ctx) inferDebug(n *ast.Debug) ast.Expression {
	n.Operand = c.infer(n.Operand)
	if n.Operand.GetType() == nil {
		return n
	}
	if n.Label != nil {
		if _, ok := n.Label.(*ast.StringConst); !ok {
			c.errorf(n.At, errcat.KindInvalidType, errcat.MsgMessageMustBeConstant)
			return n
		}
		n.Label.SetType(types.NewPrimitive(types.TString))
	}
	n.SetType(types.NewPrimitive(types.TVoid))
	return n
}

func (c *ctx) inferHash(n *ast.Hash) ast.Expression {
	n.Operand = c.infer(n.Operand)
	if n.Operand.GetType() == nil {
		return n
	}
	n.SetType(types.NewPrimitive(types.TUInt64))
	return n
}

func (c *ctx) inferArrayPush(n *ast.ArrayPush) ast.Expression {
	n.Array = c.infer(n.Array)
	n.Value = c.infer(n.Value)
	arrT := n.Array.GetType()
	valT := n.Value.GetType()
	if arrT == nil || valT == nil {
		return n
	}
	if arrT.AsValue().Base != types.TArray {
		c.errorf(n.At, errcat.KindInvalidType, errcat.MsgNotIndexable, arrT.MangledName())
		return n
	}
	if arrT.Constant {
		c.errorf(n.At, errcat.KindConstnessViolation, errcat.MsgConstnessViolation)
		return n
	}
	if !types.IsSame(arrT.FirstType.AsValue(), valT.AsValue(), false, false) {
		c.errorf(n.At, errcat.KindInvalidType, errcat.MsgTypeMismatch, arrT.FirstType.MangledName(), valT.MangledName())
		return n
	}
	n.Value = maybeDeref(n.Value, false)
	if n.Index != nil {
		n.Index = c.infer(n.Index)
		idxT := n.Index.GetType()
		if idxT == nil {
			return n
		}
		if !idxT.AsValue().Base.IndexKind() {
			c.errorf(n.At, errcat.KindIndexFailure, errcat.MsgBadIndexType, idxT.MangledName())
			return n
		}
		n.Index = maybeDeref(n.Index, false)
	}
	n.SetType(types.NewPrimitive(types.TVoid))
	return n
}

func (c *ctx) inferErase(n *ast.Erase) ast.Expression {
	n.Container = c.infer(n.Container)
	n.Key = c.infer(n.Key)
	contT := n.Container.GetType()
	keyT := n.Key.GetType()
	if contT == nil || keyT == nil {
		return n
	}
	if contT.Constant {
		c.errorf(n.At, errcat.KindConstnessViolation, errcat.MsgConstnessViolation)
		return n
	}
	switch contT.AsValue().Base {
	case types.TArray:
		n.OnTable = false
		if !keyT.AsValue().Base.IndexKind() {
			c.errorf(n.At, errcat.KindIndexFailure, errcat.MsgBadIndexType, keyT.MangledName())
			return n
		}
		n.Key = maybeDeref(n.Key, false)
		n.SetType(types.NewPrimitive(types.TVoid))
		return n
	case types.TTable:
		n.OnTable = true
		if !types.IsSame(keyT.AsValue(), contT.FirstType.AsValue(), false, false) {
			c.errorf(n.At, errcat.KindInvalidType, errcat.MsgTypeMismatch, contT.FirstType.MangledName(), keyT.MangledName())
			return n
		}
		n.Key = maybeDeref(n.Key, false)
		n.SetType(types.NewPrimitive(types.TBool))
		return n
	default:
		c.errorf(n.At, errcat.KindInvalidType, errcat.MsgNotIndexable, contT.MangledName())
		return n
	}
}

// inferFind implements find(table, key) → pointer to value, or null.
// Arrays are rejected: SPEC_FULL.md's decided Open Question removes
// array find entirely, leaving table find as the only supported form.
func (c *ctx) inferFind(n *ast.Find) ast.Expression {
	n.Container = c.infer(n.Container)
	n.Key = c.infer(n.Key)
	contT := n.Container.GetType()
	keyT := n.Key.GetType()
	if contT == nil || keyT == nil {
		return n
	}
	if contT.AsValue().Base == types.TArray {
		c.errorf(n.At, errcat.KindUnsafeOperation, errcat.MsgFindNotSupportedOnArray)
		return n
	}
	if contT.AsValue().Base != types.TTable {
		c.errorf(n.At, errcat.KindInvalidType, errcat.MsgNotIndexable, contT.MangledName())
		return n
	}
	if !types.IsSame(keyT.AsValue(), contT.FirstType.AsValue(), false, false) {
		c.errorf(n.At, errcat.KindInvalidType, errcat.MsgTypeMismatch, contT.FirstType.MangledName(), keyT.MangledName())
		return n
	}
	n.Key = maybeDeref(n.Key, false)
	result := types.NewPointerTo(contT.SecondType)
	result.Constant = contT.Constant
	n.SetType(result)
	return n
}

func (c *ctx) inferTableKeys(n *ast.TableKeys) ast.Expression {
	n.Table = c.infer(n.Table)
	t := n.Table.GetType()
	if t == nil {
		return n
	}
	if t.AsValue().Base != types.TTable {
		c.errorf(n.At, errcat.KindInvalidType, errcat.MsgNotIndexable, t.MangledName())
		return n
	}
	n.SetType(types.NewArrayOf(t.FirstType))
	return n
}

func (c *ctx) inferTableValues(n *ast.TableValues) ast.Expression {
	n.Table = c.infer(n.Table)
	t := n.Table.GetType()
	if t == nil {
		return n
	}
	if t.AsValue().Base != types.TTable {
		c.errorf(n.At, errcat.KindInvalidType, errcat.MsgNotIndexable, t.MangledName())
		return n
	}
	n.SetType(types.NewArrayOf(t.SecondType))
	return n
}
