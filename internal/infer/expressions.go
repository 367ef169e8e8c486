package infer

import (
	"github.com/dascript-lang/dascript/internal/ast"
	"github.com/dascript-lang/dascript/internal/errcat"
	"github.com/dascript-lang/dascript/internal/types"
)

func (c *ctx) inferEnumConst(n *ast.EnumConst) ast.Expression {
	e, v, ok := c.lib.FindEnumConst("", n.Name)
	if !ok {
		c.errorf(n.At, errcat.KindNameNotFound, errcat.MsgNameNotFound, n.Name)
		return n
	}
	n.Value = v
	n.SetType(types.NewEnumerationType(e))
	return n
}

func (c *ctx) inferVariableRef(n *ast.VariableRef) ast.Expression {
	if v, ok := c.lookupLocal(n.Name); ok {
		n.Variable = v
		n.SetType(v.Decl.AsRef())
		return n
	}
	if v, ok := c.lib.FindGlobal("", n.Name); ok {
		n.Variable = v
		n.SetType(v.Decl.AsRef())
		return n
	}
	c.errorf(n.At, errcat.KindNameNotFound, errcat.MsgNameNotFound, n.Name)
	return n
}

func (c *ctx) inferField(n *ast.FieldExpr) ast.Expression {
	n.Operand = c.infer(n.Operand)
	opT := n.Operand.GetType()
	if opT == nil {
		return n
	}
	// auto-dereference a pointer operand (spec §4.2 "Field access")
	base := opT
	isConst := opT.Constant
	if opT.Base == types.TPointer {
		if opT.FirstType == nil || opT.FirstType.IsVoid() {
			c.errorf(n.At, errcat.KindDereferenceFailure, errcat.MsgNotAStructureOrHandle, opT.MangledName())
			return n
		}
		n.Operand = &ast.Ptr2Ref{Operand: n.Operand}
		n.Operand.SetType(opT.FirstType.AsRef())
		if opT.Constant {
			n.Operand.GetType().Constant = true
		}
		base = opT.FirstType
		isConst = isConst || opT.Constant
	}

	switch base.Base {
	case types.TStructure:
		f, ok := base.StructType.Field(n.Field)
		if !ok {
			c.errorf(n.At, errcat.KindFieldFailure, errcat.MsgFieldNotFound, n.Field, base.MangledName())
			return n
		}
		ft := f.Type.AsRef()
		ft.Constant = ft.Constant || isConst
		n.SetType(ft)
		return n
	case types.THandle:
		c.errorf(n.At, errcat.KindFieldFailure, errcat.MsgFieldNotFound, n.Field, base.MangledName())
		return n
	default:
		c.errorf(n.At, errcat.KindFieldFailure, errcat.MsgNotAStructureOrHandle, base.MangledName())
		return n
	}
}

func (c *ctx) inferSafeField(n *ast.SafeFieldExpr) ast.Expression {
	n.Operand = c.infer(n.Operand)
	opT := n.Operand.GetType()
	if opT == nil {
		return n
	}
	if opT.Base != types.TPointer || opT.FirstType == nil {
		c.errorf(n.At, errcat.KindDereferenceFailure, errcat.MsgNotAStructureOrHandle, opT.MangledName())
		return n
	}
	pointee := opT.FirstType
	if pointee.Base != types.TStructure {
		c.errorf(n.At, errcat.KindFieldFailure, errcat.MsgNotAStructureOrHandle, pointee.MangledName())
		return n
	}
	f, ok := pointee.StructType.Field(n.Field)
	if !ok {
		c.errorf(n.At, errcat.KindFieldFailure, errcat.MsgFieldNotFound, n.Field, pointee.MangledName())
		return n
	}
	resultPtr := types.NewPointerTo(f.Type)
	resultPtr.Constant = opT.Constant
	n.SetType(resultPtr)
	return n
}

func (c *ctx) inferIndex(n *ast.IndexExpr) ast.Expression {
	n.Operand = c.infer(n.Operand)
	n.Index = c.infer(n.Index)
	opT := n.Operand.GetType()
	idxT := n.Index.GetType()
	if opT == nil || idxT == nil {
		return n
	}

	if len(opT.Dim) > 0 {
		n.Kind = ast.IndexFixedDim
		if !idxT.AsValue().Base.IndexKind() {
			c.errorf(n.At, errcat.KindIndexFailure, errcat.MsgBadIndexType, idxT.MangledName())
			return n
		}
		n.Index = maybeDeref(n.Index, false)
		elem := opT.ElementType().AsRef()
		elem.Constant = elem.Constant || opT.Constant
		n.SetType(elem)
		return n
	}

	switch opT.Base {
	case types.TArray:
		n.Kind = ast.IndexGoodArray
		if !idxT.AsValue().Base.IndexKind() {
			c.errorf(n.At, errcat.KindIndexFailure, errcat.MsgBadIndexType, idxT.MangledName())
			return n
		}
		n.Index = maybeDeref(n.Index, false)
		elem := opT.FirstType.AsRef()
		elem.Constant = elem.Constant || opT.Constant
		n.SetType(elem)
		return n
	case types.TTable:
		n.Kind = ast.IndexGoodTable
		if !types.IsSame(idxT.AsValue(), opT.FirstType.AsValue(), false, false) {
			c.errorf(n.At, errcat.KindIndexFailure, errcat.MsgBadIndexType, idxT.MangledName())
			return n
		}
		n.Index = maybeDeref(n.Index, false)
		val := opT.SecondType.AsRef()
		val.Constant = val.Constant || opT.Constant
		n.SetType(val)
		return n
	case types.THandle:
		n.Kind = ast.IndexHandle
		ih, ok := opT.Annotation.(types.IndexableHandle)
		if !ok {
			c.errorf(n.At, errcat.KindIndexFailure, errcat.MsgNotIndexable, opT.MangledName())
			return n
		}
		elem := ih.ElementType(idxT.Base)
		if elem == nil {
			c.errorf(n.At, errcat.KindIndexFailure, errcat.MsgNotIndexable, opT.MangledName())
			return n
		}
		n.SetType(elem.AsRef())
		return n
	default:
		c.errorf(n.At, errcat.KindIndexFailure, errcat.MsgNotIndexable, opT.MangledName())
		return n
	}
}

func (c *ctx) inferRef2Value(n *ast.Ref2Value) ast.Expression {
	n.Operand = c.infer(n.Operand)
	t := n.Operand.GetType()
	if t == nil {
		return n
	}
	if !t.Ref || !isSimpleScalar(t) {
		c.errorf(n.At, errcat.KindDereferenceFailure, errcat.MsgNotAStructureOrHandle, t.MangledName())
		return n
	}
	n.SetType(t.AsValue())
	return n
}

func (c *ctx) inferPtr2Ref(n *ast.Ptr2Ref) ast.Expression {
	n.Operand = c.infer(n.Operand)
	t := n.Operand.GetType()
	if t == nil {
		return n
	}
	if t.AsValue().Base != types.TPointer || t.FirstType == nil || t.FirstType.IsVoid() {
		c.errorf(n.At, errcat.KindDereferenceFailure, errcat.MsgNotAStructureOrHandle, t.MangledName())
		return n
	}
	result := t.FirstType.AsRef()
	result.Constant = result.Constant || t.Constant
	n.SetType(result)
	return n
}

func (c *ctx) inferNullCoalescing(n *ast.NullCoalescing) ast.Expression {
	n.Pointer = c.infer(n.Pointer)
	n.Default = c.infer(n.Default)
	pt := n.Pointer.GetType()
	dt := n.Default.GetType()
	if pt == nil || dt == nil {
		return n
	}
	if pt.AsValue().Base != types.TPointer || pt.FirstType == nil {
		c.errorf(n.At, errcat.KindDereferenceFailure, errcat.MsgNotAStructureOrHandle, pt.MangledName())
		return n
	}
	pointee := pt.FirstType
	if !types.IsSame(pointee.AsValue(), dt.AsValue(), false, false) {
		c.errorf(n.At, errcat.KindInvalidType, errcat.MsgTypeMismatch, pointee.MangledName(), dt.MangledName())
		return n
	}
	if dt.Constant && !pointee.Constant {
		c.errorf(n.At, errcat.KindConstnessViolation, errcat.MsgConstnessViolation)
		return n
	}
	result := pointee.AsValue()
	result.Constant = pointee.Constant || dt.Constant
	n.SetType(result)
	return n
}
