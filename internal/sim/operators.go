package sim

import "github.com/dascript-lang/dascript/internal/types"

// NativeFunc is the runtime shape every built-in operator and function
// implementation has: a plain Go closure over already-evaluated argument
// Registers, free to call ctx.Throw on failure. internal/builtin
// registers one of these per Function.NativeKey(); internal/simulate
// resolves the key during lowering and hands the func value straight to
// the node below, so this package never needs to know internal/builtin
// exists (avoiding the import cycle documented on ast.Function.NativeKey).
type NativeFunc func(ctx *Context, args []Register) Register

// UnaryOpNode evaluates Operand then applies Native to it (spec §4.2's
// "operator resolves as a call to op<Op>").
type UnaryOpNode struct {
	Operand SimNode
	Native  NativeFunc
}

func (n *UnaryOpNode) Eval(ctx *Context) Register {
	a := n.Operand.Eval(ctx)
	if ctx.IsThrowing() {
		return Null
	}
	return n.Native(ctx, []Register{a})
}

// BinaryOpNode evaluates Left, then (unless Left's evaluation already
// threw) Right, then applies Native — left-to-right evaluation with
// short-circuit on throw (spec §8 property 6).
type BinaryOpNode struct {
	Left, Right SimNode
	Native      NativeFunc
}

func (n *BinaryOpNode) Eval(ctx *Context) Register {
	a := n.Left.Eval(ctx)
	if ctx.IsThrowing() {
		return Null
	}
	b := n.Right.Eval(ctx)
	if ctx.IsThrowing() {
		return Null
	}
	return n.Native(ctx, []Register{a, b})
}

// TernaryNode evaluates Cond, then only the taken branch (spec §4.2).
type TernaryNode struct {
	Cond, Then, Else SimNode
}

func (n *TernaryNode) Eval(ctx *Context) Register {
	c := n.Cond.Eval(ctx)
	if ctx.IsThrowing() {
		return Null
	}
	if c.Bool() {
		return n.Then.Eval(ctx)
	}
	return n.Else.Eval(ctx)
}

// CopyNode implements "=" (spec §4.2): the destination slot receives a
// value copy of the source — a deep copy for struct/array/table, a plain
// bit copy for scalars, matching CanCopy's by-value contract.
type CopyNode struct {
	Left  LValue
	Right SimNode
	Type  *types.TypeDecl
}

func (n *CopyNode) Eval(ctx *Context) Register {
	v := n.Right.Eval(ctx)
	if ctx.IsThrowing() {
		return Null
	}
	n.Left.Set(ctx, CopyValue(ctx, v, n.Type))
	return Register{}
}

// MoveNode implements "<-" (spec §4.2): the destination takes the
// source's value directly — no deep copy — and, when the source is
// itself addressable, the source slot is reset to its zero value so the
// transferred heap reference has exactly one owner afterward.
type MoveNode struct {
	Left  LValue
	Right SimNode
}

func (n *MoveNode) Eval(ctx *Context) Register {
	v := n.Right.Eval(ctx)
	if ctx.IsThrowing() {
		return Null
	}
	n.Left.Set(ctx, v)
	if src, ok := n.Right.(LValue); ok {
		src.Set(ctx, Register{})
	}
	return Register{}
}

// CopyValue implements the by-value copy policy CopyNode needs: scalars
// (and anything not carrying a heap-side Ref) are already copied by
// Go's own Register value semantics, structures/arrays/tables need their
// backing storage duplicated so the two sides don't alias (spec §4.1,
// "good array/table/structure are value types").
func CopyValue(ctx *Context, v Register, t *types.TypeDecl) Register {
	if t == nil {
		return v
	}
	switch vv := v.Ref.(type) {
	case *StructValue:
		fields := make([]Register, len(vv.Fields))
		for i, f := range vv.Fields {
			var ft *types.TypeDecl
			if i < len(vv.Decl.Fields) {
				ft = vv.Decl.Fields[i].Type
			}
			fields[i] = CopyValue(ctx, f, ft)
		}
		return Register{Ref: &StructValue{Decl: vv.Decl, Fields: fields}}
	case *ArrayValue:
		items := make([]Register, len(vv.Items))
		for i, it := range vv.Items {
			items[i] = CopyValue(ctx, it, vv.Elem)
		}
		return Register{Ref: &ArrayValue{Elem: vv.Elem, Items: items}}
	case *TableValue:
		dup := NewTableValue(vv.Key, vv.Value)
		for _, kk := range vv.order {
			e := vv.entries[kk]
			dup.Set(e.key, CopyValue(ctx, e.value, vv.Value))
		}
		return Register{Ref: dup}
	default:
		return v
	}
}
