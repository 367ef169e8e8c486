package sim

import "github.com/dascript-lang/dascript/internal/errcat"

// LValue is implemented by every node whose storage can be written
// through: global/local variable slots, struct fields, and array/table
// elements. Copy, Move, and the ++/--/op= family (lowered by
// internal/simulate into a Get-then-Set pair) all go through this
// instead of a raw pointer, since Go has no address-of for arbitrary
// slice/map elements.
type LValue interface {
	SimNode
	Set(ctx *Context, v Register)
}

// GlobalRef reads/writes ctx.Globals[Index] (spec §4.3: "per global:
// value slot").
type GlobalRef struct {
	Index int
}

func (n *GlobalRef) Eval(ctx *Context) Register   { return ctx.Globals[n.Index] }
func (n *GlobalRef) Set(ctx *Context, v Register) { ctx.Globals[n.Index] = v }

// LocalRef reads/writes the current frame's Locals[Offset] (spec §4.4's
// prologue, generalized per-register instead of per-byte — see
// Frame's doc comment).
type LocalRef struct {
	Offset int
}

func (n *LocalRef) Eval(ctx *Context) Register {
	f := ctx.Stack.Top()
	if f == nil {
		return Null
	}
	return f.Locals[n.Offset]
}

func (n *LocalRef) Set(ctx *Context, v Register) {
	f := ctx.Stack.Top()
	if f == nil {
		return
	}
	f.Locals[n.Offset] = v
}

// ArgRef reads the current frame's incoming Argv[Index] — used for
// function/block parameters, which behave like locals but are populated
// by the caller rather than by a Let (spec §4.4, "Calls").
type ArgRef struct {
	Index int
}

func (n *ArgRef) Eval(ctx *Context) Register {
	f := ctx.Stack.Top()
	if f == nil || n.Index >= len(f.Argv) {
		return Null
	}
	return f.Argv[n.Index]
}

func (n *ArgRef) Set(ctx *Context, v Register) {
	f := ctx.Stack.Top()
	if f == nil || n.Index >= len(f.Argv) {
		return
	}
	f.Argv[n.Index] = v
}

// FieldRef accesses a named field (by pre-resolved index) on the
// structure a pointer- or reference-valued Operand yields (spec §4.2,
// "Field access fast path"): a single add-and-load, here a slice index
// instead of a byte-offset add.
type FieldRef struct {
	Operand    SimNode
	FieldIndex int
}

func (n *FieldRef) structOf(ctx *Context) *StructValue {
	r := n.Operand.Eval(ctx)
	if ctx.IsThrowing() {
		return nil
	}
	sv, _ := r.Ref.(*StructValue)
	if sv == nil {
		ctx.Throw(errcat.MsgNullDereference)
		return nil
	}
	return sv
}

func (n *FieldRef) Eval(ctx *Context) Register {
	sv := n.structOf(ctx)
	if sv == nil {
		return Null
	}
	return sv.Fields[n.FieldIndex]
}

func (n *FieldRef) Set(ctx *Context, v Register) {
	sv := n.structOf(ctx)
	if sv == nil {
		return
	}
	sv.Fields[n.FieldIndex] = v
}

// SafeFieldRef is FieldRef's pointer-safe variant (spec §4.2): it
// produces a pointer to the field, propagating null instead of
// dereferencing it.
type SafeFieldRef struct {
	Operand    SimNode
	FieldIndex int
}

func (n *SafeFieldRef) Eval(ctx *Context) Register {
	r := n.Operand.Eval(ctx)
	if ctx.IsThrowing() || r.IsNullPointer() {
		return Null
	}
	sv, _ := r.Ref.(*StructValue)
	if sv == nil {
		return Null
	}
	return PointerRegister(&fieldSlot{sv: sv, index: n.FieldIndex})
}

// slot is implemented by every indirect pointee a safe accessor
// (SafeFieldRef, FindNode) can produce: something Ptr2Ref/
// NullCoalescing can read through or write through without knowing its
// concrete container.
type slot interface {
	Get() Register
	Set(v Register)
}

// fieldSlot is the pointee a SafeFieldRef's pointer resolves to once
// dereferenced by Ptr2Ref (which reads it back into a FieldRef-shaped
// load).
type fieldSlot struct {
	sv    *StructValue
	index int
}

func (f *fieldSlot) Get() Register  { return f.sv.Fields[f.index] }
func (f *fieldSlot) Set(v Register) { f.sv.Fields[f.index] = v }

// IndexRef accesses array[index] or table[key] through a pre-classified
// Kind (spec §4.2, "Indexing"); array/fixed-dim bounds are checked here
// and throw per spec §4.4's failure semantics, table misses simply read
// as null/zero per key-not-found policy (Find is the pointer-returning
// form; plain indexing of an absent table key yields the zero value of
// the value type, matching "returns null" generalized to scalars).
type IndexRef struct {
	Operand SimNode
	Index   SimNode
	Kind    IndexKind
}

type IndexKind int

const (
	IndexGoodArray IndexKind = iota
	IndexGoodTable
	IndexFixedDim
)

func (n *IndexRef) arrayOf(ctx *Context) (*ArrayValue, int, bool) {
	opReg := n.Operand.Eval(ctx)
	if ctx.IsThrowing() {
		return nil, 0, false
	}
	av, _ := opReg.Ref.(*ArrayValue)
	if av == nil {
		ctx.Throw(errcat.MsgNullDereference)
		return nil, 0, false
	}
	idx := n.Index.Eval(ctx)
	if ctx.IsThrowing() {
		return nil, 0, false
	}
	i := int(idx.Int32())
	if i < 0 || i >= len(av.Items) {
		ctx.Throw(errcat.MsgIndexOutOfRange)
		return nil, 0, false
	}
	return av, i, true
}

func (n *IndexRef) tableOf(ctx *Context) (*TableValue, Register, bool) {
	opReg := n.Operand.Eval(ctx)
	if ctx.IsThrowing() {
		return nil, Register{}, false
	}
	tv, _ := opReg.Ref.(*TableValue)
	if tv == nil {
		ctx.Throw(errcat.MsgNullDereference)
		return nil, Register{}, false
	}
	key := n.Index.Eval(ctx)
	if ctx.IsThrowing() {
		return nil, Register{}, false
	}
	return tv, key, true
}

func (n *IndexRef) Eval(ctx *Context) Register {
	switch n.Kind {
	case IndexGoodArray, IndexFixedDim:
		av, i, ok := n.arrayOf(ctx)
		if !ok {
			return Null
		}
		return av.Items[i]
	case IndexGoodTable:
		tv, key, ok := n.tableOf(ctx)
		if !ok {
			return Null
		}
		v, _ := tv.Get(key)
		return v
	default:
		return Null
	}
}

func (n *IndexRef) Set(ctx *Context, v Register) {
	switch n.Kind {
	case IndexGoodArray, IndexFixedDim:
		av, i, ok := n.arrayOf(ctx)
		if !ok {
			return
		}
		av.Items[i] = v
	case IndexGoodTable:
		tv, key, ok := n.tableOf(ctx)
		if !ok {
			return
		}
		tv.Set(key, v)
	}
}
