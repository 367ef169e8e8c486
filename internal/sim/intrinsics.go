package sim

import (
	"github.com/dascript-lang/dascript/internal/errcat"
	"github.com/dascript-lang/dascript/internal/types"
)

// NewNode allocates a zeroed value of Target (structure or handle per
// SPEC_FULL.md's decided Open Question on `new`) on ctx.Heap and returns
// a pointer to it (spec §4.3, intrinsics).
type NewNode struct {
	Target *types.TypeDecl
}

func (n *NewNode) Eval(ctx *Context) Register {
	if _, ok := ctx.Heap.Allocate(n.Target.SizeOf()); !ok {
		return ctx.Throw2(errcat.MsgOutOfHeap)
	}
	if n.Target.StructType != nil {
		return Register{Ref: NewStructValue(n.Target.StructType)}
	}
	return Null // handle allocation is owned by the handle's own registry, not modeled here
}

// ZeroValueNode produces the default value of a declared-but-uninitialized
// local or global of a heap-backed container type (array, table,
// structure). Frame and global slots otherwise start at the zero
// Register, which for these three kinds is a nil Ref — fine for a
// pointer, wrong for `var v: array<int>`, which spec §8's S2/S3
// scenarios push/index/erase on without ever assigning it first. A
// fresh instance is allocated on every Eval so each call frame (and
// each post-restart global init) gets its own backing storage rather
// than aliasing a shared one (spec §8 property 7: restart re-running
// init nodes must not leave stale entries from a prior run).
type ZeroValueNode struct {
	Type *types.TypeDecl
}

func (n *ZeroValueNode) Eval(ctx *Context) Register {
	return ZeroRegister(n.Type)
}

// NeedsZeroValue reports whether a declared type's default value must be
// synthesized via ZeroValueNode rather than left at the all-zero
// Register (spec §3: arrays, tables, structures, and fixed-dim values
// are always held by reference to live storage, never by a bare nil).
func NeedsZeroValue(t *types.TypeDecl) bool {
	v := t.AsValue()
	if len(v.Dim) > 0 {
		return true
	}
	switch v.Base {
	case types.TArray, types.TTable, types.TStructure:
		return true
	default:
		return false
	}
}

// SizeofNode folds to a constant computed once by internal/simulate;
// kept as a node (rather than inlined as a ConstNode at lowering time)
// only for symmetry with the other intrinsics — Eval never varies.
type SizeofNode struct {
	Size uint32
}

func (n *SizeofNode) Eval(ctx *Context) Register { return UInt32Register(n.Size) }

// AssertNode evaluates Cond and throws Message (or a default) if false
// (spec §4.3).
type AssertNode struct {
	Cond    SimNode
	Message string
}

func (n *AssertNode) Eval(ctx *Context) Register {
	c := n.Cond.Eval(ctx)
	if ctx.IsThrowing() {
		return Null
	}
	if !c.Bool() {
		msg := n.Message
		if msg == "" {
			msg = "assertion failed"
		}
		return ctx.Throw2(msg)
	}
	return Null
}

// DebugNode hands Operand's current value to DebugSink, a host-supplied
// hook (spec §4.3's "debug" intrinsic, §6.2's embedding surface: the
// actual formatting lives with whatever debuginfo descriptors
// internal/debuginfo attaches, not in this package).
type DebugNode struct {
	Operand SimNode
	Label   string
	Type    *types.TypeDecl
}

// DebugSink receives every debug() call a running script makes; Context
// leaves it nil by default (debug becomes a no-op) and the host sets it
// when it wants to observe.
type DebugSink func(label string, t *types.TypeDecl, v Register)

func (n *DebugNode) Eval(ctx *Context) Register {
	v := n.Operand.Eval(ctx)
	if ctx.IsThrowing() {
		return Null
	}
	if ctx.Debug != nil {
		ctx.Debug(n.Label, n.Type, v)
	}
	return Null
}

// HashNode computes a structural hash of Operand (spec §4.3).
type HashNode struct {
	Operand SimNode
	Type    *types.TypeDecl
}

func (n *HashNode) Eval(ctx *Context) Register {
	v := n.Operand.Eval(ctx)
	if ctx.IsThrowing() {
		return Null
	}
	return UInt64Register(HashValue(v, n.Type))
}

// HashValue computes a structural hash keyed by t's base type, combining
// nested struct fields, array and fixed-dim elements, and table keys and
// values in insertion order, rather than hashing by reference identity.
func HashValue(v Register, t *types.TypeDecl) uint64 {
	if t == nil {
		return v.Bits
	}
	base := t.AsValue().Base
	if len(t.Dim) > 0 {
		base = types.TArray // fixed-dim storage is an *ArrayValue of the scalar element
	}
	switch base {
	case types.TString:
		return uint64(HashOf(v))
	case types.TStructure:
		sv, ok := v.Ref.(*StructValue)
		if !ok || sv == nil {
			return 0
		}
		h := fnvOffsetBasis64
		for i, f := range sv.Fields {
			var ft *types.TypeDecl
			if i < len(sv.Decl.Fields) {
				ft = sv.Decl.Fields[i].Type
			}
			h = (h ^ HashValue(f, ft)) * fnvPrime64
		}
		return h
	case types.TArray:
		av, ok := v.Ref.(*ArrayValue)
		if !ok || av == nil {
			return 0
		}
		h := fnvOffsetBasis64
		for _, it := range av.Items {
			h = (h ^ HashValue(it, av.Elem)) * fnvPrime64
		}
		return h
	case types.TTable:
		tv, ok := v.Ref.(*TableValue)
		if !ok || tv == nil {
			return 0
		}
		h := fnvOffsetBasis64
		keys, values := tv.Keys(), tv.Values()
		for i := range keys {
			h = (h ^ HashValue(keys[i], tv.Key)) * fnvPrime64
			h = (h ^ HashValue(values[i], tv.Value)) * fnvPrime64
		}
		return h
	default:
		return v.Bits
	}
}

const (
	fnvOffsetBasis64 uint64 = 14695981039346656037
	fnvPrime64       uint64 = 1099511628211
)

// ArrayPushNode appends Value to Array, inserting at Index if given
// instead of appending at the end (spec §4.3).
type ArrayPushNode struct {
	Array SimNode
	Value SimNode
	Index SimNode // nil means append
}

func (n *ArrayPushNode) Eval(ctx *Context) Register {
	arr := n.Array.Eval(ctx)
	if ctx.IsThrowing() {
		return Null
	}
	av, _ := arr.Ref.(*ArrayValue)
	if av == nil {
		return ctx.Throw2(errcat.MsgNullDereference)
	}
	v := n.Value.Eval(ctx)
	if ctx.IsThrowing() {
		return Null
	}
	if n.Index == nil {
		av.Items = append(av.Items, v)
		return Null
	}
	idx := n.Index.Eval(ctx)
	if ctx.IsThrowing() {
		return Null
	}
	i := int(idx.Int32())
	if i < 0 || i > len(av.Items) {
		return ctx.Throw2(errcat.MsgIndexOutOfRange)
	}
	av.Items = append(av.Items, Register{})
	copy(av.Items[i+1:], av.Items[i:])
	av.Items[i] = v
	return Null
}

// EraseNode removes an array element by index, or a table entry by key
// (OnTable selects which), yielding a bool for the table form (spec
// §4.3).
type EraseNode struct {
	Container SimNode
	Key       SimNode
	OnTable   bool
}

func (n *EraseNode) Eval(ctx *Context) Register {
	c := n.Container.Eval(ctx)
	if ctx.IsThrowing() {
		return Null
	}
	key := n.Key.Eval(ctx)
	if ctx.IsThrowing() {
		return Null
	}
	if n.OnTable {
		tv, _ := c.Ref.(*TableValue)
		if tv == nil {
			return ctx.Throw2(errcat.MsgNullDereference)
		}
		return BoolRegister(tv.Erase(key))
	}
	av, _ := c.Ref.(*ArrayValue)
	if av == nil {
		return ctx.Throw2(errcat.MsgNullDereference)
	}
	i := int(key.Int32())
	if i < 0 || i >= len(av.Items) {
		return ctx.Throw2(errcat.MsgIndexOutOfRange)
	}
	av.Items = append(av.Items[:i], av.Items[i+1:]...)
	return Null
}

// FindNode returns a pointer to a table's value for Key, or null if
// absent (spec §4.3; arrays are out of scope for find per SPEC_FULL.md's
// decided Open Question, enforced in internal/infer).
type FindNode struct {
	Container SimNode
	Key       SimNode
}

func (n *FindNode) Eval(ctx *Context) Register {
	c := n.Container.Eval(ctx)
	if ctx.IsThrowing() {
		return Null
	}
	tv, _ := c.Ref.(*TableValue)
	if tv == nil {
		return ctx.Throw2(errcat.MsgNullDereference)
	}
	key := n.Key.Eval(ctx)
	if ctx.IsThrowing() {
		return Null
	}
	kk := tableKey(key, tv.Key)
	if _, ok := tv.entries[kk]; !ok {
		return Null
	}
	return PointerRegister(&tableSlot{tv: tv, key: kk})
}

// tableSlot is the pointee a FindNode's pointer resolves to: writing
// through it (via Ptr2Ref's slot unwrap) updates the table entry in
// place.
type tableSlot struct {
	tv  *TableValue
	key any
}

func (s *tableSlot) Get() Register  { return s.tv.entries[s.key].value }
func (s *tableSlot) Set(v Register) { s.tv.entries[s.key] = tableEntry{key: s.tv.entries[s.key].key, value: v} }

// TableKeysNode and TableValuesNode snapshot a table's keys/values into a
// fresh array (spec §4.3).
type TableKeysNode struct {
	Table SimNode
	Elem  *types.TypeDecl
}

func (n *TableKeysNode) Eval(ctx *Context) Register {
	t := n.Table.Eval(ctx)
	if ctx.IsThrowing() {
		return Null
	}
	tv, _ := t.Ref.(*TableValue)
	if tv == nil {
		return ctx.Throw2(errcat.MsgNullDereference)
	}
	return Register{Ref: &ArrayValue{Elem: n.Elem, Items: tv.Keys()}}
}

type TableValuesNode struct {
	Table SimNode
	Elem  *types.TypeDecl
}

func (n *TableValuesNode) Eval(ctx *Context) Register {
	t := n.Table.Eval(ctx)
	if ctx.IsThrowing() {
		return Null
	}
	tv, _ := t.Ref.(*TableValue)
	if tv == nil {
		return ctx.Throw2(errcat.MsgNullDereference)
	}
	return Register{Ref: &ArrayValue{Elem: n.Elem, Items: tv.Values()}}
}
