package sim

import "github.com/dascript-lang/dascript/internal/types"

// ArrayValue is a dynamic array's heap-side storage (spec §4.1's "good
// array"): element Registers plus the element type needed to size a
// push/erase correctly.
type ArrayValue struct {
	Elem  *types.TypeDecl
	Items []Register
}

// TableValue is a hash table's heap-side storage. Keys are converted to
// a comparable Go value via tableKey so Find/Erase/TableKeys can use a
// native Go map instead of a hand-rolled hash table (spec §4.2's table
// semantics; the key space in daScript is always a scalar or string,
// both of which map onto Go's built-in comparable types).
type TableValue struct {
	Key     *types.TypeDecl
	Value   *types.TypeDecl
	entries map[any]tableEntry
	order   []any // insertion order, for TableKeys/TableValues determinism
}

type tableEntry struct {
	key   Register
	value Register
}

func NewTableValue(key, value *types.TypeDecl) *TableValue {
	return &TableValue{Key: key, Value: value, entries: map[any]tableEntry{}}
}

func tableKey(r Register, keyType *types.TypeDecl) any {
	switch keyType.AsValue().Base {
	case types.TString:
		return StringOf(r)
	case types.TFloat:
		return r.Float()
	case types.TDouble:
		return r.Double()
	default:
		return r.Bits // every integer/bool/enum width collapses to its bit pattern
	}
}

func (t *TableValue) Get(k Register) (Register, bool) {
	e, ok := t.entries[tableKey(k, t.Key)]
	if !ok {
		return Register{}, false
	}
	return e.value, true
}

func (t *TableValue) Set(k, v Register) {
	kk := tableKey(k, t.Key)
	if _, exists := t.entries[kk]; !exists {
		t.order = append(t.order, kk)
	}
	t.entries[kk] = tableEntry{key: k, value: v}
}

// Erase removes k, reporting whether it was present (spec §4.2's "bool
// result: whether the key was present").
func (t *TableValue) Erase(k Register) bool {
	kk := tableKey(k, t.Key)
	if _, ok := t.entries[kk]; !ok {
		return false
	}
	delete(t.entries, kk)
	for i, o := range t.order {
		if o == kk {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

// Keys and Values return snapshot arrays in insertion order (spec §3's
// table_keys/table_values).
func (t *TableValue) Keys() []Register {
	out := make([]Register, len(t.order))
	for i, kk := range t.order {
		out[i] = t.entries[kk].key
	}
	return out
}

func (t *TableValue) Values() []Register {
	out := make([]Register, len(t.order))
	for i, kk := range t.order {
		out[i] = t.entries[kk].value
	}
	return out
}

func (t *TableValue) Len() int { return len(t.order) }

// StructValue is a structure instance's heap storage: one Register per
// field, in declaration order, matching types.Structure.Fields.
type StructValue struct {
	Decl   *types.Structure
	Fields []Register
}

// NewStructValue allocates a structure instance with every field set to
// its own default value: nil/zero for scalars and pointers, a fresh
// empty container for a nested array/table/structure field (spec §3's
// "a reference type is never stored as an rvalue" — a struct field of
// container type is itself live storage from the moment the struct
// exists, not an optional pointer to one, mirroring ZeroValueNode's
// treatment of a bare array/table/structure local).
func NewStructValue(s *types.Structure) *StructValue {
	fields := make([]Register, len(s.Fields))
	for i, f := range s.Fields {
		fields[i] = ZeroRegister(f.Type)
	}
	return &StructValue{Decl: s, Fields: fields}
}

// ZeroRegister returns the default Register for a declared type:
// a fresh empty container for array/table/structure, a fresh
// product(Dim)-sized backing array for a fixed-dim value (spec §4.1's
// `dim`: a non-empty Dim turns any scalar base into live fixed-size
// storage, the same way array/table/structure are always backing
// storage rather than an optional pointer to one), the all-zero
// Register (nil/0/false alike, per Register's doc comment) otherwise.
func ZeroRegister(t *types.TypeDecl) Register {
	v := t.AsValue()
	if len(v.Dim) > 0 {
		return Register{Ref: newFixedDimValue(v)}
	}
	switch v.Base {
	case types.TArray:
		return Register{Ref: &ArrayValue{Elem: v.FirstType}}
	case types.TTable:
		return Register{Ref: NewTableValue(v.FirstType, v.SecondType)}
	case types.TStructure:
		return Register{Ref: NewStructValue(v.StructType)}
	default:
		return Register{}
	}
}

// newFixedDimValue builds the flat backing store for a fixed-dim type:
// product(Dim) elements of the scalar element type, each itself
// defaulted via ZeroRegister (mirroring TypeDecl.SizeOf's own
// product(dim) * base_size computation), so a nested container element
// (e.g. a fixed-dim array of structures) gets its own live storage too.
func newFixedDimValue(t *types.TypeDecl) *ArrayValue {
	elem := t.WithDimSlice(nil)
	count := 1
	for _, d := range t.Dim {
		count *= d
	}
	items := make([]Register, count)
	for i := range items {
		items[i] = ZeroRegister(elem)
	}
	return &ArrayValue{Elem: elem, Items: items}
}

func (s *StructValue) FieldIndex(name string) int {
	for i, f := range s.Decl.Fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// RangeValue is the runtime payload of a TRange/TURange value (spec
// §3's range/urange base tags): the [From, To) half-open bound plus
// Step, and Signed selecting whether a `for` over it binds an int32 or
// uint32 loop variable. Produced by the builtin.range/builtin.urange
// constructor functions, consumed by internal/simulate's lowering of an
// ast.For source classified ast.ForRange.
type RangeValue struct {
	From, To, Step int64
	Signed         bool
}

// BlockValue is a captured callable's runtime form (spec §4.4,
// "Blocks"): the lowered body plus a reference to the defining frame's
// locals (and the shared Globals slice, reachable via the Context an
// Invoke node is given), so the block sees the same storage its
// enclosing function does — Go's natural closure-by-reference, used
// here instead of the host's raw `argument-stack-base` pointer.
type BlockValue struct {
	Params []*types.TypeDecl
	Body   SimNode
	Frame  *Frame
}
