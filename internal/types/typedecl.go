package types

// TypeDecl is a node in daScript's recursive type tree (spec §3). Arrays,
// tables, blocks and iterators carry their element type in FirstType
// (table's value type in SecondType); structures and handles defer to
// StructType/Annotation; Dim turns a scalar into a fixed-size
// multi-dimensional array.
type TypeDecl struct {
	Base BaseType

	StructType *Structure        // set when Base == TStructure
	Enum       *Enumeration      // set when Base == TEnumeration
	Annotation HandleAnnotation  // set when Base == THandle

	FirstType  *TypeDecl // element type for array/pointer/iterator/block/lambda; "argument 0" for function/tuple via ArgTypes
	SecondType *TypeDecl // value type for table

	ArgTypes []*TypeDecl // argument types for block/function/lambda/tuple, when meaningful

	Dim []int // ordered fixed dimensions; empty = scalar

	Ref      bool // value is a reference to storage of Base
	Constant bool // writes through this type are forbidden
}

// NewPrimitive returns a fresh scalar TypeDecl of the given base tag.
func NewPrimitive(b BaseType) *TypeDecl {
	return &TypeDecl{Base: b}
}

// NewPointerTo returns `pointer to elem`.
func NewPointerTo(elem *TypeDecl) *TypeDecl {
	return &TypeDecl{Base: TPointer, FirstType: elem}
}

// NewArrayOf returns a dynamic `array of elem`.
func NewArrayOf(elem *TypeDecl) *TypeDecl {
	return &TypeDecl{Base: TArray, FirstType: elem}
}

// NewTableOf returns `table<key,value>`.
func NewTableOf(key, value *TypeDecl) *TypeDecl {
	return &TypeDecl{Base: TTable, FirstType: key, SecondType: value}
}

// NewIteratorOf returns an iterator over elem.
func NewIteratorOf(elem *TypeDecl) *TypeDecl {
	return &TypeDecl{Base: TIterator, FirstType: elem}
}

// NewStructureType returns a structure-base TypeDecl bound to s.
func NewStructureType(s *Structure) *TypeDecl {
	return &TypeDecl{Base: TStructure, StructType: s}
}

// NewEnumerationType returns an enumeration-base TypeDecl bound to e.
func NewEnumerationType(e *Enumeration) *TypeDecl {
	return &TypeDecl{Base: TEnumeration, Enum: e}
}

// NewHandleType returns a handle-base TypeDecl bound to annotation a.
func NewHandleType(a HandleAnnotation) *TypeDecl {
	return &TypeDecl{Base: THandle, Annotation: a}
}

// NewBlockType returns `block<(args) -> result>`.
func NewBlockType(result *TypeDecl, args ...*TypeDecl) *TypeDecl {
	return &TypeDecl{Base: TBlock, FirstType: result, ArgTypes: args}
}

// NewFunctionType mirrors NewBlockType for function-pointer types.
func NewFunctionType(result *TypeDecl, args ...*TypeDecl) *TypeDecl {
	return &TypeDecl{Base: TFunction, FirstType: result, ArgTypes: args}
}

// NewTupleType returns a tuple of the given element types.
func NewTupleType(elems ...*TypeDecl) *TypeDecl {
	return &TypeDecl{Base: TTuple, ArgTypes: elems}
}

// AsRef returns a copy of t marked as a reference.
func (t *TypeDecl) AsRef() *TypeDecl {
	c := t.Clone()
	c.Ref = true
	return c
}

// AsValue returns a copy of t with Ref cleared.
func (t *TypeDecl) AsValue() *TypeDecl {
	c := t.Clone()
	c.Ref = false
	return c
}

// AsConst returns a copy of t marked constant.
func (t *TypeDecl) AsConst() *TypeDecl {
	c := t.Clone()
	c.Constant = true
	return c
}

// WithDim returns a copy of t with the given fixed dimensions appended
// (dim entries are ordered outer-to-inner; the last entry is innermost,
// per spec §3).
func (t *TypeDecl) WithDim(dim ...int) *TypeDecl {
	c := t.Clone()
	c.Dim = append(append([]int{}, t.Dim...), dim...)
	return c
}

// Clone returns a shallow copy: compound sub-types, structures, handles
// and enumerations are shared by reference (types form trees with interned
// leaves, not graphs that need deep copies — spec §9's rationale for
// dropping daScript's shared_ptr type graph).
func (t *TypeDecl) Clone() *TypeDecl {
	if t == nil {
		return nil
	}
	c := *t
	c.Dim = append([]int{}, t.Dim...)
	c.ArgTypes = append([]*TypeDecl{}, t.ArgTypes...)
	return &c
}

// IsVoid reports whether t is the scalar void type.
func (t *TypeDecl) IsVoid() bool {
	return t != nil && t.Base == TVoid && len(t.Dim) == 0
}

// IsScalar reports whether t has no fixed dimensions.
func (t *TypeDecl) IsScalar() bool {
	return len(t.Dim) == 0
}

// ElementType returns the type of one element once all Dim entries are
// consumed (or FirstType, for a scalar array/table/pointer/iterator/block).
func (t *TypeDecl) ElementType() *TypeDecl {
	if len(t.Dim) > 1 {
		return t.WithDimSlice(t.Dim[1:])
	}
	if len(t.Dim) == 1 {
		return t.scalarOf()
	}
	return t.FirstType
}

// WithDimSlice is like WithDim but replaces Dim outright; used internally
// by ElementType to peel one dimension at a time.
func (t *TypeDecl) WithDimSlice(dim []int) *TypeDecl {
	c := t.Clone()
	c.Dim = append([]int{}, dim...)
	return c
}

func (t *TypeDecl) scalarOf() *TypeDecl {
	c := t.Clone()
	c.Dim = nil
	return c
}
