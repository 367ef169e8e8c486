package ast

// BoolConst is a `true`/`false` literal.
type BoolConst struct {
	ExprBase
	Value bool
}

func (c *BoolConst) Clone() Expression { n := *c; return &n }

// IntConst is a signed 32-bit integer literal (daScript's default `int`).
type IntConst struct {
	ExprBase
	Value int32
}

func (c *IntConst) Clone() Expression { n := *c; return &n }

// UIntConst is an unsigned 32-bit integer literal.
type UIntConst struct {
	ExprBase
	Value uint32
}

func (c *UIntConst) Clone() Expression { n := *c; return &n }

// Int64Const is a signed 64-bit integer literal.
type Int64Const struct {
	ExprBase
	Value int64
}

func (c *Int64Const) Clone() Expression { n := *c; return &n }

// UInt64Const is an unsigned 64-bit integer literal.
type UInt64Const struct {
	ExprBase
	Value uint64
}

func (c *UInt64Const) Clone() Expression { n := *c; return &n }

// FloatConst is a 32-bit float literal.
type FloatConst struct {
	ExprBase
	Value float32
}

func (c *FloatConst) Clone() Expression { n := *c; return &n }

// DoubleConst is a 64-bit float literal.
type DoubleConst struct {
	ExprBase
	Value float64
}

func (c *DoubleConst) Clone() Expression { n := *c; return &n }

// StringConst is a string literal.
type StringConst struct {
	ExprBase
	Value string
}

func (c *StringConst) Clone() Expression { n := *c; return &n }

// PtrConst is a null-pointer literal (the only pointer constant daScript
// parses; all other pointers arise from `new` or address-of).
type PtrConst struct {
	ExprBase
}

func (c *PtrConst) Clone() Expression { n := *c; return &n }

// EnumConst is a reference to one named constant of an enumeration
// (spec.md's base-tag list names `enumeration`; this node is the
// supplemented operation contract added in SPEC_FULL.md).
type EnumConst struct {
	ExprBase
	Name  string
	Value int64
}

func (c *EnumConst) Clone() Expression { n := *c; return &n }
