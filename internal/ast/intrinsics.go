package ast

import "github.com/dascript-lang/dascript/internal/types"

// New is `new T`: T must be non-reference, non-dim, structure-or-handle
// (spec §4.2). Target carries the type literal the inference pass
// validates; the expression's own Type becomes `pointer to T`.
type New struct {
	ExprBase
	Target *types.TypeDecl
}

func (c *New) Clone() Expression { n := *c; return &n }

// Sizeof evaluates to size_of(Operand's type) (spec §4.2).
type Sizeof struct {
	ExprBase
	Operand Expression
}

func (c *Sizeof) Clone() Expression {
	n := *c
	n.Operand = c.Operand.Clone()
	return &n
}

// Assert is `assert(cond[, message])`: Message is nil when omitted, and
// when present must be a string constant (spec §4.2).
type Assert struct {
	ExprBase
	Cond    Expression
	Message Expression // nil, or a *StringConst
}

func (c *Assert) Clone() Expression {
	n := *c
	n.Cond = c.Cond.Clone()
	if c.Message != nil {
		n.Message = c.Message.Clone()
	}
	return &n
}

// Debug prints Operand's value via the runtime type descriptor; Label, if
// present, must be a string constant (spec §4.2).
type Debug struct {
	ExprBase
	Operand Expression
	Label   Expression // nil, or a *StringConst
}

func (c *Debug) Clone() Expression {
	n := *c
	n.Operand = c.Operand.Clone()
	if c.Label != nil {
		n.Label = c.Label.Clone()
	}
	return &n
}

// Hash returns a u64 hash of Operand: raw bits for pod by-value inputs,
// byte hash for pod references, structural walk otherwise (spec §4.2).
type Hash struct {
	ExprBase
	Operand Expression
}

func (c *Hash) Clone() Expression {
	n := *c
	n.Operand = c.Operand.Clone()
	return &n
}

// ArrayPush is `push(array, value[, index])` (spec §4.2).
type ArrayPush struct {
	ExprBase
	Array Expression
	Value Expression
	Index Expression // nil if omitted
}

func (c *ArrayPush) Clone() Expression {
	n := *c
	n.Array = c.Array.Clone()
	n.Value = c.Value.Clone()
	if c.Index != nil {
		n.Index = c.Index.Clone()
	}
	return &n
}

// Erase removes an array element by index (void result) or a table key
// (bool result: whether the key was present) (spec §4.2).
type Erase struct {
	ExprBase
	Container Expression
	Key       Expression
	OnTable   bool // assigned by inference
}

func (c *Erase) Clone() Expression {
	n := *c
	n.Container = c.Container.Clone()
	n.Key = c.Key.Clone()
	return &n
}

// Find is `find(table, key)`: a pointer to the value slot, or null (spec
// §4.2; array find is rejected by inference per SPEC_FULL.md's decided
// Open Question).
type Find struct {
	ExprBase
	Container Expression
	Key       Expression
}

func (c *Find) Clone() Expression {
	n := *c
	n.Container = c.Container.Clone()
	n.Key = c.Key.Clone()
	return &n
}

// TableKeys and TableValues return an array snapshot of a table's keys or
// values respectively (spec §3's Expression-variant list).
type TableKeys struct {
	ExprBase
	Table Expression
}

func (c *TableKeys) Clone() Expression {
	n := *c
	n.Table = c.Table.Clone()
	return &n
}

type TableValues struct {
	ExprBase
	Table Expression
}

func (c *TableValues) Clone() Expression {
	n := *c
	n.Table = c.Table.Clone()
	return &n
}
