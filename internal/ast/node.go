package ast

import (
	"github.com/dascript-lang/dascript/internal/source"
	"github.com/dascript-lang/dascript/internal/types"
)

// Expression is the common interface of every node in the typed AST (spec
// §3). Type is nil until internal/infer assigns it.
type Expression interface {
	Pos() source.Position
	GetType() *types.TypeDecl
	SetType(*types.TypeDecl)
	Clone() Expression
	exprNode()
}

// ExprBase is embedded by every concrete Expression and carries the
// fields common to all of them: source location and inferred type.
type ExprBase struct {
	At   source.Position
	Type *types.TypeDecl
}

func (b *ExprBase) Pos() source.Position       { return b.At }
func (b *ExprBase) GetType() *types.TypeDecl   { return b.Type }
func (b *ExprBase) SetType(t *types.TypeDecl)  { b.Type = t }
func (*ExprBase) exprNode()                    {}

// Statement is a marker alias: in daScript every statement is itself an
// Expression whose Type is void (If/While/For/Let/Block/Return/Break/Try),
// matching spec §3's unified Expression tree rather than a separate
// statement hierarchy.
type Statement = Expression
