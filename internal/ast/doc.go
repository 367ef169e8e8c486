// Package ast defines the typed expression tree daScript programs are built
// from, plus Variable and Function, the two declaration-level nodes every
// expression can reference.
//
// Every Expression carries a source position and a Type, filled in by
// internal/infer. Rather than a virtual infer/simulate per node (the
// source project's polymorphic expression hierarchy, spec §9), each node
// is a plain tagged struct; internal/infer and internal/simulate dispatch
// on the concrete Go type with a type switch. Clone, which needs nothing
// from inference or simulation, is implemented here directly on each node.
package ast
