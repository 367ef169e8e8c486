// Package sim is the runtime half of simulation (spec §4.4, §4.5): the
// SimNode evaluator tree, the per-interpreter Context (globals, heap,
// stack, control-flow bitfield), arithmetic policies keyed by base type,
// iterators, and the string/block runtime representations.
//
// internal/simulate lowers the typed AST (internal/ast, post
// internal/infer) into the SimNode graphs this package evaluates;
// internal/sim itself never looks at ast.Expression — it only knows
// about SimNode, keeping the "compile once, run many times" boundary
// from spec §4.3 explicit in the package graph.
package sim
