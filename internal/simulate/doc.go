// Package simulate lowers an inferred *library.Program into a
// *sim.Program (spec §4.3, "simulation/lowering"): it assigns dense
// slot indices to every global and user function, allocates each
// function's frame-local register slots, and walks the typed AST once
// producing the matching internal/sim.SimNode tree — one case per node
// kind, the same single-dispatch-point shape internal/infer already
// uses instead of a virtual lower() method per node (spec §9).
//
// Grounded on the teacher's internal/bytecode compiler pass
// (internal/bytecode/compiler.go, compiler_*.go): a post-typecheck walk
// that resolves every AST node to a fixed bytecode shape and assigns
// stack slots to locals in declaration order, the same allocation
// discipline this package applies to internal/sim.LocalRef/ArgRef
// offsets instead of byte-coded instructions.
package simulate
