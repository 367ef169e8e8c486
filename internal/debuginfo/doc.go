// Package debuginfo mirrors compiled types, structures, variables and
// functions into runtime-visible descriptors, and renders a Register's
// current value through them (spec §2 item 7, "Debug/type-info mirror").
// internal/sim's debug/hash intrinsics only need a *types.TypeDecl and a
// Register to do their work; this package is what a host actually wires
// into sim.Context.Debug to get spec §4.2's "debug pretty-printing
// format" and what the RTTI surface (spec §6.5's optional rtti module)
// would be built on, were it in scope.
//
// Grounded on the teacher's internal/common descriptor-dump helpers and
// SPEC_FULL.md's "Debug pretty-printing format" supplement
// (original_source's Program::dumpDataValue-style recursive traversal).
package debuginfo
