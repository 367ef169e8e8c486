// Package builtin is the core built-in module spec §6.5 requires: "at
// least one built-in module providing numeric types, string, pointer,
// arithmetic, and comparison operators". Grounded on the teacher's
// internal/bytecode/vm_builtins_*.go split (one file per concern,
// registered into a shared table keyed by name) and
// internal/semantic/analyze_builtins.go (declaring each builtin's
// signature for the type checker the way this package declares an
// *ast.Function for internal/infer's overload resolver).
//
// Every built-in operator is both an *ast.Function (so internal/infer's
// ResolveOverload can pick it like any user overload) and an entry in a
// Registry keyed by Function.NativeKey() (so internal/simulate can look
// up the Go implementation internal/sim.BinaryOpNode/UnaryOpNode call at
// evaluation time, per ast.Function.NativeKey's documented split to
// avoid an import cycle with internal/sim).
package builtin

import "github.com/dascript-lang/dascript/internal/sim"

// Registry maps a built-in Function's NativeKey to the closure that
// implements it.
type Registry map[string]sim.NativeFunc
