// Package dascript is the host-embeddable API surface spec.md §6.1
// describes: wrap a parsed *library.Program, run inference, lower it to
// a *sim.Program, and drive a *sim.Context. The lexer/parser front end
// is an explicit external collaborator (spec §1); this package only
// defines the FileAccess/Parser interfaces a host plugs in (spec §6.2)
// and the compile/simulate/eval pipeline sitting on top of whatever
// they produce.
package dascript
