// Package infer implements daScript's single-pass post-parse type
// inference and overload resolution (spec §4.2, §4.2.1): it walks every
// function body and global initializer, assigns a Type to each
// Expression, inserts implicit dereferences, resolves names against
// internal/library, and picks exactly one overload per call or operator.
//
// Errors are recorded on the Program rather than stopping the walk: a
// node whose type could not be determined is left with Type == nil, and
// its parent's inference (which will see a nil child type) quietly fails
// too, in keeping with spec §7's "report but do not stop" contract.
package infer
