// Package types implements daScript's recursive type model: the base-type
// tag enumeration, TypeDecl (a node in the type tree), Structure and
// Enumeration descriptors, and HandleAnnotation, the extension point for
// externally registered opaque types.
//
// TypeDecl answers the questions the rest of the compiler needs of a type:
// structural equality (IsSame), size and alignment (SizeOf/AlignOf),
// multi-dimensional stride, reference/const queries, and the copy/move/pod
// predicates that drive lowering. MangledName gives every type a canonical
// string key used for overload uniqueness and caching.
package types
