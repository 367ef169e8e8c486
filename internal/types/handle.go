package types

// HandleAnnotation is the extension point for externally registered opaque
// types (daScript calls these "handles"): host-provided structs exposed to
// scripts without a field layout the inference pass can see. A handle
// answers its own size/alignment and copy/move/pod predicates, and may
// optionally support indexing (see IndexableHandle).
type HandleAnnotation interface {
	Name() string
	Size() int
	Align() int
	IsPod() bool
	CanCopy() bool
	CanMove() bool
}

// IndexableHandle is implemented by handle annotations that support the
// indexing operator (spec §4.2, "Handle" indexing case). ElementType
// returns nil if the handle is not indexable for the given key type.
type IndexableHandle interface {
	HandleAnnotation
	ElementType(keyBase BaseType) *TypeDecl
}

// BasicHandle is a minimal HandleAnnotation for host types that have no
// special indexing behavior; most built-in handles (file handles, opaque
// host resources) can be expressed directly with one of these instead of a
// bespoke type.
type BasicHandle struct {
	HandleName string
	ByteSize   int
	ByteAlign  int
	Pod        bool
	Copy       bool
	Move       bool
}

func (h *BasicHandle) Name() string  { return h.HandleName }
func (h *BasicHandle) Size() int     { return h.ByteSize }
func (h *BasicHandle) Align() int    { return h.ByteAlign }
func (h *BasicHandle) IsPod() bool   { return h.Pod }
func (h *BasicHandle) CanCopy() bool { return h.Copy }
func (h *BasicHandle) CanMove() bool { return h.Move }
