package sim

// Heap models spec §4.5's heap: allocate/reallocate/free/allocate_name/
// reset. The host's C++ original backs small allocations with a buddy
// allocator and falls back to a generic one above a size threshold; here
// the Go garbage collector already does that job for us; Heap instead
// tracks live allocations so Reset can "drop all allocations" in one
// step and so a configurable budget can still produce the "out of heap"
// throw spec §4.4 requires, rather than silently letting the process
// grow without bound.
type Heap struct {
	budget int
	used   int

	allocs map[*[]byte]struct{}
	names  map[string]*StringValue
}

// NewHeap returns a heap with the given byte budget; budget <= 0 means
// unbounded (used only by tests that don't care about exhaustion).
func NewHeap(budget int) *Heap {
	return &Heap{
		budget: budget,
		allocs: map[*[]byte]struct{}{},
		names:  map[string]*StringValue{},
	}
}

// Allocate returns a zeroed buffer of size bytes, or ok=false if the
// budget would be exceeded (spec §4.4: "Heap allocation failure → throw
// 'out of heap'").
func (h *Heap) Allocate(size int) (buf []byte, ok bool) {
	if h.budget > 0 && h.used+size > h.budget {
		return nil, false
	}
	b := make([]byte, size)
	h.allocs[&b] = struct{}{}
	h.used += size
	return b, true
}

// Reallocate grows or shrinks an existing allocation, copying the
// overlapping prefix; ok is false on budget exhaustion.
func (h *Heap) Reallocate(old []byte, oldSize, newSize int) (buf []byte, ok bool) {
	nb, ok := h.Allocate(newSize)
	if !ok {
		return nil, false
	}
	n := oldSize
	if newSize < n {
		n = newSize
	}
	copy(nb, old[:n])
	h.Free(old)
	return nb, true
}

// Free is best-effort bookkeeping: it lets Reset's accounting stay
// accurate for callers that do free explicitly, but callers are never
// required to (spec §4.5: "allocations are not required to be
// individually freed").
func (h *Heap) Free(buf []byte) {
	if buf == nil {
		return
	}
	h.used -= len(buf)
	if h.used < 0 {
		h.used = 0
	}
}

// AllocateName interns a copy of s, returning the same *StringValue for
// repeated calls with equal text (spec §4.5: "interned copy of a
// string").
func (h *Heap) AllocateName(s string) *StringValue {
	if sv, ok := h.names[s]; ok {
		return sv
	}
	sv := NewStringValue(s)
	h.names[s] = sv
	return sv
}

// Reset drops every allocation and interned name in one step (spec
// §4.5: "scripts rely on reset between runs").
func (h *Heap) Reset() {
	h.allocs = map[*[]byte]struct{}{}
	h.names = map[string]*StringValue{}
	h.used = 0
}

// Used reports current tracked usage, for diagnostics/tests.
func (h *Heap) Used() int { return h.used }
