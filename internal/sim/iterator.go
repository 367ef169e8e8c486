package sim

import "github.com/dascript-lang/dascript/internal/errcat"

// fixedDimIterator walks a fixed-size array's elements in place (spec
// §4.2's "fixed dim" for source). Its static length bounds the loop like
// any other source's: ForNode stops when the shortest source is exhausted.
type fixedDimIterator struct {
	items []Register
	pos   int
}

func newFixedDimIterator(items []Register) *fixedDimIterator {
	return &fixedDimIterator{items: items, pos: -1}
}

// NewFixedDimIterator, NewGoodArrayIterator, NewGoodTableIterator,
// NewRangeIterator and NewHandleIteratorAdapter are the exported
// constructors internal/simulate uses when lowering an ast.For: each
// ast.ForSourceKind maps onto exactly one of these (spec §4.2,
// "Indexing"/"for" sources).
func NewFixedDimIterator(items []Register) Iterator { return newFixedDimIterator(items) }

func (it *fixedDimIterator) First(ctx *Context) (Register, bool) { return it.Next(ctx) }

func (it *fixedDimIterator) Next(ctx *Context) (Register, bool) {
	it.pos++
	if it.pos >= len(it.items) {
		return Null, false
	}
	return it.items[it.pos], true
}

func (it *fixedDimIterator) Close(ctx *Context) {}

// goodArrayIterator walks a dynamic array's elements; it re-reads
// av.Items each step so a push/erase inside the loop body is reflected,
// matching a reference-semantics "good array" (spec §4.1).
type goodArrayIterator struct {
	av  *ArrayValue
	pos int
}

func newGoodArrayIterator(av *ArrayValue) *goodArrayIterator {
	return &goodArrayIterator{av: av, pos: -1}
}

// NewGoodArrayIterator is NewFixedDimIterator's good-array counterpart.
func NewGoodArrayIterator(av *ArrayValue) Iterator { return newGoodArrayIterator(av) }

func (it *goodArrayIterator) First(ctx *Context) (Register, bool) { return it.Next(ctx) }

func (it *goodArrayIterator) Next(ctx *Context) (Register, bool) {
	it.pos++
	if it.av == nil || it.pos >= len(it.av.Items) {
		return Null, false
	}
	return it.av.Items[it.pos], true
}

func (it *goodArrayIterator) Close(ctx *Context) {}

// goodTableIterator walks a table's entries in insertion order, yielding
// the key (spec §4.2's "for k in table" binds the key; pairing with
// table_values gives the value in a second source).
type goodTableIterator struct {
	keys []Register
	pos  int
}

func newGoodTableIterator(tv *TableValue) *goodTableIterator {
	return &goodTableIterator{keys: tv.Keys(), pos: -1}
}

// NewGoodTableIterator is NewFixedDimIterator's good-table counterpart.
func NewGoodTableIterator(tv *TableValue) Iterator { return newGoodTableIterator(tv) }

func (it *goodTableIterator) First(ctx *Context) (Register, bool) { return it.Next(ctx) }

func (it *goodTableIterator) Next(ctx *Context) (Register, bool) {
	it.pos++
	if it.pos >= len(it.keys) {
		return Null, false
	}
	return it.keys[it.pos], true
}

func (it *goodTableIterator) Close(ctx *Context) {}

// rangeIterator walks [From, To) by Step (spec §3's range/urange);
// Signed selects whether values are produced via int32 or uint32
// registers.
type rangeIterator struct {
	cur, to, step int64
	signed        bool
	started       bool
}

func newRangeIterator(from, to, step int64, signed bool) *rangeIterator {
	return &rangeIterator{cur: from, to: to, step: step, signed: signed}
}

// NewRangeIterator is NewFixedDimIterator's range counterpart.
func NewRangeIterator(from, to, step int64, signed bool) Iterator {
	return newRangeIterator(from, to, step, signed)
}

func (it *rangeIterator) First(ctx *Context) (Register, bool) {
	it.started = true
	return it.valueOrDone()
}

func (it *rangeIterator) Next(ctx *Context) (Register, bool) {
	if !it.started {
		return it.First(ctx)
	}
	it.cur += it.step
	return it.valueOrDone()
}

func (it *rangeIterator) valueOrDone() (Register, bool) {
	if (it.step >= 0 && it.cur >= it.to) || (it.step < 0 && it.cur <= it.to) {
		return Null, false
	}
	if it.signed {
		return Int32Register(int32(it.cur)), true
	}
	return UInt32Register(uint32(it.cur)), true
}

func (it *rangeIterator) Close(ctx *Context) {}

// HandleIterator is the runtime contract a handle type exposes to drive
// a for-loop over it (spec §4.2's "handle iterator" source): First/Next
// mirror Iterator but additionally may throw through ctx, and Close
// releases whatever resource backs the iteration (e.g. a host-side
// cursor) — unlike the built-in container iterators, which have nothing
// to release.
type HandleIterator interface {
	First(ctx *Context) (Register, bool)
	Next(ctx *Context) (Register, bool)
	Close(ctx *Context)
}

// handleIteratorAdapter lets a *ast.Function-backed native iterator
// (registered by internal/builtin for a handle type) satisfy Iterator
// without this package needing to know anything about handles beyond
// the three native calls.
type handleIteratorAdapter struct {
	state  Register
	first  NativeFunc
	next   NativeFunc
	closeF NativeFunc
}

func newHandleIteratorAdapter(first, next, closeF NativeFunc) *handleIteratorAdapter {
	return &handleIteratorAdapter{first: first, next: next, closeF: closeF}
}

// NewHandleIteratorAdapter is NewFixedDimIterator's handle-iterator
// counterpart: first/next/closeF are the three native calls a handle
// type's iteration protocol registers with internal/builtin.
func NewHandleIteratorAdapter(first, next, closeF NativeFunc) Iterator {
	return newHandleIteratorAdapter(first, next, closeF)
}

func (it *handleIteratorAdapter) First(ctx *Context) (Register, bool) {
	r := it.first(ctx, nil)
	if ctx.IsThrowing() {
		return Null, false
	}
	it.state = r
	return it.valueOrDone(ctx)
}

func (it *handleIteratorAdapter) Next(ctx *Context) (Register, bool) {
	r := it.next(ctx, []Register{it.state})
	if ctx.IsThrowing() {
		return Null, false
	}
	it.state = r
	return it.valueOrDone(ctx)
}

func (it *handleIteratorAdapter) valueOrDone(ctx *Context) (Register, bool) {
	if it.state.IsNullPointer() {
		return Null, false
	}
	return it.state, true
}

func (it *handleIteratorAdapter) Close(ctx *Context) {
	if it.closeF != nil {
		it.closeF(ctx, []Register{it.state})
	}
}

// errcat is imported so the iterators in this file can report failures
// from the shared catalog; none of them reports one, and this blank use
// keeps the import.
var _ = errcat.MsgIndexOutOfRange
