package sim

// StopFlags mirrors spec §4.4's control-flow bitfield: four independent
// reasons a node's evaluation should unwind without looking at its
// remaining children. Evaluators check Context.Stop after evaluating
// each child and return immediately on any nonzero value.
type StopFlags uint8

const (
	StopForBreak StopFlags = 1 << iota
	StopForReturn
	StopForContinue
	StopForThrow
)

func (f StopFlags) has(bit StopFlags) bool { return f&bit != 0 }

// Any reports whether any stop reason is set — the per-child fast check
// every node performs before evaluating its next sibling.
func (f StopFlags) Any() bool { return f != 0 }

// SetBreak raises stop_for_break (spec §4.4).
func (c *Context) SetBreak() { c.Stop |= StopForBreak }

// SetReturn raises stop_for_return.
func (c *Context) SetReturn() { c.Stop |= StopForReturn }

// SetContinue raises stop_for_continue.
func (c *Context) SetContinue() { c.Stop |= StopForContinue }

// ClearBreak lowers stop_for_break: loop nodes clear it when exiting.
func (c *Context) ClearBreak() { c.Stop &^= StopForBreak }

// ClearContinue lowers stop_for_continue: loop nodes clear it at each
// iteration boundary.
func (c *Context) ClearContinue() { c.Stop &^= StopForContinue }

// ClearReturn lowers stop_for_return: function call nodes clear it after
// rendezvousing with the caller.
func (c *Context) ClearReturn() { c.Stop &^= StopForReturn }

// Throw raises stop_for_throw and records the exception message. Native
// (built-in) implementations registered in internal/builtin call this
// directly when a runtime check fails.
func (c *Context) Throw(msg string) error {
	c.Stop |= StopForThrow
	c.LastException = msg
	return throwError{msg}
}

// ClearThrow lowers stop_for_throw — only a try-catch that catches the
// exception may do this (spec §4.4: "cleared only by a try-catch that
// catches it").
func (c *Context) ClearThrow() { c.Stop &^= StopForThrow }

// IsThrowing reports whether a throw is currently propagating.
func (c *Context) IsThrowing() bool { return c.Stop.has(StopForThrow) }

// IsBreaking, IsReturning, IsContinuing mirror IsThrowing for the other
// three reasons.
func (c *Context) IsBreaking() bool   { return c.Stop.has(StopForBreak) }
func (c *Context) IsReturning() bool  { return c.Stop.has(StopForReturn) }
func (c *Context) IsContinuing() bool { return c.Stop.has(StopForContinue) }

// throwError is the sentinel error value Throw returns, letting Go
// call-sites that prefer `if err != nil` composition short-circuit
// without re-deriving the message from the Context.
type throwError struct{ msg string }

func (e throwError) Error() string { return e.msg }
