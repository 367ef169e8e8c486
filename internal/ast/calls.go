package ast

// Call invokes a named, module-qualified-or-not function; inference
// resolves Resolved from Name+Module+Args via overload resolution (spec
// §4.2.1).
type Call struct {
	ExprBase
	Module   string // "" if unqualified
	Name     string
	Args     []Expression
	Resolved *Function
}

func (c *Call) Clone() Expression {
	n := *c
	n.Args = cloneAll(c.Args)
	return &n
}

// MakeBlock constructs a captured callable (a "block") from a lambda-like
// body; its Type becomes `block<(params) -> result>` (spec §3/§4.4).
type MakeBlock struct {
	ExprBase
	Params []*Variable
	Body   Expression
}

func (c *MakeBlock) Clone() Expression {
	n := *c
	n.Params = make([]*Variable, len(c.Params))
	for i, p := range c.Params {
		n.Params[i] = p.Clone()
	}
	n.Body = c.Body.Clone()
	return &n
}

// Invoke enters a block's body with caller-supplied arguments (spec
// §4.4, "Blocks"). Inference does not check a block body for a
// return/break that escapes its lexical context: inside a loop, a break
// in the body is accepted, and a return is accepted anywhere.
type Invoke struct {
	ExprBase
	Block Expression
	Args  []Expression
}

func (c *Invoke) Clone() Expression {
	n := *c
	n.Block = c.Block.Clone()
	n.Args = cloneAll(c.Args)
	return &n
}

func cloneAll(exprs []Expression) []Expression {
	if exprs == nil {
		return nil
	}
	out := make([]Expression, len(exprs))
	for i, e := range exprs {
		out[i] = e.Clone()
	}
	return out
}
