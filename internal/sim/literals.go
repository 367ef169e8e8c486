package sim

// ConstNode evaluates to a fixed Register, used for every literal kind
// (bool/int/uint/int64/uint64/float/double/string/null-pointer/enum
// constant) once internal/simulate has folded the AST literal into its
// runtime value.
type ConstNode struct {
	Value Register
}

func (n *ConstNode) Eval(ctx *Context) Register { return n.Value }
