package sim

import (
	"fmt"
	"strings"
)

// Disassemble renders one function's SimNode tree as indented text: one
// line per node, children nested two spaces deeper, the same shape the
// teacher's internal/bytecode disassembler gives a flat instruction
// stream. Unlike a flat bytecode listing, a SimNode tree is already a
// tree, so this recurses into node fields directly instead of decoding
// an opcode stream.
func Disassemble(fn *FunctionInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "func %s (stack=%d)\n", fn.Fn.Mangled(), fn.StackSize)
	writeNode(&b, fn.Entry, 1)
	return b.String()
}

// DisassembleProgram renders every function and global initializer in
// declaration order (spec §4.3's dense-index order), for a whole-program
// golden-text snapshot.
func DisassembleProgram(p *Program) string {
	var b strings.Builder
	for i := range p.Functions {
		b.WriteString(Disassemble(&p.Functions[i]))
	}
	for i, g := range p.Globals {
		fmt.Fprintf(&b, "global %d %s\n", i, g.Var.Name)
		if g.Init != nil {
			writeNode(&b, g.Init, 1)
		}
	}
	return b.String()
}

func indent(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
}

// writeNode prints one node and recurses into its children. Node kinds
// this doesn't special-case still print (as their bare Go type name)
// rather than panicking, since the point of a disassembly is to show
// what ran, not to be an exhaustive formatter.
func writeNode(b *strings.Builder, n SimNode, depth int) {
	if n == nil {
		indent(b, depth)
		b.WriteString("<nil>\n")
		return
	}
	switch v := n.(type) {
	case *ConstNode:
		indent(b, depth)
		fmt.Fprintf(b, "const %d\n", v.Value.Bits)
	case *GlobalRef:
		indent(b, depth)
		fmt.Fprintf(b, "global_ref %d\n", v.Index)
	case *LocalRef:
		indent(b, depth)
		fmt.Fprintf(b, "local_ref %d\n", v.Offset)
	case *ArgRef:
		indent(b, depth)
		fmt.Fprintf(b, "arg_ref %d\n", v.Index)
	case *FieldRef:
		indent(b, depth)
		fmt.Fprintf(b, "field_ref %d\n", v.FieldIndex)
		writeNode(b, v.Operand, depth+1)
	case *IndexRef:
		indent(b, depth)
		b.WriteString("index_ref\n")
		writeNode(b, v.Operand, depth+1)
		writeNode(b, v.Index, depth+1)
	case *UnaryOpNode:
		indent(b, depth)
		b.WriteString("unop\n")
		writeNode(b, v.Operand, depth+1)
	case *BinaryOpNode:
		indent(b, depth)
		b.WriteString("binop\n")
		writeNode(b, v.Left, depth+1)
		writeNode(b, v.Right, depth+1)
	case *TernaryNode:
		indent(b, depth)
		b.WriteString("ternary\n")
		writeNode(b, v.Cond, depth+1)
		writeNode(b, v.Then, depth+1)
		writeNode(b, v.Else, depth+1)
	case *CopyNode:
		indent(b, depth)
		b.WriteString("copy\n")
		writeNode(b, v.Left, depth+1)
		writeNode(b, v.Right, depth+1)
	case *MoveNode:
		indent(b, depth)
		b.WriteString("move\n")
		writeNode(b, v.Left, depth+1)
		writeNode(b, v.Right, depth+1)
	case *IfNode:
		indent(b, depth)
		b.WriteString("if\n")
		writeNode(b, v.Cond, depth+1)
		writeNode(b, v.Then, depth+1)
		if v.Else != nil {
			writeNode(b, v.Else, depth+1)
		}
	case *WhileNode:
		indent(b, depth)
		b.WriteString("while\n")
		writeNode(b, v.Cond, depth+1)
		writeNode(b, v.Body, depth+1)
	case *ForNode:
		indent(b, depth)
		fmt.Fprintf(b, "for (%d sources)\n", len(v.Sources))
		writeNode(b, v.Body, depth+1)
	case *LetNode:
		indent(b, depth)
		b.WriteString("let\n")
		for i, init := range v.Inits {
			if init == nil {
				continue
			}
			indent(b, depth+1)
			fmt.Fprintf(b, "slot %d =\n", i)
			writeNode(b, init, depth+2)
		}
	case *BlockNode:
		indent(b, depth)
		fmt.Fprintf(b, "block (returns=%v)\n", v.ReturnsValue)
		for _, s := range v.Statements {
			writeNode(b, s, depth+1)
		}
	case *ReturnNode:
		indent(b, depth)
		b.WriteString("return\n")
		if v.Operand != nil {
			writeNode(b, v.Operand, depth+1)
		}
	case *BreakNode:
		indent(b, depth)
		b.WriteString("break\n")
	case *ContinueNode:
		indent(b, depth)
		b.WriteString("continue\n")
	case *TryCatchNode:
		indent(b, depth)
		b.WriteString("try\n")
		writeNode(b, v.Try, depth+1)
		indent(b, depth)
		b.WriteString("catch\n")
		writeNode(b, v.Catch, depth+1)
	case *CallNode:
		indent(b, depth)
		fmt.Fprintf(b, "call fn=%d native=%v\n", v.FnIdx, v.Native != nil)
		for _, a := range v.Args {
			writeNode(b, a, depth+1)
		}
	case *MakeBlockNode:
		indent(b, depth)
		b.WriteString("make_block\n")
		writeNode(b, v.Body, depth+1)
	case *InvokeNode:
		indent(b, depth)
		b.WriteString("invoke\n")
		writeNode(b, v.Block, depth+1)
		for _, a := range v.Args {
			writeNode(b, a, depth+1)
		}
	case *Ref2ValueNode:
		indent(b, depth)
		b.WriteString("ref2value\n")
		writeNode(b, v.Operand, depth+1)
	case *Ptr2RefNode:
		indent(b, depth)
		b.WriteString("ptr2ref\n")
		writeNode(b, v.Operand, depth+1)
	case *NullCoalescingNode:
		indent(b, depth)
		b.WriteString("null_coalescing\n")
		writeNode(b, v.Pointer, depth+1)
		writeNode(b, v.Default, depth+1)
	case *AssertNode:
		indent(b, depth)
		b.WriteString("assert\n")
		writeNode(b, v.Cond, depth+1)
	case *DebugNode:
		indent(b, depth)
		b.WriteString("debug\n")
		writeNode(b, v.Operand, depth+1)
	default:
		indent(b, depth)
		fmt.Fprintf(b, "%T\n", n)
	}
}
