package simulate

import (
	"fmt"

	"github.com/dascript-lang/dascript/internal/ast"
	"github.com/dascript-lang/dascript/internal/sim"
	"github.com/dascript-lang/dascript/internal/types"
)

// lower is the single dispatch point mirroring internal/infer's infer():
// a type switch over the concrete AST node producing the matching
// SimNode, instead of a virtual lower() method per node (spec §9).
func (fr *frame) lower(e ast.Expression) (sim.SimNode, error) {
	if e == nil {
		return nil, nil
	}
	switch n := e.(type) {
	case *ast.BoolConst:
		return &sim.ConstNode{Value: sim.BoolRegister(n.Value)}, nil
	case *ast.IntConst:
		return &sim.ConstNode{Value: sim.Int32Register(n.Value)}, nil
	case *ast.UIntConst:
		return &sim.ConstNode{Value: sim.UInt32Register(n.Value)}, nil
	case *ast.Int64Const:
		return &sim.ConstNode{Value: sim.Int64Register(n.Value)}, nil
	case *ast.UInt64Const:
		return &sim.ConstNode{Value: sim.UInt64Register(n.Value)}, nil
	case *ast.FloatConst:
		return &sim.ConstNode{Value: sim.FloatRegister(n.Value)}, nil
	case *ast.DoubleConst:
		return &sim.ConstNode{Value: sim.DoubleRegister(n.Value)}, nil
	case *ast.StringConst:
		return &sim.ConstNode{Value: sim.StringRegister(n.Value)}, nil
	case *ast.PtrConst:
		return &sim.ConstNode{Value: sim.Null}, nil
	case *ast.EnumConst:
		return &sim.ConstNode{Value: sim.Int32Register(int32(n.Value))}, nil

	case *ast.VariableRef:
		return fr.resolveVar(n.Variable)

	case *ast.FieldExpr:
		return fr.lowerField(n)
	case *ast.SafeFieldExpr:
		return fr.lowerSafeField(n)
	case *ast.IndexExpr:
		return fr.lowerIndex(n)
	case *ast.Ref2Value:
		operand, err := fr.lower(n.Operand)
		if err != nil {
			return nil, err
		}
		return &sim.Ref2ValueNode{Operand: operand}, nil
	case *ast.Ptr2Ref:
		operand, err := fr.lower(n.Operand)
		if err != nil {
			return nil, err
		}
		return &sim.Ptr2RefNode{Operand: operand}, nil
	case *ast.NullCoalescing:
		pointer, err := fr.lower(n.Pointer)
		if err != nil {
			return nil, err
		}
		def, err := fr.lower(n.Default)
		if err != nil {
			return nil, err
		}
		return &sim.NullCoalescingNode{Pointer: pointer, Default: def}, nil

	case *ast.UnaryOp:
		return fr.lowerUnary(n)
	case *ast.BinaryOp:
		return fr.lowerBinary(n)
	case *ast.Ternary:
		cond, err := fr.lower(n.Cond)
		if err != nil {
			return nil, err
		}
		then, err := fr.lower(n.Then)
		if err != nil {
			return nil, err
		}
		els, err := fr.lower(n.Else)
		if err != nil {
			return nil, err
		}
		return &sim.TernaryNode{Cond: cond, Then: then, Else: els}, nil
	case *ast.Copy:
		left, err := fr.lowerLValue(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := fr.lower(n.Right)
		if err != nil {
			return nil, err
		}
		return &sim.CopyNode{Left: left, Right: right, Type: n.Left.GetType()}, nil
	case *ast.Move:
		left, err := fr.lowerLValue(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := fr.lower(n.Right)
		if err != nil {
			return nil, err
		}
		return &sim.MoveNode{Left: left, Right: right}, nil

	case *ast.New:
		return &sim.NewNode{Target: n.Target}, nil
	case *ast.Sizeof:
		t := n.Operand.GetType()
		if t == nil {
			return nil, fmt.Errorf("sizeof operand has no inferred type")
		}
		return &sim.SizeofNode{Size: uint32(t.SizeOf())}, nil
	case *ast.Assert:
		return fr.lowerAssert(n)
	case *ast.Debug:
		return fr.lowerDebug(n)
	case *ast.Hash:
		operand, err := fr.lower(n.Operand)
		if err != nil {
			return nil, err
		}
		return &sim.HashNode{Operand: operand, Type: n.Operand.GetType()}, nil
	case *ast.ArrayPush:
		return fr.lowerArrayPush(n)
	case *ast.Erase:
		container, err := fr.lower(n.Container)
		if err != nil {
			return nil, err
		}
		key, err := fr.lower(n.Key)
		if err != nil {
			return nil, err
		}
		return &sim.EraseNode{Container: container, Key: key, OnTable: n.OnTable}, nil
	case *ast.Find:
		container, err := fr.lower(n.Container)
		if err != nil {
			return nil, err
		}
		key, err := fr.lower(n.Key)
		if err != nil {
			return nil, err
		}
		return &sim.FindNode{Container: container, Key: key}, nil
	case *ast.TableKeys:
		table, err := fr.lower(n.Table)
		if err != nil {
			return nil, err
		}
		return &sim.TableKeysNode{Table: table, Elem: n.Table.GetType().FirstType}, nil
	case *ast.TableValues:
		table, err := fr.lower(n.Table)
		if err != nil {
			return nil, err
		}
		return &sim.TableValuesNode{Table: table, Elem: n.Table.GetType().SecondType}, nil

	case *ast.Call:
		return fr.lowerCall(n)
	case *ast.MakeBlock:
		return fr.lowerMakeBlock(n)
	case *ast.Invoke:
		return fr.lowerInvoke(n)

	case *ast.If:
		cond, err := fr.lower(n.Cond)
		if err != nil {
			return nil, err
		}
		then, err := fr.lower(n.Then)
		if err != nil {
			return nil, err
		}
		els, err := fr.lower(n.Else)
		if err != nil {
			return nil, err
		}
		return &sim.IfNode{Cond: cond, Then: then, Else: els}, nil
	case *ast.While:
		cond, err := fr.lower(n.Cond)
		if err != nil {
			return nil, err
		}
		body, err := fr.lower(n.Body)
		if err != nil {
			return nil, err
		}
		return &sim.WhileNode{Cond: cond, Body: body}, nil
	case *ast.For:
		return fr.lowerFor(n)
	case *ast.Let:
		return fr.lowerLet(n)
	case *ast.Block:
		stmts := make([]sim.SimNode, len(n.Statements))
		for i, s := range n.Statements {
			node, err := fr.lower(s)
			if err != nil {
				return nil, err
			}
			stmts[i] = node
		}
		return &sim.BlockNode{Statements: stmts, ReturnsValue: n.ReturnsValue}, nil
	case *ast.Return:
		operand, err := fr.lower(n.Operand)
		if err != nil {
			return nil, err
		}
		return &sim.ReturnNode{Operand: operand}, nil
	case *ast.Break:
		return &sim.BreakNode{}, nil
	case *ast.Continue:
		return &sim.ContinueNode{}, nil
	case *ast.TryCatch:
		return fr.lowerTryCatch(n)

	default:
		return nil, fmt.Errorf("simulate: unhandled expression kind %T", e)
	}
}

func (fr *frame) lowerMany(es []ast.Expression) ([]sim.SimNode, error) {
	out := make([]sim.SimNode, len(es))
	for i, e := range es {
		n, err := fr.lower(e)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

func (fr *frame) lowerLValue(e ast.Expression) (sim.LValue, error) {
	n, err := fr.lower(e)
	if err != nil {
		return nil, err
	}
	lv, ok := n.(sim.LValue)
	if !ok {
		return nil, fmt.Errorf("expression %T is not assignable", e)
	}
	return lv, nil
}

func (fr *frame) lowerField(n *ast.FieldExpr) (sim.SimNode, error) {
	operand, err := fr.lower(n.Operand)
	if err != nil {
		return nil, err
	}
	opT := n.Operand.GetType()
	if opT == nil || opT.StructType == nil {
		return nil, fmt.Errorf("field access on non-structure type %v", opT)
	}
	idx := fieldIndexOf(opT.StructType, n.Field)
	if idx < 0 {
		return nil, fmt.Errorf("field %q not found on %s", n.Field, opT.StructType.Name)
	}
	return &sim.FieldRef{Operand: operand, FieldIndex: idx}, nil
}

func (fr *frame) lowerSafeField(n *ast.SafeFieldExpr) (sim.SimNode, error) {
	operand, err := fr.lower(n.Operand)
	if err != nil {
		return nil, err
	}
	opT := n.Operand.GetType()
	if opT == nil || opT.FirstType == nil || opT.FirstType.StructType == nil {
		return nil, fmt.Errorf("safe field access on non-structure pointer type %v", opT)
	}
	idx := fieldIndexOf(opT.FirstType.StructType, n.Field)
	if idx < 0 {
		return nil, fmt.Errorf("field %q not found on %s", n.Field, opT.FirstType.StructType.Name)
	}
	return &sim.SafeFieldRef{Operand: operand, FieldIndex: idx}, nil
}

func (fr *frame) lowerIndex(n *ast.IndexExpr) (sim.SimNode, error) {
	operand, err := fr.lower(n.Operand)
	if err != nil {
		return nil, err
	}
	index, err := fr.lower(n.Index)
	if err != nil {
		return nil, err
	}
	switch n.Kind {
	case ast.IndexGoodArray:
		return &sim.IndexRef{Operand: operand, Index: index, Kind: sim.IndexGoodArray}, nil
	case ast.IndexGoodTable:
		return &sim.IndexRef{Operand: operand, Index: index, Kind: sim.IndexGoodTable}, nil
	case ast.IndexFixedDim:
		return &sim.IndexRef{Operand: operand, Index: index, Kind: sim.IndexFixedDim}, nil
	case ast.IndexHandle:
		return nil, fmt.Errorf("handle indexing is not supported: no native index hook is registered for %v", n.Operand.GetType())
	default:
		return nil, fmt.Errorf("unknown index kind %d", n.Kind)
	}
}

func fieldIndexOf(s *types.Structure, name string) int {
	for i, f := range s.Fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}
