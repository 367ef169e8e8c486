package simulate

import (
	"fmt"

	"github.com/dascript-lang/dascript/internal/ast"
	"github.com/dascript-lang/dascript/internal/sim"
)

func (fr *frame) lowerLet(n *ast.Let) (sim.SimNode, error) {
	vars := make([]sim.LValue, len(n.Vars))
	inits := make([]sim.SimNode, len(n.Vars))
	for i, v := range n.Vars {
		slot := fr.declareLocal(v)
		if v.Initializer != nil {
			init, err := fr.lower(v.Initializer)
			if err != nil {
				return nil, err
			}
			inits[i] = init
		} else if sim.NeedsZeroValue(v.Decl) {
			inits[i] = &sim.ZeroValueNode{Type: v.Decl}
		}
		vars[i] = &sim.LocalRef{Offset: slot}
	}
	return &sim.LetNode{Vars: vars, Inits: inits}, nil
}

func (fr *frame) lowerTryCatch(n *ast.TryCatch) (sim.SimNode, error) {
	try, err := fr.lower(n.Try)
	if err != nil {
		return nil, err
	}
	var catchVar sim.LValue
	if n.CatchVar != nil {
		slot := fr.declareLocal(n.CatchVar)
		catchVar = &sim.LocalRef{Offset: slot}
	}
	catch, err := fr.lower(n.Catch)
	if err != nil {
		return nil, err
	}
	return &sim.TryCatchNode{Try: try, Catch: catch, CatchVar: catchVar}, nil
}

// forNode adapts ast.For's per-iteration-unknown source kind to
// sim.ForNode, which expects concrete sim.Iterators up front: Eval
// evaluates each lowered source expression once, builds the matching
// Iterator from its runtime value, and delegates the rest to a real
// sim.ForNode (spec §4.2, §8 property 8).
type forNode struct {
	sources []sim.SimNode
	kinds   []ast.ForSourceKind
	vars    []sim.LValue
	body    sim.SimNode
}

func (n *forNode) Eval(ctx *sim.Context) sim.Register {
	iters := make([]sim.Iterator, len(n.sources))
	for i, src := range n.sources {
		v := src.Eval(ctx)
		if ctx.IsThrowing() {
			return sim.Null
		}
		it, err := buildIterator(n.kinds[i], v)
		if err != nil {
			return ctx.Throw2(err.Error())
		}
		iters[i] = it
	}
	return (&sim.ForNode{Sources: iters, Vars: n.vars, Body: n.body}).Eval(ctx)
}

func buildIterator(kind ast.ForSourceKind, v sim.Register) (sim.Iterator, error) {
	switch kind {
	case ast.ForFixedDim:
		av, _ := v.Ref.(*sim.ArrayValue)
		if av == nil {
			return nil, fmt.Errorf("fixed-dim for-source is not an array value")
		}
		return sim.NewFixedDimIterator(av.Items), nil
	case ast.ForGoodArray:
		av, _ := v.Ref.(*sim.ArrayValue)
		if av == nil {
			return nil, fmt.Errorf("for-source is not an array value")
		}
		return sim.NewGoodArrayIterator(av), nil
	case ast.ForGoodTable:
		tv, _ := v.Ref.(*sim.TableValue)
		if tv == nil {
			return nil, fmt.Errorf("for-source is not a table value")
		}
		return sim.NewGoodTableIterator(tv), nil
	case ast.ForRange:
		rv, _ := v.Ref.(*sim.RangeValue)
		if rv == nil {
			return nil, fmt.Errorf("for-source is not a range value")
		}
		return sim.NewRangeIterator(rv.From, rv.To, rv.Step, rv.Signed), nil
	case ast.ForHandleIterator:
		return nil, fmt.Errorf("handle iteration is not supported: no native iterator hook is registered")
	default:
		return nil, fmt.Errorf("unknown for-source kind %d", kind)
	}
}

func (fr *frame) lowerFor(n *ast.For) (sim.SimNode, error) {
	sources, err := fr.lowerMany(n.Sources)
	if err != nil {
		return nil, err
	}
	vars := make([]sim.LValue, len(n.Vars))
	for i, v := range n.Vars {
		slot := fr.declareLocal(v)
		vars[i] = &sim.LocalRef{Offset: slot}
	}
	body, err := fr.lower(n.Body)
	if err != nil {
		return nil, err
	}
	return &forNode{sources: sources, kinds: n.SourceKinds, vars: vars, body: body}, nil
}
