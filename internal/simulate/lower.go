package simulate

import (
	"fmt"
	"sort"

	"github.com/dascript-lang/dascript/internal/ast"
	"github.com/dascript-lang/dascript/internal/builtin"
	"github.com/dascript-lang/dascript/internal/library"
	"github.com/dascript-lang/dascript/internal/sim"
)

// lowering carries the state shared by every frame this pass lowers:
// the native registry every built-in Call/operator resolves against,
// and the function/global dense-index tables assigned once up front
// (spec §4.3: "for each module, assign dense indices").
type lowering struct {
	reg       builtin.Registry
	funcIndex map[string]int        // Mangled() -> Program.Functions index
	globals   map[*ast.Variable]int // identity -> Program.Globals index
}

// Lower assigns dense indices and produces a ready-to-run *sim.Program
// from a fully inferred Program (spec §4.3, §6.1's "Program::simulate").
// prog must already have passed through internal/infer.InferProgram.
func Lower(prog *library.Program, reg builtin.Registry) (*sim.Program, error) {
	l := &lowering{reg: reg, funcIndex: map[string]int{}, globals: map[*ast.Variable]int{}}

	globals := prog.UserModule.AllGlobals()
	sort.Slice(globals, func(i, j int) bool { return globals[i].Name < globals[j].Name })
	for i, v := range globals {
		v.Index = i
		l.globals[v] = i
	}

	var fns []*ast.Function
	for _, m := range prog.Library.Modules {
		for _, fn := range m.AllFunctions() {
			if fn.Body == nil {
				continue // built-ins and forward declarations carry no entry node
			}
			fns = append(fns, fn)
		}
	}
	sort.Slice(fns, func(i, j int) bool { return fns[i].Mangled() < fns[j].Mangled() })
	for i, fn := range fns {
		fn.Index = i
		l.funcIndex[fn.Mangled()] = i
	}

	functions := make([]sim.FunctionInfo, len(fns))
	byName := map[string]int{}
	for i, fn := range fns {
		fr := l.newFunctionFrame(fn)
		entry, err := fr.lower(fn.Body)
		if err != nil {
			return nil, fmt.Errorf("function %s: %w", fn.Mangled(), err)
		}
		fn.TotalStackSize = fr.nextSlot
		functions[i] = sim.FunctionInfo{Fn: fn, Entry: entry, StackSize: fr.nextSlot}
		if _, exists := byName[fn.Name]; !exists {
			byName[fn.Name] = i
		}
	}

	globalInfos := make([]sim.GlobalInfo, len(globals))
	gfr := l.newGlobalFrame()
	for i, v := range globals {
		var init sim.SimNode
		if v.Initializer != nil {
			n, err := gfr.lower(v.Initializer)
			if err != nil {
				return nil, fmt.Errorf("global %s: %w", v.Name, err)
			}
			init = n
		} else if sim.NeedsZeroValue(v.Decl) {
			init = &sim.ZeroValueNode{Type: v.Decl}
		}
		globalInfos[i] = sim.GlobalInfo{Var: v, Init: init}
	}

	return &sim.Program{Functions: functions, Globals: globalInfos, ByName: byName}, nil
}

// nativeFor returns the NativeFunc a resolved operator/call overload
// should invoke: the registry entry directly for a built-in, or a
// closure dispatching to the user function's own compiled entry for
// anything else (spec §4.4, "Calls" — an operator overload is "a call
// to op<Op>" regardless of which kind of function answers it).
func (l *lowering) nativeFor(fn *ast.Function) (sim.NativeFunc, error) {
	if fn.BuiltIn {
		native, ok := l.reg[fn.NativeKey()]
		if !ok {
			return nil, fmt.Errorf("no native registered for built-in %s (key %q)", fn.Mangled(), fn.NativeKey())
		}
		return native, nil
	}
	idx, ok := l.funcIndex[fn.Mangled()]
	if !ok {
		return nil, fmt.Errorf("no compiled entry for function %s", fn.Mangled())
	}
	return func(ctx *sim.Context, args []sim.Register) sim.Register {
		return ctx.Eval(idx, args)
	}, nil
}
