package infer

import (
	"github.com/dascript-lang/dascript/internal/ast"
	"github.com/dascript-lang/dascript/internal/errcat"
	"github.com/dascript-lang/dascript/internal/library"
	"github.com/dascript-lang/dascript/internal/types"
)

// InferProgram runs inference over every user function body and global
// initializer (spec §4.2). It is idempotent: re-running it on an already
// inferred program re-derives the same types. Errors are accumulated on
// prog.Errors; InferProgram itself never returns an error, matching spec
// §6.1's `Program::infer() → () | errors` (the errors live on the
// Program, not in a returned value).
func InferProgram(prog *library.Program) {
	for _, v := range prog.UserModule.AllGlobals() {
		if v.Initializer == nil {
			continue
		}
		c := newCtx(prog, nil)
		inferred := c.infer(v.Initializer)
		v.Initializer = inferred
		if inferred.GetType() != nil && !types.IsSame(inferred.GetType().AsValue(), v.Decl.AsValue(), false, false) {
			c.errorf(inferred.Pos(), errcat.KindInvalidType, errcat.MsgTypeMismatch,
				v.Decl.MangledName(), inferred.GetType().MangledName())
		}
	}

	for _, fn := range prog.UserModule.AllFunctions() {
		if fn.BuiltIn || fn.Body == nil {
			continue
		}
		inferFunction(prog, fn)
	}
}

func inferFunction(prog *library.Program, fn *ast.Function) {
	c := newCtx(prog, fn)
	fn.Body = c.infer(fn.Body)

	if !fn.Result.IsVoid() {
		if !allPathsReturn(fn.Body) {
			c.errorf(fn.At, errcat.KindNotAllPathsReturn, errcat.MsgTypeMismatch, fn.Result.MangledName(), "void (not all paths return)")
		}
	}
}

// infer is the single dispatch point: a type switch over the concrete
// node, in place of the source project's virtual infer() per node (spec
// §9). It returns the (possibly rewritten, e.g. wrapped in an implicit
// deref) expression with Type set, or the same expression with Type left
// nil if an error was recorded.
func (c *ctx) infer(e ast.Expression) ast.Expression {
	if e == nil {
		return nil
	}
	switch n := e.(type) {
	case *ast.BoolConst:
		n.SetType(types.NewPrimitive(types.TBool))
		return n
	case *ast.IntConst:
		n.SetType(types.NewPrimitive(types.TInt32))
		return n
	case *ast.UIntConst:
		n.SetType(types.NewPrimitive(types.TUInt32))
		return n
	case *ast.Int64Const:
		n.SetType(types.NewPrimitive(types.TInt64))
		return n
	case *ast.UInt64Const:
		n.SetType(types.NewPrimitive(types.TUInt64))
		return n
	case *ast.FloatConst:
		n.SetType(types.NewPrimitive(types.TFloat))
		return n
	case *ast.DoubleConst:
		n.SetType(types.NewPrimitive(types.TDouble))
		return n
	case *ast.StringConst:
		n.SetType(types.NewPrimitive(types.TString))
		return n
	case *ast.PtrConst:
		n.SetType(types.NewPointerTo(types.NewPrimitive(types.TVoid)))
		return n
	case *ast.EnumConst:
		return c.inferEnumConst(n)
	case *ast.VariableRef:
		return c.inferVariableRef(n)
	case *ast.FieldExpr:
		return c.inferField(n)
	case *ast.SafeFieldExpr:
		return c.inferSafeField(n)
	case *ast.IndexExpr:
		return c.inferIndex(n)
	case *ast.Ref2Value:
		return c.inferRef2Value(n)
	case *ast.Ptr2Ref:
		return c.inferPtr2Ref(n)
	case *ast.NullCoalescing:
		return c.inferNullCoalescing(n)
	case *ast.UnaryOp:
		return c.inferUnary(n)
	case *ast.BinaryOp:
		return c.inferBinary(n)
	case *ast.Ternary:
		return c.inferTernary(n)
	case *ast.Copy:
		return c.inferCopy(n)
	case *ast.Move:
		return c.inferMove(n)
	case *ast.New:
		return c.inferNew(n)
	case *ast.Sizeof:
		return c.inferSizeof(n)
	case *ast.Assert:
		return c.inferAssert(n)
	case *ast.Debug:
		return c.inferDebug(n)
	case *ast.Hash:
		return c.inferHash(n)
	case *ast.ArrayPush:
		return c.inferArrayPush(n)
	case *ast.Erase:
		return c.inferErase(n)
	case *ast.Find:
		return c.inferFind(n)
	case *ast.TableKeys:
		return c.inferTableKeys(n)
	case *ast.TableValues:
		return c.inferTableValues(n)
	case *ast.Call:
		return c.inferCall(n)
	case *ast.MakeBlock:
		return c.inferMakeBlock(n)
	case *ast.Invoke:
		return c.inferInvoke(n)
	case *ast.If:
		return c.inferIf(n)
	case *ast.While:
		return c.inferWhile(n)
	case *ast.For:
		return c.inferFor(n)
	case *ast.Let:
		return c.inferLet(n)
	case *ast.Block:
		return c.inferBlock(n)
	case *ast.Return:
		return c.inferReturn(n)
	case *ast.Break:
		return c.inferBreak(n)
	case *ast.Continue:
		return c.inferContinue(n)
	case *ast.TryCatch:
		return c.inferTryCatch(n)
	default:
		c.errorf(e.Pos(), errcat.KindMissingNode, "unhandled expression kind %T", e)
		return e
	}
}

// isSimpleScalar reports whether t is eligible for Ref2Value's implicit
// load (spec §4.2: "input must be a reference to a simple scalar type").
// Structures, arrays, tables and blocks are inherently reference-held and
// are never auto-loaded into a value register this way.
func isSimpleScalar(t *types.TypeDecl) bool {
	switch t.Base {
	case types.TStructure, types.TArray, types.TTable, types.TTuple, types.TBlock:
		return false
	default:
		return true
	}
}

// maybeDeref inserts a Ref2Value around e when e's type is an explicit
// reference to a simple scalar and the context wants a plain value
// (wantRef == false); structures/arrays/tables keep their inherent
// reference regardless.
func maybeDeref(e ast.Expression, wantRef bool) ast.Expression {
	t := e.GetType()
	if t == nil || wantRef || !t.Ref || !isSimpleScalar(t) {
		return e
	}
	r := &ast.Ref2Value{Operand: e}
	r.At = e.Pos()
	r.SetType(t.AsValue())
	return r
}

// allPathsReturn is a conservative structural check used for the "not all
// paths return" diagnostic (spec §7's logic-error group): an If needs both
// arms to return, a Block needs its last statement to return (or contain
// an unconditional Return), a TryCatch needs both arms to.
func allPathsReturn(e ast.Expression) bool {
	switch n := e.(type) {
	case *ast.Return:
		return true
	case *ast.Block:
		for i := len(n.Statements) - 1; i >= 0; i-- {
			if allPathsReturn(n.Statements[i]) {
				return true
			}
			// a statement that is itself not a control node (e.g. a bare
			// call) doesn't terminate the search; only genuinely
			// non-terminating statements let us keep scanning backward.
			if !isPassthroughStatement(n.Statements[i]) {
				return false
			}
		}
		return false
	case *ast.If:
		return n.Else != nil && allPathsReturn(n.Then) && allPathsReturn(n.Else)
	case *ast.TryCatch:
		return allPathsReturn(n.Try) && allPathsReturn(n.Catch)
	default:
		return false
	}
}

// isPassthroughStatement reports whether a statement never itself
// terminates control flow, so scanning for "all paths return" may look
// past it to the statement before it.
func isPassthroughStatement(e ast.Expression) bool {
	switch e.(type) {
	case *ast.Let, *ast.Assert, *ast.Debug, *ast.Call, *ast.Copy, *ast.Move, *ast.ArrayPush, *ast.Erase:
		return true
	default:
		return false
	}
}
