package diag

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/sunholo/lcc/internal/ast"
)

// Location is a source span. Aliased under the name spec.md §6 uses so
// call sites read the way the specification does.
type Location = ast.Span

// EvalErrorKind enumerates the error kinds spec.md §7 assigns to the
// evaluator.
type EvalErrorKind int

const (
	NoVariable EvalErrorKind = iota
	NoAttribute
	NotConstExpr
	TypeMismatch
	NoCandidate
	FeatureError
	Unreachable
	Precondition   // SubstContext arity mismatch and similar (§4.7, testable property 3)
	Todo           // shallow_eq_tp's deliberately-undecided shapes (§4.11, §9 open question)
	RecursionLimit // Context.Level would exceed Config.MaxRecursionDepth (§1: detect, don't prove)
)

func (k EvalErrorKind) code() string {
	switch k {
	case NoVariable:
		return EV001
	case NoAttribute:
		return EV002
	case NotConstExpr:
		return EV003
	case TypeMismatch:
		return EV004
	case NoCandidate:
		return EV005
	case FeatureError:
		return EV006
	case Unreachable:
		return EV007
	case Precondition:
		return EV008
	case Todo:
		return EV009
	case RecursionLimit:
		return EV010
	default:
		return "EV000"
	}
}

func (k EvalErrorKind) String() string {
	switch k {
	case NoVariable:
		return "no variable"
	case NoAttribute:
		return "no attribute"
	case NotConstExpr:
		return "not a constant expression"
	case TypeMismatch:
		return "type mismatch"
	case NoCandidate:
		return "no candidate"
	case FeatureError:
		return "feature error"
	case Unreachable:
		return "unreachable"
	case Precondition:
		return "precondition violated"
	case Todo:
		return "todo"
	case RecursionLimit:
		return "recursion limit exceeded"
	default:
		return "unknown"
	}
}

// EvalError is the evaluator's error type. Every non-local failure the
// evaluator raises is one of these; it carries enough to render a rich
// diagnostic (span, input handle, caused-by chain) without the evaluator
// ever needing to depend on a rendering/CLI package.
type EvalError struct {
	Kind     EvalErrorKind
	Span     Location
	Input    string   // diagnostic source handle: file path or REPL buffer name
	CausedBy []string // chain of enclosing context/frame names, innermost last
	Message  string
	Hint     string   // optional suggestion (e.g. "no candidate" impl hint)
	Similar  []string // optional near-miss identifier suggestions
}

func (e *EvalError) Error() string {
	var b strings.Builder
	if e.Input != "" {
		fmt.Fprintf(&b, "%s: ", e.Input)
	}
	fmt.Fprintf(&b, "%s", e.Span)
	fmt.Fprintf(&b, ": %s: %s", e.Kind, e.Message)
	if len(e.CausedBy) > 0 {
		fmt.Fprintf(&b, " (caused by %s)", strings.Join(e.CausedBy, " -> "))
	}
	if e.Hint != "" {
		fmt.Fprintf(&b, "\n  hint: %s", e.Hint)
	}
	if len(e.Similar) > 0 {
		fmt.Fprintf(&b, "\n  did you mean: %s?", strings.Join(e.Similar, ", "))
	}
	return b.String()
}

// ToReport converts the error into the ambient-layer Report shape.
func (e *EvalError) ToReport() *Report {
	data := map[string]any{}
	if len(e.CausedBy) > 0 {
		data["caused_by"] = e.CausedBy
	}
	if len(e.Similar) > 0 {
		data["similar"] = e.Similar
	}
	var fix *Fix
	if e.Hint != "" {
		fix = &Fix{Suggestion: e.Hint}
	}
	span := e.Span
	return &Report{
		Schema:  "lcc.error/v1",
		Code:    e.Kind.code(),
		Phase:   "eval",
		Message: e.Message,
		Span:    &span,
		Data:    data,
		Fix:     fix,
	}
}

func newErr(kind EvalErrorKind, input string, span Location, causedBy []string, msg string) *EvalError {
	return &EvalError{Kind: kind, Span: span, Input: input, CausedBy: causedBy, Message: msg}
}

// NewNoVariableError is raised by accessor resolution (spec.md §4.2 step 2).
// eval_tp's Mono-name lookup does not use it: an unresolved name there is
// reported with NewUnreachableError.
func NewNoVariableError(input string, span Location, causedBy []string, name string, similar []string) *EvalError {
	e := newErr(NoVariable, input, span, causedBy, fmt.Sprintf("no variable named %q in this scope", name))
	e.Similar = similar
	return e
}

// NewNoAttributeError is raised by attribute resolution (spec.md §4.2 step 3).
func NewNoAttributeError(input string, span Location, causedBy []string, onType, attr string) *EvalError {
	return newErr(NoAttribute, input, span, causedBy, fmt.Sprintf("%s has no attribute %q", onType, attr))
}

// NewNotConstExprError is raised whenever a non-const form is asked to
// evaluate (spec.md §4.2 step 3, §4.3, §4.4).
func NewNotConstExprError(input string, span Location, causedBy []string) *EvalError {
	return newErr(NotConstExpr, input, span, causedBy, "not a constant expression")
}

// NewTypeMismatchError is raised when a constant call's callee does not
// resolve to a subroutine value (spec.md §4.3).
func NewTypeMismatchError(input string, span Location, causedBy []string, name, expected, actual string) *EvalError {
	return newErr(TypeMismatch, input, span, causedBy,
		fmt.Sprintf("%s: expected %s, found %s", name, expected, actual))
}

// NewNoCandidateError is raised when eval_t_params cannot find an impl
// satisfying a projection (spec.md §4.8 step 6).
func NewNoCandidateError(input string, span Location, causedBy []string, projection string, hint string) *EvalError {
	e := newErr(NoCandidate, input, span, causedBy, fmt.Sprintf("no candidate for projection %s", projection))
	e.Hint = hint
	return e
}

// NewFeatureError marks a recognized-but-unimplemented shape (spec.md:
// user-defined const subroutine calls, eval_app, non-ident record patterns,
// non-normal arrays, unsupported substitution shapes, unknown operator
// tokens).
func NewFeatureError(input string, span Location, causedBy []string, what string) *EvalError {
	return newErr(FeatureError, input, span, causedBy, fmt.Sprintf("not yet supported: %s", what))
}

// NewUnreachableError marks a compiler invariant violation: the type checker
// was supposed to have ruled this case out (spec.md §7). fn and line are
// filled in automatically via runtime.Caller so call sites read just like
// the original's `fn_name!()`/`line!()` markers.
func NewUnreachableError(input string) *EvalError {
	fn, line := callerInfo()
	return newErr(Unreachable, input, Location{}, nil,
		fmt.Sprintf("internal invariant violated in %s:%d — this is a compiler bug, not a user error", fn, line))
}

// NewPreconditionError marks a violated precondition, such as
// SubstContext.New being handed a formal/actual arity mismatch (spec.md §4.7,
// testable property 3).
func NewPreconditionError(input string, msg string) *EvalError {
	return newErr(Precondition, input, Location{}, nil, msg)
}

// NewTodoError marks a shallow_eq_tp shape the spec's Open Question (§9)
// leaves for the implementer to decide; see ShallowEqTp's doc comment for
// the decision this repository made.
func NewTodoError(input string, msg string) *EvalError {
	return newErr(Todo, input, Location{}, nil, msg)
}

// NewRecursionLimitError is raised when growing a Context would exceed
// Config.MaxRecursionDepth: the evaluator cannot prove a const definition's
// recursion terminates, so it detects runaway depth and fails instead of
// overflowing the Go call stack (spec.md §1).
func NewRecursionLimitError(input string, span Location, causedBy []string, depth, limit int) *EvalError {
	return newErr(RecursionLimit, input, span, causedBy,
		fmt.Sprintf("recursion depth %d exceeds configured limit %d", depth, limit))
}

func callerInfo() (string, int) {
	pc, _, line, ok := runtime.Caller(2)
	if !ok {
		return "<unknown>", 0
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "<unknown>", line
	}
	name := fn.Name()
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		name = name[idx+1:]
	}
	return name, line
}
