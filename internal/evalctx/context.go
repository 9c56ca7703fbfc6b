package evalctx

import (
	"github.com/sunholo/lcc/internal/ast"
	"github.com/sunholo/lcc/internal/econfig"
	"github.com/sunholo/lcc/internal/modcache"
	"github.com/sunholo/lcc/internal/term"
)

// Kind is the scope shape a Context was grown as, named after the
// construct that introduced it (spec §4.4/§4.5: "Instant" def bodies,
// anonymous record bodies, lambda bodies).
type Kind int

const (
	KindModule Kind = iota
	KindInstant
	KindClass
	KindLambda
	KindRecord
	KindMethods
)

func (k Kind) String() string {
	switch k {
	case KindModule:
		return "module"
	case KindInstant:
		return "instant"
	case KindClass:
		return "class"
	case KindLambda:
		return "lambda"
	case KindRecord:
		return "record"
	case KindMethods:
		return "methods"
	default:
		return "unknown"
	}
}

// ClassDefType tags one entry of a Context's methods_list (spec §3).
type ClassDefType interface {
	classDefTypeNode()
}

// ImplTrait is the trait half of an impl block, used to filter method
// lookups during projection resolution (spec §4.8 step 4, Glossary
// "Impl trait").
type ImplTrait struct {
	Trait term.Type
}

func (ImplTrait) classDefTypeNode() {}

// MethodsEntry is one (ClassDefType, methods Context) pair of a
// Context's methods_list.
type MethodsEntry struct {
	Def ClassDefType
	Ctx *Context
}

// DeclBinding is a declared-but-not-yet-defined name, tracked so
// CheckDeclsAndPop can report which declarations a scope failed to
// satisfy (spec §4.4 step 4, §8 Testable Property 2).
type DeclBinding struct {
	Typ       term.Type
	Satisfied bool
}

// Context is the evaluator's lexical/nominal environment (spec §3).
// Contexts form a stack via Grow/Pop; each frame owns its locals and
// can read outer frames through Parent.
type Context struct {
	Name   string
	Input  string // diagnostic source handle
	Level  int
	Vis    ast.Visibility
	Kind   Kind
	Params []string // formal type-parameter names, "_" for anonymous (spec §4.7)

	consts map[string]term.Value
	decls  map[string]*DeclBinding
	bounds map[string]term.Bound

	Methods []MethodsEntry

	Parent *Context

	Unify   Unifier
	Nominal NominalResolver
	Config  *econfig.Config
	Cache   *modcache.Cache
}

// New creates a root Context (no parent): the module-level scope a
// driver evaluates a file's top-level definitions inside.
func New(name, input string, cfg *econfig.Config, cache *modcache.Cache, unify Unifier, nominal NominalResolver) *Context {
	if cfg == nil {
		cfg = econfig.Default()
	}
	return &Context{
		Name:    name,
		Input:   input,
		Level:   0,
		Kind:    KindModule,
		consts:  make(map[string]term.Value),
		decls:   make(map[string]*DeclBinding),
		Unify:   unify,
		Nominal: nominal,
		Config:  cfg,
		Cache:   cache,
	}
}

// CausedBy is the frame-name chain diagnostics attach to an error,
// innermost last (spec §6: caused_by()).
func (c *Context) CausedBy() []string {
	if c == nil {
		return nil
	}
	var chain []string
	if c.Parent != nil {
		chain = c.Parent.CausedBy()
	}
	return append(chain, c.Name)
}

// Path renders the dotted module path of this Context (spec §6: path()).
func (c *Context) Path() string {
	chain := c.CausedBy()
	out := ""
	for i, n := range chain {
		if i > 0 {
			out += "."
		}
		out += n
	}
	return out
}

// DeclareConst registers a binding directly into this frame's const
// table (used by the evaluator's evalDef parent-registration step, spec
// §4.4).
func (c *Context) DeclareConst(name string, v term.Value) {
	c.consts[name] = v
}

// Declare registers a decl binding (a name promised but not yet const),
// used by CheckDeclsAndPop (spec §4.4 step 4).
func (c *Context) Declare(name string, typ term.Type) {
	c.decls[name] = &DeclBinding{Typ: typ}
}
