// Package evalctx implements the evaluator's lexical/nominal
// environment (spec §3 "Context"): nested scopes, const/decl bindings,
// registered types and their super-type chains, trait-impl method
// tables, and handles to configuration and module caches.
//
// Unification and nominal super-type resolution are explicitly out of
// scope for this repository (spec §1: "the evaluator calls a
// sub_unify operation it does not define") — Unifier and
// NominalResolver below are the narrow injected interfaces a driver
// (type checker) implements and wires in at construction time.
package evalctx

import (
	"github.com/sunholo/lcc/internal/ast"
	"github.com/sunholo/lcc/internal/term"
)

// Unifier is the host-supplied unification collaborator (spec §6:
// sub_unify, sub_unify_tp).
type Unifier interface {
	// SubUnify attempts a ⊑ b, reporting loc and hint on failure.
	SubUnify(a, b term.Type, loc ast.Span, hint string) error
	// SubUnifyTp attempts a ⊑ b at the TyParam level. varCtx names the
	// context the free variables in a/b are scoped to; allowDivergence
	// permits the loose comparisons SubstContext's walker needs.
	SubUnifyTp(a, b term.TyParam, varCtx *Context, loc ast.Span, allowDivergence bool) error
}

// NominalResolver is the host-supplied nominal-hierarchy collaborator
// (spec §6: get_nominal_super_type_ctxs, supertype_of).
type NominalResolver interface {
	// GetNominalSuperTypeCtxs returns the (super type, defining Context)
	// pairs for ty, in stable impl-declaration order, or ok == false if
	// ty has no nominal hierarchy (e.g. it is a free variable).
	GetNominalSuperTypeCtxs(ty term.Type) (pairs []SuperTypeCtx, ok bool)
	// SupertypeOf reports whether a is a super-type of b.
	SupertypeOf(a, b term.Type) bool
}

// SuperTypeCtx pairs a nominal super-type with the Context that defines
// its consts and methods_list (spec §4.2 step 2, §4.8 step 4).
type SuperTypeCtx struct {
	Type term.Type
	Ctx  *Context
}
