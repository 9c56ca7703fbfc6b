package evaluator

import (
	"github.com/sunholo/lcc/internal/diag"
	"github.com/sunholo/lcc/internal/term"
)

// EvalPred reduces a refinement-type Predicate bottom-up (spec.md §4.10):
// leaves pass through unchanged, comparison atoms reduce their Rhs, and
// the connectives recurse into both arms.
func (e *Evaluator) EvalPred(p term.Predicate) (term.Predicate, error) {
	switch v := p.(type) {
	case *term.PredValue:
		return v, nil
	case *term.PredConst:
		return v, nil
	case *term.PredEq:
		rhs, err := e.EvalTp(v.Rhs)
		if err != nil {
			return nil, err
		}
		return &term.PredEq{Lhs: v.Lhs, Rhs: rhs}, nil
	case *term.PredNe:
		rhs, err := e.EvalTp(v.Rhs)
		if err != nil {
			return nil, err
		}
		return &term.PredNe{Lhs: v.Lhs, Rhs: rhs}, nil
	case *term.PredLe:
		rhs, err := e.EvalTp(v.Rhs)
		if err != nil {
			return nil, err
		}
		return &term.PredLe{Lhs: v.Lhs, Rhs: rhs}, nil
	case *term.PredGe:
		rhs, err := e.EvalTp(v.Rhs)
		if err != nil {
			return nil, err
		}
		return &term.PredGe{Lhs: v.Lhs, Rhs: rhs}, nil
	case *term.PredAnd:
		l, r, err := e.evalPredArms(v.L, v.R)
		if err != nil {
			return nil, err
		}
		return &term.PredAnd{L: l, R: r}, nil
	case *term.PredOr:
		l, r, err := e.evalPredArms(v.L, v.R)
		if err != nil {
			return nil, err
		}
		return &term.PredOr{L: l, R: r}, nil
	case *term.PredNot:
		l, r, err := e.evalPredArms(v.L, v.R)
		if err != nil {
			return nil, err
		}
		return &term.PredNot{L: l, R: r}, nil
	default:
		return nil, diag.NewUnreachableError(e.Ctx.Input)
	}
}

func (e *Evaluator) evalPredArms(l, r term.Predicate) (term.Predicate, term.Predicate, error) {
	rl, err := e.EvalPred(l)
	if err != nil {
		return nil, nil, err
	}
	rr, err := e.EvalPred(r)
	if err != nil {
		return nil, nil, err
	}
	return rl, rr, nil
}
