package term

import (
	"math/big"
	"strings"

	"github.com/sunholo/lcc/internal/ast"
	"github.com/sunholo/lcc/internal/diag"
)

// TypeFromLiteralKind is the literal token→type table (spec §4.2,
// §9 supplement 3): the nine ground literal kinds map 1:1 to a
// monomorphic constant Type.
func TypeFromLiteralKind(k ast.LiteralKind) Type {
	return &MonoType{Name: k.String()}
}

// EvalLiteral parses a Literal's raw content into its canonical Value,
// per the table TypeFromLiteralKind mirrors (spec §4.2, §9 supplement 3).
func EvalLiteral(lit *ast.Literal, input string) (Value, error) {
	switch lit.Kind {
	case ast.NatLit:
		n, ok := new(big.Int).SetString(lit.Content, 10)
		if !ok || n.Sign() < 0 {
			return nil, diag.NewUnreachableError(input)
		}
		return &NatValue{V: n}, nil
	case ast.IntLit:
		n, ok := new(big.Int).SetString(lit.Content, 10)
		if !ok {
			return nil, diag.NewUnreachableError(input)
		}
		return &IntValue{V: n}, nil
	case ast.RatioLit:
		r, ok := new(big.Rat).SetString(lit.Content)
		if !ok {
			return nil, diag.NewUnreachableError(input)
		}
		return &RatioValue{V: r}, nil
	case ast.StrLit:
		return &StrValue{V: lit.Content}, nil
	case ast.BoolLit:
		return &BoolValue{V: strings.EqualFold(lit.Content, "True")}, nil
	case ast.NoneLit:
		return NoneVal, nil
	case ast.NotImplLit:
		return NotImplementedVal, nil
	case ast.EllipsisLit:
		return EllipsisVal, nil
	case ast.InfLit:
		return &InfValue{Negative: strings.HasPrefix(lit.Content, "-")}, nil
	default:
		return nil, diag.NewUnreachableError(input)
	}
}
