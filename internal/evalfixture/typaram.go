package evalfixture

import (
	"encoding/json"
	"fmt"

	"github.com/sunholo/lcc/internal/term"
)

// TyParam is the wire shape of a term.TyParam fixture, covering the
// literal/mono/binary/unary shapes cmd/evalctl's `reduce` subcommand and
// internal/evalrepl's `:type` command need to demonstrate eval_tp/
// eval_bin_tp (spec.md §4.9).
type TyParam struct {
	Kind string `json:"kind"`

	// value: an int/nat/str/bool literal lifted into TyParam position
	LitKind string `json:"litKind,omitempty"`
	Content string `json:"content,omitempty"`

	// mono
	Name string `json:"name,omitempty"`

	// binary / unary
	Op  string   `json:"op,omitempty"`
	Lhs *TyParam `json:"lhs,omitempty"`
	Rhs *TyParam `json:"rhs,omitempty"`
	Val *TyParam `json:"val,omitempty"`
}

var opKinds = map[string]term.OpKind{
	"+": term.Add, "-": term.Sub, "*": term.Mul, "/": term.Div, "**": term.Pow,
	"%": term.Mod, "==": term.Eq, "!=": term.Ne, "<": term.Lt, ">": term.Gt,
	"<=": term.Le, ">=": term.Ge, "and": term.And, "or": term.Or,
	"pos": term.Pos, "neg": term.Neg, "invert": term.Invert,
}

// DecodeTyParam parses a single JSON type-term fixture into a term.TyParam.
func DecodeTyParam(data []byte) (term.TyParam, error) {
	var tp TyParam
	if err := json.Unmarshal(data, &tp); err != nil {
		return nil, fmt.Errorf("evalfixture: invalid JSON: %w", err)
	}
	return BuildTyParam(&tp)
}

// BuildTyParam converts a decoded TyParam DTO into the term.TyParam it
// describes.
func BuildTyParam(tp *TyParam) (term.TyParam, error) {
	if tp == nil {
		return nil, fmt.Errorf("evalfixture: nil type parameter")
	}
	switch tp.Kind {
	case "value":
		v, err := literalValue(tp.LitKind, tp.Content)
		if err != nil {
			return nil, err
		}
		return &term.TpValue{V: v}, nil

	case "mono":
		if tp.Name == "" {
			return nil, fmt.Errorf("evalfixture: mono type parameter missing name")
		}
		return &term.TpMono{Name: tp.Name}, nil

	case "type":
		if tp.Name == "" {
			return nil, fmt.Errorf("evalfixture: type parameter missing mono type name")
		}
		return &term.TpType{T: &term.MonoType{Name: tp.Name}}, nil

	case "binary":
		op, ok := opKinds[tp.Op]
		if !ok {
			return nil, fmt.Errorf("evalfixture: unknown operator %q", tp.Op)
		}
		lhs, err := BuildTyParam(tp.Lhs)
		if err != nil {
			return nil, err
		}
		rhs, err := BuildTyParam(tp.Rhs)
		if err != nil {
			return nil, err
		}
		return &term.TpBinOp{Op: op, Lhs: lhs, Rhs: rhs}, nil

	case "unary":
		op, ok := opKinds[tp.Op]
		if !ok {
			return nil, fmt.Errorf("evalfixture: unknown operator %q", tp.Op)
		}
		val, err := BuildTyParam(tp.Val)
		if err != nil {
			return nil, err
		}
		return &term.TpUnaryOp{Op: op, Val: val}, nil

	default:
		return nil, fmt.Errorf("evalfixture: unknown type parameter kind %q", tp.Kind)
	}
}

func literalValue(kind, content string) (term.Value, error) {
	switch kind {
	case "int":
		var n int64
		if _, err := fmt.Sscanf(content, "%d", &n); err != nil {
			return nil, fmt.Errorf("evalfixture: invalid int literal %q: %w", content, err)
		}
		return term.NewInt(n), nil
	case "nat":
		var n uint64
		if _, err := fmt.Sscanf(content, "%d", &n); err != nil {
			return nil, fmt.Errorf("evalfixture: invalid nat literal %q: %w", content, err)
		}
		return term.NewNat(n), nil
	case "str":
		return &term.StrValue{V: normalizeStr(content)}, nil
	case "bool":
		return &term.BoolValue{V: content == "true"}, nil
	default:
		return nil, fmt.Errorf("evalfixture: unknown literal kind %q", kind)
	}
}
