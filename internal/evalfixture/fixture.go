// Package evalfixture decodes the JSON const-expr and type-term fixtures
// cmd/evalctl and internal/evalrepl read from a file or stdin, since no
// lexer/parser is implemented (spec.md's evaluator takes an already-built
// ast.Expr; fixtures are how a CLI user builds one without writing Go).
package evalfixture

import (
	"encoding/json"
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/sunholo/lcc/internal/ast"
)

// normalizeStr applies the same NFC normalization the teacher's lexer
// performs at its input boundary, so a Str fixture produces the same
// StrValue regardless of the JSON source's Unicode form.
func normalizeStr(s string) string {
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}

// Expr is the wire shape of an ast.Expr node. Kind selects which fields are
// meaningful; unused fields are omitted by convention but not rejected.
type Expr struct {
	Kind string `json:"kind"`

	// literal
	LitKind string `json:"litKind,omitempty"`
	Content string `json:"content,omitempty"`

	// ident
	Name    string `json:"name,omitempty"`
	IsConst bool   `json:"isConst,omitempty"`

	// binary / unary
	Op    string `json:"op,omitempty"`
	Left  *Expr  `json:"left,omitempty"`
	Right *Expr  `json:"right,omitempty"`
	Expr  *Expr  `json:"expr,omitempty"`

	// attribute
	Obj   *Expr `json:"obj,omitempty"`
	Field *Expr `json:"field,omitempty"`

	// call
	Callee  *Expr  `json:"callee,omitempty"`
	PosArgs []Expr `json:"posArgs,omitempty"`

	// array
	Elems []Expr `json:"elems,omitempty"`

	// block (sequence of chunks; last one escapes)
	Chunks []Expr `json:"chunks,omitempty"`
}

var litKinds = map[string]ast.LiteralKind{
	"nat": ast.NatLit, "int": ast.IntLit, "ratio": ast.RatioLit,
	"str": ast.StrLit, "bool": ast.BoolLit, "none": ast.NoneLit,
	"notimpl": ast.NotImplLit, "ellipsis": ast.EllipsisLit, "inf": ast.InfLit,
}

var tokKinds = map[string]ast.TokenKind{
	"+": ast.TokPlus, "-": ast.TokMinus, "*": ast.TokStar, "/": ast.TokSlash,
	"**": ast.TokPow, "%": ast.TokMod, "==": ast.TokDblEq, "!=": ast.TokNotEq,
	"<": ast.TokLess, ">": ast.TokGre, "<=": ast.TokLessEq, ">=": ast.TokGreEq,
	"and": ast.TokAndOp, "or": ast.TokOrOp, "&": ast.TokBitAnd, "^": ast.TokBitXor,
	"|": ast.TokBitOr, "<<": ast.TokShl, ">>": ast.TokShr, "!": ast.TokMutate,
}

// Decode parses a single JSON fixture document into an ast.Expr.
func Decode(data []byte) (ast.Expr, error) {
	var e Expr
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("evalfixture: invalid JSON: %w", err)
	}
	return Build(&e)
}

// Build converts a decoded Expr DTO into the ast.Expr it describes.
func Build(e *Expr) (ast.Expr, error) {
	if e == nil {
		return nil, fmt.Errorf("evalfixture: nil expression")
	}
	switch e.Kind {
	case "literal":
		kind, ok := litKinds[e.LitKind]
		if !ok {
			return nil, fmt.Errorf("evalfixture: unknown literal kind %q", e.LitKind)
		}
		content := e.Content
		if kind == ast.StrLit {
			content = normalizeStr(content)
		}
		return &ast.Literal{Kind: kind, Content: content, Span: ast.UnknownSpan}, nil

	case "ident":
		return &ast.Ident{Name: e.Name, IsConst: e.IsConst, Span: ast.UnknownSpan}, nil

	case "binary":
		tok, ok := tokKinds[e.Op]
		if !ok {
			return nil, fmt.Errorf("evalfixture: unknown operator token %q", e.Op)
		}
		l, err := Build(e.Left)
		if err != nil {
			return nil, err
		}
		r, err := Build(e.Right)
		if err != nil {
			return nil, err
		}
		return &ast.BinaryOp{Op: tok, Left: l, Right: r, Span: ast.UnknownSpan}, nil

	case "unary":
		tok, ok := tokKinds[e.Op]
		if !ok {
			return nil, fmt.Errorf("evalfixture: unknown operator token %q", e.Op)
		}
		operand, err := Build(e.Expr)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Op: tok, Operand: operand, Span: ast.UnknownSpan}, nil

	case "attribute":
		obj, err := Build(e.Obj)
		if err != nil {
			return nil, err
		}
		if e.Field == nil || e.Field.Name == "" {
			return nil, fmt.Errorf("evalfixture: attribute fixture missing field name")
		}
		return &ast.Attribute{Obj: obj, Field: &ast.Ident{Name: e.Field.Name, Span: ast.UnknownSpan}, Span: ast.UnknownSpan}, nil

	case "call":
		callee, err := Build(e.Callee)
		if err != nil {
			return nil, err
		}
		args := make([]ast.Expr, len(e.PosArgs))
		for i := range e.PosArgs {
			a, err := Build(&e.PosArgs[i])
			if err != nil {
				return nil, err
			}
			args[i] = a
		}
		return &ast.Call{Callee: callee, PosArgs: args, Span: ast.UnknownSpan}, nil

	case "array":
		elems := make([]ast.Expr, len(e.Elems))
		for i := range e.Elems {
			el, err := Build(&e.Elems[i])
			if err != nil {
				return nil, err
			}
			elems[i] = el
		}
		return &ast.ArrayLit{Kind: ast.ArrayNormal, Elems: elems, Span: ast.UnknownSpan}, nil

	case "block":
		if len(e.Chunks) == 0 {
			return nil, fmt.Errorf("evalfixture: block fixture has no chunks")
		}
		chunks := make([]ast.Expr, len(e.Chunks))
		for i := range e.Chunks {
			c, err := Build(&e.Chunks[i])
			if err != nil {
				return nil, err
			}
			chunks[i] = c
		}
		return &ast.Block{Chunks: chunks, Span: ast.UnknownSpan}, nil

	default:
		return nil, fmt.Errorf("evalfixture: unknown expression kind %q", e.Kind)
	}
}
