package evalctx

import (
	"testing"

	"github.com/sunholo/lcc/internal/ast"
	"github.com/sunholo/lcc/internal/term"
)

func newTestRoot() *Context {
	return New("test", "<test>", nil, nil, nil, nil)
}

func TestRecGetConstObjWalksParents(t *testing.T) {
	root := newTestRoot()
	root.DeclareConst("X", term.NewInt(41))
	child := root.Grow("inner", KindInstant, ast.Private, nil)

	v, ok := child.RecGetConstObj("X")
	if !ok {
		t.Fatalf("RecGetConstObj should find X through the parent")
	}
	if v.(*term.IntValue).V.Int64() != 41 {
		t.Fatalf("X = %v, want 41", v)
	}

	if _, ok := child.GetConstLocal("X"); ok {
		t.Fatalf("GetConstLocal should not walk to the parent")
	}
}

func TestPurityContextUnchangedAcrossLookup(t *testing.T) {
	// Testable Property 1 (spec §8): evaluating a def-free expression
	// must leave the Context unchanged. A pure lookup must not mutate
	// consts.
	root := newTestRoot()
	root.DeclareConst("X", term.NewInt(1))
	before := len(root.consts)
	_, _ = root.RecGetConstObj("X")
	_, _ = root.RecGetConstObj("missing")
	if len(root.consts) != before {
		t.Fatalf("RecGetConstObj must not mutate consts")
	}
}

func TestGrowPopBalance(t *testing.T) {
	// Testable Property 2 setup (spec §8): Grow/Pop must be balanced.
	root := newTestRoot()
	child := root.Grow("inner", KindInstant, ast.Private, nil)
	if child.Level != root.Level+1 {
		t.Fatalf("child level = %d, want %d", child.Level, root.Level+1)
	}
	popped := child.Pop()
	if popped != root {
		t.Fatalf("Pop should return the same parent Context")
	}
}

func TestCheckDeclsAndPopPopsEvenOnFailure(t *testing.T) {
	root := newTestRoot()
	child := root.Grow("x", KindInstant, ast.Private, nil)
	child.Declare("y", &term.MonoType{Name: "Int"})
	// y is never satisfied.
	parent, err := child.CheckDeclsAndPop()
	if err == nil {
		t.Fatalf("CheckDeclsAndPop should fail when a decl is unsatisfied")
	}
	if parent != root {
		t.Fatalf("CheckDeclsAndPop must still pop even on failure")
	}
}

func TestGetSimilarName(t *testing.T) {
	root := newTestRoot()
	root.DeclareConst("length", term.NewInt(0))
	name, ok := root.GetSimilarName("lenght")
	if !ok || name != "length" {
		t.Fatalf("GetSimilarName(lenght) = %q, %v, want length, true", name, ok)
	}
}

func TestCausedByChain(t *testing.T) {
	root := newTestRoot()
	child := root.Grow("inner", KindInstant, ast.Private, nil)
	grandchild := child.Grow("deeper", KindLambda, ast.Private, nil)
	chain := grandchild.CausedBy()
	if len(chain) != 3 || chain[0] != "test" || chain[2] != "deeper" {
		t.Fatalf("CausedBy = %v, want [test inner deeper]", chain)
	}
}
