package symbolic

import "testing"

func parseString(t *testing.T, src string) *Node {
	t.Helper()
	n, err := Parse(NewLexer(src))
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", src, err)
	}
	return n
}

func TestParseSimpleArithmetic(t *testing.T) {
	n := parseString(t, "1+2*3")
	if n.Kind != NodeArithmetic || n.Operation != Add {
		t.Fatalf("expected top-level Add, got %+v", n)
	}
	if n.Right.Kind != NodeArithmetic || n.Right.Operation != Multi {
		t.Fatalf("expected multiplication to bind tighter than addition, got %+v", n.Right)
	}
}

func TestParseImplicitMultiplicationByJuxtaposition(t *testing.T) {
	// "2x" should parse as 2*x.
	n := parseString(t, "2x")
	if n.Kind != NodeArithmetic || n.Operation != Multi {
		t.Fatalf("expected implicit multiplication, got %+v", n)
	}
	if n.Left.Kind != NodeNumber || n.Left.Number != 2 {
		t.Fatalf("expected left operand 2, got %+v", n.Left)
	}
	if n.Right.Kind != NodeVariable || n.Right.Name != "x" {
		t.Fatalf("expected right operand variable x, got %+v", n.Right)
	}
}

func TestParseImplicitParenMultiplication(t *testing.T) {
	n := parseString(t, "2(3+4)")
	if n.Kind != NodeArithmetic || n.Operation != Multi {
		t.Fatalf("expected implicit multiplication, got %+v", n)
	}
}

func TestParseFunctionCall(t *testing.T) {
	n := parseString(t, "sin(x)")
	if n.Kind != NodeFunction || n.Name != "sin" || len(n.Args) != 1 {
		t.Fatalf("expected function call node, got %+v", n)
	}
}

func TestParseComparison(t *testing.T) {
	n := parseString(t, "x = 5 + 5")
	if n.Kind != NodeComparison {
		t.Fatalf("expected comparison node, got %+v", n)
	}
}

func TestParseUnaryMinus(t *testing.T) {
	n := parseString(t, "-x^2")
	if n.Kind != NodeArithmetic || n.Operation != Sub {
		t.Fatalf("expected unary minus to desugar to 0 - x^2, got %+v", n)
	}
	if n.Left.Kind != NodeNumber || n.Left.Number != 0 {
		t.Fatalf("expected left operand 0, got %+v", n.Left)
	}
}

func TestParseInvalidToken(t *testing.T) {
	_, err := Parse(NewLexer("1 + $"))
	if err == nil {
		t.Fatal("expected InvalidToken error")
	}
}
