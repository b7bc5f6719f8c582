package symbolic

import "github.com/durganmcbroom/iterative-physics/ierr"

// Parse consumes an entire equation string and produces its AST. A nil,nil
// return from the grammar's rule functions means "rule had nothing to
// parse here", not a failure; Parse turns that into an explicit error only
// at the top level, since the empty string is never a valid equation.
func Parse(l *Lexer) (*Node, error) {
	n, err := expression(l)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, ierr.Syntax("premature end of input")
	}
	return n, nil
}

// expression := addition ('=' addition)?
//
// Note: the lookahead for '=' consumes the token whether or not it matches,
// matching the original grammar's behavior of advancing unconditionally
// here rather than peeking.
func expression(l *Lexer) (*Node, error) {
	left, err := addition(l)
	if err != nil || left == nil {
		return left, err
	}

	tok, ok, err := l.next()
	if err != nil {
		return nil, err
	}
	if ok && tok.Kind == TokEquals {
		right, err := addition(l)
		if err != nil {
			return nil, err
		}
		if right == nil {
			return nil, nil
		}
		return &Node{Kind: NodeComparison, Left: left, Right: right}, nil
	}

	return left, nil
}

// addition := multiplication (('+' | '-') multiplication)*
func addition(l *Lexer) (*Node, error) {
	left, err := multiplication(l)
	if err != nil || left == nil {
		return left, err
	}

	for {
		tok, ok, err := l.lex()
		if err != nil {
			return nil, err
		}
		if !ok || tok.Kind != TokOp || (tok.Op != Add && tok.Op != Sub) {
			break
		}
		l.advance()
		right, err := multiplication(l)
		if err != nil {
			return nil, err
		}
		if right == nil {
			return nil, nil
		}
		left = &Node{Kind: NodeArithmetic, Operation: tok.Op, Left: left, Right: right}
	}

	return left, nil
}

// multiplication := signed (('*' | '/') signed | '(' addition ')' | exponentiation)*
//
// A bare '(' or a juxtaposed atom after the left operand both mean implicit
// multiplication, matching the source grammar.
func multiplication(l *Lexer) (*Node, error) {
	left, err := signed(l)
	if err != nil || left == nil {
		return left, err
	}

	for {
		tok, ok, err := l.lex()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}

		if tok.Kind == TokOp && (tok.Op == Multi || tok.Op == Div) {
			l.advance()
			right, err := signed(l)
			if err != nil {
				return nil, err
			}
			if right == nil {
				return nil, nil
			}
			left = &Node{Kind: NodeArithmetic, Operation: tok.Op, Left: left, Right: right}
			continue
		}

		if tok.Kind == TokOpenParen {
			l.advance()
			right, err := addition(l)
			if err != nil {
				return nil, err
			}
			if right == nil {
				return nil, nil
			}
			left = &Node{Kind: NodeArithmetic, Operation: Multi, Left: left, Right: right}
			closeTok, closeOk, err := l.next()
			if err != nil {
				return nil, err
			}
			if !closeOk || closeTok.Kind != TokCloseParen {
				return nil, ierr.Syntax("expected close param")
			}
			continue
		}

		right, err := exponentiation(l)
		if err != nil {
			return nil, err
		}
		if right != nil {
			left = &Node{Kind: NodeArithmetic, Operation: Multi, Left: left, Right: right}
			continue
		}

		break
	}

	return left, nil
}

// signed := '-' exponentiation | exponentiation
func signed(l *Lexer) (*Node, error) {
	tok, ok, err := l.lex()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	if tok.Kind == TokOp && tok.Op == Sub {
		l.advance()
		operand, err := exponentiation(l)
		if err != nil {
			return nil, err
		}
		if operand == nil {
			return nil, ierr.Syntax("expected expression after '-' sign")
		}
		return &Node{
			Kind:      NodeArithmetic,
			Operation: Sub,
			Left:      &Node{Kind: NodeNumber, Number: 0},
			Right:     operand,
		}, nil
	}

	return exponentiation(l)
}

// exponentiation := atom ('^' atom)*
func exponentiation(l *Lexer) (*Node, error) {
	left, err := atom(l)
	if err != nil || left == nil {
		return left, err
	}

	for {
		tok, ok, err := l.lex()
		if err != nil {
			return nil, err
		}
		if !ok || tok.Kind != TokOp || tok.Op != Exp {
			break
		}
		l.advance()
		right, err := atom(l)
		if err != nil {
			return nil, err
		}
		if right == nil {
			return nil, nil
		}
		left = &Node{Kind: NodeArithmetic, Operation: Exp, Left: left, Right: right}
	}

	return left, nil
}

// atom := number | '(' addition ')' | identifier ('(' addition (',' addition)* ')')?
func atom(l *Lexer) (*Node, error) {
	tok, ok, err := l.lex()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	switch tok.Kind {
	case TokNumber:
		l.advance()
		return &Node{Kind: NodeNumber, Number: tok.Num}, nil

	case TokOpenParen:
		l.advance()
		node, err := addition(l)
		if err != nil {
			return nil, err
		}
		if node == nil {
			return nil, nil
		}
		closeTok, closeOk, err := l.next()
		if err != nil {
			return nil, err
		}
		if !closeOk || closeTok.Kind != TokCloseParen {
			return nil, ierr.Syntax("no close param")
		}
		return node, nil

	case TokText:
		l.advance()
		next, nextOk, err := l.lex()
		if err != nil {
			return nil, err
		}
		if !nextOk || next.Kind != TokOpenParen {
			return &Node{Kind: NodeVariable, Name: tok.Text}, nil
		}
		l.advance()

		var args []*Node
		for {
			arg, err := addition(l)
			if err != nil {
				return nil, err
			}
			if arg == nil {
				return nil, ierr.Syntax("expecting another parameter (at least 1 parameter, and 1 value after every comma is required)")
			}
			args = append(args, arg)

			commaTok, commaOk, err := l.lex()
			if err != nil {
				return nil, err
			}
			if commaOk && commaTok.Kind == TokComma {
				l.advance()
				continue
			}
			break
		}

		closeTok, closeOk, err := l.next()
		if err != nil {
			return nil, err
		}
		if !closeOk || closeTok.Kind != TokCloseParen {
			return nil, ierr.Syntax("no close param")
		}
		return &Node{Kind: NodeFunction, Name: tok.Text, Args: args}, nil

	default:
		return nil, nil
	}
}
