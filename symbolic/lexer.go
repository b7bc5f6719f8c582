package symbolic

import (
	"strconv"

	"github.com/durganmcbroom/iterative-physics/ierr"
)

// Operation is an arithmetic operator recognized by the lexer/parser.
type Operation int

const (
	Add Operation = iota
	Sub
	Multi
	Div
	Exp
)

// TokenKind classifies a lexed Token.
type TokenKind int

const (
	TokOp TokenKind = iota
	TokOpenParen
	TokCloseParen
	TokComma
	TokEquals
	TokNumber
	TokText
)

// Token is a single lexical unit: either a static punctuation/operator
// token or a dynamic Number/Text payload.
type Token struct {
	Kind TokenKind
	Op   Operation
	Num  float64
	Text string
}

func (t Token) equalsPunct(k TokenKind) bool { return t.Kind == k }

// Lexer turns an equation string into a stream of Tokens, one character
// class of lookahead at a time. lex() peeks the current token without
// consuming it; next()/advance() consume it.
type Lexer struct {
	input   []rune
	pos     int
	current *Token
	hasCur  bool
}

// NewLexer builds a Lexer over the given equation source.
func NewLexer(input string) *Lexer {
	return &Lexer{input: []rune(input)}
}

func isDigit(c rune) bool { return c >= '0' && c <= '9' }

func isCharacter(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// exec consumes characters from the input and produces the next Token, or
// (Token{}, false, nil) at end of input.
func (l *Lexer) exec() (Token, bool, error) {
	var c rune
	for {
		if l.pos >= len(l.input) {
			return Token{}, false, nil
		}
		c = l.input[l.pos]
		l.pos++
		if c != ' ' {
			break
		}
	}

	if isDigit(c) {
		var runes []rune
		for {
			runes = append(runes, c)
			if l.pos < len(l.input) && (isDigit(l.input[l.pos]) || l.input[l.pos] == '.') {
				c = l.input[l.pos]
				l.pos++
				continue
			}
			break
		}
		num, err := strconv.ParseFloat(string(runes), 64)
		if err != nil {
			return Token{}, false, ierr.Syntax("unable to convert number to float")
		}
		return Token{Kind: TokNumber, Num: num}, true, nil
	}

	if isCharacter(c) {
		var runes []rune
		for {
			runes = append(runes, c)
			if l.pos < len(l.input) && (isCharacter(l.input[l.pos]) || l.input[l.pos] == '_') {
				c = l.input[l.pos]
				l.pos++
				continue
			}
			break
		}
		return Token{Kind: TokText, Text: string(runes)}, true, nil
	}

	switch c {
	case '+':
		return Token{Kind: TokOp, Op: Add}, true, nil
	case '-':
		return Token{Kind: TokOp, Op: Sub}, true, nil
	case '*':
		return Token{Kind: TokOp, Op: Multi}, true, nil
	case '/':
		return Token{Kind: TokOp, Op: Div}, true, nil
	case '^':
		return Token{Kind: TokOp, Op: Exp}, true, nil
	case '(':
		return Token{Kind: TokOpenParen}, true, nil
	case ')':
		return Token{Kind: TokCloseParen}, true, nil
	case ',':
		return Token{Kind: TokComma}, true, nil
	case '=':
		return Token{Kind: TokEquals}, true, nil
	default:
		return Token{}, false, ierr.Tok(string(c))
	}
}

// lex returns the current token without consuming it.
func (l *Lexer) lex() (Token, bool, error) {
	if !l.hasCur {
		tok, ok, err := l.exec()
		if err != nil {
			return Token{}, false, err
		}
		if ok {
			l.current = &tok
		} else {
			l.current = nil
		}
		l.hasCur = true
	}
	if l.current == nil {
		return Token{}, false, nil
	}
	return *l.current, true, nil
}

// advance discards the current lookahead token so the next lex() call
// reads a fresh one.
func (l *Lexer) advance() { l.hasCur = false }

// next returns the current token and advances past it.
func (l *Lexer) next() (Token, bool, error) {
	tok, ok, err := l.lex()
	if err == nil {
		l.advance()
	}
	return tok, ok, err
}
