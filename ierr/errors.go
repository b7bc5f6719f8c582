// Package ierr defines the flat, closed set of error kinds produced by the
// symbolic engine, the linear algebra layer, and the tick orchestrator.
//
// Errors are returned as values (never panics) and compare with errors.Is
// against New(kind) for any of the Kind constants below; the match is by
// Kind only.
package ierr

import "fmt"

// Kind identifies which of the closed set of failure modes an Error carries.
type Kind int

const (
	_ Kind = iota
	UnsatisfiedVariable
	UnsatisfiedFunction
	WrongNumberOfArguments
	UnexpectedComparison
	ExpectedComparison
	RootFindingDepthExceeded
	InvalidDimensions
	InvalidToken
	InvalidMathSyntax
)

// Error is the single error type produced by this module. Kind narrows the
// failure to one of the enumerated cases; the remaining fields are only
// populated for the kinds that need them.
type Error struct {
	Kind     Kind
	Name     string // UnsatisfiedVariable, UnsatisfiedFunction, WrongNumberOfArguments
	Expected int    // WrongNumberOfArguments
	Found    int    // WrongNumberOfArguments
	Token    string // InvalidToken
	Reason   string // InvalidMathSyntax
}

func (e *Error) Error() string {
	switch e.Kind {
	case UnsatisfiedVariable:
		return fmt.Sprintf("unsatisfied variable: %s, make sure you properly define all required variables for this computation", e.Name)
	case UnsatisfiedFunction:
		return fmt.Sprintf("unsatisfied function: %s, this function is unknown, try defining it (eg. f(x)=5x)", e.Name)
	case WrongNumberOfArguments:
		return fmt.Sprintf("function %s takes %d arguments, but you provided %d", e.Name, e.Expected, e.Found)
	case UnexpectedComparison:
		return "unexpected equals sign"
	case ExpectedComparison:
		return "expected an equals sign"
	case RootFindingDepthExceeded:
		return "math too complicated, failed to find roots of function fast enough"
	case InvalidDimensions:
		return "this matrix is the wrong size"
	case InvalidToken:
		return fmt.Sprintf("invalid token %q in your equation", e.Token)
	case InvalidMathSyntax:
		return fmt.Sprintf("invalid math syntax: %s", e.Reason)
	default:
		return "unknown error"
	}
}

// Is reports whether target is an *Error carrying the same Kind, so callers
// can use errors.Is(err, ierr.New(ierr.InvalidDimensions)) style matching
// without comparing the auxiliary fields.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// New builds a bare Error of the given kind, for kinds that carry no
// auxiliary data (UnexpectedComparison, ExpectedComparison,
// RootFindingDepthExceeded, InvalidDimensions).
func New(kind Kind) *Error { return &Error{Kind: kind} }

// Variable builds an UnsatisfiedVariable error.
func Variable(name string) *Error { return &Error{Kind: UnsatisfiedVariable, Name: name} }

// Function builds an UnsatisfiedFunction error.
func Function(name string) *Error { return &Error{Kind: UnsatisfiedFunction, Name: name} }

// Arity builds a WrongNumberOfArguments error.
func Arity(name string, expected, found int) *Error {
	return &Error{Kind: WrongNumberOfArguments, Name: name, Expected: expected, Found: found}
}

// Tok builds an InvalidToken error.
func Tok(tok string) *Error { return &Error{Kind: InvalidToken, Token: tok} }

// Syntax builds an InvalidMathSyntax error.
func Syntax(reason string) *Error { return &Error{Kind: InvalidMathSyntax, Reason: reason} }
