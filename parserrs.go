package kalc

import "strconv"

// UnexpectedTokenError is an error indicating that a token kind the
// grammar required was not found at the cursor. It implements InputError.
type UnexpectedTokenError struct {
	// Col is the rune position of the offending token.
	Col int
	// Expected is the token kind the parser required.
	Expected TokenKind
	// Found is the kind actually present.
	Found TokenKind
}

func (err *UnexpectedTokenError) Error() string {
	return errpos(err.Col, "expected "+err.Expected.String()+", found "+err.Found.String())
}

func (err *UnexpectedTokenError) Pos() int {
	return err.Col
}

// ParamListError is an error indicating a function declaration whose
// parameter list contained something other than bare variable names, e.g.
// f(x+1) = x. It implements InputError.
type ParamListError struct {
	// Col is the rune position of the start of the declaration.
	Col int
	// Func is the declared function name.
	Func string
}

func (err *ParamListError) Error() string {
	return errpos(err.Col, "invalid parameter list in declaration of "+strconv.Quote(err.Func))
}

func (err *ParamListError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error the parser
// detects itself implements InputError; errors propagated from evaluation
// do not.
type InputError interface {
	error
	// Pos returns the rune position of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*UnexpectedTokenError)(nil)
	_ InputError = (*ParamListError)(nil)
)
