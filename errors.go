package fluxins

import "fmt"

// CodeErr is implemented by every diagnostic this package raises from
// invalid input or evaluation. It lets a caller recover the offending
// location without knowing the concrete error type.
type CodeErr interface {
	error
	Location() CodeLocation
}

// CodeError is the base diagnostic type: a message anchored to a
// location within a Code. Evaluation errors that don't warrant their
// own type (division by zero, a malformed tree node) are raised as a
// bare *CodeError.
type CodeError struct {
	Message  string
	Source   *Code
	location CodeLocation

	formatted string
}

// NewCodeError builds a CodeError and eagerly formats its message, the
// way the other CodeErr constructors do.
func NewCodeError(message string, source *Code, location CodeLocation) *CodeError {
	e := &CodeError{Message: message, Source: source, location: location}
	e.formatted = formatMessage(message, source, location)
	return e
}

func formatMessage(message string, source *Code, location CodeLocation) string {
	beginLine, beginCol, err := source.LineCol(location.Begin)
	if err != nil {
		return fmt.Sprintf("%s: %s", source.Name, message)
	}
	endLine, endCol, err := source.LineCol(location.Begin + location.Length - 1)
	if err != nil {
		return fmt.Sprintf("%s: %s", source.Name, message)
	}
	preview, _ := location.Preview(source, 0)
	return fmt.Sprintf("%s: %d:%d-%d:%d: %s\n%s", source.Name, beginLine, beginCol, endLine, endCol, message, preview)
}

func (e *CodeError) Error() string { return e.formatted }

func (e *CodeError) Location() CodeLocation { return e.location }

var _ CodeErr = (*CodeError)(nil)

// InvalidArityError indicates a function call with the wrong number of
// arguments.
type InvalidArityError struct {
	*CodeError
	Function string
	Expected int
	Got      int
}

// NewInvalidArityError builds an InvalidArityError with the standard
// message format.
func NewInvalidArityError(function string, got, expected int, source *Code, location CodeLocation) *InvalidArityError {
	msg := fmt.Sprintf("function %q requires %d arguments, but got %d", function, expected, got)
	return &InvalidArityError{
		CodeError: NewCodeError(msg, source, location),
		Function:  function,
		Expected:  expected,
		Got:       got,
	}
}

// TokenizerError indicates input the tokenizer could not turn into a
// token: an invalid character or a malformed number literal.
type TokenizerError struct {
	*CodeError
}

// NewTokenizerError builds a TokenizerError.
func NewTokenizerError(message string, source *Code, location CodeLocation) *TokenizerError {
	return &TokenizerError{CodeError: NewCodeError(message, source, location)}
}

// UnexpectedTokenError indicates a token the parser did not expect in
// the position it occurred.
type UnexpectedTokenError struct {
	*CodeError
	Token Token
}

// NewUnexpectedTokenError builds an UnexpectedTokenError anchored to
// the offending token's own location.
func NewUnexpectedTokenError(message string, source *Code, tok Token) *UnexpectedTokenError {
	return &UnexpectedTokenError{
		CodeError: NewCodeError(message, source, tok.Location),
		Token:     tok,
	}
}

// UnresolvedReferenceError indicates a reference to a variable,
// function, or operator symbol that the evaluator could not resolve.
type UnresolvedReferenceError struct {
	*CodeError
	Symbol string
	Kind   string
}

// NewUnresolvedReferenceError builds an UnresolvedReferenceError with
// the standard message format.
func NewUnresolvedReferenceError(symbol, kind string, source *Code, location CodeLocation) *UnresolvedReferenceError {
	msg := fmt.Sprintf("unresolved reference to %s %q", kind, symbol)
	return &UnresolvedReferenceError{
		CodeError: NewCodeError(msg, source, location),
		Symbol:    symbol,
		Kind:      kind,
	}
}

var (
	_ CodeErr = (*InvalidArityError)(nil)
	_ CodeErr = (*TokenizerError)(nil)
	_ CodeErr = (*UnexpectedTokenError)(nil)
	_ CodeErr = (*UnresolvedReferenceError)(nil)
)
