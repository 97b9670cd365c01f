package parser

import "fmt"

// ParserError is the single error type returned for every grammar
// violation (spec section 7). Message formats that tests depend on are
// produced verbatim by the helpers below.
type ParserError struct {
	Message string
}

func (e *ParserError) Error() string {
	return e.Message
}

func parserErrorf(format string, args ...interface{}) *ParserError {
	return &ParserError{Message: fmt.Sprintf(format, args...)}
}
