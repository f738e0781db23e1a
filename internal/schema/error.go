package schema

import "fmt"

// ParseError reports a declaration that could not be parsed. Line is 1-based
// and refers to the unfiltered schema text.
type ParseError struct {
	Line    int
	Text    string
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf(`line %d: %s: "%s"`, e.Line, e.Message, e.Text)
}

func parseErrorf(l Line, format string, args ...any) *ParseError {
	return &ParseError{
		Line:    l.Number,
		Text:    l.Text,
		Message: fmt.Sprintf(format, args...),
	}
}
