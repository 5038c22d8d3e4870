package errs

import "fmt"

// Kind identifies which of the four ParseError variants occurred.
type Kind int

const (
	// InvalidToken: the compound pattern did not match at the cursor.
	InvalidToken Kind = iota
	// NonExistentTransition: no transition (not even the self-loop
	// fallback) could be applied. Reserved for Models that opt out of the
	// self-loop default; the default tokenizer always supplies one.
	NonExistentTransition
	// EndOfLine: input exhausted with a non-empty stack.
	EndOfLine
	// IncompleteParsing: tokenizer terminated (END) but input remained.
	IncompleteParsing
)

func (k Kind) message() string {
	switch k {
	case InvalidToken:
		return "Could not match line to an appropriate group"
	case NonExistentTransition:
		return "No transition exists for the given match"
	case EndOfLine:
		return "Unexpected end of line while parsing"
	case IncompleteParsing:
		return "Unexpected end of parsing"
	default:
		return "Unknown parse error"
	}
}

// ParseError reports a short message, the offending line, and the
// remaining-input position at which tokenization failed.
type ParseError struct {
	Kind Kind
	// Line is the full original input line.
	Line string
	// Remaining is the unconsumed suffix of Line at the point of failure.
	Remaining string
}

// NewParseError builds a ParseError for the given Kind, line, and
// remaining (unconsumed) input.
func NewParseError(kind Kind, line, remaining string) *ParseError {
	return &ParseError{Kind: kind, Line: line, Remaining: remaining}
}

// Error renders "<message> HERE --> <next up-to-10 chars of remaining input>".
func (e *ParseError) Error() string {
	preview := e.Remaining
	if len(preview) > 10 {
		preview = preview[:10]
	}
	return fmt.Sprintf("%s HERE --> %s", e.Kind.message(), preview)
}
