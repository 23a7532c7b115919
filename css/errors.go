package css

import "fmt"

// Kind discriminates parse failures.
type Kind int

const (
	// ErrMissingInput - nothing to parse, input is empty or whitespace only.
	ErrMissingInput Kind = iota + 1
	// ErrMalformedBlock - block does not match "selectors { body }".
	ErrMalformedBlock
	// ErrMalformedDeclaration - body fragment does not match "name: value".
	ErrMalformedDeclaration
	// ErrMalformedComment - a "/*" has no matching "*/".
	ErrMalformedComment
)

func (k Kind) String() string {
	switch k {
	case ErrMissingInput:
		return "missing input"
	case ErrMalformedBlock:
		return "malformed block"
	case ErrMalformedDeclaration:
		return "malformed declaration"
	case ErrMalformedComment:
		return "malformed comment"
	default:
		return fmt.Sprintf("unknown kind %d", int(k))
	}
}

// ParseError describes the first problem found while parsing. Parsing is all
// or nothing - the first error aborts the whole parse and no partial
// stylesheet is ever returned.
type ParseError struct {
	Kind          Kind
	Block         string // offending block text for ErrMalformedBlock
	Fragment      string // offending fragment or unterminated comment tail
	SelectorGroup string // selector group enclosing a bad declaration
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrMissingInput:
		return "no stylesheet text to parse"
	case ErrMalformedBlock:
		return fmt.Sprintf("malformed block %q", e.Block)
	case ErrMalformedDeclaration:
		return fmt.Sprintf("malformed declaration %q in style %q", e.Fragment, e.SelectorGroup)
	case ErrMalformedComment:
		return fmt.Sprintf("unterminated comment starting at %q", e.Fragment)
	default:
		return e.Kind.String()
	}
}

// Is makes errors.Is match any *ParseError of the same kind, so callers can
// test for a failure class without reproducing offending text.
func (e *ParseError) Is(target error) bool {
	if t, ok := target.(*ParseError); ok {
		return t.Kind == e.Kind
	}
	return false
}
