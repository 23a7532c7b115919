// Package css reads and writes a small stylesheet subset: selector blocks
// with semicolon-separated "name: value" declarations. Values are opaque
// strings, source order and formatting are not preserved and output is
// canonical - selectors and properties are emitted in ascending
// lexicographic order.
package css

import (
	"fmt"
	"io"
	"maps"
	"sort"
	"strings"
)

// Declarations holds property/value pairs of a single selector.
type Declarations map[string]string

// Clone returns an independent copy of d.
func (d Declarations) Clone() Declarations {
	if d == nil {
		return nil
	}
	return maps.Clone(d)
}

// Stylesheet maps selector text to its declarations. Rules is exported so
// callers and tests can build sheets with plain map literals; all methods
// tolerate a nil map.
type Stylesheet struct {
	Rules map[string]Declarations
}

// New creates an empty stylesheet.
func New() *Stylesheet {
	return &Stylesheet{Rules: make(map[string]Declarations)}
}

// Declarations returns the declarations stored for selector.
func (s *Stylesheet) Declarations(selector string) (Declarations, bool) {
	d, ok := s.Rules[selector]
	return d, ok
}

// SetDeclarations stores d for selector replacing whatever was there. A nil
// d is stored as an empty map - a selector always has declarations, possibly
// empty ones.
func (s *Stylesheet) SetDeclarations(selector string, d Declarations) {
	if s.Rules == nil {
		s.Rules = make(map[string]Declarations)
	}
	if d == nil {
		d = make(Declarations)
	}
	s.Rules[selector] = d
}

// DeleteSelector removes selector and all its declarations.
func (s *Stylesheet) DeleteSelector(selector string) {
	delete(s.Rules, selector)
}

// Value returns the value of a single property.
func (s *Stylesheet) Value(selector, name string) (string, bool) {
	v, ok := s.Rules[selector][name]
	return v, ok
}

// SetValue sets a single property, creating the selector when absent.
func (s *Stylesheet) SetValue(selector, name, value string) {
	if s.Rules == nil {
		s.Rules = make(map[string]Declarations)
	}
	d, ok := s.Rules[selector]
	if !ok {
		d = make(Declarations)
		s.Rules[selector] = d
	}
	d[name] = value
}

// DeleteValue removes a single property. The selector stays even when its
// declarations become empty.
func (s *Stylesheet) DeleteValue(selector, name string) {
	delete(s.Rules[selector], name)
}

// Selectors returns all selectors in ascending lexicographic order.
func (s *Stylesheet) Selectors() []string {
	out := make([]string, 0, len(s.Rules))
	for sel := range s.Rules {
		out = append(out, sel)
	}
	sort.Strings(out)
	return out
}

// Properties returns property names of selector in ascending lexicographic
// order, nil when the selector is not present.
func (s *Stylesheet) Properties(selector string) []string {
	d, ok := s.Rules[selector]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(d))
	for name := range d {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Equal reports whether both sheets hold the same selectors with the same
// declarations, ignoring ordering.
func (s *Stylesheet) Equal(other *Stylesheet) bool {
	if s == nil || other == nil {
		return s == other
	}
	if len(s.Rules) != len(other.Rules) {
		return false
	}
	for sel, d := range s.Rules {
		od, ok := other.Rules[sel]
		if !ok || !maps.Equal(d, od) {
			return false
		}
	}
	return true
}

// WriteTo writes the canonical text of the stylesheet to w, implementing
// io.WriterTo. Selectors and property names within each block are sorted, so
// repeated calls on an unmodified sheet produce byte-identical output.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, sel := range s.Selectors() {
		n, err := fmt.Fprintf(w, "%s {\n", sel)
		total += int64(n)
		if err != nil {
			return total, err
		}
		d := s.Rules[sel]
		for _, name := range s.Properties(sel) {
			n, err = fmt.Fprintf(w, "\t%s: %s;\n", name, d[name])
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
		n, err = fmt.Fprint(w, "}\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String returns the canonical stylesheet text.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}
