package css

import "strings"

// Parse parses stylesheet text into a Stylesheet. The grammar is
// deliberately small: comments are stripped, the text is cut into
// "selectors { body }" blocks after every closing brace and bodies are cut
// into "name: value" fragments on semicolons. Braces are structural
// everywhere, values cannot contain them.
//
// When the same selector appears in several blocks its declarations are
// merged property by property, later values overwriting earlier ones.
// Grouped selectors ("A, B { ... }") receive independent copies of the
// declarations.
//
// Parsing is all or nothing: the first malformed block, declaration or
// unterminated comment aborts with a *ParseError and no stylesheet is
// returned. Empty or whitespace-only input is an error as well.
func Parse(text string) (*Stylesheet, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ParseError{Kind: ErrMissingInput}
	}

	flat, err := stripComments(flatten(text))
	if err != nil {
		return nil, err
	}

	sheet := New()
	for _, block := range splitBlocks(flat) {
		if err := sheet.addBlock(block); err != nil {
			return nil, err
		}
	}
	return sheet, nil
}

var flattener = strings.NewReplacer("\n", " ", "\r", " ", "\t", " ")

// flatten replaces every newline, carriage return and tab with a single
// space. Runs are not collapsed, only individual characters are replaced.
func flatten(s string) string {
	return flattener.Replace(s)
}

// stripComments removes every /* ... */ span, shortest match first. A
// dangling /* with no closing */ is a fatal error rather than silently
// swallowing the rest of the input.
func stripComments(s string) (string, error) {
	if !strings.Contains(s, "/*") {
		return s, nil
	}
	var b strings.Builder
	b.Grow(len(s))
	for {
		start := strings.Index(s, "/*")
		if start < 0 {
			b.WriteString(s)
			return b.String(), nil
		}
		b.WriteString(s[:start])
		end := strings.Index(s[start+2:], "*/")
		if end < 0 {
			return "", &ParseError{Kind: ErrMalformedComment, Fragment: s[start:]}
		}
		s = s[start+2+end+2:]
	}
}

// splitBlocks cuts the text immediately after every closing brace. Whatever
// is left after the last brace becomes a final chunk so that brace-less
// garbage is validated like any other block. Blank chunks are dropped.
func splitBlocks(s string) []string {
	var blocks []string
	for len(s) > 0 {
		i := strings.IndexByte(s, '}')
		if i < 0 {
			if strings.TrimSpace(s) != "" {
				blocks = append(blocks, s)
			}
			break
		}
		if chunk := s[:i+1]; strings.TrimSpace(chunk) != "" {
			blocks = append(blocks, chunk)
		}
		s = s[i+1:]
	}
	return blocks
}

// addBlock validates one "selectors { body }" block and folds its
// declarations into the sheet.
func (s *Stylesheet) addBlock(block string) error {
	text := strings.TrimSpace(block)
	if !strings.HasSuffix(text, "}") {
		return &ParseError{Kind: ErrMalformedBlock, Block: block}
	}
	open := strings.IndexByte(text, '{')
	if open < 0 {
		return &ParseError{Kind: ErrMalformedBlock, Block: block}
	}
	group := strings.TrimSpace(text[:open])
	if group == "" {
		return &ParseError{Kind: ErrMalformedBlock, Block: block}
	}
	body := text[open+1 : len(text)-1]

	// Every selector of the group gets its own declarations map, reusing an
	// existing one when the selector was seen before. This is what makes
	// repeated blocks merge per property instead of replacing wholesale.
	selectors := splitSelectors(group)
	for _, sel := range selectors {
		if s.Rules[sel] == nil {
			s.SetDeclarations(sel, nil)
		}
	}

	for frag := range strings.SplitSeq(body, ";") {
		if strings.TrimSpace(frag) == "" {
			continue
		}
		name, value, err := splitDeclaration(frag, group)
		if err != nil {
			return err
		}
		for _, sel := range selectors {
			s.Rules[sel][name] = value
		}
	}
	return nil
}

// splitSelectors collapses whitespace runs in the group to single spaces and
// splits on commas. Empty selectors from stray commas are dropped; compound
// selectors joined by whitespace ("P EM") stay a single selector.
func splitSelectors(group string) []string {
	collapsed := strings.Join(strings.Fields(group), " ")
	var out []string
	for sel := range strings.SplitSeq(collapsed, ",") {
		if sel = strings.TrimSpace(sel); sel != "" {
			out = append(out, sel)
		}
	}
	return out
}

// splitDeclaration validates one "name: value" fragment. The name carries
// word characters, dots, underscores and hyphens only; the colon must be
// followed by a space; the value is opaque with surrounding whitespace
// trimmed and may be empty.
func splitDeclaration(frag, group string) (string, string, error) {
	colon := strings.IndexByte(frag, ':')
	if colon < 0 {
		return "", "", &ParseError{Kind: ErrMalformedDeclaration, Fragment: frag, SelectorGroup: group}
	}
	name := strings.TrimSpace(frag[:colon])
	if !validPropertyName(name) {
		return "", "", &ParseError{Kind: ErrMalformedDeclaration, Fragment: frag, SelectorGroup: group}
	}
	rest := frag[colon+1:]
	if len(rest) == 0 || rest[0] != ' ' {
		return "", "", &ParseError{Kind: ErrMalformedDeclaration, Fragment: frag, SelectorGroup: group}
	}
	return name, strings.TrimSpace(rest[1:]), nil
}

func validPropertyName(name string) bool {
	if len(name) == 0 {
		return false
	}
	for i := 0; i < len(name); i++ {
		switch c := name[i]; {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '_', c == '.', c == '-':
		default:
			return false
		}
	}
	return true
}
