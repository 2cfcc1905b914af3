package lexer

import (
	"fmt"

	"golang.org/x/text/unicode/runenames"
)

// describeRune renders a rune for an error message, naming it via the
// Unicode character database when it has no printable ASCII form — "U+0007
// (BELL)" reads a lot better than a literal control character spliced into
// a terminal.
func describeRune(r rune) string {
	if r >= 0x20 && r < 0x7f {
		return fmt.Sprintf("%q", r)
	}
	name := runenames.Name(r)
	if name == "" {
		return fmt.Sprintf("U+%04X", r)
	}
	return fmt.Sprintf("U+%04X (%s)", r, name)
}

// illegalCharError reports a byte the lexer could not classify as
// whitespace, a comment, a literal, a name, or a known symbol.
func illegalCharError(r rune) string {
	return fmt.Sprintf("illegal character %s", describeRune(r))
}

// invalidEscapeError reports an unrecognized escape sequence introducer.
func invalidEscapeError(r rune) string {
	return fmt.Sprintf("invalid escape sequence %s", describeRune(r))
}
