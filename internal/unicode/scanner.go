// Package unicode detects invisible-character smuggling in command text.
// Zero-width and bidirectional-override characters make the command a
// human reviews differ from the one the shell executes, so any hit is
// grounds to refuse the command outright.
package unicode

import (
	"fmt"
	"unicode/utf8"
)

// Threat describes the first smuggling indicator found in the input.
type Threat struct {
	Category    string // "zero-width", "bidi-override", "tag-char", "invalid-utf8"
	Codepoint   string // e.g. "U+200B"
	Position    int    // byte offset
	Description string
}

// Scan inspects text and returns the first threat found, or nil when the
// text is clean. One threat is enough to refuse a command, so scanning
// stops at the first hit.
func Scan(input string) *Threat {
	for i := 0; i < len(input); {
		r, size := utf8.DecodeRuneInString(input[i:])

		if r == utf8.RuneError && size == 1 {
			return &Threat{
				Category:    "invalid-utf8",
				Codepoint:   fmt.Sprintf("0x%02X", input[i]),
				Position:    i,
				Description: "invalid UTF-8 byte sequence",
			}
		}

		if cat := classify(r); cat != "" {
			cp := fmt.Sprintf("U+%04X", r)
			return &Threat{
				Category:    cat,
				Codepoint:   cp,
				Position:    i,
				Description: fmt.Sprintf("%s character %s hides content from review", cat, cp),
			}
		}

		i += size
	}
	return nil
}

func classify(r rune) string {
	switch {
	case isZeroWidth(r):
		return "zero-width"
	case isBidiOverride(r):
		return "bidi-override"
	case r >= 0xE0000 && r <= 0xE007F:
		return "tag-char"
	default:
		return ""
	}
}

func isZeroWidth(r rune) bool {
	switch r {
	case 0x200B, // zero width space
		0x200C, // zero width non-joiner
		0x200D, // zero width joiner
		0x2060, // word joiner
		0xFEFF: // zero width no-break space
		return true
	}
	return false
}

func isBidiOverride(r rune) bool {
	switch r {
	case 0x202A, 0x202B, 0x202C, 0x202D, 0x202E, // embeddings/overrides
		0x2066, 0x2067, 0x2068, 0x2069: // isolates
		return true
	}
	return false
}
