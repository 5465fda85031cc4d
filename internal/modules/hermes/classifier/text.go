package classifier

import (
	"strings"
	"unicode"
)

// normalize lowercases and folds punctuation to single spaces so multi-word
// phrases match regardless of commas or line breaks. The result is padded
// with one space on each side for whole-word checks.
func normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text) + 2)
	b.WriteByte(' ')
	lastSpace := true
	for _, r := range strings.ToLower(text) {
		switch {
		case r == '’' || r == '‘':
			r = '\''
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'':
		default:
			r = ' '
		}
		if r == ' ' {
			if lastSpace {
				continue
			}
			lastSpace = true
		} else {
			lastSpace = false
		}
		b.WriteRune(r)
	}
	if !lastSpace {
		b.WriteByte(' ')
	}
	return b.String()
}

func containsWord(norm, phrase string) bool {
	return strings.Contains(norm, " "+phrase+" ")
}

func containsSubstring(norm, phrase string) bool {
	return strings.Contains(norm, phrase)
}

func isBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}

// sentences splits on terminal punctuation and newlines, keeping original casing.
func sentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?' || r == '\n'
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

const maxSnippetRunes = 160

func snippet(s string) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) <= maxSnippetRunes {
		return s
	}
	return strings.TrimSpace(string(r[:maxSnippetRunes-3])) + "..."
}

// firstSentenceWith returns the first sentence whose normalized form satisfies match.
func firstSentenceWith(text string, match func(norm string) bool) string {
	for _, s := range sentences(text) {
		if match(normalize(s)) {
			return snippet(s)
		}
	}
	return ""
}
