package textdiff

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lines splits s into lines. Every line keeps its terminator, which is one of "\r\n", "\n" or a
// lone "\r". Concatenating the result yields s again. An empty string has no lines.
func Lines(s string) []string {
	var lines []string
	for len(s) > 0 {
		i := strings.IndexAny(s, "\r\n")
		if i < 0 {
			lines = append(lines, s)
			break
		}
		end := i + 1
		if s[i] == '\r' && end < len(s) && s[end] == '\n' {
			end++
		}
		lines = append(lines, s[:end])
		s = s[end:]
	}
	return lines
}

var escaper = strings.NewReplacer(
	`\`, `\\`,
	"\b", `\b`,
	"\f", `\f`,
	"\t", `\t`,
	"\v", `\v`,
	"\r\n", "\\r\\n\r\n",
	"\r", "\\r\r",
	"\n", "\\n\n",
)

// Escape makes invisible characters visible. Backspace, form feed, tab and vertical tab are
// replaced by their backslash escapes and a backslash is doubled, so that an escape can't be confused
// with the same text in s. Line terminators are prefixed with their escaped form but otherwise kept,
// so that the escaped string has the same lines as s.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Words splits s into words and separators. Separators are runs of whitespace (including the
// escapes produced by [Escape]), brackets, quotes and line terminators. Words are split at ASCII
// word boundaries, except between letters of the extended Latin alphabet, so that "café" stays one
// word. Concatenating the result yields s again.
//
// s is expected to be the output of [Escape]. Diffs created with [Verbatim] split lines without
// recognizing escapes.
func Words(s string) []string {
	return splitWords(s, true)
}

func splitWords(s string, escaped bool) []string {
	// An empty fragment marks a split at a word boundary, which is needed to decide whether two
	// neighboring fragments have to be joined again.
	var frags []string
	start := 0
	for i := 0; i < len(s); {
		if n := separatorLen(s[i:], escaped); n > 0 {
			frags = append(frags, s[start:i], s[i:i+n])
			i += n
			start = i
			continue
		}
		if i > start && isWordByte(s[i-1]) != isWordByte(s[i]) {
			frags = append(frags, s[start:i], "")
			start = i
		}
		if escaped && strings.HasPrefix(s[i:], `\\`) {
			i += 2
			continue
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	frags = append(frags, s[start:])

	for i := 0; i+2 < len(frags); i++ {
		if frags[i+1] == "" && frags[i+2] != "" && latinWord.MatchString(frags[i]) && latinWord.MatchString(frags[i+2]) {
			frags[i] += frags[i+2]
			frags = append(frags[:i+1], frags[i+3:]...)
			i--
		}
	}

	words := frags[:0]
	for _, f := range frags {
		if f != "" {
			words = append(words, f)
		}
	}
	if len(words) == 0 {
		return nil
	}
	return words
}

var latinWord = regexp.MustCompile(`^[a-zA-Z\x{C0}-\x{FF}\x{D8}-\x{F6}\x{F8}-\x{2C6}\x{2C8}-\x{2D7}\x{2DE}-\x{2FF}\x{1E00}-\x{1EFF}]+$`)

// separatorLen returns the length of the separator at the start of s or 0 if s doesn't start with
// a separator. Escaped whitespace is only recognized if s is escaped.
func separatorLen(s string, escaped bool) int {
	switch s[0] {
	case '(', ')', '[', ']', '{', '}', '\'', '"', '\r', '\n':
		return 1
	}
	n := 0
	for n < len(s) {
		if escaped && s[n] == '\\' && n+1 < len(s) && strings.IndexByte("bftv", s[n+1]) >= 0 {
			n += 2
			continue
		}
		r, size := utf8.DecodeRuneInString(s[n:])
		if r == '\r' || r == '\n' || !unicode.IsSpace(r) {
			break
		}
		n += size
	}
	return n
}

func isWordByte(c byte) bool {
	return c == '_' || '0' <= c && c <= '9' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isBlank(s string) bool {
	return strings.TrimFunc(s, unicode.IsSpace) == ""
}
