package textdiff

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "empty",
		},
		{
			name: "no-terminator",
			in:   "foo",
			want: []string{"foo"},
		},
		{
			name: "final-terminator",
			in:   "foo\n",
			want: []string{"foo\n"},
		},
		{
			name: "missing-final-terminator",
			in:   "foo\nbar",
			want: []string{"foo\n", "bar"},
		},
		{
			name: "mixed-terminators",
			in:   "foo\r\nbar\rbaz\n",
			want: []string{"foo\r\n", "bar\r", "baz\n"},
		},
		{
			name: "empty-lines",
			in:   "\n\n",
			want: []string{"\n", "\n"},
		},
		{
			name: "carriage-return-before-crlf",
			in:   "\r\r\n",
			want: []string{"\r", "\r\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lines(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Lines(%q) result is different (-want, +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"foo", "foo"},
		{"foo\tbar\n", "foo\\tbar\\n\n"},
		{"foo\r\nbar", "foo\\r\\n\r\nbar"},
		{"foo\rbar", "foo\\r\rbar"},
		{"\b\f\v", `\b\f\v`},
		{`C:\temp`, `C:\\temp`},
		{"a\tb\\tc", `a\tb\\tc`},
	}

	for _, tt := range tests {
		got := Escape(tt.in)
		if got != tt.want {
			t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if n, m := len(Lines(tt.in)), len(Lines(got)); n != m {
			t.Errorf("Escape(%q) changed the number of lines from %d to %d", tt.in, n, m)
		}
	}
}

func TestWords(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		verbatim bool
		want     []string
	}{
		{
			name: "empty",
		},
		{
			name: "spaces",
			in:   "foo bar  baz",
			want: []string{"foo", " ", "bar", "  ", "baz"},
		},
		{
			name: "brackets",
			in:   "foo(bar) baz",
			want: []string{"foo", "(", "bar", ")", " ", "baz"},
		},
		{
			name: "quotes",
			in:   `say "hi"`,
			want: []string{"say", " ", `"`, "hi", `"`},
		},
		{
			name: "punctuation",
			in:   "foo.bar, baz",
			want: []string{"foo", ".", "bar", ",", " ", "baz"},
		},
		{
			name: "digits-and-letters",
			in:   "123abc_def",
			want: []string{"123abc_def"},
		},
		{
			name: "extended-latin",
			in:   "café au lait",
			want: []string{"café", " ", "au", " ", "lait"},
		},
		{
			name: "extended-latin-with-underscore",
			in:   "naïve_test",
			want: []string{"naï", "ve_test"},
		},
		{
			name: "line-terminators",
			in:   "foo\r\n",
			want: []string{"foo", "\r", "\n"},
		},
		{
			name: "escaped-whitespace",
			in:   `foo\t\tbar`,
			want: []string{"foo", `\t\t`, "bar"},
		},
		{
			name: "escaped-newline",
			in:   "foo\\n\n",
			want: []string{"foo", `\`, "n", "\n"},
		},
		{
			name: "escaped-backslash",
			in:   `a\\tb`,
			want: []string{"a", `\\`, "tb"},
		},
		{
			name: "escaped-backslash-before-whitespace",
			in:   `a\\\tb`,
			want: []string{"a", `\\`, `\t`, "b"},
		},
		{
			name:     "verbatim-backslash",
			in:       `foo\tbar`,
			verbatim: true,
			want:     []string{"foo", `\`, "tbar"},
		},
		{
			name:     "verbatim-whitespace",
			in:       "foo\t bar",
			verbatim: true,
			want:     []string{"foo", "\t ", "bar"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitWords(tt.in, !tt.verbatim)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("splitWords(%q, %t) result is different (-want, +got):\n%s", tt.in, !tt.verbatim, diff)
			}
		})
	}
}

func TestTokenizeRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"foo",
		"foo\nbar\r\nbaz\r",
		"func f() {\n\treturn \"x\"\n}\n",
		"Ünïcödé wörds, ån∂ ßymbols ±1\n",
		Escape("tabs\tand\vother\fthings\b\r\n"),
		"   leading and trailing   ",
	}
	for _, in := range inputs {
		if got := strings.Join(Lines(in), ""); got != in {
			t.Errorf("joined Lines(%q) = %q", in, got)
		}
		if got := strings.Join(Words(in), ""); got != in {
			t.Errorf("joined Words(%q) = %q", in, got)
		}
	}
}
