package highlight

import (
	"html/template"
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/assertdiff/diff"
	"znkr.io/assertdiff/textdiff"
)

func TestFragment(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts []Option
		want template.HTML
	}{
		{
			name: "empty",
		},
		{
			name: "plain-text-is-escaped",
			in:   `<a href="x">`,
			want: "&lt;a href=&#34;x&#34;&gt;",
		},
		{
			name: "keyword",
			in:   "func",
			opts: []Option{Lang("go")},
			want: `<span class="hl-b">func</span>`,
		},
		{
			name: "lexer-from-filename",
			in:   "return",
			opts: []Option{LangFromFilename("main.go")},
			want: `<span class="hl-b">return</span>`,
		},
		{
			name: "unknown-language",
			in:   "func",
			opts: []Option{Lang("no-such-language")},
			want: "func",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Fragment(tt.in, tt.opts...)
			if err != nil {
				t.Fatalf("Fragment failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Fragment result is different (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestDiff(t *testing.T) {
	lines := textdiff.Diff("a\nfoo bar\n", "a\nfoo baz\nc\n", textdiff.Verbatim())
	got, err := Diff(lines)
	if err != nil {
		t.Fatalf("Diff failed: %v", err)
	}
	want := []Edit{
		{diff.Kept, 1, 1, "a"},
		{diff.Removed, 2, -1, "foo <del>bar</del>"},
		{diff.Inserted, -1, 2, "foo <ins>baz</ins>"},
		{diff.Inserted, -1, 3, "c"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Diff result is different (-want, +got):\n%s", diff)
	}
}

func TestDiff_CRLF(t *testing.T) {
	lines := textdiff.Diff("a\r\nfoo bar\r\n", "a\r\nfoo baz\r\n", textdiff.Verbatim())
	got, err := Diff(lines)
	if err != nil {
		t.Fatalf("Diff failed: %v", err)
	}
	want := []Edit{
		{diff.Kept, 1, 1, "a"},
		{diff.Removed, 2, -1, "foo <del>bar</del>"},
		{diff.Inserted, -1, 2, "foo <ins>baz</ins>"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Diff result is different (-want, +got):\n%s", diff)
	}
}

func TestChomp(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", ""},
		{"a", "a"},
		{"a\n", "a"},
		{"a\r\n", "a"},
		{"a\r", "a"},
		{"a\n\n", "a\n"},
	}
	for _, tt := range tests {
		if got := chomp(tt.in); got != tt.want {
			t.Errorf("chomp(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
