package textdiff

// Option configures a text diff.
type Option func(*config)

type config struct {
	escape          bool
	wordDiff        bool
	indentHeuristic bool
}

// Verbatim disables the escaping of invisible characters, see [Escape].
func Verbatim() Option {
	return func(c *config) { c.escape = false }
}

// WordDiff enables or disables the word diff of changed lines. It's enabled by default.
func WordDiff(enabled bool) Option {
	return func(c *config) { c.wordDiff = enabled }
}

// IndentHeuristic moves groups of inserted or removed lines along equal lines so that they line up
// with the indentation of the surrounding text. It never changes the cost of a diff.
func IndentHeuristic() Option {
	return func(c *config) { c.indentHeuristic = true }
}

func fromOptions(opts []Option) config {
	c := config{escape: true, wordDiff: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}
