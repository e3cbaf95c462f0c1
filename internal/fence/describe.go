package fence

import "github.com/alecthomas/chroma/v2/lexers"

// DisplayName resolves a candidate to the human-readable name of the
// matching chroma lexer, or "" when no lexer claims the tag. Suggestions are
// never filtered on this; it only decorates what the host renders.
func DisplayName(lang string) string {
	lx := lexers.Get(lang)
	if lx == nil {
		return ""
	}
	return lx.Config().Name
}
