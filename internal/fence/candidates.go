// Summary: Candidate set construction; built-in language list unioned with
// user-configured extras, deduplicated.
package fence

import "strings"

// builtin is the fixed pool of fence language tags offered out of the box.
// Entries are lowercase and unique.
var builtin = []string{
	"apache",
	"bash",
	"c",
	"cpp",
	"csharp",
	"css",
	"diff",
	"dockerfile",
	"elixir",
	"go",
	"graphql",
	"groovy",
	"haskell",
	"html",
	"http",
	"ini",
	"java",
	"javascript",
	"json",
	"kotlin",
	"latex",
	"less",
	"lua",
	"makefile",
	"markdown",
	"matlab",
	"nginx",
	"objectivec",
	"perl",
	"php",
	"plaintext",
	"powershell",
	"python",
	"r",
	"ruby",
	"rust",
	"scala",
	"scss",
	"shell",
	"sql",
	"swift",
	"toml",
	"typescript",
	"vim",
	"xml",
	"yaml",
	"zig",
}

// Builtin returns a copy of the built-in language list.
func Builtin() []string {
	out := make([]string, len(builtin))
	copy(out, builtin)
	return out
}

// ParseAdditional splits a raw comma-separated user setting into individual
// language tags. Segments are trimmed; empty or whitespace-only segments are
// dropped silently.
func ParseAdditional(raw string) []string {
	var out []string
	for _, seg := range strings.Split(raw, ",") {
		if s := strings.TrimSpace(seg); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Candidates builds the full candidate set from the raw additional-languages
// setting. User entries come first so they take precedence in iteration
// order; duplicates across the two sources collapse onto the first
// occurrence.
func Candidates(additional string) []string {
	user := ParseAdditional(additional)
	out := make([]string, 0, len(user)+len(builtin))
	seen := make(map[string]bool, len(user)+len(builtin))
	for _, lang := range user {
		if !seen[lang] {
			seen[lang] = true
			out = append(out, lang)
		}
	}
	for _, lang := range builtin {
		if !seen[lang] {
			seen[lang] = true
			out = append(out, lang)
		}
	}
	return out
}
