// Summary: Suggestion ranking; prefix filter plus last-used promotion. Pure
// functions, safe to call repeatedly while the user types.
package fence

import "strings"

// Rank filters candidates to those starting with the query
// (case-insensitively) and, when the last-used language survives the filter,
// moves it to the front. The relative order of all other entries is the
// candidate set's iteration order.
func Rank(query string, candidates []string, lastUsed string) []string {
	q := strings.ToLower(query)
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if strings.HasPrefix(strings.ToLower(c), q) {
			out = append(out, c)
		}
	}
	if lastUsed == "" {
		return out
	}
	for i, c := range out {
		if c == lastUsed {
			copy(out[1:i+1], out[:i])
			out[0] = lastUsed
			break
		}
	}
	return out
}
