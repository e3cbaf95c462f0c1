// Summary: Trigger detection for fenced code-block language tags; a pure
// function of line text and cursor offset.
package fence

import "regexp"

// Trigger describes one suggestion session: the partial language tag typed so
// far and the character range on the line it replaces.
type Trigger struct {
	Query string
	Start int
	End   int
}

// openingFence matches three backticks followed by a run of word characters
// at the very end of the text left of the cursor. \w is ASCII in Go regexp,
// which is exactly the set of characters a fence language tag may contain.
var openingFence = regexp.MustCompile("```(\\w*)$")

// DetectTrigger reports whether the characters immediately preceding the
// cursor form an opening fence with an optional partial language tag. The
// cursor must sit right at the end of the run; anything between the run and
// the cursor (even a single space) suppresses the trigger.
func DetectTrigger(line string, cursor int) (Trigger, bool) {
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(line) {
		cursor = len(line)
	}
	m := openingFence.FindStringSubmatch(line[:cursor])
	if m == nil {
		return Trigger{}, false
	}
	query := m[1]
	return Trigger{Query: query, Start: cursor - len(query), End: cursor}, true
}
