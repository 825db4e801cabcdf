package app

import (
	"regexp"
	"strings"
)

// Upserted lineup rows and seeded player inserts carry long VALUES lists,
// so traced statements are collapsed and capped before they hit a span.
const maxTracedQueryLength = 512

var queryWhitespace = regexp.MustCompile(`\s+`)

func formatDBQueryForTrace(query string) string {
	collapsed := queryWhitespace.ReplaceAllString(strings.TrimSpace(query), " ")
	if len(collapsed) > maxTracedQueryLength {
		return collapsed[:maxTracedQueryLength] + "..."
	}

	return collapsed
}
