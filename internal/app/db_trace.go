package app

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// tracedQueryLimit caps the db.statement span attribute. Rank chunk writes
// carry one VALUES tuple per entry and would otherwise run to kilobytes.
const tracedQueryLimit = 512

var sqlLineComment = regexp.MustCompile(`(?m)--.*$`)

// formatDBQueryForTrace drops line comments, collapses whitespace, and cuts
// the result on a rune boundary.
func formatDBQueryForTrace(query string) string {
	query = sqlLineComment.ReplaceAllString(query, "")
	normalized := strings.Join(strings.Fields(query), " ")
	if len(normalized) <= tracedQueryLimit {
		return normalized
	}

	cut := tracedQueryLimit
	for cut > 0 && !utf8.RuneStart(normalized[cut]) {
		cut--
	}
	return normalized[:cut] + "..."
}
