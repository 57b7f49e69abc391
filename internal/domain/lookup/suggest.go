package lookup

import (
	"strings"

	"github.com/fatih/camelcase"
)

// SuggestionTerms splits a query into lowercase words for web search hints.
// "GoogleDrive" and "google-drive" both become "google drive".
func SuggestionTerms(query string) string {
	fields := strings.FieldsFunc(query, func(r rune) bool {
		return r == '-' || r == '_' || r == ' ' || r == '.'
	})

	var words []string
	for _, f := range fields {
		for _, w := range camelcase.Split(f) {
			w = strings.TrimSpace(w)
			if w != "" {
				words = append(words, strings.ToLower(w))
			}
		}
	}
	return strings.Join(words, " ")
}

// SuggestionQueries returns the web searches offered when nothing matches.
func SuggestionQueries(query string) []string {
	terms := SuggestionTerms(query)
	if terms == "" {
		terms = strings.ToLower(strings.TrimSpace(query))
	}
	return []string{
		"claude code " + terms + " mcp",
		"awesome-mcp-servers " + terms,
	}
}
