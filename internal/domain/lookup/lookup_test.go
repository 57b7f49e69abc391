package lookup_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tplkit/tplkit/internal/domain"
	"github.com/tplkit/tplkit/internal/domain/lookup"
)

func sampleCatalog() *domain.Catalog {
	return &domain.Catalog{
		MCPServers: []domain.IntegrationRecord{
			{ID: "exa-search", Name: "Exa Search", Description: "Neural web search", WebCompatible: true},
			{ID: "sentry", Name: "Sentry", Description: "Error monitoring", WebCompatible: true},
			{ID: "filesystem", Name: "Filesystem", Description: "Local file access", LocalOnly: true},
		},
		Skills: []domain.IntegrationRecord{
			{ID: "pdf", Name: "PDF", Description: "Read and write PDF documents", WebCompatible: true},
			{ID: "monitor", Name: "Sentry", Description: "Skill sharing a name with a server", WebCompatible: true},
		},
		Plugins: []domain.IntegrationRecord{
			{ID: "playwright", Name: "Playwright", Description: "Browser automation for web search results", WebCompatible: false},
		},
	}
}

func TestFindByID_MatchesIDCaseInsensitive(t *testing.T) {
	r, cat, ok := lookup.FindByID(sampleCatalog(), "EXA-SEARCH")
	require.True(t, ok)
	assert.Equal(t, "exa-search", r.ID)
	assert.Equal(t, domain.CategoryMCPServer, cat)
}

func TestFindByID_MatchesName(t *testing.T) {
	r, cat, ok := lookup.FindByID(sampleCatalog(), "playwright")
	require.True(t, ok)
	assert.Equal(t, "playwright", r.ID)
	assert.Equal(t, domain.CategoryPlugin, cat)
}

func TestFindByID_FirstMatchWins(t *testing.T) {
	r, cat, ok := lookup.FindByID(sampleCatalog(), "sentry")
	require.True(t, ok)
	assert.Equal(t, "sentry", r.ID)
	assert.Equal(t, domain.CategoryMCPServer, cat)
}

func TestFindByID_NotFound(t *testing.T) {
	_, _, ok := lookup.FindByID(sampleCatalog(), "exa")
	assert.False(t, ok, "partial ids are not exact matches")

	_, _, ok = lookup.FindByID(domain.EmptyCatalog(), "sentry")
	assert.False(t, ok)

	_, _, ok = lookup.FindByID(nil, "sentry")
	assert.False(t, ok)
}

func TestFindByID_IffSomeRecordMatches(t *testing.T) {
	c := sampleCatalog()
	for _, section := range c.Sections() {
		for _, r := range section.Records {
			_, _, ok := lookup.FindByID(c, r.ID)
			assert.True(t, ok, "id %s", r.ID)
			_, _, ok = lookup.FindByID(c, r.Name)
			assert.True(t, ok, "name %s", r.Name)
		}
	}
}

func TestSearch_ExaReturnsOneMCPServer(t *testing.T) {
	matches := lookup.Search(sampleCatalog(), "exa")
	require.Len(t, matches, 1)
	assert.Equal(t, "exa-search", matches[0].Record.ID)
	assert.Equal(t, "MCP Server", matches[0].Category.Label())
}

func TestSearch_MatchesDescriptionAcrossCategories(t *testing.T) {
	matches := lookup.Search(sampleCatalog(), "WEB SEARCH")
	require.Len(t, matches, 2)
	assert.Equal(t, "exa-search", matches[0].Record.ID)
	assert.Equal(t, domain.CategoryMCPServer, matches[0].Category)
	assert.Equal(t, "playwright", matches[1].Record.ID)
	assert.Equal(t, domain.CategoryPlugin, matches[1].Category)
}

func TestSearch_SoundAndComplete(t *testing.T) {
	c := sampleCatalog()
	for _, q := range []string{"s", "sentry", "PDF", "local", "zzz"} {
		matches := lookup.Search(c, q)

		seen := make(map[string]int)
		for _, m := range matches {
			seen[string(m.Category)+"/"+m.Record.ID]++
		}

		for _, section := range c.Sections() {
			for _, r := range section.Records {
				key := string(section.Category) + "/" + r.ID
				want := 0
				if containsFold(r.ID, q) || containsFold(r.Name, q) || containsFold(r.Description, q) {
					want = 1
				}
				assert.Equal(t, want, seen[key], "query %q record %s", q, key)
			}
		}
	}
}

func TestSearch_EmptyQueryMatchesAll(t *testing.T) {
	c := sampleCatalog()
	assert.Len(t, lookup.Search(c, ""), c.Len())
}

func TestPartitionByCompatibility_Total(t *testing.T) {
	records := []domain.IntegrationRecord{
		{ID: "a", WebCompatible: true},
		{ID: "b", WebCompatible: false},
		{ID: "c", WebCompatible: true, LocalOnly: true},
		{ID: "d", WebCompatible: true},
	}

	compatible, incompatible := lookup.PartitionByCompatibility(records)
	assert.Equal(t, []string{"a", "d"}, ids(compatible))
	assert.Equal(t, []string{"b", "c"}, ids(incompatible))
	assert.Len(t, records, len(compatible)+len(incompatible))
}

func TestPartitionMatches_LocalOnlyForcesIncompatible(t *testing.T) {
	matches := lookup.Search(sampleCatalog(), "")
	compatible, incompatible := lookup.PartitionMatches(matches)
	assert.Len(t, matches, len(compatible)+len(incompatible))
	for _, m := range incompatible {
		assert.False(t, lookup.IsWebCompatible(m.Record))
	}
	assert.Equal(t, "filesystem", incompatible[0].Record.ID)
}

func TestSuggestionTerms(t *testing.T) {
	assert.Equal(t, "google drive", lookup.SuggestionTerms("GoogleDrive"))
	assert.Equal(t, "google drive", lookup.SuggestionTerms("google-drive"))
	assert.Equal(t, "slack", lookup.SuggestionTerms("slack"))
	assert.Equal(t, "", lookup.SuggestionTerms("  "))
}

func TestSuggestionQueries(t *testing.T) {
	q := lookup.SuggestionQueries("linear")
	assert.Equal(t, []string{"claude code linear mcp", "awesome-mcp-servers linear"}, q)
}

func ids(records []domain.IntegrationRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
