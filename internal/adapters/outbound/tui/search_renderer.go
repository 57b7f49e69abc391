package tui

import (
	"fmt"
	"strings"

	"github.com/tplkit/tplkit/internal/domain"
	"github.com/tplkit/tplkit/internal/domain/lookup"
)

var resourceLinks = []string{
	"https://github.com/anthropics/skills",
	"https://github.com/punkpeye/awesome-mcp-servers",
}

var categoryBlurbs = map[domain.Category]string{
	domain.CategoryMCPServer: "External Services",
	domain.CategorySkill:     "Claude Capabilities",
	domain.CategoryPlugin:    "Extended Features",
}

// RenderSearchResults renders matches grouped by web compatibility, or the
// no-results suggestion block when there are none.
func RenderSearchResults(result *domain.SearchResult) string {
	if len(result.Matches) == 0 {
		return RenderNoResults(result)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n  %s\n", titleStyle.Render(
		fmt.Sprintf("Found %d result(s) for %q:", len(result.Matches), result.Query)))

	compatible, incompatible := lookup.PartitionMatches(result.Matches)
	if len(compatible) > 0 {
		section(&b, "Web Compatible", len(compatible))
		for _, m := range compatible {
			renderMatch(&b, passIcon, m)
		}
	}
	if len(incompatible) > 0 {
		section(&b, "Local CLI Only", len(incompatible))
		for _, m := range incompatible {
			renderMatch(&b, warnIcon, m)
		}
	}
	return b.String()
}

// RenderNoResults renders the suggestions shown when a search finds nothing.
func RenderNoResults(result *domain.SearchResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n  %s %s\n", failIcon,
		errorTagStyle.Render(fmt.Sprintf("No integrations found for %q", result.Query)))

	suggestions := result.Suggestions
	if len(suggestions) == 0 {
		suggestions = lookup.SuggestionQueries(result.Query)
	}
	b.WriteString("\n  " + titleStyle.Render("Try searching the web for:") + "\n")
	for _, s := range suggestions {
		fmt.Fprintf(&b, "    - %q\n", s)
	}

	b.WriteString("\n  " + titleStyle.Render("Or check these resources:") + "\n")
	for _, link := range resourceLinks {
		b.WriteString("    - " + hintStyle.Render(link) + "\n")
	}
	return b.String()
}

// RenderCatalogList renders every catalog entry grouped by category, and
// MCP servers additionally by web compatibility.
func RenderCatalogList(c *domain.Catalog) string {
	var b strings.Builder
	b.WriteString("\n  " + titleStyle.Render("Available Integrations") + "\n")

	for _, s := range c.Sections() {
		title := fmt.Sprintf("%s (%s)", pluralLabel(s.Category), categoryBlurbs[s.Category])
		section(&b, title, len(s.Records))

		if s.Category == domain.CategoryMCPServer {
			compatible, incompatible := lookup.PartitionByCompatibility(s.Records)
			b.WriteString("    " + dimStyle.Render("Web Compatible:") + "\n")
			for _, r := range compatible {
				renderListEntry(&b, "      ", r)
			}
			b.WriteString("    " + dimStyle.Render("Local Only:") + "\n")
			for _, r := range incompatible {
				renderListEntry(&b, "      ", r)
			}
			continue
		}

		for _, r := range s.Records {
			renderListEntry(&b, "    ", r)
		}
	}
	return b.String()
}

func renderMatch(b *strings.Builder, icon string, m domain.Match) {
	fmt.Fprintf(b, "    %s %s %s %s\n",
		icon,
		dimStyle.Render("["+m.Category.Label()+"]"),
		titleStyle.Render(m.Record.Name),
		faintStyle.Render("("+m.Record.ID+")"),
	)
	if m.Record.Description != "" {
		b.WriteString("        " + m.Record.Description + "\n")
	}
}

func renderListEntry(b *strings.Builder, indent string, r domain.IntegrationRecord) {
	icon := passIcon
	if !lookup.IsWebCompatible(r) {
		icon = warnIcon
	}
	fmt.Fprintf(b, "%s%s %s - %s\n", indent, icon, r.Name, dimStyle.Render(r.Description))
}
