// Package lookup implements exact and substring lookups over the
// integration catalog. All functions are pure and preserve catalog order.
package lookup

import (
	"strings"

	"github.com/tplkit/tplkit/internal/domain"
)

// FindByID returns the first record whose id or name equals id, ignoring
// case. Records are scanned in catalog order: MCP servers, skills, plugins.
func FindByID(c *domain.Catalog, id string) (domain.IntegrationRecord, domain.Category, bool) {
	for _, section := range c.Sections() {
		for _, r := range section.Records {
			if strings.EqualFold(r.ID, id) || strings.EqualFold(r.Name, id) {
				return r, section.Category, true
			}
		}
	}
	return domain.IntegrationRecord{}, "", false
}

// Search returns every record whose id, name or description contains query,
// ignoring case. An empty query matches every record.
func Search(c *domain.Catalog, query string) []domain.Match {
	q := strings.ToLower(query)

	var matches []domain.Match
	for _, section := range c.Sections() {
		for _, r := range section.Records {
			if matchesQuery(r, q) {
				matches = append(matches, domain.Match{Record: r, Category: section.Category})
			}
		}
	}
	return matches
}

func matchesQuery(r domain.IntegrationRecord, q string) bool {
	return strings.Contains(strings.ToLower(r.ID), q) ||
		strings.Contains(strings.ToLower(r.Name), q) ||
		strings.Contains(strings.ToLower(r.Description), q)
}

// IsWebCompatible reports whether a record can run in a remote sandbox.
// LocalOnly wins over the compatibility flag.
func IsWebCompatible(r domain.IntegrationRecord) bool {
	return r.WebCompatible && !r.LocalOnly
}

// PartitionByCompatibility splits records into web-compatible and
// incompatible lists, keeping input order in both.
func PartitionByCompatibility(records []domain.IntegrationRecord) (compatible, incompatible []domain.IntegrationRecord) {
	for _, r := range records {
		if IsWebCompatible(r) {
			compatible = append(compatible, r)
		} else {
			incompatible = append(incompatible, r)
		}
	}
	return compatible, incompatible
}

// PartitionMatches is PartitionByCompatibility over search matches.
func PartitionMatches(matches []domain.Match) (compatible, incompatible []domain.Match) {
	for _, m := range matches {
		if IsWebCompatible(m.Record) {
			compatible = append(compatible, m)
		} else {
			incompatible = append(incompatible, m)
		}
	}
	return compatible, incompatible
}
