package domain

// SearchResult holds the matches for a catalog search.
type SearchResult struct {
	Query          string   `json:"query"`
	Matches        []Match  `json:"matches"`
	Suggestions    []string `json:"suggestions,omitempty"`
	CatalogMissing bool     `json:"catalog_missing,omitempty"`
}

// CatalogListing is the whole catalog as presented by the list command.
type CatalogListing struct {
	Catalog        *Catalog `json:"catalog"`
	CatalogMissing bool     `json:"catalog_missing,omitempty"`
}
