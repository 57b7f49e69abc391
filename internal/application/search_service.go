package application

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/tplkit/tplkit/internal/domain"
	"github.com/tplkit/tplkit/internal/domain/lookup"
)

// SearchService answers catalog queries. A missing catalog degrades to an
// empty one; a malformed catalog is an error.
type SearchService struct {
	catalogs domain.CatalogLoader
	logger   *zap.Logger
}

func NewSearchService(catalogs domain.CatalogLoader, logger *zap.Logger) *SearchService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SearchService{catalogs: catalogs, logger: logger}
}

// Search returns the records matching query.
func (s *SearchService) Search(catalogPath, query string) (*domain.SearchResult, error) {
	c, missing, err := s.loadOrEmpty(catalogPath)
	if err != nil {
		return nil, err
	}

	result := &domain.SearchResult{
		Query:          query,
		Matches:        lookup.Search(c, query),
		CatalogMissing: missing,
	}
	if len(result.Matches) == 0 {
		result.Matches = []domain.Match{}
		result.Suggestions = lookup.SuggestionQueries(query)
	}

	s.logger.Debug("catalog search", zap.String("query", query), zap.Int("matches", len(result.Matches)))
	return result, nil
}

// List returns the whole catalog.
func (s *SearchService) List(catalogPath string) (*domain.CatalogListing, error) {
	c, missing, err := s.loadOrEmpty(catalogPath)
	if err != nil {
		return nil, err
	}
	return &domain.CatalogListing{Catalog: c, CatalogMissing: missing}, nil
}

// Get returns the record whose id or name equals id.
func (s *SearchService) Get(catalogPath, id string) (*domain.Match, error) {
	c, _, err := s.loadOrEmpty(catalogPath)
	if err != nil {
		return nil, err
	}
	record, category, ok := lookup.FindByID(c, id)
	if !ok {
		return nil, &domain.NotFoundError{Query: id, Catalog: c}
	}
	return &domain.Match{Record: record, Category: category}, nil
}

func (s *SearchService) loadOrEmpty(catalogPath string) (*domain.Catalog, bool, error) {
	c, err := s.catalogs.Load(catalogPath)
	if err != nil {
		if errors.Is(err, domain.ErrCatalogNotFound) {
			s.logger.Warn("catalog not found, using empty catalog", zap.String("path", catalogPath))
			return domain.EmptyCatalog(), true, nil
		}
		return nil, false, fmt.Errorf("loading catalog: %w", err)
	}
	s.logger.Debug("catalog loaded", zap.String("path", catalogPath), zap.Int("records", c.Len()))
	return c, false, nil
}
