package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCatalogNotFound is returned when the catalog file does not exist.
var ErrCatalogNotFound = errors.New("integration catalog not found")

// CatalogParseError wraps a malformed catalog document.
type CatalogParseError struct {
	Path string
	Err  error
}

func (e *CatalogParseError) Error() string {
	return fmt.Sprintf("parsing catalog %s: %v", e.Path, e.Err)
}

func (e *CatalogParseError) Unwrap() error { return e.Err }

// NotFoundError is returned when no integration matches an id or name.
// It carries the catalog so callers can list what is available.
type NotFoundError struct {
	Query   string
	Catalog *Catalog
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("integration %q not found in catalog", e.Query)
}

// MissingVariablesError lists required environment variables that are unset.
type MissingVariablesError struct {
	Names []string
}

func (e *MissingVariablesError) Error() string {
	return "missing required environment variables: " + strings.Join(e.Names, ", ")
}
