package domain

// CatalogLoader reads the integration catalog from a file.
type CatalogLoader interface {
	Load(path string) (*Catalog, error)
}

// ConfigLoader reads project configuration.
type ConfigLoader interface {
	Load(projectPath string) (ProjectConfig, error)
}

// EnvLookup resolves environment variables. The second result reports
// whether the variable is present at all.
type EnvLookup interface {
	Lookup(name string) (string, bool)
}

// ProjectFS answers questions about files inside a project root.
// Paths are relative to the root passed to the implementation.
type ProjectFS interface {
	Exists(path string) bool
	ReadFile(path string) ([]byte, error)
}

// GitInfo provides git repository information.
type GitInfo interface {
	IsGitRepo(projectPath string) bool
	CommitHash(projectPath string) (string, error)
	Remotes(projectPath string) ([]string, error)
}
