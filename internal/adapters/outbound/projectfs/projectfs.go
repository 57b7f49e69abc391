package projectfs

import (
	"os"
	"path/filepath"
)

// DirFS implements domain.ProjectFS over a directory on disk.
type DirFS struct {
	root string
}

// New returns a DirFS rooted at projectPath.
func New(projectPath string) *DirFS {
	return &DirFS{root: projectPath}
}

// Root returns the absolute project root, or the path as given when it
// cannot be resolved.
func (f *DirFS) Root() string {
	abs, err := filepath.Abs(f.root)
	if err != nil {
		return f.root
	}
	return abs
}

func (f *DirFS) Exists(path string) bool {
	_, err := os.Stat(f.resolve(path))
	return err == nil
}

func (f *DirFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(f.resolve(path))
}

func (f *DirFS) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(f.root, filepath.FromSlash(path))
}
