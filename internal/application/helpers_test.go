package application_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	templateFixture = "../../testdata/template"
	catalogFixture  = "../../testdata/catalog/integrations.json"
)

// copyTemplate copies the template fixture into a fresh temp dir.
func copyTemplate(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "project")
	require.NoError(t, os.CopyFS(dir, os.DirFS(templateFixture)))
	return dir
}

type fakeGit struct {
	repo    bool
	hash    string
	remotes []string
}

func (g fakeGit) IsGitRepo(string) bool { return g.repo }

func (g fakeGit) CommitHash(string) (string, error) {
	if g.hash == "" {
		return "", errors.New("getting HEAD: reference not found")
	}
	return g.hash, nil
}

func (g fakeGit) Remotes(string) ([]string, error) {
	if !g.repo {
		return nil, errors.New("opening git repo: repository does not exist")
	}
	return g.remotes, nil
}

func healthyGit() fakeGit {
	return fakeGit{repo: true, hash: "0123456789abcdef0123456789abcdef01234567", remotes: []string{"origin"}}
}
