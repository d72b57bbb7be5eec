package provider_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/repoglyph/internal/provider"
	"github.com/Sumatoshi-tech/repoglyph/pkg/signature"
)

const validDescriptorJSON = `{
  "name": "acme/widgets",
  "created_at": "2021-03-01T12:00:00Z",
  "languages": [
    {"name": "Go", "bytes": 120000},
    {"name": "Shell", "bytes": 4000}
  ],
  "contributors": [
    {"name": "alice", "contributions": 40},
    {"name": "bob", "contributions": 12}
  ],
  "commits": [
    {
      "id": "c1",
      "author_name": "alice",
      "author_email": "alice@example.com",
      "timestamp": "2021-03-01T12:00:00Z",
      "message": "initial import",
      "stats": {"total": 120, "additions": 120, "deletions": 0}
    },
    {
      "id": "c2",
      "author_name": "bob",
      "timestamp": "2021-03-05T09:30:00Z",
      "message": "fix build"
    }
  ]
}`

func writeDescriptor(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "repo.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestJSONFile_ValidDescriptor(t *testing.T) {
	t.Parallel()

	repo, err := provider.NewJSONFile(writeDescriptor(t, validDescriptorJSON)).Describe(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "acme/widgets", repo.Name)
	assert.Equal(t, "Go", repo.DominantLanguage())
	assert.Len(t, repo.Commits, 2)
	assert.Len(t, repo.Contributors, 2)

	require.NotNil(t, repo.Commits[0].Stats)
	assert.Equal(t, 120, repo.Commits[0].ChangeTotal())

	// Missing stats fall back to the default change total.
	assert.Nil(t, repo.Commits[1].Stats)
	assert.Equal(t, 10, repo.Commits[1].ChangeTotal())
}

func TestJSONFile_RejectsMissingName(t *testing.T) {
	t.Parallel()

	_, err := provider.NewJSONFile(writeDescriptor(t, `{"commits": []}`)).Describe(context.Background())
	require.ErrorIs(t, err, provider.ErrSchemaViolation)
}

func TestJSONFile_RejectsUnknownFields(t *testing.T) {
	t.Parallel()

	_, err := provider.NewJSONFile(writeDescriptor(t, `{"name": "x", "stars": 9}`)).Describe(context.Background())
	require.ErrorIs(t, err, provider.ErrSchemaViolation)
}

func TestJSONFile_RejectsMalformedJSON(t *testing.T) {
	t.Parallel()

	_, err := provider.NewJSONFile(writeDescriptor(t, `{"name":`)).Describe(context.Background())
	require.Error(t, err)
}

func TestJSONFile_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := provider.NewJSONFile(filepath.Join(t.TempDir(), "nope.json")).Describe(context.Background())
	require.Error(t, err)
}

func TestSynthetic_Deterministic(t *testing.T) {
	t.Parallel()

	first, err := provider.NewSynthetic("acme/widgets").Describe(context.Background())
	require.NoError(t, err)

	second, err := provider.NewSynthetic("acme/widgets").Describe(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSynthetic_DistinctNamesDiffer(t *testing.T) {
	t.Parallel()

	first, err := provider.NewSynthetic("acme/widgets").Describe(context.Background())
	require.NoError(t, err)

	second, err := provider.NewSynthetic("acme/gadgets").Describe(context.Background())
	require.NoError(t, err)

	assert.NotEqual(t, first.Commits, second.Commits)
}

func TestSynthetic_DescriptorShape(t *testing.T) {
	t.Parallel()

	repo, err := provider.NewSynthetic("torvalds/linux").Describe(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "torvalds/linux", repo.Name)
	assert.NotEmpty(t, repo.Languages)
	assert.GreaterOrEqual(t, len(repo.Contributors), 3)
	assert.GreaterOrEqual(t, len(repo.Commits), 40)
	assert.Less(t, len(repo.Commits), 200)

	for i := range repo.Commits {
		commit := &repo.Commits[i]
		assert.NotEmpty(t, commit.ID)
		assert.NotEmpty(t, commit.AuthorName)
		assert.False(t, commit.Timestamp.IsZero())
		require.NotNil(t, commit.Stats)
		assert.Equal(t, commit.Stats.Total, commit.Stats.Additions+commit.Stats.Deletions)

		if i > 0 {
			assert.True(t, commit.Timestamp.After(repo.Commits[i-1].Timestamp))
		}
	}

	// The descriptor must feed signature derivation directly.
	sig := signature.Derive(repo)
	assert.NotEmpty(t, sig.Profile.Key)
}

func TestSynthetic_EmptyName(t *testing.T) {
	t.Parallel()

	_, err := provider.NewSynthetic("").Describe(context.Background())
	require.ErrorIs(t, err, provider.ErrEmptyName)
}

func TestLocalDir_DetectsLanguages(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"), []byte("package main\n\nfunc main() {}\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "util.go"), []byte("package main\n\nvar x = 1\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tiny.py"), []byte("x = 1\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), []byte("skip me"), 0o600))

	repo, err := provider.NewLocalDir(dir).Describe(context.Background())
	require.NoError(t, err)

	assert.Equal(t, filepath.Base(dir), repo.Name)
	assert.Equal(t, "Go", repo.DominantLanguage())
	assert.NotEmpty(t, repo.Commits)
}

func TestLocalDir_Deterministic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"), []byte("package main\n"), 0o600))

	first, err := provider.NewLocalDir(dir).Describe(context.Background())
	require.NoError(t, err)

	second, err := provider.NewLocalDir(dir).Describe(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGitRepo_MissingRepository(t *testing.T) {
	t.Parallel()

	_, err := provider.NewGitRepo(filepath.Join(t.TempDir(), "nope"), 0).Describe(context.Background())
	require.Error(t, err)
}
