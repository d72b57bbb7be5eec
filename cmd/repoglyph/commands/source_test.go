package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/repoglyph/internal/provider"
)

func TestSourceFlags_NoSource(t *testing.T) {
	t.Parallel()

	sf := &sourceFlags{}

	_, err := sf.provider(nil, 0)
	require.ErrorIs(t, err, ErrNoSource)
}

func TestSourceFlags_MultipleSources(t *testing.T) {
	t.Parallel()

	sf := &sourceFlags{gitPath: "/tmp/repo", synthKey: "acme/widgets"}

	_, err := sf.provider(nil, 0)
	require.ErrorIs(t, err, ErrMultipleSources)
}

func TestSourceFlags_PositionalConflictsWithFlag(t *testing.T) {
	t.Parallel()

	sf := &sourceFlags{synthKey: "acme/widgets"}

	_, err := sf.provider([]string{"repo.json"}, 0)
	require.ErrorIs(t, err, ErrMultipleSources)
}

func TestSourceFlags_ResolvesProviders(t *testing.T) {
	t.Parallel()

	src, err := (&sourceFlags{synthKey: "acme/widgets"}).provider(nil, 0)
	require.NoError(t, err)
	assert.IsType(t, &provider.Synthetic{}, src)

	src, err = (&sourceFlags{gitPath: "/tmp/repo"}).provider(nil, 100)
	require.NoError(t, err)
	assert.IsType(t, &provider.GitRepo{}, src)

	src, err = (&sourceFlags{dirPath: "/tmp/src"}).provider(nil, 0)
	require.NoError(t, err)
	assert.IsType(t, &provider.LocalDir{}, src)

	src, err = (&sourceFlags{}).provider([]string{"repo.json"}, 0)
	require.NoError(t, err)
	assert.IsType(t, &provider.JSONFile{}, src)
}
