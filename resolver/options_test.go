package resolver

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sduikit/sduitools/sduierrors"
)

func TestResolveWithOptionsRequiresInput(t *testing.T) {
	_, err := ResolveWithOptions()
	require.Error(t, err)
	assert.True(t, errors.Is(err, sduierrors.ErrConfig))
}

func TestWithFilePathRejectsEmpty(t *testing.T) {
	_, err := ResolveWithOptions(WithFilePath(""))
	require.Error(t, err)

	var cfgErr *sduierrors.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "file_path", cfgErr.Option)
}

func TestWithMaxDepthRejectsNonPositive(t *testing.T) {
	for _, depth := range []int{0, -1} {
		_, err := ResolveWithOptions(WithFilePath("x.json"), WithMaxDepth(depth))
		require.Error(t, err, "depth %d", depth)
		assert.True(t, errors.Is(err, sduierrors.ErrConfig))
	}
}

func TestResolverZeroValueUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Root.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name": "Root"}`), 0o644))

	r := New()
	result, err := r.Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Metadata.TotalResolutions)
	assert.Equal(t, 1, result.Metadata.UniqueComponents)
}

func TestResolverNegativeMaxDepthRejected(t *testing.T) {
	r := &Resolver{MaxDepth: -5}
	_, err := r.Resolve("whatever.json")
	require.Error(t, err)
	assert.True(t, errors.Is(err, sduierrors.ErrConfig))
}
