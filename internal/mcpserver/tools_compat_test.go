package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCompatFixtures(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeSchema(t, dir, "button.json", map[string]any{
		"name": "Button",
		"releaseVersion": map[string]any{
			"web": "released",
			"ios": "not released",
		},
	})
	writeSchema(t, dir, "card.json", map[string]any{
		"name": "Card",
		"releaseVersion": map[string]any{
			"web": "1.4.0",
		},
	})
	writeSchema(t, dir, "drawer.json", map[string]any{
		"name": "Drawer",
	})
	return dir
}

func TestCompatTool_Web(t *testing.T) {
	dir := writeCompatFixtures(t)

	input := compatInput{Dir: dir}
	result, output, err := handleCompat(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, "web", output.Platform)
	assert.Equal(t, 3, output.Total)
	assert.Equal(t, 2, output.ReleasedCount)
	require.Len(t, output.Components, 3)
	assert.Equal(t, "button.json", output.Components[0].File)
	assert.True(t, output.Components[0].Released)
	assert.False(t, output.Components[2].Released)
}

func TestCompatTool_NotReleasedFilter(t *testing.T) {
	dir := writeCompatFixtures(t)

	input := compatInput{Dir: dir, Platform: "ios", NotReleased: true}
	result, output, err := handleCompat(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, "ios", output.Platform)
	assert.Equal(t, 3, output.Total)
	assert.Equal(t, 0, output.ReleasedCount)
	require.Len(t, output.Components, 3)
	for _, c := range output.Components {
		assert.False(t, c.Released)
	}
}

func TestCompatTool_InvalidPlatform(t *testing.T) {
	input := compatInput{Dir: t.TempDir(), Platform: "watchos"}
	result, _, err := handleCompat(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestCompatTool_MissingDir(t *testing.T) {
	input := compatInput{Dir: t.TempDir() + "/absent"}
	result, _, err := handleCompat(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
