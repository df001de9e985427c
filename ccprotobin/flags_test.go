package ccprotobin

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigWorkspaceOverrides(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "WORKSPACE.ccproto")
	require.NoError(t, os.WriteFile(f, []byte(`{"ProductName": "blaze"}`), 0600))

	c := &config{Workspace: f}
	ws, err := c.workspace()
	require.NoError(t, err)
	assert.Equal(t, "blaze", ws.ProductName)

	c = &config{Workspace: f, Product: "bazel", Workers: 7}
	ws, err = c.workspace()
	require.NoError(t, err)
	assert.Equal(t, "bazel", ws.ProductName)
	assert.Equal(t, 7, ws.Workers)
}

func TestShortDigest(t *testing.T) {
	d := "sha256:0123456789abcdef0123456789abcdef"
	s := shortDigest(d)
	assert.NotContains(t, s, "sha256:")
	assert.NotEmpty(t, s)
}
