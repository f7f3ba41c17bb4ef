package blobstore

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	}
	return root
}

func TestLocalStore(t *testing.T) {
	ctx := context.Background()
	root := writeTree(t, map[string]string{
		"weapons.json":      `{"rules":[]}`,
		"armor/heavy.yaml":  "rules: []\n",
		"armor/light.jsonl": "",
	})
	store := NewLocalStore(root)

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"armor/heavy.yaml", "armor/light.jsonl", "weapons.json"}, names)

	names, err = store.List(ctx, "armor/")
	require.NoError(t, err)
	assert.Equal(t, []string{"armor/heavy.yaml", "armor/light.jsonl"}, names)

	b, err := store.Open(ctx, "weapons.json")
	require.NoError(t, err)
	assert.Equal(t, int64(12), b.Size())

	buf := make([]byte, 7)
	n, err := b.ReadAt(ctx, buf, 1)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.Equal(t, `"rules"`, string(buf))

	rc, err := b.ReadRange(ctx, 2, 100)
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, `rules":[]}`, string(data))
	require.NoError(t, b.Close())

	data, err = ReadAll(ctx, store, "armor/heavy.yaml")
	require.NoError(t, err)
	assert.Equal(t, "rules: []\n", string(data))

	data, err = ReadAll(ctx, store, "armor/light.jsonl")
	require.NoError(t, err)
	assert.Empty(t, data)

	_, err = store.Open(ctx, "missing.json")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStoreCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := NewLocalStore(writeTree(t, map[string]string{"a.json": "{}"}))
	_, err := store.Open(ctx, "a.json")
	assert.ErrorIs(t, err, context.Canceled)
	_, err = store.List(ctx, "")
	assert.ErrorIs(t, err, context.Canceled)
}
