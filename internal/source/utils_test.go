package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelativePathOutsideBaseFallsBackToAbsolute(t *testing.T) {
	tmp := t.TempDir()

	baseDir := filepath.Join(tmp, "base")
	otherDir := filepath.Join(tmp, "other")
	require.NoError(t, os.MkdirAll(baseDir, 0o755))
	require.NoError(t, os.MkdirAll(otherDir, 0o755))

	target := filepath.Join(otherDir, "file.jsonpath")

	got, err := RelativePath(target, baseDir)
	require.NoError(t, err)
	assert.Equal(t, normalizePath(target), got)
}

func TestRelativePathInsideBaseStaysRelative(t *testing.T) {
	tmp := t.TempDir()

	baseDir := filepath.Join(tmp, "base")
	target := filepath.Join(baseDir, "nested", "file.jsonpath")
	require.NoError(t, os.MkdirAll(filepath.Dir(target), 0o755))

	got, err := RelativePath(target, baseDir)
	require.NoError(t, err)
	assert.Equal(t, "nested/file.jsonpath", got)
}

func TestNormalizeCRLFKeepsLoneCR(t *testing.T) {
	out, changed := normalizeCRLF([]byte("a\rb\r\nc"))
	assert.True(t, changed)
	assert.Equal(t, "a\rb\nc", string(out))

	out, changed = normalizeCRLF([]byte("plain"))
	assert.False(t, changed)
	assert.Equal(t, "plain", string(out))
}
