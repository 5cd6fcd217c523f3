package datastore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aleister1102/polisnap/internal/common/filemanager"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSetIndex(t *testing.T) {
	idx := NewFileSetIndex([]string{
		"20231231.json",
		"20231231.meta",
		"20240101.html",
		"20240101.meta",
		"20240215.json",
		"notes.txt",
		"2024.json",
		"abcdefgh.json",
		"README",
	})

	assert.Equal(t, 3, idx.Len())
	assert.True(t, idx.HasStamp("20240101"))
	assert.False(t, idx.HasStamp("20240102"))
	assert.True(t, idx.Has("20231231", ExtContent))
	assert.False(t, idx.Has("20240101", ExtContent))

	latest, ok := idx.LatestWithExt(ExtContent)
	require.True(t, ok)
	assert.Equal(t, "20240215", latest)

	latest, ok = idx.LatestWithExt(ExtHTML)
	require.True(t, ok)
	assert.Equal(t, "20240101", latest)

	_, ok = idx.LatestWithExt(ExtScreenshot)
	assert.False(t, ok)

	assert.Equal(t, []string{"20231231", "20240101", "20240215"}, idx.Stamps())
}

func TestFileSetIndex_Empty(t *testing.T) {
	idx := NewFileSetIndex(nil)
	assert.Equal(t, 0, idx.Len())
	assert.False(t, idx.HasStamp("20240101"))
	_, ok := idx.LatestWithExt(ExtContent)
	assert.False(t, ok)
}

func TestBuildFileSetIndex(t *testing.T) {
	fm := filemanager.NewFileManager(zerolog.Nop())
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "20240301.json"), []byte("{}"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "20240302.json"), 0755))

	idx, err := BuildFileSetIndex(fm, dir)
	require.NoError(t, err)
	assert.True(t, idx.HasStamp("20240301"))
	assert.False(t, idx.HasStamp("20240302"))

	missing, err := BuildFileSetIndex(fm, filepath.Join(dir, "absent"))
	require.NoError(t, err)
	assert.Equal(t, 0, missing.Len())
}
