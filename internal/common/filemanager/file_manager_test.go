package filemanager

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/aleister1102/polisnap/internal/common"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileManager_WriteAndRead(t *testing.T) {
	fm := NewFileManager(zerolog.Nop())
	path := filepath.Join(t.TempDir(), "nested", "dir", "20240101.json")

	require.NoError(t, fm.WriteFile(path, []byte(`{"text":"hello"}`), DefaultFileWriteOptions()))
	assert.True(t, fm.FileExists(path))

	content, err := fm.ReadFile(path, DefaultFileReadOptions())
	require.NoError(t, err)
	assert.Equal(t, `{"text":"hello"}`, string(content))
}

func TestFileManager_WriteWithoutCreateDirs(t *testing.T) {
	fm := NewFileManager(zerolog.Nop())
	path := filepath.Join(t.TempDir(), "missing", "file.txt")

	err := fm.WriteFile(path, []byte("x"), FileWriteOptions{})
	assert.Error(t, err)
}

func TestFileManager_ReadFileErrors(t *testing.T) {
	fm := NewFileManager(zerolog.Nop())
	dir := t.TempDir()

	_, err := fm.ReadFile(filepath.Join(dir, "absent"), DefaultFileReadOptions())
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = fm.ReadFile(dir, DefaultFileReadOptions())
	var validationErr *common.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "path", validationErr.Field)

	big := filepath.Join(dir, "big.txt")
	require.NoError(t, os.WriteFile(big, []byte("0123456789"), 0644))
	_, err = fm.ReadFile(big, FileReadOptions{MaxSize: 5})
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "file_size", validationErr.Field)
}

func TestFileManager_ReadLines(t *testing.T) {
	fm := NewFileManager(zerolog.Nop())
	path := filepath.Join(t.TempDir(), "urls.txt")
	require.NoError(t, os.WriteFile(path, []byte("  a  \n\n b\r\n"), 0644))

	lines, err := fm.ReadLines(path, DefaultFileReadOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, lines)
}

func TestFileManager_EnsureDirectoryConcurrent(t *testing.T) {
	fm := NewFileManager(zerolog.Nop())
	target := filepath.Join(t.TempDir(), "out", "example_com_0123456789")

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- fm.EnsureDirectory(target, 0755)
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	info, err := fm.GetFileInfo(target)
	require.NoError(t, err)
	assert.True(t, info.IsDir)
}

func TestFileManager_EnsureDirectoryOnFile(t *testing.T) {
	fm := NewFileManager(zerolog.Nop())
	path := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	assert.Error(t, fm.EnsureDirectory(path, 0755))
}

func TestFileManager_ListDir(t *testing.T) {
	fm := NewFileManager(zerolog.Nop())
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "20240101.json"), nil, 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))

	names, err := fm.ListDir(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"20240101.json"}, names)

	names, err = fm.ListDir(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.Empty(t, names)
}
