package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"mb/internal/ports"

	"github.com/stretchr/testify/assert"
)

func TestWriteFileCreatesParentDirectories(t *testing.T) {
	baseDir := t.TempDir()
	path := filepath.Join(baseDir, "output", "default", "myapp.yaml")
	sut := ProvideOsFileSystem()

	err := sut.WriteFile(path, []byte("kind: Deployment\n"), ports.ReadAllWriteOwner)

	assert.NoError(t, err)
	content, err := sut.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "kind: Deployment\n", string(content))
}

func TestWriteFileTruncatesExistingContent(t *testing.T) {
	baseDir := t.TempDir()
	path := filepath.Join(baseDir, "myapp.yaml")
	sut := ProvideOsFileSystem()

	assert.NoError(t, sut.WriteFile(path, []byte("first version with more bytes\n"), ports.ReadWrite))
	assert.NoError(t, sut.WriteFile(path, []byte("second\n"), ports.ReadWrite))

	content, err := sut.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "second\n", string(content))
}

func TestFileExists(t *testing.T) {
	baseDir := t.TempDir()
	path := filepath.Join(baseDir, "present.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("{}\n"), 0600))
	sut := ProvideOsFileSystem()

	exists, err := sut.FileExists(path)
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = sut.FileExists(filepath.Join(baseDir, "absent.yaml"))
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestGlobFindsMatchingFiles(t *testing.T) {
	baseDir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(baseDir, "a.toml"), []byte(""), 0600))
	assert.NoError(t, os.WriteFile(filepath.Join(baseDir, "b.toml"), []byte(""), 0600))
	assert.NoError(t, os.WriteFile(filepath.Join(baseDir, "ignored.yaml"), []byte(""), 0600))
	sut := ProvideOsFileSystem()

	matches, err := sut.Glob(filepath.Join(baseDir, "*.toml"))

	assert.NoError(t, err)
	assert.Len(t, matches, 2)
}

func TestRemoveAllDeletesDirectoryTree(t *testing.T) {
	baseDir := t.TempDir()
	nested := filepath.Join(baseDir, "output", "default")
	assert.NoError(t, os.MkdirAll(nested, 0700))
	assert.NoError(t, os.WriteFile(filepath.Join(nested, "myapp.yaml"), []byte("{}\n"), 0600))
	sut := ProvideOsFileSystem()

	err := sut.RemoveAll(filepath.Join(baseDir, "output"))

	assert.NoError(t, err)
	exists, err := sut.FileExists(filepath.Join(baseDir, "output"))
	assert.NoError(t, err)
	assert.False(t, exists)
}
