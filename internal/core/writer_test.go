package core

import (
	"path/filepath"
	"testing"

	"mb/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestWritePlacesManifestUnderNamespaceDirectory(t *testing.T) {
	fs := testutil.NewTestFileSystem(t)
	sut := ProvideManifestWriter(fs)

	path, err := sut.Write("output", "default", "myapp", []byte("kind: Service\n"))

	assert.NoError(t, err)
	assert.Equal(t, filepath.Join("output", "default", "myapp.yaml"), path)

	content, err := fs.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "kind: Service\n", string(content))
}

func TestWriteOverwritesPreviousManifest(t *testing.T) {
	fs := testutil.NewTestFileSystem(t)
	sut := ProvideManifestWriter(fs)

	_, err := sut.Write("output", "default", "myapp", []byte("kind: Service\nmetadata:\n  name: old\n"))
	assert.NoError(t, err)

	path, err := sut.Write("output", "default", "myapp", []byte("kind: Service\n"))
	assert.NoError(t, err)

	content, err := fs.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "kind: Service\n", string(content))
}

func TestWriteKeepsSiblingManifestsInSameNamespace(t *testing.T) {
	fs := testutil.NewTestFileSystem(t)
	sut := ProvideManifestWriter(fs)

	pathA, err := sut.Write("output", "default", "app-a", []byte("a: 1\n"))
	assert.NoError(t, err)
	pathB, err := sut.Write("output", "default", "app-b", []byte("b: 2\n"))
	assert.NoError(t, err)

	contentA, err := fs.ReadFile(pathA)
	assert.NoError(t, err)
	assert.Equal(t, "a: 1\n", string(contentA))

	contentB, err := fs.ReadFile(pathB)
	assert.NoError(t, err)
	assert.Equal(t, "b: 2\n", string(contentB))
}

func TestWriteSeparatesNamespaces(t *testing.T) {
	fs := testutil.NewTestFileSystem(t)
	sut := ProvideManifestWriter(fs)

	pathA, err := sut.Write("output", "ns-a", "myapp", []byte("a: 1\n"))
	assert.NoError(t, err)
	pathB, err := sut.Write("output", "ns-b", "myapp", []byte("b: 2\n"))
	assert.NoError(t, err)

	assert.NotEqual(t, pathA, pathB)
	assert.Equal(t, filepath.Join("output", "ns-a", "myapp.yaml"), pathA)
	assert.Equal(t, filepath.Join("output", "ns-b", "myapp.yaml"), pathB)
}
