package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mb/internal/ports"
)

// TestFileSystem provides real file system operations sandboxed within a
// temporary directory. All paths are resolved relative to the sandbox.
// Use this in tests that need to actually read and write files; unit
// tests that only assert on calls should use MockFileSystem.
type TestFileSystem struct {
	baseDir string
}

// NewTestFileSystem creates a sandboxed file system within a temporary
// directory that is cleaned up when the test completes.
func NewTestFileSystem(t *testing.T) *TestFileSystem {
	t.Helper()
	return &TestFileSystem{baseDir: t.TempDir()}
}

// BaseDir returns the sandbox base directory path.
func (f *TestFileSystem) BaseDir() string {
	return f.baseDir
}

// resolvePath roots a path inside the sandbox. Paths already inside the
// sandbox (e.g. results of Glob) pass through; other absolute paths lose
// their leading separator so they cannot escape the sandbox.
func (f *TestFileSystem) resolvePath(path string) string {
	cleanPath := filepath.Clean(path)
	if strings.HasPrefix(cleanPath, f.baseDir+string(filepath.Separator)) || cleanPath == f.baseDir {
		return cleanPath
	}
	if filepath.IsAbs(cleanPath) {
		cleanPath = cleanPath[1:]
	}
	return filepath.Join(f.baseDir, cleanPath)
}

func (f *TestFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(f.resolvePath(path))
}

func (f *TestFileSystem) WriteFile(path string, content []byte, _ ports.AccessMode) error {
	resolved := f.resolvePath(path)
	if err := os.MkdirAll(filepath.Dir(resolved), 0700); err != nil {
		return err
	}
	return os.WriteFile(resolved, content, 0600)
}

func (f *TestFileSystem) EnsureDirExists(path string) error {
	return os.MkdirAll(filepath.Dir(f.resolvePath(path)), 0700)
}

func (f *TestFileSystem) MkdirAll(path string, _ ports.AccessMode) error {
	return os.MkdirAll(f.resolvePath(path), 0700)
}

func (f *TestFileSystem) RemoveAll(path string) error {
	return os.RemoveAll(f.resolvePath(path))
}

func (f *TestFileSystem) FileExists(path string) (bool, error) {
	_, err := os.Stat(f.resolvePath(path))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (f *TestFileSystem) Glob(pattern string) ([]string, error) {
	return filepath.Glob(f.resolvePath(pattern))
}

var _ ports.FileSystem = (*TestFileSystem)(nil)
