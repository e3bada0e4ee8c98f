package filesystem

import (
	"fmt"
	"os"
	"path/filepath"

	"mb/internal/ports"
)

type OsFileSystem struct{}

func ProvideOsFileSystem() *OsFileSystem {
	return &OsFileSystem{}
}

func (f *OsFileSystem) ReadFile(path string) ([]byte, error) {
	expanded, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(expanded)
}

func (f *OsFileSystem) WriteFile(path string, content []byte, accessMode ports.AccessMode) error {
	expanded, err := expandHome(path)
	if err != nil {
		return err
	}

	if err := f.EnsureDirExists(expanded); err != nil {
		return fmt.Errorf("failed to ensure directory exists: %w", err)
	}

	if err := os.WriteFile(expanded, content, getOsFileModeForAccessMode(accessMode)); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

func (f *OsFileSystem) EnsureDirExists(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), getOsFileModeForAccessMode(ports.ReadWriteExecute)); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	return nil
}

func (f *OsFileSystem) MkdirAll(path string, accessMode ports.AccessMode) error {
	expanded, err := expandHome(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(expanded, getOsFileModeForAccessMode(accessMode)); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

func (f *OsFileSystem) RemoveAll(path string) error {
	expanded, err := expandHome(path)
	if err != nil {
		return err
	}
	return os.RemoveAll(expanded)
}

func (f *OsFileSystem) FileExists(path string) (bool, error) {
	expanded, err := expandHome(path)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(expanded)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check if file exists: %w", err)
}

func (f *OsFileSystem) Glob(pattern string) ([]string, error) {
	expanded, err := expandHome(pattern)
	if err != nil {
		return nil, err
	}
	return filepath.Glob(expanded)
}

func expandHome(path string) (string, error) {
	if len(path) > 0 && path[:1] == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}

func getOsFileModeForAccessMode(accessMode ports.AccessMode) os.FileMode {
	switch accessMode {
	case ports.ReadWrite:
		return 0600
	case ports.ReadWriteExecute:
		return 0700
	case ports.ReadAllWriteOwner:
		return 0644
	default:
		return 0600
	}
}

var _ ports.FileSystem = (*OsFileSystem)(nil)
