package core

import (
	"fmt"
	"path/filepath"

	"mb/internal/ports"
)

// ManifestWriter persists rendered manifests under
// <outputDir>/<namespace>/<name>.yaml, truncating prior content.
type ManifestWriter struct {
	fileSystem ports.FileSystem
}

func ProvideManifestWriter(fileSystem ports.FileSystem) *ManifestWriter {
	return &ManifestWriter{fileSystem: fileSystem}
}

func (w *ManifestWriter) Write(outputDir, namespace, name string, content []byte) (string, error) {
	dir := filepath.Join(outputDir, namespace)
	if err := w.fileSystem.MkdirAll(dir, ports.ReadWriteExecute); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, name+".yaml")
	if err := w.fileSystem.WriteFile(path, content, ports.ReadAllWriteOwner); err != nil {
		return "", fmt.Errorf("failed to write manifest %s: %w", path, err)
	}

	return path, nil
}
