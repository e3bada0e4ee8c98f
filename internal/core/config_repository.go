package core

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"mb/internal/core/domain"
	"mb/internal/ports"

	"github.com/BurntSushi/toml"
	"k8s.io/apimachinery/pkg/util/validation"
)

type ConfigRepository interface {
	// LoadApps reads every *.toml file under configDir and returns the
	// declared apps in file order, validated and with paths resolved
	// relative to configDir.
	LoadApps(configDir string) ([]domain.App, error)
}

type FileSystemConfigRepository struct {
	fileSystem ports.FileSystem
}

func ProvideFileSystemConfigRepository(fileSystem ports.FileSystem) *FileSystemConfigRepository {
	return &FileSystemConfigRepository{fileSystem: fileSystem}
}

var _ ConfigRepository = (*FileSystemConfigRepository)(nil)

func (r *FileSystemConfigRepository) LoadApps(configDir string) ([]domain.App, error) {
	exists, err := r.fileSystem.FileExists(configDir)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("configuration directory not found: %s", configDir)
	}

	files, err := r.fileSystem.Glob(filepath.Join(configDir, "*.toml"))
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no TOML files found in %s", configDir)
	}
	sort.Strings(files)

	var apps []domain.App
	seen := make(map[string]string)

	for _, file := range files {
		data, err := r.fileSystem.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %v", file, err)
		}

		var configFile domain.ConfigFile
		if err := toml.Unmarshal(data, &configFile); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %v", file, err)
		}

		if len(configFile.Apps) == 0 {
			return nil, fmt.Errorf("no [[app]] entries found in %s", file)
		}

		for _, app := range configFile.Apps {
			if err := r.validateApp(&app, file, configDir); err != nil {
				return nil, err
			}
			if previous, ok := seen[app.Name]; ok {
				return nil, fmt.Errorf("duplicate app name %q in %s (first defined in %s)", app.Name, file, previous)
			}
			seen[app.Name] = file
			apps = append(apps, app)
		}
	}

	return apps, nil
}

// validateApp checks required fields and resolves every local path
// relative to the configuration directory. All checks happen before any
// subprocess runs.
func (r *FileSystemConfigRepository) validateApp(app *domain.App, file, configDir string) error {
	if app.Type == "" {
		return fmt.Errorf("missing required field 'type' in %s", file)
	}
	if app.Type != domain.AppTypeHelm && app.Type != domain.AppTypeSimple {
		return fmt.Errorf("unknown app type %q in %s", app.Type, file)
	}
	if app.Name == "" || app.Namespace == "" {
		return fmt.Errorf("missing required fields 'name' or 'namespace' in %s", file)
	}
	if msgs := validation.IsDNS1123Subdomain(app.Name); len(msgs) > 0 {
		return fmt.Errorf("invalid app name %q in %s: %s", app.Name, file, strings.Join(msgs, ", "))
	}
	if msgs := validation.IsDNS1123Label(app.Namespace); len(msgs) > 0 {
		return fmt.Errorf("invalid namespace %q for app %q: %s", app.Namespace, app.Name, strings.Join(msgs, ", "))
	}

	switch app.Type {
	case domain.AppTypeHelm:
		return r.validateHelmApp(app, configDir)
	case domain.AppTypeSimple:
		return r.validateSimpleApp(app, configDir)
	}
	return nil
}

func (r *FileSystemConfigRepository) validateHelmApp(app *domain.App, configDir string) error {
	if app.Chart != "" && app.Release != "" {
		return fmt.Errorf("cannot specify both 'chart' and 'release' for app %q", app.Name)
	}
	if app.Chart == "" && app.Release == "" {
		return fmt.Errorf("must specify either 'chart' or 'release' for app %q", app.Name)
	}

	for i, valuesFile := range app.Values {
		resolved := resolvePath(configDir, valuesFile)
		exists, err := r.fileSystem.FileExists(resolved)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("values file not found for app %q: %s", app.Name, valuesFile)
		}
		app.Values[i] = resolved
	}

	if isLocalChart(app.Chart) {
		resolved := resolvePath(configDir, app.Chart)
		exists, err := r.fileSystem.FileExists(resolved)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("local chart path not found for app %q: %s", app.Name, app.Chart)
		}
		app.Chart = resolved
	}

	return nil
}

func (r *FileSystemConfigRepository) validateSimpleApp(app *domain.App, configDir string) error {
	if app.CopyFrom == "" {
		return fmt.Errorf("missing required field 'copy_from' for app %q", app.Name)
	}

	resolved := resolvePath(configDir, app.CopyFrom)
	exists, err := r.fileSystem.FileExists(resolved)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("copy_from directory not found for app %q: %s", app.Name, app.CopyFrom)
	}
	app.CopyFrom = resolved

	for containerPath, localPath := range app.Config {
		if !strings.HasPrefix(containerPath, "/") {
			return fmt.Errorf("config file path must be absolute for app %q: %s", app.Name, containerPath)
		}
		resolvedLocal := resolvePath(configDir, localPath)
		exists, err := r.fileSystem.FileExists(resolvedLocal)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("config file not found for app %q: %s", app.Name, localPath)
		}
		app.Config[containerPath] = resolvedLocal
	}

	return nil
}

// isLocalChart reports whether a chart reference points at the local
// filesystem rather than a repository or OCI registry.
func isLocalChart(chart string) bool {
	return strings.HasPrefix(chart, "./") || strings.HasPrefix(chart, "../") || filepath.IsAbs(chart)
}

func resolvePath(baseDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
