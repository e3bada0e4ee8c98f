package core

import (
	"fmt"
	"path/filepath"
	"strings"

	"mb/internal/core/domain"
	"mb/internal/ports"

	"gopkg.in/yaml.v3"
)

// HelmfileName is the file looked up in the configuration directory to
// resolve release-based apps to chart repositories.
const HelmfileName = "helmfile.yaml"

// LoadHelmfile parses the helmfile.yaml in configDir. Returns nil when
// the file does not exist; release-based apps then fail at resolution.
func LoadHelmfile(fileSystem ports.FileSystem, configDir string) (*domain.Helmfile, error) {
	path := filepath.Join(configDir, HelmfileName)

	exists, err := fileSystem.FileExists(path)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}

	data, err := fileSystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %v", path, err)
	}

	var helmfile domain.Helmfile
	if err := yaml.Unmarshal(data, &helmfile); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %v", path, err)
	}

	for _, repo := range helmfile.Repositories {
		if repo.Name == "" || repo.URL == "" {
			return nil, fmt.Errorf("each repository entry requires 'name' and 'url': %s", path)
		}
	}
	for _, release := range helmfile.Releases {
		if release.Name == "" || release.Chart == "" {
			return nil, fmt.Errorf("each release entry requires 'name' and 'chart': %s", path)
		}
	}

	return &helmfile, nil
}

// ResolveApps fills in chart name, repository URL and version for every
// release-based app from the helmfile. Apps with a direct chart
// reference pass through untouched. A version set in the app config
// wins over the helmfile's.
func ResolveApps(apps []domain.App, helmfile *domain.Helmfile) ([]domain.App, error) {
	resolved := make([]domain.App, 0, len(apps))

	for _, app := range apps {
		if app.Type != domain.AppTypeHelm || app.Release == "" {
			resolved = append(resolved, app)
			continue
		}

		if helmfile == nil {
			return nil, fmt.Errorf("app %q references release %q but no helmfile.yaml was found", app.Name, app.Release)
		}

		release, ok := helmfile.Release(app.Release)
		if !ok {
			return nil, fmt.Errorf("release %q for app %q not found in helmfile.yaml", app.Release, app.Name)
		}

		repoName, chartName, found := strings.Cut(release.Chart, "/")
		if !found {
			return nil, fmt.Errorf("release %q has chart %q, expected 'repository/chart'", release.Name, release.Chart)
		}

		repo, ok := helmfile.Repository(repoName)
		if !ok {
			return nil, fmt.Errorf("repository %q for release %q not found in helmfile.yaml", repoName, release.Name)
		}

		app.Chart = chartName
		app.Repo = repo.URL
		if app.Version == "" {
			app.Version = release.Version
		}
		resolved = append(resolved, app)
	}

	return resolved, nil
}
