package domain

// App types supported in configuration files.
const (
	AppTypeHelm   = "helm"
	AppTypeSimple = "simple"
)

// App represents one configured unit of manifest generation. Apps are
// built once at config-load time and read-only afterwards.
type App struct {
	Type      string   `toml:"type"`
	Name      string   `toml:"name"`
	Namespace string   `toml:"namespace"`
	Chart     string   `toml:"chart"`
	Release   string   `toml:"release"`
	Version   string   `toml:"version"`
	Values    []string `toml:"values"`

	// Simple apps copy pre-written manifests instead of templating a chart.
	CopyFrom string `toml:"copy_from"`
	// Config maps container paths to local files bundled into ConfigMaps.
	Config map[string]string `toml:"config"`

	// Repo is the chart repository URL resolved from helmfile.yaml.
	Repo string `toml:"-"`
}

// ConfigFile is the top-level structure of one TOML configuration file.
type ConfigFile struct {
	Apps []App `toml:"app"`
}

// Helmfile is the parsed content of a helmfile.yaml.
type Helmfile struct {
	Repositories []HelmfileRepository `yaml:"repositories"`
	Releases     []HelmfileRelease    `yaml:"releases"`
}

// HelmfileRepository is a named chart repository.
type HelmfileRepository struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// HelmfileRelease is one release entry, its chart in "repo/name" form.
type HelmfileRelease struct {
	Name      string `yaml:"name"`
	Chart     string `yaml:"chart"`
	Version   string `yaml:"version"`
	Namespace string `yaml:"namespace"`
}

// Repository returns the repository entry with the given name.
func (h *Helmfile) Repository(name string) (HelmfileRepository, bool) {
	for _, repo := range h.Repositories {
		if repo.Name == name {
			return repo, true
		}
	}
	return HelmfileRepository{}, false
}

// Release returns the release entry with the given name.
func (h *Helmfile) Release(name string) (HelmfileRelease, bool) {
	for _, release := range h.Releases {
		if release.Name == name {
			return release, true
		}
	}
	return HelmfileRelease{}, false
}
