package ports

// TemplateOptions describes a single helm template invocation.
type TemplateOptions struct {
	Release     string
	Chart       string
	Namespace   string
	Version     string
	ValuesFiles []string
}

// PullOptions describes a helm pull invocation for a remote chart.
type PullOptions struct {
	Chart   string
	Repo    string
	Dest    string
	Version string
}

// HelmClient defines the interface for interacting with Helm.
type HelmClient interface {
	// Template renders a helm chart and returns the manifests as YAML.
	Template(opts TemplateOptions) ([]byte, error)
	// TemplateCommand returns the command line Template would execute.
	TemplateCommand(opts TemplateOptions) string
	// Pull downloads and untars a remote chart, returning the chart directory.
	// The pull is skipped when the chart directory already exists.
	Pull(opts PullOptions) (string, error)
	// PullCommand returns the command line Pull would execute.
	PullCommand(opts PullOptions) string
	// Available reports whether the helm binary is usable on PATH.
	Available() bool
}
