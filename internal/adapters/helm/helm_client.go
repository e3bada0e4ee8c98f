package helm

import (
	"fmt"
	"path/filepath"
	"strings"

	"mb/internal/ports"
)

var _ ports.HelmClient = (*HelmClient)(nil)

// HelmClient implements ports.HelmClient using the helm CLI.
type HelmClient struct {
	commandRunner ports.CommandRunner
	fileSystem    ports.FileSystem
}

// ProvideHelmClient creates a HelmClient for Wire dependency injection.
func ProvideHelmClient(runner ports.CommandRunner, fileSystem ports.FileSystem) *HelmClient {
	return &HelmClient{
		commandRunner: runner,
		fileSystem:    fileSystem,
	}
}

// templateArgs builds the argument vector for one helm template invocation.
// Values files keep their configured order, duplicates included.
func templateArgs(opts ports.TemplateOptions) []string {
	args := []string{"template", opts.Release, opts.Chart, "--namespace", opts.Namespace}

	if opts.Version != "" {
		args = append(args, "--version", opts.Version)
	}

	for _, valuesFile := range opts.ValuesFiles {
		args = append(args, "--values", valuesFile)
	}

	return args
}

// pullArgs builds the argument vector for one helm pull invocation.
// HTTP(S) repositories are addressed with --repo; OCI references are
// passed directly because helm resolves the chart from the URL itself.
func pullArgs(opts ports.PullOptions) []string {
	var args []string
	if strings.HasPrefix(opts.Repo, "oci://") {
		args = []string{"pull", opts.Repo, "--untar", "--untardir", opts.Dest}
	} else {
		args = []string{"pull", opts.Chart, "--repo", opts.Repo, "--untar", "--untardir", opts.Dest}
	}

	if opts.Version != "" {
		args = append(args, "--version", opts.Version)
	}

	return args
}

// chartDir returns the directory the chart untars into under dest.
// For OCI references that is the last component of the URL.
func chartDir(opts ports.PullOptions) string {
	name := opts.Chart
	if strings.HasPrefix(opts.Repo, "oci://") {
		parts := strings.Split(strings.TrimSuffix(opts.Repo, "/"), "/")
		name = parts[len(parts)-1]
	}
	return filepath.Join(opts.Dest, name)
}

// Template renders a helm chart and returns the manifests as YAML.
func (h *HelmClient) Template(opts ports.TemplateOptions) ([]byte, error) {
	stdout, stderr, err := h.commandRunner.RunSplit("helm", templateArgs(opts)...)
	if err != nil {
		return nil, fmt.Errorf("helm template failed for %s: %w, output: %s", opts.Release, err, string(stderr))
	}

	return stdout, nil
}

// TemplateCommand returns the command line Template would execute.
func (h *HelmClient) TemplateCommand(opts ports.TemplateOptions) string {
	return "helm " + strings.Join(templateArgs(opts), " ")
}

// Pull downloads and untars a remote chart, returning the chart directory.
func (h *HelmClient) Pull(opts ports.PullOptions) (string, error) {
	dir := chartDir(opts)

	exists, err := h.fileSystem.FileExists(dir)
	if err != nil {
		return "", err
	}
	if exists {
		return dir, nil
	}

	if err := h.fileSystem.MkdirAll(opts.Dest, ports.ReadWriteExecute); err != nil {
		return "", fmt.Errorf("failed to create chart cache directory: %w", err)
	}

	output, err := h.commandRunner.Run("helm", pullArgs(opts)...)
	if err != nil {
		return "", fmt.Errorf("helm pull failed for %s: %w, output: %s", opts.Chart, err, string(output))
	}

	return dir, nil
}

// PullCommand returns the command line Pull would execute.
func (h *HelmClient) PullCommand(opts ports.PullOptions) string {
	return "helm " + strings.Join(pullArgs(opts), " ")
}

// Available reports whether the helm binary is usable on PATH.
func (h *HelmClient) Available() bool {
	_, err := h.commandRunner.Run("helm", "version", "--short")
	return err == nil
}
