package core

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"mb/internal/cli/output"
	"mb/internal/core/domain"
	"mb/internal/ports"
)

// GenerateOptions controls one generation run.
type GenerateOptions struct {
	OutputDir     string
	ChartCacheDir string
	// Filter restricts the run to the named apps. Empty means all.
	Filter  []string
	Clean   bool
	DryRun  bool
	Verbose bool
}

// Generator drives the render-and-write pipeline over all configured
// apps, strictly in configuration order, one app at a time.
type Generator struct {
	helm   ports.HelmClient
	fs     ports.FileSystem
	writer *ManifestWriter
	simple *SimpleGenerator
}

func ProvideGenerator(
	helm ports.HelmClient,
	fileSystem ports.FileSystem,
	writer *ManifestWriter,
	simple *SimpleGenerator,
) *Generator {
	return &Generator{
		helm:   helm,
		fs:     fileSystem,
		writer: writer,
		simple: simple,
	}
}

// Generate renders every app and returns the paths written. One app's
// failure is reported and recorded but does not stop the remaining
// apps; the returned error is non-nil if any app failed.
func (g *Generator) Generate(apps []domain.App, opts GenerateOptions) ([]string, error) {
	if len(opts.Filter) > 0 {
		var filtered []domain.App
		for _, app := range apps {
			if slices.Contains(opts.Filter, app.Name) {
				filtered = append(filtered, app)
			}
		}
		if len(filtered) == 0 {
			return nil, fmt.Errorf("no apps found matching: %s", strings.Join(opts.Filter, ", "))
		}
		apps = filtered
	}

	if len(apps) == 0 {
		output.PrintInfo("No apps configured")
		return nil, nil
	}

	if opts.Clean && !opts.DryRun {
		if err := g.fs.RemoveAll(opts.OutputDir); err != nil {
			return nil, fmt.Errorf("failed to clean output directory %s: %w", opts.OutputDir, err)
		}
	}

	if !opts.DryRun && hasHelmApp(apps) && !g.helm.Available() {
		return nil, fmt.Errorf("helm is not installed or not available in PATH, see https://helm.sh/docs/intro/install/")
	}

	var written []string
	failed := 0

	for i, app := range apps {
		if opts.Verbose {
			output.PrintStep(fmt.Sprintf("[%d/%d] Generating %s (%s)", i+1, len(apps), app.Name, app.Namespace))
			g.printAppDetails(app)
		}

		path, err := g.generateApp(app, opts)
		if err != nil {
			failed++
			output.PrintError(fmt.Sprintf("%s (%s): %v", app.Name, app.Namespace, err))
			continue
		}
		if path != "" {
			written = append(written, path)
			output.PrintSuccess(fmt.Sprintf("%s (%s) %s %s", app.Name, app.Namespace, output.SymbolArrow, path))
		}
	}

	if failed > 0 {
		return written, fmt.Errorf("%d of %d %s failed", failed, len(apps), output.Plural(len(apps), "app", "apps"))
	}

	if !opts.DryRun {
		fmt.Printf("\nDone! Generated %d %s\n", len(written), output.Plural(len(written), "manifest", "manifests"))
	}
	return written, nil
}

// generateApp renders one app and writes its manifest. In dry-run mode
// the would-be commands are printed and nothing touches the filesystem.
func (g *Generator) generateApp(app domain.App, opts GenerateOptions) (string, error) {
	switch app.Type {
	case domain.AppTypeSimple:
		if opts.DryRun {
			fmt.Printf("dry-run: would write %s\n", filepath.Join(opts.OutputDir, app.Namespace, app.Name+".yaml"))
			return "", nil
		}
		content, err := g.simple.Render(app)
		if err != nil {
			return "", err
		}
		return g.writer.Write(opts.OutputDir, app.Namespace, app.Name, content)
	default:
		return g.generateHelmApp(app, opts)
	}
}

func (g *Generator) generateHelmApp(app domain.App, opts GenerateOptions) (string, error) {
	chartRef := app.Chart
	version := app.Version

	if app.Repo != "" {
		pullOpts := ports.PullOptions{
			Chart:   app.Chart,
			Repo:    app.Repo,
			Dest:    opts.ChartCacheDir,
			Version: app.Version,
		}
		if opts.DryRun {
			fmt.Println(g.helm.PullCommand(pullOpts))
			chartRef = filepath.Join(opts.ChartCacheDir, app.Chart)
		} else {
			dir, err := g.helm.Pull(pullOpts)
			if err != nil {
				return "", err
			}
			chartRef = dir
		}
		// The version is pinned by the pull; helm ignores --version
		// for local chart directories.
		version = ""
	}

	templateOpts := ports.TemplateOptions{
		Release:     app.Name,
		Chart:       chartRef,
		Namespace:   app.Namespace,
		Version:     version,
		ValuesFiles: app.Values,
	}

	if opts.DryRun {
		fmt.Println(g.helm.TemplateCommand(templateOpts))
		return "", nil
	}

	content, err := g.helm.Template(templateOpts)
	if err != nil {
		return "", err
	}

	return g.writer.Write(opts.OutputDir, app.Namespace, app.Name, content)
}

func (g *Generator) printAppDetails(app domain.App) {
	if app.Chart != "" {
		output.PrintStep("  chart: " + app.Chart)
	}
	if app.Repo != "" {
		output.PrintStep("  repo: " + app.Repo)
	}
	if app.Version != "" {
		output.PrintStep("  version: " + app.Version)
	}
	if len(app.Values) > 0 {
		output.PrintStep("  values: " + strings.Join(app.Values, ", "))
	}
	if app.CopyFrom != "" {
		output.PrintStep("  copy from: " + app.CopyFrom)
	}
}

func hasHelmApp(apps []domain.App) bool {
	for _, app := range apps {
		if app.Type == domain.AppTypeHelm {
			return true
		}
	}
	return false
}
