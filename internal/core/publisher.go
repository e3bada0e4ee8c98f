package core

import (
	"fmt"
	"path/filepath"
	"slices"

	"mb/internal/cli/output"
	"mb/internal/ports"
)

// Publisher commits the output directory after a successful run. Stale
// manifests from earlier runs are pruned first so the commit reflects
// exactly the current configuration; non-YAML files are left alone.
type Publisher struct {
	scm ports.Scm
	fs  ports.FileSystem
}

func ProvidePublisher(scm ports.Scm, fileSystem ports.FileSystem) *Publisher {
	return &Publisher{
		scm: scm,
		fs:  fileSystem,
	}
}

func (p *Publisher) Publish(outputDir, configDir, toolVersion string, written []string) error {
	if !p.scm.IsRepository(outputDir) {
		return fmt.Errorf("output directory %s is not a git repository", outputDir)
	}

	if err := p.pruneStale(outputDir, written); err != nil {
		return err
	}

	configRevision, err := p.scm.CurrentRevision(configDir)
	if err != nil {
		return fmt.Errorf("failed to determine config revision: %w", err)
	}

	message := fmt.Sprintf("Generate manifests\n\nConfig revision: %s\nTool version: %s", configRevision, toolVersion)
	committed, err := p.scm.CommitAll(outputDir, message)
	if err != nil {
		return err
	}
	if !committed {
		output.PrintInfo("There is nothing to commit")
		return nil
	}

	output.PrintSuccess("Committed generated manifests")
	return nil
}

// pruneStale removes every <namespace>/<name>.yaml under outputDir that
// was not written by this run.
func (p *Publisher) pruneStale(outputDir string, written []string) error {
	existing, err := p.fs.Glob(filepath.Join(outputDir, "*", "*.yaml"))
	if err != nil {
		return err
	}

	for _, path := range existing {
		if slices.Contains(written, path) {
			continue
		}
		if err := p.fs.RemoveAll(path); err != nil {
			return fmt.Errorf("failed to remove stale manifest %s: %w", path, err)
		}
	}

	return nil
}
