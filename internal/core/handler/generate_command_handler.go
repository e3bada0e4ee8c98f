package handler

import (
	"fmt"

	"mb/internal/cli/output"
	"mb/internal/core"
	"mb/internal/ports"
)

// GenerateOptions carries the CLI flags of the generate command.
type GenerateOptions struct {
	ConfigDir     string
	OutputDir     string
	ChartCacheDir string
	Charts        []string
	Clean         bool
	DryRun        bool
	Commit        bool
	Verbose       bool
	ToolVersion   string
}

type GenerateCommandHandler struct {
	configRepository core.ConfigRepository
	fileSystem       ports.FileSystem
	generator        *core.Generator
	publisher        *core.Publisher
}

func ProvideGenerateCommandHandler(
	configRepository core.ConfigRepository,
	fileSystem ports.FileSystem,
	generator *core.Generator,
	publisher *core.Publisher,
) GenerateCommandHandler {
	return GenerateCommandHandler{
		configRepository: configRepository,
		fileSystem:       fileSystem,
		generator:        generator,
		publisher:        publisher,
	}
}

func (h *GenerateCommandHandler) Handle(opts GenerateOptions) error {
	if opts.Verbose {
		output.PrintInfo("Configuration directory: " + opts.ConfigDir)
		output.PrintInfo("Output directory: " + opts.OutputDir)
	}

	apps, err := h.configRepository.LoadApps(opts.ConfigDir)
	if err != nil {
		return err
	}

	if opts.Verbose {
		output.PrintInfo(fmt.Sprintf("Loaded %d app %s", len(apps), output.Plural(len(apps), "configuration", "configurations")))
	}

	helmfile, err := core.LoadHelmfile(h.fileSystem, opts.ConfigDir)
	if err != nil {
		return err
	}

	apps, err = core.ResolveApps(apps, helmfile)
	if err != nil {
		return err
	}

	written, err := h.generator.Generate(apps, core.GenerateOptions{
		OutputDir:     opts.OutputDir,
		ChartCacheDir: opts.ChartCacheDir,
		Filter:        opts.Charts,
		Clean:         opts.Clean,
		DryRun:        opts.DryRun,
		Verbose:       opts.Verbose,
	})
	if err != nil {
		return err
	}

	if opts.Commit && !opts.DryRun {
		return h.publisher.Publish(opts.OutputDir, opts.ConfigDir, opts.ToolVersion, written)
	}

	return nil
}
