package cmd

import (
	"strings"

	"mb/cmd/cli/app"
	"mb/internal/core/handler"

	"github.com/spf13/cobra"
)

var (
	configDir  string
	outputDir  string
	chartCache string
	charts     string
	clean      bool
	dryRun     bool
	commit     bool
)

func init() {
	generateCmd.Flags().StringVarP(&configDir, "config-dir", "c", "conf", "Configuration directory")
	generateCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "output", "Output directory for generated manifests")
	generateCmd.Flags().StringVar(&chartCache, "chart-cache", ".charts", "Directory for pulled chart archives")
	generateCmd.Flags().StringVar(&charts, "charts", "", "Comma-separated list of app names to generate (default: all)")
	generateCmd.Flags().BoolVar(&clean, "clean", false, "Remove output directory before generating")
	generateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the commands without executing them")
	generateCmd.Flags().BoolVar(&commit, "commit", false, "Commit the output directory after a successful run")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Renders manifests for all configured apps",
	Long: `Renders manifests for every app declared in the configuration
directory and writes them under the output directory, one file per app
at <namespace>/<name>.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		generateHandler, err := app.InjectGenerateCommandHandler()
		if err != nil {
			return err
		}

		return generateHandler.Handle(handler.GenerateOptions{
			ConfigDir:     configDir,
			OutputDir:     outputDir,
			ChartCacheDir: chartCache,
			Charts:        splitChartFilter(charts),
			Clean:         clean,
			DryRun:        dryRun,
			Commit:        commit,
			Verbose:       *verbose,
			ToolVersion:   version,
		})
	},
}

func splitChartFilter(filter string) []string {
	if strings.TrimSpace(filter) == "" {
		return nil
	}

	var names []string
	for _, name := range strings.Split(filter, ",") {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names
}
