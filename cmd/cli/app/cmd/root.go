package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var verbose *bool

var rootCmd = &cobra.Command{
	Use:   "mb",
	Short: "Manifest builder for Kubernetes GitOps repositories",
	Long: `MB renders Kubernetes manifests from declarative app definitions by
invoking helm template and writing the output into a predictable
<output>/<namespace>/<name>.yaml layout.

Apps are declared in TOML files in the configuration directory; charts
referenced by release name are resolved through helmfile.yaml.

Common workflows:
  mb generate                 Render manifests for all configured apps
  mb generate --charts myapp  Render only the app named myapp
  mb generate --dry-run       Print the helm commands without running them
  mb generate --clean         Erase the output directory before rendering`,
}

func init() {
	verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Show detailed output")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
