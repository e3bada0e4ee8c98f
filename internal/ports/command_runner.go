package ports

// CommandRunner executes shell commands and returns their output.
type CommandRunner interface {
	Run(name string, args ...string) ([]byte, error)
	RunInDir(dir, name string, args ...string) ([]byte, error)
	// RunSplit executes a command keeping stdout and stderr separate.
	// Rendered manifests arrive on stdout; diagnostics stay on stderr.
	RunSplit(name string, args ...string) (stdout []byte, stderr []byte, err error)
}
