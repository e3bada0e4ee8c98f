package command_runner

import (
	"bytes"
	"os/exec"

	"mb/internal/ports"
)

// OsCommandRunner executes shell commands using os/exec.
type OsCommandRunner struct{}

func ProvideOsCommandRunner() *OsCommandRunner {
	return &OsCommandRunner{}
}

func (r *OsCommandRunner) Run(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	return cmd.CombinedOutput()
}

func (r *OsCommandRunner) RunInDir(dir, name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

func (r *OsCommandRunner) RunSplit(name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.Command(name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

var _ ports.CommandRunner = (*OsCommandRunner)(nil)
