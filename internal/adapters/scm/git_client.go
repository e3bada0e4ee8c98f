package scm

import (
	"fmt"
	"path/filepath"
	"strings"

	"mb/internal/ports"
)

var _ ports.Scm = (*GitClient)(nil)

type GitClient struct {
	commandRunner ports.CommandRunner
	fileSystem    ports.FileSystem
}

func ProvideGitClient(commandRunner ports.CommandRunner, fileSystem ports.FileSystem) *GitClient {
	return &GitClient{
		commandRunner: commandRunner,
		fileSystem:    fileSystem,
	}
}

func (g *GitClient) IsRepository(dir string) bool {
	exists, err := g.fileSystem.FileExists(filepath.Join(dir, ".git", "HEAD"))
	return err == nil && exists
}

func (g *GitClient) CurrentRevision(dir string) (string, error) {
	output, err := g.commandRunner.RunInDir(dir, "git", "rev-parse", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to get revision for %s: %v\n%s", dir, err, string(output))
	}
	return strings.TrimSpace(string(output)), nil
}

func (g *GitClient) CommitAll(dir, message string) (bool, error) {
	output, err := g.commandRunner.RunInDir(dir, "git", "add", "-A")
	if err != nil {
		return false, fmt.Errorf("failed to stage changes in %s: %v\n%s", dir, err, string(output))
	}

	output, err = g.commandRunner.RunInDir(dir, "git", "status", "--porcelain")
	if err != nil {
		return false, fmt.Errorf("failed to check status of %s: %v\n%s", dir, err, string(output))
	}
	if strings.TrimSpace(string(output)) == "" {
		return false, nil
	}

	output, err = g.commandRunner.RunInDir(dir, "git", "commit", "-m", message)
	if err != nil {
		return false, fmt.Errorf("failed to commit in %s: %v\n%s", dir, err, string(output))
	}

	return true, nil
}
