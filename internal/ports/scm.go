package ports

// Scm provides the source-control operations needed to publish
// generated manifests.
type Scm interface {
	IsRepository(dir string) bool
	CurrentRevision(dir string) (string, error)
	// CommitAll stages every change under dir and commits it.
	// Returns false when there was nothing to commit.
	CommitAll(dir, message string) (bool, error)
}
