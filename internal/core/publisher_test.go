package core

import (
	"path/filepath"
	"testing"

	"mb/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPublishFailsOutsideGitRepository(t *testing.T) {
	scm := new(testutil.MockScm)
	scm.On("IsRepository", "output").Return(false)
	sut := ProvidePublisher(scm, new(testutil.MockFileSystem))

	err := sut.Publish("output", "conf", "1.0.0", nil)

	assert.ErrorContains(t, err, "not a git repository")
	scm.AssertNotCalled(t, "CommitAll", mock.Anything, mock.Anything)
}

func TestPublishPrunesStaleManifests(t *testing.T) {
	written := []string{filepath.Join("output", "default", "myapp.yaml")}
	stale := filepath.Join("output", "old-ns", "gone.yaml")

	fileSystem := new(testutil.MockFileSystem)
	fileSystem.On("Glob", filepath.Join("output", "*", "*.yaml")).
		Return(append([]string{stale}, written...), nil)
	fileSystem.On("RemoveAll", stale).Return(nil)

	scm := new(testutil.MockScm)
	scm.On("IsRepository", "output").Return(true)
	scm.On("CurrentRevision", "conf").Return("abc123", nil)
	scm.On("CommitAll", "output", mock.Anything).Return(true, nil)

	sut := ProvidePublisher(scm, fileSystem)

	err := sut.Publish("output", "conf", "1.0.0", written)

	assert.NoError(t, err)
	fileSystem.AssertCalled(t, "RemoveAll", stale)
	fileSystem.AssertNotCalled(t, "RemoveAll", written[0])
}

func TestPublishCommitMessageRecordsRevisionAndVersion(t *testing.T) {
	fileSystem := new(testutil.MockFileSystem)
	fileSystem.On("Glob", mock.Anything).Return([]string{}, nil)

	scm := new(testutil.MockScm)
	scm.On("IsRepository", "output").Return(true)
	scm.On("CurrentRevision", "conf").Return("abc123", nil)
	scm.On("CommitAll", "output", "Generate manifests\n\nConfig revision: abc123\nTool version: 1.0.0").
		Return(true, nil)

	sut := ProvidePublisher(scm, fileSystem)

	err := sut.Publish("output", "conf", "1.0.0", nil)

	assert.NoError(t, err)
	scm.AssertExpectations(t)
}

func TestPublishToleratesNothingToCommit(t *testing.T) {
	fileSystem := new(testutil.MockFileSystem)
	fileSystem.On("Glob", mock.Anything).Return([]string{}, nil)

	scm := new(testutil.MockScm)
	scm.On("IsRepository", "output").Return(true)
	scm.On("CurrentRevision", "conf").Return("abc123", nil)
	scm.On("CommitAll", "output", mock.Anything).Return(false, nil)

	sut := ProvidePublisher(scm, fileSystem)

	assert.NoError(t, sut.Publish("output", "conf", "1.0.0", nil))
}
