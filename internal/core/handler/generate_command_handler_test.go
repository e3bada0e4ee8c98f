package handler

import (
	"errors"
	"path/filepath"
	"testing"

	"mb/internal/core"
	"mb/internal/core/domain"
	"mb/internal/ports"
	"mb/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type handlerFixture struct {
	fs     *testutil.TestFileSystem
	config *testutil.MockConfigRepository
	helm   *testutil.MockHelmClient
	scm    *testutil.MockScm
	sut    GenerateCommandHandler
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	fs := testutil.NewTestFileSystem(t)
	config := new(testutil.MockConfigRepository)
	helm := new(testutil.MockHelmClient)
	scm := new(testutil.MockScm)

	writer := core.ProvideManifestWriter(fs)
	simple := core.ProvideSimpleGenerator(fs, new(testutil.MockTemplater))
	generator := core.ProvideGenerator(helm, fs, writer, simple)
	publisher := core.ProvidePublisher(scm, fs)

	return &handlerFixture{
		fs:     fs,
		config: config,
		helm:   helm,
		scm:    scm,
		sut:    ProvideGenerateCommandHandler(config, fs, generator, publisher),
	}
}

func TestHandleGeneratesConfiguredApps(t *testing.T) {
	f := newHandlerFixture(t)
	f.config.On("LoadApps", "conf").Return([]domain.App{
		{Type: domain.AppTypeHelm, Name: "myapp", Namespace: "default", Chart: "./charts/myapp"},
	}, nil)
	f.helm.On("Available").Return(true)
	f.helm.On("Template", mock.Anything).Return([]byte("kind: Service\n"), nil)

	err := f.sut.Handle(GenerateOptions{
		ConfigDir: "conf",
		OutputDir: "output",
	})

	assert.NoError(t, err)
	exists, err := f.fs.FileExists(filepath.Join("output", "default", "myapp.yaml"))
	assert.NoError(t, err)
	assert.True(t, exists)
	f.scm.AssertNotCalled(t, "IsRepository", mock.Anything)
}

func TestHandlePropagatesConfigErrors(t *testing.T) {
	f := newHandlerFixture(t)
	f.config.On("LoadApps", "conf").Return(nil, errors.New("no TOML files found in conf"))

	err := f.sut.Handle(GenerateOptions{ConfigDir: "conf", OutputDir: "output"})

	assert.ErrorContains(t, err, "no TOML files found")
	f.helm.AssertNotCalled(t, "Template", mock.Anything)
}

func TestHandleResolvesReleasesAgainstHelmfile(t *testing.T) {
	f := newHandlerFixture(t)
	assert.NoError(t, f.fs.WriteFile("conf/helmfile.yaml", []byte(`
repositories:
  - name: myrepo
    url: https://charts.example.com
releases:
  - name: myapp
    chart: myrepo/myapp
    version: 1.2.3
`), ports.ReadWrite))
	f.config.On("LoadApps", "conf").Return([]domain.App{
		{Type: domain.AppTypeHelm, Name: "myapp", Namespace: "default", Release: "myapp"},
	}, nil)
	f.helm.On("Available").Return(true)
	f.helm.On("Pull", ports.PullOptions{
		Chart:   "myapp",
		Repo:    "https://charts.example.com",
		Dest:    ".charts",
		Version: "1.2.3",
	}).Return(filepath.Join(".charts", "myapp"), nil)
	f.helm.On("Template", mock.Anything).Return([]byte("kind: Service\n"), nil)

	err := f.sut.Handle(GenerateOptions{
		ConfigDir:     "conf",
		OutputDir:     "output",
		ChartCacheDir: ".charts",
	})

	assert.NoError(t, err)
	f.helm.AssertExpectations(t)
}

func TestHandleFailsWhenReleaseHasNoHelmfile(t *testing.T) {
	f := newHandlerFixture(t)
	f.config.On("LoadApps", "conf").Return([]domain.App{
		{Type: domain.AppTypeHelm, Name: "myapp", Namespace: "default", Release: "myapp"},
	}, nil)

	err := f.sut.Handle(GenerateOptions{ConfigDir: "conf", OutputDir: "output"})

	assert.ErrorContains(t, err, "no helmfile.yaml was found")
	f.helm.AssertNotCalled(t, "Template", mock.Anything)
}

func TestHandleCommitsWhenRequested(t *testing.T) {
	f := newHandlerFixture(t)
	// Absolute paths keep the written manifests and the publisher's glob
	// results comparable.
	outputDir := filepath.Join(f.fs.BaseDir(), "output")
	f.config.On("LoadApps", "conf").Return([]domain.App{
		{Type: domain.AppTypeHelm, Name: "myapp", Namespace: "default", Chart: "./charts/myapp"},
	}, nil)
	f.helm.On("Available").Return(true)
	f.helm.On("Template", mock.Anything).Return([]byte("kind: Service\n"), nil)
	f.scm.On("IsRepository", outputDir).Return(true)
	f.scm.On("CurrentRevision", "conf").Return("abc123", nil)
	f.scm.On("CommitAll", outputDir, mock.Anything).Return(true, nil)

	err := f.sut.Handle(GenerateOptions{
		ConfigDir:   "conf",
		OutputDir:   outputDir,
		Commit:      true,
		ToolVersion: "1.0.0",
	})

	assert.NoError(t, err)
	f.scm.AssertExpectations(t)

	exists, err := f.fs.FileExists(filepath.Join(outputDir, "default", "myapp.yaml"))
	assert.NoError(t, err)
	assert.True(t, exists)
}

func TestHandleDryRunSkipsCommit(t *testing.T) {
	f := newHandlerFixture(t)
	f.config.On("LoadApps", "conf").Return([]domain.App{
		{Type: domain.AppTypeHelm, Name: "myapp", Namespace: "default", Chart: "./charts/myapp"},
	}, nil)
	f.helm.On("TemplateCommand", mock.Anything).Return("helm template myapp ./charts/myapp --namespace default")

	err := f.sut.Handle(GenerateOptions{
		ConfigDir: "conf",
		OutputDir: "output",
		DryRun:    true,
		Commit:    true,
	})

	assert.NoError(t, err)
	f.scm.AssertNotCalled(t, "IsRepository", mock.Anything)
}
