//go:build wireinject
// +build wireinject

package app

import (
	"mb/internal/adapters/command_runner"
	"mb/internal/adapters/filesystem"
	"mb/internal/adapters/helm"
	"mb/internal/adapters/scm"
	"mb/internal/adapters/templater"
	"mb/internal/core"
	"mb/internal/core/handler"
	"mb/internal/ports"

	"github.com/google/wire"
)

var Adapter = wire.NewSet(
	command_runner.ProvideOsCommandRunner,
	wire.Bind(new(ports.CommandRunner), new(*command_runner.OsCommandRunner)),
	filesystem.ProvideOsFileSystem,
	wire.Bind(new(ports.FileSystem), new(*filesystem.OsFileSystem)),
	helm.ProvideHelmClient,
	wire.Bind(new(ports.HelmClient), new(*helm.HelmClient)),
	scm.ProvideGitClient,
	wire.Bind(new(ports.Scm), new(*scm.GitClient)),
	templater.ProvideTextTemplater,
	wire.Bind(new(ports.Templater), new(*templater.TextTemplater)),
)

// CoreSet provides domain/core dependencies
var CoreSet = wire.NewSet(
	core.ProvideFileSystemConfigRepository,
	wire.Bind(new(core.ConfigRepository), new(*core.FileSystemConfigRepository)),
	core.ProvideManifestWriter,
	core.ProvideSimpleGenerator,
	core.ProvideGenerator,
	core.ProvidePublisher,
)

// CommandHandlerSet combines all sets needed for command handlers
var CommandHandlerSet = wire.NewSet(
	Adapter,
	CoreSet,
)

func InjectGenerateCommandHandler() (handler.GenerateCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideGenerateCommandHandler,
	)
	return handler.GenerateCommandHandler{}, nil
}
