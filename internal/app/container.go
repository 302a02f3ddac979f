// Package app provides the dependency injection container for the application.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/runoshun/shellbridge/internal/domain"
	"github.com/runoshun/shellbridge/internal/infra/config"
	"github.com/runoshun/shellbridge/internal/infra/executor"
	"github.com/runoshun/shellbridge/internal/infra/historystore"
	"github.com/runoshun/shellbridge/internal/infra/invoke"
	"github.com/runoshun/shellbridge/internal/infra/logging"
	"github.com/runoshun/shellbridge/internal/infra/mcpserver"
	"github.com/runoshun/shellbridge/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	WorkDir   string // Working directory (project config lives here)
	ConfigDir string // Global config directory (e.g., ~/.config/shellbridge); also holds logs
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Executor      domain.CommandExecutor
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Logger        domain.Logger
	Clock         domain.Clock
	History       domain.HistoryStore // nil when history persistence is disabled

	// Pointer fields
	AppConfig *domain.Config // Effective configuration

	closer io.Closer

	// Configuration
	Config Config
}

// New creates a new Container for the given working directory.
// A broken config file is reported as an error; a missing one means defaults.
func New(dir string) (*Container, error) {
	loader := config.NewLoader(dir)
	cfg := Config{
		WorkDir:   dir,
		ConfigDir: loader.GlobalConfigDir(),
	}
	return newContainer(cfg, loader, config.NewManager(dir))
}

// NewWithConfigDir creates a new Container with a custom global config directory.
// This is useful for testing.
func NewWithConfigDir(dir, configDir string) (*Container, error) {
	cfg := Config{
		WorkDir:   dir,
		ConfigDir: configDir,
	}
	return newContainer(cfg, config.NewLoaderWithGlobalDir(dir, configDir), config.NewManagerWithGlobalDir(dir, configDir))
}

func newContainer(cfg Config, loader *config.Loader, manager *config.Manager) (*Container, error) {
	appConfig, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(cfg.ConfigDir, logging.ParseLevel(appConfig.Log.Level))

	var history domain.HistoryStore
	if appConfig.Terminal.HistoryEnabled() {
		history = historystore.New(domain.HistoryPath(cfg.ConfigDir))
	}

	return &Container{
		Executor:      executor.NewClient(appConfig.Shell),
		ConfigLoader:  loader,
		ConfigManager: manager,
		Logger:        logger,
		Clock:         domain.RealClock{},
		History:       history,
		AppConfig:     appConfig,
		closer:        logger,
		Config:        cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
// History persistence stays disabled unless the caller sets History.
func NewWithDeps(cfg Config, appConfig *domain.Config, exec domain.CommandExecutor, logger domain.Logger, clock domain.Clock) *Container {
	if appConfig == nil {
		appConfig = domain.NewDefaultConfig()
	}
	return &Container{
		Executor:  exec,
		Logger:    logger,
		Clock:     clock,
		AppConfig: appConfig,
		Config:    cfg,
	}
}

// WithStderr returns a copy of the container whose executor writes the
// child's standard error to w instead of discarding it.
func (c *Container) WithStderr(w io.Writer) *Container {
	cp := *c
	cp.Executor = executor.NewClient(c.AppConfig.Shell, executor.WithStderr(w))
	return &cp
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

// UseCase factory methods

// ExecuteCommandUseCase returns a new ExecuteCommand use case.
func (c *Container) ExecuteCommandUseCase() *usecase.ExecuteCommand {
	return usecase.NewExecuteCommand(c.Executor, c.Logger, c.Clock)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// ShowConfigTemplateUseCase returns a new ShowConfigTemplate use case.
func (c *Container) ShowConfigTemplateUseCase() *usecase.ShowConfigTemplate {
	return usecase.NewShowConfigTemplate()
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}

// ShowLogsUseCase returns a new ShowLogs use case.
func (c *Container) ShowLogsUseCase() *usecase.ShowLogs {
	return usecase.NewShowLogs(c.Config.ConfigDir)
}

// Router returns a dispatcher with every host-callable command registered.
func (c *Container) Router() *invoke.Router {
	r := invoke.NewRouter()
	// Registration on a fresh router cannot fail.
	_ = r.Register(domain.ExecuteCommandName, c.executeCommandHandler())
	return r
}

// InvokeServer returns a JSON-lines server over Router.
func (c *Container) InvokeServer() *invoke.Server {
	return invoke.NewServer(c.Router(), c.Logger)
}

// MCPServer returns an MCP server exposing the execute_command tool.
func (c *Container) MCPServer(version string) *mcpserver.Server {
	return mcpserver.New(c.ExecuteCommandUseCase(), c.Logger, version)
}

// executeCommandHandler adapts the ExecuteCommand use case to the dispatcher.
// The handler result is the captured output text; failures become the
// response's error string.
func (c *Container) executeCommandHandler() invoke.Handler {
	uc := c.ExecuteCommandUseCase()
	return func(ctx context.Context, raw json.RawMessage) (any, error) {
		var args domain.ExecuteCommandArgs
		if err := invoke.DecodeArgs(raw, &args); err != nil {
			return nil, err
		}
		if args.Command == nil {
			return nil, fmt.Errorf("%w: missing required key command", domain.ErrInvalidArguments)
		}
		out, err := uc.Execute(ctx, usecase.ExecuteCommandInput{Command: *args.Command})
		if err != nil {
			return nil, err
		}
		return out.Output, nil
	}
}
