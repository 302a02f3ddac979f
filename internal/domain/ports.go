package domain

import "time"

// CommandExecutor runs a command line through the system shell and returns
// its standard output decoded as text.
//
// A non-zero exit status is not an error. The returned error is always an
// *ExecError and only reports launch, wait, or read failures.
type CommandExecutor interface {
	Execute(command string) (string, error)
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (defaults <- global <- project).
	Load() (*Config, error)

	// LoadGlobal returns only the global configuration.
	LoadGlobal() (*Config, error)
}

// ConfigManager manages configuration files.
type ConfigManager interface {
	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// GetProjectConfigInfo returns information about the project config file.
	GetProjectConfigInfo() ConfigInfo

	// InitGlobalConfig creates the global config file from the template.
	InitGlobalConfig(cfg *Config) error

	// InitProjectConfig creates the project config file from the template.
	InitProjectConfig(cfg *Config) error
}

// ConfigInfo describes a configuration file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// HistoryStore persists terminal command history between sessions.
// Entries are ordered newest first.
type HistoryStore interface {
	Load() ([]string, error)
	Save(entries []string) error
}

// Logger writes categorised log lines.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debug(_, _ string) {}
func (NopLogger) Info(_, _ string) {}
func (NopLogger) Warn(_, _ string) {}
func (NopLogger) Error(_, _ string) {}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
