package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string       `toml:"-" yaml:"-"`
	Shell    ShellConfig    `toml:"shell" yaml:"shell"`
	Terminal TerminalConfig `toml:"terminal" yaml:"terminal"`
	Log      LogConfig      `toml:"log" yaml:"log"`
}

// TerminalConfig holds settings for the interactive terminal from [terminal] section.
type TerminalConfig struct {
	SaveHistory  *bool  `toml:"save_history,omitempty" yaml:"save_history,omitempty"` // nil means default (true)
	Prompt       string `toml:"prompt,omitempty" yaml:"prompt,omitempty"`
	HistoryLimit int    `toml:"history_limit,omitempty" yaml:"history_limit,omitempty"`
}

// HistoryEnabled reports whether command history is persisted between sessions.
func (t TerminalConfig) HistoryEnabled() bool {
	return t.SaveHistory == nil || *t.SaveHistory
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty" yaml:"level,omitempty"` // debug, info, warn, error
}

// Default configuration values.
const (
	DefaultLogLevel     = "info"
	DefaultPrompt       = "> "
	DefaultHistoryLimit = 500
)

// Directory and file names for shellbridge.
const (
	AppDirName        = "shellbridge"       // Directory name under the config home
	ConfigFileName    = "config.toml"       // Global config file name
	ProjectConfigName = ".shellbridge.toml" // Config file name in the working directory
	LogFileName       = "shellbridge.log"   // Log file name
	HistoryFileName   = "history.json"      // Persisted terminal history
)

// GlobalConfigDir returns the global config directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalConfigPath returns the global config path.
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalConfigDir(configHome), ConfigFileName)
}

// ProjectConfigPath returns the project config path for a working directory.
func ProjectConfigPath(dir string) string {
	return filepath.Join(dir, ProjectConfigName)
}

// LogPath returns the log file path under a config directory.
func LogPath(configDir string) string {
	return filepath.Join(configDir, "logs", LogFileName)
}

// HistoryPath returns the persisted terminal history path under configDir.
func HistoryPath(configDir string) string {
	return filepath.Join(configDir, HistoryFileName)
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Shell: DefaultShell(),
		Terminal: TerminalConfig{
			SaveHistory:  boolPtr(true),
			Prompt:       DefaultPrompt,
			HistoryLimit: DefaultHistoryLimit,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// templateData holds all data for rendering the config template.
type templateData struct {
	ShellProgram string
	ShellArgs    string
	Prompt       string
	LogLevel     string
	HistoryLimit int
	SaveHistory  bool
}

// RenderConfigTemplate renders the config file template with cfg's values
// filled in as commented defaults.
func RenderConfigTemplate(cfg *Config) string {
	quoted := make([]string, 0, len(cfg.Shell.Args))
	for _, a := range cfg.Shell.Args {
		quoted = append(quoted, strconv.Quote(a))
	}

	data := templateData{
		ShellProgram: strconv.Quote(cfg.Shell.Program),
		ShellArgs:    "[" + strings.Join(quoted, ", ") + "]",
		Prompt:       strconv.Quote(cfg.Terminal.Prompt),
		HistoryLimit: cfg.Terminal.HistoryLimit,
		LogLevel:     strconv.Quote(cfg.Log.Level),
		SaveHistory:  cfg.Terminal.HistoryEnabled(),
	}

	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}

	return buf.String()
}

func boolPtr(b bool) *bool {
	return &b
}
