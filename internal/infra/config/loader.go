// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/shellbridge/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	projectDir    string // Directory holding .shellbridge.toml (usually the working directory)
	globalConfDir string // Path to global config directory (e.g., ~/.config/shellbridge)
}

// NewLoader creates a new Loader.
func NewLoader(projectDir string) *Loader {
	return &Loader{
		projectDir:    projectDir,
		globalConfDir: DefaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(projectDir, globalConfDir string) *Loader {
	return &Loader{
		projectDir:    projectDir,
		globalConfDir: globalConfDir,
	}
}

// DefaultGlobalConfigDir returns the default global config directory,
// or "" when no home directory can be determined.
func DefaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// GlobalConfigDir returns the global config directory used by the loader.
func (l *Loader) GlobalConfigDir() string {
	return l.globalConfDir
}

// Load returns the merged configuration (global + project).
// Project config takes precedence over global config.
func (l *Loader) Load() (*domain.Config, error) {
	global, err := l.LoadGlobal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	project, err := l.LoadProject()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	// Merge: default <- global <- project (later takes precedence)
	base := domain.NewDefaultConfig()
	if global != nil {
		base = mergeConfigs(base, global)
	}
	if project != nil {
		base = mergeConfigs(base, project)
	}

	return base, nil
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

// LoadProject returns only the project configuration.
func (l *Loader) LoadProject() (*domain.Config, error) {
	if l.projectDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(domain.ProjectConfigPath(l.projectDir))
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return convertRawToDomainConfig(raw), nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown key: %s", section))
			continue
		}
		switch section {
		case "shell":
			for k, v := range m {
				switch k {
				case "program":
					if s, ok := v.(string); ok {
						res.Shell.Program = s
					} else {
						warnings = append(warnings, invalidValue("shell", k, v))
					}
				case "args":
					if args, ok := toStringSlice(v); ok {
						res.Shell.Args = args
					} else {
						warnings = append(warnings, invalidValue("shell", k, v))
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [shell]: %s", k))
				}
			}
		case "terminal":
			for k, v := range m {
				switch k {
				case "prompt":
					if s, ok := v.(string); ok {
						res.Terminal.Prompt = s
					} else {
						warnings = append(warnings, invalidValue("terminal", k, v))
					}
				case "history_limit":
					if n, ok := v.(int64); ok {
						res.Terminal.HistoryLimit = int(n)
					} else {
						warnings = append(warnings, invalidValue("terminal", k, v))
					}
				case "save_history":
					if b, ok := v.(bool); ok {
						res.Terminal.SaveHistory = &b
					} else {
						warnings = append(warnings, invalidValue("terminal", k, v))
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [terminal]: %s", k))
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					if s, ok := v.(string); ok {
						res.Log.Level = s
					} else {
						warnings = append(warnings, invalidValue("log", k, v))
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

// toStringSlice converts a decoded TOML array into strings.
// It reports false unless v is an array holding only strings. An empty array
// yields an empty, non-nil slice so it can override inherited args.
func toStringSlice(v any) ([]string, bool) {
	items, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

// invalidValue formats the warning for a known key holding the wrong type.
func invalidValue(section, key string, v any) string {
	return fmt.Sprintf("invalid value for [%s] %s: %v", section, key, v)
}

// mergeConfigs merges two configs, with override taking precedence.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	var warnings []string
	warnings = append(warnings, base.Warnings...)
	warnings = append(warnings, override.Warnings...)

	result := &domain.Config{
		Shell:    base.Shell,
		Terminal: base.Terminal,
		Log:      base.Log,
		Warnings: warnings,
	}

	if override.Shell.Program != "" {
		result.Shell.Program = override.Shell.Program
	}
	if override.Shell.Args != nil {
		result.Shell.Args = override.Shell.Args
	}
	if override.Terminal.Prompt != "" {
		result.Terminal.Prompt = override.Terminal.Prompt
	}
	if override.Terminal.SaveHistory != nil {
		result.Terminal.SaveHistory = override.Terminal.SaveHistory
	}
	if override.Terminal.HistoryLimit != 0 {
		result.Terminal.HistoryLimit = override.Terminal.HistoryLimit
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}

	return result
}
