// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"sync"
	"time"

	"github.com/runoshun/shellbridge/internal/domain"
)

// MockClock is a test double for domain.Clock.
// Each call to Now advances the time by Step.
type MockClock struct {
	NowTime time.Time
	Step    time.Duration
	mu      sync.Mutex
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.NowTime
	m.NowTime = m.NowTime.Add(m.Step)
	return now
}

// MockCommandExecutor is a test double for domain.CommandExecutor.
// Fields are ordered to minimize memory padding.
type MockCommandExecutor struct {
	ExecuteFunc func(command string) (string, error) // Overrides Output/Err when set
	Err         error
	Output      string
	Commands    []string
	mu          sync.Mutex
}

// NewMockCommandExecutor creates a new MockCommandExecutor.
func NewMockCommandExecutor() *MockCommandExecutor {
	return &MockCommandExecutor{}
}

// Execute records the command and returns the configured result.
func (m *MockCommandExecutor) Execute(command string) (string, error) {
	m.mu.Lock()
	m.Commands = append(m.Commands, command)
	fn, out, err := m.ExecuteFunc, m.Output, m.Err
	m.mu.Unlock()

	if fn != nil {
		return fn(command)
	}
	if err != nil {
		return "", err
	}
	return out, nil
}

// Calls returns a copy of the recorded commands.
func (m *MockCommandExecutor) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.Commands))
	copy(out, m.Commands)
	return out
}

// LogEntry is a single captured log call.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
}

// MockLogger is a test double for domain.Logger that records entries.
type MockLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

// NewMockLogger creates a new MockLogger.
func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

func (m *MockLogger) record(level, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, Category: category, Msg: msg})
}

// Debug records a debug entry.
func (m *MockLogger) Debug(category, msg string) { m.record("debug", category, msg) }

// Info records an info entry.
func (m *MockLogger) Info(category, msg string) { m.record("info", category, msg) }

// Warn records a warn entry.
func (m *MockLogger) Warn(category, msg string) { m.record("warn", category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(category, msg string) { m.record("error", category, msg) }

// ByLevel returns the recorded entries for a level.
func (m *MockLogger) ByLevel(level string) []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []LogEntry
	for _, e := range m.Entries {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config    *domain.Config
	LoadErr   error
	GlobalErr error
}

// Load returns the configured config, or defaults when none is set.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}

// LoadGlobal returns the configured config.
func (m *MockConfigLoader) LoadGlobal() (*domain.Config, error) {
	if m.GlobalErr != nil {
		return nil, m.GlobalErr
	}
	return m.Load()
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitGlobalErr     error
	InitProjectErr    error
	GlobalConfigInfo  domain.ConfigInfo
	ProjectConfigInfo domain.ConfigInfo
	InitGlobalCalled  bool
	InitProjectCalled bool
}

// NewMockConfigManager creates a new MockConfigManager.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{}
}

// GetGlobalConfigInfo returns the configured global config info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalConfigInfo
}

// GetProjectConfigInfo returns the configured project config info.
func (m *MockConfigManager) GetProjectConfigInfo() domain.ConfigInfo {
	return m.ProjectConfigInfo
}

// InitGlobalConfig records the call.
func (m *MockConfigManager) InitGlobalConfig(_ *domain.Config) error {
	m.InitGlobalCalled = true
	return m.InitGlobalErr
}

// InitProjectConfig records the call.
func (m *MockConfigManager) InitProjectConfig(_ *domain.Config) error {
	m.InitProjectCalled = true
	return m.InitProjectErr
}

// MockHistoryStore is an in-memory test double for domain.HistoryStore.
// Fields are ordered to minimize memory padding.
type MockHistoryStore struct {
	LoadErr error
	SaveErr error
	Stored  []string
	Saves   int
	mu      sync.Mutex
}

// NewMockHistoryStore creates a MockHistoryStore seeded with entries.
func NewMockHistoryStore(entries ...string) *MockHistoryStore {
	return &MockHistoryStore{Stored: entries}
}

// Load returns a copy of the stored entries.
func (m *MockHistoryStore) Load() ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return append([]string(nil), m.Stored...), nil
}

// Save records entries.
func (m *MockHistoryStore) Save(entries []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Saves++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Stored = append([]string(nil), entries...)
	return nil
}

// Snapshot returns the stored entries and the number of Save calls.
func (m *MockHistoryStore) Snapshot() ([]string, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.Stored...), m.Saves
}

// Ensure mocks implement their interfaces.
var (
	_ domain.Clock           = (*MockClock)(nil)
	_ domain.CommandExecutor = (*MockCommandExecutor)(nil)
	_ domain.Logger          = (*MockLogger)(nil)
	_ domain.ConfigLoader    = (*MockConfigLoader)(nil)
	_ domain.ConfigManager   = (*MockConfigManager)(nil)
	_ domain.HistoryStore    = (*MockHistoryStore)(nil)
)
