package state

import (
	"fmt"
	"sync"
	"time"

	"adcopy/config"
	"adcopy/form"
	"adcopy/types"
)

// Snapshot is a copy of one session's state, safe to render or serialize
type Snapshot struct {
	Form     types.FormState  `json:"form"`
	Variants types.Variants   `json:"variants"`
	Loading  bool             `json:"loading"`
	Scraping bool             `json:"scraping"`
	Error    string           `json:"error,omitempty"`
	Examples []types.Example  `json:"examples"`
	Status   types.APIStatus  `json:"status"`
	Logs     []types.LogEntry `json:"logs"`
}

// Manager holds one session's state with thread-safe access
type Manager struct {
	mu sync.RWMutex

	form     *form.Form
	variants types.Variants
	loading  bool
	scraping bool
	errMsg   string

	examples []types.Example
	status   types.APIStatus

	// Logs (ring buffer)
	logs    []types.LogEntry
	maxLogs int

	lastSeen time.Time
}

// NewManager creates a session with a default form
func NewManager() *Manager {
	return &Manager{
		form:     form.New(),
		logs:     make([]types.LogEntry, 0),
		maxLogs:  config.MaxActivityLogs,
		lastSeen: time.Now(),
	}
}

// AddLog adds a log entry (thread-safe)
func (m *Manager) AddLog(message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.appendLog(message)
}

// Snapshot returns a copy of the current state (thread-safe)
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return Snapshot{
		Form:     m.form.State(),
		Variants: append(types.Variants(nil), m.variants...),
		Loading:  m.loading,
		Scraping: m.scraping,
		Error:    m.errMsg,
		Examples: append([]types.Example(nil), m.examples...),
		Status:   m.status,
		Logs:     append([]types.LogEntry{}, m.logs...), // Copy slice
	}
}

// FormState returns the current form values
func (m *Manager) FormState() types.FormState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.form.State()
}

// UpdateForm runs fn against the form while holding the lock
func (m *Manager) UpdateForm(fn func(f *form.Form) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(m.form)
}

// BeginLoading marks a generate request in flight. It returns false when one
// already is, in which case the caller must not issue another.
func (m *Manager) BeginLoading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loading {
		return false
	}
	m.loading = true
	return true
}

// EndLoading clears the in-flight flag
func (m *Manager) EndLoading() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loading = false
}

// IsLoading reports whether a generate request is in flight
func (m *Manager) IsLoading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

// SetScraping toggles the scrape indicator
func (m *Manager) SetScraping(on bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scraping = on
}

// SetVariants stores a result set
func (m *Manager) SetVariants(v types.Variants) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.variants = v
	m.appendLog(fmt.Sprintf("Received %d variants", len(v)))
}

// ClearVariants empties the preview
func (m *Manager) ClearVariants() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.variants = nil
}

// Variants returns the current result set
func (m *Manager) Variants() types.Variants {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.variants
}

// SetError shows msg in the banner
func (m *Manager) SetError(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errMsg = msg
	m.appendLog("Error: " + msg)
}

// ClearError hides the banner
func (m *Manager) ClearError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errMsg = ""
}

// SetExamples stores the example list
func (m *Manager) SetExamples(examples []types.Example) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.examples = examples
}

// Example returns the example at index i
func (m *Manager) Example(i int) (types.Example, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if i < 0 || i >= len(m.examples) {
		return types.Example{}, false
	}
	return m.examples[i], true
}

// SetStatus stores the API connection status
func (m *Manager) SetStatus(s types.APIStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status = s
}

// Touch records session activity
func (m *Manager) Touch(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastSeen = now
}

// LastSeen returns the time of the last recorded activity
func (m *Manager) LastSeen() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastSeen
}

// appendLog must be called with the lock held
func (m *Manager) appendLog(message string) {
	entry := types.LogEntry{
		Timestamp: time.Now(),
		Message:   message,
	}
	m.logs = append(m.logs, entry)
	if len(m.logs) > m.maxLogs {
		m.logs = m.logs[len(m.logs)-m.maxLogs:]
	}
}
