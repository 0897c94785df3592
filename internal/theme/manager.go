package theme

import (
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/loadscreen/internal/core"
)

// PrefKey is the preference holding the selected theme key.
const PrefKey = "themeColor"

// progressPrefKey returns the preference holding a theme's progress style.
func progressPrefKey(themeKey string) string {
	return themeKey + "_progressStyle"
}

// IsPrefKey reports whether key is one of the preferences a Manager writes:
// the theme choice or a theme's progress style.
func IsPrefKey(key string) bool {
	if key == PrefKey {
		return true
	}
	themeKey, ok := strings.CutSuffix(key, "_progressStyle")
	if !ok {
		return false
	}
	_, known := Lookup(themeKey)
	return known
}

// VarSink receives every palette variable when a theme is applied.
type VarSink interface {
	SetVar(name, value string)
}

// VarTable is a VarSink that keeps the variables in a map.
type VarTable map[string]string

func (t VarTable) SetVar(name, value string) { t[name] = value }

// ChangeEvent is delivered to OnChange listeners after a theme is applied.
type ChangeEvent struct {
	Theme    string
	Vars     []Var
	Progress ProgressStyle
}

// Manager applies themes, persists the choice and tracks the progress style.
// It is safe for concurrent use; listeners run on the caller's goroutine
// without the lock held.
type Manager struct {
	mu        sync.Mutex
	prefs     core.Preferences
	sink      VarSink
	log       *log.Logger
	current   Theme
	progress  ProgressStyle
	listeners []func(ChangeEvent)
}

// NewManager creates a manager with the default theme selected. Call Load
// to restore the persisted choice. sink may be nil.
func NewManager(prefs core.Preferences, sink VarSink, logger *log.Logger) *Manager {
	if prefs == nil {
		prefs = core.NewMemoryPreferences()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	def := Get(DefaultKey)
	return &Manager{
		prefs:    prefs,
		sink:     sink,
		log:      logger,
		current:  def,
		progress: def.Progress,
	}
}

// OnChange registers a listener for applied themes.
func (m *Manager) OnChange(fn func(ChangeEvent)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}

// Load applies the persisted theme, or the default one.
func (m *Manager) Load() Theme {
	key, ok, err := m.prefs.Get(PrefKey)
	if err != nil {
		m.log.Warn("cannot read theme preference", "err", err)
	}
	if !ok || err != nil {
		key = DefaultKey
	}
	return m.Apply(key)
}

// Apply selects the theme for key, falling back to the default theme for
// unknown keys. The palette goes to the sink, the key is persisted, and the
// theme's stored progress style (or its recommended one) becomes current.
func (m *Manager) Apply(key string) Theme {
	t, ok := Lookup(key)
	if !ok {
		m.log.Debug("unknown theme, using default", "theme", key)
		t = Get(DefaultKey)
	}

	vars := t.Palette.Vars()
	progress := m.storedProgress(t)

	m.mu.Lock()
	if m.sink != nil {
		for _, v := range vars {
			m.sink.SetVar(v.Name, v.Value)
		}
	}
	m.current = t
	m.progress = progress
	listeners := append([]func(ChangeEvent){}, m.listeners...)
	m.mu.Unlock()

	if err := m.prefs.Set(PrefKey, t.Key); err != nil {
		m.log.Warn("cannot persist theme", "theme", t.Key, "err", err)
	}

	ev := ChangeEvent{Theme: t.Key, Vars: vars, Progress: progress}
	for _, fn := range listeners {
		fn(ev)
	}
	m.log.Debug("theme applied", "theme", t.Key, "progress", progress.Name())
	return t
}

func (m *Manager) storedProgress(t Theme) ProgressStyle {
	raw, ok, err := m.prefs.Get(progressPrefKey(t.Key))
	if err != nil || !ok {
		return t.Progress
	}
	if s := ProgressStyle(raw); s.Valid() {
		return s
	}
	return t.Progress
}

// Current returns the applied theme.
func (m *Manager) Current() Theme {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Progress returns the current progress-bar style.
func (m *Manager) Progress() ProgressStyle {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.progress
}

// ToggleProgressStyle advances the progress style and persists it for the
// current theme.
func (m *Manager) ToggleProgressStyle() ProgressStyle {
	m.mu.Lock()
	m.progress = m.progress.Next()
	next, key := m.progress, m.current.Key
	m.mu.Unlock()

	if err := m.prefs.Set(progressPrefKey(key), string(next)); err != nil {
		m.log.Warn("cannot persist progress style", "theme", key, "err", err)
	}
	return next
}
