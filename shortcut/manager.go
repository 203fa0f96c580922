package shortcut

import (
	"strings"
	"sync"

	"go.uber.org/zap"
)

const maxRecent = 10

// Result describes a completed mutation. Warning is a *WriteError when the
// change was applied in memory but could not be persisted.
type Result struct {
	Outcome  Outcome
	Shortcut Shortcut
	Warning  error
}

// Manager owns the single in-memory collection and writes it back through
// the Store after every mutation.
type Manager struct {
	mu      sync.RWMutex
	store   *Store
	log     *zap.Logger
	items   Collection
	recent  []string
	loadErr error
}

// NewManager loads the collection once. Persistence problems never prevent
// construction: the manager starts empty and LoadWarning reports why.
func NewManager(store *Store, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	m := &Manager{store: store, log: log}

	items, err := store.Load()
	if err != nil {
		log.Warn("starting with empty shortcuts", zap.String("key", store.Key()), zap.Error(err))
		m.loadErr = err
	}
	m.items = items

	recent, err := store.LoadRecent()
	if err != nil {
		log.Warn("ignoring recently used list", zap.Error(err))
	}
	m.recent = filterRecent(recent, items, "")

	log.Debug("shortcuts loaded", zap.Int("count", len(items)))
	return m
}

// LoadWarning returns the *ReadError encountered at startup, if any.
func (m *Manager) LoadWarning() error {
	return m.loadErr
}

// List returns a snapshot of the collection.
func (m *Manager) List() Collection {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.items.Clone()
}

// Upsert creates or updates a shortcut. A validation error (ErrValidation)
// leaves the collection untouched.
func (m *Manager) Upsert(name, content string) (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	items, outcome, err := Upsert(m.items, name, content)
	if err != nil {
		return Result{}, err
	}
	m.items = items

	sc := items[index(items, strings.TrimSpace(name))]
	m.log.Debug("shortcut saved", zap.String("name", sc.Name), zap.String("outcome", string(outcome)))
	return Result{Outcome: outcome, Shortcut: sc, Warning: m.persist()}, nil
}

// Lookup returns the shortcut whose name equals the trimmed query.
func (m *Manager) Lookup(query string) (Shortcut, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lookup(query)
}

// Expand is Lookup that also records the hit at the front of the recently
// used list.
func (m *Manager) Expand(query string) (Shortcut, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sc, ok := m.lookup(query)
	if !ok {
		return Shortcut{}, false
	}

	m.recent = filterRecent(m.recent, m.items, sc.Name)
	if err := m.store.SaveRecent(m.recent); err != nil {
		m.log.Warn("recently used list not persisted", zap.Error(err))
	}
	return sc, true
}

// Recent returns the most-recently-expanded names, most recent first.
func (m *Manager) Recent() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, len(m.recent))
	copy(out, m.recent)
	return out
}

// ClearAll removes every shortcut and the recently used list.
func (m *Manager) ClearAll() Result {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items = ClearAll(m.items)
	m.recent = []string{}
	warning := m.persist()
	if err := m.store.SaveRecent(m.recent); err != nil {
		m.log.Warn("recently used list not persisted", zap.Error(err))
	}
	m.log.Debug("shortcuts cleared")
	return Result{Outcome: Cleared, Warning: warning}
}

func (m *Manager) lookup(query string) (Shortcut, bool) {
	content, ok := Lookup(m.items, query)
	if !ok {
		return Shortcut{}, false
	}
	return Shortcut{Name: strings.TrimSpace(query), Content: content}, true
}

// persist writes the full collection. Caller must hold m.mu.
func (m *Manager) persist() error {
	err := m.store.Save(m.items)
	if err != nil {
		m.log.Warn("shortcuts not persisted", zap.String("key", m.store.Key()), zap.Error(err))
	}
	return err
}

// filterRecent builds a new recently used list: front (if non-empty) first,
// then the existing names, deduplicated, capped at maxRecent, and dropping
// names no longer in items.
func filterRecent(existing []string, items Collection, front string) []string {
	seen := make(map[string]bool, len(existing)+1)
	out := make([]string, 0, maxRecent)
	if front != "" {
		seen[front] = true
		out = append(out, front)
	}
	for _, name := range existing {
		if len(out) == maxRecent {
			break
		}
		if seen[name] || index(items, name) < 0 {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}
