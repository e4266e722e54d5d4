// Package state persists display settings and the play queue in SQLite.
package state

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"go.uber.org/zap"

	dbutil "github.com/llehouerou/quaver/internal/db"
)

const (
	appName      = "quaver"
	dbFileName   = "quaver.db"
	saveDebounce = 500 * time.Millisecond
)

// Manager is the SQLite-backed settings and queue store.
type Manager struct {
	typed

	db     *sql.DB
	logger *zap.Logger

	cacheMu sync.RWMutex
	cache   map[string]string

	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *QueueState
}

// Open opens the database under the XDG data directory.
func Open(defaults Defaults, logger *zap.Logger) (*Manager, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, err
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}
	return OpenPath(dbPath, defaults, logger)
}

// OpenPath opens the database at path. ":memory:" gives a throwaway store.
func OpenPath(path string, defaults Defaults, logger *zap.Logger) (*Manager, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	db, err := dbutil.Open(path)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	m := &Manager{db: db, logger: logger}
	if err := m.loadSettings(); err != nil {
		db.Close()
		return nil, err
	}
	m.typed = typed{kv: m, defaults: defaults.normalized()}
	return m, nil
}

// Close flushes a pending queue save and closes the database.
func (m *Manager) Close() error {
	if err := m.Flush(); err != nil {
		m.logger.Error("flush queue", zap.Error(err))
	}
	return m.db.Close()
}

// Flush writes a pending scheduled queue save now.
func (m *Manager) Flush() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	if pending == nil {
		return nil
	}
	return saveQueue(m.db, *pending)
}

// GetQueue returns the saved queue.
func (m *Manager) GetQueue() (*QueueState, error) {
	return getQueue(m.db)
}

// SaveQueue writes the queue immediately.
func (m *Manager) SaveQueue(state QueueState) error {
	return saveQueue(m.db, state)
}

// ScheduleQueueSave writes the queue after a quiet period. Later calls
// replace the pending state.
func (m *Manager) ScheduleQueueSave(state QueueState) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = &state

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(saveDebounce, func() {
		m.saveMu.Lock()
		pending := m.pending
		m.pending = nil
		m.saveMu.Unlock()

		if pending != nil {
			if err := saveQueue(m.db, *pending); err != nil {
				m.logger.Error("save queue", zap.Error(err))
				return
			}
			m.logger.Debug("queue saved", zap.Int("tracks", len(pending.Tracks)))
		}
	})
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
