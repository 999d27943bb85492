package badger

import (
	badgerdb "github.com/dgraph-io/badger/v4"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/jobdeck/internal/common"
	"github.com/ternarybob/jobdeck/internal/interfaces"
)

// Manager implements the StorageManager interface for Badger
type Manager struct {
	db     *BadgerDB
	job    interfaces.JobStorage
	user   interfaces.UserStorage
	logger arbor.ILogger
}

// NewManager creates a new Badger storage manager
func NewManager(logger arbor.ILogger, config *common.BadgerConfig) (interfaces.StorageManager, error) {
	db, err := NewBadgerDB(logger, config)
	if err != nil {
		return nil, err
	}

	manager := &Manager{
		db:     db,
		job:    NewJobStorage(db, logger),
		user:   NewUserStorage(db, logger),
		logger: logger,
	}

	logger.Info().Msg("Badger storage manager initialized")

	return manager, nil
}

// JobStorage returns the Job storage interface
func (m *Manager) JobStorage() interfaces.JobStorage {
	return m.job
}

// UserStorage returns the User storage interface
func (m *Manager) UserStorage() interfaces.UserStorage {
	return m.user
}

// RunGC runs value-log garbage collection until Badger reports nothing left
// to rewrite. Safe to call while the store is serving requests.
func (m *Manager) RunGC() error {
	for {
		err := m.db.Store().Badger().RunValueLogGC(0.5)
		if err == badgerdb.ErrNoRewrite {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// Close closes the storage manager and database connection
func (m *Manager) Close() error {
	return m.db.Close()
}
