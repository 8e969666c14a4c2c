package store

import (
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/glebarez/sqlite"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StateEntry is one persisted key. Kept as raw JSON so the table schema never
// changes when the stored shapes do.
type StateEntry struct {
	Key   string `gorm:"primaryKey"`
	Value []byte `gorm:"not null"`
}

// DBStore keeps session state in a database, for setups where the state file
// is not enough (shared machines, several tools reading one session).
type DBStore struct {
	db  *gorm.DB
	log *slog.Logger
}

var _ Store = (*DBStore)(nil)

// OpenDBStore opens a Postgres store when the DSN looks like a Postgres URL,
// a local sqlite file otherwise.
func OpenDBStore(dsn string) (*DBStore, error) {
	var dialector gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "host=") {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(dsn)
	}
	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&StateEntry{}); err != nil {
		return nil, err
	}
	return &DBStore{db: db, log: slog.Default()}, nil
}

func (s *DBStore) Set(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		s.log.Error("store set failed", "key", key, "error", err)
		return
	}
	entry := StateEntry{Key: key, Value: data}
	if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&entry).Error; err != nil {
		s.log.Error("store set failed", "key", key, "error", err)
	}
}

func (s *DBStore) Get(key string, out any) bool {
	var entry StateEntry
	if err := s.db.First(&entry, "key = ?", key).Error; err != nil {
		return false
	}
	if err := json.Unmarshal(entry.Value, out); err != nil {
		s.log.Error("store get failed", "key", key, "error", err)
		return false
	}
	return true
}

func (s *DBStore) Remove(key string) {
	if err := s.db.Delete(&StateEntry{}, "key = ?", key).Error; err != nil {
		s.log.Error("store remove failed", "key", key, "error", err)
	}
}

func (s *DBStore) Clear() {
	if err := s.db.Where("1 = 1").Delete(&StateEntry{}).Error; err != nil {
		s.log.Error("store clear failed", "error", err)
	}
}
