// Package store is the durable key/value layer the progression engine mirrors
// its state into. Values are JSON documents, last write wins.
package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tahcohcat/puravida-web/config"
	"github.com/tahcohcat/puravida-web/internal/database"
	"github.com/tahcohcat/puravida-web/internal/logger"
)

var ErrNotFound = errors.New("store: key not found")

const (
	KeyUser      = "user"
	KeyLocations = "locations"
	KeyBadges    = "badges"
	KeyOnboarded = "isOnboarded"
)

// Keys lists every key the application writes.
var Keys = []string{KeyUser, KeyLocations, KeyBadges, KeyOnboarded}

type Store interface {
	// Get returns ErrNotFound when key has never been written or was cleared.
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	// Clear drops every application key.
	Clear() error
	Close() error
}

// LoadJSON decodes the value at key into dst.
func LoadJSON(s Store, key string, dst any) error {
	raw, err := s.Get(key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func SaveJSON(s Store, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Put(key, raw)
}

// New creates the backend selected by cfg.Storage.Driver.
func New(cfg *config.Config) (Store, error) {
	switch cfg.Storage.Driver {
	case config.DriverSQLite, "":
		db, err := database.NewDB(cfg.Database.Path)
		if err != nil {
			return nil, err
		}
		return NewSQLStore(db), nil
	case config.DriverRedis:
		return NewRedisStore(cfg.Redis)
	case config.DriverMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", cfg.Storage.Driver)
	}
}

// Open is New for process start: a backend that cannot be opened counts as
// absent, so the application runs on an in-memory store instead. The second
// result reports whether the configured backend is in use.
func Open(cfg *config.Config, l *logger.Log) (Store, bool) {
	s, err := New(cfg)
	if err == nil {
		return s, true
	}
	if l == nil {
		l = logger.New()
	}
	l.WithError(err).WithField("driver", cfg.Storage.Driver).
		Warn("storage unavailable, progress will not survive a restart")
	return NewMemoryStore(), false
}
