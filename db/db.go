package db

import (
	"fmt"

	"github.com/f8wq/TFL-Manager/model"
)

// Store keeps pending submissions keyed by the id of their approval message.
// Get returns nil, nil when no submission is stored under the id.
type Store interface {
	Put(sub *model.Submission) error
	Get(messageID string) (*model.Submission, error)
	Remove(messageID string) error
}

// Open returns the store selected by kind ("memory" or "sqlite").
func Open(kind string) (Store, error) {
	switch kind {
	case "", "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		return OpenSQLite()
	default:
		return nil, fmt.Errorf("unknown store %q", kind)
	}
}
