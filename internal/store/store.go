package store

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"aura_server/internal/types"
)

const StatusGenerated = "generated"

var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrDuplicateProject = errors.New("project id already exists")
)

// Project is a generated site kept for later download.
type Project struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	Type      string              `json:"type"`
	Theme     string              `json:"theme"`
	CreatedAt time.Time           `json:"createdAt"`
	Status    string              `json:"status"`
	Source    string              `json:"source"`
	Code      types.GeneratedSite `json:"code"`
}

// Store keeps projects in insertion order. Implementations are safe for
// concurrent use and may evict the oldest projects beyond their capacity.
// Append fails with ErrDuplicateProject when the id is already stored.
type Store interface {
	Append(p Project) error
	Get(id string) (Project, error)
	List() ([]Project, error)
	Count() (int, error)
	Close() error
}

// NewID returns a time-ordered project identifier.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Open builds the store selected by driver ("memory" or "sqlite").
func Open(driver, dataDir string, maxProjects int) (Store, error) {
	switch strings.ToLower(driver) {
	case "", "memory":
		return NewMemoryStore(maxProjects)
	case "sqlite":
		return OpenSQLite(dataDir, maxProjects)
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
}
