package store

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// MemoryStore holds at most maxProjects projects; the oldest insert is
// evicted first. Reads do not refresh recency.
type MemoryStore struct {
	cache *lru.Cache[string, Project]
}

func NewMemoryStore(maxProjects int) (*MemoryStore, error) {
	cache, err := lru.New[string, Project](maxProjects)
	if err != nil {
		return nil, fmt.Errorf("create project cache: %w", err)
	}
	return &MemoryStore{cache: cache}, nil
}

func (s *MemoryStore) Append(p Project) error {
	if p.ID == "" {
		return fmt.Errorf("append project: empty id")
	}
	// ContainsOrAdd keeps the existing entry and its position on a duplicate id.
	if found, _ := s.cache.ContainsOrAdd(p.ID, p); found {
		return fmt.Errorf("append project %s: %w", p.ID, ErrDuplicateProject)
	}
	return nil
}

func (s *MemoryStore) Get(id string) (Project, error) {
	p, ok := s.cache.Peek(id)
	if !ok {
		return Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (s *MemoryStore) List() ([]Project, error) {
	keys := s.cache.Keys()
	projects := make([]Project, 0, len(keys))
	for _, k := range keys {
		if p, ok := s.cache.Peek(k); ok {
			projects = append(projects, p)
		}
	}
	return projects, nil
}

func (s *MemoryStore) Count() (int, error) {
	return s.cache.Len(), nil
}

func (s *MemoryStore) Close() error {
	s.cache.Purge()
	return nil
}
