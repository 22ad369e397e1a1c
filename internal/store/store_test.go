package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aura_server/internal/types"
)

func testProject(n int) Project {
	return Project{
		ID:        NewID(),
		Name:      fmt.Sprintf("Site %d", n),
		Type:      "Business",
		Theme:     "green",
		CreatedAt: time.Date(2026, time.May, 1, 12, 0, n, 0, time.UTC),
		Status:    StatusGenerated,
		Source:    "local",
		Code: types.GeneratedSite{
			HTML:      fmt.Sprintf("<h1>Site %d</h1>", n),
			CSS:       "body{}",
			JS:        "1",
			TechStack: []string{"HTML5"},
		},
	}
}

func openStores(t *testing.T, max int) map[string]Store {
	t.Helper()
	mem, err := Open("memory", "", max)
	require.NoError(t, err)
	sq, err := Open("sqlite", t.TempDir(), max)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = mem.Close()
		_ = sq.Close()
	})
	return map[string]Store{"memory": mem, "sqlite": sq}
}

func TestStore_AppendGetList(t *testing.T) {
	for name, s := range openStores(t, 10) {
		t.Run(name, func(t *testing.T) {
			var want []Project
			for i := 0; i < 3; i++ {
				p := testProject(i)
				require.NoError(t, s.Append(p))
				want = append(want, p)
			}

			got, err := s.Get(want[1].ID)
			require.NoError(t, err)
			assert.Equal(t, want[1], got)

			list, err := s.List()
			require.NoError(t, err)
			assert.Equal(t, want, list)

			n, err := s.Count()
			require.NoError(t, err)
			assert.Equal(t, 3, n)
		})
	}
}

func TestStore_NotFound(t *testing.T) {
	for name, s := range openStores(t, 10) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Get("missing")
			assert.ErrorIs(t, err, ErrProjectNotFound)

			list, err := s.List()
			require.NoError(t, err)
			assert.NotNil(t, list)
			assert.Empty(t, list)
		})
	}
}

func TestStore_EvictsOldest(t *testing.T) {
	for name, s := range openStores(t, 2) {
		t.Run(name, func(t *testing.T) {
			first, second, third := testProject(1), testProject(2), testProject(3)
			require.NoError(t, s.Append(first))
			require.NoError(t, s.Append(second))

			// reads must not change eviction order
			_, err := s.Get(first.ID)
			require.NoError(t, err)

			require.NoError(t, s.Append(third))

			_, err = s.Get(first.ID)
			assert.ErrorIs(t, err, ErrProjectNotFound)

			list, err := s.List()
			require.NoError(t, err)
			require.Len(t, list, 2)
			assert.Equal(t, second.ID, list[0].ID)
			assert.Equal(t, third.ID, list[1].ID)
		})
	}
}

func TestStore_RejectsDuplicateID(t *testing.T) {
	for name, s := range openStores(t, 2) {
		t.Run(name, func(t *testing.T) {
			first, second := testProject(1), testProject(2)
			require.NoError(t, s.Append(first))
			require.NoError(t, s.Append(second))

			replacement := first
			replacement.Name = "Replacement"
			assert.ErrorIs(t, s.Append(replacement), ErrDuplicateProject)

			got, err := s.Get(first.ID)
			require.NoError(t, err)
			assert.Equal(t, first, got)

			// the rejected append must not make first the newest entry
			third := testProject(3)
			require.NoError(t, s.Append(third))
			_, err = s.Get(first.ID)
			assert.ErrorIs(t, err, ErrProjectNotFound)

			list, err := s.List()
			require.NoError(t, err)
			require.Len(t, list, 2)
			assert.Equal(t, second.ID, list[0].ID)
			assert.Equal(t, third.ID, list[1].ID)
		})
	}
}

func TestStore_RejectsEmptyID(t *testing.T) {
	for name, s := range openStores(t, 2) {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, s.Append(Project{Name: "x"}))
		})
	}
}

func TestSQLiteStore_PersistsAcrossOpen(t *testing.T) {
	dir := t.TempDir()
	s, err := OpenSQLite(dir, 10)
	require.NoError(t, err)
	p := testProject(7)
	require.NoError(t, s.Append(p))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(dir, 10)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open("postgres", "", 1)
	assert.EqualError(t, err, `unknown store driver "postgres"`)
}

func TestNewID_Ordered(t *testing.T) {
	a := NewID()
	time.Sleep(2 * time.Millisecond)
	b := NewID()
	assert.NotEqual(t, a, b)
	assert.Less(t, a, b)
}
