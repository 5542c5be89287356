// internal/core/services/store_test.go
package services_test

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acardosi/stockroom-be/internal/core/services"
)

type widget struct {
	ID    int64
	Name  string
	Group string
}

func newWidgetStore() *services.Store[widget] {
	return services.NewStore(
		func(w widget) int64 { return w.ID },
		services.IndexSpec[widget]{Name: "name", Key: func(w widget) string { return strings.ToLower(w.Name) }},
		services.IndexSpec[widget]{Name: "group", Key: func(w widget) string { return w.Group }},
	)
}

func TestStore_InsertAndGet(t *testing.T) {
	s := newWidgetStore()

	assert.True(t, s.Insert(widget{ID: 1, Name: "Alpha", Group: "a"}))
	assert.False(t, s.Insert(widget{ID: 1, Name: "Duplicate", Group: "a"}),
		"second insert with the same ID must be rejected")

	got, ok := s.GetByID(1)
	require.True(t, ok)
	assert.Equal(t, "Alpha", got.Name)

	_, ok = s.GetByID(99)
	assert.False(t, ok)
}

func TestStore_SecondaryIndexes(t *testing.T) {
	s := newWidgetStore()
	s.Initialize([]widget{
		{ID: 1, Name: "Alpha", Group: "a"},
		{ID: 2, Name: "Beta", Group: "a"},
		{ID: 3, Name: "Gamma", Group: "b"},
	})

	byName, ok := s.GetByKey("name", "beta")
	require.True(t, ok)
	assert.Equal(t, int64(2), byName.ID)

	groupA := s.GetAllByKey("group", "a")
	require.Len(t, groupA, 2)
	assert.Equal(t, int64(1), groupA[0].ID, "results must be ordered by ID")
	assert.Equal(t, int64(2), groupA[1].ID)

	assert.Empty(t, s.GetAllByKey("group", "zzz"))
	_, ok = s.GetByKey("no_such_index", "beta")
	assert.False(t, ok)
}

func TestStore_UpdateMovesIndexEntries(t *testing.T) {
	s := newWidgetStore()
	s.Initialize([]widget{{ID: 1, Name: "Alpha", Group: "a"}})

	assert.True(t, s.Update(widget{ID: 1, Name: "Alpha", Group: "b"}))

	assert.Empty(t, s.GetAllByKey("group", "a"), "old index key must be dropped")
	require.Len(t, s.GetAllByKey("group", "b"), 1)

	assert.False(t, s.Update(widget{ID: 42, Name: "Ghost"}),
		"update of an absent entry must be rejected")
}

func TestStore_Remove(t *testing.T) {
	s := newWidgetStore()
	s.Initialize([]widget{
		{ID: 1, Name: "Alpha", Group: "a"},
		{ID: 2, Name: "Beta", Group: "a"},
	})

	assert.True(t, s.Remove(1))
	assert.False(t, s.Remove(1), "second remove must report absence")

	_, ok := s.GetByID(1)
	assert.False(t, ok)
	_, ok = s.GetByKey("name", "alpha")
	assert.False(t, ok, "index entries must be removed with the record")
	assert.Equal(t, 1, s.Count())
}

func TestStore_InitializeReplacesEverything(t *testing.T) {
	s := newWidgetStore()
	s.Initialize([]widget{{ID: 1, Name: "Old", Group: "a"}})
	s.Initialize([]widget{
		{ID: 2, Name: "New", Group: "b"},
		{ID: 3, Name: "Newer", Group: "b"},
	})

	_, ok := s.GetByID(1)
	assert.False(t, ok, "initialize must drop previous contents")
	assert.Equal(t, 2, s.Count())
	assert.Empty(t, s.GetAllByKey("group", "a"), "previous index state must be gone")
}

func TestStore_SearchAndAll(t *testing.T) {
	s := newWidgetStore()
	s.Initialize([]widget{
		{ID: 3, Name: "Gamma", Group: "b"},
		{ID: 1, Name: "Alpha", Group: "a"},
		{ID: 2, Name: "Beta", Group: "a"},
	})

	all := s.All()
	require.Len(t, all, 3)
	assert.Equal(t, int64(1), all[0].ID)
	assert.Equal(t, int64(3), all[2].ID)

	matched := s.Search(func(w widget) bool { return strings.HasPrefix(w.Name, "B") })
	require.Len(t, matched, 1)
	assert.Equal(t, "Beta", matched[0].Name)
}

func TestStore_EmptyKeyNotIndexed(t *testing.T) {
	s := newWidgetStore()
	s.Insert(widget{ID: 1, Name: "", Group: "a"})

	_, ok := s.GetByKey("name", "")
	assert.False(t, ok, "entries with an empty index key must not be findable by it")
	_, ok = s.GetByID(1)
	assert.True(t, ok)
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := newWidgetStore()
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(2)
		base := int64(i * 100)
		go func() {
			defer wg.Done()
			for j := int64(0); j < 50; j++ {
				s.Insert(widget{ID: base + j, Name: fmt.Sprintf("w-%d", base+j), Group: "g"})
			}
		}()
		go func() {
			defer wg.Done()
			for j := int64(0); j < 50; j++ {
				s.GetByID(base + j)
				s.GetAllByKey("group", "g")
				s.Count()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 400, s.Count())
}
