package crafting

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osse101/craftbench/internal/domain"
)

// mockInventory is a hand-written Inventory with error injection.
type mockInventory struct {
	mu       sync.Mutex
	actors   []domain.Actor
	items    map[string][]domain.Item
	applied  [][]Mutation
	applyErr error
	itemsErr error
	nextID   int
}

func newMockInventory() *mockInventory {
	return &mockInventory{items: map[string][]domain.Item{}}
}

func (m *mockInventory) addActor(id string, owners []string, items ...domain.Item) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.actors = append(m.actors, domain.Actor{ID: id, Name: "Actor " + id, Owners: owners})
	m.items[id] = items
}

func (m *mockInventory) OwnedActors(ctx context.Context, userID string) ([]domain.Actor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Actor
	for _, a := range m.actors {
		if a.OwnedBy(userID) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockInventory) Items(ctx context.Context, actorID string) ([]domain.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.itemsErr != nil {
		return nil, m.itemsErr
	}
	return slices.Clone(m.items[actorID]), nil
}

func (m *mockInventory) Apply(ctx context.Context, actorID string, mutations []Mutation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.applyErr != nil {
		return m.applyErr
	}
	m.applied = append(m.applied, mutations)

	items := slices.Clone(m.items[actorID])
	for _, mu := range mutations {
		switch mu.Kind {
		case MutationDelete:
			items = slices.DeleteFunc(items, func(it domain.Item) bool { return it.ID() == mu.ItemID })
		case MutationUpdate:
			for i := range items {
				if items[i].ID() == mu.ItemID {
					doc, err := mu.Item.Set(domain.ItemPathID, mu.ItemID)
					if err != nil {
						return err
					}
					items[i] = doc
				}
			}
		case MutationCreate:
			m.nextID++
			doc, err := mu.Item.Set(domain.ItemPathID, fmt.Sprintf("new-%d", m.nextID))
			if err != nil {
				return err
			}
			items = append(items, doc)
		}
	}
	m.items[actorID] = items
	return nil
}

func (m *mockInventory) snapshot(actorID string) []domain.Item {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.items[actorID])
}

// mockRecipes is a RecipeSource over a map.
type mockRecipes map[string]*domain.Recipe

func (m mockRecipes) Get(ctx context.Context, id string) (*domain.Recipe, error) {
	r, ok := m[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrRecipeNotFound, id)
	}
	return r.Clone(), nil
}

func mustItem(t *testing.T, raw string) domain.Item {
	t.Helper()
	it, err := domain.NewItem([]byte(raw))
	require.NoError(t, err)
	return it
}

func findBySource(items []domain.Item, sid string) []domain.Item {
	var out []domain.Item
	for _, it := range items {
		if it.Get("flags.core.sourceId").String() == sid || it.Get("flags.craftbench.sourceId").String() == sid {
			out = append(out, it)
		}
	}
	return out
}
