// Package inventory provides actor inventories the crafting engine works on.
package inventory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/osse101/craftbench/internal/crafting"
	"github.com/osse101/craftbench/internal/domain"
)

// Memory is an in-process inventory store.
type Memory struct {
	mu     sync.RWMutex
	actors map[string]domain.Actor
	items  map[string][]domain.Item
	order  []string
}

// NewMemory creates an empty store.
func NewMemory() *Memory {
	return &Memory{
		actors: map[string]domain.Actor{},
		items:  map[string][]domain.Item{},
	}
}

// PutActor adds or replaces an actor and its items. Items without an
// instance id are given one.
func (m *Memory) PutActor(ctx context.Context, actor domain.Actor, items []domain.Item) error {
	withIDs := make([]domain.Item, 0, len(items))
	for _, it := range items {
		if it.ID() == "" {
			var err error
			if it, err = it.Set(domain.ItemPathID, newItemID()); err != nil {
				return err
			}
		}
		withIDs = append(withIDs, it)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.actors[actor.ID]; !exists {
		m.order = append(m.order, actor.ID)
	}
	m.actors[actor.ID] = actor
	m.items[actor.ID] = withIDs
	return nil
}

func (m *Memory) OwnedActors(ctx context.Context, userID string) ([]domain.Actor, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []domain.Actor
	for _, id := range m.order {
		if a := m.actors[id]; a.OwnedBy(userID) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *Memory) Items(ctx context.Context, actorID string) ([]domain.Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, ok := m.actors[actorID]; !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrActorNotFound, actorID)
	}
	return slices.Clone(m.items[actorID]), nil
}

// Apply validates every mutation against the current items before changing
// anything, so a bad batch leaves the inventory as it was.
func (m *Memory) Apply(ctx context.Context, actorID string, mutations []crafting.Mutation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.actors[actorID]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrActorNotFound, actorID)
	}

	next, err := applyMutations(m.items[actorID], mutations, newItemID)
	if err != nil {
		return err
	}
	m.items[actorID] = next
	return nil
}

// applyMutations returns items with mutations applied, or an error and no result.
func applyMutations(items []domain.Item, mutations []crafting.Mutation, newID func() string) ([]domain.Item, error) {
	next := slices.Clone(items)
	index := func(id string) int {
		return slices.IndexFunc(next, func(it domain.Item) bool { return it.ID() == id })
	}

	for _, mu := range mutations {
		switch mu.Kind {
		case crafting.MutationDelete:
			i := index(mu.ItemID)
			if i < 0 {
				return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, mu.ItemID)
			}
			next = slices.Delete(next, i, i+1)
		case crafting.MutationUpdate:
			i := index(mu.ItemID)
			if i < 0 {
				return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, mu.ItemID)
			}
			doc, err := mu.Item.Set(domain.ItemPathID, mu.ItemID)
			if err != nil {
				return nil, err
			}
			next[i] = doc
		case crafting.MutationCreate:
			doc, err := mu.Item.Set(domain.ItemPathID, newID())
			if err != nil {
				return nil, err
			}
			next = append(next, doc)
		default:
			return nil, fmt.Errorf("%w: mutation kind %q", domain.ErrInvalidInput, mu.Kind)
		}
	}
	return next, nil
}

func newItemID() string {
	return uuid.NewString()
}
