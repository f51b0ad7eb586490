package recipe

import (
	"context"
	"fmt"

	"github.com/osse101/craftbench/internal/domain"
	"github.com/osse101/craftbench/internal/item"
	"github.com/osse101/craftbench/internal/quantity"
)

// SlotKind names where an item reference lives in a recipe.
type SlotKind string

const (
	SlotTarget     SlotKind = "target"
	SlotTargetList SlotKind = "targetList"
	SlotIngredient SlotKind = "ingredient"
)

// Slot addresses one item reference. SourceID is ignored for SlotTarget.
type Slot struct {
	Kind     SlotKind `json:"kind" validate:"required,oneof=target targetList ingredient"`
	SourceID string   `json:"sourceId"`
}

// reference snapshots doc for storage and gives synthetic items an explicit
// count of one.
func (s *Store) reference(doc domain.Item) (domain.Item, string, error) {
	ref, err := item.Snapshot(doc)
	if err != nil {
		return ref, "", err
	}
	sid := item.SourceID(ref)
	if sid == "" {
		return ref, "", fmt.Errorf("%w: item has no identity", domain.ErrInvalidInput)
	}
	if p := s.resolver.ResolveItem(ref); p.Kind == quantity.KindSynthetic && !ref.Has(p.Path) {
		if ref, err = ref.Set(p.Path, 1); err != nil {
			return ref, "", err
		}
	}
	return ref, sid, nil
}

// SetTarget stores a snapshot of doc as the recipe target. A recipe still
// carrying the default name takes the item's name.
func (s *Store) SetTarget(ctx context.Context, id string, doc domain.Item) error {
	ref, _, err := s.reference(doc)
	if err != nil {
		return err
	}
	return s.edit(ctx, id, func(r *domain.Recipe) error {
		r.Target = &ref
		tryRename(r, ref.Name())
		return nil
	})
}

// AddTargetListItem adds doc to the target list. Adding an item already on
// the list increases its count by one. It returns the item's source id.
func (s *Store) AddTargetListItem(ctx context.Context, id string, doc domain.Item) (string, error) {
	ref, sid, err := s.reference(doc)
	if err != nil {
		return "", err
	}
	err = s.edit(ctx, id, func(r *domain.Recipe) error {
		if r.TargetList == nil {
			r.TargetList = map[string]domain.Item{}
		}
		next, err := s.addOrIncrement(r.TargetList, sid, ref)
		if err != nil {
			return err
		}
		r.TargetList[sid] = next
		tryRename(r, ref.Name())
		return nil
	})
	return sid, err
}

// AddIngredient adds doc to the ingredients. Adding an item already present
// increases its count by one. It returns the item's source id.
func (s *Store) AddIngredient(ctx context.Context, id string, doc domain.Item) (string, error) {
	ref, sid, err := s.reference(doc)
	if err != nil {
		return "", err
	}
	err = s.edit(ctx, id, func(r *domain.Recipe) error {
		if r.Ingredients == nil {
			r.Ingredients = map[string]domain.Item{}
		}
		next, err := s.addOrIncrement(r.Ingredients, sid, ref)
		if err != nil {
			return err
		}
		r.Ingredients[sid] = next
		return nil
	})
	return sid, err
}

func (s *Store) addOrIncrement(m map[string]domain.Item, sid string, ref domain.Item) (domain.Item, error) {
	cur, ok := m[sid]
	if !ok {
		return ref, nil
	}
	p := s.resolver.ResolveItem(cur).Path
	return quantity.Set(cur, p, quantity.Required(cur, p)+1)
}

// ConflictsWithTarget reports whether doc is the recipe's target or on its
// target list, compared by name or source id.
func (s *Store) ConflictsWithTarget(ctx context.Context, id string, doc domain.Item) (bool, error) {
	r, err := s.Get(ctx, id)
	if err != nil {
		return false, err
	}
	if r.Target != nil && item.Same(doc, *r.Target) {
		return true, nil
	}
	for _, t := range r.TargetList {
		if item.Same(doc, t) {
			return true, nil
		}
	}
	return false, nil
}

// ChangeQuantity edits the count of one item reference. With rewrite the
// count becomes value, otherwise value is added. Counts never drop below one.
func (s *Store) ChangeQuantity(ctx context.Context, id string, slot Slot, value int, rewrite bool) (int, error) {
	var result int
	err := s.edit(ctx, id, func(r *domain.Recipe) error {
		cur, err := lookup(r, slot)
		if err != nil {
			return err
		}
		p := s.resolver.ResolveItem(cur).Path
		result = quantity.Clamp(quantity.Required(cur, p), value, rewrite)
		next, err := quantity.Set(cur, p, result)
		if err != nil {
			return err
		}
		return store(r, slot, next)
	})
	return result, err
}

// RemoveTarget clears the single target.
func (s *Store) RemoveTarget(ctx context.Context, id string) error {
	return s.edit(ctx, id, func(r *domain.Recipe) error {
		if r.Target == nil {
			return fmt.Errorf("%w: recipe %s", domain.ErrTargetNotFound, id)
		}
		r.Target = nil
		return nil
	})
}

// RemoveTargetListItem removes one item from the target list.
func (s *Store) RemoveTargetListItem(ctx context.Context, id, sourceID string) error {
	return s.edit(ctx, id, func(r *domain.Recipe) error {
		if _, ok := r.TargetList[sourceID]; !ok {
			return fmt.Errorf("%w: %s", domain.ErrTargetNotFound, sourceID)
		}
		delete(r.TargetList, sourceID)
		return nil
	})
}

// RemoveIngredient removes one ingredient.
func (s *Store) RemoveIngredient(ctx context.Context, id, sourceID string) error {
	return s.edit(ctx, id, func(r *domain.Recipe) error {
		if _, ok := r.Ingredients[sourceID]; !ok {
			return fmt.Errorf("%w: %s", domain.ErrIngredientNotFound, sourceID)
		}
		delete(r.Ingredients, sourceID)
		return nil
	})
}

func lookup(r *domain.Recipe, slot Slot) (domain.Item, error) {
	switch slot.Kind {
	case SlotTarget:
		if r.Target == nil {
			return domain.Item{}, fmt.Errorf("%w: recipe %s", domain.ErrTargetNotFound, r.ID)
		}
		return *r.Target, nil
	case SlotTargetList:
		it, ok := r.TargetList[slot.SourceID]
		if !ok {
			return domain.Item{}, fmt.Errorf("%w: %s", domain.ErrTargetNotFound, slot.SourceID)
		}
		return it, nil
	case SlotIngredient:
		it, ok := r.Ingredients[slot.SourceID]
		if !ok {
			return domain.Item{}, fmt.Errorf("%w: %s", domain.ErrIngredientNotFound, slot.SourceID)
		}
		return it, nil
	}
	return domain.Item{}, fmt.Errorf("%w: slot %q", domain.ErrInvalidInput, slot.Kind)
}

func store(r *domain.Recipe, slot Slot, it domain.Item) error {
	switch slot.Kind {
	case SlotTarget:
		r.Target = &it
	case SlotTargetList:
		r.TargetList[slot.SourceID] = it
	case SlotIngredient:
		r.Ingredients[slot.SourceID] = it
	default:
		return fmt.Errorf("%w: slot %q", domain.ErrInvalidInput, slot.Kind)
	}
	return nil
}
