// Package recipe holds the in-memory recipe collection and every edit that
// can be made to it.
package recipe

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/osse101/craftbench/internal/domain"
	"github.com/osse101/craftbench/internal/logger"
	"github.com/osse101/craftbench/internal/quantity"
)

// Store owns the recipe collection. Every mutation works on a clone of the
// affected recipe and swaps it in only when the whole edit succeeded, so a
// failed edit leaves the collection untouched.
type Store struct {
	mu       sync.RWMutex
	recipes  domain.RecipeCollection
	resolver *quantity.Resolver
	newID    func() string
}

// NewStore creates an empty store using resolver for quantity paths.
func NewStore(resolver *quantity.Resolver) *Store {
	return &Store{
		recipes:  domain.RecipeCollection{},
		resolver: resolver,
		newID:    generateID,
	}
}

func generateID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:IDLength]
}

// Create adds a text recipe with default content and returns it.
func (s *Store) Create(ctx context.Context) *domain.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.newID()
	for s.recipes[id] != nil {
		id = s.newID()
	}

	r := &domain.Recipe{
		ID:          id,
		Name:        domain.DefaultRecipeName,
		Description: domain.DefaultRecipeDescription,
		Type:        domain.RecipeTypeText,
		IsVisible:   true,
		Settings:    domain.DefaultRecipeSettings(),
	}
	s.recipes[id] = r

	logger.FromContext(ctx).Info(LogMsgRecipeCreated, "recipe_id", id)
	return r.Clone()
}

// Get returns a copy of the recipe.
func (s *Store) Get(ctx context.Context, id string) (*domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.recipes[id]
	if !ok {
		logger.FromContext(ctx).Warn(LogMsgRecipeMissing, "recipe_id", id)
		return nil, fmt.Errorf("%w: %s", domain.ErrRecipeNotFound, id)
	}
	return r.Clone(), nil
}

// List returns copies of every recipe ordered by name, then id.
func (s *Store) List(ctx context.Context) []*domain.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Recipe, 0, len(s.recipes))
	for _, r := range s.recipes {
		out = append(out, r.Clone())
	}
	slices.SortFunc(out, func(a, b *domain.Recipe) int {
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// Snapshot returns a deep copy of the collection.
func (s *Store) Snapshot() domain.RecipeCollection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.recipes.Clone()
}

// Len returns the number of recipes.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.recipes)
}

// Replace swaps in a copy of recipes, as after loading a file.
func (s *Store) Replace(recipes domain.RecipeCollection) {
	next := recipes.Clone()
	if next == nil {
		next = domain.RecipeCollection{}
	}
	s.mu.Lock()
	s.recipes = next
	s.mu.Unlock()
}

// Clear removes every recipe.
func (s *Store) Clear() {
	s.Replace(nil)
}

// Update deep-merges partial into the recipe. Nested objects merge key by
// key, everything else replaces. The id cannot be changed.
func (s *Store) Update(ctx context.Context, id string, partial map[string]any) (*domain.Recipe, error) {
	var out *domain.Recipe
	err := s.mutate(ctx, id, func(r *domain.Recipe) (*domain.Recipe, error) {
		next, err := applyPartial(r, partial)
		out = next
		return next, err
	})
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info(LogMsgRecipeUpdated, "recipe_id", id)
	return out.Clone(), nil
}

// UpdateMany applies Update per id. Each recipe commits on its own; the
// returned error joins every failure.
func (s *Store) UpdateMany(ctx context.Context, updates map[string]map[string]any) error {
	var errs []error
	for _, id := range sortedKeys(updates) {
		if _, err := s.Update(ctx, id, updates[id]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Delete removes a recipe. Deleting an absent id does nothing.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.recipes[id]; !ok {
		logger.FromContext(ctx).Debug(LogMsgRecipeMissing, "recipe_id", id)
		return nil
	}
	delete(s.recipes, id)
	logger.FromContext(ctx).Info(LogMsgRecipeDeleted, "recipe_id", id)
	return nil
}

// ResetEditState turns edit mode off, makes every recipe visible and closes
// every settings panel. Run it before writing the collection out.
func (s *Store) ResetEditState(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reset := 0
	for id, r := range s.recipes {
		if !r.EditMode && r.IsVisible && !r.Settings.Opened {
			continue
		}
		next := r.Clone()
		next.EditMode = false
		next.IsVisible = true
		next.Settings.Opened = false
		s.recipes[id] = next
		reset++
	}
	logger.FromContext(ctx).Debug(LogMsgEditStateReset, "recipes", reset)
}

// ToggleEditMode flips edit mode on one recipe and returns the new value.
func (s *Store) ToggleEditMode(ctx context.Context, id string) (bool, error) {
	var on bool
	err := s.edit(ctx, id, func(r *domain.Recipe) error {
		r.EditMode = !r.EditMode
		on = r.EditMode
		return nil
	})
	return on, err
}

// ToggleSettingsPanel flips the settings panel flag and returns the new value.
func (s *Store) ToggleSettingsPanel(ctx context.Context, id string) (bool, error) {
	var opened bool
	err := s.edit(ctx, id, func(r *domain.Recipe) error {
		r.Settings.Opened = !r.Settings.Opened
		opened = r.Settings.Opened
		return nil
	})
	return opened, err
}

// SetType changes the recipe type.
func (s *Store) SetType(ctx context.Context, id string, t domain.RecipeType) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidRecipeType, t)
	}
	return s.edit(ctx, id, func(r *domain.Recipe) error {
		r.Type = t
		return nil
	})
}

// TryRename sets the recipe name to name when the current name is empty or
// still the default. It reports whether the name changed.
func (s *Store) TryRename(ctx context.Context, id, name string) (bool, error) {
	var renamed bool
	err := s.edit(ctx, id, func(r *domain.Recipe) error {
		renamed = tryRename(r, name)
		return nil
	})
	return renamed, err
}

func tryRename(r *domain.Recipe, name string) bool {
	if name == "" || (r.Name != "" && r.Name != domain.DefaultRecipeName) {
		return false
	}
	r.Name = name
	return true
}

// edit runs fn on a clone of the recipe and commits it when fn succeeds.
func (s *Store) edit(ctx context.Context, id string, fn func(r *domain.Recipe) error) error {
	return s.mutate(ctx, id, func(r *domain.Recipe) (*domain.Recipe, error) {
		next := r.Clone()
		if err := fn(next); err != nil {
			return nil, err
		}
		return next, nil
	})
}

func (s *Store) mutate(ctx context.Context, id string, fn func(r *domain.Recipe) (*domain.Recipe, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.recipes[id]
	if !ok {
		logger.FromContext(ctx).Warn(LogMsgRecipeMissing, "recipe_id", id)
		return fmt.Errorf("%w: %s", domain.ErrRecipeNotFound, id)
	}

	next, err := fn(cur)
	if err != nil {
		logger.FromContext(ctx).Debug(LogMsgUpdateFailed, "recipe_id", id, "error", err)
		return err
	}
	s.recipes[id] = next
	return nil
}
