package recipe

import (
	"context"

	"github.com/osse101/craftbench/internal/domain"
	"github.com/osse101/craftbench/internal/tags"
)

// editTags replaces the recipe tag set with the result of fn.
func (s *Store) editTags(ctx context.Context, id string, fn func(tags.Set) (tags.Set, error)) (tags.Set, error) {
	var out tags.Set
	err := s.edit(ctx, id, func(r *domain.Recipe) error {
		next, err := fn(tags.Set(r.Tags))
		if err != nil {
			return err
		}
		r.Tags = next
		out = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AddTag adds tag to the recipe with quantity one.
func (s *Store) AddTag(ctx context.Context, id, tag string) (tags.Set, error) {
	return s.editTags(ctx, id, func(set tags.Set) (tags.Set, error) {
		return tags.Add(set, tag)
	})
}

// RemoveTag removes tag from the recipe.
func (s *Store) RemoveTag(ctx context.Context, id, tag string) (tags.Set, error) {
	return s.editTags(ctx, id, func(set tags.Set) (tags.Set, error) {
		return tags.Remove(set, tag)
	})
}

// RenameTag renames a recipe tag keeping its quantity.
func (s *Store) RenameTag(ctx context.Context, id, oldTag, newTag string) (tags.Set, error) {
	return s.editTags(ctx, id, func(set tags.Set) (tags.Set, error) {
		return tags.Rename(set, oldTag, newTag)
	})
}

// SetTagQuantity sets or increases a recipe tag's quantity.
func (s *Store) SetTagQuantity(ctx context.Context, id, tag string, value int, overwrite bool) (tags.Set, error) {
	return s.editTags(ctx, id, func(set tags.Set) (tags.Set, error) {
		return tags.SetQuantity(set, tag, value, overwrite)
	})
}

// ReformatTags applies a batch of tag edits. Nothing changes unless every
// edit is valid.
func (s *Store) ReformatTags(ctx context.Context, id string, edits map[string]tags.Edit) (tags.Set, error) {
	return s.editTags(ctx, id, func(set tags.Set) (tags.Set, error) {
		return tags.Reformat(set, edits)
	})
}
