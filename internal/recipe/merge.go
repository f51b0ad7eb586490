package recipe

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/osse101/craftbench/internal/domain"
	"github.com/osse101/craftbench/internal/tags"
)

// applyPartial returns r with partial deep-merged over its JSON form.
func applyPartial(r *domain.Recipe, partial map[string]any) (*domain.Recipe, error) {
	raw, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	base := map[string]any{}
	if err := json.Unmarshal(raw, &base); err != nil {
		return nil, err
	}

	merged, err := json.Marshal(deepMerge(base, partial))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	next := &domain.Recipe{}
	if err := json.Unmarshal(merged, next); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	next.ID = r.ID

	if err := validate(next); err != nil {
		return nil, err
	}
	return next, nil
}

// deepMerge writes src into dst. Objects present on both sides merge
// recursively; any other value in src replaces the one in dst.
func deepMerge(dst, src map[string]any) map[string]any {
	for k, v := range src {
		if sv, ok := v.(map[string]any); ok {
			if dv, ok := dst[k].(map[string]any); ok {
				dst[k] = deepMerge(dv, sv)
				continue
			}
		}
		dst[k] = v
	}
	return dst
}

func validate(r *domain.Recipe) error {
	if !r.Type.Valid() {
		return fmt.Errorf("%w: %w: %q", domain.ErrValidation, domain.ErrInvalidRecipeType, r.Type)
	}
	for tag, q := range r.Tags {
		if !tags.ValidateName(tag) {
			return fmt.Errorf("%w: %w: %q", domain.ErrValidation, domain.ErrInvalidTagName, tag)
		}
		if q < 1 {
			return fmt.Errorf("%w: %w: tag %s", domain.ErrValidation, domain.ErrInvalidQuantity, tag)
		}
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
