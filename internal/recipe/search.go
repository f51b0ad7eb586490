package recipe

import (
	"context"
	"strings"

	"golang.org/x/text/cases"

	"github.com/osse101/craftbench/internal/domain"
	"github.com/osse101/craftbench/internal/logger"
)

// SearchResult lists the ids left visible by a search.
type SearchResult struct {
	Visible   []string `json:"visible"`
	NoResults bool     `json:"noResults"`
}

// Search sets each recipe's visibility by whether query matches its name,
// description, target, ingredients or tag names, case-insensitively. Hidden
// recipes stay invisible unless canEdit. When nothing matches, every recipe
// the caller may see is shown again and NoResults is set.
func (s *Store) Search(ctx context.Context, query string, canEdit bool) SearchResult {
	fold := cases.Fold()
	q := fold.String(strings.TrimSpace(query))

	s.mu.Lock()
	defer s.mu.Unlock()

	visible := make(map[string]bool, len(s.recipes))
	matched := 0
	for id, r := range s.recipes {
		if r.Settings.IsHidden && !canEdit {
			visible[id] = false
			continue
		}
		hit := q == "" || matches(r, q, fold)
		visible[id] = hit
		if hit {
			matched++
		}
	}

	noResults := q != "" && matched == 0
	if noResults {
		for id, r := range s.recipes {
			visible[id] = canEdit || !r.Settings.IsHidden
		}
		logger.FromContext(ctx).Debug("Search matched no recipe", "query", query)
	}

	res := SearchResult{NoResults: noResults, Visible: []string{}}
	for _, id := range s.recipes.IDs() {
		r := s.recipes[id]
		if r.IsVisible != visible[id] {
			next := r.Clone()
			next.IsVisible = visible[id]
			s.recipes[id] = next
		}
		if visible[id] {
			res.Visible = append(res.Visible, id)
		}
	}
	return res
}

func matches(r *domain.Recipe, q string, fold cases.Caser) bool {
	contains := func(s string) bool {
		return s != "" && strings.Contains(fold.String(s), q)
	}

	if contains(r.Name) || contains(r.Description) {
		return true
	}
	if r.Target != nil && (contains(r.Target.Name()) || contains(r.Target.Img())) {
		return true
	}
	for _, it := range r.TargetList {
		if contains(it.Name()) || contains(it.Img()) {
			return true
		}
	}
	for _, it := range r.Ingredients {
		if contains(it.Name()) || contains(it.Img()) {
			return true
		}
	}
	for tag := range r.Tags {
		if contains(tag) {
			return true
		}
	}
	return false
}
