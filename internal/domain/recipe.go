package domain

import (
	"encoding/json"
	"maps"
	"slices"
)

// RecipeType selects how a recipe is evaluated.
type RecipeType string

const (
	RecipeTypeText  RecipeType = "text"
	RecipeTypeItems RecipeType = "items"
	RecipeTypeTags  RecipeType = "tags"
)

func (t RecipeType) Valid() bool {
	switch t {
	case RecipeTypeText, RecipeTypeItems, RecipeTypeTags:
		return true
	}
	return false
}

// RecipeMacros are names of host macros attached to a recipe. They are stored
// and returned but never executed here.
type RecipeMacros struct {
	OpenMacros   *string `json:"openMacros"`
	CraftMacros  *string `json:"craftMacros"`
	ActivateAsGM bool    `json:"activateAsGM"`
}

type RecipeSettings struct {
	Opened          bool `json:"opened"`
	IsTargetList    bool `json:"isTargetList"`
	AllowForceCraft bool `json:"allowForceCraft"`
	IsHidden        bool `json:"isHidden"`

	// Persisted for compatibility, no behavior attached.
	AllowDismantling bool         `json:"allowDismantling"`
	IsSecret         bool         `json:"isSecret"`
	AllowModifiers   bool         `json:"allowModifiers"`
	IsOneTime        bool         `json:"isOneTime"`
	SendCraftRequest bool         `json:"sendCraftRequest"`
	Macros           RecipeMacros `json:"macros"`

	// Extra holds settings keys not declared above.
	Extra map[string]json.RawMessage `json:"-"`
}

// DefaultRecipeSettings returns the settings every new recipe starts with.
func DefaultRecipeSettings() RecipeSettings {
	return RecipeSettings{}
}

// Recipe is a named crafting formula. Ingredients and TargetList are keyed by
// item source identity.
type Recipe struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Type        RecipeType      `json:"type"`
	IsVisible   bool            `json:"isVisible"`
	EditMode    bool            `json:"editMode"`
	Settings    RecipeSettings  `json:"settings"`
	Target      *Item           `json:"target,omitempty"`
	TargetList  map[string]Item `json:"targetList,omitempty"`
	Ingredients map[string]Item `json:"ingredients,omitempty"`
	Tags        map[string]int  `json:"tags,omitempty"`

	// Extra holds keys not declared above. They are written back unchanged.
	Extra map[string]json.RawMessage `json:"-"`
}

// Clone returns a deep copy. Item values are immutable so they are shared.
func (r *Recipe) Clone() *Recipe {
	if r == nil {
		return nil
	}
	out := *r
	if r.Target != nil {
		t := *r.Target
		out.Target = &t
	}
	out.TargetList = maps.Clone(r.TargetList)
	out.Ingredients = maps.Clone(r.Ingredients)
	out.Tags = maps.Clone(r.Tags)
	out.Extra = maps.Clone(r.Extra)
	out.Settings.Extra = maps.Clone(r.Settings.Extra)
	if r.Settings.Macros.OpenMacros != nil {
		v := *r.Settings.Macros.OpenMacros
		out.Settings.Macros.OpenMacros = &v
	}
	if r.Settings.Macros.CraftMacros != nil {
		v := *r.Settings.Macros.CraftMacros
		out.Settings.Macros.CraftMacros = &v
	}
	return &out
}

// Targets returns the items a craft produces according to IsTargetList.
func (r *Recipe) Targets() []Item {
	if r.Settings.IsTargetList {
		keys := make([]string, 0, len(r.TargetList))
		for k := range r.TargetList {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		out := make([]Item, 0, len(keys))
		for _, k := range keys {
			out = append(out, r.TargetList[k])
		}
		return out
	}
	if r.Target == nil || r.Target.IsZero() {
		return nil
	}
	return []Item{*r.Target}
}

// RecipeCollection maps recipe id to recipe.
type RecipeCollection map[string]*Recipe

func (c RecipeCollection) Clone() RecipeCollection {
	out := make(RecipeCollection, len(c))
	for id, r := range c {
		out[id] = r.Clone()
	}
	return out
}

// IDs returns the collection's ids in sorted order.
func (c RecipeCollection) IDs() []string {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
