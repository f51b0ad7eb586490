package domain

import (
	"bytes"
	"encoding/json"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

type (
	recipeFields         Recipe
	recipeSettingsFields RecipeSettings
)

var (
	recipeKeys         = declaredKeys(reflect.TypeOf(Recipe{}))
	recipeSettingsKeys = declaredKeys(reflect.TypeOf(RecipeSettings{}))
)

func (r Recipe) MarshalJSON() ([]byte, error) {
	return marshalWithExtra(recipeFields(r), r.Extra)
}

func (r *Recipe) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	var v recipeFields
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	v.Extra = undeclared(data, recipeKeys)
	*r = Recipe(v)
	return nil
}

func (s RecipeSettings) MarshalJSON() ([]byte, error) {
	return marshalWithExtra(recipeSettingsFields(s), s.Extra)
}

func (s *RecipeSettings) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	var v recipeSettingsFields
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	v.Extra = undeclared(data, recipeSettingsKeys)
	*s = RecipeSettings(v)
	return nil
}

// marshalWithExtra encodes v and adds the extra keys it does not already set.
func marshalWithExtra(v any, extra map[string]json.RawMessage) ([]byte, error) {
	out, err := json.Marshal(v)
	if err != nil || len(extra) == 0 {
		return out, err
	}
	for _, k := range slices.Sorted(maps.Keys(extra)) {
		path := gjson.Escape(k)
		if gjson.GetBytes(out, path).Exists() {
			continue
		}
		if out, err = sjson.SetRawBytes(out, path, extra[k]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// undeclared returns the object keys of data missing from known, or nil.
func undeclared(data []byte, known map[string]struct{}) map[string]json.RawMessage {
	var extra map[string]json.RawMessage
	gjson.ParseBytes(data).ForEach(func(key, value gjson.Result) bool {
		if _, ok := known[key.String()]; ok {
			return true
		}
		if extra == nil {
			extra = make(map[string]json.RawMessage)
		}
		extra[key.String()] = json.RawMessage(value.Raw)
		return true
	})
	return extra
}

func declaredKeys(t reflect.Type) map[string]struct{} {
	keys := make(map[string]struct{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		keys[name] = struct{}{}
	}
	return keys
}

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}
