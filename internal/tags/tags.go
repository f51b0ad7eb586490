// Package tags implements the tag map shared by recipes and items: a set of
// tag names with positive integer quantities.
package tags

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"golang.org/x/text/cases"

	"github.com/osse101/craftbench/internal/domain"
)

// ItemPath is where item documents keep their tags.
const ItemPath = domain.FlagsPath + ".craftTags"

var specialSymbols = regexp.MustCompile(domain.SpecialSymbolsPattern)

// Set maps tag name to quantity.
type Set map[string]int

// ValidateName reports whether tag is non-empty and free of special symbols.
func ValidateName(tag string) bool {
	return tag != "" && !specialSymbols.MatchString(tag)
}

// Add returns a copy of set with tag added at quantity one.
func Add(set Set, tag string) (Set, error) {
	if !ValidateName(tag) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidTagName, tag)
	}
	if _, ok := set[tag]; ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrTagExists, tag)
	}
	out := clone(set)
	out[tag] = 1
	return out, nil
}

// Remove returns a copy of set without tag.
func Remove(set Set, tag string) (Set, error) {
	if _, ok := set[tag]; !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrTagNotFound, tag)
	}
	out := clone(set)
	delete(out, tag)
	return out, nil
}

// Rename returns a copy of set with oldTag renamed, keeping its quantity.
func Rename(set Set, oldTag, newTag string) (Set, error) {
	qty, ok := set[oldTag]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrTagNotFound, oldTag)
	}
	if oldTag == newTag {
		return clone(set), nil
	}
	if !ValidateName(newTag) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidTagName, newTag)
	}
	if _, ok := set[newTag]; ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrTagExists, newTag)
	}
	out := clone(set)
	delete(out, oldTag)
	out[newTag] = qty
	return out, nil
}

// SetQuantity returns a copy of set with tag's quantity replaced by value, or
// increased by it when overwrite is false. Results below one become one.
func SetQuantity(set Set, tag string, value int, overwrite bool) (Set, error) {
	cur, ok := set[tag]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrTagNotFound, tag)
	}
	n := value
	if !overwrite {
		n = cur + value
	}
	out := clone(set)
	out[tag] = max(1, n)
	return out, nil
}

// Quantity is a tag quantity as typed by a user. It decodes from a JSON
// number or a numeric string; anything else decodes to NaN.
type Quantity float64

func (q *Quantity) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(bytes.TrimSpace(data), `"`))
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		*q = Quantity(math.NaN())
		return nil
	}
	*q = Quantity(n)
	return nil
}

// Edit renames and requantifies one existing tag. An empty Tag keeps the name.
type Edit struct {
	Tag      string   `json:"tag"`
	Quantity Quantity `json:"quantity"`
}

// Reformat applies edits keyed by existing tag name to set. Either every edit
// is valid and a new set is returned, or an error is returned and nothing
// changes. Tags without an edit are kept as they are.
func Reformat(set Set, edits map[string]Edit) (Set, error) {
	out := make(Set, len(set))
	for tag, qty := range set {
		if _, edited := edits[tag]; !edited {
			out[tag] = qty
		}
	}

	for _, old := range slices.Sorted(maps.Keys(edits)) {
		if _, ok := set[old]; !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrTagNotFound, old)
		}
		e := edits[old]
		name := e.Tag
		if name == "" {
			name = old
		}
		if !ValidateName(name) {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidTagName, name)
		}
		q := float64(e.Quantity)
		if math.IsNaN(q) || math.IsInf(q, 0) {
			return nil, fmt.Errorf("%w: tag %s", domain.ErrInvalidQuantity, name)
		}
		if _, dup := out[name]; dup {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateTag, name)
		}
		out[name] = max(1, int(q))
	}
	return out, nil
}

// Entry is a tag as listed by Filter.
type Entry struct {
	Tag      string `json:"tag"`
	Quantity int    `json:"quantity"`
	Visible  bool   `json:"visible"`
}

// Filter lists set sorted by name, marking the tags whose name contains query
// case-insensitively. When nothing matches every tag is visible and
// noResults is true.
func Filter(set Set, query string) (entries []Entry, noResults bool) {
	fold := cases.Fold()
	q := fold.String(strings.TrimSpace(query))

	matched := 0
	for _, tag := range slices.Sorted(maps.Keys(set)) {
		visible := strings.Contains(fold.String(tag), q)
		if visible {
			matched++
		}
		entries = append(entries, Entry{Tag: tag, Quantity: set[tag], Visible: visible})
	}
	if matched == 0 && len(entries) > 0 {
		for i := range entries {
			entries[i].Visible = true
		}
		return entries, true
	}
	return entries, false
}

// ItemTags reads the tag set stored on an item document.
func ItemTags(doc domain.Item) Set {
	out := Set{}
	doc.Get(ItemPath).ForEach(func(key, value gjson.Result) bool {
		n := int(value.Float())
		if n < 1 {
			n = 1
		}
		out[key.String()] = n
		return true
	})
	return out
}

// WithItemTags returns a copy of doc carrying set. An empty set removes the field.
func WithItemTags(doc domain.Item, set Set) (domain.Item, error) {
	if len(set) == 0 {
		return doc.Delete(ItemPath)
	}
	raw, err := json.Marshal(set)
	if err != nil {
		return doc, err
	}
	return doc.SetRaw(ItemPath, raw)
}

func clone(set Set) Set {
	out := maps.Clone(set)
	if out == nil {
		out = Set{}
	}
	return out
}
