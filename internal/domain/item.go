package domain

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Common item document paths.
const (
	ItemPathID   = "_id"
	ItemPathName = "name"
	ItemPathImg  = "img"
	ItemPathType = "type"
)

// Item is a host item document kept as raw JSON. Game systems disagree on
// item shape, so fields are addressed by dotted paths (for example
// "system.quantity") instead of a fixed struct.
//
// Item is immutable: Set and Delete return a modified copy.
type Item struct {
	raw []byte
}

// NewItem validates that raw is a JSON object and wraps a copy of it.
func NewItem(raw []byte) (Item, error) {
	raw = bytes.TrimSpace(raw)
	if !gjson.ValidBytes(raw) || !gjson.ParseBytes(raw).IsObject() {
		return Item{}, fmt.Errorf("%w: item document must be a JSON object", ErrInvalidInput)
	}
	return Item{raw: bytes.Clone(raw)}, nil
}

// ItemFromMap builds an Item from a decoded JSON object.
func ItemFromMap(m map[string]any) (Item, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return Item{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return NewItem(raw)
}

func (i Item) IsZero() bool {
	return len(i.raw) == 0
}

// Bytes returns a copy of the underlying document.
func (i Item) Bytes() []byte {
	return bytes.Clone(i.raw)
}

func (i Item) String() string {
	return string(i.raw)
}

func (i Item) Get(path string) gjson.Result {
	return gjson.GetBytes(i.raw, path)
}

func (i Item) Has(path string) bool {
	return i.Get(path).Exists()
}

func (i Item) ID() string   { return i.Get(ItemPathID).String() }
func (i Item) Name() string { return i.Get(ItemPathName).String() }
func (i Item) Img() string  { return i.Get(ItemPathImg).String() }
func (i Item) Type() string { return i.Get(ItemPathType).String() }

// Set returns a copy of the item with value written at path.
func (i Item) Set(path string, value any) (Item, error) {
	src := i.raw
	if len(src) == 0 {
		src = []byte("{}")
	}
	out, err := sjson.SetBytes(bytes.Clone(src), path, value)
	if err != nil {
		return i, fmt.Errorf("set %s: %w", path, err)
	}
	return Item{raw: out}, nil
}

// SetRaw returns a copy of the item with raw JSON written at path.
func (i Item) SetRaw(path string, raw []byte) (Item, error) {
	src := i.raw
	if len(src) == 0 {
		src = []byte("{}")
	}
	out, err := sjson.SetRawBytes(bytes.Clone(src), path, raw)
	if err != nil {
		return i, fmt.Errorf("set %s: %w", path, err)
	}
	return Item{raw: out}, nil
}

// Delete returns a copy of the item without path. Missing paths are ignored.
func (i Item) Delete(path string) (Item, error) {
	if !i.Has(path) {
		return i, nil
	}
	out, err := sjson.DeleteBytes(bytes.Clone(i.raw), path)
	if err != nil {
		return i, fmt.Errorf("delete %s: %w", path, err)
	}
	return Item{raw: out}, nil
}

// Map decodes the item into a generic JSON object.
func (i Item) Map() (map[string]any, error) {
	m := map[string]any{}
	if i.IsZero() {
		return m, nil
	}
	if err := json.Unmarshal(i.raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func (i Item) MarshalJSON() ([]byte, error) {
	if i.IsZero() {
		return []byte("null"), nil
	}
	return bytes.Clone(i.raw), nil
}

func (i *Item) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		i.raw = nil
		return nil
	}
	parsed, err := NewItem(data)
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}
