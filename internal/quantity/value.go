package quantity

import (
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/osse101/craftbench/internal/domain"
)

// Value is a numeric quantity read from an item document. IsString records
// whether the document stored it as a string so writes keep the same type.
type Value struct {
	N        float64
	IsString bool
}

// Get reads the quantity at path. ok is false when the field is missing or
// not numeric.
func Get(doc domain.Item, path string) (v Value, ok bool) {
	r := doc.Get(path)
	switch r.Type {
	case gjson.Number:
		return Value{N: r.Num}, true
	case gjson.String:
		n, err := strconv.ParseFloat(strings.TrimSpace(r.Str), 64)
		if err != nil || math.IsNaN(n) {
			return Value{IsString: true}, false
		}
		return Value{N: n, IsString: true}, true
	}
	return Value{}, false
}

// Required is the count a recipe reference asks for. References without a
// numeric field ask for one.
func Required(ref domain.Item, path string) int {
	v, ok := Get(ref, path)
	if !ok {
		return 1
	}
	return int(v.N)
}

// Held is how many units an inventory item contributes. Synthetic items and
// items without a numeric field count as one.
func Held(doc domain.Item, p Path) int {
	if p.Kind == KindSynthetic {
		return 1
	}
	v, ok := Get(doc, p.Path)
	if !ok {
		return 1
	}
	return int(v.N)
}

// Set writes n at path keeping the field's existing string or number type.
func Set(doc domain.Item, path string, n int) (domain.Item, error) {
	if cur, _ := Get(doc, path); cur.IsString {
		return doc.Set(path, strconv.Itoa(n))
	}
	return doc.Set(path, n)
}

// Add increases the quantity at path by delta. The result is a string when
// either side was stored as one.
func Add(doc domain.Item, path string, delta int, deltaIsString bool) (domain.Item, error) {
	cur, ok := Get(doc, path)
	base := 0
	if ok {
		base = int(cur.N)
	} else if !doc.Has(path) {
		base = 1
	}
	total := base + delta
	if cur.IsString || deltaIsString {
		return doc.Set(path, strconv.Itoa(total))
	}
	return doc.Set(path, total)
}

// Clamp applies the in-place edit rule for recipe quantities: the result is
// value when rewrite is set, current+value otherwise, never less than one.
func Clamp(current, value int, rewrite bool) int {
	n := value
	if !rewrite {
		n = current + value
	}
	if n < 1 {
		return 1
	}
	return n
}
