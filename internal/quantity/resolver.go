package quantity

import (
	"maps"
	"sync/atomic"

	"github.com/osse101/craftbench/internal/domain"
)

// Kind tells whether an item type carries a native quantity field.
type Kind string

const (
	// KindStructured items keep their count at a system-defined path.
	KindStructured Kind = "structured"
	// KindSynthetic items have no native count. Each inventory instance counts
	// as one and recipe references store the required count under a flag.
	KindSynthetic Kind = "synthetic"
)

// SyntheticPath is where recipe references of synthetic items keep their count.
const SyntheticPath = domain.FlagsPath + ".quantity"

// Path is the resolved quantity location for an item type.
type Path struct {
	Path string `json:"path"`
	Kind Kind   `json:"kind"`
}

// PathTable maps item type to its quantity path. A nil entry marks a type
// without a native quantity.
type PathTable map[string]*string

func (t PathTable) Clone() PathTable {
	return maps.Clone(t)
}

// Resolver answers quantity path lookups against a swappable table.
type Resolver struct {
	table atomic.Pointer[PathTable]
}

// NewResolver creates a resolver over a copy of table.
func NewResolver(table PathTable) *Resolver {
	r := &Resolver{}
	r.Replace(table)
	return r
}

// Resolve returns the path for itemType. Unknown types and types mapped to
// nil resolve to the synthetic path.
func (r *Resolver) Resolve(itemType string) Path {
	table := *r.table.Load()
	if p, ok := table[itemType]; ok && p != nil && *p != "" {
		return Path{Path: *p, Kind: KindStructured}
	}
	return Path{Path: SyntheticPath, Kind: KindSynthetic}
}

// ResolveItem resolves the path for the item's own type.
func (r *Resolver) ResolveItem(doc domain.Item) Path {
	return r.Resolve(doc.Type())
}

// Table returns a copy of the current table.
func (r *Resolver) Table() PathTable {
	return (*r.table.Load()).Clone()
}

// Replace swaps in a copy of table. Lookups in flight keep the old table.
func (r *Resolver) Replace(table PathTable) {
	t := table.Clone()
	if t == nil {
		t = PathTable{}
	}
	r.table.Store(&t)
}
