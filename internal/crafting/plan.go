package crafting

import (
	"fmt"
	"maps"
	"slices"

	"github.com/osse101/craftbench/internal/domain"
	"github.com/osse101/craftbench/internal/item"
	"github.com/osse101/craftbench/internal/quantity"
)

// Produced is one crafted output.
type Produced struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type planEntry struct {
	id      string // empty for items the plan creates
	doc     domain.Item
	deleted bool
	dirty   bool
}

// plan works on a copy of the inventory so a craft can be computed in full
// before anything is written.
type plan struct {
	res      *quantity.Resolver
	entries  []*planEntry
	consumed int
	produced []Produced
}

func newPlan(inv []domain.Item, res *quantity.Resolver) *plan {
	p := &plan{res: res}
	for _, doc := range inv {
		p.entries = append(p.entries, &planEntry{id: doc.ID(), doc: doc})
	}
	return p
}

func (p *plan) find(itemID string) *planEntry {
	for _, e := range p.entries {
		if e.id == itemID && !e.deleted {
			return e
		}
	}
	return nil
}

// take removes n units from e, deleting it when nothing is left.
func (p *plan) take(e *planEntry, n int) error {
	path := p.res.ResolveItem(e.doc)
	have := quantity.Held(e.doc, path)
	n = min(n, have)
	if n <= 0 {
		return nil
	}
	p.consumed += n
	if n == have || path.Kind == quantity.KindSynthetic {
		e.deleted = true
		return nil
	}
	doc, err := quantity.Set(e.doc, path.Path, have-n)
	if err != nil {
		return err
	}
	e.doc = doc
	e.dirty = true
	return nil
}

// deductIngredients consumes each ingredient's required count from matching
// items in inventory order. Missing units are skipped, which only happens
// when crafting is forced.
func (p *plan) deductIngredients(r *domain.Recipe) error {
	for _, sid := range slices.Sorted(maps.Keys(r.Ingredients)) {
		ref := r.Ingredients[sid]
		need := quantity.Required(ref, p.res.ResolveItem(ref).Path)
		for _, e := range p.entries {
			if need <= 0 {
				break
			}
			if e.deleted || e.id == "" || item.SourceID(e.doc) != sid {
				continue
			}
			before := p.consumed
			if err := p.take(e, need); err != nil {
				return err
			}
			need -= p.consumed - before
		}
	}
	return nil
}

// deductCandidates consumes the allocated quantity of each selected item.
func (p *plan) deductCandidates(candidates []*Candidate) error {
	for _, c := range candidates {
		if !c.Selected || c.ConsumeQuantity <= 0 {
			continue
		}
		e := p.find(c.ItemID)
		if e == nil {
			return fmt.Errorf("%w: %s", domain.ErrItemNotFound, c.ItemID)
		}
		if err := p.take(e, c.ConsumeQuantity); err != nil {
			return err
		}
	}
	return nil
}

// produce adds each target. Structured targets stack onto an existing item
// of the same type and source; synthetic targets become separate instances.
func (p *plan) produce(targets []domain.Item) error {
	for _, t := range targets {
		path := p.res.ResolveItem(t)
		amount := quantity.Required(t, path.Path)
		p.produced = append(p.produced, Produced{Name: t.Name(), Quantity: amount})

		if path.Kind == quantity.KindSynthetic {
			doc, err := t.Delete(quantity.SyntheticPath)
			if err != nil {
				return err
			}
			for i := 0; i < amount; i++ {
				p.entries = append(p.entries, &planEntry{doc: doc})
			}
			continue
		}

		if e := p.stackable(t); e != nil {
			tv, _ := quantity.Get(t, path.Path)
			doc, err := quantity.Add(e.doc, path.Path, amount, tv.IsString)
			if err != nil {
				return err
			}
			e.doc = doc
			e.dirty = true
			continue
		}

		doc := t
		if !t.Has(path.Path) {
			var err error
			if doc, err = t.Set(path.Path, amount); err != nil {
				return err
			}
		}
		p.entries = append(p.entries, &planEntry{doc: doc})
	}
	return nil
}

func (p *plan) stackable(t domain.Item) *planEntry {
	sid := item.SourceID(t)
	if sid == "" {
		return nil
	}
	for _, e := range p.entries {
		if !e.deleted && e.doc.Type() == t.Type() && item.SourceID(e.doc) == sid {
			return e
		}
	}
	return nil
}

// mutations lists deletes, then updates, then creates.
func (p *plan) mutations() []Mutation {
	var deletes, updates, creates []Mutation
	for _, e := range p.entries {
		switch {
		case e.id != "" && e.deleted:
			deletes = append(deletes, Mutation{Kind: MutationDelete, ItemID: e.id})
		case e.id != "" && e.dirty:
			updates = append(updates, Mutation{Kind: MutationUpdate, ItemID: e.id, Item: e.doc})
		case e.id == "" && !e.deleted:
			creates = append(creates, Mutation{Kind: MutationCreate, Item: e.doc})
		}
	}
	return append(append(deletes, updates...), creates...)
}
