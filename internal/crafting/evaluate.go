package crafting

import (
	"maps"
	"slices"

	"github.com/osse101/craftbench/internal/domain"
	"github.com/osse101/craftbench/internal/item"
	"github.com/osse101/craftbench/internal/quantity"
	"github.com/osse101/craftbench/internal/tags"
)

// IngredientStatus is how much of one ingredient the actor holds.
type IngredientStatus struct {
	SourceID  string `json:"sourceId"`
	Name      string `json:"name"`
	Img       string `json:"img,omitempty"`
	Required  int    `json:"required"`
	Held      int    `json:"held"`
	Remaining int    `json:"remaining"`
}

// TagStatus compares a required tag with what the actor's items carry.
type TagStatus struct {
	Tag       string `json:"tag"`
	Required  int    `json:"required"`
	Available int    `json:"available"`
	Allocated int    `json:"allocated"`
}

// Candidate is an inventory item carrying at least one required tag.
type Candidate struct {
	ItemID          string   `json:"itemId"`
	Name            string   `json:"name"`
	Img             string   `json:"img,omitempty"`
	OnHand          int      `json:"onHand"`
	Tags            tags.Set `json:"tags"`
	ConsumeQuantity int      `json:"consumeQuantity"`
	Selected        bool     `json:"selected"`
}

// evaluateItems computes per-ingredient remaining counts and the completion
// percentage. An empty ingredient set is never complete.
func evaluateItems(r *domain.Recipe, inv []domain.Item, res *quantity.Resolver) ([]IngredientStatus, float64) {
	held := map[string]int{}
	for _, doc := range inv {
		held[item.SourceID(doc)] += quantity.Held(doc, res.ResolveItem(doc))
	}

	statuses := make([]IngredientStatus, 0, len(r.Ingredients))
	var sumReq, sumRem int
	for _, sid := range slices.Sorted(maps.Keys(r.Ingredients)) {
		ref := r.Ingredients[sid]
		req := quantity.Required(ref, res.ResolveItem(ref).Path)
		have := held[sid]
		st := IngredientStatus{
			SourceID:  sid,
			Name:      ref.Name(),
			Img:       ref.Img(),
			Required:  req,
			Held:      have,
			Remaining: max(0, req-have),
		}
		statuses = append(statuses, st)
		sumReq += req
		sumRem += st.Remaining
	}

	if sumReq <= 0 {
		return statuses, 0
	}
	return statuses, FullPercent * float64(sumReq-sumRem) / float64(sumReq)
}

// evaluateTags totals the required tags over the inventory and lists the
// items that could be consumed. Each carrying item adds its tag quantity once,
// whatever its stack size.
func evaluateTags(r *domain.Recipe, inv []domain.Item, res *quantity.Resolver) ([]TagStatus, []*Candidate, bool) {
	available := map[string]int{}
	var candidates []*Candidate

	for _, doc := range inv {
		onHand := quantity.Held(doc, res.ResolveItem(doc))
		carried := tags.Set{}
		for tag, n := range tags.ItemTags(doc) {
			if _, ok := r.Tags[tag]; ok {
				carried[tag] = n
				available[tag] += n
			}
		}
		if len(carried) == 0 {
			continue
		}
		candidates = append(candidates, &Candidate{
			ItemID: doc.ID(),
			Name:   doc.Name(),
			Img:    doc.Img(),
			OnHand: onHand,
			Tags:   carried,
		})
	}

	statuses := make([]TagStatus, 0, len(r.Tags))
	enough := len(r.Tags) > 0
	for _, tag := range slices.Sorted(maps.Keys(r.Tags)) {
		st := TagStatus{Tag: tag, Required: r.Tags[tag], Available: available[tag]}
		if st.Available < st.Required {
			enough = false
		}
		statuses = append(statuses, st)
	}
	return statuses, candidates, enough
}

// allocate fills in Allocated on statuses from the selected candidates and
// returns the consumption percentage: the share of required tag quantity
// covered by the allocation.
func allocate(statuses []TagStatus, candidates []*Candidate) float64 {
	allocated := map[string]int{}
	for _, c := range candidates {
		if !c.Selected {
			continue
		}
		for tag, n := range c.Tags {
			allocated[tag] += c.ConsumeQuantity * n
		}
	}

	var sumReq, sumCovered int
	for i := range statuses {
		st := &statuses[i]
		st.Allocated = allocated[st.Tag]
		sumReq += st.Required
		sumCovered += min(st.Allocated, st.Required)
	}
	if sumReq <= 0 {
		return 0
	}
	return FullPercent * float64(sumCovered) / float64(sumReq)
}
