package inventory

import (
	"context"
	"fmt"

	"github.com/osse101/craftbench/internal/crafting"
	"github.com/osse101/craftbench/internal/domain"
	"github.com/osse101/craftbench/internal/logger"
	"github.com/osse101/craftbench/internal/tags"
)

// ItemTagEditor edits the tag sets stored on inventory items.
type ItemTagEditor struct {
	inv crafting.Inventory
}

func NewItemTagEditor(inv crafting.Inventory) *ItemTagEditor {
	return &ItemTagEditor{inv: inv}
}

// List returns the item's tags filtered by query.
func (e *ItemTagEditor) List(ctx context.Context, user domain.User, actorID, itemID, query string) ([]tags.Entry, bool, error) {
	doc, err := e.find(ctx, user, actorID, itemID)
	if err != nil {
		return nil, false, err
	}
	entries, noResults := tags.Filter(tags.ItemTags(doc), query)
	return entries, noResults, nil
}

// Reformat applies edits to the item's tags and writes the item back. A
// rejected batch leaves the item unchanged.
func (e *ItemTagEditor) Reformat(ctx context.Context, user domain.User, actorID, itemID string, edits map[string]tags.Edit) (tags.Set, error) {
	log := logger.FromContext(ctx)
	log.Info("Reformat item tags called", "user_id", user.ID, "actor_id", actorID, "item_id", itemID, "edits", len(edits))

	doc, err := e.find(ctx, user, actorID, itemID)
	if err != nil {
		return nil, err
	}
	set, err := tags.Reformat(tags.ItemTags(doc), edits)
	if err != nil {
		log.Warn("Item tag edit rejected", "item_id", itemID, "error", err)
		return nil, err
	}
	next, err := tags.WithItemTags(doc, set)
	if err != nil {
		return nil, err
	}
	mutation := crafting.Mutation{Kind: crafting.MutationUpdate, ItemID: itemID, Item: next}
	if err := e.inv.Apply(ctx, actorID, []crafting.Mutation{mutation}); err != nil {
		return nil, err
	}
	return set, nil
}

// find returns the item after checking the user may edit the actor. Game
// masters may edit any actor.
func (e *ItemTagEditor) find(ctx context.Context, user domain.User, actorID, itemID string) (domain.Item, error) {
	if !user.IsGM() {
		actors, err := e.inv.OwnedActors(ctx, user.ID)
		if err != nil {
			return domain.Item{}, err
		}
		owned := false
		for _, a := range actors {
			if a.ID == actorID {
				owned = true
				break
			}
		}
		if !owned {
			return domain.Item{}, fmt.Errorf("%w: %s does not own %s", domain.ErrNoOwnedActor, user.ID, actorID)
		}
	}

	items, err := e.inv.Items(ctx, actorID)
	if err != nil {
		return domain.Item{}, err
	}
	for _, it := range items {
		if it.ID() == itemID {
			return it, nil
		}
	}
	return domain.Item{}, fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
}
