package crafting

import (
	"context"

	"github.com/osse101/craftbench/internal/domain"
)

// MutationKind is one kind of inventory change.
type MutationKind string

const (
	MutationCreate MutationKind = "create"
	MutationUpdate MutationKind = "update"
	MutationDelete MutationKind = "delete"
)

// Mutation is one change in a craft batch. Update carries the full new
// document; Create carries a document without an instance id.
type Mutation struct {
	Kind   MutationKind `json:"kind"`
	ItemID string       `json:"itemId,omitempty"`
	Item   domain.Item  `json:"item,omitempty"`
}

// Inventory is the host actor API the engine crafts against.
type Inventory interface {
	// OwnedActors lists actors the user owns.
	OwnedActors(ctx context.Context, userID string) ([]domain.Actor, error)
	// Items lists the actor's item documents. Each carries its instance id.
	Items(ctx context.Context, actorID string) ([]domain.Item, error)
	// Apply performs every mutation or none of them.
	Apply(ctx context.Context, actorID string, mutations []Mutation) error
}

// RecipeSource returns recipes by id.
type RecipeSource interface {
	Get(ctx context.Context, id string) (*domain.Recipe, error)
}
