package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/osse101/craftbench/internal/domain"
	"github.com/osse101/craftbench/internal/logger"
	"github.com/osse101/craftbench/internal/validation"
)

// Sentinel errors for the seed loader
var (
	ErrDuplicateActor = errors.New("duplicate actor id")

	ErrInvalidSeed = errors.New("invalid inventory seed")
)

// Seed is the JSON file format for preloading actors and their items.
type Seed struct {
	Actors []SeedActor `json:"actors"`
}

// SeedActor is one actor and its item documents.
type SeedActor struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Img    string            `json:"img,omitempty"`
	Owners []string          `json:"owners"`
	Items  []json.RawMessage `json:"items,omitempty"`
}

// Seeder receives seeded actors. Both Memory and the Postgres inventory
// repository satisfy it.
type Seeder interface {
	PutActor(ctx context.Context, actor domain.Actor, items []domain.Item) error
}

// SyncResult counts what a sync wrote.
type SyncResult struct {
	Actors int
	Items  int
}

// Loader handles loading and validating inventory seed files
type Loader interface {
	Load(path string) (*Seed, error)
	Validate(seed *Seed) error
	Sync(ctx context.Context, seed *Seed, target Seeder) (*SyncResult, error)
}

type seedLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &seedLoader{
		schemaValidator: validation.NewSchemaValidator(),
	}
}

// Load reads, schema-checks and parses a seed file
func (l *seedLoader) Load(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadSeedFileFailed, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, validation.InventorySchema); err != nil {
		return nil, fmt.Errorf("schema validation failed for %s: %w", path, err)
	}

	var seed Seed
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf(ErrMsgParseSeedFailed, err)
	}
	return &seed, nil
}

// Validate checks the semantic rules the schema cannot express
func (l *seedLoader) Validate(seed *Seed) error {
	if seed == nil {
		return fmt.Errorf("%w: %s", ErrInvalidSeed, ErrMsgSeedNil)
	}

	seen := make(map[string]bool, len(seed.Actors))
	for i, a := range seed.Actors {
		if a.ID == "" {
			return fmt.Errorf(ErrFmtActorEmptyID, ErrInvalidSeed, i)
		}
		if seen[a.ID] {
			return fmt.Errorf("%w: '%s'", ErrDuplicateActor, a.ID)
		}
		seen[a.ID] = true
		if a.Name == "" {
			return fmt.Errorf(ErrFmtActorEmptyName, ErrInvalidSeed, a.ID)
		}
		for j, raw := range a.Items {
			if _, err := domain.NewItem(raw); err != nil {
				return fmt.Errorf(ErrFmtActorBadItem, ErrInvalidSeed, a.ID, j, err)
			}
		}
	}
	return nil
}

// Sync writes every seeded actor to target, replacing existing ones
func (l *seedLoader) Sync(ctx context.Context, seed *Seed, target Seeder) (*SyncResult, error) {
	log := logger.FromContext(ctx)

	if err := l.Validate(seed); err != nil {
		return nil, err
	}

	result := &SyncResult{}
	for _, a := range seed.Actors {
		items := make([]domain.Item, 0, len(a.Items))
		for _, raw := range a.Items {
			it, err := domain.NewItem(raw)
			if err != nil {
				return nil, err
			}
			items = append(items, it)
		}

		actor := domain.Actor{ID: a.ID, Name: a.Name, Img: a.Img, Owners: a.Owners}
		if err := target.PutActor(ctx, actor, items); err != nil {
			return nil, fmt.Errorf("failed to seed actor %s: %w", a.ID, err)
		}
		log.Debug(LogMsgActorSeeded, "actor_id", a.ID, "items", len(items))

		result.Actors++
		result.Items += len(items)
	}

	log.Info(LogMsgSeedLoaded, "actors", result.Actors, "items", result.Items)
	return result, nil
}
