package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/craftbench/internal/crafting"
	"github.com/osse101/craftbench/internal/database"
	"github.com/osse101/craftbench/internal/domain"
)

// InventoryRepository implements crafting.Inventory on the actors and
// actor_items tables.
type InventoryRepository struct {
	db *pgxpool.Pool
}

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(db *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// PutActor replaces an actor and all of its items.
func (r *InventoryRepository) PutActor(ctx context.Context, actor domain.Actor, items []domain.Item) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer database.SafeRollback(ctx, tx)

	owners := actor.Owners
	if owners == nil {
		owners = []string{}
	}
	_, err = tx.Exec(ctx, `
		INSERT INTO actors (actor_id, name, img, owners)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (actor_id)
		DO UPDATE SET name = EXCLUDED.name, img = EXCLUDED.img, owners = EXCLUDED.owners`,
		actor.ID, actor.Name, actor.Img, owners)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveActor, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM actor_items WHERE actor_id = $1`, actor.ID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveActor, err)
	}
	for _, it := range items {
		id := it.ID()
		if id == "" {
			id = uuid.NewString()
		}
		if err := insertItem(ctx, tx, actor.ID, id, it); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// OwnedActors lists actors whose owners include userID, in creation order.
func (r *InventoryRepository) OwnedActors(ctx context.Context, userID string) ([]domain.Actor, error) {
	rows, err := r.db.Query(ctx, `
		SELECT actor_id, name, img, owners FROM actors
		WHERE $1 = ANY(owners)
		ORDER BY created_at, actor_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetActors, err)
	}
	defer rows.Close()

	var actors []domain.Actor
	for rows.Next() {
		var a domain.Actor
		if err := rows.Scan(&a.ID, &a.Name, &a.Img, &a.Owners); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetActors, err)
		}
		actors = append(actors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetActors, err)
	}
	return actors, nil
}

// Items lists the actor's item documents in insertion order.
func (r *InventoryRepository) Items(ctx context.Context, actorID string) ([]domain.Item, error) {
	if err := actorExists(ctx, r.db, actorID, false); err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT item_id, doc::text FROM actor_items
		WHERE actor_id = $1
		ORDER BY position`, actorID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetItems, err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var id, doc string
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetItems, err)
		}
		it, err := domain.NewItem([]byte(doc))
		if err != nil {
			return nil, err
		}
		if it, err = it.Set(domain.ItemPathID, id); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetItems, err)
	}
	return items, nil
}

// Apply runs every mutation in one transaction with the actor row locked.
func (r *InventoryRepository) Apply(ctx context.Context, actorID string, mutations []crafting.Mutation) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer database.SafeRollback(ctx, tx)

	if err := actorExists(ctx, tx, actorID, true); err != nil {
		return err
	}

	for _, mu := range mutations {
		switch mu.Kind {
		case crafting.MutationDelete:
			tag, err := tx.Exec(ctx,
				`DELETE FROM actor_items WHERE item_id = $1 AND actor_id = $2`, mu.ItemID, actorID)
			if err != nil {
				return fmt.Errorf("%s: %w", ErrMsgFailedToApplyMutation, err)
			}
			if tag.RowsAffected() == 0 {
				return fmt.Errorf("%w: %s", domain.ErrItemNotFound, mu.ItemID)
			}
		case crafting.MutationUpdate:
			doc, err := mu.Item.Set(domain.ItemPathID, mu.ItemID)
			if err != nil {
				return err
			}
			tag, err := tx.Exec(ctx,
				`UPDATE actor_items SET doc = $3::jsonb WHERE item_id = $1 AND actor_id = $2`,
				mu.ItemID, actorID, doc.String())
			if err != nil {
				return fmt.Errorf("%s: %w", ErrMsgFailedToApplyMutation, err)
			}
			if tag.RowsAffected() == 0 {
				return fmt.Errorf("%w: %s", domain.ErrItemNotFound, mu.ItemID)
			}
		case crafting.MutationCreate:
			if err := insertItem(ctx, tx, actorID, uuid.NewString(), mu.Item); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: mutation kind %q", domain.ErrInvalidInput, mu.Kind)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func actorExists(ctx context.Context, q querier, actorID string, lock bool) error {
	query := `SELECT actor_id FROM actors WHERE actor_id = $1`
	if lock {
		query += ` FOR UPDATE`
	}
	var id string
	if err := q.QueryRow(ctx, query, actorID).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: %s", domain.ErrActorNotFound, actorID)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToGetActors, err)
	}
	return nil
}

func insertItem(ctx context.Context, tx pgx.Tx, actorID, itemID string, it domain.Item) error {
	doc, err := it.Set(domain.ItemPathID, itemID)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx,
		`INSERT INTO actor_items (item_id, actor_id, doc) VALUES ($1, $2, $3::jsonb)`,
		itemID, actorID, doc.String())
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToApplyMutation, err)
	}
	return nil
}
