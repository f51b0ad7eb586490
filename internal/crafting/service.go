package crafting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/craftbench/internal/concurrency"
	"github.com/osse101/craftbench/internal/domain"
	"github.com/osse101/craftbench/internal/event"
	"github.com/osse101/craftbench/internal/logger"
	"github.com/osse101/craftbench/internal/quantity"
)

// Session cache defaults
const (
	DefaultSessionCapacity = 512
	DefaultSessionTTL      = time.Hour
)

// Service defines the interface for crafting operations
type Service interface {
	Open(ctx context.Context, user domain.User, recipeID string) (*Session, error)
	Get(ctx context.Context, user domain.User, sessionID string) (*Session, error)
	Craft(ctx context.Context, user domain.User, sessionID string, force bool) (*Result, error)
	Close(ctx context.Context, user domain.User, sessionID string)
}

type service struct {
	recipes     RecipeSource
	inv         Inventory
	resolver    *quantity.Resolver
	lockManager *concurrency.LockManager
	bus         event.Bus
	sessions    *expirable.LRU[string, *ownedSession]
}

type ownedSession struct {
	userID  string
	session *Session
}

// NewService creates a new crafting service. Idle sessions expire after ttl.
func NewService(recipes RecipeSource, inv Inventory, resolver *quantity.Resolver, lockManager *concurrency.LockManager, bus event.Bus, ttl time.Duration) Service {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	onEvict := func(id string, _ *ownedSession) {
		logger.FromContext(context.Background()).Debug(LogMsgSessionExpired, "session_id", id)
	}
	return &service{
		recipes:     recipes,
		inv:         inv,
		resolver:    resolver,
		lockManager: lockManager,
		bus:         bus,
		sessions:    expirable.NewLRU[string, *ownedSession](DefaultSessionCapacity, onEvict, ttl),
	}
}

// Open starts a session on a snapshot of the recipe. The user's active
// character is preselected when owned, otherwise the first owned actor.
func (s *service) Open(ctx context.Context, user domain.User, recipeID string) (*Session, error) {
	log := logger.FromContext(ctx)
	log.Info("Open called", "user_id", user.ID, "recipe_id", recipeID)

	recipe, err := s.recipes.Get(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	actors, err := s.inv.OwnedActors(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list actors: %w", err)
	}
	if len(actors) == 0 {
		log.Warn("User owns no actor", "user_id", user.ID)
		return nil, fmt.Errorf("%w: %s", domain.ErrNoOwnedActor, user.ID)
	}

	sess := &Session{
		ID:       uuid.NewString(),
		recipe:   recipe,
		user:     user,
		inv:      s.inv,
		resolver: s.resolver,
		locks:    s.lockManager,
		state:    StateIdle,
		actors:   actors,
	}

	selected := actors[0].ID
	for _, a := range actors {
		if user.CharacterID != "" && a.ID == user.CharacterID {
			selected = a.ID
			break
		}
	}
	if err := sess.SelectActor(ctx, selected); err != nil {
		return nil, err
	}

	if _, err := sess.Evaluate(ctx); err != nil && !errors.Is(err, domain.ErrActorHasNoItems) {
		return nil, err
	}

	s.sessions.Add(sess.ID, &ownedSession{userID: user.ID, session: sess})
	log.Info(LogMsgSessionOpened, "session_id", sess.ID, "recipe_id", recipeID, "state", sess.State())
	return sess, nil
}

// Get returns a session opened by user.
func (s *service) Get(ctx context.Context, user domain.User, sessionID string) (*Session, error) {
	owned, ok := s.sessions.Get(sessionID)
	if !ok || owned.userID != user.ID {
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, sessionID)
	}
	return owned.session, nil
}

// Craft crafts in the session and publishes the outcome.
func (s *service) Craft(ctx context.Context, user domain.User, sessionID string, force bool) (*Result, error) {
	log := logger.FromContext(ctx)
	log.Info("Craft called", "user_id", user.ID, "session_id", sessionID, "force", force)

	sess, err := s.Get(ctx, user, sessionID)
	if err != nil {
		return nil, err
	}

	res, err := sess.Craft(ctx, force)
	if err != nil {
		return nil, err
	}

	produced := make([]event.ProducedItem, 0, len(res.Produced))
	for _, p := range res.Produced {
		produced = append(produced, event.ProducedItem{Name: p.Name, Quantity: p.Quantity})
	}
	if s.bus != nil {
		evt := event.NewItemCraftedEvent(event.ItemCraftedPayloadV1{
			UserID:     user.ID,
			ActorID:    res.View.ActorID,
			RecipeID:   res.View.RecipeID,
			RecipeName: res.View.RecipeName,
			RecipeType: string(res.View.RecipeType),
			Forced:     res.Forced,
			Consumed:   res.Consumed,
			Produced:   produced,
		})
		if err := s.bus.Publish(ctx, evt); err != nil {
			log.Warn(LogMsgPublishFailed, "error", err)
		}
	}
	return res, nil
}

// Close drops the session.
func (s *service) Close(ctx context.Context, user domain.User, sessionID string) {
	if owned, ok := s.sessions.Peek(sessionID); ok && owned.userID == user.ID {
		s.sessions.Remove(sessionID)
		logger.FromContext(ctx).Info(LogMsgSessionClosed, "session_id", sessionID)
	}
}
