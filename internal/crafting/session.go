package crafting

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/craftbench/internal/concurrency"
	"github.com/osse101/craftbench/internal/domain"
	"github.com/osse101/craftbench/internal/logger"
	"github.com/osse101/craftbench/internal/quantity"
)

// Session is one open craft table: a recipe, the user crafting it and the
// actor whose inventory is used.
type Session struct {
	ID string

	mu       sync.Mutex
	recipe   *domain.Recipe
	user     domain.User
	inv      Inventory
	resolver *quantity.Resolver
	locks    *concurrency.LockManager

	state       State
	actors      []domain.Actor
	actor       *domain.Actor
	ingredients []IngredientStatus
	tagStatus   []TagStatus
	candidates  []*Candidate
	percent     float64
	enoughTags  bool
}

// View is a read-only copy of the session state.
type View struct {
	ID                 string             `json:"id"`
	RecipeID           string             `json:"recipeId"`
	RecipeName         string             `json:"recipeName"`
	RecipeType         domain.RecipeType  `json:"recipeType"`
	State              State              `json:"state"`
	Actors             []domain.Actor     `json:"actors"`
	ActorID            string             `json:"actorId,omitempty"`
	Percent            float64            `json:"percent"`
	Ingredients        []IngredientStatus `json:"ingredients,omitempty"`
	Tags               []TagStatus        `json:"tags,omitempty"`
	EnoughTags         bool               `json:"enoughTags"`
	Candidates         []Candidate        `json:"candidates,omitempty"`
	ConsumptionPercent float64            `json:"consumptionPercent"`
	AllowForceCraft    bool               `json:"allowForceCraft"`
}

// Result describes an applied craft.
type Result struct {
	Forced    bool       `json:"forced"`
	Consumed  int        `json:"consumed"`
	Produced  []Produced `json:"produced"`
	Mutations int        `json:"mutations"`
	View      View       `json:"session"`
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view()
}

func (s *Session) view() View {
	v := View{
		ID:                 s.ID,
		RecipeID:           s.recipe.ID,
		RecipeName:         s.recipe.Name,
		RecipeType:         s.recipe.Type,
		State:              s.state,
		Actors:             append([]domain.Actor(nil), s.actors...),
		Percent:            s.percent,
		Ingredients:        append([]IngredientStatus(nil), s.ingredients...),
		Tags:               append([]TagStatus(nil), s.tagStatus...),
		EnoughTags:         s.enoughTags,
		ConsumptionPercent: s.consumptionPercent(),
		AllowForceCraft:    s.recipe.Settings.AllowForceCraft,
	}
	if s.actor != nil {
		v.ActorID = s.actor.ID
	}
	for _, c := range s.candidates {
		cc := *c
		v.Candidates = append(v.Candidates, cc)
	}
	return v
}

// SelectActor switches the session to one of the user's owned actors.
func (s *Session) SelectActor(ctx context.Context, actorID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.actors {
		if s.actors[i].ID == actorID {
			a := s.actors[i]
			s.actor = &a
			s.reset(StateActorSelected)
			logger.FromContext(ctx).Info(LogMsgActorSelected, "session_id", s.ID, "actor_id", actorID)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", domain.ErrActorNotFound, actorID)
}

func (s *Session) reset(state State) {
	s.state = state
	s.ingredients = nil
	s.tagStatus = nil
	s.candidates = nil
	s.percent = 0
	s.enoughTags = false
}

// Evaluate reads the actor's inventory and recomputes what the recipe needs.
func (s *Session) Evaluate(ctx context.Context) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.evaluate(ctx); err != nil {
		return s.view(), err
	}
	return s.view(), nil
}

func (s *Session) evaluate(ctx context.Context) error {
	if s.actor == nil {
		return fmt.Errorf("%w: no actor selected", domain.ErrInvalidState)
	}
	s.state = StateEvaluating

	if s.recipe.Type == domain.RecipeTypeText {
		s.percent = FullPercent
		s.state = StateReadyToCraft
		return nil
	}

	inv, err := s.inv.Items(ctx, s.actor.ID)
	if err != nil {
		s.state = StateActorSelected
		return fmt.Errorf("failed to read inventory: %w", err)
	}
	if len(inv) == 0 {
		s.reset(StateInsufficient)
		return fmt.Errorf("%w: %s", domain.ErrActorHasNoItems, s.actor.Name)
	}

	switch s.recipe.Type {
	case domain.RecipeTypeItems:
		s.ingredients, s.percent = evaluateItems(s.recipe, inv, s.resolver)
	case domain.RecipeTypeTags:
		s.tagStatus, s.candidates, s.enoughTags = evaluateTags(s.recipe, inv, s.resolver)
		s.percent = allocate(s.tagStatus, s.candidates)
	}
	s.refreshState()

	logger.FromContext(ctx).Debug(LogMsgEvaluated,
		"session_id", s.ID, "recipe_id", s.recipe.ID, "state", s.state, "percent", s.percent)
	return nil
}

func (s *Session) refreshState() {
	ready := false
	switch s.recipe.Type {
	case domain.RecipeTypeItems:
		ready = s.percent >= FullPercent
	case domain.RecipeTypeTags:
		ready = s.enoughTags && s.consumptionPercent() >= FullPercent
	case domain.RecipeTypeText:
		ready = true
	}
	if ready {
		s.state = StateReadyToCraft
	} else {
		s.state = StateInsufficient
	}
}

// ConsumptionPercent is the share of required tag quantity covered by the
// current allocation.
func (s *Session) ConsumptionPercent() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.consumptionPercent()
}

func (s *Session) consumptionPercent() float64 {
	if s.recipe.Type != domain.RecipeTypeTags {
		return 0
	}
	return allocate(s.tagStatus, s.candidates)
}

// SetConsumeQuantity allocates q units of a candidate item to the craft. A
// value above the item's on-hand count is rejected and the previous value kept.
func (s *Session) SetConsumeQuantity(itemID string, q int) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.recipe.Type != domain.RecipeTypeTags || s.candidates == nil {
		return s.view(), fmt.Errorf("%w: nothing to allocate", domain.ErrInvalidState)
	}
	if q < 0 {
		return s.view(), fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, q)
	}

	for _, c := range s.candidates {
		if c.ItemID != itemID {
			continue
		}
		if q > c.OnHand {
			return s.view(), fmt.Errorf("%w: %s has %d", domain.ErrInsufficientItemQuantity, c.Name, c.OnHand)
		}
		c.ConsumeQuantity = q
		c.Selected = q > 0
		s.percent = allocate(s.tagStatus, s.candidates)
		s.refreshState()
		return s.view(), nil
	}
	return s.view(), fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
}

// Craft re-reads the inventory, builds the full change set and applies it
// as one batch. With force, an incomplete recipe is crafted when the recipe
// allows it, consuming whatever is available.
func (s *Session) Craft(ctx context.Context, force bool) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	log := logger.FromContext(ctx)

	if s.recipe.Type == domain.RecipeTypeText {
		return nil, fmt.Errorf("%w: text recipes have nothing to craft", domain.ErrInvalidState)
	}
	if s.actor == nil {
		return nil, fmt.Errorf("%w: no actor selected", domain.ErrInvalidState)
	}

	targets := s.recipe.Targets()
	if len(targets) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoTarget, s.recipe.Name)
	}

	unlock := s.locks.Lock(s.actor.ID)
	defer unlock()

	allocations := map[string]int{}
	for _, c := range s.candidates {
		if c.Selected {
			allocations[c.ItemID] = c.ConsumeQuantity
		}
	}

	if err := s.evaluate(ctx); err != nil {
		return nil, err
	}
	if s.recipe.Type == domain.RecipeTypeTags {
		s.restoreAllocations(allocations)
	}

	forced := false
	if s.state != StateReadyToCraft {
		if !force || !s.recipe.Settings.AllowForceCraft {
			log.Info(LogMsgCraftRejected, "session_id", s.ID, "recipe_id", s.recipe.ID, "percent", s.percent)
			return nil, fmt.Errorf("%w: %s is %.0f%% complete", domain.ErrInsufficientQuantity, s.recipe.Name, s.percent)
		}
		forced = true
	}

	inv, err := s.inv.Items(ctx, s.actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory: %w", err)
	}

	p := newPlan(inv, s.resolver)
	switch s.recipe.Type {
	case domain.RecipeTypeItems:
		err = p.deductIngredients(s.recipe)
	case domain.RecipeTypeTags:
		err = p.deductCandidates(s.candidates)
	}
	if err != nil {
		return nil, err
	}
	if err := p.produce(targets); err != nil {
		return nil, err
	}

	mutations := p.mutations()
	if err := s.inv.Apply(ctx, s.actor.ID, mutations); err != nil {
		log.Error(LogMsgApplyFailed, "session_id", s.ID, "actor_id", s.actor.ID, "error", err)
		return nil, fmt.Errorf("failed to apply craft: %w", err)
	}
	s.state = StateCrafted
	log.Info(LogMsgCraftApplied,
		"session_id", s.ID, "user_id", s.user.ID, "recipe_id", s.recipe.ID, "actor_id", s.actor.ID,
		"forced", forced, "consumed", p.consumed, "mutations", len(mutations))

	res := &Result{
		Forced:    forced,
		Consumed:  p.consumed,
		Produced:  p.produced,
		Mutations: len(mutations),
	}

	if err := s.evaluate(ctx); err != nil {
		log.Debug("Re-evaluation after craft failed", "session_id", s.ID, "error", err)
	}
	res.View = s.view()
	return res, nil
}

// restoreAllocations re-applies allocations after a fresh evaluation,
// clamped to what each item still holds.
func (s *Session) restoreAllocations(allocations map[string]int) {
	for _, c := range s.candidates {
		if q, ok := allocations[c.ItemID]; ok {
			c.ConsumeQuantity = min(q, c.OnHand)
			c.Selected = c.ConsumeQuantity > 0
		}
	}
	s.percent = allocate(s.tagStatus, s.candidates)
	s.refreshState()
}
