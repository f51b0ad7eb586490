// Package catalog manages the world's recipe file: which file is open, who
// may edit it, and how it is saved.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/osse101/craftbench/internal/coordinator"
	"github.com/osse101/craftbench/internal/domain"
	"github.com/osse101/craftbench/internal/event"
	"github.com/osse101/craftbench/internal/logger"
	"github.com/osse101/craftbench/internal/quantity"
	"github.com/osse101/craftbench/internal/recipe"
	"github.com/osse101/craftbench/internal/settings"
	"github.com/osse101/craftbench/internal/storage"
)

// Writer persists save requests. coordinator.Coordinator implements it.
type Writer interface {
	RequestWrite(ctx context.Context, req coordinator.SaveRequest) (string, error)
}

// FilesView describes the open file and the known files.
type FilesView struct {
	SavePath string           `json:"savePath"`
	Current  string           `json:"current"`
	Files    []string         `json:"files"`
	Stored   []string         `json:"stored"`
	Info     storage.FileInfo `json:"fileInfo"`
}

// Service defines the interface for catalog operations
type Service interface {
	Initialize(ctx context.Context) ([]storage.Warning, error)
	Recipes() *recipe.Store
	FileInfo() storage.FileInfo
	Files(ctx context.Context) (*FilesView, error)

	CanEdit(ctx context.Context, user domain.User) bool
	RequireEdit(ctx context.Context, user domain.User) error

	Save(ctx context.Context, user domain.User) (string, error)
	SelectFile(ctx context.Context, user domain.User, file string) ([]storage.Warning, error)
	Reload(ctx context.Context, user domain.User) ([]storage.Warning, error)
	CreateFile(ctx context.Context, user domain.User, name string) (string, error)
	Clear(ctx context.Context, user domain.User) error
	DeleteRecipe(ctx context.Context, user domain.User, id string) error
	Close(ctx context.Context, user domain.User) (bool, error)

	AddIngredient(ctx context.Context, user domain.User, recipeID string, doc domain.Item) (string, error)
	Search(ctx context.Context, user domain.User, query string) recipe.SearchResult
}

// Config carries the environment the catalog runs in.
type Config struct {
	Env        storage.FileInfo
	KnownTypes []string
}

type service struct {
	store     *recipe.Store
	resolver  *quantity.Resolver
	settings  *settings.Settings
	persister *storage.Persister
	writer    Writer
	bus       event.Bus
	cfg       Config

	mu   sync.RWMutex
	info storage.FileInfo
}

// NewService creates a new catalog service
func NewService(store *recipe.Store, resolver *quantity.Resolver, st *settings.Settings, persister *storage.Persister, writer Writer, bus event.Bus, cfg Config) Service {
	return &service{
		store:     store,
		resolver:  resolver,
		settings:  st,
		persister: persister,
		writer:    writer,
		bus:       bus,
		cfg:       cfg,
		info:      cfg.Env,
	}
}

// NewPerformer returns the write function the responsible session runs for
// every save request.
func NewPerformer(p *storage.Persister) coordinator.PerformFunc {
	return func(ctx context.Context, req coordinator.SaveRequest) (string, error) {
		return p.Save(ctx, req.Folder, req.File, req.Recipes, req.Info)
	}
}

func (s *service) Recipes() *recipe.Store {
	return s.store
}

func (s *service) FileInfo() storage.FileInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.info
}

func (s *service) setInfo(info storage.FileInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.info = info
}

// Initialize seeds the quantity table and loads the current file.
func (s *service) Initialize(ctx context.Context) ([]storage.Warning, error) {
	log := logger.FromContext(ctx)

	table, err := settings.EnsureQuantityTable(ctx, s.settings, s.cfg.Env.System, s.cfg.KnownTypes)
	if err != nil {
		return nil, err
	}
	s.resolver.Replace(table)

	warnings, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	log.Info(LogMsgInitialized, "recipes", s.store.Len(), "system", s.cfg.Env.System, "world", s.cfg.Env.World)
	return warnings, nil
}

// load replaces the store with the current file's recipes. A missing file
// loads as empty.
func (s *service) load(ctx context.Context) ([]storage.Warning, error) {
	log := logger.FromContext(ctx)

	folder, err := s.settings.SavePath(ctx)
	if err != nil {
		return nil, err
	}
	file, err := s.settings.CurrentFile(ctx)
	if err != nil {
		return nil, err
	}

	loaded, err := s.persister.Load(ctx, folder, file, s.cfg.Env)
	if err != nil {
		if !errors.Is(err, domain.ErrFileNotFound) {
			return nil, err
		}
		log.Warn(LogMsgFileMissing, "folder", folder, "file", file)
		loaded = &storage.Loaded{
			Recipes: domain.RecipeCollection{},
			Info:    s.cfg.Env,
			Warnings: []storage.Warning{{
				Code:    storage.WarningEmptyFile,
				Message: fmt.Sprintf("no recipe file %q in %q", file, folder),
			}},
		}
	}

	s.store.Replace(loaded.Recipes)
	s.setInfo(loaded.Info)
	return loaded.Warnings, nil
}

func (s *service) Files(ctx context.Context) (*FilesView, error) {
	savePath, err := s.settings.SavePath(ctx)
	if err != nil {
		return nil, err
	}
	current, err := s.settings.CurrentFile(ctx)
	if err != nil {
		return nil, err
	}
	files, err := s.settings.RecipeFiles(ctx)
	if err != nil {
		return nil, err
	}
	stored, err := s.persister.List(ctx, savePath)
	if err != nil {
		return nil, err
	}
	return &FilesView{
		SavePath: savePath,
		Current:  current,
		Files:    files,
		Stored:   stored,
		Info:     s.FileInfo(),
	}, nil
}

// CanEdit reports whether user may change recipes. Game masters always may;
// players may when the allow-player-edit setting is on.
func (s *service) CanEdit(ctx context.Context, user domain.User) bool {
	allow, err := s.settings.AllowPlayerEdit(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn("Failed to read player edit setting", "error", err)
	}
	return user.CanEdit(allow)
}

func (s *service) RequireEdit(ctx context.Context, user domain.User) error {
	if !s.CanEdit(ctx, user) {
		return fmt.Errorf("%w: user %s", domain.ErrNoEditRights, user.ID)
	}
	return nil
}

// Save writes the open collection to the current file through the
// responsible session.
func (s *service) Save(ctx context.Context, user domain.User) (string, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSaveCalled, "user_id", user.ID)

	if err := s.RequireEdit(ctx, user); err != nil {
		return "", err
	}
	return s.save(ctx, user, s.persistable(ctx))
}

// persistable clears transient editor state and returns the collection to write.
func (s *service) persistable(ctx context.Context) domain.RecipeCollection {
	s.store.ResetEditState(ctx)
	return s.store.Snapshot()
}

func (s *service) save(ctx context.Context, user domain.User, recipes domain.RecipeCollection) (string, error) {
	folder, err := s.settings.SavePath(ctx)
	if err != nil {
		return "", err
	}
	file, err := s.settings.CurrentFile(ctx)
	if err != nil {
		return "", err
	}
	return s.saveTo(ctx, user, folder, file, recipes, s.FileInfo())
}

func (s *service) saveTo(ctx context.Context, user domain.User, folder, file string, recipes domain.RecipeCollection, info storage.FileInfo) (string, error) {
	if info.IsZero() {
		info = s.cfg.Env
	}
	path, err := s.writer.RequestWrite(ctx, coordinator.SaveRequest{
		UserID:  user.ID,
		Folder:  folder,
		File:    file,
		Recipes: recipes,
		Info:    info,
	})
	if err != nil {
		return "", err
	}
	s.publish(ctx, event.NewRecipeSavedEvent(user.ID, folder, file, path, len(recipes)))
	return path, nil
}

// SelectFile switches the open file. Editors save the old file first; if
// that save fails the switch is abandoned.
func (s *service) SelectFile(ctx context.Context, user domain.User, file string) ([]storage.Warning, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSelectFileCalled, "user_id", user.ID, "file", file)

	file = strings.TrimSpace(file)
	if file == "" {
		return nil, fmt.Errorf("%w: empty file name", domain.ErrInvalidInput)
	}
	previous, err := s.settings.CurrentFile(ctx)
	if err != nil {
		return nil, err
	}

	if s.CanEdit(ctx, user) {
		if _, err := s.save(ctx, user, s.persistable(ctx)); err != nil {
			return nil, err
		}
	}

	if err := s.settings.SetCurrentFile(ctx, file); err != nil {
		return nil, err
	}
	if err := s.settings.AddRecipeFile(ctx, file); err != nil {
		return nil, err
	}
	warnings, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, event.NewFileSelectedEvent(user.ID, file, previous))
	return warnings, nil
}

// Reload discards in-memory changes and reads the current file again.
func (s *service) Reload(ctx context.Context, user domain.User) ([]storage.Warning, error) {
	logger.FromContext(ctx).Info("Reload called", "user_id", user.ID)
	return s.load(ctx)
}

// CreateFile writes an empty file named name and makes it current.
func (s *service) CreateFile(ctx context.Context, user domain.User, name string) (string, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCreateFileCalled, "user_id", user.ID, "name", name)

	if err := s.RequireEdit(ctx, user); err != nil {
		return "", err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: empty file name", domain.ErrInvalidInput)
	}
	folder, err := s.settings.SavePath(ctx)
	if err != nil {
		return "", err
	}

	path, err := s.saveTo(ctx, user, folder, name, domain.RecipeCollection{}, s.cfg.Env)
	if err != nil {
		return "", err
	}
	if err := s.settings.SetCurrentFile(ctx, name); err != nil {
		return "", err
	}
	if err := s.settings.AddRecipeFile(ctx, name); err != nil {
		return "", err
	}
	s.store.Clear()
	s.setInfo(s.cfg.Env)
	return path, nil
}

// confirm asks the context's confirmer. Declining and cancelling both
// return ErrCancelled.
func confirm(ctx context.Context, p Prompt) error {
	ok, err := ConfirmerFrom(ctx).Confirm(ctx, p)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCancelled, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrCancelled, p.Kind)
	}
	return nil
}

// Clear removes every recipe and saves the empty file after confirmation.
func (s *service) Clear(ctx context.Context, user domain.User) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgClearCalled, "user_id", user.ID)

	if err := s.RequireEdit(ctx, user); err != nil {
		return err
	}
	if err := confirm(ctx, Prompt{Kind: PromptClearFile, Title: PromptTitleClearFile, Message: PromptTextClearFile}); err != nil {
		log.Info(LogMsgCancelled, "action", PromptClearFile)
		return err
	}

	if _, err := s.save(ctx, user, domain.RecipeCollection{}); err != nil {
		return err
	}
	s.store.Clear()
	return nil
}

// DeleteRecipe removes a recipe after confirmation.
func (s *service) DeleteRecipe(ctx context.Context, user domain.User, id string) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgDeleteCalled, "user_id", user.ID, "recipe_id", id)

	if err := s.RequireEdit(ctx, user); err != nil {
		return err
	}
	r, err := s.store.Get(ctx, id)
	if errors.Is(err, domain.ErrRecipeNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	prompt := Prompt{
		Kind:    PromptDeleteRecipe,
		Title:   PromptTitleDeleteRecipe,
		Message: fmt.Sprintf("Delete recipe %q? This cannot be undone.", r.Name),
	}
	if err := confirm(ctx, prompt); err != nil {
		log.Info(LogMsgCancelled, "action", PromptDeleteRecipe, "recipe_id", id)
		return err
	}
	return s.store.Delete(ctx, id)
}

// Close ends an editing session. Editors are asked whether to save; a
// declined prompt closes without saving, a cancelled one keeps the session
// open. It reports whether a save happened.
func (s *service) Close(ctx context.Context, user domain.User) (bool, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCloseCalled, "user_id", user.ID)

	if !s.CanEdit(ctx, user) {
		s.store.ResetEditState(ctx)
		return false, nil
	}

	ok, err := ConfirmerFrom(ctx).Confirm(ctx, Prompt{
		Kind:    PromptSaveOnClose,
		Title:   PromptTitleSaveOnClose,
		Message: PromptTextSaveOnClose,
	})
	if err != nil {
		log.Info(LogMsgCancelled, "action", PromptSaveOnClose)
		return false, fmt.Errorf("%w: %v", domain.ErrCancelled, err)
	}
	if ok {
		if _, err := s.Save(ctx, user); err != nil {
			return false, err
		}
	}
	s.store.ResetEditState(ctx)
	return ok, nil
}

// AddIngredient adds doc to the recipe's ingredients. An item that is also
// a target needs confirmation first.
func (s *service) AddIngredient(ctx context.Context, user domain.User, recipeID string, doc domain.Item) (string, error) {
	if err := s.RequireEdit(ctx, user); err != nil {
		return "", err
	}
	conflict, err := s.store.ConflictsWithTarget(ctx, recipeID, doc)
	if err != nil {
		return "", err
	}
	if conflict {
		prompt := Prompt{Kind: PromptIngredientIsTarget, Title: PromptTitleIngredientSame, Message: PromptTextIngredientSame}
		if err := confirm(ctx, prompt); err != nil {
			logger.FromContext(ctx).Info(LogMsgCancelled, "action", PromptIngredientIsTarget, "recipe_id", recipeID)
			return "", err
		}
	}
	return s.store.AddIngredient(ctx, recipeID, doc)
}

// Search filters recipe visibility for user and reports a no-match search.
func (s *service) Search(ctx context.Context, user domain.User, query string) recipe.SearchResult {
	res := s.store.Search(ctx, query, s.CanEdit(ctx, user))
	if res.NoResults {
		s.publish(ctx, event.NewSearchNoResultsEvent(user.ID, query))
	}
	return res
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
