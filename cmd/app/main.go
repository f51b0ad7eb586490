package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/craftbench/internal/bootstrap"
	"github.com/osse101/craftbench/internal/catalog"
	"github.com/osse101/craftbench/internal/concurrency"
	"github.com/osse101/craftbench/internal/config"
	"github.com/osse101/craftbench/internal/crafting"
	"github.com/osse101/craftbench/internal/handler"
	"github.com/osse101/craftbench/internal/inventory"
	"github.com/osse101/craftbench/internal/quantity"
	"github.com/osse101/craftbench/internal/recipe"
	"github.com/osse101/craftbench/internal/server"
	"github.com/osse101/craftbench/internal/settings"
	"github.com/osse101/craftbench/internal/storage"
)

// shutdownTimeout bounds the graceful shutdown sequence
const shutdownTimeout = 15 * time.Second

// @title           Craftbench API
// @version         1.0
// @description     Recipe catalog and crafting engine for virtual tabletop worlds.
// @BasePath        /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to set up logging", "error", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		slog.Error("Craftbench exited with error", "error", err)
		if logFile != nil {
			_ = logFile.Close()
		}
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, err := bootstrap.InitializeRepositories(ctx, cfg)
	if err != nil {
		return err
	}

	if err := bootstrap.SyncInventory(ctx, cfg.InventorySeed, repos.Inventory); err != nil {
		repos.Close()
		return err
	}

	events, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		repos.Close()
		return err
	}
	if err := bootstrap.RegisterEventHandlers(events.Bus); err != nil {
		repos.Close()
		return err
	}

	persister := storage.NewPersister(repos.Files, storage.NewCodec(nil))
	coord, err := bootstrap.InitializeCoordinator(ctx, cfg, catalog.NewPerformer(persister), events.Publisher)
	if err != nil {
		repos.Close()
		return err
	}

	resolver := quantity.NewResolver(nil)
	st := settings.New(repos.Settings)
	cat := catalog.NewService(recipe.NewStore(resolver), resolver, st, persister, coord.Coordinator, events.Publisher,
		catalog.Config{
			Env:        storage.FileInfo{System: cfg.GameSystem, World: cfg.WorldID},
			KnownTypes: cfg.ItemTypes,
		})

	warnings, err := cat.Initialize(ctx)
	if err != nil {
		bootstrap.GracefulShutdown(context.Background(), bootstrap.ShutdownComponents{
			Coordination: coord,
			Events:       events,
			Repositories: repos,
		})
		return err
	}
	for _, w := range warnings {
		slog.Warn("Recipe file warning", "code", w.Code, "message", w.Message)
	}

	crafter := crafting.NewService(cat.Recipes(), repos.Inventory, resolver, concurrency.NewLockManager(), events.Publisher, cfg.CraftSessionTTL)

	ready := map[string]handler.Pinger{}
	if repos.Pool != nil {
		ready["database"] = repos
	}
	if coord.Redis != nil {
		ready["redis"] = coord
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
	}, server.Deps{
		Catalog:  cat,
		Crafting: crafter,
		Settings: st,
		Resolver: resolver,
		ItemTags: inventory.NewItemTagEditor(repos.Inventory),
		Ready:    ready,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:       srv,
		Coordination: coord,
		Events:       events,
		Repositories: repos,
	})
	return err
}
