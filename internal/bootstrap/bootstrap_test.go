package bootstrap

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/craftbench/internal/config"
	"github.com/osse101/craftbench/internal/coordinator"
	"github.com/osse101/craftbench/internal/event"
	"github.com/osse101/craftbench/internal/inventory"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		LogLevel:            "debug",
		LogFormat:           "text",
		Environment:         "test",
		Version:             "test",
		WorldID:             "w1",
		GameSystem:          "dnd5e",
		StorageBackend:      config.StorageDisk,
		DataDir:             filepath.Join(dir, "data"),
		CacheSize:           8,
		CacheTTL:            time.Minute,
		Transport:           config.TransportLocal,
		SessionUserID:       "gm",
		SessionPrivileged:   true,
		WriteTimeout:        time.Second,
		EventMaxRetries:     1,
		EventRetryDelay:     time.Millisecond,
		EventDeadLetterPath: filepath.Join(dir, "logs", "dead.jsonl"),
	}
}

func TestSetupLogger(t *testing.T) {
	t.Run("stdout only", func(t *testing.T) {
		var buf bytes.Buffer
		f, err := setupLogger(testConfig(t), &buf)
		require.NoError(t, err)
		assert.Nil(t, f)
		assert.Contains(t, buf.String(), LogMsgStarting)
	})

	t.Run("also writes a session file", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.LogDir = filepath.Join(t.TempDir(), "logs")

		var buf bytes.Buffer
		f, err := setupLogger(cfg, &buf)
		require.NoError(t, err)
		require.NotNil(t, f)
		defer f.Close()

		data, err := os.ReadFile(f.Name())
		require.NoError(t, err)
		assert.Contains(t, string(data), LogMsgLoggingInitialized)
		assert.True(t, strings.HasPrefix(filepath.Base(f.Name()), "session_"))
	})
}

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 5; i++ {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2024-01-0%d_00-00-00", i+1))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), nil, 0o644))

	cleanupLogs(dir, 2)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{
		"keep.txt",
		"session_2024-01-04_00-00-00.log",
		"session_2024-01-05_00-00-00.log",
	}, names)
}

func TestInitializeEventSystem(t *testing.T) {
	cfg := testConfig(t)

	events, err := InitializeEventSystem(cfg)
	require.NoError(t, err)
	require.NotNil(t, events.Publisher)
	require.NoError(t, RegisterEventHandlers(events.Publisher))

	_, err = os.Stat(filepath.Dir(cfg.EventDeadLetterPath))
	assert.NoError(t, err)

	delivered := make(chan struct{}, 1)
	events.Bus.Subscribe(event.FileSelected, func(ctx context.Context, e event.Event) error {
		delivered <- struct{}{}
		return nil
	})
	require.NoError(t, events.Publisher.Publish(context.Background(), event.NewFileSelectedEvent("u", "b", "a")))
	select {
	case <-delivered:
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}

	GracefulShutdown(context.Background(), ShutdownComponents{Events: events})
}

func TestInitializeRepositories(t *testing.T) {
	t.Run("disk", func(t *testing.T) {
		cfg := testConfig(t)
		repos, err := InitializeRepositories(context.Background(), cfg)
		require.NoError(t, err)
		defer repos.Close()

		assert.Nil(t, repos.Pool)
		assert.NoError(t, repos.Ping(context.Background()))

		ctx := context.Background()
		_, err = repos.Files.Write(ctx, "recipes", "main.json", []byte(`{}`))
		require.NoError(t, err)
		data, err := repos.Files.Read(ctx, "recipes", "main.json")
		require.NoError(t, err)
		assert.JSONEq(t, `{}`, string(data))
	})

	t.Run("unknown backend", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.StorageBackend = "s3"
		_, err := InitializeRepositories(context.Background(), cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgUnknownBackend)
	})
}

func TestSyncInventory(t *testing.T) {
	ctx := context.Background()

	t.Run("empty path is a no-op", func(t *testing.T) {
		assert.NoError(t, SyncInventory(ctx, "", inventory.NewMemory()))
	})

	t.Run("seeds actors", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seed.json")
		require.NoError(t, os.WriteFile(path, []byte(`{
			"actors": [
				{"id": "a1", "name": "Hero", "owners": ["u1"], "items": [{"name": "Wood", "type": "loot"}]}
			]
		}`), 0o644))

		inv := inventory.NewMemory()
		require.NoError(t, SyncInventory(ctx, path, inv))

		actors, err := inv.OwnedActors(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, actors, 1)
		assert.Equal(t, "Hero", actors[0].Name)
	})

	t.Run("missing file", func(t *testing.T) {
		err := SyncInventory(ctx, filepath.Join(t.TempDir(), "nope.json"), inventory.NewMemory())
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgFailedLoadInventory)
	})
}

func TestInitializeCoordinator(t *testing.T) {
	t.Run("local transport performs its own writes", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.SessionID = "s1"

		var performed []coordinator.SaveRequest
		perform := func(ctx context.Context, req coordinator.SaveRequest) (string, error) {
			performed = append(performed, req)
			return req.Folder + "/" + req.File, nil
		}

		c, err := InitializeCoordinator(context.Background(), cfg, perform, nil)
		require.NoError(t, err)
		assert.Nil(t, c.Redis)
		assert.NoError(t, c.Ping(context.Background()))
		assert.Equal(t, "s1", c.Coordinator.Self().ID)
		assert.True(t, c.Coordinator.IsResponsible())

		path, err := c.Coordinator.RequestWrite(context.Background(), coordinator.SaveRequest{Folder: "recipes", File: "main.json"})
		require.NoError(t, err)
		assert.Equal(t, "recipes/main.json", path)
		assert.Len(t, performed, 1)

		GracefulShutdown(context.Background(), ShutdownComponents{Coordination: c})
		select {
		case <-c.Coordinator.Done():
		default:
			t.Fatal("coordinator loop still running")
		}
	})

	t.Run("unknown transport", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Transport = "carrier-pigeon"
		_, err := InitializeCoordinator(context.Background(), cfg, nil, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgUnknownTransport)
	})
}
