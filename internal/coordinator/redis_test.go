package coordinator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T, ctx context.Context) string {
	t.Helper()

	var container testcontainers.Container
	var err error
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("Skipping integration test due to panic (likely Docker issue): %v", r)
			}
		}()
		container, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "redis:7-alpine",
				ExposedPorts: []string{"6379/tcp"},
				WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
			},
			Started: true,
		})
	}()
	if err != nil {
		t.Skipf("Skipping integration test: redis not available: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate redis container: %v", err)
		}
	})

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)
	return endpoint
}

func TestRedisTransport_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	addr := startRedis(t, ctx)

	// Each session gets its own client, as separate processes would.
	gmTransport, err := NewRedisTransport(ctx, addr, "", 0)
	require.NoError(t, err)
	defer gmTransport.Close()
	playerTransport, err := NewRedisTransport(ctx, addr, "", 0)
	require.NoError(t, err)
	defer playerTransport.Close()

	now := time.Now()
	gm := startNode(t, ctx, gmTransport, "gm", "u-gm", true, now)
	player := startNode(t, ctx, playerTransport, "player", "u-player", false, now.Add(time.Second))
	waitForLeader(t, player.c, "gm")

	path, err := player.c.RequestWrite(ctx, SaveRequest{Folder: "/data", File: "recipes"})
	require.NoError(t, err)
	assert.Equal(t, "/data/recipes.json", path)
	assert.Equal(t, 1, gm.rec.performed())
}

func TestNewRedisTransport_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := NewRedisTransport(ctx, "127.0.0.1:1", "", 0)
	assert.Error(t, err)
}
