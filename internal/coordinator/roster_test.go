package coordinator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRoster_Leader(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r := NewRoster()

	_, ok := r.Leader()
	assert.False(t, ok, "empty roster has no leader")

	r.Join(Peer{ID: "player", Active: true, JoinedAt: base})
	_, ok = r.Leader()
	assert.False(t, ok, "unprivileged peers are never leader")

	r.Join(Peer{ID: "gm2", Privileged: true, Active: true, JoinedAt: base.Add(2 * time.Second)})
	r.Join(Peer{ID: "gm1", Privileged: true, Active: true, JoinedAt: base.Add(time.Second)})

	leader, ok := r.Leader()
	assert.True(t, ok)
	assert.Equal(t, "gm1", leader.ID, "earliest privileged peer leads")
	assert.True(t, r.IsLeader("gm1"))
	assert.False(t, r.IsLeader("gm2"))

	r.SetActive("gm1", false)
	leader, _ = r.Leader()
	assert.Equal(t, "gm2", leader.ID, "inactive peers are skipped")

	r.SetActive("gm1", true)
	r.Leave("gm1")
	leader, _ = r.Leader()
	assert.Equal(t, "gm2", leader.ID)

	r.SetActive("ghost", true)
	assert.Len(t, r.Peers(), 2)
}

func TestRoster_JoinKeepsOriginalJoinTime(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r := NewRoster()

	r.Join(Peer{ID: "a", Privileged: true, Active: true, JoinedAt: base})
	r.Join(Peer{ID: "b", Privileged: true, Active: true, JoinedAt: base.Add(time.Second)})
	// A rebroadcast with a later timestamp must not demote the leader.
	r.Join(Peer{ID: "a", Privileged: true, Active: true, JoinedAt: base.Add(time.Minute)})

	leader, _ := r.Leader()
	assert.Equal(t, "a", leader.ID)
}
