package coordinator

import (
	"cmp"
	"slices"
	"sync"
	"time"
)

// Peer is one live client session.
type Peer struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Privileged bool      `json:"privileged"`
	Active     bool      `json:"active"`
	JoinedAt   time.Time `json:"joinedAt"`
}

// Roster tracks the sessions seen on the channel.
type Roster struct {
	mu    sync.RWMutex
	peers map[string]Peer
}

func NewRoster() *Roster {
	return &Roster{peers: map[string]Peer{}}
}

// Join adds or refreshes a peer. A known peer keeps its original join time.
func (r *Roster) Join(p Peer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if old, ok := r.peers[p.ID]; ok && !old.JoinedAt.IsZero() && old.JoinedAt.Before(p.JoinedAt) {
		p.JoinedAt = old.JoinedAt
	}
	r.peers[p.ID] = p
}

func (r *Roster) Leave(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.peers, id)
}

// SetActive marks a peer active or idle. Unknown ids are ignored.
func (r *Roster) SetActive(id string, active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.peers[id]; ok {
		p.Active = active
		r.peers[id] = p
	}
}

// Peers returns every peer in join order.
func (r *Roster) Peers() []Peer {
	r.mu.RLock()
	out := make([]Peer, 0, len(r.peers))
	for _, p := range r.peers {
		out = append(out, p)
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b Peer) int {
		if c := a.JoinedAt.Compare(b.JoinedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// Leader is the first active privileged peer by join order.
func (r *Roster) Leader() (Peer, bool) {
	for _, p := range r.Peers() {
		if p.Active && p.Privileged {
			return p, true
		}
	}
	return Peer{}, false
}

func (r *Roster) IsLeader(id string) bool {
	l, ok := r.Leader()
	return ok && l.ID == id
}
