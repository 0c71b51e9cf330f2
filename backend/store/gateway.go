package store

import (
	"context"
	"log"
	"time"

	"glowup/backend/engine"
)

// Gateway layers the local file cache over the remote document store.
// Recovery policy favors availability: every load ends with some usable
// state, every save lands locally even when the remote store is down.
//
// There is no locking and no optimistic-concurrency token; two sessions
// editing the same account resolve by last write wins, and concurrent
// multi-device edits can silently lose updates. That is an accepted
// limitation of the design, not something the gateway tries to solve.
type Gateway struct {
	Local  *LocalCache
	Remote RemoteDocumentStore
	Logger *log.Logger

	// RemoteTimeout bounds every remote call so a slow or unreachable
	// database never blocks the user past an advisory delay.
	RemoteTimeout time.Duration
}

// RemoteDocumentStore is the document store boundary: upsert by owner id,
// get with an explicit absent result.
type RemoteDocumentStore interface {
	Get(ctx context.Context, ownerID string) (engine.UserData, bool, error)
	Put(ctx context.Context, ownerID string, data engine.UserData) error
}

func NewGateway(local *LocalCache, remote RemoteDocumentStore, logger *log.Logger, timeout time.Duration) *Gateway {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Gateway{Local: local, Remote: remote, Logger: logger, RemoteTimeout: timeout}
}

// Load resolves the freshest copy of an owner's aggregate. Both backends
// are consulted; the more recently saved copy wins, with a missing
// timestamp treated as older. A remote document whose owner id mismatches
// the requested one is rejected outright (trusting it would hand one user
// another user's data). ok=false means neither backend had a usable copy
// and the caller should create fresh defaults.
func (g *Gateway) Load(ctx context.Context, ownerID string) (engine.UserData, bool) {
	local, localOK, err := g.Local.Read(ownerID)
	if err != nil {
		g.Logger.Printf("local cache read failed for %s: %v", ownerID, err)
		localOK = false
	}

	rctx, cancel := context.WithTimeout(ctx, g.RemoteTimeout)
	defer cancel()
	remote, remoteOK, err := g.Remote.Get(rctx, ownerID)
	if err != nil {
		g.Logger.Printf("remote load failed for %s, local cache is authoritative: %v", ownerID, err)
		remoteOK = false
	}
	if remoteOK && remote.OwnerID != "" && remote.OwnerID != ownerID {
		g.Logger.Printf("remote document owner %s mismatches session %s, rejecting remote copy", remote.OwnerID, ownerID)
		remoteOK = false
	}

	switch {
	case localOK && remoteOK:
		if local.SavedAt > remote.SavedAt {
			return local, true
		}
		return remote, true
	case remoteOK:
		return remote, true
	case localOK:
		// Migrate the cache-only copy to the remote store for future loads.
		if err := g.Remote.Put(rctx, ownerID, local); err != nil {
			g.Logger.Printf("migrating local copy of %s to remote failed: %v", ownerID, err)
		}
		return local, true
	default:
		return engine.UserData{}, false
	}
}

// Save persists the aggregate: local cache synchronously first, then the
// remote store within the bounded timeout. Remote failure never rolls back
// or surfaces as data loss; it only degrades sync, which the returned flag
// reports so callers can advise the user.
func (g *Gateway) Save(ctx context.Context, ownerID string, data engine.UserData) (syncDegraded bool) {
	data.OwnerID = ownerID
	data.SavedAt = time.Now().UnixMilli()

	if err := g.Local.Write(ownerID, data); err != nil {
		g.Logger.Printf("local cache write failed for %s: %v", ownerID, err)
		syncDegraded = true
	}

	rctx, cancel := context.WithTimeout(ctx, g.RemoteTimeout)
	defer cancel()
	if err := g.Remote.Put(rctx, ownerID, data); err != nil {
		g.Logger.Printf("remote save failed for %s, local cache is authoritative: %v", ownerID, err)
		syncDegraded = true
	}
	return syncDegraded
}

// Clear drops the session-local cached copy only. The remote copy is
// deliberately untouched (sign-out semantics).
func (g *Gateway) Clear(ownerID string) error {
	return g.Local.Delete(ownerID)
}
