package store

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"glowup/backend/engine"
)

type fakeRemote struct {
	docs map[string]engine.UserData
	err  error
	puts int
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{docs: map[string]engine.UserData{}}
}

func (f *fakeRemote) Get(_ context.Context, ownerID string) (engine.UserData, bool, error) {
	if f.err != nil {
		return engine.UserData{}, false, f.err
	}
	d, ok := f.docs[ownerID]
	return d, ok, nil
}

func (f *fakeRemote) Put(_ context.Context, ownerID string, data engine.UserData) error {
	if f.err != nil {
		return f.err
	}
	f.puts++
	f.docs[ownerID] = data
	return nil
}

func newTestGateway(t *testing.T, remote RemoteDocumentStore) *Gateway {
	t.Helper()
	local, err := NewLocalCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalCache: %v", err)
	}
	logger := log.New(io.Discard, "", 0)
	return NewGateway(local, remote, logger, 0)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	gw := newTestGateway(t, newFakeRemote())
	ctx := context.Background()

	data := engine.NewUserData("7", "2026-08-30")
	data.Habits[0].Progress = 2.5
	data.Habits[0].StreakCount = 4

	if degraded := gw.Save(ctx, "7", data); degraded {
		t.Fatal("save reported degraded sync with both backends healthy")
	}

	loaded, ok := gw.Load(ctx, "7")
	if !ok {
		t.Fatal("load missed a freshly saved aggregate")
	}

	// Equal modulo the save timestamp assigned by the gateway.
	loaded.SavedAt = 0
	data.SavedAt = 0
	if loaded.Habits[0] != data.Habits[0] || loaded.LastVisitDate != data.LastVisitDate {
		t.Fatalf("round-trip mismatch: %+v vs %+v", loaded, data)
	}
}

func TestLoadMissReturnsNotOK(t *testing.T) {
	gw := newTestGateway(t, newFakeRemote())

	if _, ok := gw.Load(context.Background(), "missing"); ok {
		t.Fatal("load reported a copy for an unknown owner")
	}
}

func TestLoadPrefersFresherCopy(t *testing.T) {
	remote := newFakeRemote()
	gw := newTestGateway(t, remote)
	ctx := context.Background()

	stale := engine.NewUserData("7", "2026-08-29")
	stale.SavedAt = 1000
	fresh := engine.NewUserData("7", "2026-08-30")
	fresh.SavedAt = 2000
	fresh.Habits[0].Progress = 3

	// Local holds the fresher copy.
	if err := gw.Local.Write("7", fresh); err != nil {
		t.Fatalf("local write: %v", err)
	}
	remote.docs["7"] = stale

	loaded, ok := gw.Load(ctx, "7")
	if !ok || loaded.LastVisitDate != "2026-08-30" {
		t.Fatalf("expected fresher local copy, got %+v (ok=%v)", loaded, ok)
	}

	// Now remote holds the fresher copy.
	remote.docs["7"] = fresh
	if err := gw.Local.Write("7", stale); err != nil {
		t.Fatalf("local write: %v", err)
	}
	loaded, ok = gw.Load(ctx, "7")
	if !ok || loaded.LastVisitDate != "2026-08-30" {
		t.Fatalf("expected fresher remote copy, got %+v (ok=%v)", loaded, ok)
	}
}

func TestLoadMissingTimestampTreatedAsOlder(t *testing.T) {
	remote := newFakeRemote()
	gw := newTestGateway(t, remote)

	noStamp := engine.NewUserData("7", "2026-08-28")
	noStamp.SavedAt = 0
	stamped := engine.NewUserData("7", "2026-08-30")
	stamped.SavedAt = 500

	if err := gw.Local.Write("7", noStamp); err != nil {
		t.Fatalf("local write: %v", err)
	}
	remote.docs["7"] = stamped

	loaded, ok := gw.Load(context.Background(), "7")
	if !ok || loaded.LastVisitDate != "2026-08-30" {
		t.Fatalf("stamped copy should win over unstamped: %+v", loaded)
	}
}

func TestLoadRejectsOwnerMismatch(t *testing.T) {
	remote := newFakeRemote()
	gw := newTestGateway(t, remote)

	foreign := engine.NewUserData("999", "2026-08-30")
	foreign.SavedAt = 5000
	remote.docs["7"] = foreign

	mine := engine.NewUserData("7", "2026-08-29")
	mine.SavedAt = 100
	if err := gw.Local.Write("7", mine); err != nil {
		t.Fatalf("local write: %v", err)
	}

	loaded, ok := gw.Load(context.Background(), "7")
	if !ok {
		t.Fatal("load should fall back to the local copy")
	}
	if loaded.OwnerID != "7" {
		t.Fatalf("mismatched-owner remote document was trusted: %+v", loaded)
	}
}

func TestLoadMigratesLocalOnlyCopyToRemote(t *testing.T) {
	remote := newFakeRemote()
	gw := newTestGateway(t, remote)

	localOnly := engine.NewUserData("7", "2026-08-30")
	if err := gw.Local.Write("7", localOnly); err != nil {
		t.Fatalf("local write: %v", err)
	}

	if _, ok := gw.Load(context.Background(), "7"); !ok {
		t.Fatal("local-only copy not returned")
	}
	if remote.puts != 1 {
		t.Fatalf("local-only copy not migrated to remote (puts=%d)", remote.puts)
	}
}

func TestSaveSurvivesRemoteFailure(t *testing.T) {
	remote := newFakeRemote()
	remote.err = errors.New("connection refused")
	gw := newTestGateway(t, remote)
	ctx := context.Background()

	data := engine.NewUserData("7", "2026-08-30")
	if degraded := gw.Save(ctx, "7", data); !degraded {
		t.Fatal("remote failure should report degraded sync")
	}

	// The local cache must still be authoritative.
	remote.err = nil
	loaded, ok := gw.Load(ctx, "7")
	if !ok || loaded.LastVisitDate != "2026-08-30" {
		t.Fatalf("local copy lost after remote failure: %+v (ok=%v)", loaded, ok)
	}
}

func TestClearDropsLocalOnly(t *testing.T) {
	remote := newFakeRemote()
	gw := newTestGateway(t, remote)
	ctx := context.Background()

	data := engine.NewUserData("7", "2026-08-30")
	gw.Save(ctx, "7", data)

	if err := gw.Clear("7"); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, ok, _ := gw.Local.Read("7"); ok {
		t.Fatal("local copy survived Clear")
	}
	if _, ok := remote.docs["7"]; !ok {
		t.Fatal("Clear must leave the remote copy untouched")
	}
}
