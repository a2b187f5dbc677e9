package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRecent(t *testing.T) {
	store := openTestStore(t)

	for i, cleared := range []int{10, 12, 11} {
		_, err := store.SaveAudit(AuditRecord{
			LevelID:    1,
			Mode:       "gravity",
			Difficulty: 1,
			Seed:       int64(i + 1),
			Obstacles:  12,
			Holds:      2,
			Cleared:    cleared,
		})
		if err != nil {
			t.Fatalf("SaveAudit() failed: %v", err)
		}
	}
	if _, err := store.SaveAudit(AuditRecord{LevelID: 5, Mode: "wave", Difficulty: 5, Obstacles: 9, Cleared: 9}); err != nil {
		t.Fatalf("SaveAudit() failed: %v", err)
	}

	records, err := store.RecentAudits(1, 10)
	if err != nil {
		t.Fatalf("RecentAudits() failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 audits, got %d", len(records))
	}

	// Newest first
	if records[0].Seed != 3 || records[2].Seed != 1 {
		t.Errorf("audits not newest first: seeds %d..%d", records[0].Seed, records[2].Seed)
	}
	if records[0].Mode != "gravity" || records[0].Holds != 2 || records[0].Cleared != 11 {
		t.Errorf("round trip mismatch: %+v", records[0])
	}
	if records[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreRecentLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		store.SaveAudit(AuditRecord{LevelID: 2, Mode: "gravity", Obstacles: 5, Cleared: 5})
	}

	records, err := store.RecentAudits(2, 5)
	if err != nil {
		t.Fatalf("RecentAudits() failed: %v", err)
	}
	if len(records) != 5 {
		t.Errorf("expected 5 audits, got %d", len(records))
	}

	records, _ = store.RecentAudits(2, 0)
	if len(records) != 10 {
		t.Errorf("default limit should be 10, got %d", len(records))
	}
}

func TestStoreBestAudit(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestAudit(3)
	if err != nil {
		t.Fatalf("BestAudit() failed: %v", err)
	}
	if best != nil {
		t.Errorf("expected nil for a level without history, got %+v", best)
	}

	store.SaveAudit(AuditRecord{LevelID: 3, Mode: "gravity", Obstacles: 10, Cleared: 7, Seed: 1})
	store.SaveAudit(AuditRecord{LevelID: 3, Mode: "gravity", Obstacles: 8, Cleared: 8, Seed: 2})
	store.SaveAudit(AuditRecord{LevelID: 3, Mode: "gravity", Obstacles: 12, Cleared: 11, Seed: 3})

	best, err = store.BestAudit(3)
	if err != nil {
		t.Fatalf("BestAudit() failed: %v", err)
	}
	if best == nil || best.Seed != 2 {
		t.Errorf("expected the fully cleared run, got %+v", best)
	}
	if !best.Passed() {
		t.Error("best run should report Passed()")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveAudit(AuditRecord{LevelID: 4, Mode: "gravity", Obstacles: 10, Cleared: 10})
	store.SaveAudit(AuditRecord{LevelID: 4, Mode: "gravity", Obstacles: 10, Cleared: 5})

	stats, err := store.Stats(4)
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.Passed != 1 {
		t.Errorf("Runs=%d Passed=%d, expected 2 and 1", stats.Runs, stats.Passed)
	}
	if stats.AvgRate < 0.749 || stats.AvgRate > 0.751 {
		t.Errorf("AvgRate = %v, expected 0.75", stats.AvgRate)
	}

	empty, err := store.Stats(99)
	if err != nil {
		t.Fatalf("Stats() on empty level failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastAudit.IsZero() {
		t.Errorf("expected empty stats, got %+v", empty)
	}
}

func TestStoreClearAudits(t *testing.T) {
	store := openTestStore(t)

	store.SaveAudit(AuditRecord{LevelID: 6, Mode: "gravity", Obstacles: 3, Cleared: 3})
	store.SaveAudit(AuditRecord{LevelID: 7, Mode: "gravity", Obstacles: 3, Cleared: 3})

	if err := store.ClearAudits(6); err != nil {
		t.Fatalf("ClearAudits() failed: %v", err)
	}

	if records, _ := store.RecentAudits(6, 10); len(records) != 0 {
		t.Errorf("expected no audits after clear, got %d", len(records))
	}
	if records, _ := store.RecentAudits(7, 10); len(records) != 1 {
		t.Error("clearing one level should not touch another")
	}
}

func TestAuditRecordRate(t *testing.T) {
	if r := (AuditRecord{}).Rate(); r != 1 {
		t.Errorf("empty level rate = %v, expected 1", r)
	}
	if r := (AuditRecord{Obstacles: 4, Cleared: 3}).Rate(); r != 0.75 {
		t.Errorf("rate = %v, expected 0.75", r)
	}
}
