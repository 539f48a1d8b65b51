package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jiyul/junior-insight/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "insight.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testEntry(newsID string) models.MissionEntry {
	choice := 1
	return models.MissionEntry{
		ID:             "e-" + newsID,
		Date:           "2026-08-31",
		NewsID:         newsID,
		NewsTitle:      "제목",
		NewsCategory:   models.CategorySociety,
		Summary:        "요약",
		Choice:         &choice,
		Reason:         "이유",
		Word:           "단어",
		OpinionOptions: []string{"A", "B", "C"},
	}
}

func TestUpsertEntryRoundtrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.UpsertEntry(ctx, "jiyul", testEntry("n1")); err != nil {
		t.Fatalf("UpsertEntry: %v", err)
	}

	entries, err := store.ListEntries(ctx, "jiyul")
	if err != nil {
		t.Fatalf("ListEntries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}

	got := entries[0]
	if got.NewsID != "n1" || got.NewsTitle != "제목" || got.NewsCategory != models.CategorySociety {
		t.Errorf("entry = %+v", got)
	}
	if got.Choice == nil || *got.Choice != 1 {
		t.Errorf("choice = %v, want 1", got.Choice)
	}
	if len(got.OpinionOptions) != 3 || got.OpinionOptions[0] != "A" {
		t.Errorf("opinion options = %v", got.OpinionOptions)
	}
}

func TestUpsertEntryReplacesByNewsID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.UpsertEntry(ctx, "jiyul", testEntry("n1")); err != nil {
		t.Fatal(err)
	}

	redo := testEntry("n1")
	redo.Summary = "다시 쓴 요약"
	if err := store.UpsertEntry(ctx, "jiyul", redo); err != nil {
		t.Fatal(err)
	}

	entries, err := store.ListEntries(ctx, "jiyul")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d, a resubmission must not create a second row", len(entries))
	}
	if entries[0].Summary != "다시 쓴 요약" {
		t.Errorf("summary = %q, want replaced", entries[0].Summary)
	}
}

func TestListEntriesScopedToUser(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.UpsertEntry(ctx, "jiyul", testEntry("n1")); err != nil {
		t.Fatal(err)
	}
	if err := store.UpsertEntry(ctx, "someone-else", testEntry("n2")); err != nil {
		t.Fatal(err)
	}

	entries, err := store.ListEntries(ctx, "jiyul")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].NewsID != "n1" {
		t.Fatalf("entries = %+v, want only jiyul's", entries)
	}
}

func TestListEntriesNilChoice(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	e := testEntry("n1")
	e.Choice = nil
	if err := store.UpsertEntry(ctx, "jiyul", e); err != nil {
		t.Fatal(err)
	}

	entries, err := store.ListEntries(ctx, "jiyul")
	if err != nil {
		t.Fatal(err)
	}
	if entries[0].Choice != nil {
		t.Errorf("choice = %v, want nil preserved", entries[0].Choice)
	}
}

func TestStatsRoundtrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, ok, err := store.GetStats(ctx, "jiyul"); err != nil || ok {
		t.Fatalf("GetStats on empty store = ok=%v err=%v, want a clean miss", ok, err)
	}

	st := models.ProgressStats{Streak: 4, Total: 12, XP: 1200, Level: 99, LastDate: "2026-08-31"}
	if err := store.UpsertStats(ctx, "jiyul", st); err != nil {
		t.Fatalf("UpsertStats: %v", err)
	}

	got, ok, err := store.GetStats(ctx, "jiyul")
	if err != nil || !ok {
		t.Fatalf("GetStats = ok=%v err=%v", ok, err)
	}
	if got.Streak != 4 || got.Total != 12 || got.XP != 1200 || got.LastDate != "2026-08-31" {
		t.Errorf("stats = %+v", got)
	}
	if got.Level != 3 {
		t.Errorf("level = %d, want recomputed from xp, not the stored 99", got.Level)
	}
}

func TestUpsertStatsReplacesRow(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.UpsertStats(ctx, "jiyul", models.ProgressStats{XP: 100, Level: 1}); err != nil {
		t.Fatal(err)
	}
	if err := store.UpsertStats(ctx, "jiyul", models.ProgressStats{XP: 200, Level: 1}); err != nil {
		t.Fatal(err)
	}

	got, ok, err := store.GetStats(ctx, "jiyul")
	if err != nil || !ok {
		t.Fatalf("GetStats = ok=%v err=%v", ok, err)
	}
	if got.XP != 200 {
		t.Errorf("xp = %d, want the latest write", got.XP)
	}
}
