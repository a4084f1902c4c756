package repos_test

import (
	"database/sql"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"github.com/MedProgramer24/inventory-project/internal/repos"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestHistorySeqAssignment(t *testing.T) {
	db := memdb(t)
	hist := repos.NewHistoryRepo(db)

	tx := db.MustBegin()
	seq, err := hist.NextSeq(tx, "p-1")
	if err != nil {
		t.Fatal(err)
	}
	if seq != 0 {
		t.Fatalf("fresh product: want seq 0, got %d", seq)
	}
	if err := hist.InsertEntry(tx, "h-0", "p-1", seq, "loc-hq"); err != nil {
		t.Fatal(err)
	}
	if seq, err = hist.NextSeq(tx, "p-1"); err != nil || seq != 1 {
		t.Fatalf("want seq 1, got %d (%v)", seq, err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatal(err)
	}
}

func TestFirstEntryIDIsOriginal(t *testing.T) {
	db := memdb(t)
	hist := repos.NewHistoryRepo(db)

	tx := db.MustBegin()
	if err := hist.InsertEntry(tx, "h-0", "p-1", 0, "loc-hq"); err != nil {
		t.Fatal(err)
	}
	if err := hist.InsertEntry(tx, "h-1", "p-1", 1, "loc-storage"); err != nil {
		t.Fatal(err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatal(err)
	}

	id, err := hist.FirstEntryID("p-1")
	if err != nil {
		t.Fatal(err)
	}
	if id != "h-0" {
		t.Fatalf("want original entry h-0, got %s", id)
	}

	if _, err := hist.FirstEntryID("p-none"); err != sql.ErrNoRows {
		t.Fatalf("want ErrNoRows for unknown product, got %v", err)
	}
}

func TestStatusAppendKeepsOrder(t *testing.T) {
	db := memdb(t)
	hist := repos.NewHistoryRepo(db)

	tx := db.MustBegin()
	if err := hist.InsertEntry(tx, "h-0", "p-1", 0, "loc-hq"); err != nil {
		t.Fatal(err)
	}
	for i, name := range []string{"in use", "repair", "in use"} {
		id := []string{"s-a", "s-b", "s-c"}[i]
		if err := hist.InsertStatus(tx, id, "h-0", name); err != nil {
			t.Fatal(err)
		}
	}
	if err := tx.Commit(); err != nil {
		t.Fatal(err)
	}

	entries, err := hist.ListByProduct("p-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("want 1 entry, got %d", len(entries))
	}
	got := entries[0].Status
	if len(got) != 3 || got[0].Name != "in use" || got[1].Name != "repair" || got[2].Name != "in use" {
		t.Fatalf("order broken: %+v", got)
	}
	if entries[0].Location == nil || entries[0].Location.ID != "loc-hq" {
		t.Fatalf("location not resolved: %+v", entries[0].Location)
	}
}
