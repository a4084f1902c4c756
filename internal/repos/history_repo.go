package repos

import (
	"database/sql"

	"github.com/MedProgramer24/inventory-project/internal/domain"

	"github.com/jmoiron/sqlx"
)

type HistoryRepo struct{ db *sqlx.DB }

func NewHistoryRepo(db *sqlx.DB) *HistoryRepo { return &HistoryRepo{db: db} }

// NextSeq returns the position of the next history entry for a product:
// 0 for a fresh product, max(seq)+1 otherwise.
func (r *HistoryRepo) NextSeq(tx *sqlx.Tx, productID string) (int, error) {
	var seq sql.NullInt64
	if err := tx.Get(&seq, `SELECT MAX(seq) FROM history WHERE product_id=?`, productID); err != nil {
		return 0, err
	}
	if !seq.Valid {
		return 0, nil
	}
	return int(seq.Int64) + 1, nil
}

func (r *HistoryRepo) InsertEntry(tx *sqlx.Tx, id, productID string, seq int, locationID string) error {
	_, err := tx.Exec(`INSERT INTO history(id,product_id,seq,location_id) VALUES(?,?,?,?)`,
		id, productID, seq, locationID)
	return err
}

func (r *HistoryRepo) InsertStatus(ext sqlx.Execer, id, historyID, name string) error {
	_, err := ext.Exec(`INSERT INTO status_entries(id,history_id,name) VALUES(?,?,?)`,
		id, historyID, name)
	return err
}

// FirstEntryID resolves the id of the product's original (seq=0) history
// entry — the one that receives status-only amendments.
func (r *HistoryRepo) FirstEntryID(productID string) (string, error) {
	var id string
	err := r.db.Get(&id, `SELECT id FROM history WHERE product_id=? ORDER BY seq LIMIT 1`, productID)
	return id, err
}

// ListByProduct returns the product's history entries in creation order,
// with locations and status sequences resolved.
func (r *HistoryRepo) ListByProduct(productID string) ([]domain.History, error) {
	var entries []domain.History
	err := r.db.Select(&entries, `
	  SELECT id, product_id, seq, location_id, created_at
	  FROM history WHERE product_id=? ORDER BY seq`, productID)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		var loc domain.Location
		err := r.db.Get(&loc, `
		  SELECT id, name, created_at, COALESCE(updated_at,'') AS updated_at
		  FROM locations WHERE id=?`, entries[i].LocationID)
		if err == nil {
			entries[i].Location = &loc
		} else if err != sql.ErrNoRows {
			return nil, err
		}

		entries[i].Status = []domain.Status{}
		err = r.db.Select(&entries[i].Status, `
		  SELECT id, history_id, name, created_at
		  FROM status_entries WHERE history_id=? ORDER BY rowid`, entries[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return entries, nil
}
