package repos

import (
	"github.com/jmoiron/sqlx"
)

type NameCount struct {
	Name  string `db:"name" json:"name"`
	Count int    `db:"count" json:"count"`
}

type Stats struct {
	Products  int         `json:"products"`
	Brands    int         `json:"brands"`
	Locations int         `json:"locations"`
	ByBrand   []NameCount `json:"byBrand"`
	ByStatus  []NameCount `json:"byStatus"`
}

// StatsRepo feeds the dashboard: totals plus products grouped by brand and
// by the newest status on each product's current (first) history entry.
type StatsRepo struct{ db *sqlx.DB }

func NewStatsRepo(db *sqlx.DB) *StatsRepo { return &StatsRepo{db: db} }

func (r *StatsRepo) Overview() (Stats, error) {
	var s Stats
	if err := r.db.Get(&s.Products, `SELECT COUNT(*) FROM products`); err != nil {
		return s, err
	}
	if err := r.db.Get(&s.Brands, `SELECT COUNT(*) FROM brands`); err != nil {
		return s, err
	}
	if err := r.db.Get(&s.Locations, `SELECT COUNT(*) FROM locations`); err != nil {
		return s, err
	}

	s.ByBrand = []NameCount{}
	err := r.db.Select(&s.ByBrand, `
	  SELECT b.name AS name, COUNT(*) AS count
	  FROM products p JOIN brands b ON b.id = p.brand_id
	  GROUP BY b.id ORDER BY count DESC, b.name`)
	if err != nil {
		return s, err
	}

	s.ByStatus = []NameCount{}
	err = r.db.Select(&s.ByStatus, `
	  SELECT se.name AS name, COUNT(*) AS count
	  FROM products p
	  JOIN history h ON h.product_id = p.id
	  JOIN status_entries se ON se.history_id = h.id
	  WHERE h.seq = 0
	    AND se.rowid = (SELECT MAX(s2.rowid) FROM status_entries s2 WHERE s2.history_id = h.id)
	  GROUP BY se.name ORDER BY count DESC, se.name`)
	return s, err
}
