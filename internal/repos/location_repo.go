package repos

import (
	"github.com/MedProgramer24/inventory-project/internal/domain"

	"github.com/jmoiron/sqlx"
)

type LocationRepo struct{ db *sqlx.DB }

func NewLocationRepo(db *sqlx.DB) *LocationRepo { return &LocationRepo{db: db} }

func (r *LocationRepo) List() ([]domain.Location, error) {
	var out []domain.Location
	err := r.db.Select(&out, `
	  SELECT id, name, created_at, COALESCE(updated_at,'') AS updated_at
	  FROM locations ORDER BY name`)
	return out, err
}

func (r *LocationRepo) Get(id string) (domain.Location, error) {
	var l domain.Location
	err := r.db.Get(&l, `
	  SELECT id, name, created_at, COALESCE(updated_at,'') AS updated_at
	  FROM locations WHERE id=?`, id)
	return l, err
}

func (r *LocationRepo) Create(id, name string) error {
	_, err := r.db.Exec(`INSERT INTO locations(id,name) VALUES(?,?)`, id, name)
	return err
}
