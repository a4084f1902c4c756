package repos

import (
	"github.com/MedProgramer24/inventory-project/internal/domain"

	"github.com/jmoiron/sqlx"
)

type BrandRepo struct{ db *sqlx.DB }

func NewBrandRepo(db *sqlx.DB) *BrandRepo { return &BrandRepo{db: db} }

func (r *BrandRepo) List() ([]domain.Brand, error) {
	var out []domain.Brand
	err := r.db.Select(&out, `
	  SELECT id, name, created_at, COALESCE(updated_at,'') AS updated_at
	  FROM brands ORDER BY name`)
	return out, err
}

func (r *BrandRepo) Get(id string) (domain.Brand, error) {
	var b domain.Brand
	err := r.db.Get(&b, `
	  SELECT id, name, created_at, COALESCE(updated_at,'') AS updated_at
	  FROM brands WHERE id=?`, id)
	return b, err
}

func (r *BrandRepo) Create(id, name string) error {
	_, err := r.db.Exec(`INSERT INTO brands(id,name) VALUES(?,?)`, id, name)
	return err
}
