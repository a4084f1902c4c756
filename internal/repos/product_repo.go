package repos

import (
	"strings"

	"github.com/MedProgramer24/inventory-project/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `
  id, title, description, serial_no,
  COALESCE(brand_id,'') AS brand_id, model, rack_mountable, is_part,
  warranty_months, date_of_purchase, tag, COALESCE(created_by,'') AS created_by,
  created_at, COALESCE(updated_at,'') AS updated_at`

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT`+productCols+` FROM products WHERE id = ?`, id)
	return p, err
}

func searchClause(q, brandID string) (string, []any) {
	where := `1=1`
	args := []any{}
	if q != "" {
		like := "%" + strings.ToLower(q) + "%"
		where += ` AND (LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(serial_no) LIKE ? OR LOWER(model) LIKE ?)`
		args = append(args, like, like, like, like)
	}
	if brandID != "" {
		where += ` AND brand_id = ?`
		args = append(args, brandID)
	}
	return where, args
}

func (r *ProductRepo) Search(q, brandID string, limit, offset int) ([]domain.Product, error) {
	where, args := searchClause(q, brandID)
	sql := `SELECT` + productCols + ` FROM products WHERE ` + where + `
	  ORDER BY created_at DESC, id
	  LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	var out []domain.Product
	err := r.db.Select(&out, sql, args...)
	return out, err
}

func (r *ProductRepo) Count(q, brandID string) (int, error) {
	where, args := searchClause(q, brandID)
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM products WHERE `+where, args...)
	return n, err
}

func (r *ProductRepo) Insert(tx *sqlx.Tx, p domain.Product) error {
	_, err := tx.Exec(`
	  INSERT INTO products(id,title,description,serial_no,brand_id,model,
	    rack_mountable,is_part,warranty_months,date_of_purchase,tag,created_by)
	  VALUES(?,?,?,?,NULLIF(?,''),?,?,?,?,?,?,NULLIF(?,''))`,
		p.ID, p.Title, p.Description, p.SerialNo, p.BrandID, p.Model,
		p.RackMountable, p.IsPart, p.WarrantyMonths, p.DateOfPurchase, p.Tag, p.CreatedBy)
	return err
}

// ApplyPatch overwrites only the fields the patch carries (null clears). A
// patch with no scalar fields set is a no-op.
func (r *ProductRepo) ApplyPatch(ext sqlx.Execer, id string, patch domain.ProductPatch) error {
	set := []string{}
	args := []any{}
	add := func(col string, v any) {
		set = append(set, col+"=?")
		args = append(args, v)
	}
	if patch.Title.Set {
		add("title", patch.Title.Value)
	}
	if patch.Description.Set {
		add("description", patch.Description.Value)
	}
	if patch.SerialNo.Set {
		add("serial_no", patch.SerialNo.Value)
	}
	if patch.Manufacturer.Set {
		set = append(set, "brand_id=NULLIF(?,'')")
		args = append(args, patch.Manufacturer.Value)
	}
	if patch.Model.Set {
		add("model", patch.Model.Value)
	}
	if patch.RackMountable.Set {
		add("rack_mountable", patch.RackMountable.Value)
	}
	if patch.IsPart.Set {
		add("is_part", patch.IsPart.Value)
	}
	if patch.WarrantyMonths.Set {
		add("warranty_months", patch.WarrantyMonths.Value)
	}
	if patch.DateOfPurchase.Set {
		add("date_of_purchase", patch.DateOfPurchase.Value)
	}
	if patch.Tag.Set {
		add("tag", patch.Tag.Value)
	}
	if patch.CreatedBy.Set {
		set = append(set, "created_by=NULLIF(?,'')")
		args = append(args, patch.CreatedBy.Value)
	}
	if len(set) == 0 {
		return nil
	}
	set = append(set, "updated_at=CURRENT_TIMESTAMP")
	args = append(args, id)
	_, err := ext.Exec(`UPDATE products SET `+strings.Join(set, ", ")+` WHERE id=?`, args...)
	return err
}

// Delete removes the product row only. History rows stay behind, orphaned.
func (r *ProductRepo) Delete(id string) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM products WHERE id=?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
