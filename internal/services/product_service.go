package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/MedProgramer24/inventory-project/internal/domain"
	"github.com/MedProgramer24/inventory-project/internal/repos"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ProductService owns the product/history rules: every product carries an
// ordered trail of history entries, each pinning one location and growing an
// append-only status sequence. A location change opens a new entry; a status
// change amends the original (first) entry; plain field edits touch neither.
type ProductService struct {
	DB    *sqlx.DB
	Prods *repos.ProductRepo
	Hist  *repos.HistoryRepo
	Users *repos.UserRepo
	Brnds *repos.BrandRepo
}

func NewProductService(db *sqlx.DB) *ProductService {
	return &ProductService{
		DB:    db,
		Prods: repos.NewProductRepo(db),
		Hist:  repos.NewHistoryRepo(db),
		Users: repos.NewUserRepo(db),
		Brnds: repos.NewBrandRepo(db),
	}
}

// Create inserts a product together with its first history entry, seeded with
// the initial status, as one transaction.
func (s *ProductService) Create(createdBy string, in domain.NewProduct) (domain.Product, error) {
	if strings.TrimSpace(in.Title) == "" {
		return domain.Product{}, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if strings.TrimSpace(in.LocationID) == "" {
		return domain.Product{}, fmt.Errorf("%w: locationId is required", domain.ErrValidation)
	}
	if strings.TrimSpace(in.Status) == "" {
		return domain.Product{}, fmt.Errorf("%w: status is required", domain.ErrValidation)
	}

	p := domain.Product{
		ID:             uuid.NewString(),
		Title:          strings.TrimSpace(in.Title),
		Description:    in.Description,
		SerialNo:       in.SerialNo,
		BrandID:        in.Manufacturer,
		Model:          in.Model,
		RackMountable:  in.RackMountable,
		IsPart:         in.IsPart,
		WarrantyMonths: in.WarrantyMonths,
		DateOfPurchase: in.DateOfPurchase,
		Tag:            in.Tag,
		CreatedBy:      createdBy,
	}

	tx, err := s.DB.Beginx()
	if err != nil {
		return domain.Product{}, err
	}
	defer func() { _ = tx.Rollback() }()

	if err := s.Prods.Insert(tx, p); err != nil {
		return domain.Product{}, err
	}
	hid := uuid.NewString()
	if err := s.Hist.InsertEntry(tx, hid, p.ID, 0, in.LocationID); err != nil {
		return domain.Product{}, err
	}
	if err := s.Hist.InsertStatus(tx, uuid.NewString(), hid, strings.TrimSpace(in.Status)); err != nil {
		return domain.Product{}, err
	}
	if err := tx.Commit(); err != nil {
		return domain.Product{}, err
	}

	return s.Prods.Get(p.ID)
}

// Update applies a sparse patch to an existing product. Exactly one of three
// branches runs, in strict priority order:
//
//  1. a location change is requested: open a new history entry at that
//     location (seeded with the patch's status when one is carried, else
//     empty) and apply the scalar fields. This is the only path that grows
//     the history trail. An empty or null locationId is not a move request.
//  2. a status change is requested (no move): append the status to the
//     product's first history entry, then apply the scalar fields.
//  3. neither: apply the scalar fields only.
//
// Status-only changes always land on the first-created entry, not the newest
// one. That is this system's convention for "current", preserved on purpose.
func (s *ProductService) Update(productID string, patch domain.ProductPatch) error {
	if _, err := s.Prods.Get(productID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: product %s", domain.ErrNotFound, productID)
		}
		return err
	}

	switch {
	case patch.HasLocationChange():
		return s.changeLocation(productID, patch)
	case patch.HasStatusChange():
		return s.appendStatus(productID, patch)
	default:
		return s.Prods.ApplyPatch(s.DB, productID, patch)
	}
}

func (s *ProductService) changeLocation(productID string, patch domain.ProductPatch) error {
	tx, err := s.DB.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	seq, err := s.Hist.NextSeq(tx, productID)
	if err != nil {
		return err
	}
	hid := uuid.NewString()
	if err := s.Hist.InsertEntry(tx, hid, productID, seq, patch.LocationID.Value); err != nil {
		return err
	}
	if patch.HasStatusChange() {
		if err := s.Hist.InsertStatus(tx, uuid.NewString(), hid, patch.Status.Value); err != nil {
			return err
		}
	}
	if err := s.Prods.ApplyPatch(tx, productID, patch); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *ProductService) appendStatus(productID string, patch domain.ProductPatch) error {
	hid, err := s.Hist.FirstEntryID(productID)
	if err != nil {
		// Products are created with a history entry, so this is a defensive path.
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: history for product %s", domain.ErrNotFound, productID)
		}
		return err
	}

	tx, err := s.DB.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := s.Hist.InsertStatus(tx, uuid.NewString(), hid, patch.Status.Value); err != nil {
		return err
	}
	if err := s.Prods.ApplyPatch(tx, productID, patch); err != nil {
		return err
	}
	return tx.Commit()
}

// Get returns the product with brand, creator and full history resolved.
func (s *ProductService) Get(id string) (domain.ProductView, error) {
	p, err := s.Prods.Get(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ProductView{}, fmt.Errorf("%w: product %s", domain.ErrNotFound, id)
		}
		return domain.ProductView{}, err
	}

	view := domain.ProductView{Product: p}
	if p.BrandID != "" {
		if b, err := s.Brnds.Get(p.BrandID); err == nil {
			view.Brand = &b
		}
	}
	view.History, err = s.Hist.ListByProduct(id)
	if err != nil {
		return domain.ProductView{}, err
	}
	return view, nil
}

// Page is the list envelope the clients page through.
type Page struct {
	Data        []domain.ProductView `json:"data"`
	PagesCount  int                  `json:"pages_count"`
	CurrentPage int                  `json:"currentPage"`
}

func (s *ProductService) List(q, brandID string, page, perPage int) (Page, error) {
	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 10
	}

	total, err := s.Prods.Count(q, brandID)
	if err != nil {
		return Page{}, err
	}
	pages := (total + perPage - 1) / perPage

	prods, err := s.Prods.Search(q, brandID, perPage, (page-1)*perPage)
	if err != nil {
		return Page{}, err
	}

	out := Page{Data: make([]domain.ProductView, 0, len(prods)), PagesCount: pages, CurrentPage: page}
	for _, p := range prods {
		view := domain.ProductView{Product: p}
		if p.BrandID != "" {
			if b, err := s.Brnds.Get(p.BrandID); err == nil {
				view.Brand = &b
			}
		}
		if view.History, err = s.Hist.ListByProduct(p.ID); err != nil {
			return Page{}, err
		}
		out.Data = append(out.Data, view)
	}
	return out, nil
}

// Delete removes the product record. Its history rows are left behind,
// orphaned rather than cascaded.
func (s *ProductService) Delete(id string) error {
	ok, err := s.Prods.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: product %s", domain.ErrNotFound, id)
	}
	return nil
}
