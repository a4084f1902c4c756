package handlers

import (
	"github.com/MedProgramer24/inventory-project/internal/repos"
	"github.com/MedProgramer24/inventory-project/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	ProductHandler  *ProductHandler
	BrandHandler    *BrandHandler
	LocationHandler *LocationHandler
	StatsHandler    *StatsHandler
}

func NewDeps(db *sqlx.DB) *Deps {
	return &Deps{
		ProductHandler:  &ProductHandler{Products: services.NewProductService(db)},
		BrandHandler:    &BrandHandler{Brands: repos.NewBrandRepo(db)},
		LocationHandler: &LocationHandler{Locations: repos.NewLocationRepo(db)},
		StatsHandler:    &StatsHandler{Stats: repos.NewStatsRepo(db)},
	}
}
