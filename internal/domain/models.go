package domain

type Brand struct {
	ID        string `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	CreatedAt string `db:"created_at" json:"createdAt"`
	UpdatedAt string `db:"updated_at" json:"updatedAt,omitempty"`
}

type Location struct {
	ID        string `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	CreatedAt string `db:"created_at" json:"createdAt"`
	UpdatedAt string `db:"updated_at" json:"updatedAt,omitempty"`
}

type Product struct {
	ID             string `db:"id" json:"id"`
	Title          string `db:"title" json:"title"`
	Description    string `db:"description" json:"description,omitempty"`
	SerialNo       string `db:"serial_no" json:"serialNo,omitempty"`
	BrandID        string `db:"brand_id" json:"manufacturer,omitempty"`
	Model          string `db:"model" json:"model,omitempty"`
	RackMountable  bool   `db:"rack_mountable" json:"rackMountable"`
	IsPart         bool   `db:"is_part" json:"isPart"`
	WarrantyMonths int    `db:"warranty_months" json:"warrantyMonths"`
	DateOfPurchase string `db:"date_of_purchase" json:"dateOfPurchase,omitempty"`
	Tag            string `db:"tag" json:"user,omitempty"`
	CreatedBy      string `db:"created_by" json:"createdBy,omitempty"`
	CreatedAt      string `db:"created_at" json:"createdAt"`
	UpdatedAt      string `db:"updated_at" json:"updatedAt,omitempty"`
}

// Status is one named state observation on a history entry.
type Status struct {
	ID        string `db:"id" json:"id"`
	HistoryID string `db:"history_id" json:"-"`
	Name      string `db:"name" json:"name"`
	CreatedAt string `db:"created_at" json:"createdAt"`
}

// History records one location assignment and the status changes observed
// while the asset sat there. The location is fixed at creation; only the
// status sequence grows.
type History struct {
	ID         string `db:"id" json:"id"`
	ProductID  string `db:"product_id" json:"-"`
	Seq        int    `db:"seq" json:"-"`
	LocationID string `db:"location_id" json:"-"`
	CreatedAt  string `db:"created_at" json:"createdAt"`

	Location *Location `db:"-" json:"location,omitempty"`
	Status   []Status  `db:"-" json:"status"`
}

// ProductView is a product with its references resolved, as returned by the
// read endpoints.
type ProductView struct {
	Product
	Brand   *Brand    `json:"brand,omitempty"`
	History []History `json:"history"`
}
