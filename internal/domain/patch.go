package domain

import (
	"bytes"
	"encoding/json"
)

// Opt is a patch field that keeps "not supplied" and "explicitly set" apart.
// Set reports whether the field appeared in the request at all; a JSON null
// counts as set-to-zero, so clearing a field is distinct from omitting it.
type Opt[T any] struct {
	Set   bool
	Value T
}

func (o *Opt[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(b, []byte("null")) {
		var zero T
		o.Value = zero
		return nil
	}
	return json.Unmarshal(b, &o.Value)
}

// Of builds a set Opt; convenient when constructing patches in code.
func Of[T any](v T) Opt[T] { return Opt[T]{Set: true, Value: v} }

// NewProduct is the creation request. Every product starts with exactly one
// history entry at LocationID seeded with Status.
type NewProduct struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	SerialNo       string `json:"serialNo"`
	Manufacturer   string `json:"manufacturer"`
	Model          string `json:"model"`
	RackMountable  bool   `json:"rackMountable"`
	IsPart         bool   `json:"isPart"`
	WarrantyMonths int    `json:"warrantyMonths"`
	DateOfPurchase string `json:"dateOfPurchase"`
	Tag            string `json:"user"`
	LocationID     string `json:"locationId"`
	Status         string `json:"status"`
}

// ProductPatch is a sparse update request. An unset field is left untouched;
// a set field overwrites, null included. LocationID and Status drive the
// history ledger: a requested move opens a new history entry, a requested
// status without one amends the current entry.
type ProductPatch struct {
	Title          Opt[string] `json:"title"`
	Description    Opt[string] `json:"description"`
	SerialNo       Opt[string] `json:"serialNo"`
	Manufacturer   Opt[string] `json:"manufacturer"`
	Model          Opt[string] `json:"model"`
	RackMountable  Opt[bool]   `json:"rackMountable"`
	IsPart         Opt[bool]   `json:"isPart"`
	WarrantyMonths Opt[int]    `json:"warrantyMonths"`
	DateOfPurchase Opt[string] `json:"dateOfPurchase"`
	Tag            Opt[string] `json:"user"`
	CreatedBy      Opt[string] `json:"createdBy"`

	LocationID Opt[string] `json:"locationId"`
	Status     Opt[string] `json:"status"`
}

// HasLocationChange reports whether the patch asks for a move. An empty or
// null locationId is not a location reference, so it is no move request.
func (p ProductPatch) HasLocationChange() bool {
	return p.LocationID.Set && p.LocationID.Value != ""
}

// HasStatusChange reports whether the patch carries a status to record.
func (p ProductPatch) HasStatusChange() bool {
	return p.Status.Set && p.Status.Value != ""
}
