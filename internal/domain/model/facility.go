//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"strings"

	"github.com/healteex/trackctl/internal/apperr"
)

// FacilityType classifies a facility within the supply chain.
type FacilityType string

const (
	FacilityTypeHospital   FacilityType = "hospital"
	FacilityTypeClinic     FacilityType = "clinic"
	FacilityTypePharmacy   FacilityType = "pharmacy"
	FacilityTypeHealthPost FacilityType = "health_post"
	FacilityTypeWarehouse  FacilityType = "warehouse"
)

// Valid reports whether the facility type is supported.
func (t FacilityType) Valid() bool {
	switch t {
	case FacilityTypeHospital, FacilityTypeClinic, FacilityTypePharmacy, FacilityTypeHealthPost, FacilityTypeWarehouse:
		return true
	default:
		return false
	}
}

// Ownership classifies who operates a facility.
type Ownership string

const (
	OwnershipPublic     Ownership = "public"
	OwnershipPrivate    Ownership = "private"
	OwnershipFaithBased Ownership = "faith_based"
	OwnershipNGO        Ownership = "ngo"
)

// Valid reports whether the ownership value is supported.
func (o Ownership) Valid() bool {
	switch o {
	case OwnershipPublic, OwnershipPrivate, OwnershipFaithBased, OwnershipNGO:
		return true
	default:
		return false
	}
}

// Facility represents a health facility participating in the supply chain.
// Read-only in this client outside of creation.
type Facility struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Code         string `json:"code"`
	FacilityType string `json:"facility_type"`
	Ownership    string `json:"ownership"`
	State        string `json:"state"`
	City         string `json:"city"`
	LGA          string `json:"lga"`
}

// CreateFacilityRequest is the creation payload for the facilities endpoint.
// IsActive is always forced on by the API layer regardless of input.
type CreateFacilityRequest struct {
	Name         string `json:"name"`
	Code         string `json:"code"`
	FacilityType string `json:"facility_type"`
	Ownership    string `json:"ownership"`
	State        string `json:"state"`
	City         string `json:"city"`
	LGA          string `json:"lga"`
	Address      string `json:"address,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`
	IsActive     bool   `json:"is_active"`
}

// Normalize trims whitespace on all free-text fields.
func (r *CreateFacilityRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Code = strings.TrimSpace(r.Code)
	r.FacilityType = strings.ToLower(strings.TrimSpace(r.FacilityType))
	r.Ownership = strings.ToLower(strings.TrimSpace(r.Ownership))
	r.State = strings.TrimSpace(r.State)
	r.City = strings.TrimSpace(r.City)
	r.LGA = strings.TrimSpace(r.LGA)
	r.Address = strings.TrimSpace(r.Address)
	r.ContactEmail = strings.TrimSpace(r.ContactEmail)
	r.ContactPhone = strings.TrimSpace(r.ContactPhone)
}

// Validate checks required fields and enumerations before submission.
func (r *CreateFacilityRequest) Validate() error {
	if r.Name == "" {
		return apperr.ValidationField("name", "facility name is required")
	}
	if r.Code == "" {
		return apperr.ValidationField("code", "facility code is required")
	}
	if !FacilityType(r.FacilityType).Valid() {
		return apperr.ValidationField("facility_type", "unsupported facility type")
	}
	if !Ownership(r.Ownership).Valid() {
		return apperr.ValidationField("ownership", "unsupported ownership")
	}
	if r.State == "" {
		return apperr.ValidationField("state", "state is required")
	}
	return nil
}
