package testutil

import (
	domainauth "github.com/healteex/trackctl/internal/domain/auth"
	"github.com/healteex/trackctl/internal/domain/model"
)

// AuthUser returns a canned user for session tests.
func AuthUser() *domainauth.User {
	role := domainauth.RolePharmacist
	return &domainauth.User{
		ID:        7,
		Username:  "ada",
		Email:     "ada@example.org",
		Role:      &role,
		FirstName: "Ada",
		LastName:  "Obi",
	}
}

// AuthResponse returns a canned full auth payload.
func AuthResponse(remember bool) domainauth.Response {
	return domainauth.Response{
		Refresh:    "refresh-token",
		Access:     "access-token",
		TokenType:  "Bearer",
		ExpiresIn:  3600,
		RememberMe: remember,
		User:       *AuthUser(),
	}
}

// AuthSession returns a canned authenticated session.
func AuthSession(remember bool) domainauth.Session {
	return domainauth.Session{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		User:         AuthUser(),
		Remember:     remember,
	}
}

// DashboardFixture returns a small populated dashboard aggregate.
func DashboardFixture() *model.Dashboard {
	return &model.Dashboard{
		Facilities: []model.Facility{
			{ID: 1, Name: "General Hospital", Code: "GH-01", FacilityType: "hospital", Ownership: "public", State: "Lagos"},
			{ID: 2, Name: "City Pharmacy", Code: "CP-01", FacilityType: "pharmacy", Ownership: "private", State: "Lagos"},
		},
		Medicines: []model.Medicine{
			{ID: 10, Name: "Amoxicillin 500mg", GenericName: "amoxicillin", Category: "antibiotic"},
			{ID: 11, Name: "Paracetamol 500mg", GenericName: "paracetamol", Category: "analgesic"},
		},
		Transactions: []model.InventoryTransaction{
			{ID: 100, Facility: 1, Medicine: 10, TransactionType: "receipt", Quantity: "120", OccurredAt: "2026-08-01T09:00:00Z"},
			{ID: 101, Facility: 2, Medicine: 11, TransactionType: "issue", Quantity: "30", OccurredAt: "2026-08-02T10:30:00Z"},
		},
		StockSnapshots: []model.StockSnapshot{
			{ID: 200, Facility: 1, Medicine: 10, StockOnHand: "90"},
			{ID: 201, Facility: 2, Medicine: 11, StockOnHand: "15.5"},
		},
		Forecasts: []model.Forecast{
			{ID: 300, Facility: 1, Medicine: 10},
		},
		Alerts: []model.Alert{
			{ID: 400, Facility: 2, Medicine: 11, AlertType: "low_stock", Status: "open", Message: "Stock below reorder level"},
			{ID: 401, Facility: 1, Medicine: 10, AlertType: "expiry", Status: "resolved", Message: "Batch expired"},
		},
	}
}
