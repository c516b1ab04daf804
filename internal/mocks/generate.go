// Package mocks provides mock implementations for testing the client stack.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// the backend API ports. The mocks are generated using go:generate directives
// and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	accounts := mocks.NewMockAccountsAPI(ctrl)
//	accounts.EXPECT().CreateToken(gomock.Any(), gomock.Any()).Return(resp, nil)
package mocks

// Generate mock for AccountsAPI interface from internal/ports.
// This creates MockAccountsAPI with methods for all AccountsAPI interface methods:
// CreateToken, GoogleSignIn, RefreshToken, RequestSignup, VerifySignup
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=accounts_api_mock.go github.com/healteex/trackctl/internal/ports AccountsAPI

// Generate mock for InventoryAPI interface from internal/ports.
// This creates MockInventoryAPI with methods for all InventoryAPI interface methods:
// ListFacilities, ListMedicines, ListTransactions, ListStockSnapshots, ListForecasts,
// ListAlerts, CreateFacility, CreateTransaction
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=inventory_api_mock.go github.com/healteex/trackctl/internal/ports InventoryAPI
