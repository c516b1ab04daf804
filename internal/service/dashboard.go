package service

// Package service orchestrates multi-endpoint operations on top of the API
// client, keeping screens free of fetch mechanics.

import (
	"context"
	"log/slog"

	"github.com/healteex/trackctl/internal/apperr"
	"github.com/healteex/trackctl/internal/domain/model"
	"github.com/healteex/trackctl/internal/ports"
	"golang.org/x/sync/errgroup"
)

// DashboardServiceOptions groups dependencies for DashboardService.
type DashboardServiceOptions struct {
	Inventory ports.InventoryAPI
	Logger    *slog.Logger
}

// DashboardService assembles the aggregate dashboard view.
type DashboardService struct {
	inventory ports.InventoryAPI
	logger    *slog.Logger
}

// NewDashboardService constructs a new DashboardService.
func NewDashboardService(opts DashboardServiceOptions) *DashboardService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &DashboardService{
		inventory: opts.Inventory,
		logger:    logger,
	}
}

// Fetch retrieves all six collections concurrently and assembles the
// aggregate. The fetch is all-or-nothing: the first failure cancels the
// remaining requests and fails the aggregate, so a partial dashboard is never
// produced.
func (s *DashboardService) Fetch(ctx context.Context, accessToken string) (*model.Dashboard, error) {
	if accessToken == "" {
		return nil, apperr.RequestFailed(401, "authentication required")
	}

	var dash model.Dashboard
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		dash.Facilities, err = s.inventory.ListFacilities(gctx, accessToken)
		return err
	})
	g.Go(func() error {
		var err error
		dash.Medicines, err = s.inventory.ListMedicines(gctx, accessToken)
		return err
	})
	g.Go(func() error {
		var err error
		dash.Transactions, err = s.inventory.ListTransactions(gctx, accessToken)
		return err
	})
	g.Go(func() error {
		var err error
		dash.StockSnapshots, err = s.inventory.ListStockSnapshots(gctx, accessToken)
		return err
	})
	g.Go(func() error {
		var err error
		dash.Forecasts, err = s.inventory.ListForecasts(gctx, accessToken)
		return err
	})
	g.Go(func() error {
		var err error
		dash.Alerts, err = s.inventory.ListAlerts(gctx, accessToken)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &dash, nil
}
