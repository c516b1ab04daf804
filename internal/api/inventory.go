package api

import (
	"context"
	"net/http"

	"github.com/healteex/trackctl/internal/domain/model"
)

// Inventory resource collections. Paths are relative to the configured base.
const (
	pathFacilities     = "/v1/inventory/facilities/"
	pathMedicines      = "/v1/inventory/medicines/"
	pathTransactions   = "/v1/inventory/transactions/"
	pathStockSnapshots = "/v1/inventory/stock-snapshots/"
	pathForecasts      = "/v1/inventory/forecasts/"
	pathAlerts         = "/v1/inventory/alerts/"
)

// ListFacilities fetches every facility visible to the caller.
func (c *Client) ListFacilities(ctx context.Context, accessToken string) ([]model.Facility, error) {
	var out []model.Facility
	err := c.do(ctx, request{method: http.MethodGet, path: pathFacilities, token: accessToken}, &out)
	return out, err
}

// ListMedicines fetches the medicine catalog.
func (c *Client) ListMedicines(ctx context.Context, accessToken string) ([]model.Medicine, error) {
	var out []model.Medicine
	err := c.do(ctx, request{method: http.MethodGet, path: pathMedicines, token: accessToken}, &out)
	return out, err
}

// ListTransactions fetches the inventory transaction log.
func (c *Client) ListTransactions(ctx context.Context, accessToken string) ([]model.InventoryTransaction, error) {
	var out []model.InventoryTransaction
	err := c.do(ctx, request{method: http.MethodGet, path: pathTransactions, token: accessToken}, &out)
	return out, err
}

// ListStockSnapshots fetches point-in-time stock records.
func (c *Client) ListStockSnapshots(ctx context.Context, accessToken string) ([]model.StockSnapshot, error) {
	var out []model.StockSnapshot
	err := c.do(ctx, request{method: http.MethodGet, path: pathStockSnapshots, token: accessToken}, &out)
	return out, err
}

// ListForecasts fetches demand forecasts.
func (c *Client) ListForecasts(ctx context.Context, accessToken string) ([]model.Forecast, error) {
	var out []model.Forecast
	err := c.do(ctx, request{method: http.MethodGet, path: pathForecasts, token: accessToken}, &out)
	return out, err
}

// ListAlerts fetches supply alerts.
func (c *Client) ListAlerts(ctx context.Context, accessToken string) ([]model.Alert, error) {
	var out []model.Alert
	err := c.do(ctx, request{method: http.MethodGet, path: pathAlerts, token: accessToken}, &out)
	return out, err
}

// CreateFacility registers a new facility. The creation payload always goes
// out with is_active set, whatever the caller provided.
func (c *Client) CreateFacility(
	ctx context.Context,
	accessToken string,
	req *model.CreateFacilityRequest,
) (model.Facility, error) {
	var out model.Facility
	if req == nil {
		return out, errNilRequest("create facility")
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		return out, err
	}
	req.IsActive = true

	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   pathFacilities,
		token:  accessToken,
		body:   req,
	}, &out)
	return out, err
}

// CreateTransaction records an inventory movement.
func (c *Client) CreateTransaction(
	ctx context.Context,
	accessToken string,
	req *model.CreateTransactionRequest,
) (model.InventoryTransaction, error) {
	var out model.InventoryTransaction
	if req == nil {
		return out, errNilRequest("create transaction")
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		return out, err
	}

	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   pathTransactions,
		token:  accessToken,
		body:   req,
	}, &out)
	return out, err
}
