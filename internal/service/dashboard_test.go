package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/healteex/trackctl/internal/apperr"
	"github.com/healteex/trackctl/internal/mocks"
	"github.com/healteex/trackctl/internal/testutil"
)

func newDashboardService(t *testing.T) (*mocks.MockInventoryAPI, *DashboardService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	inventory := mocks.NewMockInventoryAPI(ctrl)
	svc := NewDashboardService(DashboardServiceOptions{Inventory: inventory})
	return inventory, svc
}

func expectAllCollections(inventory *mocks.MockInventoryAPI, token string) {
	fixture := testutil.DashboardFixture()
	inventory.EXPECT().ListFacilities(gomock.Any(), token).Return(fixture.Facilities, nil)
	inventory.EXPECT().ListMedicines(gomock.Any(), token).Return(fixture.Medicines, nil)
	inventory.EXPECT().ListTransactions(gomock.Any(), token).Return(fixture.Transactions, nil)
	inventory.EXPECT().ListStockSnapshots(gomock.Any(), token).Return(fixture.StockSnapshots, nil)
	inventory.EXPECT().ListForecasts(gomock.Any(), token).Return(fixture.Forecasts, nil)
	inventory.EXPECT().ListAlerts(gomock.Any(), token).Return(fixture.Alerts, nil)
}

func TestFetch_AssemblesAllCollections(t *testing.T) {
	inventory, svc := newDashboardService(t)
	expectAllCollections(inventory, "tok")

	dash, err := svc.Fetch(context.Background(), "tok")
	require.NoError(t, err)
	require.NotNil(t, dash)

	assert.Len(t, dash.Facilities, 2)
	assert.Len(t, dash.Medicines, 2)
	assert.Len(t, dash.Transactions, 2)
	assert.Len(t, dash.StockSnapshots, 2)
	assert.Len(t, dash.Forecasts, 1)
	assert.Len(t, dash.Alerts, 2)
}

func TestFetch_AllOrNothing(t *testing.T) {
	inventory, svc := newDashboardService(t)
	fixture := testutil.DashboardFixture()

	inventory.EXPECT().ListFacilities(gomock.Any(), "tok").Return(fixture.Facilities, nil).AnyTimes()
	inventory.EXPECT().ListMedicines(gomock.Any(), "tok").Return(fixture.Medicines, nil).AnyTimes()
	inventory.EXPECT().ListTransactions(gomock.Any(), "tok").Return(fixture.Transactions, nil).AnyTimes()
	inventory.EXPECT().ListStockSnapshots(gomock.Any(), "tok").Return(fixture.StockSnapshots, nil).AnyTimes()
	inventory.EXPECT().ListForecasts(gomock.Any(), "tok").Return(fixture.Forecasts, nil).AnyTimes()
	inventory.EXPECT().ListAlerts(gomock.Any(), "tok").Return(nil, errors.New("alerts unavailable")).AnyTimes()

	dash, err := svc.Fetch(context.Background(), "tok")
	require.Error(t, err)
	assert.Nil(t, dash, "a partial dashboard must never be produced")
}

func TestFetch_RequiresAccessToken(t *testing.T) {
	_, svc := newDashboardService(t)

	dash, err := svc.Fetch(context.Background(), "")
	require.Error(t, err)
	assert.Nil(t, dash)
	assert.True(t, apperr.IsUnauthorized(err))
}
