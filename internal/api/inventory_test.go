package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healteex/trackctl/internal/apperr"
	"github.com/healteex/trackctl/internal/domain/model"
)

func TestCreateFacility_ForcesActive(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":5,"name":"General Hospital","code":"GH-01"}`))
	}))
	defer srv.Close()

	client := NewClient(Options{BaseURL: srv.URL})
	created, err := client.CreateFacility(context.Background(), "tok", &model.CreateFacilityRequest{
		Name:         "  General Hospital ",
		Code:         "GH-01",
		FacilityType: "Hospital",
		Ownership:    "PUBLIC",
		State:        "Lagos",
		IsActive:     false,
	})
	require.NoError(t, err)

	assert.Equal(t, true, gotBody["is_active"])
	assert.Equal(t, "General Hospital", gotBody["name"])
	assert.Equal(t, "hospital", gotBody["facility_type"])
	assert.Equal(t, "public", gotBody["ownership"])
	assert.Equal(t, int64(5), created.ID)
}

func TestCreateFacility_ValidationBeforeRequest(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))
	defer srv.Close()

	client := NewClient(Options{BaseURL: srv.URL})
	_, err := client.CreateFacility(context.Background(), "tok", &model.CreateFacilityRequest{
		Name: "Missing everything else",
	})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.False(t, called)
}

func TestCreateFacility_NilRequest(t *testing.T) {
	client := NewClient(Options{BaseURL: "http://localhost:0"})
	_, err := client.CreateFacility(context.Background(), "tok", nil)
	require.Error(t, err)
}

func TestCreateTransaction_BlankBatchOmitted(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":9,"facility":1,"medicine":10}`))
	}))
	defer srv.Close()

	client := NewClient(Options{BaseURL: srv.URL})
	created, err := client.CreateTransaction(context.Background(), "tok", &model.CreateTransactionRequest{
		Facility:        1,
		Medicine:        10,
		TransactionType: "receipt",
		Quantity:        "",
		BatchNumber:     "   ",
		OccurredAt:      "2026-08-31T12:00:00Z",
	})
	require.NoError(t, err)

	assert.NotContains(t, gotBody, "batch_number")
	assert.Equal(t, "0", gotBody["quantity"])
	assert.Equal(t, int64(9), created.ID)
}

func TestCreateTransaction_KeepsBatchWhenPresent(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"id":9}`))
	}))
	defer srv.Close()

	client := NewClient(Options{BaseURL: srv.URL})
	_, err := client.CreateTransaction(context.Background(), "tok", &model.CreateTransactionRequest{
		Facility:        1,
		Medicine:        10,
		TransactionType: "issue",
		Quantity:        "25",
		BatchNumber:     "B-42",
		OccurredAt:      "2026-08-31T12:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, "B-42", gotBody["batch_number"])
}

func TestCreateTransaction_RejectsBadTimestamp(t *testing.T) {
	client := NewClient(Options{BaseURL: "http://localhost:0"})
	_, err := client.CreateTransaction(context.Background(), "tok", &model.CreateTransactionRequest{
		Facility:        1,
		Medicine:        10,
		TransactionType: "receipt",
		OccurredAt:      "2026-08-31T12:00", // missing zone
	})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestListStockSnapshots(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[
			{"id":1,"facility":1,"medicine":10,"stock_on_hand":"42.5"},
			{"id":2,"facility":2,"medicine":11,"stock_on_hand":"not-a-number"}
		]`))
	}))
	defer srv.Close()

	client := NewClient(Options{BaseURL: srv.URL})
	snaps, err := client.ListStockSnapshots(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, snaps, 2)
	assert.Equal(t, 42.5, snaps[0].Quantity())
	assert.Equal(t, float64(0), snaps[1].Quantity())
}
