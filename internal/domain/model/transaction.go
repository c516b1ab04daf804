//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"strings"
	"time"

	"github.com/healteex/trackctl/internal/apperr"
)

// TransactionType classifies an inventory movement.
type TransactionType string

const (
	TransactionTypeReceipt    TransactionType = "receipt"
	TransactionTypeIssue      TransactionType = "issue"
	TransactionTypeAdjustment TransactionType = "adjustment"
	TransactionTypeStockCount TransactionType = "stock_count"
)

// Valid reports whether the transaction type is supported.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeReceipt, TransactionTypeIssue, TransactionTypeAdjustment, TransactionTypeStockCount:
		return true
	default:
		return false
	}
}

// String returns the string representation of the transaction type.
func (t TransactionType) String() string {
	return string(t)
}

// InventoryTransaction is a movement of medicine stock at a facility.
// Quantities travel as decimal strings to avoid float drift on the wire.
type InventoryTransaction struct {
	ID                int64  `json:"id"`
	Facility          int64  `json:"facility"`
	Medicine          int64  `json:"medicine"`
	TransactionType   string `json:"transaction_type"`
	Quantity          string `json:"quantity"`
	BatchNumber       string `json:"batch_number"`
	SourceDestination string `json:"source_destination"`
	OccurredAt        string `json:"occurred_at"`
	Notes             string `json:"notes"`
}

// CreateTransactionRequest is the creation payload for the transactions
// endpoint. OccurredAt must already be an absolute RFC 3339 timestamp.
type CreateTransactionRequest struct {
	Facility          int64  `json:"facility"`
	Medicine          int64  `json:"medicine"`
	TransactionType   string `json:"transaction_type"`
	Quantity          string `json:"quantity"`
	SourceDestination string `json:"source_destination"`
	Notes             string `json:"notes"`
	BatchNumber       string `json:"batch_number,omitempty"`
	OccurredAt        string `json:"occurred_at"`
}

// Normalize trims free text and defaults a blank quantity to zero.
func (r *CreateTransactionRequest) Normalize() {
	r.TransactionType = strings.ToLower(strings.TrimSpace(r.TransactionType))
	r.Quantity = strings.TrimSpace(r.Quantity)
	if r.Quantity == "" {
		r.Quantity = "0"
	}
	r.SourceDestination = strings.TrimSpace(r.SourceDestination)
	r.Notes = strings.TrimSpace(r.Notes)
	r.BatchNumber = strings.TrimSpace(r.BatchNumber)
}

// Validate checks referential fields, the type enumeration, and the timestamp.
func (r *CreateTransactionRequest) Validate() error {
	if r.Facility <= 0 {
		return apperr.ValidationField("facility", "facility is required")
	}
	if r.Medicine <= 0 {
		return apperr.ValidationField("medicine", "medicine is required")
	}
	if !TransactionType(r.TransactionType).Valid() {
		return apperr.ValidationField("transaction_type", "unsupported transaction type")
	}
	if _, err := time.Parse(time.RFC3339, r.OccurredAt); err != nil {
		return apperr.ValidationField("occurred_at", "occurred_at must be an RFC 3339 timestamp")
	}
	return nil
}
