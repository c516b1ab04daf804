package controller

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/healteex/trackctl/internal/apperr"
	"github.com/healteex/trackctl/internal/domain/model"
	"github.com/healteex/trackctl/internal/ports"
	"github.com/healteex/trackctl/internal/session"
)

// datetimeLocalLayout is the value format of an HTML datetime-local input,
// which carries no zone; values are interpreted in the user's local time.
const datetimeLocalLayout = "2006-01-02T15:04"

// Refresher re-runs the dashboard fetch so freshly created records show up.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// FacilityForm holds the facility-creation screen's field state.
type FacilityForm struct {
	Name         string
	Code         string
	FacilityType string
	Ownership    string
	State        string
	City         string
	LGA          string
	Address      string
	ContactEmail string
	ContactPhone string
}

// InitialFacilityForm returns the form's initial values.
func InitialFacilityForm() FacilityForm {
	return FacilityForm{
		FacilityType: string(model.FacilityTypeHospital),
		Ownership:    string(model.OwnershipPublic),
	}
}

// FacilityFormController drives the create-and-refresh facility form.
type FacilityFormController struct {
	sessions  *session.Store
	inventory ports.InventoryAPI
	refresher Refresher

	form  FacilityForm
	state ScreenState
}

// FormControllerOptions groups dependencies shared by the create forms.
type FormControllerOptions struct {
	Sessions  *session.Store
	Inventory ports.InventoryAPI
	Refresher Refresher
}

// NewFacilityFormController constructs a FacilityFormController.
func NewFacilityFormController(opts FormControllerOptions) *FacilityFormController {
	return &FacilityFormController{
		sessions:  opts.Sessions,
		inventory: opts.Inventory,
		refresher: opts.Refresher,
		form:      InitialFacilityForm(),
		state:     ScreenState{Phase: PhaseIdle},
	}
}

// State returns the screen's lifecycle state.
func (c *FacilityFormController) State() ScreenState { return c.state }

// Form returns the current field state.
func (c *FacilityFormController) Form() FacilityForm { return c.form }

// Submit creates the facility, resets the form to its initial values on
// success, and re-runs the dashboard fetch so the new record is reflected.
func (c *FacilityFormController) Submit(ctx context.Context, form FacilityForm) error {
	c.form = form
	c.state = ScreenState{Phase: PhaseSubmitting}

	req := &model.CreateFacilityRequest{
		Name:         form.Name,
		Code:         form.Code,
		FacilityType: form.FacilityType,
		Ownership:    form.Ownership,
		State:        form.State,
		City:         form.City,
		LGA:          form.LGA,
		Address:      form.Address,
		ContactEmail: form.ContactEmail,
		ContactPhone: form.ContactPhone,
	}

	if _, err := c.inventory.CreateFacility(ctx, c.sessions.AccessToken(), req); err != nil {
		c.state = ScreenState{Phase: PhaseIdle, Status: apperr.Message(err, "Unable to create facility")}
		return err
	}

	c.form = InitialFacilityForm()
	c.state = ScreenState{Phase: PhaseIdle, Status: "Facility created"}
	if c.refresher != nil {
		// Refresh failures surface through the dashboard's own status.
		_ = c.refresher.Refresh(ctx)
	}
	return nil
}

// TransactionForm holds the transaction-recording screen's field state. The
// referential fields arrive as text, the way select inputs deliver them.
type TransactionForm struct {
	Facility          string
	Medicine          string
	TransactionType   string
	Quantity          string
	SourceDestination string
	Notes             string
	BatchNumber       string
	// OccurredAt is a datetime-local value, local time, minute precision.
	OccurredAt string
}

// InitialTransactionForm returns the form's initial values, stamping
// OccurredAt with the current local time.
func InitialTransactionForm(now time.Time) TransactionForm {
	return TransactionForm{
		TransactionType: string(model.TransactionTypeReceipt),
		OccurredAt:      now.Format(datetimeLocalLayout),
	}
}

// TransactionFormController drives the create-and-refresh transaction form.
type TransactionFormController struct {
	sessions  *session.Store
	inventory ports.InventoryAPI
	refresher Refresher
	now       func() time.Time

	form  TransactionForm
	state ScreenState
}

// NewTransactionFormController constructs a TransactionFormController.
func NewTransactionFormController(opts FormControllerOptions) *TransactionFormController {
	c := &TransactionFormController{
		sessions:  opts.Sessions,
		inventory: opts.Inventory,
		refresher: opts.Refresher,
		now:       time.Now,
		state:     ScreenState{Phase: PhaseIdle},
	}
	c.form = InitialTransactionForm(c.now())
	return c
}

// State returns the screen's lifecycle state.
func (c *TransactionFormController) State() ScreenState { return c.state }

// Form returns the current field state.
func (c *TransactionFormController) Form() TransactionForm { return c.form }

// Submit records the transaction after coercing field values to the wire
// shapes: numeric references, a zero-defaulted decimal quantity, and an
// absolute RFC 3339 timestamp from the zone-less datetime-local value. On
// success the form resets and the dashboard refetches.
func (c *TransactionFormController) Submit(ctx context.Context, form TransactionForm) error {
	c.form = form

	req, err := transactionRequest(form)
	if err != nil {
		c.state = ScreenState{Phase: PhaseIdle, Status: apperr.Message(err, "Unable to create transaction")}
		return err
	}

	c.state = ScreenState{Phase: PhaseSubmitting}
	if _, submitErr := c.inventory.CreateTransaction(ctx, c.sessions.AccessToken(), req); submitErr != nil {
		c.state = ScreenState{Phase: PhaseIdle, Status: apperr.Message(submitErr, "Unable to create transaction")}
		return submitErr
	}

	c.form = InitialTransactionForm(c.now())
	c.state = ScreenState{Phase: PhaseIdle, Status: "Transaction recorded"}
	if c.refresher != nil {
		_ = c.refresher.Refresh(ctx)
	}
	return nil
}

// transactionRequest coerces form fields into a creation payload.
func transactionRequest(form TransactionForm) (*model.CreateTransactionRequest, error) {
	facility, err := parseRef("facility", form.Facility)
	if err != nil {
		return nil, err
	}
	medicine, err := parseRef("medicine", form.Medicine)
	if err != nil {
		return nil, err
	}
	occurredAt, err := localToTimestamp(form.OccurredAt)
	if err != nil {
		return nil, err
	}

	return &model.CreateTransactionRequest{
		Facility:          facility,
		Medicine:          medicine,
		TransactionType:   form.TransactionType,
		Quantity:          form.Quantity,
		SourceDestination: form.SourceDestination,
		Notes:             form.Notes,
		BatchNumber:       form.BatchNumber,
		OccurredAt:        occurredAt,
	}, nil
}

// parseRef coerces a select-input value into an entity reference.
func parseRef(field, value string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.ValidationField(field, "select a "+field)
	}
	return id, nil
}

// localToTimestamp converts a datetime-local value to a full RFC 3339
// timestamp in UTC.
func localToTimestamp(value string) (string, error) {
	t, err := time.ParseInLocation(datetimeLocalLayout, strings.TrimSpace(value), time.Local)
	if err != nil {
		return "", apperr.ValidationField("occurred_at", "enter a valid date and time")
	}
	return t.UTC().Format(time.RFC3339), nil
}
