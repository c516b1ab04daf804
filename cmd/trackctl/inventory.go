package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/healteex/trackctl/internal/controller"
)

func parseFacilityFlags(args []string) (controller.FacilityForm, error) {
	fs := flag.NewFlagSet("facility-create", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	form := controller.InitialFacilityForm()
	fs.StringVar(&form.Name, "name", "", "Facility name (required)")
	fs.StringVar(&form.Code, "code", "", "Unique facility code (required)")
	fs.StringVar(&form.FacilityType, "type", form.FacilityType, "Facility type: hospital, clinic, pharmacy, health_post, warehouse")
	fs.StringVar(&form.Ownership, "ownership", form.Ownership, "Ownership: public, private, faith_based, ngo")
	fs.StringVar(&form.State, "state", "", "State (required)")
	fs.StringVar(&form.City, "city", "", "City")
	fs.StringVar(&form.LGA, "lga", "", "Local government area")
	fs.StringVar(&form.Address, "address", "", "Street address")
	fs.StringVar(&form.ContactEmail, "contact-email", "", "Contact email")
	fs.StringVar(&form.ContactPhone, "contact-phone", "", "Contact phone")

	if err := fs.Parse(args); err != nil {
		return controller.FacilityForm{}, err
	}
	return form, nil
}

func runFacilityCreate(cmdCtx *commandContext, args []string) error {
	form, err := parseFacilityFlags(args)
	if err != nil {
		return err
	}

	a, err := newApp(cmdCtx)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.requireAuth(controller.RouteDashboard); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, 30*time.Second)
	defer cancel()

	facilities := controller.NewFacilityFormController(controller.FormControllerOptions{
		Sessions:  a.Sessions,
		Inventory: a.API,
	})
	if err := facilities.Submit(ctx, form); err != nil {
		return err
	}
	return writeln(os.Stdout, facilities.State().Status)
}

func parseTxnFlags(args []string) (controller.TransactionForm, error) {
	fs := flag.NewFlagSet("txn-record", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	form := controller.InitialTransactionForm(time.Now())
	fs.StringVar(&form.Facility, "facility", "", "Facility id (required)")
	fs.StringVar(&form.Medicine, "medicine", "", "Medicine id (required)")
	fs.StringVar(&form.TransactionType, "type", form.TransactionType, "Transaction type: receipt, issue, adjustment, stock_count")
	fs.StringVar(&form.Quantity, "quantity", "", `Quantity as a decimal string (defaults to "0")`)
	fs.StringVar(&form.SourceDestination, "source", "", "Source or destination of the movement")
	fs.StringVar(&form.BatchNumber, "batch", "", "Batch number (omitted from the payload when blank)")
	fs.StringVar(&form.Notes, "notes", "", "Free-text notes")
	fs.StringVar(&form.OccurredAt, "occurred-at", form.OccurredAt, "Local time of the movement, e.g. 2026-08-31T14:30")

	if err := fs.Parse(args); err != nil {
		return controller.TransactionForm{}, err
	}
	return form, nil
}

func runTxnRecord(cmdCtx *commandContext, args []string) error {
	form, err := parseTxnFlags(args)
	if err != nil {
		return err
	}

	a, err := newApp(cmdCtx)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.requireAuth(controller.RouteDashboard); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, 30*time.Second)
	defer cancel()

	txns := controller.NewTransactionFormController(controller.FormControllerOptions{
		Sessions:  a.Sessions,
		Inventory: a.API,
	})
	if err := txns.Submit(ctx, form); err != nil {
		return err
	}
	return writeln(os.Stdout, txns.State().Status)
}
