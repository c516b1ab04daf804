package main

import (
	"context"
	"flag"
	"os"
	"text/tabwriter"
	"time"

	"github.com/healteex/trackctl/internal/controller"
	"github.com/healteex/trackctl/internal/domain/model"
)

type dashboardOptions struct {
	JSON         bool
	Query        string
	Transactions int
}

func parseDashboardFlags(args []string) (dashboardOptions, error) {
	fs := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts dashboardOptions
	fs.BoolVar(&opts.JSON, "json", false, "Emit the whole aggregate as JSON instead of tables")
	fs.StringVar(&opts.Query, "query", "", "JMESPath expression narrowing the JSON output (implies -json)")
	fs.IntVar(&opts.Transactions, "transactions", 10, "Number of recent transactions to show")

	if err := fs.Parse(args); err != nil {
		return dashboardOptions{}, err
	}
	return opts, nil
}

func runDashboard(cmdCtx *commandContext, args []string) error {
	opts, err := parseDashboardFlags(args)
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

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, 2*time.Minute)
	defer cancel()

	dash := controller.NewDashboardController(a.Sessions, a.Dashboard)
	if err := dash.Refresh(ctx); err != nil {
		return err
	}

	if opts.JSON || opts.Query != "" {
		return renderJSONQuery(os.Stdout, dash.Data(), opts.Query)
	}
	return renderDashboard(dash, opts.Transactions)
}

func renderDashboard(dash *controller.DashboardController, txnLimit int) error {
	summary := dash.Summary()
	data := dash.Data()
	index := dash.Index()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := writef(w, "Facilities\t%d\n", summary.Facilities); err != nil {
		return err
	}
	if err := writef(w, "Medicines\t%d\n", summary.Medicines); err != nil {
		return err
	}
	if err := writef(w, "Transactions\t%d\n", summary.Transactions); err != nil {
		return err
	}
	if err := writef(w, "Stock on hand\t%.0f\n", summary.TotalStockOnHand); err != nil {
		return err
	}
	if err := writef(w, "Open alerts\t%d\n", summary.OpenAlerts); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if summary.OpenAlerts > 0 {
		if err := renderOpenAlerts(data, index); err != nil {
			return err
		}
	}
	return renderRecentTransactions(data, index, txnLimit)
}

func renderOpenAlerts(data *model.Dashboard, index *model.Index) error {
	if err := writef(os.Stdout, "\nOpen alerts:\n"); err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := writef(w, "FACILITY\tMEDICINE\tTYPE\tMESSAGE\n"); err != nil {
		return err
	}
	for _, alert := range data.Alerts {
		if !alert.IsOpen() {
			continue
		}
		if err := writef(w, "%s\t%s\t%s\t%s\n",
			index.FacilityName(alert.Facility),
			index.MedicineName(alert.Medicine),
			alert.AlertType,
			alert.Message,
		); err != nil {
			return err
		}
	}
	return w.Flush()
}

func renderRecentTransactions(data *model.Dashboard, index *model.Index, limit int) error {
	if len(data.Transactions) == 0 || limit <= 0 {
		return nil
	}

	if err := writef(os.Stdout, "\nRecent transactions:\n"); err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := writef(w, "WHEN\tFACILITY\tMEDICINE\tTYPE\tQTY\n"); err != nil {
		return err
	}
	txns := data.Transactions
	if len(txns) > limit {
		txns = txns[:limit]
	}
	for _, txn := range txns {
		if err := writef(w, "%s\t%s\t%s\t%s\t%s\n",
			txn.OccurredAt,
			index.FacilityName(txn.Facility),
			index.MedicineName(txn.Medicine),
			txn.TransactionType,
			txn.Quantity,
		); err != nil {
			return err
		}
	}
	return w.Flush()
}
