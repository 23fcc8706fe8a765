package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dukerupert/tenancy/internal"
	"github.com/dukerupert/tenancy/internal/domain"
	"github.com/dukerupert/tenancy/internal/format"
	"github.com/dukerupert/tenancy/internal/repository"
	"github.com/dukerupert/tenancy/internal/service"
	"github.com/spf13/cobra"
)

func invoicesCmd(load configLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoices",
		Short: "Inspect and maintain invoices",
	}
	cmd.AddCommand(overdueCmd(load), sweepCmd(load))
	return cmd
}

// withInvoices opens the database and builds an invoice service without a
// mailer or event publisher.
func withInvoices(load configLoader, fn func(context.Context, service.InvoiceService) error) error {
	cfg, err := load()
	if err != nil {
		return err
	}
	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	logger := internal.NewLogger(os.Stderr, cfg.Env, cfg.LogLevel)
	invoices := service.NewInvoiceService(repository.NewStore(db), nil, nil, cfg.BaseURL, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	return fn(ctx, invoices)
}

func overdueCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "overdue",
		Short: "List pending invoices past their due date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withInvoices(load, func(ctx context.Context, invoices service.InvoiceService) error {
				now := time.Now()
				list, err := invoices.ListOverdueInvoices(ctx, now)
				if err != nil {
					return err
				}
				return writeOverdue(cmd.OutOrStdout(), list, now)
			})
		},
	}
}

func sweepCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Persist pending -> overdue for invoices past their due date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withInvoices(load, func(ctx context.Context, invoices service.InvoiceService) error {
				n, err := invoices.MarkInvoicesOverdue(ctx, time.Now())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "marked %d invoice(s) overdue\n", n)
				return nil
			})
		},
	}
}

func writeOverdue(w io.Writer, invoices []domain.Invoice, now time.Time) error {
	if len(invoices) == 0 {
		_, err := fmt.Fprintln(w, "no overdue invoices")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tRECIPIENT\tTOTAL\tDUE\tSTATUS")
	for i := range invoices {
		inv := &invoices[i]
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			inv.ID,
			inv.RecipientName(),
			format.Currency(inv.Total),
			format.Date(inv.DueDate),
			format.DueLabel(inv.DueDate, now),
		)
	}
	return tw.Flush()
}
