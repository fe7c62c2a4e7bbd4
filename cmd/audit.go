package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/byiringiro-albert/portfolio/internal/audit"
	"github.com/byiringiro-albert/portfolio/internal/config"
)

func newAuditCmd() *cobra.Command {
	var dbPath string
	var limit int

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "List recorded download requests",
		Long: `List the most recent download requests from the SQLite audit database.

Requests are only recorded there when the server runs with AUDIT_DB_PATH set.`,
		Example: `  # Last 20 requests
  portfolio audit --db audit.db

  # Last 100 requests
  portfolio audit --db audit.db --limit 100`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbPath == "" {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				dbPath = cfg.AuditDBPath
			}
			if dbPath == "" {
				return fmt.Errorf("--db is required when AUDIT_DB_PATH is not set")
			}
			if limit < 1 {
				return fmt.Errorf("--limit must be at least 1")
			}

			store, err := audit.NewSQLite(dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			records, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "REQUEST\tPUBLICATION\tNAME\tEMAIL\tINSTITUTION\tTIMESTAMP\tIP")
			fmt.Fprintln(tw, "-------\t-----------\t----\t-----\t-----------\t---------\t--")
			for _, rec := range records {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					rec.RequestID, rec.PublicationID, rec.Name, rec.Email, rec.Institution,
					rec.Timestamp.Format("2006-01-02 15:04:05Z07:00"), rec.IP)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "\nTotal: %d requests\n", len(records))
			return err
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "Audit database path (defaults to AUDIT_DB_PATH)")
	cmd.Flags().IntVar(&limit, "limit", 20, "Number of requests to show")

	return cmd
}
