package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/chkwon/redpen-app/internal/config"
	"github.com/chkwon/redpen-app/internal/db"
	"github.com/chkwon/redpen-app/internal/storage"
)

var (
	deliveriesLimit int
	deliveriesJSON  bool
)

var deliveriesCmd = &cobra.Command{
	Use:   "deliveries",
	Short: "Lists recent webhook deliveries from the audit log",
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if !cfg.Database.Enabled() {
			return fmt.Errorf("no delivery database configured (set DB_HOST)")
		}

		database, closeDB, err := db.NewDatabase(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to delivery database: %w", err)
		}
		defer closeDB()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		records, err := storage.NewStore(database.DB).ListRecent(ctx, deliveriesLimit)
		if err != nil {
			return fmt.Errorf("failed to list deliveries: %w", err)
		}

		if deliveriesJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(records)
		}

		if len(records) == 0 {
			warnColor.Println("no deliveries recorded yet")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "RECEIVED\tREPOSITORY\tSHA\tCOMMENTER\tOUTCOME\tMODE\tLANG")
		for _, d := range records {
			sha := d.CommitSHA
			if len(sha) > 7 {
				sha = sha[:7]
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				d.ReceivedAt.Format(time.RFC822),
				d.RepoFullName,
				sha,
				d.Commenter,
				d.Outcome,
				d.Mode,
				d.Language,
			)
		}
		return w.Flush()
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	deliveriesCmd.Flags().IntVar(&deliveriesLimit, "limit", 20, "maximum number of records to show")
	deliveriesCmd.Flags().BoolVar(&deliveriesJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(deliveriesCmd)
}
