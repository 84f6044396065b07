package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"pricepilot/internal/ingest"
	"pricepilot/internal/models"
	"pricepilot/internal/repositories/postgres"
)

var (
	ingestFile    string
	ingestReplace bool
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Bulk-load booking metadata from CSV into postgres",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		path := ingestFile
		if path == "" {
			path = cfg.BookingDataPath
		}

		ctx := context.Background()
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error connecting to postgres: %v\n", err)
			os.Exit(1)
		}
		defer pool.Close()

		count, err := ingest.Bookings(ctx, path, postgres.NewBookingRepository(pool), ingestReplace)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Ingest failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Ingested %d bookings\n", count)
	},
}

func init() {
	ingestCmd.Flags().StringVar(&ingestFile, "file", "", "Booking CSV path (defaults to booking_data_path from config)")
	ingestCmd.Flags().BoolVar(&ingestReplace, "replace", false, "Truncate existing bookings before loading")
	rootCmd.AddCommand(ingestCmd)
}
