package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"pricepilot/internal/export"
	"pricepilot/internal/models"
	"pricepilot/internal/repositories/postgres"
)

var exportFile string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the priced product catalogue to parquet",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		path := exportFile
		if path == "" {
			path = cfg.ExportPath
		}
		if path == "" {
			path = "products.parquet"
		}

		ctx := context.Background()
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error connecting to postgres: %v\n", err)
			os.Exit(1)
		}
		defer pool.Close()

		count, err := export.Products(ctx, postgres.NewProductRepository(pool), path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Export failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Exported %d products to %s\n", count, path)
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFile, "file", "", "Output parquet path (defaults to export_path from config)")
	rootCmd.AddCommand(exportCmd)
}
