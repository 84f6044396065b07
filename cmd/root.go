package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pricepilot/internal/auth"
	"pricepilot/internal/dataset"
	"pricepilot/internal/email"
	"pricepilot/internal/events"
	"pricepilot/internal/forecast"
	"pricepilot/internal/models"
	"pricepilot/internal/pricing"
	"pricepilot/internal/repositories/postgres"
	"pricepilot/internal/server"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "pricepilot",
	Short: "Price optimisation backend for marketplace products and hotel menus",
	Long:  `pricepilot serves a product marketplace API whose create and update paths run a rule-based price optimizer and a trained demand forecaster, plus a hotel menu pricing API driven by booking headcounts.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		if err := serve(cfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func serve(cfg *models.Config) error {
	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connecting to postgres: %w", err)
	}
	defer pool.Close()

	// training happens before the server accepts a single request; a missing
	// dataset is fatal
	forecaster, err := forecast.NewFromPath(ctx, cfg.ProductDataPath, cfg.Forest)
	if err != nil {
		return fmt.Errorf("training demand forecaster: %w", err)
	}

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.KafkaEnabled {
		kafkaPublisher, err := events.NewKafkaPublisher(cfg)
		if err != nil {
			return fmt.Errorf("creating kafka publisher: %w", err)
		}
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	}

	var mailer email.Sender = email.NopSender{}
	if cfg.SMTP.Host != "" {
		mailer = email.NewSMTPSender(cfg.SMTP)
	}

	userRepo := postgres.NewUserRepository(pool)
	srv := server.New(cfg, server.Deps{
		Users:      userRepo,
		Products:   postgres.NewProductRepository(pool),
		MenuItems:  postgres.NewMenuItemRepository(pool),
		Auth:       auth.NewService(userRepo),
		Tokens:     auth.NewTokenManager(cfg.JwtSecret, cfg.TokenExpiry),
		Optimizer:  pricing.NewPriceOptimizer(),
		Forecaster: forecaster,
		Bookings:   dataset.NewBookingSource(cfg.BookingDataPath),
		Publisher:  publisher,
		Mailer:     mailer,
	})

	log.Printf("serving on %s", cfg.ServerAddress)
	return srv.Run()
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is examples/config.json)")

	rootCmd.Flags().String("server-address", ":8000", "Address the API listens on")
	rootCmd.Flags().String("database-url", "", "Postgres connection string")
	rootCmd.Flags().String("product-data-path", "data/product_data.csv", "Historical product dataset for forecaster training")
	rootCmd.Flags().String("booking-data-path", "data/booking_metadata.csv", "Booking metadata dataset for menu pricing")
	rootCmd.Flags().Int("seed", 42, "Random seed for data generation")
	rootCmd.Flags().Bool("kafka-enabled", false, "Enable Kafka pricing events")
	rootCmd.Flags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")

	viper.BindPFlags(rootCmd.Flags())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("examples")
		viper.SetConfigType("json")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
