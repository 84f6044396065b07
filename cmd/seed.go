package cmd

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"pricepilot/internal/factories"
	"pricepilot/internal/models"
	"pricepilot/internal/repositories/postgres"
)

var (
	seedUsers    int
	seedProducts int
	seedBookings int
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate demo users, products and bookings",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		rand.Seed(int64(cfg.Seed))

		ctx := context.Background()
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error connecting to postgres: %v\n", err)
			os.Exit(1)
		}
		defer pool.Close()

		if err := seedData(ctx, pool); err != nil {
			fmt.Fprintf(os.Stderr, "Seed failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func seedData(ctx context.Context, pool *pgxpool.Pool) error {
	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	bookingRepo := postgres.NewBookingRepository(pool)

	userFactory := &factories.UserFactory{}
	productFactory := &factories.ProductFactory{}
	bookingFactory := &factories.BookingFactory{}

	supplierIDs := make([]int, 0, seedUsers)
	for i := 0; i < seedUsers; i++ {
		user := userFactory.CreateUser()
		if err := userRepo.Create(ctx, &user); err != nil {
			return fmt.Errorf("seeding user: %w", err)
		}
		if user.Role == models.RoleSupplier {
			supplierIDs = append(supplierIDs, user.ID)
		}
	}
	if len(supplierIDs) == 0 {
		supplier := userFactory.CreateUser()
		supplier.Role = models.RoleSupplier
		if err := userRepo.Create(ctx, &supplier); err != nil {
			return fmt.Errorf("seeding supplier: %w", err)
		}
		supplierIDs = append(supplierIDs, supplier.ID)
	}

	products := make([]*models.Product, seedProducts)
	for i := range products {
		product := productFactory.CreateProduct(supplierIDs[rand.Intn(len(supplierIDs))])
		products[i] = &product
	}
	if err := productRepo.BulkCreate(ctx, products); err != nil {
		return fmt.Errorf("seeding products: %w", err)
	}

	base := time.Now().Truncate(24 * time.Hour)
	bookings := make([]*models.Booking, seedBookings)
	for i := range bookings {
		booking := bookingFactory.CreateBooking(base, 30)
		bookings[i] = &booking
	}
	if err := bookingRepo.BulkCreate(ctx, bookings); err != nil {
		return fmt.Errorf("seeding bookings: %w", err)
	}

	fmt.Printf("Seeded %d users, %d products, %d bookings\n", seedUsers, seedProducts, seedBookings)
	return nil
}

func init() {
	seedCmd.Flags().IntVar(&seedUsers, "users", 20, "Number of users to generate")
	seedCmd.Flags().IntVar(&seedProducts, "products", 100, "Number of products to generate")
	seedCmd.Flags().IntVar(&seedBookings, "bookings", 200, "Number of bookings to generate")
	rootCmd.AddCommand(seedCmd)
}
