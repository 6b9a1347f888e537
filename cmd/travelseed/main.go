package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ikkkkak/travel-listings/config"
	"github.com/ikkkkak/travel-listings/seed"
	"github.com/ikkkkak/travel-listings/storage"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "travelseed",
		Short: "Travel listings database tool",
	}

	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func seedCmd() *cobra.Command {
	seedCfg := seed.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the database with sample users, listings, bookings and reviews",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			seedCfg.AllowHostBooking = cfg.AllowHostBooking

			db, err := storage.Connect(cfg)
			if err != nil {
				return err
			}
			repo := storage.NewRepository(db, cfg, storage.NewRatingCache(cfg.RedisAddr))

			seeder, err := seed.NewSeeder(repo, seed.NewSampler(time.Now().UnixNano()), seedCfg)
			if err != nil {
				return err
			}

			summary, err := seeder.Run()
			if err != nil {
				return err
			}

			fmt.Printf("created %d users, %d listings, %d bookings, %d reviews\n",
				summary.Users, summary.Listings, summary.Bookings, summary.Reviews)
			if summary.SkippedBookings > 0 || summary.SkippedReviews > 0 {
				fmt.Printf("skipped %d bookings and %d reviews after retry exhaustion\n",
					summary.SkippedBookings, summary.SkippedReviews)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&seedCfg.Users, "users", seedCfg.Users, "number of users to create")
	cmd.Flags().IntVar(&seedCfg.Listings, "listings", seedCfg.Listings, "number of listings to create")
	cmd.Flags().IntVar(&seedCfg.Bookings, "bookings", seedCfg.Bookings, "number of bookings to create")
	cmd.Flags().IntVar(&seedCfg.Reviews, "reviews", seedCfg.Reviews, "number of reviews to create")
	cmd.Flags().BoolVar(&seedCfg.Clean, "clean", false, "delete existing data before seeding")

	return cmd
}
