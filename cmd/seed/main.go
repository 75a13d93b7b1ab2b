// Command main runs the database seeder for Tradepost.
package main

import (
	"flag"
	"log"

	"tradepost/internal/bootstrap"
	"tradepost/internal/config"
	"tradepost/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 25, "Number of users to create")
	numProducts := flag.Int("products", 100, "Number of listings to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d users, %d listings, clean=%v\n", *numUsers, *numProducts, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, _, err := bootstrap.InitRuntime(cfg, bootstrap.Options{})
	if err != nil {
		log.Fatalf("Failed to initialize runtime: %v", err)
	}

	seeder := seed.NewSeeder(db)

	if *shouldClean {
		if err := seeder.ClearAll(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	if err := seeder.SeedMarketplace(*numUsers, *numProducts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding complete")
}
