// Command main seeds the development database with demo data.
package main

import (
	"flag"
	"log"

	"ripple/internal/config"
	"ripple/internal/database"
	"ripple/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 20, "number of users to create")
	numPosts := flag.Int("posts", 100, "number of posts to create")
	maxDays := flag.Int("max-days", 90, "spread of post timestamps in days")
	skipBcrypt := flag.Bool("skip-bcrypt", false, "store plaintext demo passwords (fast local seeding)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Env == "production" || cfg.Env == "prod" {
		log.Fatal("Refusing to seed a production database")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:   *numUsers,
		NumPosts:   *numPosts,
		MaxDays:    *maxDays,
		SkipBcrypt: *skipBcrypt,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
