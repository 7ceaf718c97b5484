// Command main runs the database seeder for the Moviechill user directory.
package main

import (
	"flag"
	"log"

	"github.com/doqhuy/moviechill-backend/internal/config"
	"github.com/doqhuy/moviechill-backend/internal/database"
	"github.com/doqhuy/moviechill-backend/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 50, "Number of users to create")
	avgFollows := flag.Int("follows", 5, "Average follows per user")
	numSurveys := flag.Int("surveys", 30, "Number of survey responses to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")
	log.Printf("Target: %d users, ~%d follows each, %d surveys, clean=%v\n",
		*numUsers, *avgFollows, *numSurveys, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(db)

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("❌ Cleanup failed: %v", err)
		}
	}

	users, err := s.SeedDirectory(*numUsers)
	if err != nil {
		log.Fatalf("❌ User seeding failed: %v", err)
	}

	edges, err := s.SeedFollowMesh(users, *avgFollows)
	if err != nil {
		log.Fatalf("❌ Follow mesh seeding failed: %v", err)
	}
	log.Printf("Created %d follow edges\n", edges)

	if err := s.SeedSurveys(*numSurveys); err != nil {
		log.Fatalf("❌ Survey seeding failed: %v", err)
	}

	log.Println("✨ All done! Your database is now populated with test data.")
	log.Println("📧 All test users have the password: password123")
	log.Println("👤 Admin account: admin@moviechill.local / adminuser")
}
