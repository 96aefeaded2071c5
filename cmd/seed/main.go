// Command main runs the database seeder for Blogicum.
package main

import (
	"flag"
	"log"

	"blogicum/internal/config"
	"blogicum/internal/database"
	"blogicum/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 20, "Number of users to create")
	numCategories := flag.Int("categories", 6, "Number of categories to create")
	numLocations := flag.Int("locations", 8, "Number of locations to create")
	numPosts := flag.Int("posts", 120, "Number of posts to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d users, %d categories, %d locations, %d posts, clean=%v\n",
		*numUsers, *numCategories, *numLocations, *numPosts, *shouldClean)

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
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	opts := seed.Options{
		Users:      *numUsers,
		Categories: *numCategories,
		Locations:  *numLocations,
		Posts:      *numPosts,
	}
	if err := s.Run(opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Done")
}
