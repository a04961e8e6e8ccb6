// Command main runs the database seeder for the blog.
package main

import (
	"flag"
	"log"

	"github.com/Brooktek/Zeme-Blog-Library-sub000/internal/config"
	"github.com/Brooktek/Zeme-Blog-Library-sub000/internal/database"
	"github.com/Brooktek/Zeme-Blog-Library-sub000/internal/seed"

	"github.com/joho/godotenv"
)

func main() {
	numCategories := flag.Int("categories", 5, "Number of categories to create")
	numTags := flag.Int("tags", 12, "Number of tags to create")
	numPosts := flag.Int("posts", 40, "Number of posts to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(db, seed.Options{
		Categories: *numCategories,
		Tags:       *numTags,
		Posts:      *numPosts,
	})

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	if err := s.Run(); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Seeded %d categories, %d tags, %d posts", *numCategories, *numTags, *numPosts)
}
