// Package main provides admin management utilities for Blogicum.
// Categories and locations have no web UI; their lifecycle is managed here.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"blogicum/internal/cache"
	"blogicum/internal/config"
	"blogicum/internal/database"
	"blogicum/internal/models"
	"blogicum/internal/repository"
	"blogicum/internal/validation"
)

func usage() {
	fmt.Println("Usage:")
	fmt.Println("  go run ./cmd/admin category create <title> <slug> [description]")
	fmt.Println("  go run ./cmd/admin category list")
	fmt.Println("  go run ./cmd/admin category publish <id>")
	fmt.Println("  go run ./cmd/admin category unpublish <id>")
	fmt.Println("  go run ./cmd/admin category delete <id>")
	fmt.Println("  go run ./cmd/admin location create <name>")
	fmt.Println("  go run ./cmd/admin location list")
	fmt.Println("  go run ./cmd/admin location publish <id>")
	fmt.Println("  go run ./cmd/admin location unpublish <id>")
	fmt.Println("  go run ./cmd/admin location delete <id>")
	os.Exit(1)
}

func main() {
	if len(os.Args) < 3 {
		usage()
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// The repositories invalidate cached entries on mutation; without a
	// client the running API would keep serving stale categories until TTL.
	cache.InitRedis(cfg.RedisURL)

	ctx := context.Background()

	switch os.Args[1] {
	case "category":
		runCategory(ctx, repository.NewCategoryRepository(db), os.Args[2:])
	case "location":
		runLocation(ctx, repository.NewLocationRepository(db), os.Args[2:])
	default:
		fmt.Printf("Unknown entity: %s\n", os.Args[1])
		usage()
	}
}

func runCategory(ctx context.Context, repo repository.CategoryRepository, args []string) {
	switch args[0] {
	case "create":
		if len(args) < 3 {
			usage()
		}
		title, slug := args[1], args[2]
		description := ""
		if len(args) > 3 {
			description = args[3]
		}
		if err := validation.ValidateCategorySlug(slug); err != nil {
			log.Fatalf("Invalid slug: %v", err)
		}
		category := &models.Category{
			Title:       title,
			Slug:        slug,
			Description: description,
			IsPublished: true,
		}
		if err := repo.Create(ctx, category); err != nil {
			log.Fatalf("Failed to create category: %v", err)
		}
		fmt.Printf("Created category %q (ID: %d, slug: %s)\n", category.Title, category.ID, category.Slug)

	case "list":
		categories, err := repo.List(ctx)
		if err != nil {
			log.Fatalf("Failed to list categories: %v", err)
		}
		if len(categories) == 0 {
			fmt.Println("No categories found")
			return
		}
		for _, c := range categories {
			state := "published"
			if !c.IsPublished {
				state = "unpublished"
			}
			fmt.Printf("%4d  %-32s  %-24s  %s\n", c.ID, c.Title, c.Slug, state)
		}

	case "publish", "unpublish":
		id := parseIDArg(args)
		categories, err := repo.List(ctx)
		if err != nil {
			log.Fatalf("Failed to load categories: %v", err)
		}
		for _, c := range categories {
			if c.ID == id {
				c.IsPublished = args[0] == "publish"
				if err := repo.Update(ctx, c); err != nil {
					log.Fatalf("Failed to update category: %v", err)
				}
				fmt.Printf("Category %q is now %sed\n", c.Title, args[0])
				return
			}
		}
		log.Fatalf("Category with ID %d not found", id)

	case "delete":
		id := parseIDArg(args)
		if err := repo.Delete(ctx, id); err != nil {
			log.Fatalf("Failed to delete category: %v", err)
		}
		fmt.Printf("Deleted category %d (its posts keep living without a category)\n", id)

	default:
		usage()
	}
}

func runLocation(ctx context.Context, repo repository.LocationRepository, args []string) {
	switch args[0] {
	case "create":
		if len(args) < 2 {
			usage()
		}
		location := &models.Location{Name: args[1], IsPublished: true}
		if err := repo.Create(ctx, location); err != nil {
			log.Fatalf("Failed to create location: %v", err)
		}
		fmt.Printf("Created location %q (ID: %d)\n", location.Name, location.ID)

	case "list":
		locations, err := repo.List(ctx)
		if err != nil {
			log.Fatalf("Failed to list locations: %v", err)
		}
		if len(locations) == 0 {
			fmt.Println("No locations found")
			return
		}
		for _, l := range locations {
			state := "published"
			if !l.IsPublished {
				state = "unpublished"
			}
			fmt.Printf("%4d  %-32s  %s\n", l.ID, l.Name, state)
		}

	case "publish", "unpublish":
		id := parseIDArg(args)
		location, err := repo.GetByID(ctx, id)
		if err != nil {
			log.Fatalf("Failed to load location: %v", err)
		}
		location.IsPublished = args[0] == "publish"
		if err := repo.Update(ctx, location); err != nil {
			log.Fatalf("Failed to update location: %v", err)
		}
		fmt.Printf("Location %q is now %sed\n", location.Name, args[0])

	case "delete":
		id := parseIDArg(args)
		if err := repo.Delete(ctx, id); err != nil {
			log.Fatalf("Failed to delete location: %v", err)
		}
		fmt.Printf("Deleted location %d (its posts keep living without a location)\n", id)

	default:
		usage()
	}
}

func parseIDArg(args []string) uint {
	if len(args) < 2 {
		usage()
	}
	id, err := strconv.ParseUint(args[1], 10, 32)
	if err != nil || id == 0 {
		log.Fatalf("Invalid ID: %s", args[1])
	}
	return uint(id)
}
