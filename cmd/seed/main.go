// Command seed fills the venue database with demo data: a batch of venues,
// a demo account (nickname "demo", password "demo123") and a few reviews.
// Venues have no write path in the application itself, so this tool inserts
// them directly; users and reviews go through the store.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
	"venuedir/internal/db"
	"venuedir/internal/store"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/joho/godotenv"
)

const venueCount = 25

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on the environment")
	}

	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "venues.db"
	}

	database, err := db.New(path, 1, 1, "15m")
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	if err := store.EnsureSchema(database); err != nil {
		log.Fatal(err)
	}

	gofakeit.Seed(0)
	ctx := context.Background()

	venueIDs, err := seedVenues(database)
	if err != nil {
		log.Fatal(err)
	}

	storage := store.NewStorage(database)

	demo := &store.User{Nickname: "demo"}
	if err := demo.Password.Set("demo123"); err != nil {
		log.Fatal(err)
	}
	if err := storage.Users.Create(ctx, demo); err != nil {
		if err == store.ErrDuplicateNickname {
			log.Fatal("database already seeded; remove the file to reseed")
		}
		log.Fatal(err)
	}

	for i := 0; i < 5; i++ {
		review := &store.Review{
			VenueID:   venueIDs[gofakeit.Number(0, len(venueIDs)-1)],
			UserID:    demo.ID,
			Text:      gofakeit.Sentence(12),
			CreatedAt: time.Now().Add(-time.Duration(i) * time.Hour).UTC(),
		}
		if err := storage.Reviews.Create(ctx, review); err != nil {
			log.Fatal(err)
		}
	}

	log.Printf("seeded %d venues, 1 user, 5 reviews into %s", len(venueIDs), path)
}

func seedVenues(database *sql.DB) ([]int64, error) {
	query := `
		INSERT INTO venues (name, address, playground, fenced, quiet_zones, colors,
		                    smells, food_own, defined_duration, quiet, crowdedness,
		                    food_variey, photo_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	ids := make([]int64, 0, venueCount)
	for i := 0; i < venueCount; i++ {
		res, err := database.Exec(query,
			fmt.Sprintf("%s %s", gofakeit.Adjective(), gofakeit.Noun()),
			fmt.Sprintf("%s, %s", gofakeit.Street(), gofakeit.City()),
			yesNo(),
			yesNo(),
			yesNo(),
			code(),
			code(),
			yesNo(),
			yesNo(),
			code(),
			code(),
			code(),
			gofakeit.ImageURL(640, 480),
		)
		if err != nil {
			return nil, err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func yesNo() string {
	if gofakeit.Bool() {
		return "yes"
	}
	return "no"
}

func code() string {
	return strconv.Itoa(gofakeit.Number(1, 3))
}
