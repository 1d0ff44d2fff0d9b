// Seeds the neighborhood database with demo users, resources, spaces,
// events and messages. Run from the repository root:
//
//	go run ./scripts/seed
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"smart-neighborhood-backend/internal/auth"
	"smart-neighborhood-backend/internal/config"
	"smart-neighborhood-backend/internal/db"
)

type seedUser struct {
	name, email, password, location, profileImage string
}

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))
	ctx := context.Background()

	cfg, err := config.Load(os.Getenv("NEIGHBORHOOD_CONFIG"))
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load configuration", "error", err)
		os.Exit(1)
	}

	database, err := db.Init(ctx, db.Config{
		Path:           cfg.DB.Path,
		MigrationsPath: cfg.DB.MigrationsPath,
	})
	if err != nil {
		slog.ErrorContext(ctx, "Failed to open database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := seed(ctx, database); err != nil {
		slog.ErrorContext(ctx, "Seeding failed", "error", err)
		os.Exit(1)
	}
	slog.InfoContext(ctx, "Fake data successfully populated")
}

func seed(ctx context.Context, database *db.DB) error {
	users := []seedUser{
		{"Alice Johnson", "alice@example.com", "password123", "Downtown", "alice.jpg"},
		{"Bob Smith", "bob@example.com", "password123", "Uptown", "bob.jpg"},
		{"Carol Lee", "carol@example.com", "password123", "Suburbs", "carol.jpg"},
		{"David Brown", "david@example.com", "password123", "City Center", "david.jpg"},
		{"Eve Davis", "eve@example.com", "password123", "Riverside", "eve.jpg"},
	}
	ids := make(map[string]int64)
	for _, u := range users {
		hashed, err := auth.HashPassword(u.password)
		if err != nil {
			return err
		}
		user, err := database.CreateUser(ctx, u.name, u.email, hashed, u.location, u.profileImage)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.email, err)
		}
		ids[u.email] = user.ID
	}

	resources := []struct {
		owner, title, description, category, availability string
	}{
		{"alice@example.com", "Lawn Mower", "Electric lawn mower, lightly used.", "Tools", "2026-09-01"},
		{"bob@example.com", "Bicycle", "Road bike, 21-speed.", "Transport", "2026-09-05"},
		{"carol@example.com", "Camping Tent", "2-person camping tent, waterproof.", "Outdoor Gear", "2026-09-03"},
		{"david@example.com", "Bookshelf", "Wooden bookshelf, 5 shelves.", "Furniture", "2026-09-10"},
		{"eve@example.com", "Piano", "Electric piano, 88 keys.", "Music", "2026-09-15"},
	}
	for _, r := range resources {
		if _, err := database.CreateResource(ctx, ids[r.owner], r.title, r.description, r.category, r.availability, nil); err != nil {
			return fmt.Errorf("seed resource %s: %w", r.title, err)
		}
	}

	spaces := []struct {
		creator, name, description, location, availability string
	}{
		{"alice@example.com", "Community Hall", "Large hall for events.", "Downtown", "2026-09-01"},
		{"bob@example.com", "Meeting Room", "Small meeting room with projector.", "City Center", "2026-09-02"},
	}
	for _, s := range spaces {
		if _, err := database.CreateSpace(ctx, s.name, s.description, s.location, s.availability, ids[s.creator]); err != nil {
			return fmt.Errorf("seed space %s: %w", s.name, err)
		}
	}

	events := []struct {
		host, name, description, date, location string
	}{
		{"carol@example.com", "Neighborhood Cleanup", "Join us for a community cleanup event.", "2026-09-10", "Park Entrance"},
		{"alice@example.com", "Book Club", "Monthly book discussion.", "2026-09-15", "Community Hall"},
	}
	for _, e := range events {
		if _, err := database.CreateEvent(ctx, e.name, e.description, e.date, e.location, ids[e.host]); err != nil {
			return fmt.Errorf("seed event %s: %w", e.name, err)
		}
	}

	messages := []struct {
		sender, receiver, content string
	}{
		{"alice@example.com", "bob@example.com", "Hi Bob, is the bicycle available?"},
		{"bob@example.com", "alice@example.com", "Hi Alice, it's currently not available."},
		{"carol@example.com", "eve@example.com", "Hi Eve, is the piano still for sale?"},
	}
	for _, m := range messages {
		if err := database.SendMessage(ctx, ids[m.sender], ids[m.receiver], m.content); err != nil {
			return fmt.Errorf("seed message: %w", err)
		}
	}
	return nil
}
