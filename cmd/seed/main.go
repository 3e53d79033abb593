package main

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"notepad/internal/config"
	"notepad/internal/db"
	"notepad/internal/model"
	"notepad/internal/repository"
)

const (
	demoUsername = "demo"
	demoEmail    = "demo@example.com"
	demoPassword = "demo-password"
)

var sampleNotes = []model.Note{
	{Title: "Welcome", Content: "This is your first note.", Category: "General"},
	{Title: "Shopping list", Content: "Milk, eggs, bread.", Category: "Personal"},
	{Title: "Project ideas", Content: "A note-taking app, obviously.", Category: "Work"},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Note{}, &model.Image{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	noteRepo := repository.NewNoteRepository(gormDB)

	existing, err := userRepo.FindByEmail(ctx, demoEmail)
	if err == nil && existing != nil {
		log.Printf("Demo user %s already exists (id=%d), nothing to do", demoEmail, existing.ID)
		return
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		log.Fatalf("Failed to check demo user: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), 10)
	if err != nil {
		log.Fatalf("Failed to hash demo password: %v", err)
	}

	user := &model.User{
		Username:     demoUsername,
		Email:        demoEmail,
		PasswordHash: string(hash),
	}
	if err := userRepo.Create(ctx, user); err != nil {
		log.Fatalf("Failed to create demo user: %v", err)
	}
	log.Printf("Created demo user %s (id=%d)", demoEmail, user.ID)

	for _, note := range sampleNotes {
		note.UserID = user.ID
		if err := noteRepo.Create(ctx, &note); err != nil {
			log.Fatalf("Failed to create sample note %q: %v", note.Title, err)
		}
		log.Printf("Created sample note %q", note.Title)
	}

	log.Println("Seed completed")
}
