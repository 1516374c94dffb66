package main

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"

	"bunnypost/internal/config"
	"bunnypost/internal/db"
	"bunnypost/internal/model"
	"bunnypost/internal/repository"
)

const seedPassword = "password123"

type seedUser struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Bio       string
}

var seedUsers = []seedUser{
	{Username: "bunny", Email: "bunny@example.com", FirstName: "Bunny", LastName: "Hopper", Bio: "First resident of BunnyPost."},
	{Username: "carrots", Email: "carrots@example.com", FirstName: "Carrie", LastName: "Root", Bio: "Mostly posting about gardening."},
	{Username: "thumper", Email: "thumper@example.com", FirstName: "Theo", LastName: "Umper", Bio: ""},
}

var seedPostTitles = []string{
	"Hello BunnyPost",
	"Garden update, week one",
	"On the subject of carrots",
	"Burrow maintenance tips",
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	log.Println("Resetting database...")
	tables := []interface{}{
		&model.Like{},
		&model.Comment{},
		&model.Post{},
		&model.User{},
	}
	for _, table := range tables {
		if err := gormDB.Migrator().DropTable(table); err != nil {
			log.Printf("Warning: Failed to drop table (may not exist): %v", err)
		}
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Post{},
		&model.Comment{},
		&model.Like{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	postRepo := repository.NewPostRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)
	likeRepo := repository.NewLikeRepository(gormDB)

	hashed, err := bcrypt.GenerateFromPassword([]byte(seedPassword), 10)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	log.Println("Seeding users...")
	users := make([]*model.User, 0, len(seedUsers))
	for _, su := range seedUsers {
		user := &model.User{
			Username:  su.Username,
			Email:     su.Email,
			Password:  string(hashed),
			FirstName: su.FirstName,
			LastName:  su.LastName,
			Bio:       su.Bio,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("Failed to seed user %s: %v", su.Username, err)
		}
		users = append(users, user)
	}

	log.Println("Seeding posts...")
	posts := make([]*model.Post, 0, len(seedPostTitles))
	for i, title := range seedPostTitles {
		post := &model.Post{
			Title:    title,
			Content:  "Seeded content for: " + title,
			AuthorID: users[i%len(users)].ID,
		}
		if err := postRepo.Create(ctx, post); err != nil {
			log.Fatalf("Failed to seed post %q: %v", title, err)
		}
		posts = append(posts, post)
	}

	log.Println("Seeding comments and likes...")
	comments, likes := 0, 0
	for i, post := range posts {
		commenter := users[(i+1)%len(users)]
		comment := &model.Comment{
			Content:  "Nice post!",
			PostID:   post.ID,
			AuthorID: commenter.ID,
		}
		if err := commentRepo.Create(ctx, comment); err != nil {
			log.Fatalf("Failed to seed comment: %v", err)
		}
		comments++

		for _, user := range users {
			if user.ID == post.AuthorID {
				continue
			}
			like := &model.Like{PostID: post.ID, AuthorID: user.ID}
			if err := likeRepo.Create(ctx, like); err != nil {
				log.Fatalf("Failed to seed like: %v", err)
			}
			likes++
		}
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Users created: %d", len(users))
	log.Printf("  - Posts created: %d", len(posts))
	log.Printf("  - Comments created: %d", comments)
	log.Printf("  - Likes created: %d", likes)
	log.Printf("All seeded users sign in with password %q", seedPassword)
}
