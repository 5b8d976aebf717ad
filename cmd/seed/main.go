package main

import (
	"context"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"taskdeck/internal/config"
	"taskdeck/internal/db"
	"taskdeck/internal/model"
	"taskdeck/internal/repository"
)

const (
	demoEmail    = "demo@taskdeck.local"
	demoPassword = "demo-password"
)

func demoTasks() []model.Task {
	due := time.Now().AddDate(0, 0, 7)
	return []model.Task{
		{
			Title:       "Try out the dashboard",
			Description: "Log in with the demo account and look around.",
			Status:      model.TaskStatusInProgress,
			Priority:    model.TaskPriorityHigh,
		},
		{
			Title:       "Write a task of your own",
			Description: "Create a task with a due date and a priority.",
			Status:      model.TaskStatusTodo,
			Priority:    model.TaskPriorityMedium,
			DueDate:     &due,
		},
		{
			Title:       "Read the API docs",
			Description: "Swagger UI is served at /swagger/index.html.",
			Status:      model.TaskStatusCompleted,
			Priority:    model.TaskPriorityLow,
		},
	}
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Task{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	taskRepo := repository.NewTaskRepository(gormDB)
	ctx := context.Background()

	user, created, err := seedDemoUser(ctx, userRepo)
	if err != nil {
		log.Fatalf("Failed to seed demo user: %v", err)
	}
	if !created {
		log.Printf("Demo user %s already exists, leaving tasks untouched", demoEmail)
		return
	}

	seeded := 0
	for _, task := range demoTasks() {
		task.UserID = user.ID
		if err := taskRepo.Create(ctx, &task); err != nil {
			log.Fatalf("Failed to seed task %q: %v", task.Title, err)
		}
		seeded++
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Demo user: %s / %s", demoEmail, demoPassword)
	log.Printf("  - Tasks created: %d", seeded)
}

// seedDemoUser creates the demo user unless one with the demo email exists.
func seedDemoUser(ctx context.Context, repo repository.UserRepository) (*model.User, bool, error) {
	existing, err := repo.FindByEmail(ctx, demoEmail)
	if err == nil {
		return existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, err
	}

	user := &model.User{
		Name:         "Demo User",
		Email:        demoEmail,
		PasswordHash: string(hashedPassword),
	}
	if err := repo.Create(ctx, user); err != nil {
		return nil, false, err
	}
	return user, true, nil
}
