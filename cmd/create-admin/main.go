package main

import (
	"flag"
	"fmt"
	"log"

	"concert-ticketing-platform/internal/config"
	"concert-ticketing-platform/internal/database"
	"concert-ticketing-platform/internal/models"
	"concert-ticketing-platform/internal/repositories"
	"concert-ticketing-platform/internal/utils"
)

func main() {
	var (
		email     = flag.String("email", "admin@example.com", "Admin email address")
		password  = flag.String("password", "admin123", "Admin password")
		firstName = flag.String("first-name", "Admin", "Admin first name")
		lastName  = flag.String("last-name", "User", "Admin last name")
	)
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.NewConnection(database.Config{
		URL:      cfg.Database.URL,
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	userRepo := repositories.NewUserRepository(db.DB)

	passwordHash, err := utils.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	// Reset the password if the admin already exists
	if existing, err := userRepo.GetByEmail(*email); err == nil {
		if _, err := db.Exec("UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2", passwordHash, existing.ID); err != nil {
			log.Fatal("Failed to update admin password:", err)
		}
		fmt.Printf("Admin user already exists with ID %d, password updated\n", existing.ID)
		return
	}

	user, err := userRepo.Create(*email, passwordHash, *firstName, *lastName, models.RoleAdmin)
	if err != nil {
		log.Fatal("Failed to create admin user:", err)
	}

	fmt.Printf("Admin user created successfully!\n")
	fmt.Printf("ID: %d\n", user.ID)
	fmt.Printf("Email: %s\n", user.Email)
}
