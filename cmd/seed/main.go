package main

import (
	"fmt"
	"os"

	"gamehub/internal/entity"
	"gamehub/internal/repo/persistent"
	"gamehub/pkg/config"
	"gamehub/pkg/database"
	"gamehub/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds the initial SUPER_ADMIN plus a few local test accounts. Safe to run
// repeatedly: existing emails are skipped.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedUsers(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedUsers(db *gorm.DB, log *logger.Logger) error {
	users := persistent.NewUserRepository(db)

	superAdminEmail := os.Getenv("SUPER_ADMIN_EMAIL")
	if superAdminEmail == "" {
		superAdminEmail = "root@gamehub.local"
	}
	superAdminPassword := os.Getenv("SUPER_ADMIN_PASSWORD")
	if superAdminPassword == "" {
		superAdminPassword = "changeme123"
		log.Warn("SUPER_ADMIN_PASSWORD not set, using the default")
	}

	accounts := []struct {
		username string
		email    string
		password string
		roles    []entity.Role
	}{
		{"root", superAdminEmail, superAdminPassword, []entity.Role{entity.RoleSuperAdmin}},
		{"moderator", "moderator@test.local", "password123", []entity.Role{entity.RoleAdmin}},
		{"alice", "alice@test.local", "password123", []entity.Role{entity.RoleUser}},
		{"bob", "bob@test.local", "password123", []entity.Role{entity.RoleUser}},
	}

	for _, account := range accounts {
		if _, err := users.GetActiveByEmail(account.email); err == nil {
			log.Info("User %s already exists, skipping", account.username)
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(account.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password for %s: %w", account.username, err)
		}

		user := &entity.User{
			Username: account.username,
			Email:    account.email,
			Password: string(hashed),
			Provider: entity.ProviderLocal,
			Roles:    account.roles,
			IsActive: true,
		}
		if err := users.Create(user); err != nil {
			return fmt.Errorf("failed to create %s: %w", account.username, err)
		}
		log.Info("Created user: %s (%s)", user.Username, user.Email)
	}

	return nil
}
