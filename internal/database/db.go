package database

import (
	"log"
	"time"

	"idcard-system/internal/config"
	"idcard-system/internal/models"
	"idcard-system/internal/security"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		log.Printf("trying to connect to DB (attempt %d/%d)...", i, maxAttempts)

		DB, err = gorm.Open(postgres.Open(cfg.DBDSN), &gorm.Config{})
		if err == nil {
			log.Println("connected to DB successfully")
			break
		}

		log.Printf("failed to connect to DB: %v", err)
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		log.Fatalf("failed to connect to db after %d attempts: %v", maxAttempts, err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	createDefaultAdmin(cfg)
}

// Migrate creates or updates the schema. The unique indexes on users.email,
// users.id_number and admins.username are what actually enforce uniqueness;
// application-level existence checks are just for friendly error messages.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Admin{},
		&models.Message{},
	)
}

// admins are provisioned from config only, there is no self-registration
func createDefaultAdmin(cfg *config.Config) {
	username := cfg.AdminUsername
	if username == "" {
		username = "admin"
	}
	password := cfg.AdminPassword
	if password == "" {
		password = "Admin123!"
	}

	var count int64
	if err := DB.Model(&models.Admin{}).Count(&count).Error; err != nil {
		log.Printf("failed to check admin table: %v", err)
		return
	}
	if count > 0 {
		return
	}

	var stored string
	if cfg.SeedLegacyAdmin {
		// rehearsal mode: seed the old digest so the first login exercises
		// the lazy bcrypt upgrade
		stored = security.LegacyDigest(password)
	} else {
		hash, err := security.HashPassword(password)
		if err != nil {
			log.Printf("failed to hash default admin password: %v", err)
			return
		}
		stored = hash
	}

	admin := models.Admin{
		Username:     username,
		PasswordHash: stored,
	}

	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("failed to create default admin: %v", err)
		return
	}

	log.Printf("created default admin user: %s", username)
}
