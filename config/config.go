package config

import (
	"log"
	"os"
	"strconv"

	"greenvisa-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign dashboard tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "greenvisa_super_secret_2025"))

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// SMTPConfig carries outbound-mail credentials read from the environment.
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	FromName string
}

// LoadSMTP reads mail transport settings. Defaults target Gmail app passwords,
// which is what the business account uses.
func LoadSMTP() SMTPConfig {
	port, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		log.Printf("Invalid SMTP_PORT, falling back to 587: %v", err)
		port = 587
	}
	return SMTPConfig{
		Host:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		Port:     port,
		User:     os.Getenv("SMTP_USER"),
		Password: os.Getenv("SMTP_PASSWORD"),
		FromName: getEnv("SMTP_FROM_NAME", "GreenVisa Team"),
	}
}

// AdminEmail is where admin copies of intake notifications go.
// Falls back to the sending account itself.
func AdminEmail() string {
	return getEnv("ADMIN_EMAIL", os.Getenv("SMTP_USER"))
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(getEnv("DB_PATH", "greenvisa.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.Contact{},
		&models.Consultation{},
		&models.User{},
		&models.NewsletterSubscription{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("✅ Database connected and migrated successfully")
}
