package models

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDatabase() {
	// .env only exists for local development; ignore a missing file.
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("FATAL ERROR: DATABASE_URL not set. Check .env or the platform variables.")
	}

	// TranslateError makes duplicate unique keys surface as
	// gorm.ErrDuplicatedKey instead of a driver-specific error.
	db, err := gorm.Open(mysql.Open(dbURL), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&User{}, &Attendance{}); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	log.Println("Database connection established.")
	DB = db
}
