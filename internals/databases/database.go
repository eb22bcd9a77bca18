package databases

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"edufranchise_backend/internals/configs"
)

var DB *gorm.DB

func ConnectDB() {
	dbUser := configs.GetEnv("DB_USER")
	dbPassword := configs.GetEnv("DB_PASSWORD")
	dbHost := configs.GetEnv("DB_HOST", "localhost")
	dbPort := configs.GetEnv("DB_PORT", "5432")
	dbName := configs.GetEnv("DB_NAME")
	dbSSL := configs.GetEnv("DB_SSLMODE", "require")

	dsn := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		dbUser, dbPassword, dbHost, dbPort, dbName, dbSSL)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // avoid prepared-statement cache on poolers
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("[ERROR] Database connection failed: %v", err)
	}

	DB = db
	log.Println("[INFO] Database connected")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("[WARNING] Cannot access sql.DB for pool tuning: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)
}
