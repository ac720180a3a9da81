package main

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"cashcompass/store"
)

func initDB() *gorm.DB {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN is required")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	auto := os.Getenv("DB_AUTO_MIGRATE")
	switch auto {
	case "false", "0", "no":
		log.Println("auto migration disabled")
	default:
		if err := store.AutoMigrate(db); err != nil {
			log.Printf("migration warning: %v", err)
		}
	}
	return db
}
