package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"cashcompass/pkg/passwd"
	"cashcompass/store"
)

func main() {
	_ = godotenv.Load()

	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		initDB()
		log.Println("migration complete")
		return
	}

	db := initDB()
	st := store.New(db)

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Println("JWT_SECRET not set, using insecure development secret")
		secret = "dev-insecure-secret-change"
	}

	r, err := newRouter(st, passwd.NewBcryptHasher(), []byte(secret))
	if err != nil {
		log.Fatalf("build router: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}
	log.Printf("listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
