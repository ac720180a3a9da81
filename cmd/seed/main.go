// Command seed provisions a demo account with a few categories, an income
// source, an allocation and an expense. Safe to re-run: it keys off the
// demo email and skips seeding when the account already exists.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"cashcompass/models"
	"cashcompass/pkg/passwd"
	"cashcompass/store"
)

const demoEmail = "demo@cashcompass.dev"

func main() {
	_ = godotenv.Load()

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
	if err := store.AutoMigrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	ctx := context.Background()
	st := store.New(db)

	if _, err := st.GetUserByEmail(ctx, demoEmail); err == nil {
		log.Printf("demo user %s already exists, nothing to do", demoEmail)
		return
	}

	hasher := passwd.NewBcryptHasher()
	hash, err := hasher.Hash("demo-password")
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	user := &models.User{FullName: "Demo User", Email: demoEmail, PasswordHash: hash}
	if err := st.CreateUser(ctx, user); err != nil {
		log.Fatalf("create user: %v", err)
	}

	groceries := &models.Category{UserID: user.ID, Name: "Groceries", Description: "Weekly food shop"}
	savings := &models.Category{UserID: user.ID, Name: "Savings"}
	for _, c := range []*models.Category{groceries, savings} {
		if err := st.CreateCategory(ctx, c); err != nil {
			log.Fatalf("create category %s: %v", c.Name, err)
		}
	}

	salary := &models.IncomeSource{
		UserID:       user.ID,
		SourceName:   "Salary",
		Amount:       decimal.NewFromInt(3200),
		PayFrequency: "monthly",
		NextPayDate:  time.Now().UTC().AddDate(0, 1, 0),
	}
	if err := st.CreateIncomeSource(ctx, salary); err != nil {
		log.Fatalf("create income source: %v", err)
	}

	alloc := &models.Allocation{
		UserID:          user.ID,
		IncomeID:        salary.ID,
		CategoryID:      savings.ID,
		AllocationType:  "percentage",
		AllocationValue: decimal.NewFromInt(20),
	}
	if err := st.CreateAllocation(ctx, alloc); err != nil {
		log.Fatalf("create allocation: %v", err)
	}

	notes := "seed data"
	expense := &models.Expense{
		UserID:      user.ID,
		CategoryID:  groceries.ID,
		ExpenseName: "Supermarket",
		Amount:      decimal.NewFromFloat(84.50),
		ExpenseDate: time.Now().UTC(),
		Notes:       &notes,
	}
	if err := st.CreateExpense(ctx, expense); err != nil {
		log.Fatalf("create expense: %v", err)
	}

	log.Printf("seeded demo user %d with %d categories, income source %d, allocation %d, expense %d",
		user.ID, 2, salary.ID, alloc.ID, expense.ID)
}
