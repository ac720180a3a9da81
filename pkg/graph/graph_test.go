package graph

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"cashcompass/models"
	"cashcompass/pkg/passwd"
	"cashcompass/store"
)

func testSchema(t *testing.T) (graphql.Schema, *store.Store) {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "test.db") + "?_fk=1"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
		Logger:  logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := store.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	st := store.New(db)
	schema, err := NewSchema(st, &passwd.BcryptHasher{Cost: bcrypt.MinCost})
	if err != nil {
		t.Fatalf("build schema: %v", err)
	}
	return schema, st
}

func exec(t *testing.T, schema graphql.Schema, query string) *graphql.Result {
	t.Helper()
	return graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: query,
		Context:       context.Background(),
	})
}

func seedUser(t *testing.T, st *store.Store, email string) *models.User {
	t.Helper()
	u := &models.User{FullName: "Graph User", Email: email, PasswordHash: "x"}
	if err := st.CreateUser(context.Background(), u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func TestUsersQuery(t *testing.T) {
	schema, st := testSchema(t)
	seedUser(t, st, "alice@example.com")

	res := exec(t, schema, `{ users { userId fullName email } }`)
	if len(res.Errors) != 0 {
		t.Fatalf("errors: %v", res.Errors)
	}
	data := res.Data.(map[string]interface{})
	users := data["users"].([]interface{})
	if len(users) != 1 {
		t.Fatalf("users = %v", users)
	}
	first := users[0].(map[string]interface{})
	if first["email"] != "alice@example.com" {
		t.Errorf("email = %v", first["email"])
	}
}

func TestPasswordHashNotExposed(t *testing.T) {
	schema, st := testSchema(t)
	seedUser(t, st, "alice@example.com")

	res := exec(t, schema, `{ users { passwordHash } }`)
	if len(res.Errors) == 0 {
		t.Fatal("passwordHash field resolved, expected schema error")
	}
}

func TestCreateUserMutation(t *testing.T) {
	schema, st := testSchema(t)

	res := exec(t, schema, `mutation {
		createUser(fullName: "New User", email: "new@example.com", password: "secret-1") {
			userId
			email
		}
	}`)
	if len(res.Errors) != 0 {
		t.Fatalf("errors: %v", res.Errors)
	}

	u, err := st.GetUserByEmail(context.Background(), "new@example.com")
	if err != nil {
		t.Fatalf("user not stored: %v", err)
	}
	if u.PasswordHash == "secret-1" || u.PasswordHash == "" {
		t.Errorf("password stored badly: %q", u.PasswordHash)
	}
}

func TestCategoryExpensesRelationship(t *testing.T) {
	schema, st := testSchema(t)
	ctx := context.Background()

	u := seedUser(t, st, "alice@example.com")
	cat := &models.Category{UserID: u.ID, Name: "Food"}
	if err := st.CreateCategory(ctx, cat); err != nil {
		t.Fatalf("seed category: %v", err)
	}
	e := &models.Expense{
		UserID:      u.ID,
		CategoryID:  cat.ID,
		ExpenseName: "Lunch",
		Amount:      decimal.NewFromFloat(12.50),
		ExpenseDate: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
	}
	if err := st.CreateExpense(ctx, e); err != nil {
		t.Fatalf("seed expense: %v", err)
	}

	res := exec(t, schema, `{
		categories {
			categoryName
			user { email }
			expenses { expenseName amount }
		}
	}`)
	if len(res.Errors) != 0 {
		t.Fatalf("errors: %v", res.Errors)
	}
	data := res.Data.(map[string]interface{})
	cats := data["categories"].([]interface{})
	if len(cats) != 1 {
		t.Fatalf("categories = %v", cats)
	}
	first := cats[0].(map[string]interface{})
	owner := first["user"].(map[string]interface{})
	if owner["email"] != "alice@example.com" {
		t.Errorf("owner = %v", owner)
	}
	expenses := first["expenses"].([]interface{})
	if len(expenses) != 1 {
		t.Fatalf("expenses = %v", expenses)
	}
	got := expenses[0].(map[string]interface{})
	if got["expenseName"] != "Lunch" {
		t.Errorf("expense = %v", got)
	}
	if got["amount"].(float64) != 12.5 {
		t.Errorf("amount = %v", got["amount"])
	}
}

func TestDeleteCategoryMutationConflict(t *testing.T) {
	schema, st := testSchema(t)
	ctx := context.Background()

	u := seedUser(t, st, "alice@example.com")
	cat := &models.Category{UserID: u.ID, Name: "Food"}
	if err := st.CreateCategory(ctx, cat); err != nil {
		t.Fatalf("seed category: %v", err)
	}
	e := &models.Expense{
		UserID:      u.ID,
		CategoryID:  cat.ID,
		ExpenseName: "Lunch",
		Amount:      decimal.NewFromInt(9),
		ExpenseDate: time.Now().UTC(),
	}
	if err := st.CreateExpense(ctx, e); err != nil {
		t.Fatalf("seed expense: %v", err)
	}

	res := exec(t, schema, `mutation { deleteCategory(categoryId: 1) }`)
	if len(res.Errors) == 0 {
		t.Fatal("expected conflict error for referenced category")
	}

	if _, err := st.GetCategory(ctx, cat.ID); err != nil {
		t.Errorf("category should survive failed delete: %v", err)
	}
}
