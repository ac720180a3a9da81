package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"cashcompass/dtos"
	"cashcompass/models"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "test.db") + "?_fk=1"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
		Logger:  logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return New(db)
}

func mustUser(t *testing.T, st *Store, email string) *models.User {
	t.Helper()
	u := &models.User{FullName: "Test User", Email: email, PasswordHash: "x"}
	if err := st.CreateUser(context.Background(), u); err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return u
}

func mustCategory(t *testing.T, st *Store, userID uint, name string) *models.Category {
	t.Helper()
	c := &models.Category{UserID: userID, Name: name}
	if err := st.CreateCategory(context.Background(), c); err != nil {
		t.Fatalf("create category %s: %v", name, err)
	}
	return c
}

func mustIncomeSource(t *testing.T, st *Store, userID uint) *models.IncomeSource {
	t.Helper()
	src := &models.IncomeSource{
		UserID:       userID,
		SourceName:   "Salary",
		Amount:       decimal.NewFromInt(3000),
		PayFrequency: "monthly",
		NextPayDate:  time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := st.CreateIncomeSource(context.Background(), src); err != nil {
		t.Fatalf("create income source: %v", err)
	}
	return src
}

func mustAllocation(t *testing.T, st *Store, userID, incomeID, categoryID uint) *models.Allocation {
	t.Helper()
	a := &models.Allocation{
		UserID:          userID,
		IncomeID:        incomeID,
		CategoryID:      categoryID,
		AllocationType:  "percentage",
		AllocationValue: decimal.NewFromInt(25),
	}
	if err := st.CreateAllocation(context.Background(), a); err != nil {
		t.Fatalf("create allocation: %v", err)
	}
	return a
}

func mustExpense(t *testing.T, st *Store, userID, categoryID uint) *models.Expense {
	t.Helper()
	e := &models.Expense{
		UserID:      userID,
		CategoryID:  categoryID,
		ExpenseName: "Groceries",
		Amount:      decimal.NewFromFloat(42.10),
		ExpenseDate: time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC),
	}
	if err := st.CreateExpense(context.Background(), e); err != nil {
		t.Fatalf("create expense: %v", err)
	}
	return e
}

func TestCreateAndGetRoundTrip(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	u := mustUser(t, st, "alice@example.com")
	if u.ID == 0 {
		t.Fatal("user id not assigned")
	}
	if u.CreatedAt.IsZero() {
		t.Fatal("user CreatedAt not set")
	}

	cat := mustCategory(t, st, u.ID, "Food")
	src := mustIncomeSource(t, st, u.ID)
	alloc := mustAllocation(t, st, u.ID, src.ID, cat.ID)
	exp := mustExpense(t, st, u.ID, cat.ID)

	gotUser, err := st.GetUser(ctx, u.ID)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if gotUser.Email != "alice@example.com" {
		t.Errorf("email = %q", gotUser.Email)
	}

	gotCat, err := st.GetCategory(ctx, cat.ID)
	if err != nil {
		t.Fatalf("get category: %v", err)
	}
	if gotCat.Name != "Food" || gotCat.UserID != u.ID {
		t.Errorf("category = %+v", gotCat)
	}

	gotSrc, err := st.GetIncomeSource(ctx, src.ID)
	if err != nil {
		t.Fatalf("get income source: %v", err)
	}
	if !gotSrc.Amount.Equal(decimal.NewFromInt(3000)) {
		t.Errorf("income amount = %s", gotSrc.Amount)
	}

	gotAlloc, err := st.GetAllocation(ctx, alloc.ID)
	if err != nil {
		t.Fatalf("get allocation: %v", err)
	}
	if gotAlloc.IncomeID != src.ID || gotAlloc.CategoryID != cat.ID {
		t.Errorf("allocation refs = income %d category %d", gotAlloc.IncomeID, gotAlloc.CategoryID)
	}

	gotExp, err := st.GetExpense(ctx, exp.ID)
	if err != nil {
		t.Fatalf("get expense: %v", err)
	}
	if !gotExp.Amount.Equal(decimal.NewFromFloat(42.10)) {
		t.Errorf("expense amount = %s", gotExp.Amount)
	}
}

func TestGetMissingReturnsNotFound(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	if _, err := st.GetUser(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetUser err = %v, want ErrNotFound", err)
	}
	if _, err := st.GetCategory(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetCategory err = %v, want ErrNotFound", err)
	}
	if _, err := st.GetIncomeSource(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetIncomeSource err = %v, want ErrNotFound", err)
	}
	if _, err := st.GetAllocation(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetAllocation err = %v, want ErrNotFound", err)
	}
	if _, err := st.GetExpense(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetExpense err = %v, want ErrNotFound", err)
	}
}

func TestDuplicateEmailConflicts(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	mustUser(t, st, "alice@example.com")
	bob := mustUser(t, st, "bob@example.com")

	dup := &models.User{FullName: "Alice Two", Email: "alice@example.com", PasswordHash: "x"}
	if err := st.CreateUser(ctx, dup); !errors.Is(err, ErrConflict) {
		t.Fatalf("create duplicate err = %v, want ErrConflict", err)
	}

	_, err := st.UpdateUser(ctx, bob.ID, UserUpdate{FullName: "Bob", Email: "alice@example.com"})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("update to taken email err = %v, want ErrConflict", err)
	}

	// the original row is untouched
	got, err := st.GetUserByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if got.FullName != "Test User" {
		t.Errorf("fullName = %q", got.FullName)
	}
}

func TestUpdateOwnEmailKeepsWorking(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	u := mustUser(t, st, "alice@example.com")
	got, err := st.UpdateUser(ctx, u.ID, UserUpdate{FullName: "Alice Renamed", Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("update with own email: %v", err)
	}
	if got.FullName != "Alice Renamed" {
		t.Errorf("fullName = %q", got.FullName)
	}
}

func TestDeleteUserRemovesOwnedRows(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	u := mustUser(t, st, "alice@example.com")
	cat := mustCategory(t, st, u.ID, "Food")
	src := mustIncomeSource(t, st, u.ID)
	mustAllocation(t, st, u.ID, src.ID, cat.ID)
	mustExpense(t, st, u.ID, cat.ID)

	other := mustUser(t, st, "bob@example.com")
	otherCat := mustCategory(t, st, other.ID, "Rent")

	if err := st.DeleteUser(ctx, u.ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	if _, err := st.GetUser(ctx, u.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("user still present: %v", err)
	}
	if _, err := st.GetCategory(ctx, cat.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("category survived user delete: %v", err)
	}
	if _, err := st.GetIncomeSource(ctx, src.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("income source survived user delete: %v", err)
	}
	allocs, err := st.ListAllocationsByUser(ctx, u.ID)
	if err != nil || len(allocs) != 0 {
		t.Errorf("allocations remain: %v %v", allocs, err)
	}
	exps, err := st.ListExpensesByUser(ctx, u.ID)
	if err != nil || len(exps) != 0 {
		t.Errorf("expenses remain: %v %v", exps, err)
	}

	// the other account is untouched
	if _, err := st.GetCategory(ctx, otherCat.ID); err != nil {
		t.Errorf("unrelated category lost: %v", err)
	}
}

func TestDeleteCategoryRestrictedWhileReferenced(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	u := mustUser(t, st, "alice@example.com")
	cat := mustCategory(t, st, u.ID, "Food")
	src := mustIncomeSource(t, st, u.ID)
	alloc := mustAllocation(t, st, u.ID, src.ID, cat.ID)
	exp := mustExpense(t, st, u.ID, cat.ID)

	if err := st.DeleteCategory(ctx, cat.ID); !errors.Is(err, ErrConflict) {
		t.Fatalf("delete referenced category err = %v, want ErrConflict", err)
	}
	if _, err := st.GetCategory(ctx, cat.ID); err != nil {
		t.Fatalf("category should still exist: %v", err)
	}

	if err := st.DeleteAllocation(ctx, alloc.ID); err != nil {
		t.Fatalf("delete allocation: %v", err)
	}
	if err := st.DeleteCategory(ctx, cat.ID); !errors.Is(err, ErrConflict) {
		t.Fatalf("category still referenced by expense, err = %v", err)
	}

	if err := st.DeleteExpense(ctx, exp.ID); err != nil {
		t.Fatalf("delete expense: %v", err)
	}
	if err := st.DeleteCategory(ctx, cat.ID); err != nil {
		t.Fatalf("delete unreferenced category: %v", err)
	}
	if _, err := st.GetCategory(ctx, cat.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("category not deleted: %v", err)
	}
}

func TestDeleteIncomeSourceCascadesAllocations(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	u := mustUser(t, st, "alice@example.com")
	cat := mustCategory(t, st, u.ID, "Savings")
	src := mustIncomeSource(t, st, u.ID)
	alloc := mustAllocation(t, st, u.ID, src.ID, cat.ID)

	if err := st.DeleteIncomeSource(ctx, src.ID); err != nil {
		t.Fatalf("delete income source: %v", err)
	}
	if _, err := st.GetAllocation(ctx, alloc.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("allocation survived income source delete: %v", err)
	}
	// the category held only an allocation reference, delete now succeeds
	if err := st.DeleteCategory(ctx, cat.ID); err != nil {
		t.Errorf("delete category after cascade: %v", err)
	}
}

func TestCreateWithMissingReferences(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	c := &models.Category{UserID: 999, Name: "Orphan"}
	if err := st.CreateCategory(ctx, c); !errors.Is(err, ErrNotFound) {
		t.Errorf("category with missing user err = %v", err)
	}

	u := mustUser(t, st, "alice@example.com")
	a := &models.Allocation{
		UserID:          u.ID,
		IncomeID:        999,
		CategoryID:      999,
		AllocationType:  "fixed",
		AllocationValue: decimal.NewFromInt(10),
	}
	if err := st.CreateAllocation(ctx, a); !errors.Is(err, ErrNotFound) {
		t.Errorf("allocation with missing refs err = %v", err)
	}

	e := &models.Expense{
		UserID:      u.ID,
		CategoryID:  999,
		ExpenseName: "Ghost",
		Amount:      decimal.NewFromInt(5),
		ExpenseDate: time.Now().UTC(),
	}
	if err := st.CreateExpense(ctx, e); !errors.Is(err, ErrNotFound) {
		t.Errorf("expense with missing category err = %v", err)
	}
}

func TestUpdateMissingReturnsNotFound(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	if _, err := st.UpdateUser(ctx, 999, UserUpdate{FullName: "X", Email: "x@example.com"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateUser err = %v", err)
	}
	if _, err := st.UpdateCategory(ctx, 999, CategoryUpdate{Name: "X"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateCategory err = %v", err)
	}
	if _, err := st.UpdateIncomeSource(ctx, 999, IncomeSourceUpdate{SourceName: "X"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateIncomeSource err = %v", err)
	}
	if _, err := st.UpdateAllocation(ctx, 999, AllocationUpdate{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateAllocation err = %v", err)
	}
	if _, err := st.UpdateExpense(ctx, 999, ExpenseUpdate{ExpenseName: "X"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateExpense err = %v", err)
	}
}

func TestExpenseDateStoredAsUTC(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	u := mustUser(t, st, "alice@example.com")
	cat := mustCategory(t, st, u.ID, "Food")

	date, err := dtos.ParseTimestamp("2024-03-05T10:00:00")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	e := &models.Expense{
		UserID:      u.ID,
		CategoryID:  cat.ID,
		ExpenseName: "Lunch",
		Amount:      decimal.NewFromInt(12),
		ExpenseDate: date,
	}
	if err := st.CreateExpense(ctx, e); err != nil {
		t.Fatalf("create expense: %v", err)
	}

	got, err := st.GetExpense(ctx, e.ID)
	if err != nil {
		t.Fatalf("get expense: %v", err)
	}
	want := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	if !got.ExpenseDate.UTC().Equal(want) {
		t.Errorf("expense date = %s, want %s", got.ExpenseDate.UTC(), want)
	}
}

func TestAmountsRoundToTwoDecimals(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	u := mustUser(t, st, "alice@example.com")
	cat := mustCategory(t, st, u.ID, "Food")

	e := &models.Expense{
		UserID:      u.ID,
		CategoryID:  cat.ID,
		ExpenseName: "Odd cents",
		Amount:      decimal.NewFromFloat(10.555),
		ExpenseDate: time.Now().UTC(),
	}
	if err := st.CreateExpense(ctx, e); err != nil {
		t.Fatalf("create expense: %v", err)
	}
	got, err := st.GetExpense(ctx, e.ID)
	if err != nil {
		t.Fatalf("get expense: %v", err)
	}
	if !got.Amount.Equal(decimal.NewFromFloat(10.56)) {
		t.Errorf("amount = %s, want 10.56", got.Amount)
	}
}

func TestListPaginationStableOrder(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	var ids []uint
	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com", "d@example.com"} {
		ids = append(ids, mustUser(t, st, email).ID)
	}

	page, err := st.ListUsers(ctx, 2, 1)
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("page size = %d", len(page))
	}
	if page[0].ID != ids[1] || page[1].ID != ids[2] {
		t.Errorf("page ids = %d,%d want %d,%d", page[0].ID, page[1].ID, ids[1], ids[2])
	}
}

func TestScopedLists(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	alice := mustUser(t, st, "alice@example.com")
	bob := mustUser(t, st, "bob@example.com")

	aliceCat := mustCategory(t, st, alice.ID, "Food")
	mustCategory(t, st, bob.ID, "Rent")

	src := mustIncomeSource(t, st, alice.ID)
	mustAllocation(t, st, alice.ID, src.ID, aliceCat.ID)
	mustExpense(t, st, alice.ID, aliceCat.ID)

	cats, err := st.ListCategoriesByUser(ctx, alice.ID)
	if err != nil || len(cats) != 1 || cats[0].Name != "Food" {
		t.Errorf("categories by user = %v, %v", cats, err)
	}
	srcs, err := st.ListIncomeSourcesByUser(ctx, alice.ID)
	if err != nil || len(srcs) != 1 {
		t.Errorf("income sources by user = %v, %v", srcs, err)
	}
	allocs, err := st.ListAllocationsByIncome(ctx, src.ID)
	if err != nil || len(allocs) != 1 {
		t.Errorf("allocations by income = %v, %v", allocs, err)
	}
	exps, err := st.ListExpensesByCategory(ctx, aliceCat.ID)
	if err != nil || len(exps) != 1 {
		t.Errorf("expenses by category = %v, %v", exps, err)
	}

	// scoping by an id with no rows is an empty list, not an error
	none, err := st.ListExpensesByUser(ctx, bob.ID)
	if err != nil || len(none) != 0 {
		t.Errorf("expenses for user without expenses = %v, %v", none, err)
	}
}

func TestAllocationUpdateRepointsReferences(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	u := mustUser(t, st, "alice@example.com")
	cat1 := mustCategory(t, st, u.ID, "Food")
	cat2 := mustCategory(t, st, u.ID, "Savings")
	src := mustIncomeSource(t, st, u.ID)
	alloc := mustAllocation(t, st, u.ID, src.ID, cat1.ID)

	got, err := st.UpdateAllocation(ctx, alloc.ID, AllocationUpdate{
		IncomeID:        src.ID,
		CategoryID:      cat2.ID,
		AllocationType:  "fixed",
		AllocationValue: decimal.NewFromFloat(150.00),
	})
	if err != nil {
		t.Fatalf("update allocation: %v", err)
	}
	if got.CategoryID != cat2.ID || got.AllocationType != "fixed" {
		t.Errorf("allocation = %+v", got)
	}

	_, err = st.UpdateAllocation(ctx, alloc.ID, AllocationUpdate{
		IncomeID:        999,
		CategoryID:      cat2.ID,
		AllocationType:  "fixed",
		AllocationValue: decimal.NewFromInt(1),
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("repoint to missing income err = %v", err)
	}
}
