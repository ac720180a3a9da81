package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"cashcompass/models"
)

// ExpenseUpdate carries the mutable subset of an expense. CategoryID may be
// re-pointed; the owning user id may not. Notes replaces the stored value
// wholesale, nil clears it.
type ExpenseUpdate struct {
	ExpenseName string
	Amount      decimal.Decimal
	CategoryID  uint
	ExpenseDate time.Time
	Notes       *string
}

func (s *Store) CreateExpense(ctx context.Context, e *models.Expense) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.userExists(tx, e.UserID); err != nil {
			return err
		}
		if err := s.categoryExists(tx, e.CategoryID); err != nil {
			return err
		}
		e.Amount = e.Amount.Round(2)
		e.ExpenseDate = e.ExpenseDate.UTC()
		return translate(tx.Create(e).Error)
	})
}

func (s *Store) GetExpense(ctx context.Context, id uint) (*models.Expense, error) {
	var e models.Expense
	if err := s.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

func (s *Store) ListExpenses(ctx context.Context, limit, offset int) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := paged(s.db.WithContext(ctx), limit, offset).Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

func (s *Store) ListExpensesByUser(ctx context.Context, userID uint) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("id asc").Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

func (s *Store) ListExpensesByCategory(ctx context.Context, categoryID uint) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := s.db.WithContext(ctx).Where("category_id = ?", categoryID).Order("id asc").Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

func (s *Store) UpdateExpense(ctx context.Context, id uint, upd ExpenseUpdate) (*models.Expense, error) {
	var out *models.Expense
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var e models.Expense
		if err := tx.First(&e, id).Error; err != nil {
			return translate(err)
		}
		if upd.CategoryID != e.CategoryID {
			if err := s.categoryExists(tx, upd.CategoryID); err != nil {
				return err
			}
		}
		e.ExpenseName = upd.ExpenseName
		e.Amount = upd.Amount.Round(2)
		e.CategoryID = upd.CategoryID
		e.ExpenseDate = upd.ExpenseDate.UTC()
		e.Notes = upd.Notes
		if err := tx.Save(&e).Error; err != nil {
			return translate(err)
		}
		out = &e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) DeleteExpense(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var e models.Expense
		if err := tx.First(&e, id).Error; err != nil {
			return translate(err)
		}
		return translate(tx.Delete(&e).Error)
	})
}
