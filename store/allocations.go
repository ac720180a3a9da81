package store

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"cashcompass/models"
)

// AllocationUpdate carries the mutable subset of an allocation. IncomeID and
// CategoryID are reference fields (which income/category the row is
// allocated against) and may be re-pointed; the owning user id may not.
type AllocationUpdate struct {
	IncomeID        uint
	CategoryID      uint
	AllocationType  string
	AllocationValue decimal.Decimal
}

func (s *Store) CreateAllocation(ctx context.Context, a *models.Allocation) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.userExists(tx, a.UserID); err != nil {
			return err
		}
		if err := s.incomeSourceExists(tx, a.IncomeID); err != nil {
			return err
		}
		if err := s.categoryExists(tx, a.CategoryID); err != nil {
			return err
		}
		a.AllocationValue = a.AllocationValue.Round(2)
		return translate(tx.Create(a).Error)
	})
}

func (s *Store) GetAllocation(ctx context.Context, id uint) (*models.Allocation, error) {
	var a models.Allocation
	if err := s.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (s *Store) ListAllocations(ctx context.Context, limit, offset int) ([]models.Allocation, error) {
	var allocations []models.Allocation
	if err := paged(s.db.WithContext(ctx), limit, offset).Find(&allocations).Error; err != nil {
		return nil, err
	}
	return allocations, nil
}

func (s *Store) ListAllocationsByUser(ctx context.Context, userID uint) ([]models.Allocation, error) {
	return s.listAllocationsBy(ctx, "user_id", userID)
}

func (s *Store) ListAllocationsByIncome(ctx context.Context, incomeID uint) ([]models.Allocation, error) {
	return s.listAllocationsBy(ctx, "income_id", incomeID)
}

func (s *Store) ListAllocationsByCategory(ctx context.Context, categoryID uint) ([]models.Allocation, error) {
	return s.listAllocationsBy(ctx, "category_id", categoryID)
}

func (s *Store) listAllocationsBy(ctx context.Context, column string, id uint) ([]models.Allocation, error) {
	var allocations []models.Allocation
	if err := s.db.WithContext(ctx).Where(column+" = ?", id).Order("id asc").Find(&allocations).Error; err != nil {
		return nil, err
	}
	return allocations, nil
}

func (s *Store) UpdateAllocation(ctx context.Context, id uint, upd AllocationUpdate) (*models.Allocation, error) {
	var out *models.Allocation
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var a models.Allocation
		if err := tx.First(&a, id).Error; err != nil {
			return translate(err)
		}
		if upd.IncomeID != a.IncomeID {
			if err := s.incomeSourceExists(tx, upd.IncomeID); err != nil {
				return err
			}
		}
		if upd.CategoryID != a.CategoryID {
			if err := s.categoryExists(tx, upd.CategoryID); err != nil {
				return err
			}
		}
		a.IncomeID = upd.IncomeID
		a.CategoryID = upd.CategoryID
		a.AllocationType = upd.AllocationType
		a.AllocationValue = upd.AllocationValue.Round(2)
		if err := tx.Save(&a).Error; err != nil {
			return translate(err)
		}
		out = &a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) DeleteAllocation(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var a models.Allocation
		if err := tx.First(&a, id).Error; err != nil {
			return translate(err)
		}
		return translate(tx.Delete(&a).Error)
	})
}
