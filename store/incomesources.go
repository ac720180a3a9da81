package store

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"cashcompass/models"
)

// IncomeSourceUpdate carries the mutable subset of an income source.
type IncomeSourceUpdate struct {
	SourceName   string
	Amount       decimal.Decimal
	PayFrequency string
	NextPayDate  time.Time
}

func (s *Store) CreateIncomeSource(ctx context.Context, src *models.IncomeSource) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.userExists(tx, src.UserID); err != nil {
			return err
		}
		src.Amount = src.Amount.Round(2)
		return translate(tx.Create(src).Error)
	})
}

func (s *Store) GetIncomeSource(ctx context.Context, id uint) (*models.IncomeSource, error) {
	var src models.IncomeSource
	if err := s.db.WithContext(ctx).First(&src, id).Error; err != nil {
		return nil, translate(err)
	}
	return &src, nil
}

func (s *Store) ListIncomeSources(ctx context.Context, limit, offset int) ([]models.IncomeSource, error) {
	var sources []models.IncomeSource
	if err := paged(s.db.WithContext(ctx), limit, offset).Find(&sources).Error; err != nil {
		return nil, err
	}
	return sources, nil
}

func (s *Store) ListIncomeSourcesByUser(ctx context.Context, userID uint) ([]models.IncomeSource, error) {
	var sources []models.IncomeSource
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("id asc").Find(&sources).Error; err != nil {
		return nil, err
	}
	return sources, nil
}

func (s *Store) UpdateIncomeSource(ctx context.Context, id uint, upd IncomeSourceUpdate) (*models.IncomeSource, error) {
	var out *models.IncomeSource
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var src models.IncomeSource
		if err := tx.First(&src, id).Error; err != nil {
			return translate(err)
		}
		src.SourceName = upd.SourceName
		src.Amount = upd.Amount.Round(2)
		src.PayFrequency = upd.PayFrequency
		src.NextPayDate = upd.NextPayDate
		if err := tx.Save(&src).Error; err != nil {
			return translate(err)
		}
		out = &src
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteIncomeSource cascades to the allocations drawn against it inside
// the same transaction, then removes the row.
func (s *Store) DeleteIncomeSource(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var src models.IncomeSource
		if err := tx.First(&src, id).Error; err != nil {
			return translate(err)
		}
		if err := tx.Where("income_id = ?", id).Delete(&models.Allocation{}).Error; err != nil {
			return translate(err)
		}
		return translate(tx.Delete(&src).Error)
	})
}

func (s *Store) incomeSourceExists(tx *gorm.DB, id uint) error {
	var count int64
	if err := tx.Model(&models.IncomeSource{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%w: income source %d", ErrNotFound, id)
	}
	return nil
}
