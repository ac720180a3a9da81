package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"cashcompass/models"
)

// CategoryUpdate carries the mutable subset of a category. The owning user
// id is fixed at creation. A nil Description keeps the stored value; a
// present one replaces it (empty string is a valid replacement).
type CategoryUpdate struct {
	Name        string
	Description *string
}

func (s *Store) CreateCategory(ctx context.Context, c *models.Category) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.userExists(tx, c.UserID); err != nil {
			return err
		}
		return translate(tx.Create(c).Error)
	})
}

func (s *Store) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	var c models.Category
	if err := s.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (s *Store) ListCategories(ctx context.Context, limit, offset int) ([]models.Category, error) {
	var categories []models.Category
	if err := paged(s.db.WithContext(ctx), limit, offset).Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *Store) ListCategoriesByUser(ctx context.Context, userID uint) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("id asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *Store) UpdateCategory(ctx context.Context, id uint, upd CategoryUpdate) (*models.Category, error) {
	var out *models.Category
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c models.Category
		if err := tx.First(&c, id).Error; err != nil {
			return translate(err)
		}
		c.Name = upd.Name
		if upd.Description != nil {
			c.Description = *upd.Description
		}
		if err := tx.Save(&c).Error; err != nil {
			return translate(err)
		}
		out = &c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteCategory enforces the restrict rule: the delete fails while any
// allocation or expense still references the category. The counts make the
// conflict message actionable; the FK RESTRICT actions in the schema close
// the race.
func (s *Store) DeleteCategory(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c models.Category
		if err := tx.First(&c, id).Error; err != nil {
			return translate(err)
		}
		var allocations, expenses int64
		if err := tx.Model(&models.Allocation{}).Where("category_id = ?", id).Count(&allocations).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Expense{}).Where("category_id = ?", id).Count(&expenses).Error; err != nil {
			return err
		}
		if allocations > 0 || expenses > 0 {
			return fmt.Errorf("%w: category %d still referenced by %d allocation(s) and %d expense(s)",
				ErrConflict, id, allocations, expenses)
		}
		return translate(tx.Delete(&c).Error)
	})
}

func (s *Store) categoryExists(tx *gorm.DB, id uint) error {
	var count int64
	if err := tx.Model(&models.Category{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%w: category %d", ErrNotFound, id)
	}
	return nil
}
