package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"cashcompass/models"
)

// UserUpdate is the mutable field subset of a user. CreatedAt and the
// password hash are not updatable through this path.
type UserUpdate struct {
	FullName string
	Email    string
}

func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := emailTaken(tx, u.Email, 0)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("%w: email %q already registered", ErrConflict, u.Email)
		}
		return translate(tx.Create(u).Error)
	})
}

func (s *Store) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (s *Store) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	var users []models.User
	if err := paged(s.db.WithContext(ctx), limit, offset).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Store) UpdateUser(ctx context.Context, id uint, upd UserUpdate) (*models.User, error) {
	var out *models.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u models.User
		if err := tx.First(&u, id).Error; err != nil {
			return translate(err)
		}
		if upd.Email != u.Email {
			taken, err := emailTaken(tx, upd.Email, id)
			if err != nil {
				return err
			}
			if taken {
				return fmt.Errorf("%w: email %q already registered", ErrConflict, upd.Email)
			}
		}
		u.FullName = upd.FullName
		u.Email = upd.Email
		if err := tx.Save(&u).Error; err != nil {
			return translate(err)
		}
		out = &u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteUser removes the user and everything it owns in one transaction.
// Children go first, in an order that never trips the category RESTRICT
// rule: allocations and expenses before the categories they reference. The
// declared DB cascades remain as backstop for any path missed here.
func (s *Store) DeleteUser(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u models.User
		if err := tx.First(&u, id).Error; err != nil {
			return translate(err)
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Allocation{}).Error; err != nil {
			return translate(err)
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Expense{}).Error; err != nil {
			return translate(err)
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Category{}).Error; err != nil {
			return translate(err)
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.IncomeSource{}).Error; err != nil {
			return translate(err)
		}
		return translate(tx.Delete(&u).Error)
	})
}

func emailTaken(tx *gorm.DB, email string, excludeID uint) (bool, error) {
	var count int64
	q := tx.Model(&models.User{}).Where("email = ?", email)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) userExists(tx *gorm.DB, id uint) error {
	var count int64
	if err := tx.Model(&models.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%w: user %d", ErrNotFound, id)
	}
	return nil
}
