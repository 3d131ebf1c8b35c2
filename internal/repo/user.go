package repo

import (
	"context"

	"github.com/Skotchmaster/shop/internal/models"
)

func (r *GormRepo) ListUsers(ctx context.Context) ([]models.User, error) {
	items := make([]models.User, 0)
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) CreateUser(ctx context.Context, u *models.User) error {
	return r.DB.WithContext(ctx).Create(u).Error
}

// CreateUserIfNotExists inserts u unless a user with the same username is
// already stored. It reports whether a row was created.
func (r *GormRepo) CreateUserIfNotExists(ctx context.Context, u *models.User) (bool, error) {
	tx := r.DB.WithContext(ctx).Where("username = ?", u.Username).FirstOrCreate(u)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *GormRepo) ReplaceUser(ctx context.Context, u *models.User) error {
	return r.replace(ctx, &models.User{}, u.ID, u.Version, map[string]any{
		"username":      u.Username,
		"password_hash": u.PasswordHash,
		"role":          u.Role,
	})
}

func (r *GormRepo) DeleteUser(ctx context.Context, id uint) error {
	return r.remove(ctx, &models.User{}, id)
}
