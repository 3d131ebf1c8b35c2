package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrStaleRecord is returned by full-replace updates that matched no row:
// either the row is gone or its version moved on since the caller read it.
var ErrStaleRecord = errors.New("stale record")

// GormRepo is the persistence gateway. Every call derives a request-scoped
// session from the pooled handle with WithContext.
type GormRepo struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *GormRepo {
	return &GormRepo{DB: db}
}

// replace overwrites every column in fields on the row with the given id
// and bumps its version. A non-zero version must match the stored one.
func (r *GormRepo) replace(ctx context.Context, model any, id, version uint, fields map[string]any) error {
	q := r.DB.WithContext(ctx).Model(model).Where("id = ?", id)
	if version != 0 {
		q = q.Where("version = ?", version)
	}

	fields["version"] = gorm.Expr("version + 1")
	res := q.Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStaleRecord
	}
	return nil
}

func (r *GormRepo) remove(ctx context.Context, model any, id uint) error {
	res := r.DB.WithContext(ctx).Delete(model, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
