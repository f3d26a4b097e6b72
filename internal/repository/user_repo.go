package repository

import (
	"context"
	"strings"

	"starwars/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create stores u with a lower-cased email. Password must already be hashed.
func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	u.Email = strings.TrimSpace(strings.ToLower(u.Email))
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return findByID[domain.User](ctx, r.db, id)
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	return listAll[domain.User](ctx, r.db)
}

func (r *UserRepository) Delete(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Delete(u).Error
}
