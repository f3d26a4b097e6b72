package repository

import (
	"context"

	"starwars/internal/domain"

	"gorm.io/gorm"
)

type CharacterRepository struct {
	db *gorm.DB
}

func NewCharacterRepository(db *gorm.DB) *CharacterRepository {
	return &CharacterRepository{db: db}
}

// FindByID preloads the favourites pointing at the character.
func (r *CharacterRepository) FindByID(ctx context.Context, id int64) (*domain.Character, error) {
	return findByID[domain.Character](ctx, r.db, id, "Favourites")
}

func (r *CharacterRepository) List(ctx context.Context) ([]domain.Character, error) {
	return listAll[domain.Character](ctx, r.db, "Favourites")
}

func (r *CharacterRepository) Create(ctx context.Context, c *domain.Character) error {
	return r.db.WithContext(ctx).Create(c).Error
}
