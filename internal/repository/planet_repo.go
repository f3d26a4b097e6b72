package repository

import (
	"context"

	"starwars/internal/domain"

	"gorm.io/gorm"
)

type PlanetRepository struct {
	db *gorm.DB
}

func NewPlanetRepository(db *gorm.DB) *PlanetRepository {
	return &PlanetRepository{db: db}
}

// FindByID preloads the favourites pointing at the planet.
func (r *PlanetRepository) FindByID(ctx context.Context, id int64) (*domain.Planet, error) {
	return findByID[domain.Planet](ctx, r.db, id, "Favourites")
}

func (r *PlanetRepository) List(ctx context.Context) ([]domain.Planet, error) {
	return listAll[domain.Planet](ctx, r.db, "Favourites")
}

func (r *PlanetRepository) Create(ctx context.Context, p *domain.Planet) error {
	return r.db.WithContext(ctx).Create(p).Error
}
