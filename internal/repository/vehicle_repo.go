package repository

import (
	"context"

	"starwars/internal/domain"

	"gorm.io/gorm"
)

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

// FindByID preloads the favourites pointing at the vehicle.
func (r *VehicleRepository) FindByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	return findByID[domain.Vehicle](ctx, r.db, id, "Favourites")
}

func (r *VehicleRepository) List(ctx context.Context) ([]domain.Vehicle, error) {
	return listAll[domain.Vehicle](ctx, r.db, "Favourites")
}

func (r *VehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	return r.db.WithContext(ctx).Create(v).Error
}
