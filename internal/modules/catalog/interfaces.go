package catalog

import (
	"context"

	"starwars/internal/domain"
)

type CharacterStore interface {
	FindByID(ctx context.Context, id int64) (*domain.Character, error)
	List(ctx context.Context) ([]domain.Character, error)
}

type PlanetStore interface {
	FindByID(ctx context.Context, id int64) (*domain.Planet, error)
	List(ctx context.Context) ([]domain.Planet, error)
}

type VehicleStore interface {
	FindByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	List(ctx context.Context) ([]domain.Vehicle, error)
}
