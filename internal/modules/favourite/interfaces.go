package favourite

import (
	"context"

	"starwars/internal/domain"
	"starwars/internal/repository"
)

type UserFinder interface {
	FindByID(ctx context.Context, id int64) (*domain.User, error)
}

type CharacterFinder interface {
	FindByID(ctx context.Context, id int64) (*domain.Character, error)
}

type PlanetFinder interface {
	FindByID(ctx context.Context, id int64) (*domain.Planet, error)
}

type VehicleFinder interface {
	FindByID(ctx context.Context, id int64) (*domain.Vehicle, error)
}

type FavouriteRepository = repository.FavouriteRepository
