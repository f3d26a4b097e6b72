package favourite

import (
	"context"

	"starwars/internal/domain"
)

type Service struct {
	users      UserFinder
	characters CharacterFinder
	planets    PlanetFinder
	vehicles   VehicleFinder
	favourites FavouriteRepository
}

func NewService(
	users UserFinder,
	characters CharacterFinder,
	planets PlanetFinder,
	vehicles VehicleFinder,
	favourites FavouriteRepository,
) *Service {
	return &Service{users, characters, planets, vehicles, favourites}
}

// Add links userID to the target. The user is checked before the target,
// and nothing is written unless both exist. Duplicates are allowed.
func (s *Service) Add(ctx context.Context, userID int64, target domain.FavouriteTarget, targetID int64) (*domain.Favourite, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	exists, err := s.targetExists(ctx, target, targetID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrTargetNotFound
	}

	fav := domain.NewFavourite(user.ID, target, targetID)
	if err := s.favourites.Create(ctx, fav); err != nil {
		return nil, err
	}
	return fav, nil
}

// Remove deletes the first favourite matching (userID, target, targetID).
func (s *Service) Remove(ctx context.Context, userID int64, target domain.FavouriteTarget, targetID int64) error {
	fav, err := s.favourites.FindOne(ctx, userID, target, targetID)
	if err != nil {
		return err
	}
	if fav == nil {
		return ErrFavouriteNotFound
	}
	return s.favourites.Delete(ctx, fav)
}

// ListForUser returns ErrUserNotFound for unknown users, otherwise their
// favourites (possibly none).
func (s *Service) ListForUser(ctx context.Context, userID int64) ([]domain.Favourite, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return s.favourites.ListByUser(ctx, user.ID)
}

func (s *Service) targetExists(ctx context.Context, target domain.FavouriteTarget, id int64) (bool, error) {
	switch target {
	case domain.TargetCharacter:
		c, err := s.characters.FindByID(ctx, id)
		return c != nil, err
	case domain.TargetPlanet:
		p, err := s.planets.FindByID(ctx, id)
		return p != nil, err
	case domain.TargetVehicle:
		v, err := s.vehicles.FindByID(ctx, id)
		return v != nil, err
	}
	return false, ErrUnknownTarget
}
