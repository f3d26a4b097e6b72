package favourite

import "starwars/internal/domain"

// FavouriteResponse описывает запись избранного.
// Незаданные цели сериализуются как null.
type FavouriteResponse struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	CharacterID *int64 `json:"character_id"`
	PlanetID    *int64 `json:"planet_id"`
	VehicleID   *int64 `json:"vehicle_id"`
}

// MessageResponse возвращается при добавлении и удалении
type MessageResponse struct {
	Msg string `json:"msg"`
}

// ErrorResponse для документации swagger
type ErrorResponse struct {
	Error string `json:"error"`
}

// ToFavouriteResponse конвертирует domain.Favourite в API response
func ToFavouriteResponse(f domain.Favourite) FavouriteResponse {
	return FavouriteResponse{
		ID:          f.ID,
		UserID:      f.UserID,
		CharacterID: f.CharacterID,
		PlanetID:    f.PlanetID,
		VehicleID:   f.VehicleID,
	}
}

// ToFavouriteResponses never returns nil, so an empty list encodes as [].
func ToFavouriteResponses(favourites []domain.Favourite) []FavouriteResponse {
	items := make([]FavouriteResponse, 0, len(favourites))
	for _, f := range favourites {
		items = append(items, ToFavouriteResponse(f))
	}
	return items
}
