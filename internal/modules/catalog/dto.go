package catalog

import (
	"starwars/internal/domain"
	"starwars/internal/modules/favourite"
)

// ---------- CHARACTERS ----------

type CharacterResponse struct {
	ID         int64                         `json:"id"`
	Name       string                        `json:"name"`
	BirthYear  string                        `json:"birth_year"`
	Gender     string                        `json:"gender"`
	Homeworld  string                        `json:"homeworld"`
	Species    string                        `json:"species"`
	Favourites []favourite.FavouriteResponse `json:"favourites"`
}

func ToCharacterResponse(c domain.Character) CharacterResponse {
	return CharacterResponse{
		ID:         c.ID,
		Name:       c.Name,
		BirthYear:  c.BirthYear,
		Gender:     c.Gender,
		Homeworld:  c.Homeworld,
		Species:    c.Species,
		Favourites: favourite.ToFavouriteResponses(c.Favourites),
	}
}

// ---------- PLANETS ----------

type PlanetResponse struct {
	ID         int64                         `json:"id"`
	Name       string                        `json:"name"`
	Climate    string                        `json:"climate"`
	Terrain    string                        `json:"terrain"`
	Favourites []favourite.FavouriteResponse `json:"favourites"`
}

func ToPlanetResponse(p domain.Planet) PlanetResponse {
	return PlanetResponse{
		ID:         p.ID,
		Name:       p.Name,
		Climate:    p.Climate,
		Terrain:    p.Terrain,
		Favourites: favourite.ToFavouriteResponses(p.Favourites),
	}
}

// ---------- VEHICLES ----------

type VehicleResponse struct {
	ID           int64                         `json:"id"`
	Name         string                        `json:"name"`
	Model        string                        `json:"model"`
	Manufacturer string                        `json:"manufacturer"`
	Favourites   []favourite.FavouriteResponse `json:"favourites"`
}

func ToVehicleResponse(v domain.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:           v.ID,
		Name:         v.Name,
		Model:        v.Model,
		Manufacturer: v.Manufacturer,
		Favourites:   favourite.ToFavouriteResponses(v.Favourites),
	}
}

// mapAll applies fn to every row; the result is never nil.
func mapAll[T, R any](rows []T, fn func(T) R) []R {
	out := make([]R, 0, len(rows))
	for _, r := range rows {
		out = append(out, fn(r))
	}
	return out
}
