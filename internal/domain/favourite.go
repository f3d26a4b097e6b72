package domain

// Favourite связывает пользователя ровно с одной целью:
// персонажем, планетой или транспортом. Остальные ссылки остаются NULL.
// Дубликаты (user, target) на этом уровне не отклоняются.
type Favourite struct {
	ID          int64  `json:"id" gorm:"primaryKey"`
	UserID      int64  `json:"user_id" gorm:"not null;index"`
	CharacterID *int64 `json:"character_id" gorm:"index"`
	PlanetID    *int64 `json:"planet_id" gorm:"index"`
	VehicleID   *int64 `json:"vehicle_id" gorm:"index"`
}

// TableName возвращает имя таблицы в БД
func (Favourite) TableName() string {
	return "favourites"
}

// FavouriteTarget names the kind of entity a favourite points at.
type FavouriteTarget string

const (
	TargetCharacter FavouriteTarget = "character"
	TargetPlanet    FavouriteTarget = "planet"
	TargetVehicle   FavouriteTarget = "vehicle"
)

// NewFavourite builds an unsaved favourite linking userID to a single target.
func NewFavourite(userID int64, target FavouriteTarget, targetID int64) *Favourite {
	f := &Favourite{UserID: userID}
	id := targetID
	switch target {
	case TargetCharacter:
		f.CharacterID = &id
	case TargetPlanet:
		f.PlanetID = &id
	case TargetVehicle:
		f.VehicleID = &id
	}
	return f
}

// Column returns the favourites column holding the target's id.
func (t FavouriteTarget) Column() string {
	switch t {
	case TargetCharacter:
		return "character_id"
	case TargetPlanet:
		return "planet_id"
	case TargetVehicle:
		return "vehicle_id"
	}
	return ""
}

// Label is the capitalised name used in response messages.
func (t FavouriteTarget) Label() string {
	switch t {
	case TargetCharacter:
		return "Character"
	case TargetPlanet:
		return "Planet"
	case TargetVehicle:
		return "Vehicle"
	}
	return ""
}
