package domain

type Planet struct {
	ID      int64  `json:"id" gorm:"primaryKey"`
	Name    string `json:"name" gorm:"size:20;not null"`
	Climate string `json:"climate" gorm:"size:20;not null"`
	Terrain string `json:"terrain" gorm:"size:20;not null"`

	Favourites []Favourite `json:"favourites" gorm:"foreignKey:PlanetID"`
}

func (Planet) TableName() string {
	return "planets"
}
