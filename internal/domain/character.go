package domain

type Character struct {
	ID        int64  `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"size:20;not null"`
	BirthYear string `json:"birth_year" gorm:"size:20;not null"`
	Gender    string `json:"gender" gorm:"size:20;not null"`
	Homeworld string `json:"homeworld" gorm:"size:20;not null"`
	Species   string `json:"species" gorm:"size:200;not null"`

	Favourites []Favourite `json:"favourites" gorm:"foreignKey:CharacterID"`
}

func (Character) TableName() string {
	return "characters"
}
