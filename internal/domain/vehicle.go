package domain

type Vehicle struct {
	ID           int64  `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" gorm:"size:20;not null"`
	Model        string `json:"model" gorm:"size:20;not null"`
	Manufacturer string `json:"manufacturer" gorm:"size:20;not null"`

	Favourites []Favourite `json:"favourites" gorm:"foreignKey:VehicleID"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}
