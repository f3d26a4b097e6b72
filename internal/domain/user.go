package domain

type User struct {
	ID       int64  `json:"id" gorm:"primaryKey"`
	Email    string `json:"email" gorm:"size:120;uniqueIndex;not null"`
	Password string `json:"-" gorm:"size:80;not null"`
	IsActive bool   `json:"is_active" gorm:"not null"`

	// Удаление пользователя не удаляет его избранное (каскада нет).
	Favourites []Favourite `json:"-" gorm:"foreignKey:UserID"`
}

func (User) TableName() string {
	return "users"
}
