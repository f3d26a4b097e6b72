package repository

import (
	"context"

	"starwars/internal/domain"

	"gorm.io/gorm"
)

// FavouriteRepository определяет методы для работы с избранным
type FavouriteRepository interface {
	Create(ctx context.Context, f *domain.Favourite) error
	Delete(ctx context.Context, f *domain.Favourite) error
	FindOne(ctx context.Context, userID int64, target domain.FavouriteTarget, targetID int64) (*domain.Favourite, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Favourite, error)
	Count(ctx context.Context) (int64, error)
}

type favouriteRepository struct {
	db *gorm.DB
}

// NewFavouriteRepository создаёт новый экземпляр репозитория
func NewFavouriteRepository(db *gorm.DB) FavouriteRepository {
	return &favouriteRepository{db: db}
}

// Create сохраняет запись; id назначает БД.
// Дубликаты не проверяются.
func (r *favouriteRepository) Create(ctx context.Context, f *domain.Favourite) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *favouriteRepository) Delete(ctx context.Context, f *domain.Favourite) error {
	return r.db.WithContext(ctx).Delete(f).Error
}

// FindOne возвращает первую запись пользователя для указанной цели
// или (nil, nil), если такой нет.
func (r *favouriteRepository) FindOne(ctx context.Context, userID int64, target domain.FavouriteTarget, targetID int64) (*domain.Favourite, error) {
	column := target.Column()
	if column == "" {
		return nil, nil
	}

	var fav domain.Favourite
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where(column+" = ?", targetID).
		Order("id").
		Limit(1).
		Find(&fav)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, nil
	}
	return &fav, nil
}

// ListByUser возвращает всё избранное пользователя в порядке добавления.
func (r *favouriteRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Favourite, error) {
	favourites := make([]domain.Favourite, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&favourites).Error
	if err != nil {
		return nil, err
	}
	return favourites, nil
}

// Count возвращает общее число записей в таблице.
func (r *favouriteRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Favourite{}).Count(&count).Error
	return count, err
}
