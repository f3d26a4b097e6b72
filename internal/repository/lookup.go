package repository

import (
	"context"

	"gorm.io/gorm"
)

// findByID loads one row by primary key. A miss is reported as (nil, nil);
// only store failures produce an error.
func findByID[T any](ctx context.Context, db *gorm.DB, id int64, preload ...string) (*T, error) {
	var row T
	q := db.WithContext(ctx)
	for _, p := range preload {
		q = q.Preload(p, orderByID)
	}
	tx := q.Where("id = ?", id).Limit(1).Find(&row)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, nil
	}
	return &row, nil
}

// listAll returns every row ordered by id, never nil.
func listAll[T any](ctx context.Context, db *gorm.DB, preload ...string) ([]T, error) {
	rows := make([]T, 0)
	q := db.WithContext(ctx)
	for _, p := range preload {
		q = q.Preload(p, orderByID)
	}
	if err := q.Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}
