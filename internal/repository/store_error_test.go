package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"starwars/internal/domain"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return gormDB, mock
}

func TestFindByID_StoreFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCharacterRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "characters"`).
		WillReturnError(errors.New("connection reset by peer"))

	got, err := repo.FindByID(context.Background(), 1)
	assert.Error(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByID_MissIsNotAnError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password", "is_active"}))

	got, err := repo.FindByID(context.Background(), 42)
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFavouriteRepository_StoreFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFavouriteRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "favourites"`).
		WillReturnError(errors.New("too many connections"))

	got, err := repo.FindOne(context.Background(), 1, domain.TargetPlanet, 2)
	assert.Error(t, err)
	assert.Nil(t, got)

	mock.ExpectQuery(`SELECT \* FROM "favourites"`).
		WillReturnError(errors.New("too many connections"))

	list, err := repo.ListByUser(context.Background(), 1)
	assert.Error(t, err)
	assert.Nil(t, list)
	assert.NoError(t, mock.ExpectationsWereMet())
}
