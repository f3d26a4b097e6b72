package seed

import (
	"context"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"starwars/internal/database/dbtest"
	"starwars/internal/domain"
)

func TestSeeder_Run(t *testing.T) {
	db := dbtest.New(t)
	opts := Options{Users: 2, Characters: 4, Planets: 3, Vehicles: 5, Password: "r2d2", RandSeed: 42}

	sum, err := New(db, opts).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Summary{Users: 2, Characters: 4, Planets: 3, Vehicles: 5}, sum)

	assert.EqualValues(t, 2, dbtest.Count(t, db, &domain.User{}))
	assert.EqualValues(t, 4, dbtest.Count(t, db, &domain.Character{}))
	assert.EqualValues(t, 3, dbtest.Count(t, db, &domain.Planet{}))
	assert.EqualValues(t, 5, dbtest.Count(t, db, &domain.Vehicle{}))

	var users []domain.User
	require.NoError(t, db.Find(&users).Error)
	for _, u := range users {
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("r2d2")))
		assert.True(t, u.IsActive)
	}

	var vehicles []domain.Vehicle
	require.NoError(t, db.Find(&vehicles).Error)
	for _, v := range vehicles {
		assert.LessOrEqual(t, utf8.RuneCountInString(v.Name), maxShortField)
		assert.LessOrEqual(t, utf8.RuneCountInString(v.Manufacturer), maxShortField)
	}
}

func TestSeeder_Reset(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()

	require.NoError(t, db.Create(domain.NewFavourite(1, domain.TargetPlanet, 1)).Error)
	_, err := New(db, Options{Users: 1, Planets: 2, Password: "x", RandSeed: 1}).Run(ctx)
	require.NoError(t, err)

	_, err = New(db, Options{Users: 1, Planets: 1, Password: "x", RandSeed: 2, Reset: true}).Run(ctx)
	require.NoError(t, err)

	assert.EqualValues(t, 1, dbtest.Count(t, db, &domain.User{}))
	assert.EqualValues(t, 1, dbtest.Count(t, db, &domain.Planet{}))
	assert.Zero(t, dbtest.Count(t, db, &domain.Favourite{}))
}

func TestClip(t *testing.T) {
	assert.Equal(t, "Hoth", clip("Hoth"))
	assert.Equal(t, "Incom Corporation ab", clip("Incom Corporation abcdef"))
	assert.Equal(t, 20, utf8.RuneCountInString(clip("ŽŽŽŽŽŽŽŽŽŽŽŽŽŽŽŽŽŽŽŽŽŽŽŽ")))
}
