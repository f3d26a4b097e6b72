// Package seed fills the catalog with demo data. Characters, planets and
// vehicles are never created through the API, so a fresh database needs this
// before the endpoints return anything.
package seed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"starwars/internal/domain"
)

// maxShortField matches the varchar(20) columns.
const maxShortField = 20

type Options struct {
	Users      int
	Characters int
	Planets    int
	Vehicles   int
	// Password is given to every seeded user, stored as a bcrypt hash.
	Password   string
	BcryptCost int
	// Reset deletes existing rows, favourites included, before inserting.
	Reset bool
	// RandSeed makes output reproducible; 0 picks one from the clock.
	RandSeed int64
}

func DefaultOptions() Options {
	return Options{
		Users:      3,
		Characters: 10,
		Planets:    10,
		Vehicles:   10,
		Password:   "password123",
		BcryptCost: bcrypt.DefaultCost,
	}
}

type Summary struct {
	Users      int
	Characters int
	Planets    int
	Vehicles   int
}

type Seeder struct {
	db   *gorm.DB
	opts Options
	fake *gofakeit.Faker
}

func New(db *gorm.DB, opts Options) *Seeder {
	if opts.RandSeed == 0 {
		opts.RandSeed = time.Now().UnixNano()
	}
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.MinCost
	}
	return &Seeder{db: db, opts: opts, fake: gofakeit.New(opts.RandSeed)}
}

// Run inserts everything in one transaction.
func (s *Seeder) Run(ctx context.Context) (Summary, error) {
	var sum Summary

	hash, err := bcrypt.GenerateFromPassword([]byte(s.opts.Password), s.opts.BcryptCost)
	if err != nil {
		return sum, fmt.Errorf("hash password: %w", err)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if s.opts.Reset {
			if err := reset(tx); err != nil {
				return err
			}
		}

		users := s.users(string(hash))
		characters := s.characters()
		planets := s.planets()
		vehicles := s.vehicles()

		for _, batch := range []any{&users, &characters, &planets, &vehicles} {
			if err := createBatch(tx, batch); err != nil {
				return err
			}
		}

		sum = Summary{Users: len(users), Characters: len(characters), Planets: len(planets), Vehicles: len(vehicles)}
		return nil
	})
	return sum, err
}

func reset(tx *gorm.DB) error {
	// favourites first, they reference everything else
	for _, model := range []any{&domain.Favourite{}, &domain.User{}, &domain.Character{}, &domain.Planet{}, &domain.Vehicle{}} {
		if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
			return fmt.Errorf("reset %T: %w", model, err)
		}
	}
	return nil
}

// createBatch skips empty slices; gorm rejects them.
func createBatch(tx *gorm.DB, rows any) error {
	empty := false
	switch v := rows.(type) {
	case *[]domain.User:
		empty = len(*v) == 0
	case *[]domain.Character:
		empty = len(*v) == 0
	case *[]domain.Planet:
		empty = len(*v) == 0
	case *[]domain.Vehicle:
		empty = len(*v) == 0
	}
	if empty {
		return nil
	}
	if err := tx.Create(rows).Error; err != nil {
		return fmt.Errorf("insert %T: %w", rows, err)
	}
	return nil
}

func (s *Seeder) users(hash string) []domain.User {
	out := make([]domain.User, 0, s.opts.Users)
	for i := 0; i < s.opts.Users; i++ {
		out = append(out, domain.User{
			Email:    strings.ToLower(fmt.Sprintf("%d.%s", i+1, s.fake.Email())),
			Password: hash,
			IsActive: true,
		})
	}
	return out
}

func (s *Seeder) characters() []domain.Character {
	out := make([]domain.Character, 0, s.opts.Characters)
	for i := 0; i < s.opts.Characters; i++ {
		out = append(out, domain.Character{
			Name:      clip(s.fake.Name()),
			BirthYear: fmt.Sprintf("%dBBY", s.fake.Number(1, 900)),
			Gender:    clip(s.fake.Gender()),
			Homeworld: clip(s.fake.City()),
			Species:   s.fake.Animal(),
		})
	}
	return out
}

func (s *Seeder) planets() []domain.Planet {
	climates := []string{"arid", "temperate", "frozen", "tropical", "murky", "polluted"}
	terrains := []string{"desert", "tundra", "forests", "swamp", "gas giant", "cityscape", "ocean"}

	out := make([]domain.Planet, 0, s.opts.Planets)
	for i := 0; i < s.opts.Planets; i++ {
		out = append(out, domain.Planet{
			Name:    clip(s.fake.City()),
			Climate: s.fake.RandomString(climates),
			Terrain: s.fake.RandomString(terrains),
		})
	}
	return out
}

func (s *Seeder) vehicles() []domain.Vehicle {
	out := make([]domain.Vehicle, 0, s.opts.Vehicles)
	for i := 0; i < s.opts.Vehicles; i++ {
		out = append(out, domain.Vehicle{
			Name:         clip(s.fake.Word() + " " + s.fake.CarType()),
			Model:        clip(s.fake.CarModel()),
			Manufacturer: clip(s.fake.CarMaker()),
		})
	}
	return out
}

func clip(s string) string {
	r := []rune(s)
	if len(r) > maxShortField {
		return strings.TrimSpace(string(r[:maxShortField]))
	}
	return s
}
