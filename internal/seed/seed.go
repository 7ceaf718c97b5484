package seed

import (
	"fmt"
	"math/rand"

	"github.com/doqhuy/moviechill-backend/internal/middleware"
	"github.com/doqhuy/moviechill-backend/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeder populates the database with demo data.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder bound to the given database.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db)}
}

// ClearAll removes all seeded data. Follows go first so no foreign key
// is left dangling.
func (s *Seeder) ClearAll() error {
	for _, table := range []string{"follows", "surveys", "users"} {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	middleware.Logger.Info("cleared existing seed data")
	return nil
}

// SeedDirectory creates an admin account plus numUsers regular users and
// returns everything created.
func (s *Seeder) SeedDirectory(numUsers int) ([]models.User, error) {
	admin, err := s.seedAdmin()
	if err != nil {
		return nil, err
	}

	users, err := s.factory.CreateUsersBatch(numUsers)
	if err != nil {
		return nil, fmt.Errorf("failed to create users: %w", err)
	}
	middleware.Logger.Info("seeded users", "count", len(users))

	return append([]models.User{*admin}, users...), nil
}

// SeedFollowMesh wires random follow edges between the given users. Each
// user follows roughly avgFollows others; self-follows and duplicate
// edges are skipped.
func (s *Seeder) SeedFollowMesh(users []models.User, avgFollows int) (int, error) {
	if len(users) < 2 || avgFollows < 1 {
		return 0, nil
	}

	seen := make(map[[2]uint]struct{})
	edges := make([]models.Follow, 0, len(users)*avgFollows)

	for _, follower := range users {
		count := rand.Intn(avgFollows*2 + 1)
		for i := 0; i < count; i++ {
			target := users[rand.Intn(len(users))]
			if target.ID == follower.ID {
				continue
			}
			key := [2]uint{follower.ID, target.ID}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			edges = append(edges, models.Follow{
				FollowerID: follower.ID,
				FolloweeID: target.ID,
			})
		}
	}

	if len(edges) == 0 {
		return 0, nil
	}
	if err := s.db.CreateInBatches(&edges, 200).Error; err != nil {
		return 0, fmt.Errorf("failed to create follow edges: %w", err)
	}
	middleware.Logger.Info("seeded follow edges", "count", len(edges))
	return len(edges), nil
}

// SeedSurveys creates count fake feedback submissions.
func (s *Seeder) SeedSurveys(count int) error {
	surveys := make([]models.Survey, 0, count)
	for i := 0; i < count; i++ {
		surveys = append(surveys, *s.factory.BuildSurvey())
	}
	if len(surveys) == 0 {
		return nil
	}
	if err := s.db.CreateInBatches(&surveys, 100).Error; err != nil {
		return fmt.Errorf("failed to create surveys: %w", err)
	}
	return nil
}

// seedAdmin creates the well-known admin account used for local testing.
func (s *Seeder) seedAdmin() (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	admin := &models.User{
		FullName: "Directory Admin",
		Username: "adminuser",
		Email:    "admin@moviechill.local",
		Password: string(hashed),
		Role:     models.RoleAdmin,
	}
	if err := s.db.Create(admin).Error; err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}
	return admin, nil
}
