// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/doqhuy/moviechill-backend/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is the password every seeded user gets.
const DefaultPassword = "password123"

var genreLabels = []string{
	"Action", "Adventure", "Animation", "Comedy", "Crime", "Documentary",
	"Drama", "Fantasy", "Horror", "Mystery", "Romance", "Sci-Fi", "Thriller",
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:  db,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// BuildUser constructs a user with fake but plausible profile data. The
// index keeps usernames and emails unique across a batch.
func (f *Factory) BuildUser(index int, hashedPassword string) *models.User {
	first := gofakeit.FirstName()
	last := gofakeit.LastName()
	username := fmt.Sprintf("%s%s%d", strings.ToLower(first), strings.ToLower(last), index)

	genres := make([]string, 0, 3)
	for _, g := range f.rng.Perm(len(genreLabels))[:f.rng.Intn(3)+1] {
		genres = append(genres, genreLabels[g])
	}

	// Spread creation times so newest-first sorting looks real.
	daysBack := f.rng.Intn(365)
	createdAt := time.Now().Add(-time.Duration(daysBack) * 24 * time.Hour)

	return &models.User{
		FullName:   first + " " + last,
		Username:   username,
		Email:      fmt.Sprintf("%s@%s", username, gofakeit.DomainName()),
		Password:   hashedPassword,
		ProfilePic: fmt.Sprintf("https://picsum.photos/seed/%s/200/200", username),
		Bio:        gofakeit.Sentence(8),
		Genre:      genres,
		Role:       models.RoleUser,
		CreatedAt:  createdAt,
	}
}

// CreateUsersBatch persists count users in one insert.
func (f *Factory) CreateUsersBatch(count int) ([]models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, count)
	for i := 0; i < count; i++ {
		users = append(users, *f.BuildUser(i, string(hashed)))
	}
	if err := f.db.CreateInBatches(&users, 100).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// BuildSurvey constructs a fake feedback submission.
func (f *Factory) BuildSurvey() *models.Survey {
	sources := []string{"friend", "search", "social media", "other"}
	source := sources[f.rng.Intn(len(sources))]
	survey := &models.Survey{
		Name:     gofakeit.Name(),
		Source:   source,
		Rating:   f.rng.Intn(5) + 1,
		Feedback: gofakeit.Sentence(12),
	}
	if source == "other" {
		survey.OtherSource = gofakeit.BuzzWord()
	}
	return survey
}
