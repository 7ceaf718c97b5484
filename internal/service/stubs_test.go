package service

import (
	"context"
	"fmt"

	"github.com/doqhuy/moviechill-backend/internal/models"
)

type userRepoStub struct {
	getByIDFn        func(context.Context, uint) (*models.User, error)
	getByEmailFn     func(context.Context, string) (*models.User, error)
	getByUsernameFn  func(context.Context, string) (*models.User, error)
	createFn         func(context.Context, *models.User) error
	updateFn         func(context.Context, *models.User) error
	updateFieldsFn   func(context.Context, uint, map[string]any) error
	listFn           func(context.Context, int, int, bool) ([]models.User, error)
	searchFn         func(context.Context, string) ([]models.User, error)
	usernameExistsFn func(context.Context, string) (bool, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	return s.updateFieldsFn(ctx, id, fields)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int, newestFirst bool) ([]models.User, error) {
	return s.listFn(ctx, limit, offset, newestFirst)
}
func (s *userRepoStub) Search(ctx context.Context, term string) ([]models.User, error) {
	return s.searchFn(ctx, term)
}
func (s *userRepoStub) UsernameExists(ctx context.Context, username string) (bool, error) {
	return s.usernameExistsFn(ctx, username)
}

// noopUserRepo returns a stub whose lookups all miss and whose writes all
// succeed; tests override the functions they care about.
func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:        func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn:     func(context.Context, string) (*models.User, error) { return nil, nil },
		getByUsernameFn:  func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:         func(context.Context, *models.User) error { return nil },
		updateFn:         func(context.Context, *models.User) error { return nil },
		updateFieldsFn:   func(context.Context, uint, map[string]any) error { return nil },
		listFn:           func(context.Context, int, int, bool) ([]models.User, error) { return nil, nil },
		searchFn:         func(context.Context, string) ([]models.User, error) { return nil, nil },
		usernameExistsFn: func(context.Context, string) (bool, error) { return false, nil },
	}
}

type followRepoStub struct {
	isFollowingFn  func(context.Context, uint, uint) (bool, error)
	toggleFn       func(context.Context, uint, uint) (bool, error)
	followersFn    func(context.Context, uint) ([]models.User, error)
	followingFn    func(context.Context, uint) ([]models.User, error)
	followerIDsFn  func(context.Context, uint) (map[uint]struct{}, error)
	followingIDsFn func(context.Context, uint) (map[uint]struct{}, error)
	countsFn       func(context.Context, uint) (int64, int64, error)
}

func (s *followRepoStub) IsFollowing(ctx context.Context, followerID, followeeID uint) (bool, error) {
	return s.isFollowingFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) Toggle(ctx context.Context, followerID, followeeID uint) (bool, error) {
	return s.toggleFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) Followers(ctx context.Context, userID uint) ([]models.User, error) {
	return s.followersFn(ctx, userID)
}
func (s *followRepoStub) Following(ctx context.Context, userID uint) ([]models.User, error) {
	return s.followingFn(ctx, userID)
}
func (s *followRepoStub) FollowerIDs(ctx context.Context, userID uint) (map[uint]struct{}, error) {
	return s.followerIDsFn(ctx, userID)
}
func (s *followRepoStub) FollowingIDs(ctx context.Context, userID uint) (map[uint]struct{}, error) {
	return s.followingIDsFn(ctx, userID)
}
func (s *followRepoStub) Counts(ctx context.Context, userID uint) (int64, int64, error) {
	return s.countsFn(ctx, userID)
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		isFollowingFn:  func(context.Context, uint, uint) (bool, error) { return false, nil },
		toggleFn:       func(context.Context, uint, uint) (bool, error) { return true, nil },
		followersFn:    func(context.Context, uint) ([]models.User, error) { return nil, nil },
		followingFn:    func(context.Context, uint) ([]models.User, error) { return nil, nil },
		followerIDsFn:  func(context.Context, uint) (map[uint]struct{}, error) { return map[uint]struct{}{}, nil },
		followingIDsFn: func(context.Context, uint) (map[uint]struct{}, error) { return map[uint]struct{}{}, nil },
		countsFn:       func(context.Context, uint) (int64, int64, error) { return 0, 0, nil },
	}
}

type surveyRepoStub struct {
	createFn func(context.Context, *models.Survey) error
}

func (s *surveyRepoStub) Create(ctx context.Context, survey *models.Survey) error {
	return s.createFn(ctx, survey)
}

// tokenStub issues predictable tokens and records what it verified.
type tokenStub struct {
	issueFn  func(uint) (string, error)
	verifyFn func(string) (uint, error)
}

func (s *tokenStub) Issue(userID uint) (string, error) {
	if s.issueFn != nil {
		return s.issueFn(userID)
	}
	return fmt.Sprintf("token-for-%d", userID), nil
}

func (s *tokenStub) Verify(token string) (uint, error) {
	if s.verifyFn != nil {
		return s.verifyFn(token)
	}
	return 0, models.NewUnauthorizedError("Invalid or expired token")
}

func appErrCode(err error) string {
	if appErr, ok := err.(*models.AppError); ok {
		return appErr.Code
	}
	return ""
}
