package service

import (
	"context"
	"strings"

	"github.com/doqhuy/moviechill-backend/internal/models"
	"github.com/doqhuy/moviechill-backend/internal/repository"
)

// DirectoryPageSize is the fixed number of users per directory page.
const DirectoryPageSize = 10

// DirectoryService owns paginated browsing, admin search and admin
// impersonation.
type DirectoryService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
	tokens     TokenIssuer
}

func NewDirectoryService(userRepo repository.UserRepository, followRepo repository.FollowRepository, tokens TokenIssuer) *DirectoryService {
	return &DirectoryService{userRepo: userRepo, followRepo: followRepo, tokens: tokens}
}

// DirectoryPage is one page of the user directory.
type DirectoryPage struct {
	Page    int                     `json:"page"`
	Results int                     `json:"results"`
	Data    []models.DirectoryEntry `json:"data"`
}

// ListUsers returns one directory page, each entry annotated with whether
// the caller follows the listed user. An empty page is a not-found
// condition, not an empty success.
func (s *DirectoryService) ListUsers(ctx context.Context, caller models.Caller, page int, sort string) (*DirectoryPage, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * DirectoryPageSize

	users, err := s.userRepo.List(ctx, DirectoryPageSize, offset, sort == "newest")
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, models.NewNotFoundMessage("No users found")
	}

	viewerFollowing, err := s.followRepo.FollowingIDs(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}

	entries := make([]models.DirectoryEntry, 0, len(users))
	for _, u := range users {
		_, isFollowing := viewerFollowing[u.ID]
		entries = append(entries, models.DirectoryEntry{
			Summary:     u.Summarize(),
			IsFollowing: isFollowing,
		})
	}

	return &DirectoryPage{Page: page, Results: len(entries), Data: entries}, nil
}

// SearchUsers matches the term as a case-insensitive substring of the
// full name or username. Admin only.
func (s *DirectoryService) SearchUsers(ctx context.Context, caller models.Caller, term string) ([]models.Summary, error) {
	if !caller.IsAdmin() {
		return nil, models.NewForbiddenError("You are not authorized to perform this action")
	}
	if strings.TrimSpace(term) == "" {
		return nil, models.NewValidationError("Search term is required")
	}

	users, err := s.userRepo.Search(ctx, term)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, models.NewNotFoundMessage("No users found")
	}

	results := make([]models.Summary, 0, len(users))
	for _, u := range users {
		results = append(results, u.Summarize())
	}
	return results, nil
}

// Impersonate issues a token for the target account. The target's
// existence is checked before any token is minted.
func (s *DirectoryService) Impersonate(ctx context.Context, caller models.Caller, targetID uint) (string, error) {
	if !caller.IsAdmin() {
		return "", models.NewForbiddenError("You are not authorized to perform this action")
	}
	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return "", err
	}

	token, err := s.tokens.Issue(targetID)
	if err != nil {
		return "", models.NewInternalError(err)
	}
	return token, nil
}
