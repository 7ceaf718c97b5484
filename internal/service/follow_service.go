package service

import (
	"context"

	"github.com/doqhuy/moviechill-backend/internal/models"
	"github.com/doqhuy/moviechill-backend/internal/observability"
	"github.com/doqhuy/moviechill-backend/internal/repository"
)

// FollowService owns the follow graph and its consistency rules.
type FollowService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
}

func NewFollowService(userRepo repository.UserRepository, followRepo repository.FollowRepository) *FollowService {
	return &FollowService{userRepo: userRepo, followRepo: followRepo}
}

// RelationshipList holds a target's followers and following, each entry
// annotated against the viewer's own graph.
type RelationshipList struct {
	Followers []models.RelationshipEntry `json:"followers"`
	Following []models.RelationshipEntry `json:"following"`
}

// Toggle follows the target if the caller does not already follow them,
// and unfollows otherwise. Returns the resulting state.
func (s *FollowService) Toggle(ctx context.Context, caller models.Caller, targetID uint) (bool, error) {
	if targetID == caller.UserID {
		return false, models.NewValidationError("You can't follow yourself")
	}
	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return false, err
	}

	nowFollowing, err := s.followRepo.Toggle(ctx, caller.UserID, targetID)
	if err != nil {
		return false, err
	}

	if nowFollowing {
		observability.FollowToggles.WithLabelValues("followed").Inc()
	} else {
		observability.FollowToggles.WithLabelValues("unfollowed").Inc()
	}
	return nowFollowing, nil
}

// ListRelationships resolves the target's followers and following to
// summaries. The isFollowing/isAFollower flags describe the caller's own
// relationship to each listed user, so two viewers see the same lists
// with different flags.
func (s *FollowService) ListRelationships(ctx context.Context, caller models.Caller, targetID uint) (*RelationshipList, error) {
	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return nil, err
	}

	followers, err := s.followRepo.Followers(ctx, targetID)
	if err != nil {
		return nil, err
	}
	following, err := s.followRepo.Following(ctx, targetID)
	if err != nil {
		return nil, err
	}

	viewerFollowing, err := s.followRepo.FollowingIDs(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}
	viewerFollowers, err := s.followRepo.FollowerIDs(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}

	return &RelationshipList{
		Followers: annotate(followers, viewerFollowing, viewerFollowers),
		Following: annotate(following, viewerFollowing, viewerFollowers),
	}, nil
}

func annotate(users []models.User, viewerFollowing, viewerFollowers map[uint]struct{}) []models.RelationshipEntry {
	entries := make([]models.RelationshipEntry, 0, len(users))
	for _, u := range users {
		_, isFollowing := viewerFollowing[u.ID]
		_, isAFollower := viewerFollowers[u.ID]
		entries = append(entries, models.RelationshipEntry{
			Summary:     u.Summarize(),
			IsFollowing: isFollowing,
			IsAFollower: isAFollower,
		})
	}
	return entries
}
