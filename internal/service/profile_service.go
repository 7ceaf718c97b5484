package service

import (
	"context"
	"strings"
	"time"

	"github.com/doqhuy/moviechill-backend/internal/models"
	"github.com/doqhuy/moviechill-backend/internal/repository"
)

// ProfileService owns the mutable profile fields and the profile view.
type ProfileService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
}

func NewProfileService(userRepo repository.UserRepository, followRepo repository.FollowRepository) *ProfileService {
	return &ProfileService{userRepo: userRepo, followRepo: followRepo}
}

// ProfileView is a profile as seen by a particular viewer. Email is only
// populated for the owner or an admin viewer.
type ProfileView struct {
	ID            uint      `json:"id"`
	Username      string    `json:"username"`
	FullName      string    `json:"full_name"`
	Email         string    `json:"email,omitempty"`
	ProfilePic    string    `json:"profile_pic"`
	Bio           string    `json:"bio"`
	Genre         []string  `json:"genre"`
	Facebook      string    `json:"facebook"`
	Twitter       string    `json:"twitter"`
	Instagram     string    `json:"instagram"`
	Github        string    `json:"github"`
	EmailVerified bool      `json:"email_verified"`
	Followers     int64     `json:"followers"`
	Following     int64     `json:"following"`
	CreatedAt     time.Time `json:"created_at"`
	OwnProfile    bool      `json:"own_profile"`
	IsFollowing   bool      `json:"is_following"`
}

// GenrePick is the {label, value} pair the profile editor submits; only
// the label is stored.
type GenrePick struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// EditProfileInput carries a partial update. Nil fields are untouched and
// an explicit empty string clears the field.
type EditProfileInput struct {
	TargetID  *uint        `json:"id"`
	FullName  *string      `json:"full_name"`
	Username  *string      `json:"username"`
	Bio       *string      `json:"bio"`
	Genre     *[]GenrePick `json:"genre"`
	Facebook  *string      `json:"facebook"`
	Twitter   *string      `json:"twitter"`
	Instagram *string      `json:"instagram"`
	Github    *string      `json:"github"`
	Role      *string      `json:"role"`
}

// GetProfile returns the target's profile as seen by the caller.
func (s *ProfileService) GetProfile(ctx context.Context, caller models.Caller, targetUsername string) (*ProfileView, error) {
	user, err := s.userRepo.GetByUsername(ctx, targetUsername)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundMessage("User not found")
	}

	followers, following, err := s.followRepo.Counts(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	view := &ProfileView{
		ID:            user.ID,
		Username:      user.Username,
		FullName:      user.FullName,
		ProfilePic:    user.ProfilePic,
		Bio:           user.Bio,
		Genre:         user.Genre,
		Facebook:      user.Facebook,
		Twitter:       user.Twitter,
		Instagram:     user.Instagram,
		Github:        user.Github,
		EmailVerified: user.EmailVerified,
		Followers:     followers,
		Following:     following,
		CreatedAt:     user.CreatedAt,
		OwnProfile:    caller.UserID == user.ID,
	}

	if view.OwnProfile || caller.IsAdmin() {
		view.Email = user.Email
	}
	if !view.OwnProfile {
		view.IsFollowing, err = s.followRepo.IsFollowing(ctx, caller.UserID, user.ID)
		if err != nil {
			return nil, err
		}
	}

	return view, nil
}

// EditProfile applies a partial update. Admins may target any account
// through the explicit id field; everyone else edits themselves.
func (s *ProfileService) EditProfile(ctx context.Context, caller models.Caller, in EditProfileInput) error {
	targetID := caller.UserID
	if in.TargetID != nil {
		if *in.TargetID != caller.UserID && !caller.IsAdmin() {
			return models.NewForbiddenError("You are not authorized to perform this action")
		}
		targetID = *in.TargetID
	}

	user, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return err
	}

	if in.Username != nil {
		normalized := strings.ToLower(strings.TrimSpace(*in.Username))
		if !strings.EqualFold(normalized, user.Username) {
			// The unique index catches the race; this pre-check just
			// gives a clean error on the common path.
			holder, err := s.userRepo.GetByUsername(ctx, normalized)
			if err != nil {
				return err
			}
			if holder != nil && holder.ID != user.ID {
				return models.NewConflictError("Username already taken")
			}
		}
		user.Username = normalized
	}
	if in.FullName != nil {
		user.FullName = *in.FullName
	}
	if in.Bio != nil {
		user.Bio = *in.Bio
	}
	if in.Genre != nil {
		labels := make([]string, 0, len(*in.Genre))
		for _, pick := range *in.Genre {
			labels = append(labels, pick.Label)
		}
		user.Genre = labels
	}
	if in.Facebook != nil {
		user.Facebook = *in.Facebook
	}
	if in.Twitter != nil {
		user.Twitter = *in.Twitter
	}
	if in.Instagram != nil {
		user.Instagram = *in.Instagram
	}
	if in.Github != nil {
		user.Github = *in.Github
	}
	if in.Role != nil {
		if !caller.IsAdmin() {
			return models.NewForbiddenError("You are not authorized to change roles")
		}
		if *in.Role != models.RoleUser && *in.Role != models.RoleAdmin {
			return models.NewValidationError("Invalid role")
		}
		user.Role = *in.Role
	}

	return s.userRepo.Update(ctx, user)
}
