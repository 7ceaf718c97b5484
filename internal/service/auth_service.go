// Package service contains the business logic of the application.
package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/doqhuy/moviechill-backend/internal/auth"
	"github.com/doqhuy/moviechill-backend/internal/models"
	"github.com/doqhuy/moviechill-backend/internal/observability"
	"github.com/doqhuy/moviechill-backend/internal/repository"
	"github.com/doqhuy/moviechill-backend/internal/validation"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// TokenIssuer issues and verifies bearer tokens for account IDs.
type TokenIssuer interface {
	Issue(userID uint) (string, error)
	Verify(token string) (uint, error)
}

// GoogleDecoder extracts identity claims from an externally issued token.
type GoogleDecoder func(raw string) (*auth.GooglePayload, error)

// AuthService owns account creation and the local, token and federated
// login paths.
type AuthService struct {
	userRepo     repository.UserRepository
	tokens       TokenIssuer
	decodeGoogle GoogleDecoder
}

func NewAuthService(userRepo repository.UserRepository, tokens TokenIssuer) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		tokens:       tokens,
		decodeGoogle: auth.DecodeGoogleToken,
	}
}

type SignupInput struct {
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	ProfilePic string `json:"profile_pic"`
}

type LoginInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is the payload returned by every login path.
type AuthResult struct {
	User  *models.User
	Token string
}

// Signup creates a new account. The validation steps run in a fixed order
// so the first failing rule decides the error the caller sees.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*AuthResult, error) {
	if in.FullName == "" || in.Email == "" || in.Username == "" || in.Password == "" {
		return nil, models.NewValidationError("some fields are missing")
	}

	existing, err := s.findByUsernameOrEmail(ctx, in.Username, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("user already exist with the email or username")
	}

	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		FullName:   in.FullName,
		Email:      strings.TrimSpace(in.Email),
		Username:   strings.TrimSpace(in.Username),
		Password:   string(hashed),
		ProfilePic: in.ProfilePic,
		Role:       models.RoleUser,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.withToken(user)
}

// Login authenticates by username or email and a password.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	if in.Username == "" && in.Email == "" {
		return nil, models.NewValidationError("username or email is required")
	}
	if in.Password == "" {
		return nil, models.NewValidationError("password is required")
	}

	user, err := s.findByUsernameOrEmail(ctx, in.Username, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		observability.LoginAttempts.WithLabelValues("not_found").Inc()
		return nil, models.NewNotFoundMessage("user not found")
	}
	if user.LoggedInWithGoogle {
		observability.LoginAttempts.WithLabelValues("federated_conflict").Inc()
		return nil, models.NewConflictError("You are already logged in via Google with this email")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		observability.LoginAttempts.WithLabelValues("bad_credentials").Inc()
		return nil, models.NewUnauthorizedError("password doesn't match")
	}

	observability.LoginAttempts.WithLabelValues("success").Inc()
	return s.withToken(user)
}

// AutoLogin resolves a bearer token back to its account. The token only
// proves identity; the account must still exist.
func (s *AuthService) AutoLogin(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, models.NewUnauthorizedError("Token not found")
	}

	userID, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == "NOT_FOUND" {
			return nil, models.NewUnauthorizedError("Invalid token! User not found")
		}
		return nil, err
	}
	return user, nil
}

// GoogleLogin onboards or signs in a user from a Google identity token.
// An existing local account is upgraded to a federated one on first use;
// an unknown email creates a fresh account.
func (s *AuthService) GoogleLogin(ctx context.Context, idToken string) (*AuthResult, error) {
	if idToken == "" {
		return nil, models.NewValidationError("No token found")
	}

	payload, err := s.decodeGoogle(idToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, payload.Email)
	if err != nil {
		return nil, err
	}

	if user != nil {
		if !user.LoggedInWithGoogle {
			// Partial update so a concurrent profile edit is not clobbered.
			user.LoggedInWithGoogle = true
			user.ProfilePic = payload.Picture
			user.EmailVerified = payload.EmailVerified
			err := s.userRepo.UpdateFields(ctx, user.ID, map[string]any{
				"logged_in_with_google": true,
				"profile_pic":           payload.Picture,
				"email_verified":        payload.EmailVerified,
			})
			if err != nil {
				return nil, err
			}
		}
		return s.withToken(user)
	}

	username, err := s.deriveUsername(ctx, payload.Email)
	if err != nil {
		return nil, err
	}

	// Federated accounts never log in locally, so the stored credential
	// only has to be unguessable.
	placeholder, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user = &models.User{
		FullName:           payload.Name,
		Email:              payload.Email,
		EmailVerified:      payload.EmailVerified,
		ProfilePic:         payload.Picture,
		Username:           username,
		Password:           string(placeholder),
		Role:               models.RoleUser,
		LoggedInWithGoogle: true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.withToken(user)
}

// deriveUsername builds a username from the email local-part with dots
// removed. Collisions get the lowest free numeric suffix, so the result
// is deterministic for a given directory state.
func (s *AuthService) deriveUsername(ctx context.Context, email string) (string, error) {
	base := strings.ReplaceAll(strings.SplitN(email, "@", 2)[0], ".", "")

	candidate := base
	for i := 1; ; i++ {
		taken, err := s.userRepo.UsernameExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = base + strconv.Itoa(i)
	}
}

func (s *AuthService) findByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error) {
	if username != "" {
		user, err := s.userRepo.GetByUsername(ctx, username)
		if err != nil || user != nil {
			return user, err
		}
	}
	if email != "" {
		return s.userRepo.GetByEmail(ctx, email)
	}
	return nil, nil
}

func (s *AuthService) withToken(user *models.User) (*AuthResult, error) {
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return &AuthResult{User: user, Token: token}, nil
}
