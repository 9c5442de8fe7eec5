package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Srivastav4327/RentMate/internal/models"
)

type TokenIssuer interface {
	NewJWT(user models.User, ttl time.Duration) (string, error)
	NewRefreshToken() (string, error)
}

type UserService struct {
	Users        UserStore
	Sessions     SessionStore
	DeviceTokens DeviceTokenStore
	Tokens       TokenIssuer
	AccessTTL    time.Duration
	RefreshTTL   time.Duration

	validate *validator.Validate
	now      func() time.Time
}

func NewUserService(users UserStore, sessions SessionStore, tokens TokenIssuer, accessTTL, refreshTTL time.Duration) *UserService {
	return &UserService{
		Users:      users,
		Sessions:   sessions,
		Tokens:     tokens,
		AccessTTL:  accessTTL,
		RefreshTTL: refreshTTL,
		validate:   newValidator(),
		now:        time.Now,
	}
}

func (s *UserService) SignUp(ctx context.Context, req models.SignUpRequest) (*models.User, error) {
	req.DisplayName = strings.TrimSpace(req.DisplayName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &models.User{
		ID:           uuid.NewString(),
		DisplayName:  req.DisplayName,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, models.ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (s *UserService) SignIn(ctx context.Context, req models.SignInRequest) (models.Tokens, error) {
	u, err := s.Users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return models.Tokens{}, fmt.Errorf("get user by email: %w", err)
	}
	if u == nil || u.PasswordHash == "" {
		return models.Tokens{}, models.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return models.Tokens{}, models.ErrInvalidCredentials
	}
	return s.issueTokens(ctx, *u)
}

// Refresh rotates the refresh token and issues a new access token with the
// user's current role.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (models.Tokens, error) {
	sess, err := s.Sessions.Take(ctx, refreshToken)
	if err != nil {
		return models.Tokens{}, fmt.Errorf("take session: %w", err)
	}
	if sess == nil || sess.RefreshToken != refreshToken || !sess.ExpiresAt.After(s.now()) {
		return models.Tokens{}, models.ErrSessionNotFound
	}
	u, err := s.Users.GetByID(ctx, sess.UserID)
	if err != nil {
		return models.Tokens{}, fmt.Errorf("get user %s: %w", sess.UserID, err)
	}
	if u == nil {
		return models.Tokens{}, models.ErrUserNotFound
	}
	return s.issueTokens(ctx, *u)
}

func (s *UserService) SignOut(ctx context.Context, refreshToken string) error {
	if err := s.Sessions.Delete(ctx, refreshToken); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Get returns nil, nil when the user does not exist.
func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	return u, nil
}

func (s *UserService) List(ctx context.Context, actor models.Identity) ([]models.User, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	list, err := s.Users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return list, nil
}

func (s *UserService) RegisterDevice(ctx context.Context, actor models.Identity, token string) error {
	if !actor.Authenticated {
		return ErrForbidden
	}
	if strings.TrimSpace(token) == "" {
		return invalid("token", "is required")
	}
	if s.DeviceTokens == nil {
		return nil
	}
	if err := s.DeviceTokens.Add(ctx, actor.ID, token); err != nil {
		return fmt.Errorf("register device: %w", err)
	}
	return nil
}

func (s *UserService) issueTokens(ctx context.Context, u models.User) (models.Tokens, error) {
	access, err := s.Tokens.NewJWT(u, s.AccessTTL)
	if err != nil {
		return models.Tokens{}, fmt.Errorf("sign access token: %w", err)
	}
	refresh, err := s.Tokens.NewRefreshToken()
	if err != nil {
		return models.Tokens{}, fmt.Errorf("generate refresh token: %w", err)
	}
	sess := models.Session{
		UserID:       u.ID,
		Role:         u.Role,
		RefreshToken: refresh,
		ExpiresAt:    s.now().Add(s.RefreshTTL),
	}
	if err := s.Sessions.Save(ctx, sess); err != nil {
		return models.Tokens{}, fmt.Errorf("save session: %w", err)
	}
	return models.Tokens{AccessToken: access, RefreshToken: refresh}, nil
}
