package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"content_manager/internal/model"
	"content_manager/internal/repository"
	"content_manager/internal/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrUserAlreadyExists     = errors.New("user with this email already exists")
	ErrInvalidCredentials    = errors.New("could not verify")
	ErrAuthenticationMissing = errors.New("token is missing")
	ErrTokenInvalid          = errors.New("token is invalid")
)

// AuthService provides authentication related services
type AuthService interface {
	Signup(ctx context.Context, req model.SignupRequest) (*model.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context, user *model.User) error
	Authenticate(ctx context.Context, token string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.UserSummary, error)
}

// AuthOptions controls how administrator accounts may be created
type AuthOptions struct {
	AllowAdminSignup  bool
	InitialAdminEmail string
}

type authService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	jwtUtil     *utils.JWTUtil
	opts        AuthOptions
	now         func() time.Time
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, jwtUtil *utils.JWTUtil, opts AuthOptions) AuthService {
	return &authService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		jwtUtil:     jwtUtil,
		opts:        opts,
		now:         time.Now,
	}
}

// Signup creates a new user account with a fresh public id
func (s *authService) Signup(ctx context.Context, req model.SignupRequest) (*model.User, error) {
	email := strings.TrimSpace(req.Email)

	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existingUser != nil {
		return nil, ErrUserAlreadyExists
	}

	var phone int64
	if req.PhoneNumber != nil {
		phone = *req.PhoneNumber
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := req.Admin && s.opts.AllowAdminSignup
	if s.opts.InitialAdminEmail != "" && email == s.opts.InitialAdminEmail {
		admin = true
		logrus.WithField("email", email).Info("Registering user as admin via INITIAL_ADMIN_EMAIL")
	}

	user := &model.User{
		PublicID:     uuid.NewString(),
		Email:        email,
		PasswordHash: hashedPassword,
		FullName:     req.FullName,
		PhoneNumber:  phone,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		Country:      req.Country,
		Admin:        admin,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}

	logrus.WithFields(logrus.Fields{"user_id": user.ID, "role": user.Role()}).Info("User signed up")
	return user, nil
}

// Login verifies the credentials, issues a new token and stores it as the
// user's only active token, which invalidates any token issued before.
// Unknown email and wrong password both yield ErrInvalidCredentials.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("error finding user by email: %w", err)
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := s.jwtUtil.GenerateToken(user.PublicID)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	session := &model.Session{UserID: user.ID, Token: token, IssuedAt: s.now()}
	if err := s.sessionRepo.Upsert(ctx, session); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	logrus.WithField("user_id", user.ID).Info("User logged in")
	return token, nil
}

// Logout clears the user's active token
func (s *authService) Logout(ctx context.Context, user *model.User) error {
	if user == nil {
		return ErrAuthenticationMissing
	}
	if err := s.sessionRepo.Clear(ctx, user.ID); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	logrus.WithField("user_id", user.ID).Info("User logged out")
	return nil
}

// Authenticate resolves a presented token to its user. The token must carry
// a valid signature and expiry and must also equal the token stored for the
// user. Every failure, store errors included, is reported as ErrTokenInvalid.
func (s *authService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, ErrAuthenticationMissing
	}

	claims, err := s.jwtUtil.ValidateToken(token)
	if err != nil {
		logrus.WithError(err).Debug("Rejected token")
		return nil, ErrTokenInvalid
	}

	user, err := s.userRepo.FindByToken(ctx, token)
	if err != nil {
		logrus.WithError(err).Warn("Session lookup failed")
		return nil, ErrTokenInvalid
	}
	if user == nil || user.PublicID != claims.PublicID {
		return nil, ErrTokenInvalid
	}
	return user, nil
}

// ListUsers returns the public listing of every user
func (s *authService) ListUsers(ctx context.Context) ([]model.UserSummary, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	result := make([]model.UserSummary, 0, len(users))
	for _, u := range users {
		result = append(result, model.UserSummary{
			PublicID:    u.PublicID,
			Email:       u.Email,
			FullName:    u.FullName,
			PhoneNumber: u.PhoneNumber,
			Admin:       u.Admin,
		})
	}
	return result, nil
}
