package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"yourfuture/internal/logger"
	"yourfuture/internal/model"
	"yourfuture/internal/repository"
	"yourfuture/internal/serrors"
	"yourfuture/internal/utils"

	"go.uber.org/zap"
)

// AuthService provides authentication related services
type AuthService interface {
	Register(ctx context.Context, username, password string) (*model.User, error)
	Login(ctx context.Context, username, password string) (*model.User, string, error)
	// Logout revokes the presented token until it would have expired.
	Logout(ctx context.Context, claims *utils.JWTClaims) error
	// EnsureAdmin creates the reserved admin account if it does not exist.
	EnsureAdmin(ctx context.Context, password string) error
	// IssueToken mints a token for an existing user.
	IssueToken(ctx context.Context, userID int64) (string, error)
	PurgeRevoked(ctx context.Context) (int64, error)
}

type authService struct {
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
	jwtUtil   *utils.JWTUtil
	now       func() time.Time
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, tokenRepo repository.TokenRepository, jwtUtil *utils.JWTUtil) AuthService {
	return &authService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		jwtUtil:   jwtUtil,
		now:       time.Now,
	}
}

// Register creates a new user account
func (s *authService) Register(ctx context.Context, username, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, serrors.New(serrors.ErrBadRequest, "username and password are required")
	}
	if len(password) < 4 {
		return nil, serrors.New(serrors.ErrBadRequest, "password must be at least 4 characters")
	}
	if username == model.AdminUsername {
		return nil, serrors.New(serrors.ErrConflict, "username %q is reserved", model.AdminUsername)
	}

	existingUser, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existingUser != nil {
		return nil, serrors.New(serrors.ErrConflict, "username is already taken")
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		PasswordHash: hashedPassword,
		Role:         model.RoleUser,
		FullName:     username,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info(ctx, "user registered", zap.Int64("user_id", user.ID), zap.String("username", user.Username))
	return user, nil
}

// Login authenticates a user and returns a JWT token
func (s *authService) Login(ctx context.Context, username, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, "", fmt.Errorf("error finding user by username: %w", err)
	}
	if user == nil || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", serrors.New(serrors.ErrUnauthorized, "invalid username or password")
	}

	token, err := s.jwtUtil.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

func (s *authService) Logout(ctx context.Context, claims *utils.JWTClaims) error {
	if claims == nil {
		return serrors.New(serrors.ErrUnauthorized, "authentication required")
	}

	expiresAt := s.now().Add(s.jwtUtil.TTL())
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	if err := s.tokenRepo.Revoke(ctx, claims.ID, claims.UserID, expiresAt); err != nil {
		return err
	}

	logger.Info(ctx, "token revoked", zap.Int64("user_id", claims.UserID), zap.String("jti", claims.ID))
	return nil
}

func (s *authService) EnsureAdmin(ctx context.Context, password string) error {
	existing, err := s.userRepo.FindByUsername(ctx, model.AdminUsername)
	if err != nil {
		return fmt.Errorf("failed to look up admin: %w", err)
	}
	if existing != nil {
		logger.Debug(ctx, "admin user already exists", zap.Int64("user_id", existing.ID))
		return nil
	}
	if password == "" {
		return serrors.New(serrors.ErrBadRequest, "admin password is not configured (ADMIN_PASSWORD)")
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	admin := &model.User{
		Username:     model.AdminUsername,
		PasswordHash: hashedPassword,
		Role:         model.RoleAdmin,
		FullName:     "Administrator",
	}
	if err := s.userRepo.Create(ctx, admin); err != nil {
		return err
	}

	logger.Info(ctx, "admin user created", zap.Int64("user_id", admin.ID))
	return nil
}

func (s *authService) IssueToken(ctx context.Context, userID int64) (string, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", serrors.New(serrors.ErrNotFound, "user %d not found", userID)
	}

	return s.jwtUtil.GenerateToken(user.ID, user.Role)
}

func (s *authService) PurgeRevoked(ctx context.Context) (int64, error) {
	n, err := s.tokenRepo.PurgeExpired(ctx, s.now())
	if err != nil {
		return 0, err
	}

	logger.Info(ctx, "purged expired token revocations", zap.Int64("count", n))
	return n, nil
}
