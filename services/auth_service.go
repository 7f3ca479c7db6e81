// Package services holds the business rules. Services take and return domain
// models; they never see http types and never run SQL directly.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/vishaldubey2210/portfolio/models"
	"github.com/vishaldubey2210/portfolio/pkg"
	"github.com/vishaldubey2210/portfolio/pkg/logger"
	"github.com/vishaldubey2210/portfolio/repository"
)

const (
	msgInvalidCredentials = "Invalid admin credentials"
	msgAuthRequired       = "Authentication required"
	tokenIssuer           = "portfolio"
)

// Authorizer turns a session token into an admin capability. Middleware
// depends on this alone.
type Authorizer interface {
	Authorize(ctx context.Context, token string) (*models.AdminCapability, error)
}

// AuthService covers admin login, registration and session lifecycle.
type AuthService interface {
	Authorizer
	Login(ctx context.Context, req *models.LoginRequest) (*SessionToken, error)
	Signup(ctx context.Context, req *models.SignupRequest) (*SessionToken, error)
	// Logout deletes the session behind token. Unknown, expired or malformed
	// tokens are not an error.
	Logout(ctx context.Context, token string) error
	// EnsureSeedAdmin creates the seed account unless its username exists.
	EnsureSeedAdmin(ctx context.Context, seed models.SeedAdmin) error
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}

// SessionToken is the signed cookie value issued on login or signup.
type SessionToken struct {
	Token     string
	ExpiresAt time.Time
	User      models.User
}

type authService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	secret      []byte
	expiry      time.Duration
	bcryptCost  int
	now         func() time.Time

	// dummyHash is compared against when the username is unknown so both
	// failure paths cost one bcrypt comparison.
	dummyHash []byte
}

// NewAuthService builds an AuthService. bcryptCost below bcrypt.MinCost is
// raised to bcrypt.DefaultCost by the bcrypt package itself.
func NewAuthService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	secret string,
	expiry time.Duration,
	bcryptCost int,
) AuthService {
	dummy, _ := bcrypt.GenerateFromPassword([]byte("portfolio-dummy-password"), bcryptCost)
	return &authService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		secret:      []byte(secret),
		expiry:      expiry,
		bcryptCost:  bcryptCost,
		now:         time.Now,
		dummyHash:   dummy,
	}
}

func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*SessionToken, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	log := logger.For("auth")

	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(req.Password))
			log.Info().Str("username", req.Username).Msg("login rejected")
			return nil, pkg.Unauthorized(msgInvalidCredentials)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil || !user.IsAdmin {
		log.Info().Str("username", req.Username).Msg("login rejected")
		return nil, pkg.Unauthorized(msgInvalidCredentials)
	}

	token, err := s.issue(ctx, user)
	if err != nil {
		return nil, err
	}

	log.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("admin logged in")
	return token, nil
}

func (s *authService) Signup(ctx context.Context, req *models.SignupRequest) (*SessionToken, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByUsername(ctx, req.Username); err == nil {
		return nil, pkg.Conflict("Username already exists")
	} else if !errors.Is(err, pkg.ErrNotFound) {
		return nil, err
	}

	if _, err := s.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return nil, pkg.Conflict("Email already exists")
	} else if !errors.Is(err, pkg.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		IsAdmin:      true,
	}

	// A concurrent signup can still win the race; Create maps that to the
	// same conflict errors.
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.issue(ctx, user)
	if err != nil {
		return nil, err
	}

	logger.For("auth").Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("admin account created")
	return token, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	// Expired tokens still name a session worth deleting.
	claims, err := s.parse(token, jwt.WithoutClaimsValidation())
	if err != nil {
		return nil
	}

	if err := s.sessionRepo.DeleteByID(ctx, claims.SessionID); err != nil {
		return err
	}

	logger.For("auth").Info().Int64("user_id", claims.UserID).Msg("admin logged out")
	return nil
}

// Authorize validates token, loads its session and re-reads the user's
// admin flag. Any failure is an ErrUnauthorized.
func (s *authService) Authorize(ctx context.Context, token string) (*models.AdminCapability, error) {
	if token == "" {
		return nil, pkg.Unauthorized(msgAuthRequired)
	}

	claims, err := s.parse(token)
	if err != nil {
		return nil, pkg.Unauthorized(msgAuthRequired)
	}

	session, err := s.sessionRepo.GetByID(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, pkg.Unauthorized(msgAuthRequired)
		}
		return nil, err
	}

	if session.Expired(s.now()) {
		if err := s.sessionRepo.DeleteByID(ctx, session.ID); err != nil {
			return nil, fmt.Errorf("failed to delete expired session: %w", err)
		}
		return nil, pkg.Unauthorized(msgAuthRequired)
	}

	user, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, pkg.Unauthorized(msgAuthRequired)
		}
		return nil, err
	}
	if !user.IsAdmin {
		return nil, pkg.Unauthorized(msgAuthRequired)
	}

	return &models.AdminCapability{
		UserID:    user.ID,
		Username:  user.Username,
		SessionID: session.ID,
	}, nil
}

func (s *authService) EnsureSeedAdmin(ctx context.Context, seed models.SeedAdmin) error {
	if seed.Username == "" {
		return nil
	}

	_, err := s.userRepo.GetByUsername(ctx, seed.Username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pkg.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	user := &models.User{
		Username:     seed.Username,
		Email:        seed.Email,
		PasswordHash: string(hash),
		FullName:     seed.FullName,
		IsAdmin:      true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to create seed admin: %w", err)
	}

	logger.For("auth").Info().Str("username", seed.Username).Msg("seed admin created")
	return nil
}

func (s *authService) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	return s.sessionRepo.DeleteExpired(ctx, s.now())
}

// ─── Private Helpers ───

func (s *authService) issue(ctx context.Context, user *models.User) (*SessionToken, error) {
	now := s.now()
	session := &models.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		IsAdmin:   user.IsAdmin,
		ExpiresAt: now.Add(s.expiry),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	claims := &models.SessionClaims{
		SessionID: session.ID,
		UserID:    user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	out := *user
	out.PasswordHash = ""
	return &SessionToken{Token: signed, ExpiresAt: session.ExpiresAt, User: out}, nil
}

func (s *authService) parse(token string, opts ...jwt.ParserOption) (*models.SessionClaims, error) {
	opts = append(opts, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	parsed, err := jwt.ParseWithClaims(token, &models.SessionClaims{}, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*models.SessionClaims)
	if !ok || claims.SessionID == "" {
		return nil, errors.New("invalid session claims")
	}
	return claims, nil
}
