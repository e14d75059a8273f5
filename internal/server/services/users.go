package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/wheelmarket/wheelmarket/internal/common"
	"github.com/wheelmarket/wheelmarket/internal/logging"
	"github.com/wheelmarket/wheelmarket/internal/models"
	"github.com/wheelmarket/wheelmarket/internal/server/auth"
	sc "github.com/wheelmarket/wheelmarket/internal/server/config"
	"github.com/wheelmarket/wheelmarket/internal/server/repositories/repomanager"
)

const invalidCredentialsReason = "Invalid credentials"

// RefreshTokenStore is the subset of the token store the user service needs.
type RefreshTokenStore interface {
	Issue(ctx context.Context, email string) (string, error)
	Resolve(ctx context.Context, tokenID string) (string, error)
	Revoke(ctx context.Context, tokenID string) error
}

type UserService struct {
	db     *sql.DB
	repos  repomanager.RepositoryManager
	tokens RefreshTokenStore
	config *sc.Config
	log    logging.Logger
}

func NewUserService(db *sql.DB, repos repomanager.RepositoryManager, tokens RefreshTokenStore, config *sc.Config, log logging.Logger) *UserService {
	return &UserService{db: db, repos: repos, tokens: tokens, config: config, log: log}
}

// List returns all accounts. Documents are stored sanitized, so no password
// material can leak through here.
func (s *UserService) List(ctx context.Context) ([]models.UserRecord, error) {
	return s.repos.Users(s.db).List(ctx)
}

// Login checks credentials and, on success, mints an access token and a
// refresh token. Wrong credentials are a business rejection carried in the
// envelope, not an error.
func (s *UserService) Login(ctx context.Context, email, password string, role models.Role) (*models.AuthResult, error) {
	user, hash, err := s.repos.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return &models.AuthResult{Success: false, Reason: invalidCredentialsReason}, nil
		}
		return nil, err
	}

	if !auth.CheckPassword(hash, password) {
		return &models.AuthResult{Success: false, Reason: invalidCredentialsReason}, nil
	}
	if user.Status == models.UserInactive {
		return &models.AuthResult{Success: false, Reason: "Account is inactive"}, nil
	}
	if role != "" && user.Role != role {
		return &models.AuthResult{Success: false, Reason: invalidCredentialsReason}, nil
	}

	return s.issueTokens(ctx, user)
}

// Register creates an account. A duplicate email surfaces as
// common.ErrAlreadyExists for the handler to translate.
func (s *UserService) Register(ctx context.Context, reg models.Registration) (*models.AuthResult, error) {
	if err := reg.Validate(); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(reg.Password)
	if err != nil {
		return nil, err
	}

	user := &models.UserRecord{
		Name:      reg.Name,
		Email:     models.EmailKey(reg.Email),
		Mobile:    reg.Mobile,
		Role:      reg.Role,
		Status:    models.UserActive,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repos.Users(s.db).Create(ctx, user, hash); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

// Refresh exchanges a valid refresh token for a fresh token pair. The old
// refresh token is rotated out.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (*models.AuthResult, error) {
	email, err := s.tokens.Resolve(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user, _, err := s.repos.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user.Status == models.UserInactive {
		return &models.AuthResult{Success: false, Reason: "Account is inactive"}, nil
	}

	if err := s.tokens.Revoke(ctx, refreshToken); err != nil {
		s.log.Warn(ctx, "failed to revoke refresh token", "error", err)
	}

	return s.issueTokens(ctx, user)
}

// issueTokens builds the success envelope. A refresh-token store outage is
// logged and tolerated; the login itself still succeeds.
func (s *UserService) issueTokens(ctx context.Context, user *models.UserRecord) (*models.AuthResult, error) {
	access, err := auth.GenerateToken(models.EmailKey(user.Email),
		[]byte(s.config.SecretKey), s.config.AccessTokenValidityDuration)
	if err != nil {
		return nil, err
	}

	refresh, err := s.tokens.Issue(ctx, models.EmailKey(user.Email))
	if err != nil {
		s.log.Warn(ctx, "failed to issue refresh token", "error", err)
		refresh = ""
	}

	sanitized := user.Sanitized()
	return &models.AuthResult{
		Success:      true,
		User:         &sanitized,
		Token:        access,
		RefreshToken: refresh,
	}, nil
}
