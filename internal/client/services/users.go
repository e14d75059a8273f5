package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/wheelmarket/wheelmarket/internal/models"
	"github.com/wheelmarket/wheelmarket/internal/client/seed"
	"github.com/wheelmarket/wheelmarket/internal/client/store"
	"github.com/wheelmarket/wheelmarket/internal/common"
)

const invalidCredentialsReason = "Invalid credentials"

// passwordVerifier hashes a password for local login checks. Raw passwords
// never reach the cache; only these digests do, under their own key.
func passwordVerifier(password string) string {
	h := sha256.Sum256([]byte(password))
	return hex.EncodeToString(h[:])
}

const keyAuthVerifiers = "authVerifiers"

func (s *DataService) loadVerifiers(ctx context.Context) map[string]string {
	verifiers := make(map[string]string)
	s.store.Load(ctx, keyAuthVerifiers, &verifiers)
	return verifiers
}

func (s *DataService) setVerifier(ctx context.Context, email, password string) {
	verifiers := s.loadVerifiers(ctx)
	verifiers[models.EmailKey(email)] = passwordVerifier(password)
	if err := s.store.Save(ctx, keyAuthVerifiers, verifiers); err != nil {
		s.log.Error(ctx, "failed to persist auth verifiers", "error", err)
	}
}

// GetUsers resolves the user collection. Records are sanitized before they
// are cached or returned.
func (s *DataService) GetUsers(ctx context.Context) ([]models.UserRecord, error) {
	if !s.localOnly {
		remote, err := s.gw.ListUsers(ctx)
		if err == nil {
			sanitized := sanitizeAll(remote)
			if err := s.store.Save(ctx, store.KeyUsers, sanitized); err != nil {
				s.log.Error(ctx, "failed to cache users", "error", err)
			}
			return sanitized, nil
		}
		s.log.Warn(ctx, "user fetch failed, falling back to cache", "error", err)
	}
	return s.localUsers(ctx), nil
}

func sanitizeAll(users []models.UserRecord) []models.UserRecord {
	out := make([]models.UserRecord, len(users))
	for i, u := range users {
		out[i] = u.Sanitized()
	}
	return out
}

// localUsers reads the cached collection, seeding from the bundled accounts
// when empty. Seed passwords are converted to verifiers so the demo accounts
// can log in offline; the cached records themselves carry no passwords.
func (s *DataService) localUsers(ctx context.Context) []models.UserRecord {
	var cached []models.UserRecord
	if s.store.Load(ctx, store.KeyUsers, &cached) {
		return cached
	}

	seeded, err := seed.Users()
	if err != nil {
		s.log.Error(ctx, "bundled user dataset unreadable", "error", err)
		return []models.UserRecord{}
	}

	verifiers := s.loadVerifiers(ctx)
	for _, u := range seeded {
		if u.Password != "" {
			verifiers[models.EmailKey(u.Email)] = passwordVerifier(u.Password)
		}
	}
	if err := s.store.Save(ctx, keyAuthVerifiers, verifiers); err != nil {
		s.log.Error(ctx, "failed to persist auth verifiers", "error", err)
	}

	sanitized := sanitizeAll(seeded)
	if err := s.store.Save(ctx, store.KeyUsers, sanitized); err != nil {
		s.log.Error(ctx, "failed to persist user seed", "error", err)
	}
	return sanitized
}

func (s *DataService) saveUsers(ctx context.Context, users []models.UserRecord) {
	if err := s.store.Save(ctx, store.KeyUsers, sanitizeAll(users)); err != nil {
		s.log.Error(ctx, "failed to cache users", "error", err)
	}
}

// Login authenticates a user. Wrong credentials are a normal result
// (Success=false, Reason set), never an error; transport failures fall back
// to a local verification against cached verifiers. The session entry is
// written only on success.
func (s *DataService) Login(ctx context.Context, email, password string, role models.Role) (*models.AuthResult, error) {
	if !s.localOnly {
		res, err := s.gw.Login(ctx, email, password, role)
		if err == nil {
			if res.Success && res.User != nil {
				u := res.User.Sanitized()
				res.User = &u
				s.saveSession(ctx, u, res.Token)
				s.setVerifier(ctx, email, password)
			}
			return res, nil
		}
		s.log.Warn(ctx, "login request failed, trying local credentials", "error", err)
	}
	return s.localLogin(ctx, email, password, role), nil
}

func (s *DataService) localLogin(ctx context.Context, email, password string, role models.Role) *models.AuthResult {
	users := s.localUsers(ctx)
	verifiers := s.loadVerifiers(ctx)

	want, known := verifiers[models.EmailKey(email)]
	if !known || want != passwordVerifier(password) {
		return &models.AuthResult{Success: false, Reason: invalidCredentialsReason}
	}

	for _, u := range users {
		if !models.SameEmail(u.Email, email) {
			continue
		}
		if u.Status == models.UserInactive {
			return &models.AuthResult{Success: false, Reason: "Account is inactive"}
		}
		if role != "" && u.Role != role {
			return &models.AuthResult{Success: false, Reason: invalidCredentialsReason}
		}
		sanitized := u.Sanitized()
		s.saveSession(ctx, sanitized, "")
		return &models.AuthResult{Success: true, User: &sanitized}
	}

	return &models.AuthResult{Success: false, Reason: invalidCredentialsReason}
}

// Register creates an account. The duplicate-email check runs before any
// write, against whichever user collection is reachable; a collision is a
// business rejection, not an error.
func (s *DataService) Register(ctx context.Context, reg models.Registration) (*models.AuthResult, error) {
	if err := reg.Validate(); err != nil {
		return nil, err
	}

	users, err := s.GetUsers(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if models.SameEmail(u.Email, reg.Email) {
			return &models.AuthResult{Success: false, Reason: common.DuplicateEmailReason}, nil
		}
	}

	if !s.localOnly {
		res, err := s.gw.Register(ctx, reg)
		if err == nil {
			if res.Success && res.User != nil {
				u := res.User.Sanitized()
				res.User = &u
				s.saveUsers(ctx, append(users, u))
				s.saveSession(ctx, u, res.Token)
				s.setVerifier(ctx, reg.Email, reg.Password)
			}
			return res, nil
		}
		s.log.Warn(ctx, "register request failed, creating account locally", "error", err)
	}

	user := models.UserRecord{
		Name:      reg.Name,
		Email:     reg.Email,
		Mobile:    reg.Mobile,
		Role:      reg.Role,
		Status:    models.UserActive,
		CreatedAt: time.Now().UTC(),
	}
	s.saveUsers(ctx, append(users, user))
	s.setVerifier(ctx, reg.Email, reg.Password)
	s.saveSession(ctx, user, "")
	s.markDirty(ctx, store.KeyUsers)

	return &models.AuthResult{Success: true, User: &user}, nil
}
