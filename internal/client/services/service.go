// Package services contains the client's application services. The central
// one is DataService: a cache-aside synchronizer that presents one uniform
// API whether or not the backend is reachable, keeping the local store an
// eventually-consistent mirror of the remote collections.
//
// Mode is decided once, at construction: remote-preferred tries the gateway
// first and falls back to the local store on any transport failure; local-only
// never touches the network. Transport failures are absorbed here — callers
// only ever see validation errors and business-rule rejections.
package services

import (
	"context"

	"github.com/wheelmarket/wheelmarket/internal/client/api"
	"github.com/wheelmarket/wheelmarket/internal/models"
	"github.com/wheelmarket/wheelmarket/internal/client/store"
	"github.com/wheelmarket/wheelmarket/internal/logging"
)

type DataService struct {
	gw        api.Gateway
	store     *store.Store
	log       logging.Logger
	localOnly bool
}

// NewDataService builds the synchronizer. localOnly pins the service to the
// cache tier for its whole lifetime; it is an explicit configuration input,
// never inferred from the environment.
func NewDataService(gw api.Gateway, st *store.Store, log logging.Logger, localOnly bool) *DataService {
	return &DataService{gw: gw, store: st, log: log, localOnly: localOnly}
}

// session is the current-user entry in the local store. The user is always
// stored sanitized.
type session struct {
	User  models.UserRecord `json:"user"`
	Token string            `json:"token,omitempty"`
}

func (s *DataService) loadSession(ctx context.Context) (session, bool) {
	var sess session
	ok := s.store.Load(ctx, store.KeySession, &sess)
	return sess, ok
}

func (s *DataService) saveSession(ctx context.Context, user models.UserRecord, token string) {
	sess := session{User: user.Sanitized(), Token: token}
	if err := s.store.Save(ctx, store.KeySession, sess); err != nil {
		s.log.Error(ctx, "failed to persist session", "error", err)
	}
}

// CurrentUser returns the signed-in user, or nil when there is no session.
func (s *DataService) CurrentUser(ctx context.Context) *models.UserRecord {
	sess, ok := s.loadSession(ctx)
	if !ok {
		return nil
	}
	u := sess.User
	return &u
}

// Logout drops the current session. Cached collections stay; they are not
// user-scoped secrets.
func (s *DataService) Logout(ctx context.Context) {
	s.store.Delete(ctx, store.KeySession)
}

// Credentials adapts the store's session entry to the gateway's Credentials
// interface, so the Authorization header always reflects the live session.
type Credentials struct {
	store *store.Store
}

func NewCredentials(st *store.Store) *Credentials {
	return &Credentials{store: st}
}

func (c *Credentials) AccessToken(ctx context.Context) string {
	var sess session
	if !c.store.Load(ctx, store.KeySession, &sess) {
		return ""
	}
	return sess.Token
}

func (c *Credentials) SessionEmail(ctx context.Context) string {
	var sess session
	if !c.store.Load(ctx, store.KeySession, &sess) {
		return ""
	}
	return sess.User.Email
}
