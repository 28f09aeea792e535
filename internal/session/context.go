// Package session exposes the signed-in user to the presentation layer. It
// is a thin wrapper over the store's authentication and session operations.
package session

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"shift-planner/internal/models"
	"shift-planner/internal/store"
)

// Context tracks the currently signed-in user, mirroring the session value
// persisted in the store. Like the store, it is meant for single-goroutine
// use.
type Context struct {
	store   *store.Store
	logger  *logrus.Logger
	current *models.User
	loading bool
}

// New builds a Context and initializes it: the first user read seeds the
// default administrator, then any persisted session is loaded. Failures are
// logged and leave the context signed out; loading is false either way once
// New returns.
func New(st *store.Store, logger *logrus.Logger) *Context {
	if logger == nil {
		logger = logrus.New()
	}
	c := &Context{store: st, logger: logger, loading: true}

	if _, err := st.Users(); err != nil {
		c.logger.WithError(err).Warn("session init: user seeding failed")
	} else if u, err := st.CurrentSession(); err != nil {
		c.logger.WithError(err).Warn("session init: could not load persisted session")
	} else {
		c.current = u
	}

	c.loading = false
	return c
}

// CurrentUser returns the signed-in user, or nil when nobody is signed in.
func (c *Context) CurrentUser() *models.User {
	return c.current
}

// Loading reports whether initialization is still in progress. Callers that
// observe the context after New returns always see false.
func (c *Context) Loading() bool {
	return c.loading
}

// SignIn authenticates the credentials and persists the session on success.
// A failed match returns store.ErrInvalidCredentials without revealing
// whether the username exists.
func (c *Context) SignIn(username, password string) error {
	u, err := c.store.Authenticate(username, password)
	if errors.Is(err, store.ErrInvalidCredentials) {
		return store.ErrInvalidCredentials
	}
	if err != nil {
		return fmt.Errorf("sign in: %w", err)
	}
	if err := c.store.SetCurrentSession(u); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	c.current = u
	return nil
}

// SignOut clears both the in-memory and the persisted session.
func (c *Context) SignOut() error {
	if err := c.store.SetCurrentSession(nil); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	c.current = nil
	return nil
}
