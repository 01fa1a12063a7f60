// Package identity maps the session email onto a backend user record.
//
// The backend keys every mutation by numeric user id while the session
// only carries an email address, so each write path resolves the id
// through the user directory first. The resolved record is cached for
// the life of the session; Invalidate clears it after directory changes.
package identity

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"gavel/internal/courtapi"
	"gavel/internal/logging"
)

// Directory lists every user known to the backend.
type Directory interface {
	ListUsers(ctx context.Context) ([]courtapi.User, error)
}

// Resolver resolves the configured session email to its backend user.
type Resolver struct {
	directory Directory
	email     string
	logger    *slog.Logger

	mu     sync.Mutex
	cached *courtapi.User
}

// NewResolver builds a resolver for the given session email.
func NewResolver(directory Directory, email string, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		directory: directory,
		email:     strings.ToLower(strings.TrimSpace(email)),
		logger:    logger.With(logging.FieldComponent, "identity"),
	}
}

// Email returns the normalized session email.
func (r *Resolver) Email() string {
	return r.email
}

// Resolve returns the backend user whose email matches the session
// email. The first successful lookup is cached; failures are never
// cached. A session without an email, or an email absent from the
// directory, resolves to ErrNotFound.
func (r *Resolver) Resolve(ctx context.Context) (courtapi.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cached != nil {
		return *r.cached, nil
	}
	if r.email == "" {
		return courtapi.User{}, fmt.Errorf("%w: resolve user: no session email configured", courtapi.ErrValidation)
	}

	users, err := r.directory.ListUsers(ctx)
	if err != nil {
		return courtapi.User{}, fmt.Errorf("resolve user: %w", err)
	}
	for _, user := range users {
		if strings.EqualFold(strings.TrimSpace(user.Email), r.email) {
			r.cached = &user
			r.logger.Debug("resolved session user",
				"email", r.email,
				"user_id", user.ID,
				"role", user.Role)
			return user, nil
		}
	}
	return courtapi.User{}, fmt.Errorf("%w: resolve user: no backend user for %s", courtapi.ErrNotFound, r.email)
}

// Invalidate drops the cached user so the next Resolve hits the
// directory again.
func (r *Resolver) Invalidate() {
	r.mu.Lock()
	r.cached = nil
	r.mu.Unlock()
}
