// Package assignments tracks which users are assigned to a case and
// which remain available for assignment.
package assignments

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"gavel/internal/courtapi"
	"gavel/internal/logging"
	"gavel/internal/search"
)

// Backend is the slice of the court API the ledger depends on.
type Backend interface {
	CaseAssignments(ctx context.Context, caseID int64) (courtapi.ScopedAssignments, error)
	AllAssignments(ctx context.Context) ([]courtapi.Assignment, error)
	AddAssignment(ctx context.Context, caseID, userID int64) error
	RemoveAssignment(ctx context.Context, assignmentID int64) error
	ListUsers(ctx context.Context) ([]courtapi.User, error)
}

// Ledger holds the assignment state for one case. Mutations reload the
// ledger from the backend so the local view never drifts from the
// server's; a failed call leaves the previous state untouched.
type Ledger struct {
	backend Backend
	caseID  int64
	logger  *slog.Logger

	assignments []courtapi.Assignment
	users       []courtapi.User
	loaded      bool
}

// NewLedger builds an empty ledger for the given case.
func NewLedger(backend Backend, caseID int64, logger *slog.Logger) *Ledger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ledger{
		backend: backend,
		caseID:  caseID,
		logger:  logger.With(logging.FieldComponent, "assignments", logging.FieldCaseID, caseID),
	}
}

// Load fetches the case's assignments and the user directory. The
// case-scoped route is tried first; when the backend does not serve it,
// the full collection is fetched and narrowed to this case.
func (l *Ledger) Load(ctx context.Context) error {
	assignments, err := l.fetchAssignments(ctx)
	if err != nil {
		return err
	}
	users, err := l.backend.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("load assignments: %w", err)
	}

	l.assignments = assignments
	l.users = users
	l.loaded = true
	l.logger.Debug("loaded assignments", "count", len(assignments), "users", len(users))
	return nil
}

func (l *Ledger) fetchAssignments(ctx context.Context) ([]courtapi.Assignment, error) {
	scoped, err := l.backend.CaseAssignments(ctx, l.caseID)
	if err != nil {
		return nil, fmt.Errorf("load assignments: %w", err)
	}
	if scoped.Supported {
		return scoped.Assignments, nil
	}

	l.logger.Debug("scoped assignment route unavailable, fetching full collection")
	all, err := l.backend.AllAssignments(ctx)
	if err != nil {
		return nil, fmt.Errorf("load assignments: %w", err)
	}
	narrowed := make([]courtapi.Assignment, 0, len(all))
	for _, a := range all {
		if a.CaseID == l.caseID {
			narrowed = append(narrowed, a)
		}
	}
	return narrowed, nil
}

// Loaded reports whether the ledger holds server state.
func (l *Ledger) Loaded() bool {
	return l.loaded
}

// Assignments returns the current assignments for the case.
func (l *Ledger) Assignments() []courtapi.Assignment {
	return l.assignments
}

// AvailableUsers returns every directory user not already assigned to
// the case.
func (l *Ledger) AvailableUsers() []courtapi.User {
	assigned := make(map[int64]struct{}, len(l.assignments))
	for _, a := range l.assignments {
		assigned[a.UserID] = struct{}{}
	}
	available := make([]courtapi.User, 0, len(l.users))
	for _, u := range l.users {
		if _, ok := assigned[u.ID]; !ok {
			available = append(available, u)
		}
	}
	return available
}

// FilterUsers narrows the available users to those whose name, email,
// or role contains term, compared case-insensitively. An empty term
// returns every available user.
func (l *Ledger) FilterUsers(term string) []courtapi.User {
	available := l.AvailableUsers()
	needle := strings.TrimSpace(term)
	if needle == "" {
		return available
	}
	matched := make([]courtapi.User, 0, len(available))
	for _, u := range available {
		if search.ContainsFold(u.Name, needle) ||
			search.ContainsFold(u.Email, needle) ||
			search.ContainsFold(string(u.Role), needle) {
			matched = append(matched, u)
		}
	}
	return matched
}

// Add assigns a user to the case, then reloads the ledger. The user id
// must come from AvailableUsers; a user already assigned to the case or
// absent from the directory is rejected before any network call.
func (l *Ledger) Add(ctx context.Context, userID int64) error {
	if !l.assignable(userID) {
		return fmt.Errorf("%w: user %d is not available to assign", courtapi.ErrValidation, userID)
	}
	if err := l.backend.AddAssignment(ctx, l.caseID, userID); err != nil {
		return fmt.Errorf("add assignment: %w", err)
	}
	l.logger.Info("assigned user", "user_id", userID)
	return l.Load(ctx)
}

func (l *Ledger) assignable(userID int64) bool {
	for _, u := range l.AvailableUsers() {
		if u.ID == userID {
			return true
		}
	}
	return false
}

// Remove deletes an assignment from the case, then reloads the ledger.
func (l *Ledger) Remove(ctx context.Context, assignmentID int64) error {
	if err := l.backend.RemoveAssignment(ctx, assignmentID); err != nil {
		return fmt.Errorf("remove assignment: %w", err)
	}
	l.logger.Info("removed assignment", "assignment_id", assignmentID)
	return l.Load(ctx)
}
