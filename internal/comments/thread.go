// Package comments manages a case's transcript comment thread and the
// compose flow for adding to it.
package comments

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"gavel/internal/courtapi"
	"gavel/internal/identity"
	"gavel/internal/logging"
)

// Backend is the slice of the court API the thread depends on.
type Backend interface {
	CaseComments(ctx context.Context, caseID int64) ([]courtapi.Comment, error)
	AddComment(ctx context.Context, caseID, commenterID int64, commentType courtapi.CommentType, text string) error
	UpdateComment(ctx context.Context, commentID int64, commentType courtapi.CommentType, text string) error
	DeleteComment(ctx context.Context, commentID int64) error
}

// ComposeState tracks the comment editor's lifecycle. The editor opens
// from the closed state, submits at most one comment at a time, and
// returns to closed only after the backend accepts the submission.
type ComposeState int

const (
	ComposeClosed ComposeState = iota
	ComposeOpen
	ComposeSubmitting
)

func (s ComposeState) String() string {
	switch s {
	case ComposeClosed:
		return "closed"
	case ComposeOpen:
		return "open"
	case ComposeSubmitting:
		return "submitting"
	}
	return "unknown"
}

// ErrReload marks a failure to refresh the thread after the backend
// already accepted a mutation. The mutation itself succeeded; retrying
// it would apply it a second time.
var ErrReload = errors.New("comment saved but reloading the thread failed")

// CanEdit reports whether user may edit or delete the comment: the
// original commenter always can, and admin-tier roles can moderate any
// comment. Every edit and delete affordance goes through this one
// check.
func CanEdit(comment courtapi.Comment, user courtapi.User) bool {
	return comment.CommenterID == user.ID || user.Role.AdminTier()
}

// Thread holds one case's comment thread. Methods are meant to be
// driven from a single event loop and do no locking of their own.
type Thread struct {
	backend  Backend
	resolver *identity.Resolver
	caseID   int64
	logger   *slog.Logger

	comments []courtapi.Comment
	state    ComposeState
}

// NewThread builds an empty thread for the given case.
func NewThread(backend Backend, resolver *identity.Resolver, caseID int64, logger *slog.Logger) *Thread {
	if logger == nil {
		logger = slog.Default()
	}
	return &Thread{
		backend:  backend,
		resolver: resolver,
		caseID:   caseID,
		logger:   logger.With(logging.FieldComponent, "comments", logging.FieldCaseID, caseID),
	}
}

// Load fetches the case's comment thread.
func (t *Thread) Load(ctx context.Context) error {
	comments, err := t.backend.CaseComments(ctx, t.caseID)
	if err != nil {
		return fmt.Errorf("load comments: %w", err)
	}
	t.comments = comments
	t.logger.Debug("loaded comments", "count", len(comments))
	return nil
}

// Comments returns the current thread.
func (t *Thread) Comments() []courtapi.Comment {
	return t.comments
}

// State returns the compose editor's current state.
func (t *Thread) State() ComposeState {
	return t.state
}

// OpenCompose opens the comment editor. Opening while a submission is
// in flight is rejected.
func (t *Thread) OpenCompose() error {
	if t.state == ComposeSubmitting {
		return fmt.Errorf("%w: a comment is being submitted", courtapi.ErrValidation)
	}
	t.state = ComposeOpen
	return nil
}

// CancelCompose closes the editor without submitting. Cancel is a
// no-op while a submission is in flight.
func (t *Thread) CancelCompose() error {
	if t.state == ComposeSubmitting {
		return fmt.Errorf("%w: a comment is being submitted", courtapi.ErrValidation)
	}
	t.state = ComposeClosed
	return nil
}

// Submit validates and posts the composed comment, then reloads the
// thread. Validation failures never reach the network and leave the
// editor open; backend failures also reopen the editor so the text is
// not lost. Once the backend accepts the comment the editor closes
// even if the reload fails; that failure is reported as ErrReload so
// callers do not treat it as a rejected submission.
func (t *Thread) Submit(ctx context.Context, commentType courtapi.CommentType, text string) error {
	if t.state != ComposeOpen {
		return fmt.Errorf("%w: no comment is being composed", courtapi.ErrValidation)
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return fmt.Errorf("%w: please enter a comment", courtapi.ErrValidation)
	}

	user, err := t.resolver.Resolve(ctx)
	if err != nil {
		return fmt.Errorf("submit comment: %w", err)
	}

	t.state = ComposeSubmitting
	if err := t.backend.AddComment(ctx, t.caseID, user.ID, commentType, trimmed); err != nil {
		t.state = ComposeOpen
		return fmt.Errorf("submit comment: %w", err)
	}
	t.state = ComposeClosed
	t.logger.Info("added comment", "comment_type", commentType)
	if err := t.Load(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrReload, err)
	}
	return nil
}

// Edit replaces a comment's type and text, then reloads the thread.
// Only the commenter or an admin-tier user may edit.
func (t *Thread) Edit(ctx context.Context, commentID int64, commentType courtapi.CommentType, text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return fmt.Errorf("%w: please enter a comment", courtapi.ErrValidation)
	}
	if err := t.authorize(ctx, commentID); err != nil {
		return fmt.Errorf("edit comment: %w", err)
	}
	if err := t.backend.UpdateComment(ctx, commentID, commentType, trimmed); err != nil {
		return fmt.Errorf("edit comment: %w", err)
	}
	t.logger.Info("edited comment", "comment_id", commentID)
	if err := t.Load(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrReload, err)
	}
	return nil
}

// Delete removes a comment, then reloads the thread. Only the
// commenter or an admin-tier user may delete.
func (t *Thread) Delete(ctx context.Context, commentID int64) error {
	if err := t.authorize(ctx, commentID); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if err := t.backend.DeleteComment(ctx, commentID); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	t.logger.Info("deleted comment", "comment_id", commentID)
	if err := t.Load(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrReload, err)
	}
	return nil
}

func (t *Thread) authorize(ctx context.Context, commentID int64) error {
	comment, ok := t.find(commentID)
	if !ok {
		return fmt.Errorf("%w: comment %d is not in the thread", courtapi.ErrNotFound, commentID)
	}
	user, err := t.resolver.Resolve(ctx)
	if err != nil {
		return err
	}
	if !CanEdit(comment, user) {
		return fmt.Errorf("%w: only the commenter or an admin may change this comment", courtapi.ErrValidation)
	}
	return nil
}

func (t *Thread) find(commentID int64) (courtapi.Comment, bool) {
	for _, c := range t.comments {
		if c.ID == commentID {
			return c, true
		}
	}
	return courtapi.Comment{}, false
}
