// Package tui implements the interactive browse screen: a searchable,
// paginated recording list with per-case assignment and comment panels.
package tui

import (
	"context"
	"errors"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"gavel/internal/assignments"
	"gavel/internal/catalog"
	"gavel/internal/comments"
	"gavel/internal/courtapi"
	"gavel/internal/identity"
	"gavel/internal/logging"
)

// Backend is the slice of the court API the browse screen depends on.
type Backend interface {
	catalog.Backend
	assignments.Backend
	comments.Backend
}

// Screen names the top-level view.
type Screen int

const (
	ScreenList Screen = iota
	ScreenDetail
)

// Panel names the focused pane on the detail screen.
type Panel int

const (
	PanelAssignments Panel = iota
	PanelComments
)

// Mode names the input mode on the detail screen. Browse handles
// navigation keys; the other modes capture typed text or a decision.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeCompose
	ModePicker
	ModeConfirm
)

type confirmKind int

const (
	confirmNone confirmKind = iota
	confirmRemoveAssignment
	confirmDeleteComment
)

type confirmState struct {
	kind     confirmKind
	targetID int64
	prompt   string
}

// Model is the root bubbletea model for the browse TUI.
type Model struct {
	backend  Backend
	resolver *identity.Resolver
	catalog  *catalog.Catalog
	logger   *slog.Logger
	pageSize int

	screen Screen
	width  int
	height int

	status  string
	errText string
	loading bool

	// List screen
	searchTerm string
	page       int
	cursor     int

	// Detail screen
	current       courtapi.Recording
	ledger        *assignments.Ledger
	thread        *comments.Thread
	panel         Panel
	assignCursor  int
	commentCursor int
	mode          Mode

	composeText    string
	composeTypeIdx int
	editingID      int64

	pickerTerm   string
	pickerCursor int

	confirm confirmState
}

// New creates a browse model over the given backend.
func New(backend Backend, resolver *identity.Resolver, pageSize int, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}
	return Model{
		backend:  backend,
		resolver: resolver,
		catalog:  catalog.New(backend, logger),
		logger:   logger.With(logging.FieldComponent, "tui"),
		pageSize: pageSize,
		page:     1,
		status:   "Loading recordings...",
		loading:  true,
	}
}

// Init returns the initial command: load the catalog.
func (m Model) Init() tea.Cmd {
	return loadCatalogCmd(m.catalog)
}

func loadCatalogCmd(c *catalog.Catalog) tea.Cmd {
	return func() tea.Msg {
		if err := c.LoadAll(context.Background()); err != nil {
			return CatalogErrorMsg{Err: err}
		}
		return CatalogLoadedMsg{}
	}
}

func openCaseCmd(ledger *assignments.Ledger, thread *comments.Thread, caseID int64) tea.Cmd {
	return func() tea.Msg {
		if err := ledger.Load(context.Background()); err != nil {
			return CaseErrorMsg{Err: err}
		}
		if err := thread.Load(context.Background()); err != nil {
			return CaseErrorMsg{Err: err}
		}
		return CaseLoadedMsg{CaseID: caseID}
	}
}

func addAssignmentCmd(ledger *assignments.Ledger, userID int64) tea.Cmd {
	return func() tea.Msg {
		if err := ledger.Add(context.Background(), userID); err != nil {
			return ActionErrorMsg{Err: err}
		}
		return ActionDoneMsg{Info: "User assigned"}
	}
}

func removeAssignmentCmd(ledger *assignments.Ledger, assignmentID int64) tea.Cmd {
	return func() tea.Msg {
		if err := ledger.Remove(context.Background(), assignmentID); err != nil {
			return ActionErrorMsg{Err: err}
		}
		return ActionDoneMsg{Info: "Assignment removed"}
	}
}

func submitCommentCmd(thread *comments.Thread, commentType courtapi.CommentType, text string) tea.Cmd {
	return func() tea.Msg {
		if err := thread.Submit(context.Background(), commentType, text); err != nil {
			return commentOutcome(err)
		}
		return CommentSubmittedMsg{Info: "Comment added"}
	}
}

func editCommentCmd(thread *comments.Thread, commentID int64, commentType courtapi.CommentType, text string) tea.Cmd {
	return func() tea.Msg {
		if err := thread.Edit(context.Background(), commentID, commentType, text); err != nil {
			return commentOutcome(err)
		}
		return CommentSubmittedMsg{Info: "Comment updated"}
	}
}

// commentOutcome maps a thread mutation error to the right message: a
// post-accept reload failure closes the editor (the comment was saved;
// re-submitting would duplicate it), anything else keeps the editor
// open with the typed text intact.
func commentOutcome(err error) tea.Msg {
	if errors.Is(err, comments.ErrReload) {
		return ActionErrorMsg{Err: err}
	}
	return CommentRejectedMsg{Err: err}
}

func deleteCommentCmd(thread *comments.Thread, commentID int64) tea.Cmd {
	return func() tea.Msg {
		if err := thread.Delete(context.Background(), commentID); err != nil {
			return ActionErrorMsg{Err: err}
		}
		return ActionDoneMsg{Info: "Comment deleted"}
	}
}

// visiblePage returns the current filtered page of the list screen.
func (m Model) visiblePage() catalog.Page {
	return catalog.Paginate(m.catalog.Search(m.searchTerm), m.page, m.pageSize)
}

// pickerUsers returns the filtered assignable users for the picker.
func (m Model) pickerUsers() []courtapi.User {
	if m.ledger == nil {
		return nil
	}
	return m.ledger.FilterUsers(m.pickerTerm)
}

// sessionUser returns the resolved session user, or a zero user when
// identity has not been resolved yet.
func (m Model) sessionUser() courtapi.User {
	if m.resolver == nil {
		return courtapi.User{}
	}
	user, err := m.resolver.Resolve(context.Background())
	if err != nil {
		return courtapi.User{}
	}
	return user
}
