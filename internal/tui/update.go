package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"gavel/internal/assignments"
	"gavel/internal/comments"
	"gavel/internal/courtapi"
)

// Update is the single transition function for the browse TUI.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case CatalogLoadedMsg:
		m.loading = false
		m.status = ""
		m.errText = ""
		m.clampListCursor()
		return m, nil

	case CatalogErrorMsg:
		m.loading = false
		m.errText = msg.Err.Error()
		return m, nil

	case CaseLoadedMsg:
		m.loading = false
		m.screen = ScreenDetail
		m.panel = PanelAssignments
		m.assignCursor = 0
		m.commentCursor = 0
		m.mode = ModeBrowse
		m.status = ""
		m.errText = ""
		return m, nil

	case CaseErrorMsg:
		m.loading = false
		m.errText = msg.Err.Error()
		return m, nil

	case ActionDoneMsg:
		m.loading = false
		m.status = msg.Info
		m.errText = ""
		m.mode = ModeBrowse
		m.confirm = confirmState{}
		m.clampDetailCursors()
		return m, nil

	case ActionErrorMsg:
		m.loading = false
		m.errText = msg.Err.Error()
		m.mode = ModeBrowse
		m.confirm = confirmState{}
		return m, nil

	case CommentSubmittedMsg:
		m.loading = false
		m.status = msg.Info
		m.errText = ""
		m.mode = ModeBrowse
		m.composeText = ""
		m.composeTypeIdx = 0
		m.editingID = 0
		m.clampDetailCursors()
		return m, nil

	case CommentRejectedMsg:
		m.loading = false
		m.status = ""
		m.errText = msg.Err.Error()
		m.mode = ModeCompose
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == KeyCtrlC {
		return m, tea.Quit
	}
	if m.loading {
		return m, nil
	}

	switch m.screen {
	case ScreenList:
		return m.handleListKey(msg)
	case ScreenDetail:
		switch m.mode {
		case ModeCompose:
			return m.handleComposeKey(msg)
		case ModePicker:
			return m.handlePickerKey(msg)
		case ModeConfirm:
			return m.handleConfirmKey(msg)
		default:
			return m.handleDetailKey(msg)
		}
	}
	return m, nil
}

// List screen: printable keys feed the search term so filtering happens
// on every keystroke, navigation uses arrows, enter opens the case.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyEsc:
		m.searchTerm = ""
		m.page = 1
		m.cursor = 0
		return m, nil

	case KeyBackspace:
		if m.searchTerm != "" {
			runes := []rune(m.searchTerm)
			m.searchTerm = string(runes[:len(runes)-1])
			m.page = 1
			m.cursor = 0
		}
		return m, nil

	case KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case KeyDown:
		page := m.visiblePage()
		if m.cursor < len(page.Recordings)-1 {
			m.cursor++
		}
		return m, nil

	case KeyLeft:
		if m.page > 1 {
			m.page--
			m.cursor = 0
		}
		return m, nil

	case KeyRight:
		if m.page < m.visiblePage().Count {
			m.page++
			m.cursor = 0
		}
		return m, nil

	case KeyEnter:
		page := m.visiblePage()
		if m.cursor >= len(page.Recordings) {
			return m, nil
		}
		rec := page.Recordings[m.cursor]
		m.current = rec
		m.ledger = assignments.NewLedger(m.backend, rec.ID, m.logger)
		m.thread = comments.NewThread(m.backend, m.resolver, rec.ID, m.logger)
		m.loading = true
		m.status = "Loading case..."
		return m, openCaseCmd(m.ledger, m.thread, rec.ID)
	}

	switch msg.Type {
	case tea.KeyRunes:
		m.searchTerm += string(msg.Runes)
	case tea.KeySpace:
		m.searchTerm += " "
	default:
		return m, nil
	}
	m.page = 1
	m.cursor = 0
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyEsc, KeyBack:
		m.screen = ScreenList
		m.status = ""
		m.errText = ""
		return m, nil

	case KeyTab:
		if m.panel == PanelAssignments {
			m.panel = PanelComments
		} else {
			m.panel = PanelAssignments
		}
		return m, nil

	case KeyUp:
		if m.panel == PanelAssignments && m.assignCursor > 0 {
			m.assignCursor--
		}
		if m.panel == PanelComments && m.commentCursor > 0 {
			m.commentCursor--
		}
		return m, nil

	case KeyDown:
		if m.panel == PanelAssignments && m.assignCursor < len(m.ledger.Assignments())-1 {
			m.assignCursor++
		}
		if m.panel == PanelComments && m.commentCursor < len(m.thread.Comments())-1 {
			m.commentCursor++
		}
		return m, nil

	case KeyAssign:
		m.mode = ModePicker
		m.pickerTerm = ""
		m.pickerCursor = 0
		return m, nil

	case KeyRemoveAssign:
		assigned := m.ledger.Assignments()
		if m.assignCursor >= len(assigned) {
			return m, nil
		}
		target := assigned[m.assignCursor]
		m.mode = ModeConfirm
		m.confirm = confirmState{
			kind:     confirmRemoveAssignment,
			targetID: target.ID,
			prompt:   "Remove " + target.UserName + " from this case?",
		}
		return m, nil

	case KeyNewComment:
		if err := m.thread.OpenCompose(); err != nil {
			m.errText = err.Error()
			return m, nil
		}
		m.mode = ModeCompose
		m.composeText = ""
		m.composeTypeIdx = 0
		m.editingID = 0
		return m, nil

	case KeyEditComment:
		thread := m.thread.Comments()
		if m.panel != PanelComments || m.commentCursor >= len(thread) {
			return m, nil
		}
		target := thread[m.commentCursor]
		if !comments.CanEdit(target, m.sessionUser()) {
			m.errText = "Only the commenter or an admin may change this comment"
			return m, nil
		}
		m.mode = ModeCompose
		m.composeText = target.CommentText
		m.composeTypeIdx = typeIndex(target.CommentType)
		m.editingID = target.ID
		return m, nil

	case KeyDeleteComment:
		thread := m.thread.Comments()
		if m.panel != PanelComments || m.commentCursor >= len(thread) {
			return m, nil
		}
		target := thread[m.commentCursor]
		if !comments.CanEdit(target, m.sessionUser()) {
			m.errText = "Only the commenter or an admin may change this comment"
			return m, nil
		}
		m.mode = ModeConfirm
		m.confirm = confirmState{
			kind:     confirmDeleteComment,
			targetID: target.ID,
			prompt:   "Delete this comment?",
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleComposeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyEsc:
		if m.editingID == 0 {
			if err := m.thread.CancelCompose(); err != nil {
				m.errText = err.Error()
				return m, nil
			}
		}
		m.mode = ModeBrowse
		m.composeText = ""
		m.editingID = 0
		return m, nil

	case KeyCycleType:
		m.composeTypeIdx = (m.composeTypeIdx + 1) % len(courtapi.CommentTypes())
		return m, nil

	case KeyBackspace:
		if m.composeText != "" {
			runes := []rune(m.composeText)
			m.composeText = string(runes[:len(runes)-1])
		}
		return m, nil

	case KeyEnter:
		commentType := courtapi.CommentTypes()[m.composeTypeIdx]
		m.loading = true
		m.status = "Submitting..."
		if m.editingID != 0 {
			return m, editCommentCmd(m.thread, m.editingID, commentType, m.composeText)
		}
		return m, submitCommentCmd(m.thread, commentType, m.composeText)
	}

	switch msg.Type {
	case tea.KeyRunes:
		m.composeText += string(msg.Runes)
	case tea.KeySpace:
		m.composeText += " "
	}
	return m, nil
}

func (m Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyEsc:
		m.mode = ModeBrowse
		m.pickerTerm = ""
		return m, nil

	case KeyBackspace:
		if m.pickerTerm != "" {
			runes := []rune(m.pickerTerm)
			m.pickerTerm = string(runes[:len(runes)-1])
			m.pickerCursor = 0
		}
		return m, nil

	case KeyUp:
		if m.pickerCursor > 0 {
			m.pickerCursor--
		}
		return m, nil

	case KeyDown:
		if m.pickerCursor < len(m.pickerUsers())-1 {
			m.pickerCursor++
		}
		return m, nil

	case KeyEnter:
		users := m.pickerUsers()
		if m.pickerCursor >= len(users) {
			return m, nil
		}
		m.loading = true
		m.status = "Assigning..."
		m.pickerTerm = ""
		return m, addAssignmentCmd(m.ledger, users[m.pickerCursor].ID)
	}

	switch msg.Type {
	case tea.KeyRunes:
		m.pickerTerm += string(msg.Runes)
	case tea.KeySpace:
		m.pickerTerm += " "
	default:
		return m, nil
	}
	m.pickerCursor = 0
	return m, nil
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyConfirmYes:
		confirm := m.confirm
		m.loading = true
		m.status = "Working..."
		switch confirm.kind {
		case confirmRemoveAssignment:
			return m, removeAssignmentCmd(m.ledger, confirm.targetID)
		case confirmDeleteComment:
			return m, deleteCommentCmd(m.thread, confirm.targetID)
		}
		m.loading = false
		return m, nil

	case KeyConfirmNo, KeyEsc:
		m.mode = ModeBrowse
		m.confirm = confirmState{}
		return m, nil
	}
	return m, nil
}

func (m *Model) clampListCursor() {
	page := m.visiblePage()
	if m.cursor >= len(page.Recordings) {
		m.cursor = len(page.Recordings) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) clampDetailCursors() {
	if m.ledger != nil && m.assignCursor >= len(m.ledger.Assignments()) {
		m.assignCursor = len(m.ledger.Assignments()) - 1
	}
	if m.assignCursor < 0 {
		m.assignCursor = 0
	}
	if m.thread != nil && m.commentCursor >= len(m.thread.Comments()) {
		m.commentCursor = len(m.thread.Comments()) - 1
	}
	if m.commentCursor < 0 {
		m.commentCursor = 0
	}
}

func typeIndex(commentType courtapi.CommentType) int {
	for i, t := range courtapi.CommentTypes() {
		if t == commentType {
			return i
		}
	}
	return 0
}
