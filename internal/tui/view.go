package tui

import (
	"fmt"
	"strings"

	"gavel/internal/comments"
	"gavel/internal/courtapi"
)

// View renders the current screen.
func (m Model) View() string {
	var b strings.Builder

	switch m.screen {
	case ScreenList:
		m.renderList(&b)
	case ScreenDetail:
		m.renderDetail(&b)
	}

	if m.errText != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errText) + "\n")
	} else if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}
	b.WriteString(m.footer())
	return b.String()
}

func (m Model) renderList(b *strings.Builder) {
	b.WriteString(titleStyle.Render("Court Recordings") + "\n")
	b.WriteString(searchStyle.Render("Search: "+m.searchTerm+"_") + "\n\n")

	if m.loading {
		b.WriteString(dimStyle.Render("Loading...") + "\n")
		return
	}

	page := m.visiblePage()
	if len(page.Recordings) == 0 {
		b.WriteString(dimStyle.Render("No recordings match.") + "\n")
		return
	}
	for i, rec := range page.Recordings {
		line := fmt.Sprintf("%-14s %-32s %-12s %s", rec.CaseNumber, truncate(rec.Title, 32), rec.Date, rec.Court)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	b.WriteString("\n" + dimStyle.Render(fmt.Sprintf("Page %d of %d (%d recordings)", page.Number, page.Count, page.Total)) + "\n")
}

func (m Model) renderDetail(b *strings.Builder) {
	rec := m.current
	b.WriteString(titleStyle.Render(rec.CaseNumber+" "+rec.Title) + "\n")
	b.WriteString(dimStyle.Render(strings.TrimSpace(fmt.Sprintf("%s  %s %s  %s", rec.Date, rec.Court, rec.Courtroom, rec.JudgeName))) + "\n\n")

	m.renderAssignments(b)
	b.WriteString("\n")
	m.renderComments(b)

	switch m.mode {
	case ModeCompose:
		m.renderCompose(b)
	case ModePicker:
		m.renderPicker(b)
	case ModeConfirm:
		b.WriteString("\n" + errorStyle.Render(m.confirm.prompt+" (y/n)") + "\n")
	}
}

func (m Model) renderAssignments(b *strings.Builder) {
	title := panelTitleStyle
	if m.panel == PanelAssignments {
		title = panelTitleActiveStyle
	}
	b.WriteString(title.Render("Assigned Users") + "\n")

	assigned := m.ledger.Assignments()
	if len(assigned) == 0 {
		b.WriteString(dimStyle.Render("  No users assigned.") + "\n")
		return
	}
	for i, a := range assigned {
		line := a.UserName
		if a.UserEmail != "" {
			line += " <" + a.UserEmail + ">"
		}
		if m.panel == PanelAssignments && i == m.assignCursor {
			b.WriteString(selectedStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
}

func (m Model) renderComments(b *strings.Builder) {
	title := panelTitleStyle
	if m.panel == PanelComments {
		title = panelTitleActiveStyle
	}
	b.WriteString(title.Render("Comments") + "\n")

	thread := m.thread.Comments()
	if len(thread) == 0 {
		b.WriteString(dimStyle.Render("  No comments yet.") + "\n")
		return
	}
	user := m.sessionUser()
	for i, c := range thread {
		line := fmt.Sprintf("[%s] %s: %s", c.CommentType, c.CommenterName, truncate(c.CommentText, 60))
		if comments.CanEdit(c, user) {
			line += " " + dimStyle.Render("(editable)")
		}
		if m.panel == PanelComments && i == m.commentCursor {
			b.WriteString(selectedStyle.Render("> ") + line + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
}

func (m Model) renderCompose(b *strings.Builder) {
	commentType := courtapi.CommentTypes()[m.composeTypeIdx]
	label := "New comment"
	if m.editingID != 0 {
		label = "Edit comment"
	}
	b.WriteString("\n" + panelTitleActiveStyle.Render(label) + "  " + badgeAdminStyle.Render("["+string(commentType)+"]") + "\n")
	b.WriteString(m.composeText + "_" + "\n")
	b.WriteString(dimStyle.Render("enter submit · ctrl+t type · esc cancel") + "\n")
}

func (m Model) renderPicker(b *strings.Builder) {
	b.WriteString("\n" + panelTitleActiveStyle.Render("Assign user") + "\n")
	b.WriteString(searchStyle.Render("Filter: "+m.pickerTerm+"_") + "\n")

	users := m.pickerUsers()
	if len(users) == 0 {
		b.WriteString(dimStyle.Render("  No users available.") + "\n")
		return
	}
	for i, u := range users {
		line := fmt.Sprintf("%s <%s>", u.Name, u.Email)
		if u.Role.AdminTier() {
			line += " " + badgeAdminStyle.Render("["+string(u.Role)+"]")
		}
		if i == m.pickerCursor {
			b.WriteString(selectedStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
}

func (m Model) footer() string {
	var bindings [][2]string
	switch {
	case m.screen == ScreenList:
		bindings = [][2]string{
			{"type", "search"}, {"↑/↓", "move"}, {"←/→", "page"}, {"enter", "open"}, {"esc", "clear"}, {"ctrl+c", "quit"},
		}
	case m.mode == ModeCompose:
		bindings = [][2]string{{"enter", "submit"}, {"ctrl+t", "type"}, {"esc", "cancel"}}
	case m.mode == ModePicker:
		bindings = [][2]string{{"type", "filter"}, {"↑/↓", "move"}, {"enter", "assign"}, {"esc", "cancel"}}
	case m.mode == ModeConfirm:
		bindings = [][2]string{{"y", "confirm"}, {"n", "cancel"}}
	default:
		bindings = [][2]string{
			{"tab", "panel"}, {"a", "assign"}, {"r", "remove"}, {"n", "comment"},
			{"e", "edit"}, {"d", "delete"}, {"q", "back"}, {"ctrl+c", "quit"},
		}
	}

	parts := make([]string, 0, len(bindings))
	for _, kv := range bindings {
		parts = append(parts, footerKeyStyle.Render(kv[0])+" "+footerDescStyle.Render(kv[1]))
	}
	return "\n" + strings.Join(parts, footerDescStyle.Render(" · ")) + "\n"
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
