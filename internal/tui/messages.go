package tui

// CatalogLoadedMsg is sent when the recording catalog finished loading.
type CatalogLoadedMsg struct{}

// CatalogErrorMsg is sent when the catalog load failed.
type CatalogErrorMsg struct {
	Err error
}

// CaseLoadedMsg is sent when a case's assignments and comments are both
// loaded and the detail screen can open.
type CaseLoadedMsg struct {
	CaseID int64
}

// CaseErrorMsg is sent when loading a case's collaboration state failed.
type CaseErrorMsg struct {
	Err error
}

// ActionDoneMsg reports a completed mutation; Info is shown in the
// status line.
type ActionDoneMsg struct {
	Info string
}

// ActionErrorMsg reports a failed mutation. The originating state is
// untouched, so the current screen stays usable.
type ActionErrorMsg struct {
	Err error
}

// CommentSubmittedMsg is sent when a composed or edited comment was
// accepted; Info is shown in the status line.
type CommentSubmittedMsg struct {
	Info string
}

// CommentRejectedMsg is sent when a comment submission or edit failed
// before the backend accepted it; the editor stays open so the text is
// not lost.
type CommentRejectedMsg struct {
	Err error
}
