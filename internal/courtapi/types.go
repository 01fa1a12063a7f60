package courtapi

// Recording is a court hearing recording with its transcript state.
// Court and Courtroom hold display names; when the backend sends only
// the numeric ids, the catalog fills the names in from the court and
// courtroom collections.
type Recording struct {
	ID          int64  `json:"id"`
	CaseNumber  string `json:"case_number"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	CourtID     int64  `json:"court_id"`
	CourtroomID int64  `json:"courtroom_id"`
	Court       string `json:"court"`
	Courtroom   string `json:"courtroom"`
	JudgeName   string `json:"judge_name"`
	Notes       string `json:"notes"`
	Transcript  string `json:"transcript"`
}

// Court is a court registered with the backend.
type Court struct {
	ID   int64  `json:"court_id"`
	Name string `json:"court_name"`
}

// Courtroom is a room belonging to a court.
type Courtroom struct {
	ID      int64  `json:"courtroom_id"`
	Name    string `json:"courtroom_name"`
	CourtID int64  `json:"court_id"`
}

// Role names a user's permission tier.
type Role string

const (
	RoleTranscriber Role = "transcriber"
	RoleAdmin       Role = "admin"
	RoleSuperAdmin  Role = "super_admin"
)

// AdminTier reports whether the role carries moderator permissions over
// other collaborators' comments.
func (r Role) AdminTier() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// User is a collaborator in the backend's user directory. ID is the
// backend's numeric identifier; Email is the key shared with the session
// identity space.
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

// Assignment binds one user to one case for transcription work.
type Assignment struct {
	ID           int64  `json:"id"`
	CaseID       int64  `json:"case_id"`
	UserID       int64  `json:"user_id"`
	UserName     string `json:"user_name"`
	UserEmail    string `json:"user_email"`
	DateAssigned string `json:"date_assigned"`
}

// CommentType classifies a transcript comment.
type CommentType string

const (
	CommentGeneral    CommentType = "general"
	CommentError      CommentType = "error"
	CommentNote       CommentType = "note"
	CommentQuestion   CommentType = "question"
	CommentSuggestion CommentType = "suggestion"
)

// CommentTypes lists the valid comment classifications in display order.
func CommentTypes() []CommentType {
	return []CommentType{CommentGeneral, CommentError, CommentNote, CommentQuestion, CommentSuggestion}
}

// Valid reports whether the comment type is one the backend accepts.
func (t CommentType) Valid() bool {
	switch t {
	case CommentGeneral, CommentError, CommentNote, CommentQuestion, CommentSuggestion:
		return true
	}
	return false
}

// Comment is a typed annotation attached to a case's transcript.
type Comment struct {
	ID            int64       `json:"id"`
	CaseID        int64       `json:"case_id"`
	CommenterID   int64       `json:"commenter_id"`
	CommenterName string      `json:"commenter_name"`
	CommentType   CommentType `json:"comment_type"`
	CommentText   string      `json:"comment_text"`
	CreatedAt     string      `json:"created_at"`
}
