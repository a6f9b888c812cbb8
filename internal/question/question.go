package question

import "strings"

// Kind identifies which quiz variant a question (or session) belongs to.
type Kind string

const (
	KindChoice   Kind = "CHOICE"
	KindOX       Kind = "OX"
	KindInitials Kind = "INITIALS"
	KindUnknown  Kind = ""
)

// OXMark is a single true/false verdict or pick: "O" correct/true,
// "X" incorrect/false. The empty mark means "unanswered".
type OXMark string

const (
	MarkO    OXMark = "O"
	MarkX    OXMark = "X"
	MarkNone OXMark = ""
)

// Placeholder strings substituted when a required display field is entirely
// absent from the backend payload, so screens never render an empty hole.
const (
	PlaceholderQuestionText = "(question unavailable)"
	PlaceholderChoiceText   = "(choice unavailable)"
)

// Question is the canonical UI-level record, polymorphic over Kind.
// Only the fields of the active variant are meaningful.
//
// The JSON tags spell the highest-priority alias of each field, so a
// marshalled canonical record normalizes back to itself.
type Question struct {
	ID   int64  `json:"questionId"`
	Kind Kind   `json:"questionType"`
	Text string `json:"questionText"`

	// Choice variant.
	Choices      []string `json:"choices,omitempty"`
	CorrectIndex int      `json:"correctIndex"` // -1 when unknown
	Explanation  string   `json:"explanation,omitempty"`

	// OX variant.
	Correct OXMark `json:"answer,omitempty"`

	// Initials variant.
	Initials      []string `json:"initials,omitempty"`
	CorrectAnswer string   `json:"correctAnswer,omitempty"`

	// Inferred marks correctness that was guessed from choice position
	// rather than read from an explicit marker. Callers may overwrite it
	// from an authoritative results report.
	Inferred bool `json:"inferred,omitempty"`
}

// SessionChoice is one selectable choice as the server recorded it for a
// session. The ID is the only identifier the submit endpoint accepts.
type SessionChoice struct {
	ID       int64  `json:"choiceId"`
	Text     string `json:"choiceText"`
	IsAnswer bool   `json:"isAnswer,omitempty"`
}

// SessionItem is the server-side view of one assigned question. The item
// order, question ids and choice ids are authoritative for the session.
type SessionItem struct {
	QuestionID int64           `json:"questionId"`
	Text       string          `json:"questionText"`
	Choices    []SessionChoice `json:"choices"`

	// AnswerKnown is true when at least one choice carried an explicit
	// is-answer flag.
	AnswerKnown bool `json:"answerKnown,omitempty"`
}

// DailyPlan describes what a user should play for a (role, date, kind)
// triple. Immutable once fetched.
type DailyPlan struct {
	Date          string  `json:"date"`
	Kind          Kind    `json:"part"`
	Role          string  `json:"role"`
	SessionSetID  int64   `json:"sessionSetId"`
	QuestionIDs   []int64 `json:"questionIds"`
	QuestionCount int     `json:"questionCount"`
	Exists        bool    `json:"exists"`
}

// SessionStatus is the server-tracked lifecycle of a session. Transitions
// only move forward.
type SessionStatus string

const (
	StatusCreated   SessionStatus = "CREATED"
	StatusSubmitted SessionStatus = "SUBMITTED"
)

// Summary is the normalized session-summary record.
type Summary struct {
	SessionID int64
	Kind      Kind
	Status    SessionStatus
	SetID     int64
}

// RetryResult is the normalized outcome of a retry-wrong-only request:
// a freshly created session scoped to the previously-incorrect questions.
type RetryResult struct {
	NewSessionID  int64
	Kind          Kind
	QuestionCount int
	PlayPath      string
}

// ReportEntry is one per-question row of a results report.
type ReportEntry struct {
	QuestionID      int64
	Correct         bool
	CorrectChoiceID int64
}

// oxTokens maps the accepted spellings of O/X verdicts. Matching is
// case-insensitive.
var oxTokens = map[string]OXMark{
	"O": MarkO, "○": MarkO, "◯": MarkO, "TRUE": MarkO, "T": MarkO, "YES": MarkO,
	"X": MarkX, "×": MarkX, "✕": MarkX, "FALSE": MarkX, "F": MarkX, "NO": MarkX,
}

// ParseOXToken reports whether s spells an O/X verdict and which one.
func ParseOXToken(s string) (OXMark, bool) {
	m, ok := oxTokens[strings.ToUpper(strings.TrimSpace(s))]
	return m, ok
}

// ParseKind maps a loose type/part marker string onto a Kind. Markers vary
// by backend version ("OX", "OX_QUIZ", "true_false", "MCQ", "초성퀴즈"
// arrives transliterated as CHOSUNG on some paths), so matching is by
// substring.
func ParseKind(marker string) (Kind, bool) {
	u := strings.ToUpper(strings.TrimSpace(marker))
	switch {
	case u == "":
		return KindUnknown, false
	case strings.Contains(u, "OX"), strings.Contains(u, "TRUE_FALSE"), u == "TF":
		return KindOX, true
	case strings.Contains(u, "INITIAL"), strings.Contains(u, "CHOSUNG"):
		return KindInitials, true
	case strings.Contains(u, "CHOICE"), strings.Contains(u, "MCQ"), strings.Contains(u, "MULTIPLE"):
		return KindChoice, true
	}
	return KindUnknown, false
}

// ParseStatus maps a loose status string onto a SessionStatus.
func ParseStatus(s string) SessionStatus {
	u := strings.ToUpper(strings.TrimSpace(s))
	if strings.Contains(u, "SUBMIT") || strings.Contains(u, "COMPLETE") || strings.Contains(u, "DONE") || strings.Contains(u, "FINISH") {
		return StatusSubmitted
	}
	return StatusCreated
}
