package question

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Ordered alias tables, one per canonical field. Resolution is first
// present (non-null) wins; the order encodes which backend generation a
// name came from, newest first. Keeping the policy as data makes it
// independently testable and keeps the "try field A, else B, else C"
// cascades out of the normalization code.
var (
	questionIDAliases  = []string{"questionId", "id", "quizQuestionId", "question_id", "qid"}
	questionTextAliases = []string{"questionText", "text", "question", "content", "title"}
	choiceListAliases  = []string{"choices", "options", "quizChoices", "choiceList", "items"}
	choiceIDAliases    = []string{"choiceId", "id", "quizChoiceId", "choice_id", "optionId"}
	choiceTextAliases  = []string{"choiceText", "text", "content", "label", "optionText"}
	isAnswerAliases    = []string{"isAnswer", "isCorrect", "correct", "is_answer", "answerYn"}
	answerAliases      = []string{"answer", "answerText", "correctAnswer", "answer_text", "solution"}
	correctIndexAliases = []string{"correctIndex", "answerIndex", "correct_index", "answerNo"}
	explanationAliases = []string{"explanation", "commentary", "comment", "description", "solutionText"}
	typeAliases        = []string{"questionType", "type", "part", "kind", "question_type", "quizType"}
	inferredAliases    = []string{"inferred"}
	initialsAliases    = []string{"initials", "chosung", "initialList", "hints"}

	planDateAliases  = []string{"date", "planDate", "targetDate", "solvedDate"}
	planRoleAliases  = []string{"role", "userRole", "memberRole"}
	setIDAliases     = []string{"sessionSetId", "setId", "quizSetId", "questionSetId", "set_id"}
	questionIDsAliases = []string{"questionIds", "quizQuestionIds", "questionIdList", "question_ids"}
	countAliases     = []string{"questionCount", "count", "totalCount", "size"}
	existsAliases    = []string{"exists", "isExist", "hasPlan", "planExists"}

	sessionIDAliases = []string{"sessionId", "id", "quizSessionId", "session_id"}
	retrySessionIDAliases = []string{"newSessionId", "sessionId", "id", "quizSessionId"}
	statusAliases    = []string{"status", "sessionStatus", "state"}
	playPathAliases  = []string{"playPath", "path", "redirectUrl", "url"}

	reportCorrectAliases  = []string{"isCorrect", "correct", "correctYn", "result"}
	correctChoiceIDAliases = []string{"correctChoiceId", "answerChoiceId", "correct_choice_id"}
)

// first returns the value of the first alias present in raw whose value is
// not nil. JSON null therefore never wins over a later populated alias.
func first(raw map[string]any, aliases []string) (any, bool) {
	for _, a := range aliases {
		if v, ok := raw[a]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// fieldString resolves an alias list to a trimmed string. Numbers are
// stringified, since some backends serialize ids and dates as numbers.
func fieldString(raw map[string]any, aliases []string) (string, bool) {
	v, ok := first(raw, aliases)
	if !ok {
		return "", false
	}
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s), true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	case json.Number:
		return s.String(), true
	case bool:
		return strconv.FormatBool(s), true
	}
	return "", false
}

// fieldInt64 resolves an alias list to an int64, coercing float64 (the
// default JSON number decoding), json.Number and numeric strings.
func fieldInt64(raw map[string]any, aliases []string) (int64, bool) {
	v, ok := first(raw, aliases)
	if !ok {
		return 0, false
	}
	return coerceInt64(v)
}

func coerceInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		return i, err == nil
	}
	return 0, false
}

// fieldBool resolves an alias list to a bool, accepting real booleans, the
// Y/N convention and 0/1 in either numeric or string form.
func fieldBool(raw map[string]any, aliases []string) (bool, bool) {
	v, ok := first(raw, aliases)
	if !ok {
		return false, false
	}
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		switch strings.ToUpper(strings.TrimSpace(b)) {
		case "Y", "YES", "TRUE", "1", "O":
			return true, true
		case "N", "NO", "FALSE", "0", "X":
			return false, true
		}
		return false, false
	case float64:
		return b != 0, true
	}
	return false, false
}

// fieldList resolves an alias list to a JSON array.
func fieldList(raw map[string]any, aliases []string) ([]any, bool) {
	v, ok := first(raw, aliases)
	if !ok {
		return nil, false
	}
	l, ok := v.([]any)
	return l, ok
}

// fieldInt64List resolves an alias list to a slice of int64s, dropping
// entries that cannot be coerced.
func fieldInt64List(raw map[string]any, aliases []string) ([]int64, bool) {
	l, ok := fieldList(raw, aliases)
	if !ok {
		return nil, false
	}
	out := make([]int64, 0, len(l))
	for _, v := range l {
		if i, ok := coerceInt64(v); ok {
			out = append(out, i)
		}
	}
	return out, true
}

// stringList coerces a JSON array into strings, dropping non-strings.
func stringList(l []any) []string {
	out := make([]string, 0, len(l))
	for _, v := range l {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
