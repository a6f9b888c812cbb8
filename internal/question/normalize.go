package question

// Normalization of raw backend payloads into canonical records. All
// functions here are pure: no I/O, and an error only when the input is
// structurally invalid (see ShapeError). Missing fields resolve through
// the alias tables; missing display text falls back to placeholders.

// choiceView is the intermediate read of one raw choice entry, which may
// arrive as a bare string or as an object.
type choiceView struct {
	id       int64
	text     string
	isAnswer bool
	flagged  bool // an explicit is-answer flag was present
}

// rawChoices extracts the choice list from a raw question payload.
func rawChoices(raw map[string]any) []choiceView {
	l, ok := fieldList(raw, choiceListAliases)
	if !ok {
		return nil
	}
	out := make([]choiceView, 0, len(l))
	for _, v := range l {
		switch c := v.(type) {
		case string:
			out = append(out, choiceView{text: c})
		case map[string]any:
			cv := choiceView{}
			cv.id, _ = fieldInt64(c, choiceIDAliases)
			if t, ok := fieldString(c, choiceTextAliases); ok && t != "" {
				cv.text = t
			} else {
				cv.text = PlaceholderChoiceText
			}
			if b, ok := fieldBool(c, isAnswerAliases); ok {
				cv.isAnswer = b
				cv.flagged = true
			}
			out = append(out, cv)
		}
	}
	return out
}

// DetectKind classifies a raw question payload. Signals, in priority order:
// an explicit type/part marker is trusted; exactly two choices means OX; an
// answer field spelling an O/X token means OX; any other choice list means
// multiple-choice; an initials field means the initials variant. With no
// signal the payload is unrecognized.
func DetectKind(raw map[string]any) (Kind, bool) {
	if marker, ok := fieldString(raw, typeAliases); ok {
		if k, ok := ParseKind(marker); ok {
			return k, true
		}
	}

	choices := rawChoices(raw)
	if len(choices) == 2 {
		return KindOX, true
	}
	if ans, ok := fieldString(raw, answerAliases); ok {
		if _, isOX := ParseOXToken(ans); isOX {
			return KindOX, true
		}
	}
	if len(choices) > 0 {
		return KindChoice, true
	}
	if _, ok := fieldList(raw, initialsAliases); ok {
		return KindInitials, true
	}
	return KindUnknown, false
}

// Normalize converts a raw payload into a canonical Question. The variant
// is chosen by DetectKind; an unrecognized payload defaults to
// multiple-choice so that a correctly-targeted endpoint that omits type
// markers is still usable.
func Normalize(v any) (Question, error) {
	raw, ok := v.(map[string]any)
	if !ok {
		return Question{}, &ShapeError{Want: "object", Got: v}
	}

	q := Question{CorrectIndex: -1}
	q.ID, _ = fieldInt64(raw, questionIDAliases)
	if t, ok := fieldString(raw, questionTextAliases); ok && t != "" {
		q.Text = t
	} else {
		q.Text = PlaceholderQuestionText
	}
	q.Explanation, _ = fieldString(raw, explanationAliases)

	kind, _ := DetectKind(raw)
	choices := rawChoices(raw)

	switch kind {
	case KindOX:
		q.Kind = KindOX
		q.Correct, q.Inferred = oxCorrectness(raw, choices)
	case KindInitials:
		q.Kind = KindInitials
		if l, ok := fieldList(raw, initialsAliases); ok {
			q.Initials = stringList(l)
		}
		q.CorrectAnswer, _ = fieldString(raw, answerAliases)
	default:
		q.Kind = KindChoice
		q.Choices = make([]string, len(choices))
		for i, c := range choices {
			if c.text == "" {
				c.text = PlaceholderChoiceText
			}
			q.Choices[i] = c.text
		}
		q.CorrectIndex = choiceCorrectness(raw, choices)
	}

	// A payload that already carries the canonical inferred tag keeps it,
	// so normalization is stable under round-tripping.
	if b, ok := fieldBool(raw, inferredAliases); ok {
		q.Inferred = b
	}

	return q, nil
}

// oxCorrectness resolves the correct O/X mark. An answer field spelling an
// O/X token or an explicit is-answer flag on a choice is authoritative;
// with neither, the first choice position is assumed correct and the
// result is tagged as inferred so a results report can overwrite it later.
func oxCorrectness(raw map[string]any, choices []choiceView) (OXMark, bool) {
	if ans, ok := fieldString(raw, answerAliases); ok {
		if m, isOX := ParseOXToken(ans); isOX {
			return m, false
		}
	}
	for i, c := range choices {
		if c.flagged && c.isAnswer {
			if m, isOX := ParseOXToken(c.text); isOX {
				return m, false
			}
			return positionMark(i), false
		}
	}
	if len(choices) > 0 {
		if m, isOX := ParseOXToken(choices[0].text); isOX {
			return m, true
		}
	}
	return MarkO, true
}

// positionMark maps a choice position onto an O/X mark by convention:
// the first choice is O, everything after is X.
func positionMark(i int) OXMark {
	if i == 0 {
		return MarkO
	}
	return MarkX
}

// choiceCorrectness resolves the 0-based correct index for a
// multiple-choice question, or -1 when no explicit signal exists.
// -1 is not an error: the orchestrator backfills it from the results
// report when one becomes available.
func choiceCorrectness(raw map[string]any, choices []choiceView) int {
	if idx, ok := fieldInt64(raw, correctIndexAliases); ok {
		if idx >= 0 && int(idx) < len(choices) {
			return int(idx)
		}
	}
	for i, c := range choices {
		if c.flagged && c.isAnswer {
			return i
		}
	}
	return -1
}

// NormalizeMany normalizes a list of raw payloads, dropping entries whose
// shape is invalid. Used by the candidate resolver when a whole list must
// be salvaged.
func NormalizeMany(list []any) []Question {
	out := make([]Question, 0, len(list))
	for _, v := range list {
		q, err := Normalize(v)
		if err != nil {
			continue
		}
		out = append(out, q)
	}
	return out
}

// NormalizeSessionItem converts a raw session-item payload into the
// canonical SessionItem. Choice ids here are the only ids the submit
// endpoint understands.
func NormalizeSessionItem(v any) (SessionItem, error) {
	raw, ok := v.(map[string]any)
	if !ok {
		return SessionItem{}, &ShapeError{Want: "object", Got: v}
	}

	item := SessionItem{}
	item.QuestionID, _ = fieldInt64(raw, questionIDAliases)
	if t, ok := fieldString(raw, questionTextAliases); ok && t != "" {
		item.Text = t
	} else {
		item.Text = PlaceholderQuestionText
	}

	for _, c := range rawChoices(raw) {
		if c.text == "" {
			c.text = PlaceholderChoiceText
		}
		item.Choices = append(item.Choices, SessionChoice{ID: c.id, Text: c.text, IsAnswer: c.flagged && c.isAnswer})
		if c.flagged && c.isAnswer {
			item.AnswerKnown = true
		}
	}
	return item, nil
}

// NormalizeSessionItems converts a raw list, skipping invalid entries.
func NormalizeSessionItems(list []any) []SessionItem {
	out := make([]SessionItem, 0, len(list))
	for _, v := range list {
		item, err := NormalizeSessionItem(v)
		if err != nil {
			continue
		}
		out = append(out, item)
	}
	return out
}

// FromSessionItem builds a display-ready Question directly from a
// SessionItem. This is the fallback path when no question-set data matched
// the session: the session's own records carry enough to play, though
// correctness may be inferred until a results report repairs it.
func FromSessionItem(item SessionItem) Question {
	q := Question{
		ID:           item.QuestionID,
		Text:         item.Text,
		CorrectIndex: -1,
	}

	texts := make([]string, len(item.Choices))
	allOX := len(item.Choices) > 0
	for i, c := range item.Choices {
		texts[i] = c.Text
		if _, isOX := ParseOXToken(c.Text); !isOX {
			allOX = false
		}
	}

	if len(item.Choices) == 2 || allOX {
		q.Kind = KindOX
		q.Correct = MarkO
		q.Inferred = true
		for i, c := range item.Choices {
			if c.IsAnswer {
				if m, isOX := ParseOXToken(c.Text); isOX {
					q.Correct = m
				} else {
					q.Correct = positionMark(i)
				}
				q.Inferred = false
				break
			}
		}
		return q
	}

	q.Kind = KindChoice
	q.Choices = texts
	for i, c := range item.Choices {
		if c.IsAnswer {
			q.CorrectIndex = i
			break
		}
	}
	return q
}
