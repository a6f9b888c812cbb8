package question

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func mustDecode(t *testing.T, s string) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return m
}

func TestAliasPrecedence_QuestionID(t *testing.T) {
	raw := mustDecode(t, `{"questionId": 5, "id": 9, "questionText": "q"}`)

	q, err := Normalize(raw)
	if err != nil {
		t.Fatal(err)
	}
	if q.ID != 5 {
		t.Errorf("ID = %d, want 5 (questionId outranks id)", q.ID)
	}
}

func TestAliasPrecedence_NullDoesNotWin(t *testing.T) {
	raw := mustDecode(t, `{"questionId": null, "id": 9}`)

	q, err := Normalize(raw)
	if err != nil {
		t.Fatal(err)
	}
	if q.ID != 9 {
		t.Errorf("ID = %d, want 9 (null alias skipped)", q.ID)
	}
}

func TestNormalize_StringID(t *testing.T) {
	raw := mustDecode(t, `{"questionId": "17", "text": "q"}`)

	q, err := Normalize(raw)
	if err != nil {
		t.Fatal(err)
	}
	if q.ID != 17 {
		t.Errorf("ID = %d, want 17 (string id coerced)", q.ID)
	}
}

func TestNormalize_PlaceholderText(t *testing.T) {
	raw := mustDecode(t, `{"questionId": 1, "choices": ["a","b","c","d"]}`)

	q, err := Normalize(raw)
	if err != nil {
		t.Fatal(err)
	}
	if q.Text != PlaceholderQuestionText {
		t.Errorf("Text = %q, want placeholder", q.Text)
	}
}

func TestNormalize_NotAnObject(t *testing.T) {
	_, err := Normalize("just a string")

	var shape *ShapeError
	if !errors.As(err, &shape) {
		t.Fatalf("err = %v, want ShapeError", err)
	}
}

func TestDetectKind_TwoChoicesIsOX(t *testing.T) {
	raw := mustDecode(t, `{"questionId": 1, "choices": ["O", "X"]}`)

	k, ok := DetectKind(raw)
	if !ok || k != KindOX {
		t.Errorf("kind = %q ok=%v, want OX", k, ok)
	}
}

func TestDetectKind_FourChoicesIsNotOX(t *testing.T) {
	raw := mustDecode(t, `{"questionId": 1, "choices": ["a","b","c","d"]}`)

	k, ok := DetectKind(raw)
	if !ok || k != KindChoice {
		t.Errorf("kind = %q ok=%v, want CHOICE", k, ok)
	}
}

func TestDetectKind_ExplicitMarkerWins(t *testing.T) {
	// Four choices would normally read as multiple-choice; the marker
	// overrides.
	raw := mustDecode(t, `{"part": "OX_QUIZ", "choices": ["a","b","c","d"]}`)

	k, ok := DetectKind(raw)
	if !ok || k != KindOX {
		t.Errorf("kind = %q ok=%v, want OX via marker", k, ok)
	}
}

func TestDetectKind_AnswerToken(t *testing.T) {
	raw := mustDecode(t, `{"questionId": 3, "answerText": "X"}`)

	k, ok := DetectKind(raw)
	if !ok || k != KindOX {
		t.Errorf("kind = %q ok=%v, want OX via answer token", k, ok)
	}
}

func TestDetectKind_NoSignal(t *testing.T) {
	raw := mustDecode(t, `{"questionId": 3, "questionText": "free text"}`)

	if k, ok := DetectKind(raw); ok {
		t.Errorf("kind = %q, want unrecognized", k)
	}
}

func TestNormalize_OXExplicitAnswer(t *testing.T) {
	raw := mustDecode(t, `{"questionId": 1, "question": "2 > 1?", "answer": "o", "type": "OX"}`)

	q, err := Normalize(raw)
	if err != nil {
		t.Fatal(err)
	}
	if q.Kind != KindOX {
		t.Fatalf("Kind = %q, want OX", q.Kind)
	}
	if q.Correct != MarkO {
		t.Errorf("Correct = %q, want O", q.Correct)
	}
	if q.Inferred {
		t.Error("explicit answer must not be tagged inferred")
	}
}

func TestNormalize_OXAnswerFlagOnChoice(t *testing.T) {
	raw := mustDecode(t, `{
		"questionId": 2,
		"questionText": "the earth is flat",
		"choices": [
			{"choiceId": 10, "choiceText": "O"},
			{"choiceId": 11, "choiceText": "X", "answerYn": "Y"}
		]
	}`)

	q, err := Normalize(raw)
	if err != nil {
		t.Fatal(err)
	}
	if q.Correct != MarkX {
		t.Errorf("Correct = %q, want X (flagged choice)", q.Correct)
	}
	if q.Inferred {
		t.Error("flag-derived answer must not be tagged inferred")
	}
}

func TestNormalize_OXFirstPositionInferred(t *testing.T) {
	raw := mustDecode(t, `{
		"questionId": 2,
		"questionText": "no marker anywhere",
		"choices": [{"choiceId": 10, "choiceText": "X"}, {"choiceId": 11, "choiceText": "O"}]
	}`)

	q, err := Normalize(raw)
	if err != nil {
		t.Fatal(err)
	}
	if q.Correct != MarkX {
		t.Errorf("Correct = %q, want X (first choice text)", q.Correct)
	}
	if !q.Inferred {
		t.Error("positional fallback must be tagged inferred")
	}
}

func TestNormalize_ChoiceCorrectIndex(t *testing.T) {
	raw := mustDecode(t, `{
		"quizQuestionId": 7,
		"title": "pick one",
		"options": ["a","b","c","d"],
		"answerIndex": 2,
		"commentary": "because"
	}`)

	q, err := Normalize(raw)
	if err != nil {
		t.Fatal(err)
	}
	if q.Kind != KindChoice {
		t.Fatalf("Kind = %q, want CHOICE", q.Kind)
	}
	if q.ID != 7 {
		t.Errorf("ID = %d, want 7", q.ID)
	}
	if q.CorrectIndex != 2 {
		t.Errorf("CorrectIndex = %d, want 2", q.CorrectIndex)
	}
	if q.Explanation != "because" {
		t.Errorf("Explanation = %q", q.Explanation)
	}
}

func TestNormalize_ChoiceNoCorrectness(t *testing.T) {
	raw := mustDecode(t, `{"id": 7, "text": "pick", "choices": ["a","b","c","d"]}`)

	q, err := Normalize(raw)
	if err != nil {
		t.Fatal(err)
	}
	if q.CorrectIndex != -1 {
		t.Errorf("CorrectIndex = %d, want -1 (await report backfill)", q.CorrectIndex)
	}
}

func TestNormalize_Initials(t *testing.T) {
	raw := mustDecode(t, `{
		"questionId": 4,
		"questionType": "INITIALS",
		"questionText": "capital of france",
		"initials": ["P","R"],
		"answer": "paris"
	}`)

	q, err := Normalize(raw)
	if err != nil {
		t.Fatal(err)
	}
	if q.Kind != KindInitials {
		t.Fatalf("Kind = %q, want INITIALS", q.Kind)
	}
	if len(q.Initials) != 2 || q.Initials[0] != "P" {
		t.Errorf("Initials = %v", q.Initials)
	}
	if q.CorrectAnswer != "paris" {
		t.Errorf("CorrectAnswer = %q, want paris", q.CorrectAnswer)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	originals := []Question{
		{ID: 1, Kind: KindOX, Text: "t", Correct: MarkX, CorrectIndex: -1},
		{ID: 2, Kind: KindOX, Text: "t", Correct: MarkO, CorrectIndex: -1, Inferred: true},
		{ID: 3, Kind: KindChoice, Text: "t", Choices: []string{"a", "b", "c", "d"}, CorrectIndex: 2, Explanation: "e"},
		{ID: 4, Kind: KindInitials, Text: "t", Initials: []string{"P"}, CorrectAnswer: "paris", CorrectIndex: -1},
	}

	for _, orig := range originals {
		b, err := json.Marshal(orig)
		if err != nil {
			t.Fatal(err)
		}
		var raw map[string]any
		if err := json.Unmarshal(b, &raw); err != nil {
			t.Fatal(err)
		}
		got, err := Normalize(raw)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(got, orig) {
			t.Errorf("round trip changed record:\n got %+v\nwant %+v", got, orig)
		}
	}
}

func TestNormalizeSessionItem(t *testing.T) {
	raw := mustDecode(t, `{
		"quizQuestionId": 31,
		"content": "which one",
		"quizChoices": [
			{"quizChoiceId": 310, "label": "a"},
			{"quizChoiceId": 311, "label": "b", "isCorrect": true}
		]
	}`)

	item, err := NormalizeSessionItem(raw)
	if err != nil {
		t.Fatal(err)
	}
	if item.QuestionID != 31 {
		t.Errorf("QuestionID = %d, want 31", item.QuestionID)
	}
	if len(item.Choices) != 2 {
		t.Fatalf("choices = %d, want 2", len(item.Choices))
	}
	if item.Choices[1].ID != 311 || !item.Choices[1].IsAnswer {
		t.Errorf("choice[1] = %+v, want id 311 flagged", item.Choices[1])
	}
	if !item.AnswerKnown {
		t.Error("AnswerKnown should be set")
	}
}

func TestFromSessionItem_OXFallback(t *testing.T) {
	item := SessionItem{
		QuestionID: 9,
		Text:       "statement",
		Choices: []SessionChoice{
			{ID: 90, Text: "O"},
			{ID: 91, Text: "X"},
		},
	}

	q := FromSessionItem(item)
	if q.Kind != KindOX {
		t.Fatalf("Kind = %q, want OX", q.Kind)
	}
	if q.Correct != MarkO || !q.Inferred {
		t.Errorf("Correct = %q inferred=%v, want inferred O", q.Correct, q.Inferred)
	}
}

func TestFromSessionItem_ChoiceWithFlag(t *testing.T) {
	item := SessionItem{
		QuestionID: 9,
		Text:       "pick",
		Choices: []SessionChoice{
			{ID: 90, Text: "a"},
			{ID: 91, Text: "b"},
			{ID: 92, Text: "c", IsAnswer: true},
			{ID: 93, Text: "d"},
		},
		AnswerKnown: true,
	}

	q := FromSessionItem(item)
	if q.Kind != KindChoice {
		t.Fatalf("Kind = %q, want CHOICE", q.Kind)
	}
	if q.CorrectIndex != 2 {
		t.Errorf("CorrectIndex = %d, want 2", q.CorrectIndex)
	}
}
