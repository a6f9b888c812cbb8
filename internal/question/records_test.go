package question

import (
	"encoding/json"
	"testing"
)

func decodeAny(t *testing.T, s string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return v
}

func TestNormalizePlan(t *testing.T) {
	p, err := NormalizePlan(decodeAny(t, `{
		"date": "2024-01-01",
		"part": "OX",
		"role": "GENERAL",
		"sessionSetId": 88,
		"questionIds": [1, 2, 3]
	}`))
	if err != nil {
		t.Fatal(err)
	}
	if p.Date != "2024-01-01" || p.Role != "GENERAL" {
		t.Errorf("plan = %+v", p)
	}
	if p.Kind != KindOX {
		t.Errorf("Kind = %q, want OX", p.Kind)
	}
	if p.SessionSetID != 88 {
		t.Errorf("SessionSetID = %d, want 88", p.SessionSetID)
	}
	if p.QuestionCount != 3 {
		t.Errorf("QuestionCount = %d, want 3 (derived from ids)", p.QuestionCount)
	}
	if !p.Exists {
		t.Error("plan with ids should exist")
	}
}

func TestNormalizePlan_Empty(t *testing.T) {
	p, err := NormalizePlan(decodeAny(t, `{"date": "2024-01-01"}`))
	if err != nil {
		t.Fatal(err)
	}
	if p.Exists {
		t.Error("plan with no set and no ids should not exist")
	}
}

func TestNormalizePlan_ExplicitExists(t *testing.T) {
	p, err := NormalizePlan(decodeAny(t, `{"isExist": false, "sessionSetId": 5}`))
	if err != nil {
		t.Fatal(err)
	}
	if p.Exists {
		t.Error("explicit exists=false must win over populated set id")
	}
}

func TestNormalizeSummary(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		status  SessionStatus
		kind    Kind
	}{
		{"created", `{"quizSessionId": 42, "questionType": "CHOICE", "status": "CREATED"}`, StatusCreated, KindChoice},
		{"submitted variant", `{"sessionId": 42, "type": "ox_quiz", "state": "submit_done"}`, StatusSubmitted, KindOX},
		{"no status", `{"id": 42, "part": "INITIALS"}`, StatusCreated, KindInitials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NormalizeSummary(decodeAny(t, tt.payload))
			if err != nil {
				t.Fatal(err)
			}
			if s.SessionID != 42 {
				t.Errorf("SessionID = %d, want 42", s.SessionID)
			}
			if s.Status != tt.status {
				t.Errorf("Status = %q, want %q", s.Status, tt.status)
			}
			if s.Kind != tt.kind {
				t.Errorf("Kind = %q, want %q", s.Kind, tt.kind)
			}
		})
	}
}

func TestNormalizeRetryResult(t *testing.T) {
	r, err := NormalizeRetryResult(decodeAny(t, `{
		"newSessionId": 77,
		"questionType": "OX",
		"questionCount": 2,
		"playPath": "/quiz/ox/play"
	}`))
	if err != nil {
		t.Fatal(err)
	}
	if r.NewSessionID != 77 || r.QuestionCount != 2 || r.Kind != KindOX {
		t.Errorf("retry = %+v", r)
	}
	if r.PlayPath != "/quiz/ox/play" {
		t.Errorf("PlayPath = %q", r.PlayPath)
	}
}

func TestNormalizeReport(t *testing.T) {
	entries := NormalizeReport([]any{
		decodeAny(t, `{"questionId": 1, "correctYn": "N", "correctChoiceId": 11}`),
		decodeAny(t, `{"questionId": 2, "isCorrect": true, "correctChoiceId": 22}`),
		"garbage",
		decodeAny(t, `{"noId": true}`),
	})

	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].Correct {
		t.Error("entry 0 should be incorrect")
	}
	if entries[1].CorrectChoiceID != 22 {
		t.Errorf("CorrectChoiceID = %d, want 22", entries[1].CorrectChoiceID)
	}
}

func TestParseOXToken(t *testing.T) {
	for tok, want := range map[string]OXMark{"o": MarkO, "TRUE": MarkO, "×": MarkX, "f": MarkX} {
		got, ok := ParseOXToken(tok)
		if !ok || got != want {
			t.Errorf("ParseOXToken(%q) = %q ok=%v, want %q", tok, got, ok, want)
		}
	}
	if _, ok := ParseOXToken("maybe"); ok {
		t.Error("maybe is not an OX token")
	}
}
