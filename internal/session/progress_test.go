package session

import (
	"testing"

	"github.com/studyroom/quizcore/internal/question"
)

func TestProgress_FirstWriteWins(t *testing.T) {
	p := NewProgress(3)

	if !p.Set(2, question.MarkO) {
		t.Fatal("first write refused")
	}
	if p.Set(2, question.MarkX) {
		t.Fatal("second write accepted")
	}
	if got := p.At(2); got != question.MarkO {
		t.Errorf("At(2) = %q, want O", got)
	}
}

func TestProgress_BoundsAndEmptyMark(t *testing.T) {
	p := NewProgress(2)

	if p.Set(0, question.MarkO) || p.Set(3, question.MarkO) {
		t.Error("out-of-range write accepted")
	}
	if p.Set(1, question.MarkNone) {
		t.Error("empty mark accepted")
	}
	if got := p.At(99); got != question.MarkNone {
		t.Errorf("At(99) = %q, want empty", got)
	}
}

func TestProgress_WrongAndCounts(t *testing.T) {
	p := NewProgress(4)
	p.Set(1, question.MarkO)
	p.Set(2, question.MarkX)
	p.Set(4, question.MarkX)

	wrong := p.Wrong()
	if len(wrong) != 2 || wrong[0] != 2 || wrong[1] != 4 {
		t.Errorf("Wrong() = %v, want [2 4]", wrong)
	}
	correct, answered := p.Counts()
	if correct != 1 || answered != 3 {
		t.Errorf("Counts() = (%d, %d), want (1, 3)", correct, answered)
	}
	if p.Complete() {
		t.Error("Complete() true with an unanswered slot")
	}
	if got := p.FirstUnanswered(); got != 3 {
		t.Errorf("FirstUnanswered() = %d, want 3", got)
	}
}

func TestProgress_RestoreRoundTrip(t *testing.T) {
	p := NewProgress(3)
	p.Set(1, question.MarkO)
	p.Set(2, question.MarkX)

	r := RestoreProgress(p.Marks())
	if r.Len() != 3 || r.At(1) != question.MarkO || r.At(2) != question.MarkX || r.At(3) != question.MarkNone {
		t.Errorf("restored sheet = %v", r.Marks())
	}
	// Restored answered slots stay locked.
	if r.Set(1, question.MarkX) {
		t.Error("restored slot accepted a second write")
	}
}
