package session

import "github.com/studyroom/quizcore/internal/question"

// Progress is the per-question verdict sheet for one session. Positions
// are 1-based. Every slot starts unanswered and accepts exactly one
// verdict: the first write wins, later writes for the same position are
// no-ops. This keeps answer recording idempotent under double-fired UI
// events.
type Progress struct {
	marks []question.OXMark
}

// NewProgress creates a sheet of n unanswered slots.
func NewProgress(n int) *Progress {
	return &Progress{marks: make([]question.OXMark, n)}
}

// RestoreProgress rebuilds a sheet from persisted marks.
func RestoreProgress(marks []string) *Progress {
	p := &Progress{marks: make([]question.OXMark, len(marks))}
	for i, m := range marks {
		p.marks[i] = question.OXMark(m)
	}
	return p
}

// Len returns the number of slots.
func (p *Progress) Len() int { return len(p.marks) }

// At returns the verdict at pos, or MarkNone when unanswered or out of
// range.
func (p *Progress) At(pos int) question.OXMark {
	if pos < 1 || pos > len(p.marks) {
		return question.MarkNone
	}
	return p.marks[pos-1]
}

// Set records a verdict at pos. It reports whether the write took effect:
// false means the slot was already answered or pos is out of range.
func (p *Progress) Set(pos int, m question.OXMark) bool {
	if pos < 1 || pos > len(p.marks) || m == question.MarkNone {
		return false
	}
	if p.marks[pos-1] != question.MarkNone {
		return false
	}
	p.marks[pos-1] = m
	return true
}

// Marks returns the sheet as plain strings, for persistence.
func (p *Progress) Marks() []string {
	out := make([]string, len(p.marks))
	for i, m := range p.marks {
		out[i] = string(m)
	}
	return out
}

// Wrong returns the 1-based positions answered incorrectly.
func (p *Progress) Wrong() []int {
	var out []int
	for i, m := range p.marks {
		if m == question.MarkX {
			out = append(out, i+1)
		}
	}
	return out
}

// Counts returns how many slots are correct and how many are answered.
func (p *Progress) Counts() (correct, answered int) {
	for _, m := range p.marks {
		switch m {
		case question.MarkO:
			correct++
			answered++
		case question.MarkX:
			answered++
		}
	}
	return correct, answered
}

// Complete reports whether every slot is answered.
func (p *Progress) Complete() bool {
	_, answered := p.Counts()
	return len(p.marks) > 0 && answered == len(p.marks)
}

// FirstUnanswered returns the 1-based position of the first unanswered
// slot, or 0 when the sheet is complete.
func (p *Progress) FirstUnanswered() int {
	for i, m := range p.marks {
		if m == question.MarkNone {
			return i + 1
		}
	}
	return 0
}
