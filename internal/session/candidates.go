package session

import (
	"fmt"
	"net/url"

	"github.com/studyroom/quizcore/internal/question"
	"github.com/studyroom/quizcore/internal/resolve"
)

// questionCandidates builds the priority-ordered endpoint guesses for a
// session's question list. The set-scoped route is the richest payload
// when a set id is known; the session-scoped route always exists but may
// omit correctness; the flat query route is the oldest fallback.
func questionCandidates(kind question.Kind, setID, sessionID int64) []resolve.Candidate {
	var out []resolve.Candidate

	if setID != 0 {
		out = append(out,
			resolve.Candidate{Path: fmt.Sprintf("/quiz-sets/%d/questions", setID)},
			resolve.Candidate{Path: "/questions", Params: url.Values{
				"setId": {fmt.Sprint(setID)},
				"type":  {string(kind)},
			}},
		)
	}
	out = append(out, resolve.Candidate{Path: fmt.Sprintf("/quiz-sessions/%d/questions", sessionID)})
	if kind != question.KindUnknown {
		out = append(out, resolve.Candidate{Path: "/questions", Params: url.Values{
			"type": {string(kind)},
		}})
	}
	return out
}
