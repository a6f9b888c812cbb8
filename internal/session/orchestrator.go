package session

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/studyroom/quizcore/internal/api"
	"github.com/studyroom/quizcore/internal/cache"
	"github.com/studyroom/quizcore/internal/question"
	"github.com/studyroom/quizcore/internal/resolve"
	"github.com/studyroom/quizcore/internal/store"
)

// Phase is the client-side lifecycle of one quiz run. Transitions only
// move forward, except the retry branch which loops a fresh session back
// to PhaseSessionReady.
type Phase int

const (
	PhasePlanning       Phase = iota // resolving the plan, creating or resuming a session
	PhaseSessionReady                // session exists, questions not loaded yet
	PhaseAnswering                   // questions loaded, answers being recorded
	PhaseSubmitting                  // submission in flight
	PhaseSubmitted                   // answers accepted by the server
	PhaseRetryRequested              // retry-wrong request in flight
)

func (p Phase) String() string {
	switch p {
	case PhasePlanning:
		return "PLANNING"
	case PhaseSessionReady:
		return "SESSION_READY"
	case PhaseAnswering:
		return "ANSWERING"
	case PhaseSubmitting:
		return "SUBMITTING"
	case PhaseSubmitted:
		return "SUBMITTED"
	case PhaseRetryRequested:
		return "RETRY_REQUESTED"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Pick is one user answer before grading. Only the field of the active
// question variant is meaningful: Index for choice questions, Mark for
// OX, Answer for initials.
type Pick struct {
	Index  int
	Mark   question.OXMark
	Answer string
}

// label renders the pick for the local event log.
func (p Pick) label(k question.Kind) string {
	switch k {
	case question.KindOX:
		return string(p.Mark)
	case question.KindInitials:
		return p.Answer
	default:
		return fmt.Sprint(p.Index)
	}
}

// StartOptions selects what Start drives: an explicit session to resume,
// or a (role, date, kind) plan lookup that creates a fresh session.
type StartOptions struct {
	SessionID int64 // resume this session when non-zero
	Role      string
	Date      string // YYYY-MM-DD
	Kind      question.Kind
}

// Result is the local summary after a successful submission.
type Result struct {
	SessionID int64
	Correct   int
	Total     int
	Wrong     []int // 1-based positions answered incorrectly
	Elapsed   time.Duration
}

// Orchestrator drives one quiz session end to end: plan resolution,
// session creation or resume, question loading through the candidate
// resolver, local grading with first-write-wins progress, exactly-once
// submission and the retry-wrong branch. All methods are safe for
// concurrent use; network calls run outside the state lock.
type Orchestrator struct {
	mu sync.Mutex

	client   api.Client
	cache    *cache.Cache
	resolver *resolve.Resolver

	snapshots store.SnapshotRepo // nil disables persistence
	events    store.EventRepo    // nil disables the event log

	// Logf receives developer-visible traces. Defaults to a no-op.
	Logf func(format string, args ...any)

	now           func() time.Time
	retryPolls    int
	retryInterval time.Duration

	id string // tags traces from this orchestrator instance

	phase     Phase
	sessionID int64
	kind      question.Kind
	setID     int64

	questions []question.Question
	items     []question.SessionItem
	progress  *Progress
	picks     map[int]Pick
	position  int // 1-based cursor

	// restore holds a snapshot found at resume time; it is applied once
	// the question count is known.
	restore *store.ProgressSnapshot

	loading bool
	loadGen int

	startedAt time.Time
}

// New creates an Orchestrator over the given backend client and request
// cache. snapshots and events may be nil to run without local state.
func New(client api.Client, c *cache.Cache, snapshots store.SnapshotRepo, events store.EventRepo) *Orchestrator {
	return &Orchestrator{
		client:        client,
		cache:         c,
		resolver:      resolve.New(client, c),
		snapshots:     snapshots,
		events:        events,
		Logf:          func(string, ...any) {},
		now:           time.Now,
		retryPolls:    3,
		retryInterval: 400 * time.Millisecond,
		id:            uuid.NewString(),
		picks:         map[int]Pick{},
	}
}

// ConfigureRetryPolling overrides how long RetryWrong waits for the
// server to observe submission. Call before the session starts.
func (o *Orchestrator) ConfigureRetryPolling(polls int, wait time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if polls > 0 {
		o.retryPolls = polls
	}
	if wait > 0 {
		o.retryInterval = wait
	}
}

// Phase returns the current lifecycle phase.
func (o *Orchestrator) Phase() Phase {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.phase
}

// SessionID returns the active session id, 0 before Start succeeds.
func (o *Orchestrator) SessionID() int64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.sessionID
}

// Kind returns the quiz variant being driven.
func (o *Orchestrator) Kind() question.Kind {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.kind
}

// Questions returns the loaded question list.
func (o *Orchestrator) Questions() []question.Question {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]question.Question, len(o.questions))
	copy(out, o.questions)
	return out
}

// Position returns the 1-based cursor, 0 before questions load.
func (o *Orchestrator) Position() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.position
}

// Marks returns the verdict sheet as strings, one per question.
func (o *Orchestrator) Marks() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.progress == nil {
		return nil
	}
	return o.progress.Marks()
}

// Next advances the cursor, stopping at the last question.
func (o *Orchestrator) Next() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.position < len(o.questions) {
		o.position++
	}
	return o.position
}

// JumpTo moves the cursor to pos when in range.
func (o *Orchestrator) JumpTo(pos int) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	if pos >= 1 && pos <= len(o.questions) {
		o.position = pos
	}
	return o.position
}

// Start resolves either an explicit session (resume) or the daily plan
// for (role, date, kind) and creates a session from it. On success the
// phase is PhaseSessionReady, or PhaseSubmitted when resuming a session
// the server already marked submitted.
//
// Resuming a session whose variant differs from opts.Kind returns
// ErrWrongScreen without touching local state: the caller should route
// to the session's own surface.
func (o *Orchestrator) Start(ctx context.Context, opts StartOptions) error {
	o.mu.Lock()
	if o.phase != PhasePlanning {
		o.mu.Unlock()
		return &ErrState{Op: "start", Phase: o.phase, Reason: "already started"}
	}
	o.kind = opts.Kind
	o.mu.Unlock()

	if opts.SessionID != 0 {
		return o.resume(ctx, opts)
	}
	return o.startFromPlan(ctx, opts)
}

func (o *Orchestrator) resume(ctx context.Context, opts StartOptions) error {
	payload, err := o.client.GetSessionSummary(ctx, opts.SessionID)
	if err != nil {
		return err
	}
	obj, ok := api.UnwrapObject(payload)
	if !ok {
		return &question.ShapeError{Want: "session summary object", Got: payload}
	}
	sum, err := question.NormalizeSummary(obj)
	if err != nil {
		return err
	}
	if sum.Kind != question.KindUnknown && opts.Kind != question.KindUnknown && sum.Kind != opts.Kind {
		return &ErrWrongScreen{SessionID: opts.SessionID, Want: opts.Kind, Got: sum.Kind}
	}

	var snap *store.ProgressSnapshot
	if o.snapshots != nil {
		if snap, err = o.snapshots.ForSession(ctx, opts.SessionID); err != nil {
			o.Logf("session %s: snapshot load failed: %v", o.id, err)
			snap = nil
		}
	}

	o.mu.Lock()
	o.sessionID = opts.SessionID
	if sum.Kind != question.KindUnknown {
		o.kind = sum.Kind
	}
	o.setID = sum.SetID
	o.restore = snap
	if sum.Status == question.StatusSubmitted {
		o.phase = PhaseSubmitted
	} else {
		o.phase = PhaseSessionReady
	}
	kind := o.kind
	o.mu.Unlock()

	o.appendSessionEvent(ctx, store.SessionEventData{
		SessionID:    opts.SessionID,
		Action:       "resumed",
		QuestionType: string(kind),
	})
	o.Logf("session %s: resumed session %d (%s, %s)", o.id, opts.SessionID, kind, sum.Status)
	return nil
}

func (o *Orchestrator) startFromPlan(ctx context.Context, opts StartOptions) error {
	pq := api.PlanQuery{Role: opts.Role, Date: opts.Date, Kind: string(opts.Kind)}
	payload, err := o.cache.Resolve(ctx, pq.CacheKey(), func(ctx context.Context) (any, error) {
		return o.client.GetPlan(ctx, pq)
	})
	if err != nil {
		return err
	}
	obj, ok := api.UnwrapObject(payload)
	if !ok {
		return &question.ShapeError{Want: "daily plan object", Got: payload}
	}
	plan, err := question.NormalizePlan(obj)
	if err != nil {
		return err
	}
	if !plan.Exists {
		return &ErrState{Op: "start", Phase: PhasePlanning, Reason: "no plan for " + opts.Date}
	}

	created, err := o.client.CreateSession(ctx, api.CreateSessionRequest{
		Role:        opts.Role,
		Date:        opts.Date,
		Kind:        string(opts.Kind),
		SetID:       plan.SessionSetID,
		QuestionIDs: plan.QuestionIDs,
	})
	if err != nil {
		return err
	}
	cobj, ok := api.UnwrapObject(created)
	if !ok {
		return &question.ShapeError{Want: "created session object", Got: created}
	}
	sum, err := question.NormalizeSummary(cobj)
	if err != nil {
		return err
	}
	if sum.SessionID == 0 {
		return &question.ShapeError{Want: "session id", Got: cobj}
	}

	o.mu.Lock()
	o.sessionID = sum.SessionID
	o.setID = plan.SessionSetID
	if o.setID == 0 {
		o.setID = sum.SetID
	}
	o.phase = PhaseSessionReady
	o.mu.Unlock()

	o.appendSessionEvent(ctx, store.SessionEventData{
		SessionID:     sum.SessionID,
		Action:        "created",
		QuestionType:  string(opts.Kind),
		QuestionCount: plan.QuestionCount,
	})
	o.Logf("session %s: created session %d from plan (set %d, %d questions)", o.id, sum.SessionID, plan.SessionSetID, plan.QuestionCount)
	return nil
}

// Load fetches the session's question list: server items first (order and
// choice ids are authoritative), the candidate resolver for the rich
// question records, and the results report to repair any correctness that
// had to be inferred. A load superseded by a newer one, or cancelled,
// still returns its result but leaves orchestrator state untouched.
func (o *Orchestrator) Load(ctx context.Context) ([]question.Question, error) {
	o.mu.Lock()
	if o.phase != PhaseSessionReady && o.phase != PhaseAnswering {
		o.mu.Unlock()
		return nil, &ErrState{Op: "load", Phase: o.phase, Reason: "no session ready to load"}
	}
	o.loading = true
	o.loadGen++
	gen := o.loadGen
	sid, kind, setID := o.sessionID, o.kind, o.setID
	o.mu.Unlock()

	fail := func(err error) ([]question.Question, error) {
		o.mu.Lock()
		if gen == o.loadGen {
			o.loading = false
		}
		o.mu.Unlock()
		return nil, err
	}

	var items []question.SessionItem
	if payload, err := o.client.GetSessionItems(ctx, sid, true); err != nil {
		if api.IsAuth(err) || ctx.Err() != nil {
			return fail(err)
		}
		o.Logf("session %s: items fetch failed, resolver only: %v", o.id, err)
	} else if list, ok := api.UnwrapList(payload); ok {
		items = question.NormalizeSessionItems(list)
	}

	resolved, err := o.resolver.Questions(ctx, kind, questionCandidates(kind, setID, sid))
	if err != nil {
		return fail(err)
	}

	qs := mergeQuestions(items, resolved)
	if len(qs) == 0 {
		return fail(&ErrState{Op: "load", Phase: PhaseSessionReady, Reason: "no questions from any source"})
	}
	o.repairCorrectness(ctx, sid, qs, items)

	o.mu.Lock()
	defer o.mu.Unlock()
	if gen == o.loadGen {
		o.loading = false
	}
	if gen != o.loadGen || ctx.Err() != nil {
		// A newer load or a cancelled caller: hand back the data but do
		// not mutate shared state.
		return qs, nil
	}
	o.questions = qs
	o.items = items
	o.progress = NewProgress(len(qs))
	o.picks = map[int]Pick{}
	o.position = 1
	if o.restore != nil && len(o.restore.Progress) == len(qs) {
		o.progress = RestoreProgress(o.restore.Progress)
		if o.restore.Position >= 1 && o.restore.Position <= len(qs) {
			o.position = o.restore.Position
		} else if p := o.progress.FirstUnanswered(); p > 0 {
			o.position = p
		}
	}
	o.restore = nil
	if o.phase == PhaseSessionReady {
		o.phase = PhaseAnswering
	}
	o.startedAt = o.now()
	return qs, nil
}

// mergeQuestions aligns resolver output with the server's item order.
// Items missing a rich record fall back to a question built from the item
// itself.
func mergeQuestions(items []question.SessionItem, resolved []question.Question) []question.Question {
	if len(items) == 0 {
		return resolved
	}
	byID := make(map[int64]question.Question, len(resolved))
	for _, q := range resolved {
		byID[q.ID] = q
	}
	out := make([]question.Question, 0, len(items))
	for _, item := range items {
		if q, ok := byID[item.QuestionID]; ok {
			out = append(out, q)
			continue
		}
		out = append(out, question.FromSessionItem(item))
	}
	return out
}

// repairCorrectness overwrites inferred or missing correctness from the
// authoritative results report, when the server can produce one. Failures
// are traced and ignored: inferred correctness is still usable.
func (o *Orchestrator) repairCorrectness(ctx context.Context, sid int64, qs []question.Question, items []question.SessionItem) {
	needs := false
	for _, q := range qs {
		if questionNeedsRepair(q) {
			needs = true
			break
		}
	}
	if !needs {
		return
	}

	payload, err := o.client.GetReport(ctx, sid)
	if err != nil {
		o.Logf("session %s: report unavailable, keeping inferred correctness: %v", o.id, err)
		return
	}
	list, ok := api.UnwrapList(payload)
	if !ok {
		return
	}
	entries := question.NormalizeReport(list)
	byQ := make(map[int64]question.ReportEntry, len(entries))
	for _, e := range entries {
		byQ[e.QuestionID] = e
	}
	choiceIndex := func(qid, choiceID int64) int {
		for _, item := range items {
			if item.QuestionID != qid {
				continue
			}
			for i, c := range item.Choices {
				if c.ID == choiceID {
					return i
				}
			}
		}
		return -1
	}

	for i := range qs {
		if !questionNeedsRepair(qs[i]) {
			continue
		}
		e, ok := byQ[qs[i].ID]
		if !ok || e.CorrectChoiceID == 0 {
			continue
		}
		idx := choiceIndex(qs[i].ID, e.CorrectChoiceID)
		if idx < 0 {
			continue
		}
		switch qs[i].Kind {
		case question.KindOX:
			if idx == 0 {
				qs[i].Correct = question.MarkO
			} else {
				qs[i].Correct = question.MarkX
			}
		case question.KindInitials:
			for _, item := range items {
				if item.QuestionID == qs[i].ID && idx < len(item.Choices) {
					qs[i].CorrectAnswer = item.Choices[idx].Text
				}
			}
		default:
			qs[i].CorrectIndex = idx
		}
		qs[i].Inferred = false
	}
}

func questionNeedsRepair(q question.Question) bool {
	if q.Inferred {
		return true
	}
	switch q.Kind {
	case question.KindOX:
		return q.Correct == question.MarkNone
	case question.KindInitials:
		return q.CorrectAnswer == ""
	default:
		return q.CorrectIndex < 0
	}
}

// Answer grades a pick for the question at pos and records the verdict.
// The first verdict per position wins: answering an already-answered
// position returns the existing verdict and changes nothing.
func (o *Orchestrator) Answer(ctx context.Context, pos int, pick Pick) (question.OXMark, error) {
	o.mu.Lock()
	if o.phase != PhaseAnswering {
		o.mu.Unlock()
		return question.MarkNone, &ErrState{Op: "answer", Phase: o.phase, Reason: "no questions on screen"}
	}
	if pos < 1 || pos > len(o.questions) {
		o.mu.Unlock()
		return question.MarkNone, &ErrState{Op: "answer", Phase: o.phase, Reason: fmt.Sprintf("position %d out of range", pos)}
	}
	if existing := o.progress.At(pos); existing != question.MarkNone {
		o.mu.Unlock()
		return existing, nil
	}

	q := o.questions[pos-1]
	verdict := grade(q, pick)
	o.progress.Set(pos, verdict)
	o.picks[pos] = pick
	if pos == o.position && o.position < len(o.questions) {
		o.position++
	}
	snap := o.snapshotLocked()
	sid, kind := o.sessionID, o.kind
	elapsed := o.now().Sub(o.startedAt)
	o.mu.Unlock()

	o.persistSnapshot(ctx, snap)
	o.appendAnswerEvent(ctx, store.AnswerEventData{
		SessionID:  sid,
		QuestionID: q.ID,
		Position:   pos,
		Picked:     pick.label(kind),
		Verdict:    string(verdict),
		TimeMs:     int(elapsed.Milliseconds()),
	})
	return verdict, nil
}

// grade computes the local verdict for one pick. Unknown correctness
// grades incorrect so the retry flow re-covers the question.
func grade(q question.Question, pick Pick) question.OXMark {
	switch q.Kind {
	case question.KindOX:
		if q.Correct != question.MarkNone && pick.Mark == q.Correct {
			return question.MarkO
		}
	case question.KindInitials:
		if q.CorrectAnswer != "" && foldEqual(pick.Answer, q.CorrectAnswer) {
			return question.MarkO
		}
	default:
		if q.CorrectIndex >= 0 && pick.Index == q.CorrectIndex {
			return question.MarkO
		}
	}
	return question.MarkX
}

func foldEqual(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// Submit sends the full answer set exactly once. Every position must
// resolve to a server-issued choice id; otherwise nothing is sent and
// ErrUnresolvedAnswers lists the failing positions. A submission refused
// by phase (double submit, load in flight) returns ErrState. A transport
// failure returns the orchestrator to PhaseAnswering so the user can try
// again deliberately.
func (o *Orchestrator) Submit(ctx context.Context) (Result, error) {
	o.mu.Lock()
	switch {
	case o.loading:
		o.mu.Unlock()
		return Result{}, &ErrState{Op: "submit", Phase: o.phase, Reason: "question load in flight"}
	case o.phase == PhaseSubmitted:
		o.mu.Unlock()
		return Result{}, &ErrState{Op: "submit", Phase: o.phase, Reason: "already submitted"}
	case o.phase == PhaseSubmitting:
		o.mu.Unlock()
		return Result{}, &ErrState{Op: "submit", Phase: o.phase, Reason: "submission in flight"}
	case o.phase != PhaseAnswering:
		o.mu.Unlock()
		return Result{}, &ErrState{Op: "submit", Phase: o.phase, Reason: "nothing to submit"}
	}

	answers, unresolved := o.resolveAnswersLocked()
	if len(unresolved) > 0 {
		o.mu.Unlock()
		return Result{}, &ErrUnresolvedAnswers{Positions: unresolved}
	}

	o.phase = PhaseSubmitting
	elapsed := o.now().Sub(o.startedAt)
	sub := api.Submission{
		SessionID:  o.sessionID,
		Answers:    answers,
		ElapsedSec: int(elapsed.Seconds()),
	}
	o.mu.Unlock()

	_, err := o.client.Submit(ctx, sub)

	o.mu.Lock()
	if err != nil {
		o.phase = PhaseAnswering
		o.mu.Unlock()
		return Result{}, err
	}
	o.phase = PhaseSubmitted
	correct, _ := o.progress.Counts()
	res := Result{
		SessionID: o.sessionID,
		Correct:   correct,
		Total:     o.progress.Len(),
		Wrong:     o.progress.Wrong(),
		Elapsed:   elapsed,
	}
	snap := o.snapshotLocked()
	kind, count := o.kind, len(o.questions)
	o.mu.Unlock()

	o.persistSnapshot(ctx, snap)
	o.appendSessionEvent(ctx, store.SessionEventData{
		SessionID:     res.SessionID,
		Action:        "submitted",
		QuestionType:  string(kind),
		QuestionCount: count,
		ElapsedSecs:   sub.ElapsedSec,
	})
	o.Logf("session %s: submitted session %d (%d/%d in %s)", o.id, res.SessionID, res.Correct, res.Total, elapsed.Round(time.Second))
	return res, nil
}

// resolveAnswersLocked maps every recorded pick onto server-issued choice
// ids. Unanswered positions and picks that match no choice are reported
// as unresolved.
func (o *Orchestrator) resolveAnswersLocked() ([]api.Answer, []int) {
	answers := make([]api.Answer, 0, len(o.questions))
	var unresolved []int
	for pos := 1; pos <= len(o.questions); pos++ {
		pick, ok := o.picks[pos]
		if !ok {
			unresolved = append(unresolved, pos)
			continue
		}
		var item question.SessionItem
		if pos <= len(o.items) {
			item = o.items[pos-1]
		}
		id := resolveChoiceID(o.questions[pos-1].Kind, item, pick)
		if id == 0 || item.QuestionID == 0 {
			unresolved = append(unresolved, pos)
			continue
		}
		answers = append(answers, api.Answer{QuestionID: item.QuestionID, ChoiceID: id})
	}
	return answers, unresolved
}

// resolveChoiceID finds the server choice id a pick refers to. OX picks
// match a choice whose text spells the mark, falling back to position
// (first choice O, second X) when neither text parses.
func resolveChoiceID(kind question.Kind, item question.SessionItem, pick Pick) int64 {
	switch kind {
	case question.KindOX:
		for _, c := range item.Choices {
			if m, ok := question.ParseOXToken(c.Text); ok && m == pick.Mark {
				return c.ID
			}
		}
		if len(item.Choices) >= 2 {
			if pick.Mark == question.MarkO {
				return item.Choices[0].ID
			}
			if pick.Mark == question.MarkX {
				return item.Choices[1].ID
			}
		}
	case question.KindInitials:
		for _, c := range item.Choices {
			if foldEqual(c.Text, pick.Answer) {
				return c.ID
			}
		}
	default:
		if pick.Index >= 0 && pick.Index < len(item.Choices) {
			return item.Choices[pick.Index].ID
		}
	}
	return 0
}

// RetryWrong asks the server for a fresh session scoped to this session's
// incorrect answers. The server only honors the request after submission,
// so when the local phase is not yet PhaseSubmitted the summary is polled
// a few times before giving up. On success the orchestrator resets to
// PhaseSessionReady on the new session; persisted history of the old one
// is kept.
func (o *Orchestrator) RetryWrong(ctx context.Context) (question.RetryResult, error) {
	o.mu.Lock()
	sid := o.sessionID
	phase := o.phase
	if sid == 0 {
		o.mu.Unlock()
		return question.RetryResult{}, &ErrState{Op: "retry", Phase: phase, Reason: "no session"}
	}
	o.mu.Unlock()

	if phase != PhaseSubmitted {
		if err := o.waitSubmitted(ctx, sid); err != nil {
			return question.RetryResult{}, err
		}
	}

	o.mu.Lock()
	o.phase = PhaseRetryRequested
	o.mu.Unlock()

	payload, err := o.client.RetryWrong(ctx, sid)
	if err != nil {
		o.mu.Lock()
		o.phase = PhaseSubmitted
		o.mu.Unlock()
		return question.RetryResult{}, err
	}
	obj, ok := api.UnwrapObject(payload)
	if !ok {
		o.mu.Lock()
		o.phase = PhaseSubmitted
		o.mu.Unlock()
		return question.RetryResult{}, &question.ShapeError{Want: "retry result object", Got: payload}
	}
	res, err := question.NormalizeRetryResult(obj)
	if err == nil && res.NewSessionID == 0 {
		err = &question.ShapeError{Want: "new session id", Got: obj}
	}
	if err != nil {
		o.mu.Lock()
		o.phase = PhaseSubmitted
		o.mu.Unlock()
		return question.RetryResult{}, err
	}

	o.mu.Lock()
	o.sessionID = res.NewSessionID
	if res.Kind != question.KindUnknown {
		o.kind = res.Kind
	}
	o.setID = 0
	o.questions = nil
	o.items = nil
	o.progress = nil
	o.picks = map[int]Pick{}
	o.position = 0
	o.restore = nil
	o.loadGen++ // invalidate any in-flight load of the old session
	o.loading = false
	o.phase = PhaseSessionReady
	kind := o.kind
	o.mu.Unlock()

	o.appendSessionEvent(ctx, store.SessionEventData{
		SessionID:     res.NewSessionID,
		Action:        "retry",
		QuestionType:  string(kind),
		QuestionCount: res.QuestionCount,
	})
	o.Logf("session %s: retry session %d created from %d (%d questions)", o.id, res.NewSessionID, sid, res.QuestionCount)
	return res, nil
}

// waitSubmitted polls the server summary until it reports submission.
func (o *Orchestrator) waitSubmitted(ctx context.Context, sid int64) error {
	for attempt := 0; attempt < o.retryPolls; attempt++ {
		if attempt > 0 {
			t := time.NewTimer(o.retryInterval)
			select {
			case <-ctx.Done():
				t.Stop()
				return ctx.Err()
			case <-t.C:
			}
		}
		payload, err := o.client.GetSessionSummary(ctx, sid)
		if err != nil {
			if api.IsAuth(err) || ctx.Err() != nil {
				return err
			}
			o.Logf("session %s: summary poll failed: %v", o.id, err)
			continue
		}
		obj, ok := api.UnwrapObject(payload)
		if !ok {
			continue
		}
		sum, err := question.NormalizeSummary(obj)
		if err != nil {
			continue
		}
		if sum.Status == question.StatusSubmitted {
			o.mu.Lock()
			o.phase = PhaseSubmitted
			o.mu.Unlock()
			return nil
		}
	}
	return &ErrState{Op: "retry", Phase: o.Phase(), Reason: "session not submitted"}
}

func (o *Orchestrator) snapshotLocked() *store.ProgressSnapshot {
	if o.progress == nil {
		return nil
	}
	return &store.ProgressSnapshot{
		SessionID:    o.sessionID,
		QuestionType: string(o.kind),
		Progress:     o.progress.Marks(),
		Position:     o.position,
		Submitted:    o.phase == PhaseSubmitted,
	}
}

func (o *Orchestrator) persistSnapshot(ctx context.Context, snap *store.ProgressSnapshot) {
	if o.snapshots == nil || snap == nil {
		return
	}
	if err := o.snapshots.Save(ctx, snap); err != nil {
		o.Logf("session %s: snapshot save failed: %v", o.id, err)
	}
}

func (o *Orchestrator) appendSessionEvent(ctx context.Context, data store.SessionEventData) {
	if o.events == nil {
		return
	}
	if err := o.events.AppendSession(ctx, data); err != nil {
		o.Logf("session %s: event append failed: %v", o.id, err)
	}
}

func (o *Orchestrator) appendAnswerEvent(ctx context.Context, data store.AnswerEventData) {
	if o.events == nil {
		return
	}
	if err := o.events.AppendAnswer(ctx, data); err != nil {
		o.Logf("session %s: event append failed: %v", o.id, err)
	}
}
