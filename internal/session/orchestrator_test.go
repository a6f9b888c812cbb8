package session

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/studyroom/quizcore/internal/api"
	"github.com/studyroom/quizcore/internal/cache"
	"github.com/studyroom/quizcore/internal/question"
)

// newOXBackend fakes a backend holding one OX session of three questions
// (correct answers O, X, O) behind the usual endpoint shapes.
func newOXBackend() *api.MockClient {
	items := []any{
		map[string]any{
			"questionId": 101, "questionText": "The sky is blue.",
			"choices": []any{
				map[string]any{"choiceId": 11, "choiceText": "O"},
				map[string]any{"choiceId": 12, "choiceText": "X"},
			},
		},
		map[string]any{
			"questionId": 102, "questionText": "2+2 equals 5.",
			"choices": []any{
				map[string]any{"choiceId": 21, "choiceText": "O"},
				map[string]any{"choiceId": 22, "choiceText": "X"},
			},
		},
		map[string]any{
			"questionId": 103, "questionText": "Water boils at 100C.",
			"choices": []any{
				map[string]any{"choiceId": 31, "choiceText": "O"},
				map[string]any{"choiceId": 32, "choiceText": "X"},
			},
		},
	}
	questions := []any{
		map[string]any{"questionId": 101, "questionType": "OX", "questionText": "The sky is blue.", "answer": "O"},
		map[string]any{"questionId": 102, "questionType": "OX", "questionText": "2+2 equals 5.", "answer": "X"},
		map[string]any{"questionId": 103, "questionType": "OX", "questionText": "Water boils at 100C.", "answer": "O"},
	}

	return &api.MockClient{
		GetPlanFn: func(ctx context.Context, q api.PlanQuery) (any, error) {
			return map[string]any{"date": q.Date, "part": "OX", "sessionSetId": 9, "questionCount": 3}, nil
		},
		CreateSessionFn: func(ctx context.Context, req api.CreateSessionRequest) (any, error) {
			return map[string]any{"sessionId": 500, "questionType": "OX"}, nil
		},
		GetSessionSummaryFn: func(ctx context.Context, sessionID int64) (any, error) {
			return map[string]any{"sessionId": sessionID, "questionType": "OX", "status": "CREATED", "sessionSetId": 9}, nil
		},
		GetSessionItemsFn: func(ctx context.Context, sessionID int64, withAnswers bool) (any, error) {
			return items, nil
		},
		GetFn: func(ctx context.Context, path string, params url.Values) (any, error) {
			if path == "/quiz-sets/9/questions" {
				return questions, nil
			}
			return nil, &api.ErrTransport{Status: 404, Path: path}
		},
		RetryWrongFn: func(ctx context.Context, sessionID int64) (any, error) {
			return map[string]any{"newSessionId": 600, "questionType": "OX", "questionCount": 2}, nil
		},
	}
}

func newTestOrchestrator(mock *api.MockClient) *Orchestrator {
	o := New(mock, cache.New(time.Minute), nil, nil)
	o.retryInterval = time.Millisecond
	return o
}

func startedOX(t *testing.T, mock *api.MockClient) *Orchestrator {
	t.Helper()
	o := newTestOrchestrator(mock)
	if err := o.Start(context.Background(), StartOptions{Role: "STUDENT", Date: "2026-03-02", Kind: question.KindOX}); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := o.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return o
}

func TestStart_CreatesSessionFromPlan(t *testing.T) {
	mock := newOXBackend()
	o := newTestOrchestrator(mock)

	err := o.Start(context.Background(), StartOptions{Role: "STUDENT", Date: "2026-03-02", Kind: question.KindOX})
	if err != nil {
		t.Fatal(err)
	}
	if got := o.Phase(); got != PhaseSessionReady {
		t.Errorf("phase = %s, want SESSION_READY", got)
	}
	if got := o.SessionID(); got != 500 {
		t.Errorf("session id = %d, want 500", got)
	}
	if n := mock.CallCount("create-session"); n != 1 {
		t.Errorf("create-session called %d times", n)
	}
}

func TestStart_NoPlanForDate(t *testing.T) {
	mock := newOXBackend()
	mock.GetPlanFn = func(ctx context.Context, q api.PlanQuery) (any, error) {
		return map[string]any{"date": q.Date, "exists": false}, nil
	}
	o := newTestOrchestrator(mock)

	err := o.Start(context.Background(), StartOptions{Role: "STUDENT", Date: "2026-03-01", Kind: question.KindOX})
	var se *ErrState
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want ErrState", err)
	}
	if got := o.Phase(); got != PhasePlanning {
		t.Errorf("phase = %s, want PLANNING", got)
	}
	if n := mock.CallCount("create-session"); n != 0 {
		t.Errorf("create-session called %d times on a missing plan", n)
	}
}

func TestStart_ResumeWrongVariant(t *testing.T) {
	mock := newOXBackend()
	mock.GetSessionSummaryFn = func(ctx context.Context, sessionID int64) (any, error) {
		return map[string]any{"sessionId": sessionID, "questionType": "CHOICE", "status": "CREATED"}, nil
	}
	o := newTestOrchestrator(mock)

	err := o.Start(context.Background(), StartOptions{SessionID: 77, Kind: question.KindOX})
	var ws *ErrWrongScreen
	if !errors.As(err, &ws) {
		t.Fatalf("err = %v, want ErrWrongScreen", err)
	}
	if ws.Got != question.KindChoice || ws.SessionID != 77 {
		t.Errorf("ErrWrongScreen = %+v", ws)
	}
	if got := o.SessionID(); got != 0 {
		t.Errorf("session id mutated to %d on redirect", got)
	}
}

func TestPlayThrough_OX(t *testing.T) {
	mock := newOXBackend()
	o := startedOX(t, mock)
	ctx := context.Background()

	qs := o.Questions()
	if len(qs) != 3 {
		t.Fatalf("loaded %d questions, want 3", len(qs))
	}
	if qs[1].Correct != question.MarkX {
		t.Errorf("question 2 correct = %q, want X", qs[1].Correct)
	}

	// User answers O, O, X against correct O, X, O.
	picks := []Pick{{Mark: question.MarkO}, {Mark: question.MarkO}, {Mark: question.MarkX}}
	wantVerdicts := []question.OXMark{question.MarkO, question.MarkX, question.MarkX}
	for i, p := range picks {
		v, err := o.Answer(ctx, i+1, p)
		if err != nil {
			t.Fatalf("answer %d: %v", i+1, err)
		}
		if v != wantVerdicts[i] {
			t.Errorf("verdict %d = %q, want %q", i+1, v, wantVerdicts[i])
		}
	}

	res, err := o.Submit(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if res.Correct != 1 || res.Total != 3 {
		t.Errorf("result = %d/%d, want 1/3", res.Correct, res.Total)
	}
	if len(res.Wrong) != 2 || res.Wrong[0] != 2 || res.Wrong[1] != 3 {
		t.Errorf("wrong positions = %v, want [2 3]", res.Wrong)
	}

	if len(mock.Submissions) != 1 {
		t.Fatalf("server saw %d submissions, want 1", len(mock.Submissions))
	}
	sub := mock.Submissions[0]
	if sub.SessionID != 500 || len(sub.Answers) != 3 {
		t.Fatalf("submission = %+v", sub)
	}
	wantChoices := map[int64]int64{101: 11, 102: 21, 103: 32}
	for _, a := range sub.Answers {
		if wantChoices[a.QuestionID] != a.ChoiceID {
			t.Errorf("question %d submitted choice %d, want %d", a.QuestionID, a.ChoiceID, wantChoices[a.QuestionID])
		}
	}

	// Retry the two wrong ones.
	retry, err := o.RetryWrong(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if retry.NewSessionID != 600 || retry.QuestionCount != 2 {
		t.Errorf("retry = %+v", retry)
	}
	if got := o.Phase(); got != PhaseSessionReady {
		t.Errorf("phase after retry = %s, want SESSION_READY", got)
	}
	if got := o.SessionID(); got != 600 {
		t.Errorf("session id after retry = %d, want 600", got)
	}
	if marks := o.Marks(); marks != nil {
		t.Errorf("progress not reset after retry: %v", marks)
	}
}

func TestAnswer_FirstWriteWins(t *testing.T) {
	mock := newOXBackend()
	o := startedOX(t, mock)
	ctx := context.Background()

	first, err := o.Answer(ctx, 1, Pick{Mark: question.MarkX})
	if err != nil {
		t.Fatal(err)
	}
	if first != question.MarkX {
		t.Fatalf("first verdict = %q, want X", first)
	}

	// The second write must not flip the verdict.
	second, err := o.Answer(ctx, 1, Pick{Mark: question.MarkO})
	if err != nil {
		t.Fatal(err)
	}
	if second != question.MarkX {
		t.Errorf("second verdict = %q, want the original X", second)
	}
	if marks := o.Marks(); marks[0] != "X" {
		t.Errorf("marks = %v", marks)
	}
}

func TestSubmit_AllOrNothing(t *testing.T) {
	mock := newOXBackend()
	o := startedOX(t, mock)
	ctx := context.Background()

	// Two of three answered.
	if _, err := o.Answer(ctx, 1, Pick{Mark: question.MarkO}); err != nil {
		t.Fatal(err)
	}
	if _, err := o.Answer(ctx, 2, Pick{Mark: question.MarkX}); err != nil {
		t.Fatal(err)
	}

	_, err := o.Submit(ctx)
	var ua *ErrUnresolvedAnswers
	if !errors.As(err, &ua) {
		t.Fatalf("err = %v, want ErrUnresolvedAnswers", err)
	}
	if len(ua.Positions) != 1 || ua.Positions[0] != 3 {
		t.Errorf("unresolved positions = %v, want [3]", ua.Positions)
	}
	if n := mock.CallCount("submit"); n != 0 {
		t.Errorf("server saw %d submissions, want 0", n)
	}
	if got := o.Phase(); got != PhaseAnswering {
		t.Errorf("phase = %s, want ANSWERING", got)
	}
}

func TestSubmit_DoubleRefused(t *testing.T) {
	mock := newOXBackend()
	o := startedOX(t, mock)
	ctx := context.Background()

	for pos := 1; pos <= 3; pos++ {
		if _, err := o.Answer(ctx, pos, Pick{Mark: question.MarkO}); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := o.Submit(ctx); err != nil {
		t.Fatal(err)
	}

	_, err := o.Submit(ctx)
	var se *ErrState
	if !errors.As(err, &se) {
		t.Fatalf("second submit err = %v, want ErrState", err)
	}
	if n := mock.CallCount("submit"); n != 1 {
		t.Errorf("server saw %d submissions, want 1", n)
	}
}

func TestSubmit_RefusedWhileLoading(t *testing.T) {
	mock := newOXBackend()
	o := startedOX(t, mock)
	ctx := context.Background()

	for pos := 1; pos <= 3; pos++ {
		if _, err := o.Answer(ctx, pos, Pick{Mark: question.MarkO}); err != nil {
			t.Fatal(err)
		}
	}

	// Block a reload mid-fetch, then try to submit.
	release := make(chan struct{})
	entered := make(chan struct{})
	mock.GetSessionItemsFn = func(ctx context.Context, sessionID int64, withAnswers bool) (any, error) {
		close(entered)
		<-release
		return nil, &api.ErrTransport{Status: 503, Path: "/items"}
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		o.Load(ctx)
	}()
	<-entered

	_, err := o.Submit(ctx)
	var se *ErrState
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want ErrState", err)
	}
	if n := mock.CallCount("submit"); n != 0 {
		t.Errorf("server saw %d submissions during load, want 0", n)
	}

	close(release)
	<-done
}

func TestSubmit_TransportFailureAllowsRetry(t *testing.T) {
	mock := newOXBackend()
	fails := 1
	mock.SubmitFn = func(ctx context.Context, sub api.Submission) (any, error) {
		if fails > 0 {
			fails--
			return nil, &api.ErrTransport{Status: 502, Path: "/submit"}
		}
		return map[string]any{}, nil
	}
	o := startedOX(t, mock)
	ctx := context.Background()

	for pos := 1; pos <= 3; pos++ {
		if _, err := o.Answer(ctx, pos, Pick{Mark: question.MarkO}); err != nil {
			t.Fatal(err)
		}
	}

	if _, err := o.Submit(ctx); err == nil {
		t.Fatal("expected transport error")
	}
	if got := o.Phase(); got != PhaseAnswering {
		t.Fatalf("phase after failed submit = %s, want ANSWERING", got)
	}

	if _, err := o.Submit(ctx); err != nil {
		t.Fatalf("deliberate second attempt: %v", err)
	}
	if got := o.Phase(); got != PhaseSubmitted {
		t.Errorf("phase = %s, want SUBMITTED", got)
	}
}

func TestRetryWrong_PollsUntilSubmitted(t *testing.T) {
	mock := newOXBackend()
	polls := 0
	mock.GetSessionSummaryFn = func(ctx context.Context, sessionID int64) (any, error) {
		polls++
		status := "CREATED"
		if polls >= 3 {
			status = "SUBMITTED"
		}
		return map[string]any{"sessionId": sessionID, "questionType": "OX", "status": status}, nil
	}
	o := newTestOrchestrator(mock)

	// Resume a session the server has not yet marked submitted.
	if err := o.Start(context.Background(), StartOptions{SessionID: 500, Kind: question.KindOX}); err != nil {
		t.Fatal(err)
	}
	if got := o.Phase(); got != PhaseSessionReady {
		t.Fatalf("phase = %s, want SESSION_READY", got)
	}

	retry, err := o.RetryWrong(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if retry.NewSessionID != 600 {
		t.Errorf("retry session = %d, want 600", retry.NewSessionID)
	}
	if polls < 3 {
		t.Errorf("summary polled %d times, want at least 3", polls)
	}
}

func TestRetryWrong_NeverSubmittedGivesUp(t *testing.T) {
	mock := newOXBackend()
	o := newTestOrchestrator(mock)
	if err := o.Start(context.Background(), StartOptions{SessionID: 500, Kind: question.KindOX}); err != nil {
		t.Fatal(err)
	}

	_, err := o.RetryWrong(context.Background())
	var se *ErrState
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want ErrState", err)
	}
	if n := mock.CallCount("retry-wrong"); n != 0 {
		t.Errorf("retry-wrong called %d times on an unsubmitted session", n)
	}
}

func TestLoad_FallsBackToSessionItems(t *testing.T) {
	mock := newOXBackend()
	mock.GetFn = func(ctx context.Context, path string, params url.Values) (any, error) {
		return nil, &api.ErrTransport{Status: 404, Path: path}
	}
	o := startedOX(t, mock)

	qs := o.Questions()
	if len(qs) != 3 {
		t.Fatalf("loaded %d questions, want 3", len(qs))
	}
	// Built from items alone: two O/X choices make it an OX question.
	if qs[0].Kind != question.KindOX {
		t.Errorf("kind = %q, want OX", qs[0].Kind)
	}
	if qs[0].Text != "The sky is blue." {
		t.Errorf("text = %q", qs[0].Text)
	}
}

func TestLoad_RepairsInferredCorrectness(t *testing.T) {
	mock := newOXBackend()
	// Rich records without any answer marker: correctness gets inferred.
	mock.GetFn = func(ctx context.Context, path string, params url.Values) (any, error) {
		if path != "/quiz-sets/9/questions" {
			return nil, &api.ErrTransport{Status: 404, Path: path}
		}
		return []any{
			map[string]any{"questionId": 101, "questionType": "OX", "questionText": "The sky is blue.",
				"choices": []any{"O", "X"}},
			map[string]any{"questionId": 102, "questionType": "OX", "questionText": "2+2 equals 5.",
				"choices": []any{"O", "X"}},
			map[string]any{"questionId": 103, "questionType": "OX", "questionText": "Water boils at 100C.",
				"choices": []any{"O", "X"}},
		}, nil
	}
	// The report knows question 102's real answer is its X choice (id 22).
	mock.GetReportFn = func(ctx context.Context, sessionID int64) (any, error) {
		return []any{
			map[string]any{"questionId": 101, "correctChoiceId": 11},
			map[string]any{"questionId": 102, "correctChoiceId": 22},
			map[string]any{"questionId": 103, "correctChoiceId": 31},
		}, nil
	}
	o := startedOX(t, mock)

	qs := o.Questions()
	if qs[1].Correct != question.MarkX {
		t.Errorf("question 102 correct = %q, want X after repair", qs[1].Correct)
	}
	if qs[1].Inferred {
		t.Error("question 102 still flagged inferred after repair")
	}
	if n := mock.CallCount("report"); n != 1 {
		t.Errorf("report fetched %d times, want 1", n)
	}
}

func TestLoad_SupersededLoadDoesNotMutate(t *testing.T) {
	mock := newOXBackend()
	o := startedOX(t, mock)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := o.Load(ctx); err == nil {
		// A cancelled load may still return data from cache; either way
		// the orchestrator must stay usable.
		_ = err
	}
	if got := o.Phase(); got != PhaseAnswering {
		t.Errorf("phase = %s, want ANSWERING", got)
	}
	if _, err := o.Submit(context.Background()); err == nil {
		t.Fatal("expected unresolved-answer refusal, not a loading deadlock")
	} else {
		var se *ErrState
		if errors.As(err, &se) && se.Reason == "question load in flight" {
			t.Error("loading flag stuck after cancelled load")
		}
	}
}
