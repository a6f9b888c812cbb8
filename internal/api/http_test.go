package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBackend(t *testing.T) (*chi.Mux, *HTTPClient) {
	t.Helper()
	r := chi.NewRouter()
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	c, err := NewHTTPClient(HTTPOptions{BaseURL: srv.URL, Tokens: StaticToken("tok")})
	require.NoError(t, err)
	return r, c
}

func TestHTTPClient_GetPlan(t *testing.T) {
	r, c := newTestBackend(t)
	r.Get("/daily-plans", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "GENERAL", req.URL.Query().Get("role"))
		assert.Equal(t, "Bearer tok", req.Header.Get("Authorization"))
		assert.NotEmpty(t, req.Header.Get("X-Request-ID"))
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"sessionSetId": 5}})
	})

	payload, err := c.GetPlan(context.Background(), PlanQuery{Role: "GENERAL", Date: "2024-01-01", Kind: "OX"})
	require.NoError(t, err)

	obj, ok := UnwrapObject(payload)
	require.True(t, ok)
	assert.EqualValues(t, 5, obj["sessionSetId"])
}

func TestHTTPClient_AuthError(t *testing.T) {
	r, c := newTestBackend(t)
	r.Get("/quiz-sessions/{id}", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.GetSessionSummary(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, IsAuth(err))
}

func TestHTTPClient_TransportError(t *testing.T) {
	r, c := newTestBackend(t)
	r.Get("/quiz-sessions/{id}/items", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.GetSessionItems(context.Background(), 42, false)
	var tr *ErrTransport
	require.ErrorAs(t, err, &tr)
	assert.Equal(t, http.StatusNotFound, tr.Status)
}

func TestHTTPClient_NetworkError(t *testing.T) {
	c, err := NewHTTPClient(HTTPOptions{BaseURL: "http://127.0.0.1:1"})
	require.NoError(t, err)

	_, err = c.Get(context.Background(), "/anything", nil)
	var tr *ErrTransport
	require.ErrorAs(t, err, &tr)
	assert.Zero(t, tr.Status)
}

func TestHTTPClient_SubmitValidation(t *testing.T) {
	_, c := newTestBackend(t)

	// No answers: the contract gate refuses before any request is built.
	_, err := c.Submit(context.Background(), Submission{SessionID: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "contract")
}

func TestHTTPClient_SubmitOK(t *testing.T) {
	r, c := newTestBackend(t)
	var got Submission
	r.Post("/quiz-sessions/{id}/submit", func(w http.ResponseWriter, req *http.Request) {
		require.NoError(t, json.NewDecoder(req.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]any{"ok": true})
	})

	_, err := c.Submit(context.Background(), Submission{
		SessionID:  9,
		Answers:    []Answer{{QuestionID: 1, ChoiceID: 11}},
		ElapsedSec: 30,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 9, got.SessionID)
	require.Len(t, got.Answers, 1)
	assert.EqualValues(t, 11, got.Answers[0].ChoiceID)
}

func TestHTTPClient_EmptyBodyOK(t *testing.T) {
	r, c := newTestBackend(t)
	r.Post("/quiz-sessions/{id}/retry-wrong", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	payload, err := c.RetryWrong(context.Background(), 3)
	require.NoError(t, err)
	assert.Nil(t, payload)
}

func TestUnwrapList(t *testing.T) {
	tests := []struct {
		name    string
		payload any
		wantLen int
		wantOK  bool
	}{
		{"bare array", []any{1.0, 2.0}, 2, true},
		{"data.questions", map[string]any{"data": map[string]any{"questions": []any{1.0}}}, 1, true},
		{"items", map[string]any{"items": []any{1.0, 2.0, 3.0}}, 3, true},
		{"data is array", map[string]any{"data": []any{1.0}}, 1, true},
		{"no list", map[string]any{"foo": "bar"}, 0, false},
		{"scalar", "nope", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, ok := UnwrapList(tt.payload)
			assert.Equal(t, tt.wantOK, ok)
			assert.Len(t, l, tt.wantLen)
		})
	}
}

func TestRetry_TransientThenSuccess(t *testing.T) {
	mock := &MockClient{}
	attempts := 0
	mock.GetSessionSummaryFn = func(ctx context.Context, id int64) (any, error) {
		attempts++
		if attempts < 3 {
			return nil, &ErrTransport{Status: http.StatusBadGateway}
		}
		return map[string]any{"sessionId": float64(id)}, nil
	}

	c := WithRetry(mock, RetryConfig{MaxAttempts: 3, InitialWait: 1, MaxWait: 2, Multiplier: 1})
	payload, err := c.GetSessionSummary(context.Background(), 7)
	require.NoError(t, err)
	assert.NotNil(t, payload)
	assert.Equal(t, 3, attempts)
}

func TestRetry_AuthNotRetried(t *testing.T) {
	mock := &MockClient{}
	mock.GetPlanFn = func(ctx context.Context, q PlanQuery) (any, error) {
		return nil, &ErrAuth{Status: http.StatusUnauthorized}
	}

	c := WithRetry(mock, DefaultRetryConfig())
	_, err := c.GetPlan(context.Background(), PlanQuery{})
	require.Error(t, err)
	assert.True(t, IsAuth(err))
	assert.Equal(t, 1, mock.CallCount("get-plan"))
}

func TestRetry_ClientErrorNotRetried(t *testing.T) {
	mock := &MockClient{}
	mock.GetFn = func(ctx context.Context, path string, _ url.Values) (any, error) {
		return nil, &ErrTransport{Status: http.StatusNotFound, Path: path}
	}

	c := WithRetry(mock, DefaultRetryConfig())
	_, err := c.Get(context.Background(), "/x", nil)
	require.Error(t, err)
	assert.Equal(t, 1, mock.CallCount("get /x"))
}

func TestRetry_SubmitNeverRetried(t *testing.T) {
	mock := &MockClient{}
	mock.SubmitFn = func(ctx context.Context, sub Submission) (any, error) {
		return nil, &ErrTransport{Status: http.StatusBadGateway}
	}

	c := WithRetry(mock, DefaultRetryConfig())
	_, err := c.Submit(context.Background(), Submission{SessionID: 1, Answers: []Answer{{QuestionID: 1, ChoiceID: 1}}})
	require.Error(t, err)
	assert.Equal(t, 1, mock.CallCount("submit"))
}

func TestRetry_ContextCancelled(t *testing.T) {
	mock := &MockClient{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	mock.GetPlanFn = func(ctx context.Context, q PlanQuery) (any, error) {
		return nil, ctx.Err()
	}

	c := WithRetry(mock, DefaultRetryConfig())
	_, err := c.GetPlan(ctx, PlanQuery{})
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 1, mock.CallCount("get-plan"))
}
