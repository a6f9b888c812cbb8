package resolve

import (
	"context"
	"net/http"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyroom/quizcore/internal/api"
	"github.com/studyroom/quizcore/internal/cache"
	"github.com/studyroom/quizcore/internal/question"
)

type getterFunc func(ctx context.Context, path string, params url.Values) (any, error)

func (f getterFunc) Get(ctx context.Context, path string, params url.Values) (any, error) {
	return f(ctx, path, params)
}

func oxRaw(id int64, answer string) map[string]any {
	return map[string]any{
		"questionId":   float64(id),
		"questionText": "statement",
		"questionType": "OX",
		"answer":       answer,
	}
}

func TestQuestions_FallbackThroughCandidates(t *testing.T) {
	byPath := map[string]any{
		"/a": []any{},
		"/b": map[string]any{"data": map[string]any{"questions": []any{}}},
		"/c": []any{oxRaw(1, "O"), oxRaw(2, "X")},
	}
	getter := getterFunc(func(_ context.Context, path string, _ url.Values) (any, error) {
		return byPath[path], nil
	})

	r := New(getter, cache.New(time.Minute))
	qs, err := r.Questions(context.Background(), question.KindOX,
		[]Candidate{{Path: "/a"}, {Path: "/b"}, {Path: "/c"}})

	require.NoError(t, err)
	require.Len(t, qs, 2)
	assert.Equal(t, question.MarkO, qs[0].Correct)
	assert.Equal(t, question.MarkX, qs[1].Correct)
}

func TestQuestions_TransportErrorMovesOn(t *testing.T) {
	getter := getterFunc(func(_ context.Context, path string, _ url.Values) (any, error) {
		if path == "/broken" {
			return nil, &api.ErrTransport{Status: http.StatusNotFound, Path: path}
		}
		return []any{oxRaw(1, "O")}, nil
	})

	r := New(getter, cache.New(time.Minute))
	qs, err := r.Questions(context.Background(), question.KindOX,
		[]Candidate{{Path: "/broken"}, {Path: "/ok"}})

	require.NoError(t, err)
	assert.Len(t, qs, 1)
}

func TestQuestions_AuthAborts(t *testing.T) {
	calls := 0
	getter := getterFunc(func(_ context.Context, path string, _ url.Values) (any, error) {
		calls++
		return nil, &api.ErrAuth{Status: http.StatusUnauthorized, Path: path}
	})

	r := New(getter, cache.New(time.Minute))
	_, err := r.Questions(context.Background(), question.KindOX,
		[]Candidate{{Path: "/a"}, {Path: "/b"}})

	require.Error(t, err)
	assert.True(t, api.IsAuth(err))
	assert.Equal(t, 1, calls, "auth failure must not fall through to the next candidate")
}

func TestQuestions_UnmarkedListSalvaged(t *testing.T) {
	// Correct endpoint, but the entries carry no type markers and more
	// than two choices, so nothing passes the kind filter.
	unmarked := []any{
		map[string]any{"questionId": float64(1), "text": "q1", "choices": []any{"a", "b", "c", "d"}},
	}
	getter := getterFunc(func(_ context.Context, _ string, _ url.Values) (any, error) {
		return unmarked, nil
	})

	r := New(getter, cache.New(time.Minute))
	qs, err := r.Questions(context.Background(), question.KindOX, []Candidate{{Path: "/set"}})

	require.NoError(t, err)
	require.Len(t, qs, 1, "unrecognized list should be normalized unfiltered")
}

func TestQuestions_WrongKindSkipped(t *testing.T) {
	choiceOnly := []any{
		map[string]any{"questionId": float64(1), "questionType": "CHOICE", "choices": []any{"a", "b", "c", "d"}},
	}
	getter := getterFunc(func(_ context.Context, path string, _ url.Values) (any, error) {
		if path == "/choice-set" {
			return choiceOnly, nil
		}
		return []any{oxRaw(5, "X")}, nil
	})

	r := New(getter, cache.New(time.Minute))
	qs, err := r.Questions(context.Background(), question.KindOX,
		[]Candidate{{Path: "/choice-set"}, {Path: "/ox-set"}})

	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.EqualValues(t, 5, qs[0].ID)
}

func TestQuestions_AllDryReturnsEmpty(t *testing.T) {
	getter := getterFunc(func(_ context.Context, _ string, _ url.Values) (any, error) {
		return nil, &api.ErrTransport{Status: http.StatusInternalServerError}
	})

	r := New(getter, cache.New(time.Minute))
	qs, err := r.Questions(context.Background(), question.KindOX,
		[]Candidate{{Path: "/a"}, {Path: "/b"}, {Path: "/c"}})

	require.NoError(t, err, "exhausted candidates are not a hard failure")
	assert.Empty(t, qs)
}

func TestQuestions_CandidateCachedAcrossResolutions(t *testing.T) {
	var fetches atomic.Int32
	getter := getterFunc(func(_ context.Context, _ string, _ url.Values) (any, error) {
		fetches.Add(1)
		return []any{oxRaw(1, "O")}, nil
	})

	r := New(getter, cache.New(time.Minute))
	cands := []Candidate{{Path: "/set", Params: url.Values{"setId": {"9"}}}}

	for i := 0; i < 3; i++ {
		qs, err := r.Questions(context.Background(), question.KindOX, cands)
		require.NoError(t, err)
		require.Len(t, qs, 1)
	}
	assert.EqualValues(t, 1, fetches.Load(), "remounted resolutions must reuse the cached candidate")
}

func TestCandidate_CacheKeyStable(t *testing.T) {
	a := Candidate{Path: "/x", Params: url.Values{"b": {"2"}, "a": {"1"}}}
	b := Candidate{Path: "/x", Params: url.Values{"a": {"1"}, "b": {"2"}}}
	assert.Equal(t, a.CacheKey(), b.CacheKey())

	c := Candidate{Path: "/x", Params: url.Values{"a": {"9"}}}
	assert.NotEqual(t, a.CacheKey(), c.CacheKey())
}
