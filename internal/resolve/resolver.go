package resolve

import (
	"context"
	"net/url"
	"sort"
	"strings"

	"github.com/studyroom/quizcore/internal/api"
	"github.com/studyroom/quizcore/internal/cache"
	"github.com/studyroom/quizcore/internal/question"
)

// Candidate is one (endpoint, parameters) guess for a logical fetch whose
// exact backend route is not stable across versions.
type Candidate struct {
	Path   string
	Params url.Values
}

// CacheKey encodes the candidate's full identity, parameters in sorted
// order so equivalent candidates share a key.
func (c Candidate) CacheKey() string {
	var b strings.Builder
	b.WriteString("candidate|")
	b.WriteString(c.Path)

	keys := make([]string, 0, len(c.Params))
	for k := range c.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString("|")
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(strings.Join(c.Params[k], ","))
	}
	return b.String()
}

// Getter is the slice of the backend client the resolver needs.
type Getter interface {
	Get(ctx context.Context, path string, params url.Values) (any, error)
}

// Resolver walks a priority-ordered candidate list until one yields a
// usable question list. Raw responses are cached per candidate (through
// the shared request cache), so resolutions retried across component
// remounts reuse prior successful candidates without refetching.
type Resolver struct {
	client Getter
	cache  *cache.Cache

	// Logf receives developer-visible traces for silently skipped
	// candidates. Defaults to a no-op.
	Logf func(format string, args ...any)
}

// New creates a Resolver backed by the given client and cache.
func New(client Getter, c *cache.Cache) *Resolver {
	return &Resolver{
		client: client,
		cache:  c,
		Logf:   func(string, ...any) {},
	}
}

// Questions tries each candidate in order and returns the first non-empty
// normalized list of the wanted kind.
//
// Per candidate: a transport error moves on to the next candidate; a
// non-list or empty response moves on; a list whose kind-filtered subset is
// non-empty is normalized and returned; a non-empty list with no
// recognized entries is normalized unfiltered — an endpoint that omits
// type markers is still the right endpoint. Auth errors abort immediately.
//
// When every candidate is empty or unusable the result is an empty list
// and a nil error: callers treat that as "try a different overall data
// source", not as failure.
func (r *Resolver) Questions(ctx context.Context, want question.Kind, candidates []Candidate) ([]question.Question, error) {
	for _, cand := range candidates {
		payload, err := r.cache.Resolve(ctx, cand.CacheKey(), func(ctx context.Context) (any, error) {
			return r.client.Get(ctx, cand.Path, cand.Params)
		})
		if err != nil {
			if api.IsAuth(err) || ctx.Err() != nil {
				return nil, err
			}
			r.Logf("resolve: candidate %s failed, trying next: %v", cand.Path, err)
			continue
		}

		list, ok := api.UnwrapList(payload)
		if !ok || len(list) == 0 {
			r.Logf("resolve: candidate %s returned no list", cand.Path)
			continue
		}

		matched, anyRecognized := filterKind(list, want)
		if len(matched) > 0 {
			if qs := question.NormalizeMany(matched); len(qs) > 0 {
				return qs, nil
			}
		}

		// An entirely unrecognized list may still be the right endpoint,
		// just without type markers: salvage it unfiltered. A list whose
		// entries were recognized as some other kind is a wrong endpoint
		// and is skipped.
		if !anyRecognized {
			if qs := question.NormalizeMany(list); len(qs) > 0 {
				return qs, nil
			}
		}
		r.Logf("resolve: candidate %s returned %d unusable entries", cand.Path, len(list))
	}

	return []question.Question{}, nil
}

// filterKind keeps the raw entries whose detected kind matches want, and
// reports whether any entry was recognized as any kind at all.
func filterKind(list []any, want question.Kind) ([]any, bool) {
	out := make([]any, 0, len(list))
	recognized := false
	for _, v := range list {
		raw, ok := v.(map[string]any)
		if !ok {
			continue
		}
		k, ok := question.DetectKind(raw)
		if !ok {
			continue
		}
		recognized = true
		if k == want {
			out = append(out, v)
		}
	}
	return out, recognized
}
