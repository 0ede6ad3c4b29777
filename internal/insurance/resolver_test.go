package insurance

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/dubai-health/concierge/internal/llm"
	"github.com/dubai-health/concierge/internal/shared/cache"
)

type stubCompleter struct {
	reply string
	err   error
	calls int
}

func (s *stubCompleter) Complete(_ context.Context, _ string, _ llm.Request) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func newTestResolver(completer llm.Completer) *Resolver {
	return NewResolver(completer, cache.NewMemory(), time.Hour, zap.NewNop())
}

func planNames(plans []Plan) []string {
	names := make([]string, len(plans))
	for i, p := range plans {
		names[i] = p.PlanName
	}
	return names
}

func TestResolveEmptyKeywordsReturnsCatalog(t *testing.T) {
	stub := &stubCompleter{reply: "[]"}
	r := newTestResolver(stub)

	plans := r.Resolve(context.Background(), nil, false)
	if len(plans) != 6 {
		t.Fatalf("expected full catalog of 6 plans, got %d", len(plans))
	}
	if stub.calls != 0 {
		t.Fatalf("expected no model calls for empty keywords, got %d", stub.calls)
	}
	if plans[0].PlanName != "Essential Health Plan" || plans[5].PlanName != "Young Professional Plan" {
		t.Fatalf("catalog order wrong: %v", planNames(plans))
	}
}

func TestResolveModelSearch(t *testing.T) {
	stub := &stubCompleter{reply: `[
		{"planName": "Dental Shield", "provider": "AXA Gulf", "premium": 600, "benefits": ["Dental surgery", "Orthodontics"]},
		{"planName": "Incomplete", "provider": "", "premium": 100, "benefits": ["Dental"]},
		{"planName": "No Benefits", "provider": "Oman Insurance", "premium": 200, "benefits": []},
		{"planName": "Smile Care", "provider": "Daman", "premium": "1,200 AED", "benefits": ["Dental checkups"]}
	]`}
	r := newTestResolver(stub)

	plans := r.Resolve(context.Background(), []string{"dental-care"}, false)
	if len(plans) != 2 {
		t.Fatalf("expected 2 valid plans, got %v", planNames(plans))
	}
	if plans[0].PlanName != "Dental Shield" || plans[1].PlanName != "Smile Care" {
		t.Fatalf("unexpected plans: %v", planNames(plans))
	}
	if plans[1].Premium != 1200 {
		t.Fatalf("expected string premium coerced to 1200, got %v", plans[1].Premium)
	}
}

func TestResolveCapsModelResults(t *testing.T) {
	stub := &stubCompleter{reply: `[
		{"planName": "A", "provider": "P", "premium": 1, "benefits": ["x"]},
		{"planName": "B", "provider": "P", "premium": 2, "benefits": ["x"]},
		{"planName": "C", "provider": "P", "premium": 3, "benefits": ["x"]},
		{"planName": "D", "provider": "P", "premium": 4, "benefits": ["x"]}
	]`}
	r := newTestResolver(stub)

	plans := r.Resolve(context.Background(), []string{"general"}, false)
	if len(plans) != maxSearchResults {
		t.Fatalf("expected %d plans, got %d", maxSearchResults, len(plans))
	}
}

func TestResolveCachesSearchResults(t *testing.T) {
	stub := &stubCompleter{reply: `[{"planName": "Cached Plan", "provider": "P", "premium": 500, "benefits": ["Cardiology"]}]`}
	r := newTestResolver(stub)

	first := r.Resolve(context.Background(), []string{"cardiology"}, false)
	second := r.Resolve(context.Background(), []string{"cardiology"}, false)
	if stub.calls != 1 {
		t.Fatalf("expected 1 model call, got %d", stub.calls)
	}
	if len(first) != 1 || len(second) != 1 || second[0].PlanName != "Cached Plan" {
		t.Fatalf("cached result mismatch: %v vs %v", planNames(first), planNames(second))
	}
}

func TestResolveWrappedObjectReply(t *testing.T) {
	stub := &stubCompleter{reply: `{"plans": [{"planName": "Wrapped", "provider": "P", "premium": 300, "benefits": ["Vision"]}]}`}
	r := newTestResolver(stub)

	plans := r.Resolve(context.Background(), []string{"vision"}, false)
	if len(plans) != 1 || plans[0].PlanName != "Wrapped" {
		t.Fatalf("expected wrapped plan parsed, got %v", planNames(plans))
	}
}

func TestResolveFiltersCatalogOnSearchFailure(t *testing.T) {
	stub := &stubCompleter{err: errors.New("model down")}
	r := newTestResolver(stub)

	plans := r.Resolve(context.Background(), []string{"dental"}, false)
	if len(plans) != 1 || plans[0].PlanName != "Comprehensive Care Plus" {
		t.Fatalf("expected dental filter to keep Comprehensive Care Plus, got %v", planNames(plans))
	}

	plans = r.Resolve(context.Background(), []string{"mental-health"}, false)
	if len(plans) != 3 {
		t.Fatalf("expected 3 mental health plans, got %v", planNames(plans))
	}
}

func TestResolveNeverEmpty(t *testing.T) {
	stub := &stubCompleter{err: errors.New("model down")}
	r := newTestResolver(stub)

	plans := r.Resolve(context.Background(), []string{"quantum-telepathy-coverage"}, false)
	if len(plans) != 6 {
		t.Fatalf("expected full catalog when nothing matches, got %d", len(plans))
	}
}

func TestResolveEmergencyAugmentsSearch(t *testing.T) {
	stub := &stubCompleter{reply: "[]"}
	r := newTestResolver(stub)

	plans := r.Resolve(context.Background(), []string{"trauma"}, true)
	if stub.calls != 1 {
		t.Fatalf("expected model search attempt, got %d calls", stub.calls)
	}
	if len(plans) == 0 {
		t.Fatal("expected fallback plans for emergency query")
	}
}
