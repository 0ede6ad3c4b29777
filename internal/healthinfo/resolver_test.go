package healthinfo

import (
	"context"
	"errors"
	"strings"
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
	return NewResolver(completer, cache.NewMemory(), time.Hour, 30*time.Minute, zap.NewNop())
}

func TestOfflineHealthInfo(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"I have a severe headache", "Types of Headaches"},
		{"my skin is dry and scaly skin all over", "Ichthyosis"},
		{"sudden chest pain when climbing stairs", "Heart Attack Warning Signs"},
		{"persistent cough for two weeks", "Common Respiratory Conditions"},
		{"stomach cramps after eating", "Common Digestive Conditions"},
		{"dealing with anxiety at work", "Common Mental Health Conditions"},
		{"my knee is sore after running", "Types of Pain"},
		{"how do I stay healthy", "General Health Assessment Guidelines"},
	}
	for _, tt := range tests {
		got := OfflineHealthInfo(tt.query)
		if !strings.Contains(got, tt.want) {
			t.Errorf("OfflineHealthInfo(%q) missing %q", tt.query, tt.want)
		}
	}
}

func TestOfflineHealthInfoBlockOrder(t *testing.T) {
	// "headache" also matches the generic pain keywords, but the
	// headache entry is declared first.
	got := OfflineHealthInfo("headache")
	if !strings.Contains(got, "Types of Headaches") {
		t.Fatal("expected headache entry to win over generic pain")
	}
}

func TestResolveUsesModelReply(t *testing.T) {
	reply := "Medical Source (Web Research): " + strings.Repeat("migraine guidance ", 20)
	stub := &stubCompleter{reply: reply}
	r := newTestResolver(stub)

	got := r.Resolve(context.Background(), "migraine triggers")
	if got != reply {
		t.Fatalf("expected model reply, got %q", got)
	}
}

func TestResolveCachesModelReply(t *testing.T) {
	reply := "Medical Source (Web Research): " + strings.Repeat("x", 200)
	stub := &stubCompleter{reply: reply}
	r := newTestResolver(stub)

	r.Resolve(context.Background(), "Migraine Triggers")
	r.Resolve(context.Background(), "migraine   triggers")
	if stub.calls != 1 {
		t.Fatalf("expected 1 model call, got %d", stub.calls)
	}
}

func TestResolveFallsBackOnShortReply(t *testing.T) {
	stub := &stubCompleter{reply: "I cannot help with that."}
	r := newTestResolver(stub)

	got := r.Resolve(context.Background(), "I have a severe headache")
	if !strings.Contains(got, "Types of Headaches") {
		t.Fatalf("expected offline headache info, got %q", got)
	}
}

func TestResolveFallsBackOnError(t *testing.T) {
	stub := &stubCompleter{err: errors.New("model down")}
	r := newTestResolver(stub)

	got := r.Resolve(context.Background(), "random wellness question")
	if got == "" {
		t.Fatal("expected non-empty fallback")
	}
	if !strings.Contains(got, "Offline Medical Database") {
		t.Fatalf("expected offline database text, got %q", got[:80])
	}
}
