package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/dubai-health/concierge/internal/facility"
	"github.com/dubai-health/concierge/internal/healthinfo"
	"github.com/dubai-health/concierge/internal/insurance"
	"github.com/dubai-health/concierge/internal/intent"
	"github.com/dubai-health/concierge/internal/llm"
	"github.com/dubai-health/concierge/internal/shared/cache"
	"github.com/dubai-health/concierge/internal/synthesis"
)

// failingCompleter drives every stage down its fallback path.
type failingCompleter struct{}

func (failingCompleter) Complete(context.Context, string, llm.Request) (string, error) {
	return "", errors.New("model unavailable")
}

func newTestHandler() *Handler {
	logger := zap.NewNop()
	completer := failingCompleter{}
	store := cache.NewMemory()

	orch := NewOrchestrator(
		intent.NewClassifier(completer, logger),
		facility.NewResolver(completer, nil, store, time.Hour, logger),
		insurance.NewResolver(completer, store, time.Hour, logger),
		healthinfo.NewResolver(completer, store, time.Hour, 30*time.Minute, logger),
		synthesis.NewSynthesizer(completer, logger),
		logger,
	)
	return NewHandler(orch, logger)
}

func postJSON(t *testing.T, handler http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

type frame struct {
	Type                string                       `json:"type"`
	Step                string                       `json:"step"`
	Message             string                       `json:"message"`
	Response            string                       `json:"response"`
	EmergencyFacilities []facility.EmergencyFacility `json:"emergencyFacilities"`
	RegularFacilities   []facility.EmergencyFacility `json:"regularFacilities"`
	Pricing             []facility.Procedure         `json:"pricing"`
	InsurancePlans      []insurance.Plan             `json:"insurancePlans"`
	IsEmergency         bool                         `json:"isEmergency"`
	Specialty           string                       `json:"specialty"`
}

func parseFrames(t *testing.T, body string) []frame {
	t.Helper()
	var frames []frame
	for _, chunk := range strings.Split(body, "\n\n") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		if !strings.HasPrefix(chunk, "data: ") {
			t.Fatalf("malformed chunk: %q", chunk)
		}
		var f frame
		if err := json.Unmarshal([]byte(strings.TrimPrefix(chunk, "data: ")), &f); err != nil {
			t.Fatalf("frame decode: %v", err)
		}
		frames = append(frames, f)
	}
	return frames
}

func TestStreamEmptyMessage(t *testing.T) {
	h := newTestHandler()
	rr := postJSON(t, h.Routes(), "/stream", `{"message": ""}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if got := strings.TrimSpace(rr.Body.String()); got != "Message is required" {
		t.Fatalf("expected plain-text error, got %q", got)
	}
}

func TestStreamExactlyOneTerminalFrame(t *testing.T) {
	h := newTestHandler()
	rr := postJSON(t, h.Routes(), "/stream", `{"message": "I have a headache"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("expected SSE content type, got %q", ct)
	}

	frames := parseFrames(t, rr.Body.String())
	terminals := 0
	for _, f := range frames {
		if f.Type == "complete" || f.Type == "error" {
			terminals++
		}
	}
	if terminals != 1 {
		t.Fatalf("expected exactly 1 terminal frame, got %d", terminals)
	}
	last := frames[len(frames)-1]
	if last.Type != "complete" {
		t.Fatalf("expected terminal complete frame, got %q", last.Type)
	}
	if last.Response == "" {
		t.Fatal("expected non-empty response")
	}
	if len(last.InsurancePlans) == 0 {
		t.Fatal("expected insurance plans in complete frame")
	}
}

func TestStreamProgressSteps(t *testing.T) {
	h := newTestHandler()
	rr := postJSON(t, h.Routes(), "/stream", `{"message": "how much is a dental cleaning"}`)

	frames := parseFrames(t, rr.Body.String())
	var steps []string
	for _, f := range frames {
		if f.Type == "progress" {
			steps = append(steps, f.Step)
		}
	}
	want := []string{"intent_analysis", "intent_complete", "data_collection_start", "data_collection_complete", "response_generation"}
	if len(steps) != len(want) {
		t.Fatalf("expected %d progress frames, got %v", len(want), steps)
	}
	for i := range want {
		if steps[i] != want[i] {
			t.Fatalf("step %d: expected %q, got %q", i, want[i], steps[i])
		}
	}
}

func TestStreamEmergencyQuery(t *testing.T) {
	h := newTestHandler()
	rr := postJSON(t, h.Routes(), "/stream", `{"message": "I cut my hand and it will not stop bleeding"}`)

	frames := parseFrames(t, rr.Body.String())
	last := frames[len(frames)-1]
	if last.Type != "complete" {
		t.Fatalf("expected complete frame, got %q", last.Type)
	}
	if !last.IsEmergency {
		t.Fatal("expected emergency classification from keywords")
	}
	if len(last.EmergencyFacilities) == 0 {
		t.Fatal("expected emergency facilities")
	}
	if len(last.RegularFacilities) != 0 {
		t.Fatal("expected empty regular facilities on emergency branch")
	}
}

func TestStreamRegularQueryHasFacilities(t *testing.T) {
	h := newTestHandler()
	rr := postJSON(t, h.Routes(), "/stream", `{"message": "my skin is dry and flaky"}`)

	frames := parseFrames(t, rr.Body.String())
	last := frames[len(frames)-1]
	if len(last.RegularFacilities) == 0 {
		t.Fatal("expected regular facilities")
	}
	if len(last.EmergencyFacilities) != 0 {
		t.Fatal("expected empty emergency facilities on regular branch")
	}
	if len(last.Pricing) == 0 {
		t.Fatal("expected pricing entries")
	}
}

func TestChatSyncReturnsFullPayload(t *testing.T) {
	h := newTestHandler()
	rr := postJSON(t, h.Routes(), "/", `{"message": "I have a headache"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp Response
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Response == "" {
		t.Fatal("expected non-empty response text")
	}
	if len(resp.InsurancePlans) == 0 {
		t.Fatal("expected insurance plans")
	}
}

func TestChatSyncEmptyMessage(t *testing.T) {
	h := newTestHandler()
	rr := postJSON(t, h.Routes(), "/", `{"message": ""}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["message"] != "Message is required" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestContextualFallback(t *testing.T) {
	resp := contextualFallback("I cut my finger")
	if len(resp.EmergencyFacilities) == 0 {
		t.Fatal("expected emergency facilities for cut query")
	}
	if len(resp.RegularFacilities) != 0 {
		t.Fatal("expected no regular facilities for emergency query")
	}
	if len(resp.InsurancePlans) != 6 {
		t.Fatalf("expected full insurance catalog, got %d", len(resp.InsurancePlans))
	}
	if !strings.Contains(resp.Response, "Dubai Emergency Services at 999") {
		t.Fatal("expected emergency contact in fallback response")
	}

	resp = contextualFallback("tell me about iv therapy")
	if !strings.Contains(resp.Response, "IV Therapy Information") {
		t.Fatal("expected IV section for iv query")
	}
	if len(resp.RegularFacilities) == 0 {
		t.Fatal("expected regular facilities for non-emergency query")
	}
}
