package synthesis

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/dubai-health/concierge/internal/facility"
	"github.com/dubai-health/concierge/internal/intent"
	"github.com/dubai-health/concierge/internal/llm"
)

type stubCompleter struct {
	reply   string
	err     error
	lastReq llm.Request
}

func (s *stubCompleter) Complete(_ context.Context, _ string, req llm.Request) (string, error) {
	s.lastReq = req
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func TestSynthesizeUsesModelReply(t *testing.T) {
	stub := &stubCompleter{reply: `{"responseText": "## Advice\n\nDrink water."}`}
	s := NewSynthesizer(stub, zap.NewNop())

	got := s.Synthesize(context.Background(), Input{Query: "I feel tired"})
	if got != "## Advice\n\nDrink water." {
		t.Fatalf("unexpected response: %q", got)
	}
}

func TestSynthesizeSalvagesBrokenReply(t *testing.T) {
	stub := &stubCompleter{reply: `{"responseText":"Partial answer here"} trailing garbage`}
	s := NewSynthesizer(stub, zap.NewNop())

	got := s.Synthesize(context.Background(), Input{Query: "question"})
	if got != "Partial answer here" {
		t.Fatalf("expected salvaged text, got %q", got)
	}
}

func TestSynthesizeFallsBackOnError(t *testing.T) {
	stub := &stubCompleter{err: errors.New("model down")}
	s := NewSynthesizer(stub, zap.NewNop())

	got := s.Synthesize(context.Background(), Input{Query: "I cut my leg and it is bleeding"})
	if !strings.Contains(got, "Immediate Care for Cuts/Wounds") {
		t.Fatalf("expected wound template, got %q", got[:80])
	}
	if !strings.Contains(got, "Medical Disclaimer") {
		t.Fatal("expected disclaimer in fallback")
	}
}

func TestSynthesizeUserMessageIncludesGatheredData(t *testing.T) {
	stub := &stubCompleter{reply: `{"responseText": "ok"}`}
	s := NewSynthesizer(stub, zap.NewNop())

	s.Synthesize(context.Background(), Input{
		Query:      "dermatology options",
		Intent:     intent.Record{QueryType: intent.QueryFacilitySearch, MedicalSpecialty: "dermatology", IsEmergency: false},
		HealthInfo: strings.Repeat("skin care guidance ", 5),
		Facilities: []facility.EmergencyFacility{{Name: "Derma Clinic", Address: "JLT, Dubai", Phone: "+971 4 000 0000"}},
		Pricing:    []facility.Procedure{{ClinicName: "Derma Clinic", Service: "Consultation", CashPrice: "AED 300"}},
	})

	msg := stub.lastReq.User
	for _, want := range []string{
		`HEALTH QUERY: "dermatology options"`,
		"Medical Specialty: dermatology",
		"MEDICAL KNOWLEDGE BASE:",
		"Consultation at Derma Clinic: AED 300",
		"- Derma Clinic at JLT, Dubai",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("user message missing %q", want)
		}
	}
	if !stub.lastReq.JSONMode {
		t.Error("expected JSON mode request")
	}
}

func TestFallbackResponseTemplates(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"I need an IV drip after my flight", "IV Therapy & Nutrition Services"},
		{"my eyes look yellow lately", "Yellow Eyes (Jaundice)"},
		{"my skin feels like crocodile skin", "Dry, Textured Skin"},
		{"what vaccinations do I need", "Health Guidance"},
	}
	for _, tt := range tests {
		got := FallbackResponse(tt.query, nil)
		if !strings.Contains(got, tt.want) {
			t.Errorf("FallbackResponse(%q) missing %q", tt.query, tt.want)
		}
	}
}

func TestFallbackResponseInterpolatesPricing(t *testing.T) {
	pricing := []facility.Procedure{
		{ClinicName: "City Clinic", Service: "Wound Care", CashPrice: "AED 200-400"},
	}
	got := FallbackResponse("deep cut on my arm", pricing)
	if !strings.Contains(got, "**Cost Information:**") {
		t.Fatal("expected cost information section")
	}
	if !strings.Contains(got, "- Wound Care: AED 200-400 (City Clinic)") {
		t.Fatalf("expected pricing line, got %q", got)
	}
}
