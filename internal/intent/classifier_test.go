package intent

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/dubai-health/concierge/internal/llm"
)

type stubCompleter struct {
	reply string
	err   error
}

func (s *stubCompleter) Complete(_ context.Context, _ string, _ llm.Request) (string, error) {
	return s.reply, s.err
}

func TestClassifyParsesModelReply(t *testing.T) {
	c := NewClassifier(&stubCompleter{
		reply: `{"isEmergency": true, "serviceQuery": "emergency cardiology", "queryType": "emergency-care", "medicalSpecialty": "cardiology", "insuranceKeywords": ["cardiology", "emergency-services"], "urgencyLevel": "critical"}`,
	}, zap.NewNop())

	rec := c.Classify(context.Background(), "chest pain, can't breathe")

	if !rec.IsEmergency {
		t.Error("expected isEmergency = true")
	}
	if rec.MedicalSpecialty != "cardiology" {
		t.Errorf("MedicalSpecialty = %q, want %q", rec.MedicalSpecialty, "cardiology")
	}
	if rec.QueryType != QueryEmergencyCare {
		t.Errorf("QueryType = %q, want %q", rec.QueryType, QueryEmergencyCare)
	}
}

func TestClassifySalvagesFencedReply(t *testing.T) {
	c := NewClassifier(&stubCompleter{
		reply: "```json\n{\"isEmergency\": false, \"medicalSpecialty\": \"dermatology\"}\n```",
	}, zap.NewNop())

	rec := c.Classify(context.Background(), "my skin is dry")
	if rec.MedicalSpecialty != "dermatology" {
		t.Errorf("MedicalSpecialty = %q, want %q", rec.MedicalSpecialty, "dermatology")
	}
}

func TestClassifyFallsBackOnError(t *testing.T) {
	tests := []struct {
		name          string
		query         string
		wantEmergency bool
	}{
		{"emergency keyword", "this is an emergency", true},
		{"bleeding keyword", "my arm won't stop bleeding", true},
		{"accident keyword", "I was in a car accident", true},
		{"cut keyword", "I have a deep cut on my leg", true},
		{"plain query", "I have a mild headache", false},
	}

	c := NewClassifier(&stubCompleter{err: errors.New("upstream unavailable")}, zap.NewNop())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := c.Classify(context.Background(), tt.query)
			if rec.IsEmergency != tt.wantEmergency {
				t.Errorf("IsEmergency = %v, want %v", rec.IsEmergency, tt.wantEmergency)
			}
			if rec.ServiceQuery != tt.query {
				t.Errorf("ServiceQuery = %q, want original query", rec.ServiceQuery)
			}
			if len(rec.InsuranceKeywords) != 1 || rec.InsuranceKeywords[0] != "general-care" {
				t.Errorf("InsuranceKeywords = %v, want [general-care]", rec.InsuranceKeywords)
			}
		})
	}
}

func TestClassifyFallsBackOnMalformedJSON(t *testing.T) {
	c := NewClassifier(&stubCompleter{reply: "I cannot classify that."}, zap.NewNop())

	rec := c.Classify(context.Background(), "severe bleeding from a wound")
	if !rec.IsEmergency {
		t.Error("expected heuristic fallback to flag emergency")
	}
}
