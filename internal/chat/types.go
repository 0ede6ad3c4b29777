package chat

import (
	"github.com/dubai-health/concierge/internal/facility"
	"github.com/dubai-health/concierge/internal/insurance"
)

// Event is a frame pushed over the SSE stream.
type Event interface {
	eventType() string
}

// ProgressEvent reports pipeline progress to the client.
type ProgressEvent struct {
	Type    string `json:"type"`
	Step    string `json:"step"`
	Message string `json:"message"`
	Status  string `json:"status,omitempty"`
}

func (ProgressEvent) eventType() string { return "progress" }

// CompleteEvent is the terminal success frame carrying the full
// answer and all gathered data.
type CompleteEvent struct {
	Type                string                       `json:"type"`
	Response            string                       `json:"response"`
	EmergencyFacilities []facility.EmergencyFacility `json:"emergencyFacilities"`
	RegularFacilities   []facility.EmergencyFacility `json:"regularFacilities"`
	Pricing             []facility.Procedure         `json:"pricing"`
	InsurancePlans      []insurance.Plan             `json:"insurancePlans"`
	IsEmergency         bool                         `json:"isEmergency,omitempty"`
	Specialty           string                       `json:"specialty,omitempty"`
}

func (CompleteEvent) eventType() string { return "complete" }

// ErrorEvent is the terminal failure frame.
type ErrorEvent struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func (ErrorEvent) eventType() string { return "error" }

func progress(step, message, status string) ProgressEvent {
	return ProgressEvent{Type: "progress", Step: step, Message: message, Status: status}
}

// Response is the sync chat payload. The field set mirrors the
// complete stream frame minus the type tag.
type Response struct {
	Response            string                       `json:"response"`
	EmergencyFacilities []facility.EmergencyFacility `json:"emergencyFacilities"`
	RegularFacilities   []facility.EmergencyFacility `json:"regularFacilities"`
	Pricing             []facility.Procedure         `json:"pricing"`
	InsurancePlans      []insurance.Plan             `json:"insurancePlans"`
}
