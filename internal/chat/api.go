package chat

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/dubai-health/concierge/internal/facility"
	"github.com/dubai-health/concierge/internal/insurance"
	"github.com/dubai-health/concierge/internal/shared/metrics"
)

// Handler serves the chat endpoints.
type Handler struct {
	orchestrator *Orchestrator
	logger       *zap.Logger
}

// NewHandler creates a chat handler.
func NewHandler(orchestrator *Orchestrator, logger *zap.Logger) *Handler {
	return &Handler{orchestrator: orchestrator, logger: logger}
}

// Routes returns the chat router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Chat)
	r.Post("/stream", h.Stream)
	return r
}

type chatRequest struct {
	Message string `json:"message"`
}

// Stream runs the pipeline and pushes progress frames over SSE.
// Exactly one terminal frame (complete or error) closes the stream.
func (h *Handler) Stream(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.RecordChatRequest("stream", "bad_request")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
		return
	}
	if req.Message == "" {
		metrics.RecordChatRequest("stream", "bad_request")
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("Message is required"))
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		metrics.RecordChatRequest("stream", "unsupported")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Streaming unsupported"})
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	send := func(ev Event) {
		data, err := json.Marshal(ev)
		if err != nil {
			h.logger.Error("event marshal failed", zap.Error(err))
			return
		}
		w.Write([]byte("data: "))
		w.Write(data)
		w.Write([]byte("\n\n"))
		flusher.Flush()
	}

	defer func() {
		if rec := recover(); rec != nil {
			h.logger.Error("stream pipeline panic", zap.Any("panic", rec))
			metrics.RecordChatRequest("stream", "error")
			send(ErrorEvent{Type: "error", Message: "An error occurred while processing your request."})
		}
	}()

	result := h.orchestrator.Run(r.Context(), req.Message, send)

	send(CompleteEvent{
		Type:                "complete",
		Response:            result.Response,
		EmergencyFacilities: result.EmergencyFacilities,
		RegularFacilities:   result.RegularFacilities,
		Pricing:             result.Pricing,
		InsurancePlans:      result.InsurancePlans,
		IsEmergency:         result.Intent.IsEmergency,
		Specialty:           result.Intent.MedicalSpecialty,
	})
	metrics.RecordChatRequest("stream", "complete")
}

// Chat runs the pipeline synchronously and returns the full payload
// in one response. Failures degrade to a contextual payload so the
// client always has facilities and pricing to render.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == "" {
		metrics.RecordChatRequest("chat", "bad_request")
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Message is required"})
		return
	}

	defer func() {
		if rec := recover(); rec != nil {
			h.logger.Error("chat pipeline panic",
				zap.String("message", req.Message),
				zap.Any("panic", rec))
			metrics.RecordChatRequest("chat", "error")
			writeJSON(w, http.StatusInternalServerError, contextualFallback(req.Message))
		}
	}()

	result := h.orchestrator.Run(r.Context(), req.Message, nil)

	metrics.RecordChatRequest("chat", "complete")
	writeJSON(w, http.StatusOK, Response{
		Response:            result.Response,
		EmergencyFacilities: result.EmergencyFacilities,
		RegularFacilities:   result.RegularFacilities,
		Pricing:             result.Pricing,
		InsurancePlans:      result.InsurancePlans,
	})
}

// contextualFallback assembles a best-effort payload from the static
// tables when the pipeline itself blew up.
func contextualFallback(message string) Response {
	lower := strings.ToLower(message)
	isEmergency := strings.Contains(lower, "emergency") ||
		strings.Contains(lower, "cut") ||
		strings.Contains(lower, "bleeding")

	emergencyFacilities := []facility.EmergencyFacility{}
	regularFacilities := []facility.EmergencyFacility{}
	if isEmergency {
		emergencyFacilities = facility.ContextualFacilities(message, true)
	} else {
		regularFacilities = facility.ContextualFacilities(message, false)
	}

	pricing := facility.ContextualPricing(message)
	pricing = append(pricing, facility.PharmacyRecommendations(message)...)

	ivSection := ""
	if strings.Contains(lower, "iv") {
		ivSection = `

## IV Therapy Information

IV therapy services are available at several clinics in Dubai. These treatments can help with hydration, vitamin supplementation, and wellness support.`
	}

	return Response{
		Response: `⚠️ **Medical Disclaimer**: This information is for educational purposes only and should not replace professional medical advice. Please consult with a healthcare provider for proper diagnosis and treatment.

## Health Information Available

I can provide you with healthcare information and resources for Dubai. Please check the Facilities & Pricing and Insurance tabs for relevant healthcare options.` + ivSection + `

If you have an urgent medical concern, please contact one of the emergency facilities directly or call Dubai Emergency Services at 999.`,
		EmergencyFacilities: emergencyFacilities,
		RegularFacilities:   regularFacilities,
		Pricing:             pricing,
		InsurancePlans:      insurance.FallbackCatalog(),
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
