package facility

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler provides HTTP handlers for the procedures listing
type Handler struct {
	sheet    *SheetSource
	resolver *Resolver
	logger   *zap.Logger
}

// NewHandler creates a new procedures handler. sheet may be nil when
// spreadsheet credentials are not configured.
func NewHandler(sheet *SheetSource, resolver *Resolver, logger *zap.Logger) *Handler {
	return &Handler{sheet: sheet, resolver: resolver, logger: logger}
}

// Routes registers the procedures routes
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListProcedures)
	return r
}

// ListProcedures returns the clinic procedure listing: spreadsheet
// first, then the search-backed fallback when the sheet is missing or
// empty.
func (h *Handler) ListProcedures(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.sheet != nil {
		procedures, err := h.sheet.Procedures(ctx, "", 0)
		if err != nil {
			h.logger.Error("procedure listing failed", zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, map[string]string{
				"message": "Failed to fetch sheet data",
			})
			return
		}
		if len(procedures) > 0 {
			writeJSON(w, http.StatusOK, map[string]any{"data": procedures})
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{"data": h.resolver.ProcedureListing(ctx)})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
