package holidayhandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"jornal/internal/domain/holiday"
	"jornal/internal/requestctx"
	"jornal/internal/transport/http/api"
)

type Handler struct {
	Registry *holiday.Registry
}

func NewHandler(registry *holiday.Registry) *Handler {
	return &Handler{Registry: registry}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/holidays", h.handleList)
	r.Put("/holidays", h.handleUpdate)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Registry.List(), requestctx.GetRequestID(r.Context()))
}

type updatePayload struct {
	Add    []string `json:"add"`
	Remove []string `json:"remove"`
}

// handleUpdate applies adds then removes. Each date is written through
// individually, so a failure partway leaves the earlier changes in place.
func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())

	var payload updatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	if len(payload.Add) == 0 && len(payload.Remove) == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "nothing to add or remove", requestID)
		return
	}

	for _, dateKey := range payload.Add {
		if err := h.Registry.Add(r.Context(), dateKey); err != nil {
			api.Fail(w, http.StatusBadRequest, "holiday_add_failed", err.Error(), requestID)
			return
		}
	}
	for _, dateKey := range payload.Remove {
		if err := h.Registry.Remove(r.Context(), dateKey); err != nil {
			api.Fail(w, http.StatusInternalServerError, "holiday_remove_failed", "failed to remove holiday", requestID)
			return
		}
	}
	api.Success(w, h.Registry.List(), requestID)
}
