package settingshandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"jornal/internal/domain/settings"
	"jornal/internal/domain/wage"
	"jornal/internal/requestctx"
	"jornal/internal/transport/http/api"
	"jornal/internal/transport/http/shared"
)

type Handler struct {
	Store *settings.Store
}

func NewHandler(store *settings.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/settings", h.handleGet)
	r.Put("/settings", h.handlePut)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())

	saved, found, err := h.Store.Get(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "settings_load_failed", "failed to load settings", requestID)
		return
	}
	if !found {
		api.Fail(w, http.StatusNotFound, "not_found", "no settings saved yet", requestID)
		return
	}
	api.Success(w, saved, requestID)
}

func (h *Handler) handlePut(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())

	var payload settings.Settings
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Enum("category", payload.Category, wage.Categories, "must be one of the convention categories A-H")
	v.Enum("shift", string(payload.Shift), []string{"morning", "afternoon", "night"}, "must be morning, afternoon or night")
	if payload.ExtraHours < 0 {
		v.Add("extraHours", "must not be negative")
	}
	if v.Reject(w, requestID) {
		return
	}

	if err := h.Store.Put(r.Context(), payload); err != nil {
		api.Fail(w, http.StatusInternalServerError, "settings_save_failed", "failed to save settings", requestID)
		return
	}
	api.Success(w, payload, requestID)
}
