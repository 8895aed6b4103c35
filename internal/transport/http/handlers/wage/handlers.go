package wagehandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"jornal/internal/domain/wage"
	"jornal/internal/domain/workday"
	"jornal/internal/requestctx"
	"jornal/internal/transport/http/api"
	"jornal/internal/transport/http/shared"
)

type Handler struct {
	Service *workday.Service
}

func NewHandler(service *workday.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/wage/preview", h.handlePreview)
}

type previewPayload struct {
	Date              string  `json:"date"`
	Shift             string  `json:"shift"`
	Category          string  `json:"category"`
	SeniorityYears    int     `json:"seniorityYears"`
	ExtraHours        int     `json:"extraHours"`
	AdditionalPercent float64 `json:"additionalPercent"`
	IsHoliday         *bool   `json:"isHoliday,omitempty"`
}

// handlePreview runs the computation without persisting anything.
func (h *Handler) handlePreview(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())

	var payload previewPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("date", payload.Date, "date is required")
	v.Required("shift", payload.Shift, "shift is required")
	v.Required("category", payload.Category, "category is required")
	v.Enum("shift", payload.Shift, []string{"morning", "afternoon", "night"}, "must be morning, afternoon or night")
	if v.Reject(w, requestID) {
		return
	}

	breakdown, err := h.Service.Preview(workday.RegisterInput{
		Date:              payload.Date,
		Shift:             wage.Shift(payload.Shift),
		Category:          payload.Category,
		SeniorityYears:    payload.SeniorityYears,
		ExtraHours:        payload.ExtraHours,
		AdditionalPercent: payload.AdditionalPercent,
	}, payload.IsHoliday)
	if err != nil {
		writeDomainError(w, err, requestID)
		return
	}
	api.Success(w, breakdown, requestID)
}

func writeDomainError(w http.ResponseWriter, err error, requestID string) {
	var invalid *workday.InvalidInputError
	if errors.As(err, &invalid) {
		api.FailWithDetails(w, http.StatusBadRequest, "invalid_input", invalid.Error(),
			map[string]string{"field": invalid.Field}, requestID)
		return
	}
	var missing *wage.MissingRateError
	if errors.As(err, &missing) {
		api.FailWithDetails(w, http.StatusUnprocessableEntity, "missing_rate", missing.Error(),
			map[string]string{"category": missing.Category, "month": missing.MonthKey}, requestID)
		return
	}
	if errors.Is(err, wage.ErrUnknownShift) {
		api.Fail(w, http.StatusBadRequest, "invalid_input", err.Error(), requestID)
		return
	}
	api.Fail(w, http.StatusInternalServerError, "computation_failed", "wage computation failed", requestID)
}
