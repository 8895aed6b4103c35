package workdayhandler

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
	r.Put("/days/{date}", h.handleRegisterDay)
	r.Delete("/days/{date}", h.handleDeleteDay)
	r.Get("/days", h.handleListDays)
	r.Get("/periods/summary", h.handlePeriodSummary)
}

type registerPayload struct {
	Shift             string  `json:"shift"`
	Category          string  `json:"category"`
	SeniorityYears    int     `json:"seniorityYears"`
	ExtraHours        int     `json:"extraHours"`
	EntryTime         string  `json:"entryTime"`
	AdditionalPercent float64 `json:"additionalPercent"`
}

func (h *Handler) handleRegisterDay(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())

	var payload registerPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	record, err := h.Service.RegisterDay(r.Context(), workday.RegisterInput{
		Date:              chi.URLParam(r, "date"),
		Shift:             wage.Shift(payload.Shift),
		Category:          payload.Category,
		SeniorityYears:    payload.SeniorityYears,
		ExtraHours:        payload.ExtraHours,
		EntryTime:         payload.EntryTime,
		AdditionalPercent: payload.AdditionalPercent,
	})
	if err != nil {
		writeDomainError(w, err, requestID)
		return
	}
	api.Success(w, record, requestID)
}

func (h *Handler) handleDeleteDay(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	if err := h.Service.DeleteDay(r.Context(), chi.URLParam(r, "date")); err != nil {
		writeDomainError(w, err, requestID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, requestID)
}

func (h *Handler) handleListDays(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())

	v := shared.NewValidator()
	from, okFrom := v.Date("from", r.URL.Query().Get("from"))
	to, okTo := v.Date("to", r.URL.Query().Get("to"))
	if v.Reject(w, requestID) {
		return
	}
	if okFrom && okTo && to.Before(from) {
		api.Fail(w, http.StatusBadRequest, "invalid_input", "from must be on or before to", requestID)
		return
	}

	records := h.Service.ListDays(from, to)
	if records == nil {
		records = []workday.Record{}
	}
	api.Success(w, records, requestID)
}

func (h *Handler) handlePeriodSummary(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())

	start, end, ok := shared.PeriodFromQuery(w, r, requestID)
	if !ok {
		return
	}
	api.Success(w, h.Service.AggregatePeriod(start, end), requestID)
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
	if errors.Is(err, workday.ErrRecordNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "work record not found", requestID)
		return
	}
	if errors.Is(err, wage.ErrUnknownShift) {
		api.Fail(w, http.StatusBadRequest, "invalid_input", err.Error(), requestID)
		return
	}
	api.Fail(w, http.StatusInternalServerError, "operation_failed", "operation failed", requestID)
}
