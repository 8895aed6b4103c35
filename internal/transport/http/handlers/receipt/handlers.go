package receipthandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"jornal/internal/domain/receipt"
	"jornal/internal/domain/workday"
	"jornal/internal/requestctx"
	"jornal/internal/transport/http/api"
	"jornal/internal/transport/http/shared"
)

type Handler struct {
	Service   *workday.Service
	Generator *receipt.Generator
}

func NewHandler(service *workday.Service, generator *receipt.Generator) *Handler {
	return &Handler{Service: service, Generator: generator}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/periods/receipt", h.handleDownload)
}

func (h *Handler) handleDownload(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())

	start, end, ok := shared.PeriodFromQuery(w, r, requestID)
	if !ok {
		return
	}

	summary := h.Service.AggregatePeriod(start, end)
	records := h.Service.ListDays(start, end)

	path, err := h.Generator.Generate(summary, records)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "receipt_failed", "failed to generate receipt", requestID)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	http.ServeFile(w, r, path)
}
