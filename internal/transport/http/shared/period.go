package shared

import (
	"net/http"
	"strconv"
	"time"

	"jornal/internal/domain/workday"
	"jornal/internal/transport/http/api"
)

// PeriodFromQuery resolves year/month/half query params into period bounds.
// half absent means the whole month. On a bad query it writes the error
// response and returns ok=false.
func PeriodFromQuery(w http.ResponseWriter, r *http.Request, requestID string) (time.Time, time.Time, bool) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 2000 || year > 2100 {
		api.Fail(w, http.StatusBadRequest, "invalid_input", "year must be a valid year", requestID)
		return time.Time{}, time.Time{}, false
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		api.Fail(w, http.StatusBadRequest, "invalid_input", "month must be 1-12", requestID)
		return time.Time{}, time.Time{}, false
	}

	switch r.URL.Query().Get("half") {
	case "":
		start, end := workday.MonthRange(year, time.Month(month))
		return start, end, true
	case "1":
		start, end := workday.FortnightRange(year, time.Month(month), false)
		return start, end, true
	case "2":
		start, end := workday.FortnightRange(year, time.Month(month), true)
		return start, end, true
	default:
		api.Fail(w, http.StatusBadRequest, "invalid_input", "half must be 1 or 2", requestID)
		return time.Time{}, time.Time{}, false
	}
}
