package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/beteamly/beteamly-backend-go/internal/domain/analytics"
	"github.com/beteamly/beteamly-backend-go/internal/handler/http/response"
)

type AnalyticsHandler interface {
	GetPerformanceReport(w http.ResponseWriter, r *http.Request)
}

type analyticsHandlerImpl struct {
	analyticsService analytics.AnalyticsService
}

func NewAnalyticsHandler(analyticsService analytics.AnalyticsService) AnalyticsHandler {
	return &analyticsHandlerImpl{
		analyticsService: analyticsService,
	}
}

// GetPerformanceReport implements AnalyticsHandler. Month and year default
// to the current period when absent from the query.
func (h *analyticsHandlerImpl) GetPerformanceReport(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()
	req := analytics.PerformanceReportRequest{
		Month: int(now.Month()),
		Year:  now.Year(),
	}

	q := r.URL.Query()
	if v := q.Get("month"); v != "" {
		month, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "month must be a number", nil)
			return
		}
		req.Month = month
	}
	if v := q.Get("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "year must be a number", nil)
			return
		}
		req.Year = year
	}

	result, err := h.analyticsService.GetPerformanceReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
