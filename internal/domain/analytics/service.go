package analytics

import "context"

type AnalyticsService interface {
	// GetPerformanceReport aggregates employees, tasks and attendance for
	// the caller's company into the per-employee and per-team scorecards.
	GetPerformanceReport(ctx context.Context, req PerformanceReportRequest) (PerformanceReport, error)
}
