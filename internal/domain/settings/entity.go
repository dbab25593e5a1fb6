package settings

import (
	"time"

	"github.com/beteamly/beteamly-backend-go/internal/pkg/clock"
	"github.com/shopspring/decimal"
)

// BusinessSettings is the tenant-scoped working-time configuration. It is a
// closed struct: the evaluation rules only ever read these fixed fields.
type BusinessSettings struct {
	ID           string
	CompanyID    string
	WorkdayStart clock.TimeOfDay
	WorkdayEnd   clock.TimeOfDay
	OvertimeRate decimal.Decimal
	Currency     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ExpectedDailyHours is the length of the configured work window in hours.
func (s BusinessSettings) ExpectedDailyHours() float64 {
	return float64(s.WorkdayEnd.Sub(s.WorkdayStart)) / 60.0
}
