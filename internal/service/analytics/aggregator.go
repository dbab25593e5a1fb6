package analytics

import (
	"fmt"
	"math"
	"sort"

	"github.com/beteamly/beteamly-backend-go/internal/domain/analytics"
	"github.com/beteamly/beteamly-backend-go/internal/domain/attendance"
	"github.com/beteamly/beteamly-backend-go/internal/domain/employee"
	"github.com/beteamly/beteamly-backend-go/internal/domain/task"
	"github.com/beteamly/beteamly-backend-go/internal/domain/team"
	"github.com/beteamly/beteamly-backend-go/internal/pkg/clock"
)

// Scoring constants. These are product-fixed, not configuration.
const (
	// DefaultTotalWorkDays is the assumed number of working days per month;
	// no weekend or holiday awareness.
	DefaultTotalWorkDays = 20

	// DefaultWorkStartHour is the reference start hour for the analytics
	// lateness rule.
	DefaultWorkStartHour = 9

	weightCompletion = 0.5
	weightAttendance = 0.3
	weightOnTime     = 0.2

	teamWeightCompletion = 0.6
	teamWeightMemberAvg  = 0.4
)

// salaryBucketBounds are the upper bounds of the distribution ranges, in
// bucket order. The last bucket is unbounded.
var salaryBucketBounds = []struct {
	label string
	upper float64
}{
	{"<30K", 30000},
	{"30K-50K", 50000},
	{"50K-70K", 70000},
	{"70K-100K", 100000},
	{">100K", math.Inf(1)},
}

// isStrictlyLate is the analytics lateness rule: any check-in past the start
// hour, with no grace window. Deliberately stricter than the attendance
// evaluator's graced rule; the two are kept separate, not unified.
func isStrictlyLate(checkIn clock.TimeOfDay, workStartHour int) bool {
	return checkIn.Hour > workStartHour ||
		(checkIn.Hour == workStartHour && checkIn.Minute > 0)
}

func roundRate(v float64) int {
	return int(math.Round(v))
}

// AggregateEmployeePerformance derives the per-employee scorecards from
// already-fetched collections. Pure; no network access. The result is
// ordered by overall score descending, ties keeping encounter order.
//
// Advisory invariant violations (absent days outside [0, totalWorkDays],
// rates outside [0, 100]) are returned as warnings, never masked.
func AggregateEmployeePerformance(
	employees []employee.Employee,
	tasks []task.Task,
	records []attendance.Attendance,
	totalWorkDays int,
	workStartHour int,
) ([]analytics.EmployeePerformance, []string) {
	var warnings []string
	performances := make([]analytics.EmployeePerformance, 0, len(employees))

	for _, emp := range employees {
		perf := analytics.EmployeePerformance{
			EmployeeID:   emp.ID,
			EmployeeName: emp.Name,
		}

		var completed, onTime, late, total int
		for _, t := range tasks {
			if t.AssignedTo == nil || *t.AssignedTo != emp.ID {
				continue
			}
			total++
			if t.Status != task.StatusCompleted {
				continue
			}
			completed++
			if t.CompletedLate() {
				late++
			} else {
				onTime++
			}
		}

		var lateArrivals, totalLateMinutes, presentDays int
		for _, record := range records {
			if record.EmployeeID != emp.ID || record.CheckIn == nil {
				continue
			}
			presentDays++
			if isStrictlyLate(*record.CheckIn, workStartHour) {
				lateArrivals++
				totalLateMinutes += record.CheckIn.TotalMinutes() - workStartHour*60
			}
		}

		// Not clamped: more present days than assumed work days goes
		// negative and is surfaced as a warning below.
		absentDays := totalWorkDays - presentDays

		completionRate := 0
		if total > 0 {
			completionRate = roundRate(100 * float64(completed) / float64(total))
		}
		onTimeRate := 0
		if completed > 0 {
			onTimeRate = roundRate(100 * float64(onTime) / float64(completed))
		}
		attendanceRate := 0
		if totalWorkDays > 0 {
			attendanceRate = roundRate(100 * float64(presentDays) / float64(totalWorkDays))
		}

		overall := roundRate(float64(completionRate)*weightCompletion +
			float64(attendanceRate)*weightAttendance +
			float64(onTimeRate)*weightOnTime)

		perf.TasksCompleted = completed
		perf.TasksTotal = total
		perf.CompletionRate = completionRate
		perf.OnTimeCompletion = onTimeRate
		perf.LateCompletion = late
		perf.AttendanceRate = attendanceRate
		perf.LateArrivals = lateArrivals
		perf.TotalLateMinutes = totalLateMinutes
		perf.PresentDays = presentDays
		perf.AbsentDays = absentDays
		perf.OverallScore = overall

		if absentDays < 0 || absentDays > totalWorkDays {
			warnings = append(warnings, fmt.Sprintf(
				"employee %s: absent days %d outside [0, %d]",
				emp.ID, absentDays, totalWorkDays))
		}
		if completionRate < 0 || completionRate > 100 {
			warnings = append(warnings, fmt.Sprintf(
				"employee %s: completion rate %d outside [0, 100]",
				emp.ID, completionRate))
		}

		performances = append(performances, perf)
	}

	sort.SliceStable(performances, func(i, j int) bool {
		return performances[i].OverallScore > performances[j].OverallScore
	})

	return performances, warnings
}

// AggregateTeamScores rolls employee performance up to teams. A team's score
// blends its task completion rate with the average overall score of its
// members, capped at 100.
func AggregateTeamScores(
	teams []team.Team,
	employees []employee.Employee,
	tasks []task.Task,
	performances []analytics.EmployeePerformance,
) []analytics.TeamScore {
	scoreByEmployee := make(map[string]int, len(performances))
	for _, perf := range performances {
		scoreByEmployee[perf.EmployeeID] = perf.OverallScore
	}

	scores := make([]analytics.TeamScore, 0, len(teams))
	for _, tm := range teams {
		memberIDs := make(map[string]bool)
		for _, emp := range employees {
			if emp.TeamID != nil && *emp.TeamID == tm.ID {
				memberIDs[emp.ID] = true
			}
		}

		var assigned, done int
		for _, t := range tasks {
			if t.AssignedTo == nil || !memberIDs[*t.AssignedTo] {
				continue
			}
			assigned++
			if t.Status == task.StatusCompleted {
				done++
			}
		}

		completionRate := 0.0
		if assigned > 0 {
			completionRate = 100 * float64(done) / float64(assigned)
		}

		var scoreSum, scored int
		for id := range memberIDs {
			if s, ok := scoreByEmployee[id]; ok {
				scoreSum += s
				scored++
			}
		}
		memberAvg := 0.0
		if scored > 0 {
			memberAvg = float64(scoreSum) / float64(scored)
		}

		score := roundRate(completionRate*teamWeightCompletion + memberAvg*teamWeightMemberAvg)
		if score > 100 {
			score = 100
		}

		scores = append(scores, analytics.TeamScore{
			TeamID:        tm.ID,
			TeamName:      tm.Name,
			MemberCount:   len(memberIDs),
			TasksAssigned: assigned,
			TasksDone:     done,
			Score:         score,
		})
	}

	return scores
}

// SalaryDistribution buckets active salary amounts into the fixed ranges,
// preserving bucket order in the output.
func SalaryDistribution(amounts []float64) []analytics.SalaryBucket {
	buckets := make([]analytics.SalaryBucket, len(salaryBucketBounds))
	for i, bound := range salaryBucketBounds {
		buckets[i] = analytics.SalaryBucket{Label: bound.label}
	}

	for _, amount := range amounts {
		for i, bound := range salaryBucketBounds {
			if amount < bound.upper {
				buckets[i].Count++
				break
			}
		}
	}

	return buckets
}
