package analytics

import (
	"testing"
	"time"

	"github.com/beteamly/beteamly-backend-go/internal/domain/attendance"
	"github.com/beteamly/beteamly-backend-go/internal/domain/employee"
	"github.com/beteamly/beteamly-backend-go/internal/domain/task"
	"github.com/beteamly/beteamly-backend-go/internal/domain/team"
	"github.com/beteamly/beteamly-backend-go/internal/pkg/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func timePtr(s string) *clock.TimeOfDay {
	t := clock.MustParse(s)
	return &t
}

func datePtr(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func completedTask(assignee, due, updated string) task.Task {
	t := task.Task{
		AssignedTo: strPtr(assignee),
		Status:     task.StatusCompleted,
		UpdatedAt:  *datePtr(updated),
	}
	if due != "" {
		t.DueDate = datePtr(due)
	}
	return t
}

func presentDay(employeeID, checkIn string) attendance.Attendance {
	return attendance.Attendance{EmployeeID: employeeID, CheckIn: timePtr(checkIn)}
}

func TestAggregate_ZeroTasks(t *testing.T) {
	t.Parallel()

	perfs, _ := AggregateEmployeePerformance(
		[]employee.Employee{{ID: "e1", Name: "Ana"}},
		nil,
		[]attendance.Attendance{presentDay("e1", "09:00")},
		DefaultTotalWorkDays, DefaultWorkStartHour,
	)
	require.Len(t, perfs, 1)

	assert.Equal(t, 0, perfs[0].CompletionRate)
	assert.Equal(t, 0, perfs[0].OnTimeCompletion)
	assert.Equal(t, 5, perfs[0].AttendanceRate) // 1/20 days
	// overall = 0*0.5 + 5*0.3 + 0*0.2 = 1.5 -> 2
	assert.Equal(t, 2, perfs[0].OverallScore)
}

func TestAggregate_TaskTallies(t *testing.T) {
	t.Parallel()

	tasks := []task.Task{
		completedTask("e1", "2026-05-10", "2026-05-09"), // on time
		completedTask("e1", "2026-05-10", "2026-05-12"), // late
		completedTask("e1", "", "2026-05-20"),           // no due date: never late
		{AssignedTo: strPtr("e1"), Status: task.StatusPending},
		{AssignedTo: strPtr("someone-else"), Status: task.StatusCompleted},
	}

	perfs, _ := AggregateEmployeePerformance(
		[]employee.Employee{{ID: "e1", Name: "Ana"}},
		tasks, nil,
		DefaultTotalWorkDays, DefaultWorkStartHour,
	)
	require.Len(t, perfs, 1)

	assert.Equal(t, 4, perfs[0].TasksTotal)
	assert.Equal(t, 3, perfs[0].TasksCompleted)
	assert.Equal(t, 1, perfs[0].LateCompletion)
	assert.Equal(t, 75, perfs[0].CompletionRate)       // 3/4
	assert.Equal(t, 67, perfs[0].OnTimeCompletion)     // 2/3 rounded
}

func TestAggregate_StrictLatenessRule(t *testing.T) {
	t.Parallel()

	// No grace window here: 09:01 is already late, unlike the attendance
	// evaluator's 15-minute rule.
	records := []attendance.Attendance{
		presentDay("e1", "09:00"),
		presentDay("e1", "09:01"),
		presentDay("e1", "08:59"),
		presentDay("e1", "10:15"),
	}

	perfs, _ := AggregateEmployeePerformance(
		[]employee.Employee{{ID: "e1", Name: "Ana"}},
		nil, records,
		DefaultTotalWorkDays, DefaultWorkStartHour,
	)
	require.Len(t, perfs, 1)

	assert.Equal(t, 4, perfs[0].PresentDays)
	assert.Equal(t, 2, perfs[0].LateArrivals)
	assert.Equal(t, 76, perfs[0].TotalLateMinutes) // 1 + 75
}

func TestAggregate_SortStability(t *testing.T) {
	t.Parallel()

	// C scores lower than A and B; A and B tie and must keep their input
	// order, yielding [A, B, C] from input [C, A, B].
	employees := []employee.Employee{
		{ID: "c", Name: "C"},
		{ID: "a", Name: "A"},
		{ID: "b", Name: "B"},
	}
	tasks := []task.Task{
		completedTask("a", "", "2026-05-01"),
		completedTask("b", "", "2026-05-01"),
		{AssignedTo: strPtr("c"), Status: task.StatusPending},
		completedTask("c", "", "2026-05-01"),
	}

	perfs, _ := AggregateEmployeePerformance(employees, tasks, nil,
		DefaultTotalWorkDays, DefaultWorkStartHour)
	require.Len(t, perfs, 3)

	assert.Equal(t, "a", perfs[0].EmployeeID)
	assert.Equal(t, "b", perfs[1].EmployeeID)
	assert.Equal(t, "c", perfs[2].EmployeeID)
	assert.Equal(t, perfs[0].OverallScore, perfs[1].OverallScore)
	assert.Greater(t, perfs[0].OverallScore, perfs[2].OverallScore)
}

func TestAggregate_ScoreMonotonicity(t *testing.T) {
	t.Parallel()

	// Holding attendance fixed, completing more tasks never lowers the
	// overall score.
	attendanceRecords := []attendance.Attendance{presentDay("e1", "09:00")}

	prev := -1
	for completed := 0; completed <= 10; completed++ {
		tasks := make([]task.Task, 0, 10)
		for i := 0; i < 10; i++ {
			if i < completed {
				tasks = append(tasks, completedTask("e1", "", "2026-05-01"))
			} else {
				tasks = append(tasks, task.Task{AssignedTo: strPtr("e1"), Status: task.StatusPending})
			}
		}

		perfs, _ := AggregateEmployeePerformance(
			[]employee.Employee{{ID: "e1", Name: "Ana"}},
			tasks, attendanceRecords,
			DefaultTotalWorkDays, DefaultWorkStartHour,
		)
		require.Len(t, perfs, 1)
		assert.GreaterOrEqual(t, perfs[0].OverallScore, prev,
			"%d completed tasks lowered the score", completed)
		prev = perfs[0].OverallScore
	}
}

func TestAggregate_NegativeAbsenceWarning(t *testing.T) {
	t.Parallel()

	// 22 present days against the assumed 20 work days: absent days go
	// negative and are reported, not clamped.
	records := make([]attendance.Attendance, 0, 22)
	for i := 0; i < 22; i++ {
		records = append(records, presentDay("e1", "09:00"))
	}

	perfs, warnings := AggregateEmployeePerformance(
		[]employee.Employee{{ID: "e1", Name: "Ana"}},
		nil, records,
		DefaultTotalWorkDays, DefaultWorkStartHour,
	)
	require.Len(t, perfs, 1)

	assert.Equal(t, -2, perfs[0].AbsentDays)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "absent days -2")
}

func TestAggregateTeamScores(t *testing.T) {
	t.Parallel()

	teams := []team.Team{
		{ID: "t1", Name: "Platform"},
		{ID: "t2", Name: "Empty"},
	}
	employees := []employee.Employee{
		{ID: "a", Name: "A", TeamID: strPtr("t1")},
		{ID: "b", Name: "B", TeamID: strPtr("t1")},
		{ID: "c", Name: "C"},
	}
	tasks := []task.Task{
		completedTask("a", "", "2026-05-01"),
		completedTask("b", "", "2026-05-01"),
		{AssignedTo: strPtr("b"), Status: task.StatusPending},
	}

	perfs, _ := AggregateEmployeePerformance(employees, tasks, nil,
		DefaultTotalWorkDays, DefaultWorkStartHour)
	scores := AggregateTeamScores(teams, employees, tasks, perfs)
	require.Len(t, scores, 2)

	platform := scores[0]
	assert.Equal(t, "t1", platform.TeamID)
	assert.Equal(t, 2, platform.MemberCount)
	assert.Equal(t, 3, platform.TasksAssigned)
	assert.Equal(t, 2, platform.TasksDone)
	// completion 66.67*0.6 + member avg 57.5*0.4 = 63
	assert.Equal(t, 63, platform.Score)

	empty := scores[1]
	assert.Equal(t, 0, empty.MemberCount)
	assert.Equal(t, 0, empty.Score)
}

func TestAggregateTeamScores_Cap(t *testing.T) {
	t.Parallel()

	teams := []team.Team{{ID: "t1", Name: "Aces"}}
	employees := []employee.Employee{{ID: "a", Name: "A", TeamID: strPtr("t1")}}
	tasks := []task.Task{completedTask("a", "", "2026-05-01")}

	// Perfect attendance across the whole assumed month plus full task
	// completion pushes the blend to its 100 cap.
	records := make([]attendance.Attendance, 0, DefaultTotalWorkDays)
	for i := 0; i < DefaultTotalWorkDays; i++ {
		records = append(records, presentDay("a", "08:30"))
	}

	perfs, _ := AggregateEmployeePerformance(employees, tasks, records,
		DefaultTotalWorkDays, DefaultWorkStartHour)
	scores := AggregateTeamScores(teams, employees, tasks, perfs)
	require.Len(t, scores, 1)
	assert.Equal(t, 100, scores[0].Score)
}

func TestSalaryDistribution(t *testing.T) {
	t.Parallel()

	buckets := SalaryDistribution([]float64{25000, 45000, 45000, 120000})
	require.Len(t, buckets, 5)

	assert.Equal(t, "<30K", buckets[0].Label)
	assert.Equal(t, 1, buckets[0].Count)
	assert.Equal(t, "30K-50K", buckets[1].Label)
	assert.Equal(t, 2, buckets[1].Count)
	assert.Equal(t, "50K-70K", buckets[2].Label)
	assert.Equal(t, 0, buckets[2].Count)
	assert.Equal(t, "70K-100K", buckets[3].Label)
	assert.Equal(t, 0, buckets[3].Count)
	assert.Equal(t, ">100K", buckets[4].Label)
	assert.Equal(t, 1, buckets[4].Count)
}

func TestSalaryDistribution_Boundaries(t *testing.T) {
	t.Parallel()

	// Lower bounds are inclusive, upper bounds exclusive.
	buckets := SalaryDistribution([]float64{0, 29999.99, 30000, 100000})
	assert.Equal(t, 2, buckets[0].Count)
	assert.Equal(t, 1, buckets[1].Count)
	assert.Equal(t, 1, buckets[4].Count)
}
