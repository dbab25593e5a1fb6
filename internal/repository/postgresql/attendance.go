package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/beteamly/beteamly-backend-go/internal/domain/attendance"
	"github.com/beteamly/beteamly-backend-go/internal/pkg/clock"
	"github.com/beteamly/beteamly-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.company_id, a.date,
	a.check_in, a.check_out, a.worked_hours, a.raw_status,
	a.latitude, a.longitude, a.accuracy,
	a.created_at, a.updated_at
`

// scanAttendance reads one row. Check times are stored as "HH:MM" text so
// the scan goes through nullable strings.
func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	var checkIn, checkOut *string

	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.CompanyID, &att.Date,
		&checkIn, &checkOut, &att.WorkedHours, &att.RawStatus,
		&att.Latitude, &att.Longitude, &att.Accuracy,
		&att.CreatedAt, &att.UpdatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}

	if att.CheckIn, err = parseTimeOfDay(checkIn); err != nil {
		return attendance.Attendance{}, err
	}
	if att.CheckOut, err = parseTimeOfDay(checkOut); err != nil {
		return attendance.Attendance{}, err
	}

	return att, nil
}

func parseTimeOfDay(s *string) (*clock.TimeOfDay, error) {
	if s == nil {
		return nil, nil
	}
	t, err := clock.Parse(*s)
	if err != nil {
		return nil, fmt.Errorf("malformed time of day in storage: %w", err)
	}
	return &t, nil
}

func timeOfDayString(t *clock.TimeOfDay) *string {
	if t == nil {
		return nil
	}
	s := t.String()
	return &s
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (
			id, employee_id, company_id, date,
			check_in, check_out, worked_hours, raw_status,
			latitude, longitude, accuracy
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.ID,
		record.EmployeeID,
		record.CompanyID,
		record.Date,
		timeOfDayString(record.CheckIn),
		timeOfDayString(record.CheckOut),
		record.WorkedHours,
		record.RawStatus,
		record.Latitude,
		record.Longitude,
		record.Accuracy,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return record, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepository) Update(ctx context.Context, record attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET check_in = $1, check_out = $2, worked_hours = $3, raw_status = $4,
			latitude = $5, longitude = $6, accuracy = $7, updated_at = NOW()
		WHERE id = $8 AND company_id = $9
	`

	tag, err := q.Exec(ctx, query,
		timeOfDayString(record.CheckIn),
		timeOfDayString(record.CheckOut),
		record.WorkedHours,
		record.RawStatus,
		record.Latitude,
		record.Longitude,
		record.Accuracy,
		record.ID,
		record.CompanyID,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, companyID string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM attendances a
		WHERE a.employee_id = $1
		  AND a.date = $2
		  AND a.company_id = $3
		LIMIT 1
	`, attendanceColumns)

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &att, nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter, companyID string) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"a.company_id = $1"}
	args := []any{companyID}
	argPos := 2

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("a.employee_id = $%d", argPos))
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("a.date >= $%d", argPos))
		args = append(args, *filter.StartDate)
		argPos++
	}
	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("a.date <= $%d", argPos))
		args = append(args, *filter.EndDate)
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM attendances a WHERE %s`, where)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s, e.name
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE %s
		ORDER BY a.date DESC, a.check_in DESC NULLS LAST
		LIMIT $%d OFFSET $%d
	`, attendanceColumns, where, argPos, argPos+1)

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		var checkIn, checkOut *string

		err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.CompanyID, &att.Date,
			&checkIn, &checkOut, &att.WorkedHours, &att.RawStatus,
			&att.Latitude, &att.Longitude, &att.Accuracy,
			&att.CreatedAt, &att.UpdatedAt,
			&att.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		if att.CheckIn, err = parseTimeOfDay(checkIn); err != nil {
			return nil, 0, err
		}
		if att.CheckOut, err = parseTimeOfDay(checkOut); err != nil {
			return nil, 0, err
		}

		records = append(records, att)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate attendances: %w", err)
	}

	return records, total, nil
}

// ListByEmployeePeriod implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByEmployeePeriod(ctx context.Context, employeeID string, month, year int, companyID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM attendances a
		WHERE a.employee_id = $1
		  AND a.company_id = $2
		  AND EXTRACT(MONTH FROM a.date) = $3
		  AND EXTRACT(YEAR FROM a.date) = $4
		ORDER BY a.date
	`, attendanceColumns)

	rows, err := q.Query(ctx, query, employeeID, companyID, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances for employee period: %w", err)
	}
	defer rows.Close()

	return collectAttendances(rows)
}

// ListByCompanyPeriod implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByCompanyPeriod(ctx context.Context, companyID string, month, year int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM attendances a
		WHERE a.company_id = $1
		  AND EXTRACT(MONTH FROM a.date) = $2
		  AND EXTRACT(YEAR FROM a.date) = $3
		ORDER BY a.employee_id, a.date
	`, attendanceColumns)

	rows, err := q.Query(ctx, query, companyID, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances for company period: %w", err)
	}
	defer rows.Close()

	return collectAttendances(rows)
}

func collectAttendances(rows pgx.Rows) ([]attendance.Attendance, error) {
	var records []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendances: %w", err)
	}
	return records, nil
}
