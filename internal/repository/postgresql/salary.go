package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/beteamly/beteamly-backend-go/internal/domain/payroll"
	"github.com/beteamly/beteamly-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

type salaryRepository struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) payroll.SalaryRepository {
	return &salaryRepository{db: db}
}

const salaryColumns = `
	s.id, s.employee_id, s.company_id, s.month, s.year,
	s.base_salary, s.bonus, s.overtime, s.overtime_hours, s.deductions,
	s.effective_from, s.status, s.created_at, s.updated_at
`

func scanSalary(row pgx.Row) (payroll.SalaryRecord, error) {
	var rec payroll.SalaryRecord
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.CompanyID, &rec.Month, &rec.Year,
		&rec.BaseSalary, &rec.Bonus, &rec.Overtime, &rec.OvertimeHours, &rec.Deductions,
		&rec.EffectiveFrom, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// Create implements payroll.SalaryRepository. The unique index on
// (employee_id, month, year) enforces one record per period.
func (r *salaryRepository) Create(ctx context.Context, record payroll.SalaryRecord) (payroll.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salaries (
			id, employee_id, company_id, month, year,
			base_salary, bonus, overtime, overtime_hours, deductions,
			effective_from, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.ID,
		record.EmployeeID,
		record.CompanyID,
		record.Month,
		record.Year,
		record.BaseSalary,
		record.Bonus,
		record.Overtime,
		record.OvertimeHours,
		record.Deductions,
		record.EffectiveFrom,
		record.Status,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return payroll.SalaryRecord{}, payroll.ErrSalaryExistsForPeriod
		}
		return payroll.SalaryRecord{}, fmt.Errorf("failed to create salary record: %w", err)
	}

	return record, nil
}

// Update implements payroll.SalaryRepository.
func (r *salaryRepository) Update(ctx context.Context, record payroll.SalaryRecord) (payroll.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE salaries
		SET base_salary = $1, bonus = $2, overtime = $3, overtime_hours = $4,
			deductions = $5, effective_from = $6, status = $7, updated_at = NOW()
		WHERE id = $8 AND company_id = $9
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		record.BaseSalary,
		record.Bonus,
		record.Overtime,
		record.OvertimeHours,
		record.Deductions,
		record.EffectiveFrom,
		record.Status,
		record.ID,
		record.CompanyID,
	).Scan(&record.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.SalaryRecord{}, payroll.ErrSalaryNotFound
		}
		return payroll.SalaryRecord{}, fmt.Errorf("failed to update salary record: %w", err)
	}

	return record, nil
}

// GetByID implements payroll.SalaryRepository.
func (r *salaryRepository) GetByID(ctx context.Context, id string, companyID string) (payroll.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM salaries s
		WHERE s.id = $1 AND s.company_id = $2
	`, salaryColumns)

	rec, err := scanSalary(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.SalaryRecord{}, payroll.ErrSalaryNotFound
		}
		return payroll.SalaryRecord{}, fmt.Errorf("failed to get salary record: %w", err)
	}

	return rec, nil
}

// List implements payroll.SalaryRepository.
func (r *salaryRepository) List(ctx context.Context, filter payroll.SalaryFilter, companyID string) ([]payroll.SalaryRecord, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"s.company_id = $1"}
	args := []any{companyID}
	argPos := 2

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("s.employee_id = $%d", argPos))
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.Month != nil {
		conditions = append(conditions, fmt.Sprintf("s.month = $%d", argPos))
		args = append(args, *filter.Month)
		argPos++
	}
	if filter.Year != nil {
		conditions = append(conditions, fmt.Sprintf("s.year = $%d", argPos))
		args = append(args, *filter.Year)
		argPos++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("s.status = $%d", argPos))
		args = append(args, *filter.Status)
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM salaries s WHERE %s`, where)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count salary records: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s, e.name
		FROM salaries s
		JOIN employees e ON e.id = s.employee_id
		WHERE %s
		ORDER BY s.year DESC, s.month DESC, e.name
		LIMIT $%d OFFSET $%d
	`, salaryColumns, where, argPos, argPos+1)

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list salary records: %w", err)
	}
	defer rows.Close()

	var records []payroll.SalaryRecord
	for rows.Next() {
		var rec payroll.SalaryRecord
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.CompanyID, &rec.Month, &rec.Year,
			&rec.BaseSalary, &rec.Bonus, &rec.Overtime, &rec.OvertimeHours, &rec.Deductions,
			&rec.EffectiveFrom, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
			&rec.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan salary record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate salary records: %w", err)
	}

	return records, total, nil
}

// ListActiveBaseSalaries implements payroll.SalaryRepository. For every
// employee the most recent non-cancelled record wins.
func (r *salaryRepository) ListActiveBaseSalaries(ctx context.Context, companyID string) (map[string]decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT ON (s.employee_id) s.employee_id, s.base_salary
		FROM salaries s
		WHERE s.company_id = $1
		  AND s.status <> 'cancelled'
		ORDER BY s.employee_id, s.year DESC, s.month DESC
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active base salaries: %w", err)
	}
	defer rows.Close()

	salaries := make(map[string]decimal.Decimal)
	for rows.Next() {
		var employeeID string
		var base decimal.Decimal
		if err := rows.Scan(&employeeID, &base); err != nil {
			return nil, fmt.Errorf("failed to scan base salary: %w", err)
		}
		salaries[employeeID] = base
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate base salaries: %w", err)
	}

	return salaries, nil
}
