package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attendly-hq/attendly-backend-go/internal/domain/attendance"
	"github.com/attendly-hq/attendly-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.AttendanceRepository. The attendances table
// carries UNIQUE (employee_id, date); a concurrent duplicate check-in that
// slipped past the precondition read surfaces here as a unique violation and
// is mapped back to the domain error.
func (r *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := database.QuerierFromContext(ctx, r.db)

	if newAttendance.ID == "" {
		newAttendance.ID = uuid.NewString()
	}

	query := `
		INSERT INTO attendances (id, employee_id, date, check_in)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newAttendance.ID,
		newAttendance.EmployeeID,
		localDay(newAttendance.Date),
		newAttendance.CheckIn,
	).Scan(&newAttendance.CreatedAt, &newAttendance.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return newAttendance, nil
}

// GetByEmployeeAndWindow implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployeeAndWindow(ctx context.Context, employeeID string, start, end time.Time) (*attendance.Attendance, error) {
	q := database.QuerierFromContext(ctx, r.db)

	query := `
		SELECT id, employee_id, date, check_in, check_out, total_hours,
			   created_at, updated_at
		FROM attendances
		WHERE employee_id = $1
		  AND date BETWEEN $2 AND $3
		LIMIT 1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, employeeID, localDay(start), localDay(end)).Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.CheckIn, &att.CheckOut,
		&att.TotalHours, &att.CreatedAt, &att.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no record for the window
		}
		return nil, fmt.Errorf("failed to get attendance by employee and window: %w", err)
	}

	return &att, nil
}

// SetCheckOut implements attendance.AttendanceRepository.
func (r *attendanceRepository) SetCheckOut(ctx context.Context, id string, checkOut time.Time, totalHours float64) error {
	q := database.QuerierFromContext(ctx, r.db)

	query := `
		UPDATE attendances
		SET check_out = $2, total_hours = $3, updated_at = $4
		WHERE id = $1 AND check_out IS NULL
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, id, checkOut, totalHours, time.Now()).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrAlreadyCheckedOut
		}
		return fmt.Errorf("failed to set check-out: %w", err)
	}

	return nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.Filter) ([]attendance.Attendance, error) {
	q := database.QuerierFromContext(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND a.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	if filter.Date != nil && *filter.Date != "" {
		baseWhere += fmt.Sprintf(" AND a.date = $%d", argIdx)
		args = append(args, *filter.Date)
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT a.id, a.employee_id, a.date, a.check_in, a.check_out, a.total_hours,
			   a.created_at, a.updated_at,
			   e.name AS employee_name,
			   e.employee_code,
			   e.department
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE %s
		ORDER BY a.date DESC
	`, baseWhere)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date, &att.CheckIn, &att.CheckOut,
			&att.TotalHours, &att.CreatedAt, &att.UpdatedAt,
			&att.EmployeeName, &att.EmployeeCode, &att.Department,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}

	return attendances, rows.Err()
}
