package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attendly-hq/attendly-backend-go/internal/domain/leave"
	"github.com/attendly-hq/attendly-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := database.QuerierFromContext(ctx, r.db)

	if request.ID == "" {
		request.ID = uuid.NewString()
	}

	query := `
		INSERT INTO leave_requests (id, employee_id, from_date, to_date, reason, total_days, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.ID,
		request.EmployeeID,
		localDay(request.FromDate),
		localDay(request.ToDate),
		request.Reason,
		request.TotalDays,
		request.Status,
	).Scan(&request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return request, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := database.QuerierFromContext(ctx, r.db)

	query := `
		SELECT l.id, l.employee_id, l.from_date, l.to_date, l.reason, l.total_days,
			   l.status, l.created_at, l.updated_at,
			   e.name AS employee_name,
			   e.employee_code,
			   e.department
		FROM leave_requests l
		LEFT JOIN employees e ON e.id = l.employee_id
		WHERE l.id = $1
	`

	var req leave.LeaveRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeID, &req.FromDate, &req.ToDate, &req.Reason,
		&req.TotalDays, &req.Status, &req.CreatedAt, &req.UpdatedAt,
		&req.EmployeeName, &req.EmployeeCode, &req.Department,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request by ID: %w", err)
	}

	return req, nil
}

// SumDaysInWindow implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) SumDaysInWindow(ctx context.Context, employeeID string, start, end time.Time) (int, error) {
	q := database.QuerierFromContext(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(total_days), 0)
		FROM leave_requests
		WHERE employee_id = $1
		  AND status IN ($2, $3)
		  AND from_date BETWEEN $4 AND $5
	`

	var total int
	err := q.QueryRow(ctx, query, employeeID,
		leave.LeaveRequestStatusPending, leave.LeaveRequestStatusApproved,
		localDay(start), localDay(end),
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum leave days in window: %w", err)
	}

	return total, nil
}

// UpdateStatus implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) UpdateStatus(ctx context.Context, id string, status leave.LeaveRequestStatus) error {
	q := database.QuerierFromContext(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2, updated_at = $3
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, id, status, time.Now()).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.ErrLeaveRequestNotFound
		}
		return fmt.Errorf("failed to update leave request status: %w", err)
	}

	return nil
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) List(ctx context.Context, filter leave.Filter) ([]leave.LeaveRequest, error) {
	q := database.QuerierFromContext(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND l.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND l.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT l.id, l.employee_id, l.from_date, l.to_date, l.reason, l.total_days,
			   l.status, l.created_at, l.updated_at,
			   e.name AS employee_name,
			   e.employee_code,
			   e.department
		FROM leave_requests l
		LEFT JOIN employees e ON e.id = l.employee_id
		WHERE %s
		ORDER BY l.created_at DESC
	`, baseWhere)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.FromDate, &req.ToDate, &req.Reason,
			&req.TotalDays, &req.Status, &req.CreatedAt, &req.UpdatedAt,
			&req.EmployeeName, &req.EmployeeCode, &req.Department,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

// CountByStatus implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) CountByStatus(ctx context.Context, status leave.LeaveRequestStatus) (int64, error) {
	q := database.QuerierFromContext(ctx, r.db)

	var total int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM leave_requests WHERE status = $1`, status).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	return total, nil
}
