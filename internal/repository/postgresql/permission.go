package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/attendly-hq/attendly-backend-go/internal/domain/permission"
	"github.com/attendly-hq/attendly-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type permissionRepository struct {
	db *database.DB
}

func NewPermissionRepository(db *database.DB) permission.PermissionRepository {
	return &permissionRepository{db: db}
}

// Create implements permission.PermissionRepository.
func (r *permissionRepository) Create(ctx context.Context, p permission.Permission) (permission.Permission, error) {
	q := database.QuerierFromContext(ctx, r.db)

	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	query := `
		INSERT INTO permissions (id, employee_id, date, start_time, end_time, reason, duration_minutes, extra_minutes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		p.ID,
		p.EmployeeID,
		localDay(p.Date),
		p.StartTime,
		p.EndTime,
		p.Reason,
		p.DurationMinutes,
		p.ExtraMinutes,
	).Scan(&p.CreatedAt)

	if err != nil {
		return permission.Permission{}, fmt.Errorf("failed to create permission: %w", err)
	}

	return p, nil
}

// SumMinutesInWindow implements permission.PermissionRepository.
func (r *permissionRepository) SumMinutesInWindow(ctx context.Context, employeeID string, start, end time.Time) (int, error) {
	q := database.QuerierFromContext(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(duration_minutes), 0)
		FROM permissions
		WHERE employee_id = $1
		  AND date BETWEEN $2 AND $3
	`

	var total int
	if err := q.QueryRow(ctx, query, employeeID, localDay(start), localDay(end)).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum permission minutes in window: %w", err)
	}

	return total, nil
}

// List implements permission.PermissionRepository.
func (r *permissionRepository) List(ctx context.Context, filter permission.Filter) ([]permission.Permission, error) {
	q := database.QuerierFromContext(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND p.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	if filter.Date != nil && *filter.Date != "" {
		baseWhere += fmt.Sprintf(" AND p.date = $%d", argIdx)
		args = append(args, *filter.Date)
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT p.id, p.employee_id, p.date, p.start_time, p.end_time, p.reason,
			   p.duration_minutes, p.extra_minutes, p.created_at,
			   e.name AS employee_name,
			   e.employee_code,
			   e.department
		FROM permissions p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE %s
		ORDER BY p.created_at DESC
	`, baseWhere)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query permissions: %w", err)
	}
	defer rows.Close()

	var permissions []permission.Permission
	for rows.Next() {
		var p permission.Permission
		err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.Date, &p.StartTime, &p.EndTime, &p.Reason,
			&p.DurationMinutes, &p.ExtraMinutes, &p.CreatedAt,
			&p.EmployeeName, &p.EmployeeCode, &p.Department,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan permission: %w", err)
		}
		permissions = append(permissions, p)
	}

	return permissions, rows.Err()
}
