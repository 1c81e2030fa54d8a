package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/attendly-hq/attendly-backend-go/internal/domain/dashboard"
	"github.com/attendly-hq/attendly-backend-go/internal/pkg/database"
)

type dashboardRepository struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepository{db: db}
}

// CountAttendanceInWindow implements dashboard.DashboardRepository.
func (r *dashboardRepository) CountAttendanceInWindow(ctx context.Context, start, end time.Time) (int64, error) {
	q := database.QuerierFromContext(ctx, r.db)

	var total int64
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM attendances WHERE date BETWEEN $1 AND $2`,
		localDay(start), localDay(end),
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count attendances in window: %w", err)
	}

	return total, nil
}

// CountPermissionsInWindow implements dashboard.DashboardRepository.
func (r *dashboardRepository) CountPermissionsInWindow(ctx context.Context, start, end time.Time, extraOnly bool) (int64, error) {
	q := database.QuerierFromContext(ctx, r.db)

	query := `SELECT COUNT(*) FROM permissions WHERE date BETWEEN $1 AND $2`
	if extraOnly {
		query += ` AND extra_minutes > 0`
	}

	var total int64
	if err := q.QueryRow(ctx, query, localDay(start), localDay(end)).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count permissions in window: %w", err)
	}

	return total, nil
}
