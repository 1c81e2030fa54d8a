package permission

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attendly-hq/attendly-backend-go/internal/domain/permission"
)

type noopTx struct{}

func (noopTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakePermissionRepo struct {
	permissions []permission.Permission
	nextID      int
}

func (r *fakePermissionRepo) Create(_ context.Context, p permission.Permission) (permission.Permission, error) {
	r.nextID++
	p.ID = strconv.Itoa(r.nextID)
	p.CreatedAt = time.Now()
	r.permissions = append(r.permissions, p)
	return p, nil
}

func (r *fakePermissionRepo) SumMinutesInWindow(_ context.Context, employeeID string, start, end time.Time) (int, error) {
	sum := 0
	for _, p := range r.permissions {
		if p.EmployeeID != employeeID {
			continue
		}
		if !p.Date.Before(start) && !p.Date.After(end) {
			sum += p.DurationMinutes
		}
	}
	return sum, nil
}

func (r *fakePermissionRepo) List(_ context.Context, _ permission.Filter) ([]permission.Permission, error) {
	return r.permissions, nil
}

func newTestService(repo *fakePermissionRepo, now time.Time) *PermissionServiceImpl {
	svc := NewPermissionService(noopTx{}, repo, time.UTC, 120).(*PermissionServiceImpl)
	svc.now = func() time.Time { return now }
	return svc
}

func submit(t *testing.T, svc permission.PermissionService, start, end string) (permission.SubmitPermissionResponse, error) {
	t.Helper()
	return svc.Submit(context.Background(), permission.SubmitPermissionRequest{
		EmployeeID: "emp-1",
		StartTime:  start,
		EndTime:    end,
		Reason:     "doctor appointment",
	})
}

func TestSubmit(t *testing.T) {
	repo := &fakePermissionRepo{}
	svc := newTestService(repo, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))

	resp, err := submit(t, svc, "2025-03-10T10:00:00Z", "2025-03-10T10:40:00Z")
	require.NoError(t, err)

	assert.Equal(t, 40, resp.Permission.DurationMinutes)
	assert.Equal(t, 0, resp.Permission.ExtraMinutes)
	assert.Equal(t, 40, resp.TotalUsedMinutes)
	assert.Equal(t, 80, resp.RemainingMinutes)
	assert.False(t, resp.ExceededLimit)
}

func TestSubmitOverDailyCapStillSucceeds(t *testing.T) {
	repo := &fakePermissionRepo{}
	svc := newTestService(repo, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))

	_, err := submit(t, svc, "2025-03-10T10:00:00Z", "2025-03-10T10:40:00Z")
	require.NoError(t, err)

	// 40 used, 90 more: the cap of 120 is advisory, so the request lands
	// with the 10-minute overage recorded against it.
	resp, err := submit(t, svc, "2025-03-10T14:00:00Z", "2025-03-10T15:30:00Z")
	require.NoError(t, err)

	assert.Equal(t, 90, resp.Permission.DurationMinutes)
	assert.Equal(t, 10, resp.Permission.ExtraMinutes)
	assert.Equal(t, 130, resp.TotalUsedMinutes)
	assert.Equal(t, 0, resp.RemainingMinutes)
	assert.True(t, resp.ExceededLimit)
	assert.Len(t, repo.permissions, 2)
}

func TestSubmitOverageExceedsDuration(t *testing.T) {
	repo := &fakePermissionRepo{}
	svc := newTestService(repo, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))

	_, err := submit(t, svc, "2025-03-10T09:00:00Z", "2025-03-10T11:30:00Z")
	require.NoError(t, err)

	// 150 used, 20 more: overage is the full distance past the cap, even
	// beyond what this request contributed.
	resp, err := submit(t, svc, "2025-03-10T14:00:00Z", "2025-03-10T14:20:00Z")
	require.NoError(t, err)
	assert.Equal(t, 50, resp.Permission.ExtraMinutes)
	assert.Equal(t, 170, resp.TotalUsedMinutes)
}

func TestSubmitExactlyAtCap(t *testing.T) {
	repo := &fakePermissionRepo{}
	svc := newTestService(repo, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))

	resp, err := submit(t, svc, "2025-03-10T09:00:00Z", "2025-03-10T11:00:00Z")
	require.NoError(t, err)

	assert.Equal(t, 120, resp.TotalUsedMinutes)
	assert.Equal(t, 0, resp.Permission.ExtraMinutes)
	assert.Equal(t, 0, resp.RemainingMinutes)
	assert.False(t, resp.ExceededLimit)
}

func TestSubmitAccountingResetsAcrossDays(t *testing.T) {
	repo := &fakePermissionRepo{}
	svc := newTestService(repo, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))

	_, err := submit(t, svc, "2025-03-10T09:00:00Z", "2025-03-10T11:00:00Z")
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC) }
	resp, err := submit(t, svc, "2025-03-11T09:00:00Z", "2025-03-11T10:00:00Z")
	require.NoError(t, err)

	assert.Equal(t, 60, resp.TotalUsedMinutes)
	assert.Equal(t, 0, resp.Permission.ExtraMinutes)
	assert.False(t, resp.ExceededLimit)
}

func TestSubmitAccountingAnchoredToSubmissionDay(t *testing.T) {
	repo := &fakePermissionRepo{}
	svc := newTestService(repo, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))

	_, err := submit(t, svc, "2025-03-10T09:00:00Z", "2025-03-10T10:40:00Z")
	require.NoError(t, err)

	// A permission slotted for tomorrow still counts against today's usage
	// and is recorded under today's date.
	resp, err := submit(t, svc, "2025-03-11T14:00:00Z", "2025-03-11T14:40:00Z")
	require.NoError(t, err)

	assert.Equal(t, "2025-03-10", resp.Permission.Date)
	assert.Equal(t, 140, resp.TotalUsedMinutes)
	assert.Equal(t, 20, resp.Permission.ExtraMinutes)
	assert.True(t, resp.ExceededLimit)
}

func TestSubmitDurationDropsPartialMinute(t *testing.T) {
	repo := &fakePermissionRepo{}
	svc := newTestService(repo, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))

	resp, err := submit(t, svc, "2025-03-10T10:00:00Z", "2025-03-10T10:30:45Z")
	require.NoError(t, err)
	assert.Equal(t, 30, resp.Permission.DurationMinutes)
}

func TestSubmitInvalidTimeRange(t *testing.T) {
	repo := &fakePermissionRepo{}
	svc := newTestService(repo, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))

	_, err := submit(t, svc, "2025-03-10T11:00:00Z", "2025-03-10T10:00:00Z")
	assert.ErrorIs(t, err, permission.ErrInvalidTimeRange)

	// Under a minute floors to zero, which is not a usable permission.
	_, err = submit(t, svc, "2025-03-10T10:00:00Z", "2025-03-10T10:00:30Z")
	assert.ErrorIs(t, err, permission.ErrInvalidTimeRange)

	assert.Empty(t, repo.permissions)
}

func TestSubmitRejectsMalformedTimestamps(t *testing.T) {
	repo := &fakePermissionRepo{}
	svc := newTestService(repo, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))

	_, err := submit(t, svc, "10:00", "11:00")
	assert.Error(t, err)
}
