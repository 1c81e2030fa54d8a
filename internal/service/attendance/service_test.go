package attendance

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attendly-hq/attendly-backend-go/internal/domain/attendance"
)

// noopTx satisfies database.TxRunner without a real database.
type noopTx struct{}

func (noopTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeAttendanceRepo struct {
	records []attendance.Attendance
	nextID  int
}

func (r *fakeAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	for _, existing := range r.records {
		if existing.EmployeeID == att.EmployeeID && existing.Date.Equal(att.Date) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
	}
	r.nextID++
	att.ID = strconv.Itoa(r.nextID)
	r.records = append(r.records, att)
	return att, nil
}

func (r *fakeAttendanceRepo) GetByEmployeeAndWindow(_ context.Context, employeeID string, start, end time.Time) (*attendance.Attendance, error) {
	for i := range r.records {
		att := &r.records[i]
		if att.EmployeeID != employeeID {
			continue
		}
		if !att.Date.Before(start) && !att.Date.After(end) {
			return att, nil
		}
	}
	return nil, nil
}

func (r *fakeAttendanceRepo) SetCheckOut(_ context.Context, id string, checkOut time.Time, totalHours float64) error {
	for i := range r.records {
		if r.records[i].ID == id && r.records[i].CheckOut == nil {
			r.records[i].CheckOut = &checkOut
			r.records[i].TotalHours = &totalHours
			return nil
		}
	}
	return attendance.ErrAlreadyCheckedOut
}

func (r *fakeAttendanceRepo) List(_ context.Context, _ attendance.Filter) ([]attendance.Attendance, error) {
	return r.records, nil
}

func newTestService(repo *fakeAttendanceRepo, now time.Time) *AttendanceServiceImpl {
	svc := NewAttendanceService(noopTx{}, repo, time.UTC).(*AttendanceServiceImpl)
	svc.now = func() time.Time { return now }
	return svc
}

func TestCheckIn(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	now := time.Date(2025, 3, 10, 9, 15, 0, 0, time.UTC)
	svc := newTestService(repo, now)

	resp, err := svc.CheckIn(context.Background(), "emp-1")
	require.NoError(t, err)

	assert.Equal(t, "2025-03-10", resp.Date)
	assert.Equal(t, now.Format(time.RFC3339), resp.CheckIn)
	assert.Nil(t, resp.CheckOut)
	assert.Nil(t, resp.TotalHours)
}

func TestCheckInTwiceSameDay(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc := newTestService(repo, now)

	_, err := svc.CheckIn(context.Background(), "emp-1")
	require.NoError(t, err)

	_, err = svc.CheckIn(context.Background(), "emp-1")
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
	assert.Len(t, repo.records, 1)
}

func TestCheckInAfterCheckOutSameDay(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := newTestService(repo, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))

	_, err := svc.CheckIn(context.Background(), "emp-1")
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC) }
	_, err = svc.CheckOut(context.Background(), "emp-1")
	require.NoError(t, err)

	// A closed day stays closed; no second cycle.
	_, err = svc.CheckIn(context.Background(), "emp-1")
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestCheckInSeparateDays(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := newTestService(repo, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))

	_, err := svc.CheckIn(context.Background(), "emp-1")
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC) }
	_, err = svc.CheckIn(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Len(t, repo.records, 2)
}

func TestCheckOut(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := newTestService(repo, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))

	_, err := svc.CheckIn(context.Background(), "emp-1")
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2025, 3, 10, 17, 30, 0, 0, time.UTC) }
	resp, err := svc.CheckOut(context.Background(), "emp-1")
	require.NoError(t, err)

	require.NotNil(t, resp.TotalHours)
	assert.Equal(t, 8.5, *resp.TotalHours)
	require.NotNil(t, resp.CheckOut)
	assert.Equal(t, "2025-03-10T17:30:00Z", *resp.CheckOut)
}

func TestCheckOutWithoutCheckIn(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := newTestService(repo, time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC))

	_, err := svc.CheckOut(context.Background(), "emp-1")
	assert.ErrorIs(t, err, attendance.ErrNoCheckInFound)
}

func TestCheckOutTwice(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := newTestService(repo, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))

	_, err := svc.CheckIn(context.Background(), "emp-1")
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC) }
	_, err = svc.CheckOut(context.Background(), "emp-1")
	require.NoError(t, err)

	_, err = svc.CheckOut(context.Background(), "emp-1")
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestTotalHoursRounding(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		want     float64
	}{
		{"full day", 8 * time.Hour, 8},
		{"half hour", 8*time.Hour + 30*time.Minute, 8.5},
		{"rounds up", 7*time.Hour + 37*time.Minute, 7.62},
		{"rounds down", 7*time.Hour + 44*time.Minute, 7.73},
		{"short stint", 4 * time.Minute, 0.07},
		{"zero", 0, 0},
		// Clock skew can place the check-out instant before the stored
		// check-in; the signed duration is recorded as-is.
		{"check-out before check-in", -30 * time.Minute, -0.5},
	}

	checkIn := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TotalHours(checkIn, checkIn.Add(tt.duration))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestListRejectsBadFilter(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := newTestService(repo, time.Now())

	badDate := "10-03-2025"
	_, err := svc.List(context.Background(), attendance.Filter{Date: &badDate})
	assert.Error(t, err)
}
