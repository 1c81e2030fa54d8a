package postgresql

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attendly-hq/attendly-backend-go/internal/pkg/period"
)

func TestLocalDay(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"utc midnight", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), "2025-03-10"},
		// Local midnights sit on the previous or next UTC day; the DATE
		// literal must still carry the local calendar day.
		{"kolkata midnight", time.Date(2025, 3, 10, 0, 0, 0, 0, kolkata), "2025-03-10"},
		{"new york midnight", time.Date(2025, 3, 1, 0, 0, 0, 0, newYork), "2025-03-01"},
		{"end of local day", time.Date(2025, 3, 10, 23, 59, 59, 0, newYork), "2025-03-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, localDay(tt.t))
		})
	}
}

func TestLocalDayOnWindowEndpoints(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// A leave starting on the 1st of the month must fall inside the month
	// window once both sides are rendered as calendar days.
	monthStart, monthEnd := period.MonthWindow(time.Date(2025, 3, 15, 12, 0, 0, 0, newYork), newYork)
	assert.Equal(t, "2025-03-01", localDay(monthStart))
	assert.Equal(t, "2025-03-31", localDay(monthEnd))

	fromDate := time.Date(2025, 3, 1, 0, 0, 0, 0, newYork)
	assert.GreaterOrEqual(t, localDay(fromDate), localDay(monthStart))
	assert.LessOrEqual(t, localDay(fromDate), localDay(monthEnd))

	dayStart, dayEnd := period.DayWindow(time.Date(2025, 3, 10, 9, 0, 0, 0, newYork), newYork)
	assert.Equal(t, "2025-03-10", localDay(dayStart))
	assert.Equal(t, "2025-03-10", localDay(dayEnd))
}
