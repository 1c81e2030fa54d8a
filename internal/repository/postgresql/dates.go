package postgresql

import "time"

const dayLayout = "2006-01-02"

// localDay renders t's calendar day, in t's own location, as a DATE literal.
// Day-granularity parameters must reach DATE columns as dates: a time.Time
// argument is sent as timestamptz, and comparing a DATE column against it
// makes Postgres cast the column at the session TimeZone, shifting rows
// across day boundaries whenever the session zone differs from the
// configured one.
func localDay(t time.Time) string {
	return t.Format(dayLayout)
}
