package query

import (
	"time"

	"medrep-visits/internal/domain/entity"
)

const (
	displayDateLayout = "Mon, Jan 2, 2006"
	displayTimeLayout = "3:04 PM"
)

// FormatDisplayDate renders a stored YYYY-MM-DD date as "Thu, Oct 15, 2026".
// Input that does not parse is returned unchanged.
func FormatDisplayDate(date string) string {
	day, err := time.Parse(entity.DateLayout, date)
	if err != nil {
		return date
	}
	return day.Format(displayDateLayout)
}

// FormatDisplayTime renders a stored 24-hour HH:MM time on a 12-hour clock:
// "00:00" is "12:00 AM" and "12:30" is "12:30 PM".
// Input that does not parse is returned unchanged.
func FormatDisplayTime(clock string) string {
	t, err := time.Parse(entity.TimeLayout, clock)
	if err != nil {
		return clock
	}
	return t.Format(displayTimeLayout)
}
