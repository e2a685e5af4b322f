// Package query derives views from appointment and doctor snapshots.
// Every function is pure: inputs are never modified and results are new slices.
package query

import (
	"slices"
	"time"

	"medrep-visits/internal/domain/entity"
)

// Upcoming returns scheduled appointments dated today or later, earliest
// first. today is reduced to its calendar date in its own location, so an
// appointment dated today is included whatever its time. Appointments whose
// date does not parse are left out. Ties keep insertion order.
func Upcoming(appointments []entity.Appointment, today time.Time) []entity.Appointment {
	start := calendarDay(today)

	out := make([]entity.Appointment, 0, len(appointments))
	days := make(map[string]time.Time, len(appointments))
	for _, appointment := range appointments {
		if !appointment.IsScheduled() {
			continue
		}
		day, err := appointment.Day(start.Location())
		if err != nil || day.Before(start) {
			continue
		}
		days[appointment.Date] = day
		out = append(out, appointment)
	}

	slices.SortStableFunc(out, func(a, b entity.Appointment) int {
		return days[a.Date].Compare(days[b.Date])
	})
	return out
}

// History returns the appointments matching filter, most recent date first.
// Appointments whose date does not parse sort last; ties keep insertion order.
func History(appointments []entity.Appointment, filter entity.StatusFilter) []entity.Appointment {
	out := make([]entity.Appointment, 0, len(appointments))
	for i := range appointments {
		if filter.Matches(&appointments[i]) {
			out = append(out, appointments[i])
		}
	}

	slices.SortStableFunc(out, func(a, b entity.Appointment) int {
		dayA, errA := a.Day(time.UTC)
		dayB, errB := b.Day(time.UTC)
		switch {
		case errA != nil && errB != nil:
			return 0
		case errA != nil:
			return 1
		case errB != nil:
			return -1
		}
		return dayB.Compare(dayA)
	})
	return out
}

// CountByStatus tallies appointments per status.
func CountByStatus(appointments []entity.Appointment) entity.StatusCounts {
	counts := entity.StatusCounts{Total: len(appointments)}
	for _, appointment := range appointments {
		switch appointment.Status {
		case entity.AppointmentStatusScheduled:
			counts.Scheduled++
		case entity.AppointmentStatusCompleted:
			counts.Completed++
		case entity.AppointmentStatusCancelled:
			counts.Cancelled++
		}
	}
	return counts
}

// Dashboard computes the overview figures relative to today:
// non-cancelled appointments dated in the current month, distinct doctors
// with a completed visit, and upcoming appointments in the next seven days
// including today.
func Dashboard(appointments []entity.Appointment, today time.Time) entity.DashboardStats {
	start := calendarDay(today)
	weekEnd := start.AddDate(0, 0, 7)

	var stats entity.DashboardStats
	visited := make(map[string]struct{})
	for _, appointment := range appointments {
		if appointment.IsCompleted() {
			visited[appointment.DoctorID] = struct{}{}
		}
		if appointment.IsCancelled() {
			continue
		}
		day, err := appointment.Day(start.Location())
		if err != nil {
			continue
		}
		if day.Year() == start.Year() && day.Month() == start.Month() {
			stats.AppointmentsThisMonth++
		}
	}
	stats.DoctorsVisited = len(visited)

	for _, appointment := range Upcoming(appointments, today) {
		day, _ := appointment.Day(start.Location())
		if day.Before(weekEnd) {
			stats.UpcomingThisWeek++
		}
	}
	return stats
}

func calendarDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
