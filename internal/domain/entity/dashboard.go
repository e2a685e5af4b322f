package entity

// DashboardStats summarises the appointment collection for the dashboard.
type DashboardStats struct {
	AppointmentsThisMonth int `json:"appointmentsThisMonth"`
	DoctorsVisited        int `json:"doctorsVisited"`
	UpcomingThisWeek      int `json:"upcomingThisWeek"`
}

// StatusCounts counts appointments per status for the history summary.
type StatusCounts struct {
	Total     int `json:"total"`
	Scheduled int `json:"scheduled"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}
