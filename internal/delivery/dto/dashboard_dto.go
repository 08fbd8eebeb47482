package dto

// DashboardResponse is the role-dependent landing summary. Exactly one of
// the role sections is populated.
type DashboardResponse struct {
	Role    string            `json:"role"`
	Patient *PatientDashboard `json:"patient,omitempty"`
	Doctor  *DoctorDashboard  `json:"doctor,omitempty"`
	Admin   *AdminDashboard   `json:"admin,omitempty"`
}

type PatientDashboard struct {
	Profile              *PatientResponse      `json:"profile"`
	UpcomingAppointments []AppointmentResponse `json:"upcoming_appointments"`
	RecentBills          []BillResponse        `json:"recent_bills"`
}

type DoctorDashboard struct {
	Profile              *DoctorResponse       `json:"profile"`
	TodaysAppointments   []AppointmentResponse `json:"todays_appointments"`
	UpcomingAppointments []AppointmentResponse `json:"upcoming_appointments"`
}

type AdminDashboard struct {
	TotalDoctors      int64 `json:"total_doctors"`
	TotalPatients     int64 `json:"total_patients"`
	TotalAppointments int64 `json:"total_appointments"`
	PendingBills      int64 `json:"pending_bills"`
}
