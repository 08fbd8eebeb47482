package entity

// AppointmentFilter is a domain-level filter for querying appointments.
// Used by repository layer to avoid coupling with delivery DTOs.
// All non-empty fields are AND-combined.
type AppointmentFilter struct {
	DateFrom    string // Format: YYYY-MM-DD
	DateTo      string // Format: YYYY-MM-DD
	PatientName string // Case-insensitive substring match on patient full name
	DoctorName  string // Case-insensitive substring match on doctor full name
	Status      AppointmentStatus
}
