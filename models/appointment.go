package models

import "time"

// TimeSlot is a bookable slot returned by GET /therapists/{id}/availability.
// Slots are read-only on the client and grouped by date for display.
type TimeSlot struct {
	ID        int    `json:"id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Available bool   `json:"isAvailable"`
}

// TableName returns the name of the database table
// associated with the TimeSlot model.
func (t TimeSlot) TableName() string {
	return "time_slots"
}

// DaySchedule groups a therapist's slots for a single date, preserving the
// server's date order. It is a display grouping, not a wire entity.
type DaySchedule struct {
	Date  string
	Slots []TimeSlot
}

// AppointmentRequest is the write-only payload of POST /appointments/request.
// Optional fields are omitted from the body when blank.
type AppointmentRequest struct {
	TherapistID       int    `json:"therapist_id"`
	Date              string `json:"date"`
	Time              string `json:"time"`
	Type              string `json:"type"`
	Notes             string `json:"notes,omitempty"`
	InsuranceProvider string `json:"insuranceProvider,omitempty"`
	InsuranceMemberID string `json:"insuranceMemberId,omitempty"`
}

// Appointment is the server-side record created from an accepted
// [AppointmentRequest]. It never travels back to the submitting client in
// the request/response cycle; GET /user/appointments returns it.
type Appointment struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"-"`
	TherapistID int       `json:"therapist_id"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Type        string    `json:"type"`
	Notes       string    `json:"notes,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Appointment model.
func (a Appointment) TableName() string {
	return "appointments"
}
