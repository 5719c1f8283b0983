package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/futuristic/perceptronx/models"
)

// appointmentTypes are the session kinds the request form offers.
var appointmentTypes = []string{
	"Initial Consultation",
	"Regular Session",
	"Follow-up",
	"Emergency Session",
}

// appointmentFormModel collects an appointment request for one therapist.
// The session type is cycled with the arrow keys; the rest are text fields.
type appointmentFormModel struct {
	therapistID   int
	therapistName string

	inputs     []textinput.Model
	focus      int
	typeIdx    int
	submitting bool
}

const (
	apptFieldDate = iota
	apptFieldTime
	apptFieldNotes
	apptFieldInsurer
	apptFieldMemberID
)

func newAppointmentFormModel(therapistID int, therapistName string) appointmentFormModel {
	date := textinput.New()
	date.Placeholder = "YYYY-MM-DD"
	date.CharLimit = 10
	date.Width = 40
	date.Focus()

	timeOfDay := textinput.New()
	timeOfDay.Placeholder = "HH:MM"
	timeOfDay.CharLimit = 5
	timeOfDay.Width = 40

	notes := textinput.New()
	notes.Placeholder = "anything the office should know"
	notes.CharLimit = 500
	notes.Width = 40

	insurer := textinput.New()
	insurer.Placeholder = "insurance provider (optional)"
	insurer.CharLimit = 64
	insurer.Width = 40

	memberID := textinput.New()
	memberID.Placeholder = "member id (optional)"
	memberID.CharLimit = 64
	memberID.Width = 40

	return appointmentFormModel{
		therapistID:   therapistID,
		therapistName: therapistName,
		inputs:        []textinput.Model{date, timeOfDay, notes, insurer, memberID},
		focus:         1, // slot 0 is the type selector; start on the date field
	}
}

func (m appointmentFormModel) request() models.AppointmentRequest {
	return models.AppointmentRequest{
		TherapistID:       m.therapistID,
		Date:              m.inputs[apptFieldDate].Value(),
		Time:              m.inputs[apptFieldTime].Value(),
		Type:              appointmentTypes[m.typeIdx],
		Notes:             m.inputs[apptFieldNotes].Value(),
		InsuranceProvider: m.inputs[apptFieldInsurer].Value(),
		InsuranceMemberID: m.inputs[apptFieldMemberID].Value(),
	}
}

func (m appointmentFormModel) View() string {
	labels := []string{"Date", "Time", "Notes", "Insurer", "Member ID"}

	out := titleStyle.Render("Request an Appointment") + "\n" + m.therapistName + "\n\n"
	out += fmt.Sprintf("%-10s < %s >\n", "Type", appointmentTypes[m.typeIdx])
	for i, in := range m.inputs {
		out += fmt.Sprintf("%-10s [%s]\n", labels[i], in.View())
	}

	if m.submitting {
		out += "\nSubmitting...\n"
	}

	out += "\n" + helpStyle.Render("enter submit  tab next field  ←/→ type  esc back")
	return out
}
