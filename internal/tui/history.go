package tui

import (
	"fmt"

	"github.com/futuristic/perceptronx/models"
)

type historyModel struct {
	items   []models.Appointment
	loading bool
}

func (m historyModel) View() string {
	out := titleStyle.Render("My Appointments") + "\n\n"

	switch {
	case m.loading:
		out += "Loading...\n"
	case len(m.items) == 0:
		out += "No appointments yet.\n"
	default:
		for _, a := range m.items {
			out += fmt.Sprintf("%s %s  therapist #%d  %s  [%s]\n",
				a.Date, a.Time, a.TherapistID, a.Type, a.Status)
		}
	}

	out += "\n" + helpStyle.Render("ctrl+r reload  esc back")
	return out
}
