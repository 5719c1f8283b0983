package tui

import (
	"fmt"

	"github.com/futuristic/perceptronx/models"
)

type scheduleModel struct {
	therapistName string
	days          []models.DaySchedule
	loading       bool
}

func (m scheduleModel) View() string {
	out := titleStyle.Render("Availability") + "\n" + m.therapistName + "\n\n"

	switch {
	case m.loading:
		out += "Loading...\n"
	case len(m.days) == 0:
		out += "No open slots at the moment.\n"
	default:
		for _, day := range m.days {
			out += day.Date + "\n"
			for _, slot := range day.Slots {
				mark := " "
				if !slot.Available {
					mark = "x"
				}
				out += fmt.Sprintf("  [%s] %s\n", mark, slot.Time)
			}
		}
	}

	out += "\n" + helpStyle.Render("b book  esc back")
	return out
}
