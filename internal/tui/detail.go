package tui

import (
	"fmt"
	"strings"

	"github.com/futuristic/perceptronx/models"
)

type detailModel struct {
	therapist models.Therapist
	loading   bool
	status    string
}

func (m detailModel) View() string {
	if m.loading {
		return titleStyle.Render("Therapist") + "\n\nLoading...\n"
	}

	t := m.therapist
	accepting := "not accepting new patients"
	if t.AcceptingNewPatients {
		accepting = "accepting new patients"
	}

	out := titleStyle.Render(t.Name) + "\n\n"
	out += fmt.Sprintf("Specialties:  %s\n", strings.Join(t.Specialties, ", "))
	out += fmt.Sprintf("Experience:   %d years\n", t.ExperienceYears)
	out += fmt.Sprintf("Languages:    %s\n", strings.Join(t.Languages, ", "))
	out += fmt.Sprintf("Rating:       %.1f★ (%d reviews)\n", t.Rating, t.ReviewCount)
	out += fmt.Sprintf("Session:      ~%d min\n", t.AverageSessionLength)
	out += fmt.Sprintf("Address:      %s\n", t.Address)
	out += fmt.Sprintf("Status:       %s\n", accepting)

	if t.Bio != "" {
		out += "\n" + t.Bio + "\n"
	}
	if len(t.Education) > 0 {
		out += "\nEducation:\n"
		for _, e := range t.Education {
			out += "  - " + e + "\n"
		}
	}

	if m.status != "" {
		out += "\n" + noticeStyle.Render(m.status) + "\n"
	}

	out += "\n" + helpStyle.Render("a availability  b book  m message  r rate  c copy address  esc back")
	return out
}
