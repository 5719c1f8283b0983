package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/futuristic/perceptronx/internal/service"
	"github.com/futuristic/perceptronx/models"
)

// specialtyOptions mirrors the filter choices the directory understands.
var specialtyOptions = []string{
	service.AllSpecialties,
	"Anxiety",
	"Depression",
	"Trauma",
	"Relationships",
	"Addiction",
	"Stress Management",
	"Self-Esteem",
	"Grief",
	"Family Therapy",
	"Cognitive Behavioral Therapy",
}

// finderModel is the therapist search screen. The search input stays
// focused; arrows move the selection and cycle the specialty filter.
type finderModel struct {
	search       textinput.Model
	specialtyIdx int
	items        []models.TherapistSummary
	idx          int
	loading      bool
	spinner      spinner.Model
}

func newFinderModel() finderModel {
	search := textinput.New()
	search.Placeholder = "search by name"
	search.CharLimit = 64
	search.Width = 40
	search.Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return finderModel{search: search, spinner: s, loading: true}
}

func (m finderModel) specialty() string {
	return specialtyOptions[m.specialtyIdx]
}

func (m finderModel) current() (models.TherapistSummary, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.TherapistSummary{}, false
	}
	return m.items[m.idx], true
}

func (m finderModel) View() string {
	header := titleStyle.Render("Find a Therapist")
	if m.loading {
		header += "  " + m.spinner.View()
	}

	out := header + "\n\n"
	out += fmt.Sprintf("Search     [%s]\n", m.search.View())
	out += fmt.Sprintf("Specialty  < %s >\n\n", m.specialty())

	switch {
	case m.loading:
		out += "Loading...\n"
	case len(m.items) == 0:
		out += "No therapists match your search.\n"
	default:
		for i, item := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s%s  %s  %.1f★ (%d)  %s\n",
				cursor, item.Name, strings.Join(item.Specialties, ", "),
				item.Rating, item.ReviewCount, item.Location)
		}
	}

	out += "\n" + helpStyle.Render("enter open  ↑/↓ select  tab specialty  ctrl+r reload  esc back")
	return out
}
