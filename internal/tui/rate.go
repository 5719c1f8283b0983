package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

// rateModel submits a 1..5 star rating with an optional comment. The star
// count is picked with the arrow keys, not typed.
type rateModel struct {
	therapistID   int
	therapistName string
	stars         int
	comment       textinput.Model
	submitting    bool
}

func newRateModel(therapistName string) rateModel {
	comment := textinput.New()
	comment.Placeholder = "optional comment"
	comment.CharLimit = 500
	comment.Width = 60
	comment.Focus()

	return rateModel{therapistName: therapistName, stars: 5, comment: comment}
}

func (m rateModel) View() string {
	out := titleStyle.Render("Rate "+m.therapistName) + "\n\n"
	out += fmt.Sprintf("Rating   %s%s (%d/5)\n",
		strings.Repeat("★", m.stars), strings.Repeat("☆", 5-m.stars), m.stars)
	out += fmt.Sprintf("Comment  [%s]\n", m.comment.View())

	if m.submitting {
		out += "\nSubmitting...\n"
	}

	out += "\n" + helpStyle.Render("←/→ stars  enter submit  esc back")
	return out
}
