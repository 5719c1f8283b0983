package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
)

type resetModel struct {
	input      textinput.Model
	submitting bool
	sent       bool
}

func newResetModel() resetModel {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 128
	email.Width = 40
	email.Focus()

	return resetModel{input: email}
}

func (m resetModel) View() string {
	out := titleStyle.Render("Forgot password") + "\n\n"

	if m.sent {
		out += "If the address is registered, reset instructions are on the way.\n"
		out += "\n" + helpStyle.Render("esc back")
		return out
	}

	out += fmt.Sprintf("Email  [%s]\n", m.input.View())
	if m.submitting {
		out += "\nSending...\n"
	}

	out += "\n" + helpStyle.Render("enter submit  esc back")
	return out
}
