package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
)

type registerModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newRegisterModel() registerModel {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Width = 40
	username.Focus()

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 128
	email.Width = 40

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	confirm := textinput.New()
	confirm.Placeholder = "repeat password"
	confirm.CharLimit = 256
	confirm.Width = 40
	confirm.EchoMode = textinput.EchoPassword
	confirm.EchoCharacter = '*'

	return registerModel{inputs: []textinput.Model{username, email, password, confirm}}
}

func (m registerModel) View() string {
	labels := []string{"Username", "Email", "Password", "Confirm"}

	out := titleStyle.Render("Create an account") + "\n\n"
	for i, in := range m.inputs {
		out += fmt.Sprintf("%-10s [%s]\n", labels[i], in.View())
	}

	if m.submitting {
		out += "\nRegistering...\n"
	}

	out += "\n" + helpStyle.Render("enter submit  tab next field  esc back")
	return out
}
