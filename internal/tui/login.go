package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
)

// loginModel renders the username/password form plus the remember-me
// checkbox. Focus index 2 is the checkbox; it has no text input behind it.
type loginModel struct {
	inputs     []textinput.Model
	focus      int
	remember   bool
	submitting bool
}

const loginFieldCount = 3

func newLoginModel() loginModel {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Width = 40
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return loginModel{inputs: []textinput.Model{username, password}}
}

func (m loginModel) View() string {
	checkbox := "[ ]"
	if m.remember {
		checkbox = "[x]"
	}
	marker := "  "
	if m.focus == 2 {
		marker = "> "
	}

	out := titleStyle.Render("Log in") + "\n\n"
	out += fmt.Sprintf("Username    [%s]\n", m.inputs[0].View())
	out += fmt.Sprintf("Password    [%s]\n", m.inputs[1].View())
	out += fmt.Sprintf("%s%s remember me\n", marker, checkbox)

	if m.submitting {
		out += "\nLogging in...\n"
	}

	out += "\n" + helpStyle.Render("enter submit  tab next field  space toggle  esc back")
	return out
}
