package tui

import (
	"fmt"

	"github.com/futuristic/perceptronx/models"
)

type profileModel struct {
	profile models.Profile
	loading bool
}

func (m profileModel) View() string {
	out := titleStyle.Render("My Profile") + "\n\n"

	if m.loading {
		out += "Loading...\n"
	} else {
		out += fmt.Sprintf("Username  %s\n", m.profile.Username)
		out += fmt.Sprintf("Email     %s\n", m.profile.Email)
		out += fmt.Sprintf("Joined    %s\n", m.profile.Joined)
	}

	out += "\n" + helpStyle.Render("esc back")
	return out
}
