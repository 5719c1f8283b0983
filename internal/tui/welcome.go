package tui

type welcomeModel struct {
	items []string
	idx   int
}

func newWelcomeModel() welcomeModel {
	return welcomeModel{items: []string{"Log in", "Create an account", "Forgot password"}}
}

func (m welcomeModel) View() string {
	out := titleStyle.Render("PerceptronX") + "\n\nWelcome. Choose an action:\n\n"
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		out += cursor + item + "\n"
	}
	out += "\n" + helpStyle.Render("enter select  ctrl+c quit")
	return out
}
