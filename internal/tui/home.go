package tui

type homeModel struct {
	items []string
	idx   int
}

func newHomeModel() homeModel {
	return homeModel{items: []string{
		"Find a Therapist",
		"My Appointments",
		"Detection Results",
		"My Profile",
	}}
}

func (m homeModel) View() string {
	out := titleStyle.Render("PerceptronX") + "\n\n"
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		out += cursor + item + "\n"
	}
	out += "\n" + helpStyle.Render("enter open  ctrl+l log out  ctrl+c quit")
	return out
}
