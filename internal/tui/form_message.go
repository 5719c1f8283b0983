package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/futuristic/perceptronx/models"
)

type messageFormModel struct {
	therapistID   int
	therapistName string

	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newMessageFormModel(therapistID int, therapistName string) messageFormModel {
	subject := textinput.New()
	subject.Placeholder = "subject"
	subject.CharLimit = 128
	subject.Width = 50
	subject.Focus()

	content := textinput.New()
	content.Placeholder = "your message"
	content.CharLimit = 2000
	content.Width = 50

	return messageFormModel{
		therapistID:   therapistID,
		therapistName: therapistName,
		inputs:        []textinput.Model{subject, content},
	}
}

func (m messageFormModel) request() models.MessageRequest {
	return models.MessageRequest{
		RecipientID:   m.therapistID,
		RecipientType: models.RecipientTypeTherapist,
		Subject:       m.inputs[0].Value(),
		Content:       m.inputs[1].Value(),
	}
}

func (m messageFormModel) View() string {
	labels := []string{"Subject", "Message"}

	out := titleStyle.Render("Message "+m.therapistName) + "\n\n"
	for i, in := range m.inputs {
		out += fmt.Sprintf("%-8s [%s]\n", labels[i], in.View())
	}

	if m.submitting {
		out += "\nSending...\n"
	}

	out += "\n" + helpStyle.Render("enter send  tab next field  esc back")
	return out
}
