package tui

import (
	"fmt"

	"github.com/futuristic/perceptronx/models"
)

type annotationsModel struct {
	items   []models.AnnotationItem
	notice  string
	idx     int
	loading bool
}

func (m annotationsModel) current() (models.AnnotationItem, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.AnnotationItem{}, false
	}
	return m.items[m.idx], true
}

func (m annotationsModel) View() string {
	out := titleStyle.Render("Detection Results") + "\n\n"

	switch {
	case m.loading:
		out += "Loading...\n"
	case m.notice != "":
		out += noticeStyle.Render(m.notice) + "\n"
	default:
		for i, item := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s%s  %s  %d objects  %s\n",
				cursor, item.Timestamp, item.ModelUsed, len(item.Detections), item.Status)
		}

		if selected, ok := m.current(); ok && len(selected.Detections) > 0 {
			out += "\nDetections:\n"
			for _, d := range selected.Detections {
				out += fmt.Sprintf("  %-16s %.0f%%\n", d.Label, d.Confidence*100)
			}
		}
	}

	out += "\n" + helpStyle.Render("↑/↓ select  ctrl+r reload  esc back")
	return out
}
