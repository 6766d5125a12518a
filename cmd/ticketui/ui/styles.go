package ui

import (
	"github.com/charmbracelet/lipgloss"

	"helpdesk/backend/app/models"
)

var (
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	blurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(lipgloss.Color("#25A065")).
			Padding(0, 1)

	statusMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFDF5")).
				Render

	errorMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FF0000")).
				Render

	labelStyle = lipgloss.NewStyle().Bold(true)

	statusAbierto   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	statusEnProceso = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	statusResuelto  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

	priorityAlta  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	priorityMedia = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	priorityBaja  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

func renderStatus(s string) string {
	switch s {
	case models.StatusAbierto:
		return statusAbierto.Render(s)
	case models.StatusEnProceso:
		return statusEnProceso.Render(s)
	case models.StatusResuelto:
		return statusResuelto.Render(s)
	}
	return s
}

func renderPriority(p string) string {
	switch p {
	case models.PriorityAlta:
		return priorityAlta.Render(p)
	case models.PriorityMedia:
		return priorityMedia.Render(p)
	case models.PriorityBaja:
		return priorityBaja.Render(p)
	}
	return p
}
