package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"helpdesk/backend/app/dto"
)

type ticketsLoadedMsg struct{ Rows []dto.TicketRow }

type ticketSelectedMsg struct{ ID string }

type newTicketMsg struct{}

type DashboardModel struct {
	Session  *Session
	Table    table.Model
	Rows     []dto.TicketRow
	OnlyMine bool
	Err      error
}

func NewDashboardModel(s *Session, width, height int) DashboardModel {
	columns := []table.Column{
		{Title: "Título", Width: 32},
		{Title: "Estado", Width: 12},
		{Title: "Prioridad", Width: 10},
		{Title: "Categoría", Width: 12},
		{Title: "Usuario", Width: 18},
		{Title: "Fecha", Width: 16},
	}

	h := height - 10
	if h < 5 {
		h = 5
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(h),
	)

	sStyle := table.DefaultStyles()
	sStyle.Header = sStyle.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	sStyle.Selected = sStyle.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(sStyle)

	return DashboardModel{Session: s, Table: t, OnlyMine: true}
}

func (m DashboardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m DashboardModel) loadCmd() tea.Cmd {
	s := m.Session
	mine := m.OnlyMine
	return func() tea.Msg {
		rows, err := s.Tickets(mine)
		if err != nil {
			return errMsg{Err: err}
		}
		return ticketsLoadedMsg{Rows: rows}
	}
}

func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return m, m.loadCmd()
		case "m":
			m.OnlyMine = !m.OnlyMine
			return m, m.loadCmd()
		case "n":
			return m, func() tea.Msg { return newTicketMsg{} }
		case "enter":
			if m.Table.Cursor() >= 0 && m.Table.Cursor() < len(m.Rows) {
				id := m.Rows[m.Table.Cursor()].ID
				return m, func() tea.Msg { return ticketSelectedMsg{ID: id} }
			}
		case "q":
			return m, tea.Quit
		}

	case ticketsLoadedMsg:
		m.Err = nil
		m.Rows = msg.Rows
		rows := make([]table.Row, 0, len(msg.Rows))
		for _, t := range msg.Rows {
			rows = append(rows, table.Row{
				t.Title,
				t.Status,
				t.Priority,
				t.Category,
				t.UserName,
				t.Date.Format("2006-01-02 15:04"),
			})
		}
		m.Table.SetRows(rows)

	case errMsg:
		m.Err = msg.Err
	}

	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

func (m DashboardModel) View() string {
	var b strings.Builder

	scope := "todos los tickets"
	if m.OnlyMine {
		scope = "mis tickets"
	}
	b.WriteString(titleStyle.Render("Helpdesk - "+scope) + "\n\n")
	b.WriteString(m.Table.View())
	b.WriteString("\n\n")
	b.WriteString(blurredStyle.Render("Enter abre, n crea, m alterna míos/todos, r recarga, q sale"))

	if m.Err != nil {
		b.WriteString("\n" + errorMessageStyle(m.Err.Error()))
	}
	return b.String()
}
