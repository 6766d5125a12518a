package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"helpdesk/backend/app/dto"
)

type backToDashboardMsg struct{}

type ticketLoadedMsg struct{ Detail *dto.TicketDetail }

type commentPostedMsg struct{}

type statusAdvancedMsg struct{ Status string }

type DetailModel struct {
	Session  *Session
	TicketID string
	Detail   *dto.TicketDetail
	Body     viewport.Model

	CommentInput textinput.Model
	Commenting   bool
	Err          error
	Info         string
}

func NewDetailModel(s *Session, ticketID string, width, height int) DetailModel {
	w := width - 4
	if w < 40 {
		w = 60
	}
	h := height - 8
	if h < 8 {
		h = 14
	}
	vp := viewport.New(w, h)

	ci := textinput.New()
	ci.Placeholder = "Escribe un comentario..."
	ci.Prompt = "> "
	ci.CharLimit = 500

	return DetailModel{
		Session:      s,
		TicketID:     ticketID,
		Body:         vp,
		CommentInput: ci,
	}
}

func (m DetailModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m DetailModel) loadCmd() tea.Cmd {
	s := m.Session
	id := m.TicketID
	return func() tea.Msg {
		det, err := s.Ticket(id)
		if err != nil {
			return errMsg{Err: err}
		}
		return ticketLoadedMsg{Detail: det}
	}
}

func (m DetailModel) postCommentCmd(text string) tea.Cmd {
	s := m.Session
	id := m.TicketID
	return func() tea.Msg {
		if _, err := s.AddComment(id, text); err != nil {
			return errMsg{Err: err}
		}
		return commentPostedMsg{}
	}
}

func (m DetailModel) advanceStatusCmd() tea.Cmd {
	s := m.Session
	id := m.TicketID
	current := ""
	if m.Detail != nil {
		current = m.Detail.Status
	}
	return func() tea.Msg {
		status, err := s.AdvanceStatus(id, current)
		if err != nil {
			return errMsg{Err: err}
		}
		return statusAdvancedMsg{Status: status}
	}
}

func (m DetailModel) Update(msg tea.Msg) (DetailModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Commenting {
			switch msg.Type {
			case tea.KeyEnter:
				text := strings.TrimSpace(m.CommentInput.Value())
				m.Commenting = false
				m.CommentInput.Blur()
				m.CommentInput.SetValue("")
				if text == "" {
					return m, nil
				}
				return m, m.postCommentCmd(text)
			case tea.KeyEsc:
				m.Commenting = false
				m.CommentInput.Blur()
				m.CommentInput.SetValue("")
				return m, nil
			}
			m.CommentInput, cmd = m.CommentInput.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "c":
			m.Commenting = true
			m.Err = nil
			m.Info = ""
			return m, m.CommentInput.Focus()
		case "s":
			return m, m.advanceStatusCmd()
		case "r":
			return m, m.loadCmd()
		case "esc", "q":
			return m, func() tea.Msg { return backToDashboardMsg{} }
		}

	case ticketLoadedMsg:
		m.Err = nil
		m.Detail = msg.Detail
		m.Body.SetContent(m.renderDetail())

	case commentPostedMsg:
		m.Info = "Comentario agregado"
		return m, m.loadCmd()

	case statusAdvancedMsg:
		m.Info = "Estado actualizado: " + msg.Status
		return m, m.loadCmd()

	case errMsg:
		m.Err = msg.Err
	}

	m.Body, cmd = m.Body.Update(msg)
	return m, cmd
}

func (m DetailModel) renderDetail() string {
	if m.Detail == nil {
		return "Cargando..."
	}
	d := m.Detail

	var b strings.Builder
	b.WriteString(labelStyle.Render(d.Title) + "\n\n")
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Estado:"), renderStatus(d.Status)))
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Prioridad:"), renderPriority(d.Priority)))
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Categoría:"), d.Category))
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Asignado a:"), d.AssignedTo))
	b.WriteString(fmt.Sprintf("%s %s\n\n", labelStyle.Render("Fecha:"), d.Date.Format("2006-01-02 15:04")))
	b.WriteString(d.Description + "\n\n")

	b.WriteString(labelStyle.Render("Comentarios") + "\n")
	for _, c := range d.Comments {
		stamp := c.Date.Format("2006-01-02 15:04")
		if c.Type == "system" {
			b.WriteString(blurredStyle.Render(fmt.Sprintf("[%s] %s: %s", stamp, c.Author, c.Content)) + "\n")
			continue
		}
		b.WriteString(fmt.Sprintf("[%s] %s: %s\n", stamp, labelStyle.Render(c.Author), c.Content))
	}
	return b.String()
}

func (m DetailModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Helpdesk - Detalle del ticket") + "\n\n")
	b.WriteString(m.Body.View())
	b.WriteString("\n\n")

	if m.Commenting {
		b.WriteString(m.CommentInput.View() + "\n")
		b.WriteString(blurredStyle.Render("Enter publica, Esc cancela"))
	} else {
		b.WriteString(blurredStyle.Render("c comenta, s avanza estado, r recarga, Esc vuelve"))
	}

	if m.Info != "" {
		b.WriteString("\n" + statusMessageStyle(m.Info))
	}
	if m.Err != nil {
		b.WriteString("\n" + errorMessageStyle(m.Err.Error()))
	}
	return b.String()
}
