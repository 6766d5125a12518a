package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"helpdesk/backend/app/models"
)

type ticketCreatedMsg struct{ ID string }

var priorities = []string{models.PriorityBaja, models.PriorityMedia, models.PriorityAlta}

// TicketFormModel collects a new ticket: title, category and priority on top,
// free-form description below. Focus moves top to bottom with Tab.
type TicketFormModel struct {
	Session     *Session
	Title       textinput.Model
	Category    textinput.Model
	PriorityIdx int
	Description textarea.Model
	FocusIdx    int
	Err         error
}

const (
	formTitle = iota
	formCategory
	formPriority
	formDescription
	formFields
)

func NewTicketFormModel(s *Session, width, height int) TicketFormModel {
	ti := textinput.New()
	ti.Placeholder = "La impresora no imprime"
	ti.Prompt = "Título:    "
	ti.CharLimit = 255
	ti.Focus()

	ci := textinput.New()
	ci.Placeholder = "hardware"
	ci.Prompt = "Categoría: "
	ci.CharLimit = 64

	ta := textarea.New()
	ta.Placeholder = "Describe el problema..."
	ta.SetWidth(60)
	ta.SetHeight(6)

	return TicketFormModel{
		Session:     s,
		Title:       ti,
		Category:    ci,
		PriorityIdx: 1, // media
		Description: ta,
	}
}

func (m TicketFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m TicketFormModel) Update(msg tea.Msg) (TicketFormModel, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			return m, func() tea.Msg { return backToDashboardMsg{} }
		case tea.KeyTab:
			cmds = append(cmds, m.focusField((m.FocusIdx+1)%formFields))
			return m, tea.Batch(cmds...)
		case tea.KeyShiftTab:
			prev := m.FocusIdx - 1
			if prev < 0 {
				prev = formFields - 1
			}
			cmds = append(cmds, m.focusField(prev))
			return m, tea.Batch(cmds...)
		case tea.KeyEnter:
			// the description field needs Enter for newlines; submit with Ctrl+D
			if m.FocusIdx != formDescription {
				cmds = append(cmds, m.focusField((m.FocusIdx+1)%formFields))
				return m, tea.Batch(cmds...)
			}
		case tea.KeyCtrlD:
			return m, m.submitCmd()
		case tea.KeyLeft, tea.KeyRight:
			if m.FocusIdx == formPriority {
				if msg.Type == tea.KeyRight {
					m.PriorityIdx = (m.PriorityIdx + 1) % len(priorities)
				} else {
					m.PriorityIdx--
					if m.PriorityIdx < 0 {
						m.PriorityIdx = len(priorities) - 1
					}
				}
				return m, nil
			}
		}
	case errMsg:
		m.Err = msg.Err
	}

	var cmd tea.Cmd
	m.Title, cmd = m.Title.Update(msg)
	cmds = append(cmds, cmd)
	m.Category, cmd = m.Category.Update(msg)
	cmds = append(cmds, cmd)
	m.Description, cmd = m.Description.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *TicketFormModel) focusField(idx int) tea.Cmd {
	m.Title.Blur()
	m.Category.Blur()
	m.Description.Blur()
	m.FocusIdx = idx
	switch idx {
	case formTitle:
		return m.Title.Focus()
	case formCategory:
		return m.Category.Focus()
	case formDescription:
		return m.Description.Focus()
	}
	return nil
}

func (m TicketFormModel) submitCmd() tea.Cmd {
	s := m.Session
	title := m.Title.Value()
	category := m.Category.Value()
	priority := priorities[m.PriorityIdx]
	description := m.Description.Value()
	return func() tea.Msg {
		t, err := s.CreateTicket(title, description, category, priority)
		if err != nil {
			return errMsg{Err: err}
		}
		return ticketCreatedMsg{ID: t.ID}
	}
}

func (m TicketFormModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Helpdesk - Nuevo ticket") + "\n\n")
	b.WriteString(m.Title.View() + "\n")
	b.WriteString(m.Category.View() + "\n")

	prio := "Prioridad: "
	for i, p := range priorities {
		label := renderPriority(p)
		if i == m.PriorityIdx {
			if m.FocusIdx == formPriority {
				label = focusedStyle.Render("[" + p + "]")
			} else {
				label = "[" + p + "]"
			}
		}
		prio += label + " "
	}
	b.WriteString(prio + "\n\n")
	b.WriteString(m.Description.View() + "\n\n")
	b.WriteString(blurredStyle.Render("Tab cambia de campo, ←/→ cambia prioridad, Ctrl+D envía, Esc cancela"))

	if m.Err != nil {
		b.WriteString("\n\n" + errorMessageStyle(m.Err.Error()))
	}
	return b.String()
}
