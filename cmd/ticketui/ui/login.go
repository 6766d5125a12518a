package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"helpdesk/backend/app/dto"
)

type errMsg struct{ Err error }

type loggedInMsg struct{ User *dto.Profile }

type showRegisterMsg struct{}

type LoginModel struct {
	Session  *Session
	Inputs   []textinput.Model
	FocusIdx int
	Err      error
	Info     string
}

const (
	loginEmail = iota
	loginPassword
)

func NewLoginModel(s *Session) LoginModel {
	inputs := make([]textinput.Model, 2)

	inputs[loginEmail] = textinput.New()
	inputs[loginEmail].Placeholder = "ana@empresa.com"
	inputs[loginEmail].Prompt = "Email:      "
	inputs[loginEmail].Focus()

	inputs[loginPassword] = textinput.New()
	inputs[loginPassword].Placeholder = "contraseña"
	inputs[loginPassword].Prompt = "Contraseña: "
	inputs[loginPassword].EchoMode = textinput.EchoPassword

	return LoginModel{Session: s, Inputs: inputs}
}

func (m LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m LoginModel) Update(msg tea.Msg) (LoginModel, tea.Cmd) {
	cmds := make([]tea.Cmd, len(m.Inputs))

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			if m.FocusIdx == len(m.Inputs)-1 {
				return m, m.loginCmd()
			}
			m.nextInput()
		case tea.KeyTab, tea.KeyDown:
			m.nextInput()
		case tea.KeyShiftTab, tea.KeyUp:
			m.prevInput()
		default:
			if msg.String() == "ctrl+n" {
				return m, func() tea.Msg { return showRegisterMsg{} }
			}
		}
	case errMsg:
		m.Err = msg.Err
	}

	for i := range m.Inputs {
		m.Inputs[i], cmds[i] = m.Inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

func (m *LoginModel) nextInput() {
	m.Inputs[m.FocusIdx].Blur()
	m.FocusIdx = (m.FocusIdx + 1) % len(m.Inputs)
	m.Inputs[m.FocusIdx].Focus()
}

func (m *LoginModel) prevInput() {
	m.Inputs[m.FocusIdx].Blur()
	m.FocusIdx--
	if m.FocusIdx < 0 {
		m.FocusIdx = len(m.Inputs) - 1
	}
	m.Inputs[m.FocusIdx].Focus()
}

func (m LoginModel) loginCmd() tea.Cmd {
	email := m.Inputs[loginEmail].Value()
	password := m.Inputs[loginPassword].Value()
	s := m.Session
	return func() tea.Msg {
		p, err := s.Login(email, password)
		if err != nil {
			return errMsg{Err: err}
		}
		return loggedInMsg{User: p}
	}
}

func (m LoginModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Helpdesk - Iniciar sesión") + "\n\n")
	for i := range m.Inputs {
		b.WriteString(m.Inputs[i].View())
		b.WriteRune('\n')
	}
	b.WriteString("\n")
	b.WriteString(blurredStyle.Render("Tab cambia de campo, Enter envía, Ctrl+N registra una cuenta nueva"))

	if m.Info != "" {
		b.WriteString("\n\n" + statusMessageStyle(m.Info))
	}
	if m.Err != nil {
		b.WriteString("\n\n" + errorMessageStyle(m.Err.Error()))
	}
	return b.String()
}
