package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type registeredMsg struct{ Email string }

type showLoginMsg struct{}

type RegisterModel struct {
	Session  *Session
	Inputs   []textinput.Model
	FocusIdx int
	Err      error
}

const (
	regFullName = iota
	regEmail
	regPassword
)

func NewRegisterModel(s *Session) RegisterModel {
	inputs := make([]textinput.Model, 3)

	inputs[regFullName] = textinput.New()
	inputs[regFullName].Placeholder = "Ana Gómez"
	inputs[regFullName].Prompt = "Nombre:     "
	inputs[regFullName].Focus()

	inputs[regEmail] = textinput.New()
	inputs[regEmail].Placeholder = "ana@empresa.com"
	inputs[regEmail].Prompt = "Email:      "

	inputs[regPassword] = textinput.New()
	inputs[regPassword].Placeholder = "contraseña"
	inputs[regPassword].Prompt = "Contraseña: "
	inputs[regPassword].EchoMode = textinput.EchoPassword

	return RegisterModel{Session: s, Inputs: inputs}
}

func (m RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m RegisterModel) Update(msg tea.Msg) (RegisterModel, tea.Cmd) {
	cmds := make([]tea.Cmd, len(m.Inputs))

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			if m.FocusIdx == len(m.Inputs)-1 {
				return m, m.registerCmd()
			}
			m.nextInput()
		case tea.KeyTab, tea.KeyDown:
			m.nextInput()
		case tea.KeyShiftTab, tea.KeyUp:
			m.prevInput()
		case tea.KeyEsc:
			return m, func() tea.Msg { return showLoginMsg{} }
		}
	case errMsg:
		m.Err = msg.Err
	}

	for i := range m.Inputs {
		m.Inputs[i], cmds[i] = m.Inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

func (m *RegisterModel) nextInput() {
	m.Inputs[m.FocusIdx].Blur()
	m.FocusIdx = (m.FocusIdx + 1) % len(m.Inputs)
	m.Inputs[m.FocusIdx].Focus()
}

func (m *RegisterModel) prevInput() {
	m.Inputs[m.FocusIdx].Blur()
	m.FocusIdx--
	if m.FocusIdx < 0 {
		m.FocusIdx = len(m.Inputs) - 1
	}
	m.Inputs[m.FocusIdx].Focus()
}

func (m RegisterModel) registerCmd() tea.Cmd {
	fullName := m.Inputs[regFullName].Value()
	email := m.Inputs[regEmail].Value()
	password := m.Inputs[regPassword].Value()
	s := m.Session
	return func() tea.Msg {
		if _, err := s.Register(fullName, email, password); err != nil {
			return errMsg{Err: err}
		}
		return registeredMsg{Email: email}
	}
}

func (m RegisterModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Helpdesk - Crear cuenta") + "\n\n")
	for i := range m.Inputs {
		b.WriteString(m.Inputs[i].View())
		b.WriteRune('\n')
	}
	b.WriteString("\n")
	b.WriteString(blurredStyle.Render("Tab cambia de campo, Enter envía, Esc vuelve al login"))

	if m.Err != nil {
		b.WriteString("\n\n" + errorMessageStyle(m.Err.Error()))
	}
	return b.String()
}
