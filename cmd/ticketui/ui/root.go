package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

type state int

const (
	stateLogin state = iota
	stateRegister
	stateDashboard
	stateDetail
	stateNewTicket
)

type RootModel struct {
	State     state
	Session   *Session
	Login     LoginModel
	Register  RegisterModel
	Dashboard DashboardModel
	Detail    DetailModel
	Form      TicketFormModel
	Quitting  bool
	width     int
	height    int
}

func NewRootModel(s *Session) RootModel {
	return RootModel{
		State:   stateLogin,
		Session: s,
		Login:   NewLoginModel(s),
	}
}

func (m RootModel) Init() tea.Cmd {
	return m.Login.Init()
}

func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if h := msg.Height - 10; h > 4 {
			m.Dashboard.Table.SetHeight(h)
			m.Detail.Body.Height = h
		}

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.Quitting = true
			_ = m.Session.Logout()
			return m, tea.Quit
		}
	}

	switch m.State {
	case stateLogin:
		switch msg.(type) {
		case showRegisterMsg:
			m.State = stateRegister
			m.Register = NewRegisterModel(m.Session)
			return m, m.Register.Init()
		case loggedInMsg:
			m.State = stateDashboard
			m.Dashboard = NewDashboardModel(m.Session, m.width, m.height)
			return m, m.Dashboard.Init()
		}
		newLogin, cmd := m.Login.Update(msg)
		m.Login = newLogin
		cmds = append(cmds, cmd)

	case stateRegister:
		switch msg := msg.(type) {
		case showLoginMsg:
			m.State = stateLogin
			m.Login = NewLoginModel(m.Session)
			return m, m.Login.Init()
		case registeredMsg:
			m.State = stateLogin
			m.Login = NewLoginModel(m.Session)
			m.Login.Info = "Cuenta creada, inicia sesión como " + msg.Email
			m.Login.Inputs[loginEmail].SetValue(msg.Email)
			return m, m.Login.Init()
		}
		newReg, cmd := m.Register.Update(msg)
		m.Register = newReg
		cmds = append(cmds, cmd)

	case stateDashboard:
		switch msg := msg.(type) {
		case ticketSelectedMsg:
			m.State = stateDetail
			m.Detail = NewDetailModel(m.Session, msg.ID, m.width, m.height)
			return m, m.Detail.Init()
		case newTicketMsg:
			m.State = stateNewTicket
			m.Form = NewTicketFormModel(m.Session, m.width, m.height)
			return m, m.Form.Init()
		}
		newDash, cmd := m.Dashboard.Update(msg)
		m.Dashboard = newDash
		cmds = append(cmds, cmd)

	case stateDetail:
		if _, ok := msg.(backToDashboardMsg); ok {
			m.State = stateDashboard
			return m, m.Dashboard.loadCmd()
		}
		newDetail, cmd := m.Detail.Update(msg)
		m.Detail = newDetail
		cmds = append(cmds, cmd)

	case stateNewTicket:
		switch msg.(type) {
		case backToDashboardMsg:
			m.State = stateDashboard
			return m, m.Dashboard.loadCmd()
		case ticketCreatedMsg:
			m.State = stateDashboard
			return m, m.Dashboard.loadCmd()
		}
		newForm, cmd := m.Form.Update(msg)
		m.Form = newForm
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m RootModel) View() string {
	if m.Quitting {
		return "Hasta luego\n"
	}
	switch m.State {
	case stateLogin:
		return m.Login.View()
	case stateRegister:
		return m.Register.View()
	case stateDashboard:
		return m.Dashboard.View()
	case stateDetail:
		return m.Detail.View()
	case stateNewTicket:
		return m.Form.View()
	}
	return ""
}
