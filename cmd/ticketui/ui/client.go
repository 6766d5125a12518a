package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"helpdesk/backend/app/dto"
	"helpdesk/backend/app/models"
)

// Session holds the authenticated HTTP connection to the backend. The session
// cookie set at login lives in the client's cookie jar.
type Session struct {
	BaseURL string
	HTTP    *http.Client
	User    *dto.Profile
}

func NewSession(baseURL string) *Session {
	jar, _ := cookiejar.New(nil)
	return &Session{
		BaseURL: baseURL,
		HTTP: &http.Client{
			Jar:     jar,
			Timeout: 10 * time.Second,
		},
	}
}

// APIError carries the backend's error body alongside its HTTP status.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("error del servidor (%d)", e.Status)
}

func (s *Session) doJSON(method, path string, in, out any) error {
	var body bytes.Buffer
	if in != nil {
		if err := json.NewEncoder(&body).Encode(in); err != nil {
			return err
		}
	}
	req, err := http.NewRequest(method, s.BaseURL+path, &body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errBody struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		return &APIError{Status: resp.StatusCode, Message: errBody.Error}
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (s *Session) Login(email, password string) (*dto.Profile, error) {
	var p dto.Profile
	err := s.doJSON(http.MethodPost, "/api/auth/login", dto.LoginRequest{Email: email, Password: password}, &p)
	if err != nil {
		return nil, err
	}
	s.User = &p
	return &p, nil
}

func (s *Session) Register(fullName, email, password string) (*dto.Profile, error) {
	var resp dto.RegisterResponse
	err := s.doJSON(http.MethodPost, "/api/auth/register", dto.RegisterRequest{
		FullName: fullName,
		Email:    email,
		Password: password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (s *Session) Logout() error {
	err := s.doJSON(http.MethodPost, "/api/auth/logout", nil, nil)
	s.User = nil
	return err
}

// Tickets lists tickets, optionally restricted to the logged-in user.
func (s *Session) Tickets(onlyMine bool) ([]dto.TicketRow, error) {
	path := "/api/tickets"
	if onlyMine && s.User != nil {
		path += "?user_id=" + url.QueryEscape(s.User.ID)
	}
	var rows []dto.TicketRow
	if err := s.doJSON(http.MethodGet, path, nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Session) Ticket(id string) (*dto.TicketDetail, error) {
	var det dto.TicketDetail
	if err := s.doJSON(http.MethodGet, "/api/tickets/"+url.PathEscape(id), nil, &det); err != nil {
		return nil, err
	}
	return &det, nil
}

func (s *Session) CreateTicket(title, description, category, priority string) (*models.Ticket, error) {
	if s.User == nil {
		return nil, fmt.Errorf("sesión no iniciada")
	}
	var t models.Ticket
	err := s.doJSON(http.MethodPost, "/api/tickets/create", dto.CreateTicketRequest{
		UserID:      s.User.ID,
		Title:       title,
		Description: description,
		Category:    category,
		Priority:    priority,
	}, &t)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Session) AddComment(ticketID, comment string) (*dto.CommentRow, error) {
	if s.User == nil {
		return nil, fmt.Errorf("sesión no iniciada")
	}
	var row dto.CommentRow
	err := s.doJSON(http.MethodPost, "/api/tickets/"+url.PathEscape(ticketID)+"/comments", dto.AddCommentRequest{
		UserID:  s.User.ID,
		Comment: comment,
	}, &row)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// AdvanceStatus moves the ticket one step forward in its lifecycle and
// returns the new status. Resolved tickets have nowhere to go.
func (s *Session) AdvanceStatus(ticketID, current string) (string, error) {
	next := models.NextStatus(current)
	if next == "" {
		return "", fmt.Errorf("el ticket ya está resuelto")
	}
	var t models.Ticket
	err := s.doJSON(http.MethodPatch, "/api/tickets/"+url.PathEscape(ticketID)+"/status", dto.UpdateStatusRequest{Status: next}, &t)
	if err != nil {
		return "", err
	}
	return t.Status, nil
}
