package controllers

import (
	"encoding/json"
	"net/http"

	"helpdesk/backend/app/dto"
	"helpdesk/backend/app/services"
)

type TicketController struct{ Tickets *services.TicketService }

func NewTicketController(tickets *services.TicketService) *TicketController {
	return &TicketController{Tickets: tickets}
}

func (c *TicketController) List(w http.ResponseWriter, r *http.Request) {
	rows, err := c.Tickets.List(r.Context(), r.URL.Query().Get("user_id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (c *TicketController) Get(w http.ResponseWriter, r *http.Request) {
	det, err := c.Tickets.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, det)
}

func (c *TicketController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTicketRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	t, err := c.Tickets.Create(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

func (c *TicketController) ListComments(w http.ResponseWriter, r *http.Request) {
	rows, err := c.Tickets.Comments(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (c *TicketController) AddComment(w http.ResponseWriter, r *http.Request) {
	var req dto.AddCommentRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	row, err := c.Tickets.AddComment(r.Context(), r.PathValue("id"), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, row)
}

func (c *TicketController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateStatusRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	t, err := c.Tickets.UpdateStatus(r.Context(), r.PathValue("id"), req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}
