package services

import (
	"context"

	"helpdesk/backend/app/apperr"
	"helpdesk/backend/app/dto"
	"helpdesk/backend/app/models"
	"helpdesk/backend/app/repo"

	"github.com/google/uuid"
)

// systemAuthor labels the synthesized creation entry in a ticket's
// comment history.
const (
	systemAuthor    = "Sistema"
	systemContent   = "Ticket creado automáticamente"
	systemCommentID = "0"
)

type TicketService struct {
	tickets  *repo.TicketRepository
	comments *repo.CommentRepository
}

func NewTicketService(tickets *repo.TicketRepository, comments *repo.CommentRepository) *TicketService {
	return &TicketService{tickets: tickets, comments: comments}
}

func (s *TicketService) Create(ctx context.Context, req dto.CreateTicketRequest) (*models.Ticket, error) {
	if req.UserID == "" || req.Title == "" || req.Description == "" || req.Category == "" || req.Priority == "" {
		return nil, apperr.Validation("Missing required fields")
	}
	status := req.Status
	if status == "" {
		status = models.StatusAbierto
	}
	if !models.ValidStatus(status) {
		return nil, apperr.Validation("Invalid status")
	}

	t := &models.Ticket{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		Status:      status,
	}
	if err := s.tickets.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// List returns all tickets (filtered to one owner when userID is set),
// newest first.
func (s *TicketService) List(ctx context.Context, userID string) ([]dto.TicketRow, error) {
	return s.tickets.ListRows(ctx, userID)
}

// Get returns a ticket merged with its comment history. The first entry is
// always the synthesized system comment dated at the ticket's creation; it
// is derived at read time, never stored.
func (s *TicketService) Get(ctx context.Context, id string) (*dto.TicketDetail, error) {
	det, err := s.tickets.FindRow(ctx, id)
	if err != nil {
		return nil, err
	}
	if det == nil {
		return nil, apperr.NotFound("Ticket no encontrado")
	}

	entries, err := s.comments.ListEntries(ctx, id)
	if err != nil {
		return nil, err
	}
	system := dto.CommentEntry{
		ID:      systemCommentID,
		Author:  systemAuthor,
		Content: systemContent,
		Date:    det.Date,
		Type:    "system",
	}
	det.Comments = append([]dto.CommentEntry{system}, entries...)
	return det, nil
}

func (s *TicketService) Comments(ctx context.Context, ticketID string) ([]dto.CommentRow, error) {
	if _, err := uuid.Parse(ticketID); err != nil {
		return nil, apperr.Validation("Ticket ID is required")
	}
	return s.comments.ListRows(ctx, ticketID)
}

func (s *TicketService) AddComment(ctx context.Context, ticketID string, req dto.AddCommentRequest) (*dto.CommentRow, error) {
	if req.UserID == "" || req.Comment == "" {
		return nil, apperr.Validation("Missing required fields")
	}
	t, err := s.tickets.FindByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, apperr.NotFound("Ticket no encontrado")
	}

	c := &models.TicketComment{TicketID: ticketID, UserID: req.UserID, Comment: req.Comment}
	if err := s.comments.Create(ctx, c); err != nil {
		return nil, err
	}
	return s.comments.RowByID(ctx, c.ID)
}

// UpdateStatus moves a ticket along its lifecycle. Only forward transitions
// are allowed: abierto -> en_proceso -> resuelto.
func (s *TicketService) UpdateStatus(ctx context.Context, id, status string) (*models.Ticket, error) {
	if !models.ValidStatus(status) {
		return nil, apperr.Validation("Invalid status")
	}
	t, err := s.tickets.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, apperr.NotFound("Ticket no encontrado")
	}
	if !models.CanTransition(t.Status, status) {
		return nil, apperr.Validation("Transición de estado inválida")
	}
	if err := s.tickets.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	t.Status = status
	return t, nil
}
