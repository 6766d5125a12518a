package dto

import "time"

type CreateTicketRequest struct {
	UserID      string `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
}

// TicketRow is one dashboard listing entry: the ticket joined with its
// owner's display name, creation time exposed as "date".
type TicketRow struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	Date        time.Time `json:"date"`
	UserName    string    `json:"user_name"`
}

// TicketDetail is the single-ticket payload: the ticket joined with the
// owner's display name plus the full comment history, system entry first.
type TicketDetail struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Priority    string         `json:"priority"`
	Status      string         `json:"status"`
	Date        time.Time      `json:"date"`
	AssignedTo  string         `json:"assigned_to"`
	Comments    []CommentEntry `json:"comments" gorm:"-"`
}

// CommentEntry is a detail-view comment. Type is "comment" for stored rows
// and "system" for the synthesized creation entry.
type CommentEntry struct {
	ID      string    `json:"id"`
	Author  string    `json:"author"`
	Content string    `json:"content"`
	Date    time.Time `json:"date"`
	Type    string    `json:"type"`
}

// CommentRow is a raw comment row joined with its author's display name.
type CommentRow struct {
	ID        string    `json:"id"`
	TicketID  string    `json:"ticket_id"`
	UserID    string    `json:"user_id"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UserName  string    `json:"user_name"`
}

type AddCommentRequest struct {
	UserID  string `json:"user_id"`
	Comment string `json:"comment"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}
