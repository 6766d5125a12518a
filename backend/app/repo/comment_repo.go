package repo

import (
	"context"
	"errors"

	"helpdesk/backend/app/dto"
	"helpdesk/backend/app/models"

	"gorm.io/gorm"
)

type CommentRepository struct{ db *gorm.DB }

func NewCommentRepository(db *gorm.DB) *CommentRepository { return &CommentRepository{db: db} }

func (r *CommentRepository) Create(ctx context.Context, c *models.TicketComment) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return r.db.WithContext(ctx).Create(c).Error
}

// ListRows returns raw comment rows for a ticket, oldest first, each joined
// with the author's display name.
func (r *CommentRepository) ListRows(ctx context.Context, ticketID string) ([]dto.CommentRow, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows := []dto.CommentRow{}
	err := r.db.WithContext(ctx).
		Table("ticket_comments tc").
		Select("tc.id, tc.ticket_id, tc.user_id, tc.comment, tc.created_at, p.full_name AS user_name").
		Joins("LEFT JOIN profiles p ON p.id = tc.user_id").
		Where("tc.ticket_id = ?", ticketID).
		Order("tc.created_at ASC").
		Scan(&rows).Error
	return rows, err
}

// ListEntries returns the detail-view shape of a ticket's comments, oldest
// first.
func (r *CommentRepository) ListEntries(ctx context.Context, ticketID string) ([]dto.CommentEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	entries := []dto.CommentEntry{}
	err := r.db.WithContext(ctx).
		Table("ticket_comments tc").
		Select("tc.id, tc.comment AS content, tc.created_at AS date, p.full_name AS author, 'comment' AS type").
		Joins("JOIN profiles p ON p.id = tc.user_id").
		Where("tc.ticket_id = ?", ticketID).
		Order("tc.created_at ASC").
		Scan(&entries).Error
	return entries, err
}

// RowByID returns one raw comment row joined with its author's display name.
func (r *CommentRepository) RowByID(ctx context.Context, id string) (*dto.CommentRow, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var row dto.CommentRow
	err := r.db.WithContext(ctx).
		Table("ticket_comments tc").
		Select("tc.id, tc.ticket_id, tc.user_id, tc.comment, tc.created_at, p.full_name AS user_name").
		Joins("LEFT JOIN profiles p ON p.id = tc.user_id").
		Where("tc.id = ?", id).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}
