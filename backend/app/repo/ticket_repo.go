package repo

import (
	"context"
	"errors"

	"helpdesk/backend/app/dto"
	"helpdesk/backend/app/models"

	"gorm.io/gorm"
)

type TicketRepository struct{ db *gorm.DB }

func NewTicketRepository(db *gorm.DB) *TicketRepository { return &TicketRepository{db: db} }

func (r *TicketRepository) Create(ctx context.Context, t *models.Ticket) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return r.db.WithContext(ctx).Create(t).Error
}

// ListRows returns tickets joined with the owner's display name, newest
// first, optionally filtered to one owner. The result is empty, never nil.
func (r *TicketRepository) ListRows(ctx context.Context, userID string) ([]dto.TicketRow, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	q := r.db.WithContext(ctx).
		Table("tickets t").
		Select("t.id, t.user_id, t.title, t.description, t.category, t.priority, t.status, t.created_at AS date, p.full_name AS user_name").
		Joins("LEFT JOIN profiles p ON p.id = t.user_id")
	if userID != "" {
		q = q.Where("t.user_id = ?", userID)
	}

	rows := []dto.TicketRow{}
	return rows, q.Order("t.created_at DESC").Scan(&rows).Error
}

// FindRow returns one ticket joined with the owner's display name, without
// comments. Returns (nil, nil) when no ticket matches.
func (r *TicketRepository) FindRow(ctx context.Context, id string) (*dto.TicketDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var det dto.TicketDetail
	err := r.db.WithContext(ctx).
		Table("tickets t").
		Select("t.id, t.title, t.description, t.category, t.priority, t.status, t.created_at AS date, p.full_name AS assigned_to").
		Joins("LEFT JOIN profiles p ON p.id = t.user_id").
		Where("t.id = ?", id).
		Take(&det).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &det, nil
}

func (r *TicketRepository) FindByID(ctx context.Context, id string) (*models.Ticket, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var t models.Ticket
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *TicketRepository) UpdateStatus(ctx context.Context, id, status string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res := r.db.WithContext(ctx).Model(&models.Ticket{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
