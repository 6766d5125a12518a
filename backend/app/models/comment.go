package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TicketComment struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	TicketID  string    `gorm:"index;size:36;not null" json:"ticket_id"`
	UserID    string    `gorm:"size:36;not null" json:"user_id"`
	Comment   string    `gorm:"type:text;not null" json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

func (TicketComment) TableName() string { return "ticket_comments" }

func (c *TicketComment) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
