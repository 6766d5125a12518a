package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusAbierto   = "abierto"
	StatusEnProceso = "en_proceso"
	StatusResuelto  = "resuelto"
)

const (
	PriorityBaja  = "baja"
	PriorityMedia = "media"
	PriorityAlta  = "alta"
)

type Ticket struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	UserID      string    `gorm:"index;size:36;not null" json:"user_id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Category    string    `gorm:"size:64;not null" json:"category"`
	Priority    string    `gorm:"size:16;not null" json:"priority"`
	Status      string    `gorm:"size:16;not null;default:abierto" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func (t *Ticket) BeforeCreate(*gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

func ValidStatus(s string) bool {
	switch s {
	case StatusAbierto, StatusEnProceso, StatusResuelto:
		return true
	}
	return false
}

// CanTransition reports whether a ticket may move from one status to the
// next. The lifecycle is forward-only: abierto -> en_proceso -> resuelto.
func CanTransition(from, to string) bool {
	switch from {
	case StatusAbierto:
		return to == StatusEnProceso
	case StatusEnProceso:
		return to == StatusResuelto
	}
	return false
}

// NextStatus returns the status that follows the given one, or "" when the
// lifecycle is finished.
func NextStatus(s string) string {
	switch s {
	case StatusAbierto:
		return StatusEnProceso
	case StatusEnProceso:
		return StatusResuelto
	}
	return ""
}
