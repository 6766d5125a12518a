package services

import (
	"context"
	"net/http"
	"testing"

	"helpdesk/backend/app/apperr"
	"helpdesk/backend/app/dto"
	"helpdesk/backend/app/models"
	"helpdesk/backend/app/repo"
	"helpdesk/backend/app/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTicketService(t *testing.T, name string) (*TicketService, *gorm.DB) {
	t.Helper()
	gdb := testutil.OpenTestDB(t, name)
	return NewTicketService(repo.NewTicketRepository(gdb), repo.NewCommentRepository(gdb)), gdb
}

func seedOwner(t *testing.T, gdb *gorm.DB, name, email string) *models.User {
	t.Helper()
	u := &models.User{FullName: name, Email: email, PasswordHash: "h", Role: "user"}
	require.NoError(t, gdb.Create(u).Error)
	return u
}

func TestTicketService_CreateDefaultsStatus(t *testing.T) {
	svc, gdb := newTicketService(t, "tsvc_create")
	ana := seedOwner(t, gdb, "Ana", "ana@x.com")

	tk, err := svc.Create(context.Background(), dto.CreateTicketRequest{
		UserID: ana.ID, Title: "impresora", Description: "no imprime", Category: "hardware", Priority: models.PriorityMedia,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, tk.ID)
	assert.Equal(t, models.StatusAbierto, tk.Status)
	assert.False(t, tk.CreatedAt.IsZero())
}

func TestTicketService_CreateValidation(t *testing.T) {
	svc, gdb := newTicketService(t, "tsvc_create_validation")
	ana := seedOwner(t, gdb, "Ana", "ana@x.com")
	ctx := context.Background()

	// any missing required field is rejected
	_, err := svc.Create(ctx, dto.CreateTicketRequest{UserID: ana.ID, Title: "t", Description: "d", Category: "c"})
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))

	// bogus status is rejected
	_, err = svc.Create(ctx, dto.CreateTicketRequest{UserID: ana.ID, Title: "t", Description: "d", Category: "c", Priority: "alta", Status: "bogus"})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
	assert.Equal(t, "Invalid status", err.Error())

	// explicit valid status is kept
	tk, err := svc.Create(ctx, dto.CreateTicketRequest{UserID: ana.ID, Title: "t", Description: "d", Category: "c", Priority: "alta", Status: models.StatusEnProceso})
	require.NoError(t, err)
	assert.Equal(t, models.StatusEnProceso, tk.Status)
}

func TestTicketService_GetWithSystemComment(t *testing.T) {
	svc, gdb := newTicketService(t, "tsvc_get")
	ana := seedOwner(t, gdb, "Ana Gómez", "ana@x.com")
	ctx := context.Background()

	tk, err := svc.Create(ctx, dto.CreateTicketRequest{UserID: ana.ID, Title: "impresora", Description: "no imprime", Category: "hardware", Priority: models.PriorityAlta})
	require.NoError(t, err)

	_, err = svc.AddComment(ctx, tk.ID, dto.AddCommentRequest{UserID: ana.ID, Comment: "sigue igual"})
	require.NoError(t, err)

	det, err := svc.Get(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, "impresora", det.Title)
	assert.Equal(t, "Ana Gómez", det.AssignedTo)

	require.Len(t, det.Comments, 2)
	system := det.Comments[0]
	assert.Equal(t, "system", system.Type)
	assert.Equal(t, "Sistema", system.Author)
	assert.Equal(t, "Ticket creado automáticamente", system.Content)
	assert.True(t, system.Date.Equal(det.Date))
	assert.Equal(t, "comment", det.Comments[1].Type)
	assert.Equal(t, "sigue igual", det.Comments[1].Content)

	// the system entry is derived, never stored
	var stored int64
	require.NoError(t, gdb.Model(&models.TicketComment{}).Count(&stored).Error)
	assert.EqualValues(t, 1, stored)
}

func TestTicketService_GetNotFound(t *testing.T) {
	svc, _ := newTicketService(t, "tsvc_get_missing")

	_, err := svc.Get(context.Background(), "ffffffff-ffff-ffff-ffff-ffffffffffff")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperr.Status(err))
	assert.Equal(t, "Ticket no encontrado", err.Error())
}

func TestTicketService_Comments(t *testing.T) {
	svc, gdb := newTicketService(t, "tsvc_comments")
	ana := seedOwner(t, gdb, "Ana", "ana@x.com")
	ctx := context.Background()

	tk, err := svc.Create(ctx, dto.CreateTicketRequest{UserID: ana.ID, Title: "t", Description: "d", Category: "c", Priority: "baja"})
	require.NoError(t, err)

	row, err := svc.AddComment(ctx, tk.ID, dto.AddCommentRequest{UserID: ana.ID, Comment: "hola"})
	require.NoError(t, err)
	assert.Equal(t, "hola", row.Comment)
	assert.Equal(t, "Ana", row.UserName)

	rows, err := svc.Comments(ctx, tk.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, row.ID, rows[0].ID)

	// malformed id
	_, err = svc.Comments(ctx, "not-a-uuid")
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))

	// missing fields
	_, err = svc.AddComment(ctx, tk.ID, dto.AddCommentRequest{UserID: ana.ID})
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))

	// unknown ticket
	_, err = svc.AddComment(ctx, "ffffffff-ffff-ffff-ffff-ffffffffffff", dto.AddCommentRequest{UserID: ana.ID, Comment: "x"})
	assert.Equal(t, http.StatusNotFound, apperr.Status(err))
}

func TestTicketService_UpdateStatusTransitions(t *testing.T) {
	svc, gdb := newTicketService(t, "tsvc_transitions")
	ana := seedOwner(t, gdb, "Ana", "ana@x.com")
	ctx := context.Background()

	tk, err := svc.Create(ctx, dto.CreateTicketRequest{UserID: ana.ID, Title: "t", Description: "d", Category: "c", Priority: "media"})
	require.NoError(t, err)

	// skipping a step is rejected
	_, err = svc.UpdateStatus(ctx, tk.ID, models.StatusResuelto)
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))

	got, err := svc.UpdateStatus(ctx, tk.ID, models.StatusEnProceso)
	require.NoError(t, err)
	assert.Equal(t, models.StatusEnProceso, got.Status)

	// going backwards is rejected
	_, err = svc.UpdateStatus(ctx, tk.ID, models.StatusAbierto)
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))

	got, err = svc.UpdateStatus(ctx, tk.ID, models.StatusResuelto)
	require.NoError(t, err)
	assert.Equal(t, models.StatusResuelto, got.Status)

	// unknown status value
	_, err = svc.UpdateStatus(ctx, tk.ID, "cerrado")
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))

	// unknown ticket
	_, err = svc.UpdateStatus(ctx, "ffffffff-ffff-ffff-ffff-ffffffffffff", models.StatusEnProceso)
	assert.Equal(t, http.StatusNotFound, apperr.Status(err))
}
