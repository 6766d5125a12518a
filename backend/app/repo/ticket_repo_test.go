package repo

import (
	"context"
	"testing"
	"time"

	"helpdesk/backend/app/models"
	"helpdesk/backend/app/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedUser(t *testing.T, gdb *gorm.DB, name, email string) *models.User {
	t.Helper()
	u := &models.User{FullName: name, Email: email, PasswordHash: "h", Role: "user"}
	require.NoError(t, gdb.Create(u).Error)
	return u
}

func TestTicketRepository_ListRowsOrderAndFilter(t *testing.T) {
	gdb := testutil.OpenTestDB(t, "ticketrepo_list")
	r := NewTicketRepository(gdb)
	ctx := context.Background()

	ana := seedUser(t, gdb, "Ana Gómez", "ana@x.com")
	luis := seedUser(t, gdb, "Luis Pérez", "luis@x.com")

	base := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	mk := func(owner *models.User, title string, at time.Time) {
		tk := &models.Ticket{
			UserID: owner.ID, Title: title, Description: "d", Category: "hardware",
			Priority: models.PriorityMedia, Status: models.StatusAbierto, CreatedAt: at,
		}
		require.NoError(t, r.Create(ctx, tk))
	}
	mk(ana, "viejo", base)
	mk(luis, "ajeno", base.Add(1*time.Hour))
	mk(ana, "nuevo", base.Add(2*time.Hour))

	// filtered to one owner, newest first, with the owner's name joined in
	rows, err := r.ListRows(ctx, ana.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "nuevo", rows[0].Title)
	assert.Equal(t, "viejo", rows[1].Title)
	assert.Equal(t, "Ana Gómez", rows[0].UserName)
	assert.Equal(t, ana.ID, rows[0].UserID)

	// unfiltered returns everything
	all, err := r.ListRows(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, "nuevo", all[0].Title)

	// no matches is an empty list, not an error
	none, err := r.ListRows(ctx, "no-such-user")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestTicketRepository_FindRow(t *testing.T) {
	gdb := testutil.OpenTestDB(t, "ticketrepo_find")
	r := NewTicketRepository(gdb)
	ctx := context.Background()

	ana := seedUser(t, gdb, "Ana Gómez", "ana@x.com")
	tk := &models.Ticket{UserID: ana.ID, Title: "impresora", Description: "no imprime", Category: "hardware", Priority: models.PriorityAlta, Status: models.StatusAbierto}
	require.NoError(t, r.Create(ctx, tk))

	det, err := r.FindRow(ctx, tk.ID)
	require.NoError(t, err)
	require.NotNil(t, det)
	assert.Equal(t, "impresora", det.Title)
	assert.Equal(t, "Ana Gómez", det.AssignedTo)
	assert.False(t, det.Date.IsZero())

	missing, err := r.FindRow(ctx, "ffffffff-ffff-ffff-ffff-ffffffffffff")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestTicketRepository_UpdateStatus(t *testing.T) {
	gdb := testutil.OpenTestDB(t, "ticketrepo_status")
	r := NewTicketRepository(gdb)
	ctx := context.Background()

	ana := seedUser(t, gdb, "Ana", "ana@x.com")
	tk := &models.Ticket{UserID: ana.ID, Title: "t", Description: "d", Category: "c", Priority: models.PriorityBaja, Status: models.StatusAbierto}
	require.NoError(t, r.Create(ctx, tk))

	require.NoError(t, r.UpdateStatus(ctx, tk.ID, models.StatusEnProceso))
	got, err := r.FindByID(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusEnProceso, got.Status)

	err = r.UpdateStatus(ctx, "missing-id", models.StatusResuelto)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
