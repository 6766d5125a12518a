package services

import (
	"context"
	"net/http"
	"testing"

	"helpdesk/backend/app/apperr"
	"helpdesk/backend/app/models"
	"helpdesk/backend/app/repo"
	"helpdesk/backend/app/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newAuthService(t *testing.T, name string) (*AuthService, *gorm.DB) {
	t.Helper()
	gdb := testutil.OpenTestDB(t, name)
	return NewAuthService(repo.NewUserRepository(gdb)), gdb
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	svc, gdb := newAuthService(t, "auth_register")
	ctx := context.Background()

	p, err := svc.Register(ctx, "Ana Gómez", "ana@x.com", "p@ss1234", "")
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Ana Gómez", p.FullName)
	assert.Equal(t, "ana@x.com", p.Email)
	assert.Equal(t, "user", p.Role)

	// the stored hash is bcrypt, never the plain password
	var u models.User
	require.NoError(t, gdb.Where("email = ?", "ana@x.com").First(&u).Error)
	assert.NotEqual(t, "p@ss1234", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("p@ss1234")))

	got, err := svc.Login(ctx, "ana@x.com", "p@ss1234")
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestAuthService_RegisterValidation(t *testing.T) {
	svc, _ := newAuthService(t, "auth_validation")
	ctx := context.Background()

	for _, tc := range []struct{ name, email, password string }{
		{"", "ana@x.com", "pw"},
		{"Ana", "", "pw"},
		{"Ana", "ana@x.com", ""},
	} {
		_, err := svc.Register(ctx, tc.name, tc.email, tc.password, "")
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
	}
}

func TestAuthService_RegisterDuplicate(t *testing.T) {
	svc, gdb := newAuthService(t, "auth_dup")
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ana", "ana@x.com", "pw123456", "")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Impostora", "ana@x.com", "otra", "")
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperr.Status(err))
	assert.Equal(t, "El correo electrónico ya está registrado", err.Error())

	var count int64
	require.NoError(t, gdb.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAuthService_LoginInvalidCredentials(t *testing.T) {
	svc, _ := newAuthService(t, "auth_invalid")
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ana", "ana@x.com", "p@ss1234", "")
	require.NoError(t, err)

	// wrong password and unknown email produce identical failures
	_, errWrong := svc.Login(ctx, "ana@x.com", "wrong")
	_, errUnknown := svc.Login(ctx, "nadie@x.com", "p@ss1234")
	for _, err := range []error{errWrong, errUnknown} {
		require.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, apperr.Status(err))
	}
	assert.Equal(t, errWrong.Error(), errUnknown.Error())
}

func TestAuthService_LoginValidation(t *testing.T) {
	svc, _ := newAuthService(t, "auth_login_validation")

	_, err := svc.Login(context.Background(), "", "pw")
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
	_, err = svc.Login(context.Background(), "ana@x.com", "")
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
}

func TestAuthService_EnsureAdmin(t *testing.T) {
	svc, gdb := newAuthService(t, "auth_admin")
	ctx := context.Background()

	require.NoError(t, svc.EnsureAdmin(ctx, "Administrador", "admin@helpdesk.local", "admin123"))
	// second call is a no-op
	require.NoError(t, svc.EnsureAdmin(ctx, "Administrador", "admin@helpdesk.local", "admin123"))

	var count int64
	require.NoError(t, gdb.Model(&models.User{}).Where("role = ?", "admin").Count(&count).Error)
	assert.EqualValues(t, 1, count)

	p, err := svc.Login(ctx, "admin@helpdesk.local", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin", p.Role)
}
