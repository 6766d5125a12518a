package services

import (
	"context"
	"errors"

	"helpdesk/backend/app/apperr"
	"helpdesk/backend/app/dto"
	"helpdesk/backend/app/models"
	"helpdesk/backend/app/repo"
	"helpdesk/backend/global"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// dummyHash is compared against when the email is unknown, so that unknown
// emails and wrong passwords cost the same.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("helpdesk-dummy-password"), bcrypt.DefaultCost)

type AuthService struct{ users *repo.UserRepository }

func NewAuthService(users *repo.UserRepository) *AuthService { return &AuthService{users: users} }

// Register creates an account. Email uniqueness is enforced by the unique
// index on profiles.email; a duplicate-key violation is the authoritative
// conflict signal.
func (s *AuthService) Register(ctx context.Context, fullName, email, password, role string) (*dto.Profile, error) {
	if fullName == "" || email == "" || password == "" {
		return nil, apperr.Validation("Faltan campos obligatorios")
	}
	if role == "" {
		role = "user"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &models.User{FullName: fullName, Email: email, PasswordHash: string(hash), Role: role}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("El correo electrónico ya está registrado")
		}
		return nil, err
	}
	return profileOf(u), nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*dto.Profile, error) {
	if email == "" || password == "" {
		return nil, apperr.Validation("Email y contraseña requeridos")
	}
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		global.Logger.Debug().Str("email", email).Msg("login rejected: unknown email")
		return nil, apperr.InvalidCredentials()
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		global.Logger.Debug().Str("email", email).Msg("login rejected: password mismatch")
		return nil, apperr.InvalidCredentials()
	}
	return profileOf(u), nil
}

func (s *AuthService) ProfileByID(ctx context.Context, id string) (*dto.Profile, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NotFound("Usuario no encontrado")
	}
	return profileOf(u), nil
}

// EnsureAdmin seeds the admin account if it does not exist yet.
func (s *AuthService) EnsureAdmin(ctx context.Context, fullName, email, password string) error {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil || u != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	err = s.users.Create(ctx, &models.User{FullName: fullName, Email: email, PasswordHash: string(hash), Role: "admin"})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

func profileOf(u *models.User) *dto.Profile {
	return &dto.Profile{ID: u.ID, FullName: u.FullName, Email: u.Email, Role: u.Role}
}
