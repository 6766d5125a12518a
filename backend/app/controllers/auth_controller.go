package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"helpdesk/backend/app/dto"
	jwtutil "helpdesk/backend/app/jwt"
	"helpdesk/backend/app/middleware"
	"helpdesk/backend/app/services"
	"helpdesk/backend/app/session"
)

type AuthController struct {
	Auth     *services.AuthService
	Signer   *jwtutil.Signer
	Sessions session.Store
}

func NewAuthController(auth *services.AuthService, signer *jwtutil.Signer, sessions session.Store) *AuthController {
	return &AuthController{Auth: auth, Signer: signer, Sessions: sessions}
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	p, err := c.Auth.Register(r.Context(), req.FullName, req.Email, req.Password, req.Role)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.RegisterResponse{
		Message: "Usuario registrado exitosamente",
		User:    *p,
	})
}

// Login validates credentials, opens a server-side session and sets the
// session cookie. The response body is the public profile only.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	p, err := c.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	token, jti, exp, err := c.Signer.Sign(p.ID, p.Role)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := c.Sessions.Save(r.Context(), jti, p.ID, time.Until(exp)); err != nil {
		writeError(w, err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  exp,
	})
	writeJSON(w, http.StatusOK, p)
}

func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if token := middleware.TokenFromRequest(r); token != "" {
		if claims, err := c.Signer.Parse(token); err == nil {
			_ = c.Sessions.Revoke(r.Context(), claims.ID)
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})
	w.WriteHeader(http.StatusNoContent)
}

func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		unauthorizedJSON(w)
		return
	}
	p, err := c.Auth.ProfileByID(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func unauthorizedJSON(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "No autorizado"})
}
