package router

import (
	"net/http"

	"helpdesk/backend/app/controllers"
	"helpdesk/backend/app/middleware"
)

// New wires the HTTP surface. Method patterns make the mux answer 405 with
// an Allow header on its own for method mismatches.
func New(authCtrl *controllers.AuthController, ticketCtrl *controllers.TicketController, mw *middleware.Auth) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// auth
	mux.HandleFunc("POST /api/auth/register", authCtrl.Register)
	mux.HandleFunc("POST /api/auth/login", authCtrl.Login)
	mux.HandleFunc("POST /api/auth/logout", authCtrl.Logout)
	mux.Handle("GET /api/auth/me", mw.RequireAuth(http.HandlerFunc(authCtrl.Me)))

	// tickets, session required
	mux.Handle("GET /api/tickets", mw.RequireAuth(http.HandlerFunc(ticketCtrl.List)))
	mux.Handle("POST /api/tickets/create", mw.RequireAuth(http.HandlerFunc(ticketCtrl.Create)))
	mux.Handle("GET /api/tickets/{id}", mw.RequireAuth(http.HandlerFunc(ticketCtrl.Get)))
	mux.Handle("PATCH /api/tickets/{id}/status", mw.RequireAuth(http.HandlerFunc(ticketCtrl.UpdateStatus)))
	mux.Handle("GET /api/tickets/{id}/comments", mw.RequireAuth(http.HandlerFunc(ticketCtrl.ListComments)))
	mux.Handle("POST /api/tickets/{id}/comments", mw.RequireAuth(http.HandlerFunc(ticketCtrl.AddComment)))

	return mux
}
