package server

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"helpdesk/backend/global"
)

// StartHTTPServer starts the API server in the background and returns it so
// the caller can shut it down gracefully.
func StartHTTPServer(host string, port int, handler http.Handler) *http.Server {
	srv := &http.Server{
		Addr:              net.JoinHostPort(host, strconv.Itoa(port)),
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			global.Logger.Fatal().Err(err).Msg("server error")
		}
	}()
	return srv
}
