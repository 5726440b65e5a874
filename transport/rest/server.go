package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

const (
	handlerTimeout = 10 * time.Second
	maxBodyBytes   = 1 << 10
)

// NewRouter - builds the HTTP API of the game.
func NewRouter(logger *slog.Logger, games gameUseCase) http.Handler {
	handlers := NewHandlers(logger, games)
	ping := NewPingHandler()

	router := chi.NewRouter()

	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(chimw.Recoverer)
	router.Use(chimw.Timeout(handlerTimeout))

	router.Get("/ping", ping.PingHandler)

	router.Route("/games", func(r chi.Router) {
		r.Use(jsonContentType)
		r.Use(chimw.RequestSize(maxBodyBytes))

		r.Post("/", handlers.CreateGame)

		r.Route("/{gameID}", func(r chi.Router) {
			r.Get("/", handlers.GetGame)
			r.Delete("/", handlers.DeleteGame)
			r.Post("/moves", handlers.PlayMove)
			r.Post("/jump", handlers.JumpToMove)
			r.Post("/reset", handlers.Reset)
		})
	})

	return router
}

// Start - serves the HTTP API until ctx is canceled.
func Start(ctx context.Context, port string, handler http.Handler) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}
