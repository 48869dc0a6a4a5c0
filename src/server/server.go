package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	logger "github.com/sirupsen/logrus"

	"signaltrader/src/handler"
	"signaltrader/src/model"
	"signaltrader/src/security"
)

// NewRouter wires the HTTP surface: health endpoints plus one guarded
// notification route per channel.
func NewRouter(notify *handler.NotifyHandler, tokenHash string) *chi.Mux {
	r := chi.NewRouter()

	// === Global Middleware ===
	r.Use(recoverMiddleware)

	// Public routes
	r.Get("/", handler.Liveness())
	r.Get("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("OK")); err != nil {
			logger.WithError(err).Error("/healthcheck error")
		}
	})

	// Notification routes
	r.Group(func(r chi.Router) {
		r.Use(security.RequireNotifyToken(tokenHash))
		r.Post("/notify/web-monitor", notify.Channel(model.PayloadTypeWebMonitor))
		r.Post("/notify/social", notify.Channel(model.PayloadTypeSocial))
	})

	return r
}

func recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.WithFields(map[string]interface{}{
					"path":  r.URL.Path,
					"panic": rec,
				}).Error("panic while handling request")
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func StartServer(port string, router http.Handler) {
	// Graceful server
	addr := ":" + port
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		logger.Infof("Listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Server crashed")
		}
	}()

	// Shutdown on SIGINT or SIGTERM
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Shutdown error")
	}
}
