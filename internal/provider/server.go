package provider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultAddr is the provider's default listen address.
const DefaultAddr = ":9876"

// maxUserIDLength bounds ids accepted from the path.
const maxUserIDLength = 64

// Server exposes a Source over HTTP.
//
//	GET /init            puzzle for a new user
//	GET /init/user/{id}  puzzle for an existing user
type Server struct {
	source Source
	users  UserRecorder
	logger *log.Logger
	server *http.Server
}

// NewServer creates a server. users may be nil when no registry is kept.
func NewServer(addr string, source Source, users UserRecorder, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "alchemy-provider",
		})
	}
	if addr == "" {
		addr = DefaultAddr
	}

	s := &Server{
		source: source,
		users:  users,
		logger: logger,
	}
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler returns the HTTP handler with CORS and request logging applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /init", s.handleInit)
	mux.HandleFunc("GET /init/user/{id}", s.handleInit)
	return requestLogger(s.logger, allowOrigin(mux))
}

func (s *Server) handleInit(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	if len(userID) > maxUserIDLength {
		http.Error(w, "user id too long", http.StatusBadRequest)
		return
	}

	p, err := s.source.NewPuzzle(r.Context(), userID)
	if err != nil {
		s.logger.Error("cannot generate puzzle", "user", userID, "error", err)
		http.Error(w, "cannot generate puzzle", http.StatusInternalServerError)
		return
	}

	if s.users != nil {
		if err := s.users.RecordIssue(p.UserID); err != nil {
			s.logger.Warn("could not record user", "user", p.UserID, "error", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(p); err != nil {
		s.logger.Error("cannot write response", "error", err)
	}
}

// ListenAndServe starts the server and blocks until shutdown.
func (s *Server) ListenAndServe() error {
	s.logger.Info("starting puzzle provider", "address", s.server.Addr)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errc := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case err := <-errc:
		return err
	case <-done:
	}

	s.logger.Info("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.Shutdown(ctx)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *Server) Addr() string {
	return s.server.Addr
}

// allowOrigin opens the API to browser clients on any origin.
func allowOrigin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes and duration of each request.
func requestLogger(logger *log.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", time.Since(start).Round(time.Millisecond),
		)
	})
}
