// Package keepalive exposes liveness endpoints for an external uptime monitor.
// It shares no state with the bot beyond the readiness flag of the gRPC
// health service.
package keepalive

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/f8wq/TFL-Manager/model"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

// Running is the body of the liveness route.
const Running = "Bot is running!"

// Server runs the HTTP liveness route and, when configured, a gRPC health
// service.
type Server struct {
	cfg model.Keepalive

	httpServer   *http.Server
	httpListener net.Listener

	grpcServer   *grpc.Server
	grpcListener net.Listener
	health       *health.Server
}

func New(cfg model.Keepalive) *Server {
	return &Server{cfg: cfg}
}

// Router returns the liveness HTTP handler.
func Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/", home)
	return r
}

func home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(Running))
}

// Start opens the listeners and serves in background goroutines. The gRPC
// health service reports NOT_SERVING until SetReady is called.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.cfg.HTTPAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.cfg.HTTPAddr, err)
	}
	s.httpListener = listener
	s.httpServer = &http.Server{
		Handler:           Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("keepalive http server stopped: %v", err)
		}
	}()
	log.Printf("Keepalive listening on %s", listener.Addr())

	if s.cfg.GRPCAddr == "" {
		return nil
	}

	grpcListener, err := net.Listen("tcp", s.cfg.GRPCAddr)
	if err != nil {
		_ = s.httpServer.Close()
		return fmt.Errorf("listen on %s: %w", s.cfg.GRPCAddr, err)
	}
	s.grpcListener = grpcListener
	s.grpcServer = grpc.NewServer()
	s.health = health.NewServer()
	grpc_health_v1.RegisterHealthServer(s.grpcServer, s.health)
	s.health.SetServingStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	go func() {
		if err := s.grpcServer.Serve(grpcListener); err != nil {
			log.Printf("keepalive grpc server stopped: %v", err)
		}
	}()
	log.Printf("Health service listening on %s", grpcListener.Addr())
	return nil
}

// SetReady flips the gRPC health status once the chat session is open.
func (s *Server) SetReady(ready bool) {
	if s.health == nil {
		return
	}
	status := grpc_health_v1.HealthCheckResponse_NOT_SERVING
	if ready {
		status = grpc_health_v1.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", status)
}

// HTTPAddr returns the bound HTTP address, or "" before Start.
func (s *Server) HTTPAddr() string {
	if s.httpListener == nil {
		return ""
	}
	return s.httpListener.Addr().String()
}

// GRPCAddr returns the bound gRPC address, or "" when disabled.
func (s *Server) GRPCAddr() string {
	if s.grpcListener == nil {
		return ""
	}
	return s.grpcListener.Addr().String()
}

// Shutdown stops both servers.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.health != nil {
		s.health.Shutdown()
	}
	if s.grpcServer != nil {
		s.grpcServer.GracefulStop()
	}
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
