// Package server serves a diff report via HTTP and allows replacing it while serving.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// Server serves a single report via HTTP.
type Server struct {
	http    *http.Server
	handler *handler
	addr    net.Addr
	errc    chan error
}

// Run creates a new server and runs it in a new goroutine.
func Run(addr string, report *Report) (*Server, error) {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("starting HTTP server: %v", err)
	}

	h := &handler{}
	h.report.Store(report)

	s := &Server{
		http: &http.Server{
			Handler: h,
		},
		handler: h,
		addr:    l.Addr(),
		errc:    make(chan error, 1),
	}

	go func() {
		if err := s.http.Serve(l); !errors.Is(err, http.ErrServerClosed) {
			s.errc <- err
		}
		close(s.errc)
	}()

	return s, nil
}

// Addr returns the address the server listens on.
func (s *Server) Addr() string {
	return s.addr.String()
}

// ReplaceReport replaces the report to serve with the one provided.
func (s *Server) ReplaceReport(report *Report) {
	s.handler.report.Store(report)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down HTTP server: %v", err)
	}
	return nil
}

// Error returns a channel to listen to errors while serving. The channel is closed when the
// server stops.
func (s *Server) Error() <-chan error {
	return s.errc
}
