package contact

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/lixenwraith/glimmer/core"
)

// shutdownTimeout bounds graceful connection draining on Stop
const shutdownTimeout = 5 * time.Second

// Server runs the contact handler as a service.Service
type Server struct {
	addr      string
	dataDir   string
	staticDir string

	mu       sync.Mutex
	srv      *http.Server
	listener net.Listener
	done     chan struct{}
}

// NewServer creates a stopped server listening on addr
func NewServer(addr, dataDir, staticDir string) *Server {
	return &Server{addr: addr, dataDir: dataDir, staticDir: staticDir}
}

// Name implements service.Service
func (s *Server) Name() string {
	return "contact"
}

// Dependencies implements service.Service
func (s *Server) Dependencies() []string {
	return nil
}

// Init implements service.Service
// args[0]: Store - replaces the file store, used by tests
func (s *Server) Init(args ...any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var store Store
	if len(args) > 0 {
		if st, ok := args[0].(Store); ok {
			store = st
		}
	}
	if store == nil {
		fileStore, err := NewFileStore(s.dataDir)
		if err != nil {
			return err
		}
		store = fileStore
	}

	s.srv = &http.Server{
		Addr:              s.addr,
		Handler:           NewHandler(store, s.staticDir).Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return nil
}

// Start implements service.Service
// Binds synchronously so address errors surface here, then serves in the background
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.srv == nil {
		return fmt.Errorf("contact server not initialized")
	}
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.addr, err)
	}
	s.listener = ln
	s.done = make(chan struct{})

	srv, done := s.srv, s.done
	core.Go(func() {
		defer close(done)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("contact: serve: %v", err)
		}
	})
	log.Printf("contact: listening on %s", ln.Addr())
	return nil
}

// Stop implements service.Service
func (s *Server) Stop() error {
	s.mu.Lock()
	srv, done := s.srv, s.done
	s.done = nil
	s.mu.Unlock()

	if srv == nil || done == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := srv.Shutdown(ctx)
	<-done
	return err
}

// Addr returns the bound address, or the configured one before Start
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.addr
}
