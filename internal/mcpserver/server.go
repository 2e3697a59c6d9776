// Package mcpserver exposes the catalog and the submission wizard as MCP
// tools, so agents can browse projects and submit new ones.
package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/devnexus/devnexus/internal/catalog"
	"github.com/devnexus/devnexus/internal/logger"
	"github.com/devnexus/devnexus/internal/project"
	"github.com/devnexus/devnexus/internal/submit"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/server"
)

// Projects records submissions and lists an owner's projects.
type Projects interface {
	Submit(ctx context.Context, owner string, sub submit.Submission) error
	List(ctx context.Context, owner string) ([]*project.Project, error)
}

// Options configures a Server.
type Options struct {
	Catalog  *catalog.Provider
	Projects Projects
	Owner    string // event store owner key submissions are filed under
	Port     int    // 0 picks a free port
	Now      func() time.Time
	NewID    func() string
}

// Server serves the devnexus tools over streamable HTTP.
type Server struct {
	mcpServer  *server.MCPServer
	httpServer *server.StreamableHTTPServer
	port       int
	mu         sync.Mutex

	catalog  *catalog.Provider
	projects Projects
	owner    string
	now      func() time.Time
	newID    func() string
}

// New creates a server. It does not listen until Start is called.
func New(opts Options) *Server {
	s := &Server{
		port:     opts.Port,
		catalog:  opts.Catalog,
		projects: opts.Projects,
		owner:    opts.Owner,
		now:      opts.Now,
		newID:    opts.NewID,
	}
	if s.catalog == nil {
		s.catalog = catalog.NewProvider(0)
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	s.mcpServer = server.NewMCPServer(
		"devnexus",
		"1.0.0",
		server.WithToolCapabilities(true),
	)
	s.registerTools()
	return s
}

// Start listens on the configured port, or a free one, and returns it.
func (s *Server) Start(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.httpServer != nil {
		return 0, fmt.Errorf("server already started")
	}

	if s.port == 0 {
		listener, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			return 0, fmt.Errorf("failed to find available port: %w", err)
		}
		s.port = listener.Addr().(*net.TCPAddr).Port
		_ = listener.Close()
	}

	s.httpServer = server.NewStreamableHTTPServer(
		s.mcpServer,
		server.WithStateLess(true),
	)

	addr := fmt.Sprintf("127.0.0.1:%d", s.port)
	logger.Debug("Starting MCP server on %s", addr)

	httpServer := s.httpServer
	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("MCP server error: %v", err)
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		s.httpServer = nil
		if err != nil {
			return 0, fmt.Errorf("failed to start HTTP server: %w", err)
		}
		return 0, fmt.Errorf("HTTP server exited immediately")
	case <-ctx.Done():
		_ = httpServer.Shutdown(context.Background())
		s.httpServer = nil
		return 0, ctx.Err()
	case <-time.After(100 * time.Millisecond):
	}

	logger.Info("MCP server ready on port %d", s.port)
	return s.port, nil
}

// Stop shuts the HTTP server down.
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.httpServer == nil {
		return nil
	}

	logger.Debug("Stopping MCP server")
	if err := s.httpServer.Shutdown(context.Background()); err != nil {
		logger.Warn("Error stopping MCP server: %v", err)
		return fmt.Errorf("failed to stop server: %w", err)
	}
	s.httpServer = nil
	return nil
}

// URL returns the MCP endpoint.
func (s *Server) URL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fmt.Sprintf("http://localhost:%d/mcp", s.port)
}
