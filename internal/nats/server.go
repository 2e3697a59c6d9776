// Package nats runs the embedded JetStream server that backs the project
// event log. The server never opens a network listener.
package nats

import (
	"errors"
	"fmt"
	"time"

	"github.com/devnexus/devnexus/internal/logger"
	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const (
	readyTimeout    = 4 * time.Second
	drainTimeout    = 2 * time.Second
	shutdownTimeout = 5 * time.Second
)

// ErrNotReady is returned when the embedded server does not come up in time.
var ErrNotReady = errors.New("nats server failed to start within timeout")

// Embedded bundles the in-process server, its connection and JetStream handle.
type Embedded struct {
	Server *server.Server
	Conn   *nats.Conn
	JS     jetstream.JetStream
}

// Start boots a JetStream-enabled server storing its files under storeDir
// and connects to it in-process.
func Start(storeDir string) (*Embedded, error) {
	logger.Debug("starting embedded NATS in %s", storeDir)

	ns, err := server.NewServer(&server.Options{
		JetStream:  true,
		StoreDir:   storeDir,
		DontListen: true,
		NoSigs:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}

	go ns.Start()
	if !ns.ReadyForConnections(readyTimeout) {
		ns.Shutdown()
		return nil, ErrNotReady
	}

	nc, err := nats.Connect("", nats.InProcessServer(ns))
	if err != nil {
		ns.Shutdown()
		return nil, fmt.Errorf("connecting in-process: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		ns.Shutdown()
		return nil, fmt.Errorf("creating jetstream: %w", err)
	}

	logger.Debug("embedded NATS ready")
	return &Embedded{Server: ns, Conn: nc, JS: js}, nil
}

// Close drains the connection and shuts the server down, bounded by
// timeouts so a wedged server cannot hang the caller.
func (e *Embedded) Close() error {
	if e == nil {
		return nil
	}

	if e.Conn != nil {
		done := make(chan error, 1)
		go func() { done <- e.Conn.Drain() }()
		select {
		case err := <-done:
			if err != nil {
				logger.Warn("nats drain failed, closing: %v", err)
				e.Conn.Close()
			}
		case <-time.After(drainTimeout):
			logger.Warn("nats drain timed out, closing")
			e.Conn.Close()
		}
	}

	if e.Server != nil {
		e.Server.Shutdown()
		stopped := make(chan struct{})
		go func() {
			e.Server.WaitForShutdown()
			close(stopped)
		}()
		select {
		case <-stopped:
		case <-time.After(shutdownTimeout):
			return errors.New("nats server shutdown timed out")
		}
	}

	logger.Debug("embedded NATS stopped")
	return nil
}
