// Package netutil provides listener helpers for the HTTP server.
package netutil

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"syscall"
)

// ListenFallback listens on host:port, moving to the next port while the
// requested one is in use. At most attempts ports are tried.
// Errors other than "address in use" are returned immediately.
func ListenFallback(ctx context.Context, host string, port, attempts int) (net.Listener, error) {
	if attempts < 1 {
		attempts = 1
	}

	var lc net.ListenConfig
	var lastErr error
	for i := 0; i < attempts; i++ {
		p := port + i
		if p > 65535 {
			break
		}
		ln, err := lc.Listen(ctx, "tcp", net.JoinHostPort(host, strconv.Itoa(p)))
		if err == nil {
			return ln, nil
		}
		if !IsAddrInUse(err) {
			return nil, err
		}
		lastErr = err
	}
	return nil, fmt.Errorf("no free port in %d..%d: %w", port, port+attempts-1, lastErr)
}

// IsAddrInUse reports whether err is EADDRINUSE.
func IsAddrInUse(err error) bool {
	return errors.Is(err, syscall.EADDRINUSE)
}

// Port returns the TCP port a listener is bound to.
func Port(ln net.Listener) int {
	if addr, ok := ln.Addr().(*net.TCPAddr); ok {
		return addr.Port
	}
	return 0
}
