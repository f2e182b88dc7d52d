package main

import (
	"context"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveAsync(ctx context.Context, e *echo.Echo, addr string) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, e, addr, slog.New(slog.DiscardHandler))
	}()
	return done
}

func waitServe(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		require.FailNow(t, "serve did not return")
		return nil
	}
}

func TestServe(t *testing.T) {
	t.Run("should return the listen error instead of exiting", func(t *testing.T) {
		// Given: the address is already taken
		taken, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		t.Cleanup(func() { _ = taken.Close() })
		e := echo.New()
		e.HideBanner = true

		// When
		err = waitServe(t, serveAsync(t.Context(), e, taken.Addr().String()))

		// Then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "http server stopped")
	})

	t.Run("should shut down cleanly when the context ends", func(t *testing.T) {
		// Given
		ctx, cancel := context.WithCancel(t.Context())
		e := echo.New()
		e.HideBanner = true
		done := serveAsync(ctx, e, "127.0.0.1:0")
		require.Eventually(t, func() bool { return e.ListenerAddr() != nil }, 2*time.Second, 10*time.Millisecond)

		// When
		cancel()

		// Then
		assert.NoError(t, waitServe(t, done))
	})
}
