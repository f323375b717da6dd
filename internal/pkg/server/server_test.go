package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/flashfood/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freePort(t *testing.T) int {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

func TestNewGracefulServer_Defaults(t *testing.T) {
	e := echo.New()
	gs := NewGracefulServer(e, models.ServerConfig{Host: "127.0.0.1", Port: 8080, ReadTimeout: 5})

	assert.Equal(t, "127.0.0.1:8080", gs.addr)
	assert.Equal(t, defaultShutdownTimeout, gs.shutdownTimeout)
	assert.Equal(t, 5*time.Second, e.Server.ReadTimeout)
}

func TestGracefulServer_RunStopsOnContext(t *testing.T) {
	port := freePort(t)
	e := echo.New()
	e.HideBanner = true
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

	gs := NewGracefulServer(e, models.ServerConfig{Host: "127.0.0.1", Port: port, ShutdownTimeout: 2})

	var order []string
	gs.OnShutdown(func(ctx context.Context) error { order = append(order, "redis"); return nil })
	gs.OnShutdown(func(ctx context.Context) error { order = append(order, "nsq"); return errors.New("already stopped") })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- gs.Run(ctx) }()

	require.Eventually(t, func() bool {
		return e.ListenerAddr() != nil
	}, 2*time.Second, 10*time.Millisecond)

	resp, err := http.Get("http://" + e.ListenerAddr().String() + "/ping")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
	assert.Equal(t, []string{"nsq", "redis"}, order)
}

func TestGracefulServer_RunReturnsListenError(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	e := echo.New()
	e.HideBanner = true
	gs := NewGracefulServer(e, models.ServerConfig{Host: "127.0.0.1", Port: l.Addr().(*net.TCPAddr).Port})

	cleaned := false
	gs.OnShutdown(func(ctx context.Context) error { cleaned = true; return nil })

	err = gs.Run(context.Background())
	assert.Error(t, err)
	assert.True(t, cleaned)
}
