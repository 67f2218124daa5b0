package gateway

import (
	"net/http"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	mux := http.NewServeMux()
	server := NewServer("8080", mux, 0, 0)

	assert.NotNil(t, server)
	assert.Equal(t, "8080", server.port)
	assert.NotNil(t, server.httpServer)
	assert.Equal(t, ":8080", server.httpServer.Addr)
	assert.NotNil(t, server.httpServer.Handler)
}

func TestServer_Timeouts(t *testing.T) {
	server := NewServer("8080", http.NewServeMux(), 0, 0)

	assert.Equal(t, 15*time.Second, server.httpServer.ReadTimeout)
	assert.Equal(t, 15*time.Second, server.httpServer.WriteTimeout)
	assert.Equal(t, 60*time.Second, server.httpServer.IdleTimeout)

	server = NewServer("8080", http.NewServeMux(), 5*time.Second, 10*time.Minute)
	assert.Equal(t, 5*time.Second, server.httpServer.ReadTimeout)
	assert.Equal(t, 10*time.Minute, server.httpServer.WriteTimeout)
}

func TestServer_RunStopsOnSignal(t *testing.T) {
	server := NewServer("0", http.NewServeMux(), 0, 0)

	shutdown := make(chan os.Signal, 1)
	done := make(chan error, 1)
	go func() { done <- server.run(shutdown) }()

	shutdown <- syscall.SIGTERM

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_RunReturnsListenError(t *testing.T) {
	server := NewServer("not-a-port", http.NewServeMux(), 0, 0)

	err := server.run(make(chan os.Signal))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server error")
}
