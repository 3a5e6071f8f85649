package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/catbuffer/pkg/archive"
)

func TestServe_GracefulShutdown(t *testing.T) {
	a, err := archive.Open(archive.Config{InMemory: true})
	require.NoError(t, err)
	defer a.Close()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	registry := prometheus.NewRegistry()
	server := NewServer(a, ServerConfig{APIKey: "test-key"}, NewMetrics(registry))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.Serve(ctx, ln, registry)
	}()

	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("http://%s/api/v1/health", ln.Addr()), nil)
	require.NoError(t, err)
	req.Header.Set("X-API-Key", "test-key")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var response APIResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
	assert.True(t, response.Success)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestStartServer_ListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	port := ln.Addr().(*net.TCPAddr).Port
	err = StartServer(context.Background(), nil, ServerConfig{Bind: "127.0.0.1", Port: port})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen on")
}

func TestRouter_WithoutArchive(t *testing.T) {
	registry := prometheus.NewRegistry()
	h := NewRouter(NewServer(nil, ServerConfig{}, NewMetrics(registry)), registry)

	w, response := do(t, h, http.MethodGet, "/api/v1/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, response.Success)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/archive", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFactories(t *testing.T) {
	store, err := NewArchiveFactory().OpenArchive(archive.Config{InMemory: true})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	_, err = NewArchiveFactory().OpenArchive(archive.Config{})
	assert.Error(t, err)

	starter := NewServerFactory().CreateServerStarter()
	assert.IsType(t, &DefaultServerStarter{}, starter)
}
