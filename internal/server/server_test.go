// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-coin-favorites/internal/config"
	"github.com/MKhiriev/go-coin-favorites/internal/handler"
	"github.com/MKhiriev/go-coin-favorites/internal/logger"
	"github.com/MKhiriev/go-coin-favorites/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type staticVersion string

func (v staticVersion) GetAppVersion(context.Context) string { return string(v) }

func newTestServer(t *testing.T, address string) Server {
	t.Helper()

	cfg := config.Server{HTTPAddress: address}
	services := &service.Services{AppInfoService: staticVersion("test")}

	handlers, err := handler.NewHandlers(services, nil, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)
	return srv
}

func TestNewServer_NoHandlers(t *testing.T) {
	srv, err := NewServer(nil, config.Server{HTTPAddress: ":0"}, logger.Nop())
	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)

	srv, err = NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":0"}, logger.Nop())
	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)
}

func TestRun_ServesUntilCancelled(t *testing.T) {
	srv := newTestServer(t, "127.0.0.1:0")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	select {
	case <-srv.Ready():
	case <-time.After(5 * time.Second):
		t.Fatal("server did not bind its listener")
	}

	transport := &http.Transport{}
	client := &http.Client{Transport: transport, Timeout: 5 * time.Second}

	resp, err := client.Get("http://" + srv.Addr().String() + "/api/health")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	transport.CloseIdleConnections()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"status":"healthy"`)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(ShutdownTimeout):
		t.Fatal("server did not shut down")
	}
}

func TestRun_AddressInUse(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer taken.Close()

	srv := newTestServer(t, taken.Addr().String())

	err = srv.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error binding HTTP listener")
	assert.Nil(t, srv.Addr())
}

func TestRun_NoServer(t *testing.T) {
	s := &server{ready: make(chan struct{}), logger: logger.Nop()}

	require.ErrorIs(t, s.Run(context.Background()), errNoServersToRun)
}
