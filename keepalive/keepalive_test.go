package keepalive

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/f8wq/TFL-Manager/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

func TestRouterHome(t *testing.T) {
	rec := httptest.NewRecorder()
	Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, Running, rec.Body.String())
}

func TestRouterUnknownRoute(t *testing.T) {
	rec := httptest.NewRecorder()
	Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func startServer(t *testing.T, cfg model.Keepalive) *Server {
	t.Helper()

	srv := New(cfg)
	require.NoError(t, srv.Start())
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	})
	return srv
}

func TestServerServesHTTP(t *testing.T) {
	srv := startServer(t, model.Keepalive{HTTPAddr: "127.0.0.1:0"})
	assert.Empty(t, srv.GRPCAddr())

	resp, err := http.Get("http://" + srv.HTTPAddr() + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, Running, string(body))
}

func TestServerHealthFollowsReadiness(t *testing.T) {
	srv := startServer(t, model.Keepalive{HTTPAddr: "127.0.0.1:0", GRPCAddr: "127.0.0.1:0"})

	conn, err := grpc.NewClient(srv.GRPCAddr(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()
	client := grpc_health_v1.NewHealthClient(conn)

	check := func() grpc_health_v1.HealthCheckResponse_ServingStatus {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		resp, err := client.Check(ctx, &grpc_health_v1.HealthCheckRequest{})
		require.NoError(t, err)
		return resp.GetStatus()
	}

	assert.Equal(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING, check())

	srv.SetReady(true)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, check())

	srv.SetReady(false)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING, check())
}

func TestServerStartFailsOnBusyPort(t *testing.T) {
	first := startServer(t, model.Keepalive{HTTPAddr: "127.0.0.1:0"})

	second := New(model.Keepalive{HTTPAddr: first.HTTPAddr()})
	assert.Error(t, second.Start())
}

func TestSetReadyWithoutGRPCIsNoop(t *testing.T) {
	srv := New(model.Keepalive{HTTPAddr: "127.0.0.1:0"})
	srv.SetReady(true)
	assert.NoError(t, srv.Shutdown(context.Background()))
}
