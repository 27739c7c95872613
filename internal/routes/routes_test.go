package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"sitework-scheduler/internal/config"
	"sitework-scheduler/internal/handlers"
	"sitework-scheduler/internal/schedule"
	"sitework-scheduler/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	st := testutil.NewFileStore(t)
	svc := schedule.NewService(st, schedule.Options{})
	return SetupRoutes(handlers.New(svc), config.Load())
}

func TestHealthEndpoint(t *testing.T) {
	r := setup(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "ok")
}

func TestTasksRouteRegistered(t *testing.T) {
	r := setup(t)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestCORSHeadersPresent(t *testing.T) {
	r := setup(t)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
