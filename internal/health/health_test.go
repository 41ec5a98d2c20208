package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

type pingFunc func(context.Context) error

func (f pingFunc) PingContext(ctx context.Context) error { return f(ctx) }

func serve(r *mux.Router, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealthRoutes(t *testing.T) {
	r := mux.NewRouter()
	RegisterRoutes(r, GormPinger{})

	assert.Equal(t, http.StatusOK, serve(r, "/healthz").Code)
	assert.Equal(t, http.StatusOK, serve(r, "/readyz").Code)
	assert.Equal(t, http.StatusOK, serve(r, "/metrics").Code)
}

func TestReadiness_DBDown(t *testing.T) {
	r := mux.NewRouter()
	RegisterRoutes(r, pingFunc(func(context.Context) error { return errors.New("down") }))

	assert.Equal(t, http.StatusServiceUnavailable, serve(r, "/readyz").Code)
}
