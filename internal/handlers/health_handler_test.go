package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) PingContext(ctx context.Context) error { return f(ctx) }

func TestHealthHandler(t *testing.T) {
	ok := NewHealthHandler(pingFunc(func(context.Context) error { return nil }))
	w := serve(t, ok.Check, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	down := NewHealthHandler(pingFunc(func(context.Context) error { return errors.New("refused") }))
	w = serve(t, down.Check, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
