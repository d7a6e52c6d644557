package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewServer(t *testing.T) {
	s := NewServer("9999")

	assert.Equal(t, ":9999", s.httpServer.Addr)
	assert.NotNil(t, s.Router)
}

func TestRegisterSwagger_RouteExists(t *testing.T) {
	s := NewServer("0")
	s.RegisterSwagger()

	req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
	rec := httptest.NewRecorder()
	s.Router.ServeHTTP(rec, req)

	assert.NotEqual(t, http.StatusNotFound, rec.Code)
}
