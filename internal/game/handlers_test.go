package game

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestConnectHandler_RejectsPlainHTTP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	registry := NewRegistry(&MockWordProvider{})
	RegisterRoute(engine, NewGameHandler(NewSessionRouter(registry)))

	req := httptest.NewRequest(http.MethodGet, "/ws", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	// The upgrader writes its own error reply; the handler must not append
	// a second body to it.
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotContains(t, rec.Body.String(), "{")
}
