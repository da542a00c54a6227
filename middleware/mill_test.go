package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newMillRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequireMill())
	router.GET("/deals", func(c *gin.Context) {
		c.String(http.StatusOK, MillID(c))
	})
	return router
}

func TestRequireMill_MissingHeader(t *testing.T) {
	w := httptest.NewRecorder()
	newMillRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/deals", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "X-Mill-ID header is required")
}

func TestRequireMill_SetsMillID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/deals", nil)
	req.Header.Set("X-Mill-ID", "  sri-lakshmi-mill ")
	w := httptest.NewRecorder()
	newMillRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "sri-lakshmi-mill", w.Body.String())
}
