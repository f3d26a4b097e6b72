package sitemap

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemap_ListsRegisteredRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler(router).RegisterRoutes(&router.RouterGroup)
	router.GET("/planets", func(c *gin.Context) {})
	router.DELETE("/favourite/planet/:id", func(c *gin.Context) {})
	router.POST("/favourite/planet/:id", func(c *gin.Context) {})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []Endpoint{
		{Method: http.MethodGet, Path: "/"},
		{Method: http.MethodDelete, Path: "/favourite/planet/:id"},
		{Method: http.MethodPost, Path: "/favourite/planet/:id"},
		{Method: http.MethodGet, Path: "/planets"},
	}, body.Endpoints)
}
