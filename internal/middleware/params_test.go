package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestIntParam(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/people/:id", IntParam("id"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.GetInt64("id")})
	})

	cases := []struct {
		path   string
		status int
		body   string
	}{
		{"/people/7", http.StatusOK, `{"id":7}`},
		{"/people/0", http.StatusOK, `{"id":0}`},
		{"/people/abc", http.StatusNotFound, `{"error":"Not found"}`},
		{"/people/-1", http.StatusNotFound, `{"error":"Not found"}`},
		{"/people/+1", http.StatusNotFound, `{"error":"Not found"}`},
		{"/people/99999999999999999999", http.StatusNotFound, `{"error":"Not found"}`},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))

		assert.Equal(t, tc.status, w.Code, tc.path)
		assert.JSONEq(t, tc.body, w.Body.String(), tc.path)
	}
}
