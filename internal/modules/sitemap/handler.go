// Package sitemap lists the routes the API serves.
package sitemap

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
)

type Endpoint struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

type Response struct {
	Endpoints []Endpoint `json:"endpoints"`
}

// RoutesProvider is satisfied by *gin.Engine.
type RoutesProvider interface {
	Routes() gin.RoutesInfo
}

type Handler struct {
	routes RoutesProvider
}

func NewHandler(routes RoutesProvider) *Handler {
	return &Handler{routes: routes}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.Sitemap)
}

// Sitemap handles GET /. Routes are read per request, so everything
// registered after this handler is listed as well.
func (h *Handler) Sitemap(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Endpoints: Build(h.routes.Routes())})
}

// Build sorts routes by path, then method.
func Build(routes gin.RoutesInfo) []Endpoint {
	out := make([]Endpoint, 0, len(routes))
	for _, r := range routes {
		out = append(out, Endpoint{Method: r.Method, Path: r.Path})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		return out[i].Method < out[j].Method
	})
	return out
}
