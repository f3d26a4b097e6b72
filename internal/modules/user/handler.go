package user

import (
	"context"
	"errors"
	"net/http"

	"starwars/internal/domain"
	"starwars/internal/middleware"
	"starwars/internal/modules/favourite"
	"starwars/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type UserLister interface {
	List(ctx context.Context) ([]domain.User, error)
}

type Handler struct {
	users      UserLister
	favourites *favourite.Service
}

func NewHandler(users UserLister, favourites *favourite.Service) *Handler {
	return &Handler{users: users, favourites: favourites}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/user", h.GetAllUsers)
	rg.GET("/users/:id/favourites", middleware.IntParam("id"), h.GetUserFavourites)
}

// GetAllUsers handles GET /user
func (h *Handler) GetAllUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, ToUserResponses(users))
}

// GetUserFavourites handles GET /users/:id/favourites
func (h *Handler) GetUserFavourites(c *gin.Context) {
	favourites, err := h.favourites.ListForUser(c.Request.Context(), c.GetInt64("id"))
	if errors.Is(err, favourite.ErrUserNotFound) {
		response.NotFound(c, "User not found")
		return
	}
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, favourite.ToFavouriteResponses(favourites))
}
