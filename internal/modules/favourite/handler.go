package favourite

import (
	"errors"
	"fmt"
	"net/http"

	"starwars/internal/domain"
	"starwars/internal/middleware"
	"starwars/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler обрабатывает HTTP запросы для избранного
type Handler struct {
	service *Service
}

// NewHandler создаёт новый handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes регистрирует routes для избранного
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	favourites := rg.Group("/favourite")
	favourites.Use(middleware.ActingUser())
	{
		favourites.POST("/planet/:id", middleware.IntParam("id"), h.AddFavouritePlanet)
		favourites.DELETE("/planet/:id", middleware.IntParam("id"), h.DeleteFavouritePlanet)
		favourites.POST("/characters/:id", middleware.IntParam("id"), h.AddFavouriteCharacter)
		favourites.DELETE("/characters/:id", middleware.IntParam("id"), h.DeleteFavouriteCharacter)
		favourites.POST("/vehicle/:id", middleware.IntParam("id"), h.AddFavouriteVehicle)
		favourites.DELETE("/vehicle/:id", middleware.IntParam("id"), h.DeleteFavouriteVehicle)
	}
}

// AddFavouritePlanet добавляет планету в избранное пользователя из заголовка user_id
//
// @Summary Добавить планету в избранное
// @Tags Favourite
// @Produce json
// @Param user_id header int true "ID пользователя"
// @Param id path int true "ID планеты"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse "Пользователь или планета не найдены"
// @Router /favourite/planet/{id} [post]
func (h *Handler) AddFavouritePlanet(c *gin.Context) {
	h.add(c, domain.TargetPlanet)
}

// AddFavouriteCharacter добавляет персонажа в избранное
//
// @Summary Добавить персонажа в избранное
// @Tags Favourite
// @Produce json
// @Param user_id header int true "ID пользователя"
// @Param id path int true "ID персонажа"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse "Пользователь или персонаж не найдены"
// @Router /favourite/characters/{id} [post]
func (h *Handler) AddFavouriteCharacter(c *gin.Context) {
	h.add(c, domain.TargetCharacter)
}

// AddFavouriteVehicle добавляет транспорт в избранное
//
// @Router /favourite/vehicle/{id} [post]
func (h *Handler) AddFavouriteVehicle(c *gin.Context) {
	h.add(c, domain.TargetVehicle)
}

// DeleteFavouritePlanet удаляет планету из избранного
//
// @Summary Удалить планету из избранного
// @Tags Favourite
// @Produce json
// @Param user_id header int true "ID пользователя"
// @Param id path int true "ID планеты"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse "Планета отсутствует в избранном"
// @Router /favourite/planet/{id} [delete]
func (h *Handler) DeleteFavouritePlanet(c *gin.Context) {
	h.remove(c, domain.TargetPlanet)
}

// DeleteFavouriteCharacter удаляет персонажа из избранного
//
// @Router /favourite/characters/{id} [delete]
func (h *Handler) DeleteFavouriteCharacter(c *gin.Context) {
	h.remove(c, domain.TargetCharacter)
}

// DeleteFavouriteVehicle удаляет транспорт из избранного
//
// @Router /favourite/vehicle/{id} [delete]
func (h *Handler) DeleteFavouriteVehicle(c *gin.Context) {
	h.remove(c, domain.TargetVehicle)
}

func (h *Handler) add(c *gin.Context, target domain.FavouriteTarget) {
	userID, ok := middleware.ActingUserID(c)
	if !ok {
		response.NotFound(c, "User not found")
		return
	}

	_, err := h.service.Add(c.Request.Context(), userID, target, c.GetInt64("id"))
	switch {
	case errors.Is(err, ErrUserNotFound):
		response.NotFound(c, "User not found")
	case errors.Is(err, ErrTargetNotFound):
		response.NotFound(c, target.Label()+" not found")
	case err != nil:
		_ = c.Error(err)
	default:
		response.Message(c, http.StatusOK, fmt.Sprintf("Favourite %s added successfully", target))
	}
}

func (h *Handler) remove(c *gin.Context, target domain.FavouriteTarget) {
	notFound := fmt.Sprintf("Favourite %s not found", target)

	userID, ok := middleware.ActingUserID(c)
	if !ok {
		response.NotFound(c, notFound)
		return
	}

	err := h.service.Remove(c.Request.Context(), userID, target, c.GetInt64("id"))
	switch {
	case errors.Is(err, ErrFavouriteNotFound):
		response.NotFound(c, notFound)
	case err != nil:
		_ = c.Error(err)
	default:
		response.Message(c, http.StatusOK, fmt.Sprintf("Favourite %s deleted successfully", target))
	}
}
