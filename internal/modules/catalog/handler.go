package catalog

import (
	"net/http"

	"starwars/internal/middleware"
	"starwars/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	characters CharacterStore
	planets    PlanetStore
	vehicles   VehicleStore
}

func NewHandler(characters CharacterStore, planets PlanetStore, vehicles VehicleStore) *Handler {
	return &Handler{
		characters: characters,
		planets:    planets,
		vehicles:   vehicles,
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/people", h.GetAllCharacters)
	rg.GET("/people/:id", middleware.IntParam("id"), h.GetCharacter)

	rg.GET("/planets", h.GetAllPlanets)
	rg.GET("/planets/:id", middleware.IntParam("id"), h.GetPlanet)

	rg.GET("/vehicles", h.GetAllVehicles)
	rg.GET("/vehicles/:id", middleware.IntParam("id"), h.GetVehicle)
}

/* ---------- CHARACTERS ---------- */

// GetAllCharacters handles GET /people
func (h *Handler) GetAllCharacters(c *gin.Context) {
	characters, err := h.characters.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, mapAll(characters, ToCharacterResponse))
}

// GetCharacter handles GET /people/:id
func (h *Handler) GetCharacter(c *gin.Context) {
	character, err := h.characters.FindByID(c.Request.Context(), c.GetInt64("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	if character == nil {
		response.NotFound(c, "Character not found")
		return
	}
	response.JSON(c, http.StatusOK, ToCharacterResponse(*character))
}

/* ---------- PLANETS ---------- */

// GetAllPlanets handles GET /planets
func (h *Handler) GetAllPlanets(c *gin.Context) {
	planets, err := h.planets.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, mapAll(planets, ToPlanetResponse))
}

// GetPlanet handles GET /planets/:id
func (h *Handler) GetPlanet(c *gin.Context) {
	planet, err := h.planets.FindByID(c.Request.Context(), c.GetInt64("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	if planet == nil {
		response.NotFound(c, "Planet not found")
		return
	}
	response.JSON(c, http.StatusOK, ToPlanetResponse(*planet))
}

/* ---------- VEHICLES ---------- */

// GetAllVehicles handles GET /vehicles
func (h *Handler) GetAllVehicles(c *gin.Context) {
	vehicles, err := h.vehicles.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, mapAll(vehicles, ToVehicleResponse))
}

// GetVehicle handles GET /vehicles/:id
func (h *Handler) GetVehicle(c *gin.Context) {
	vehicle, err := h.vehicles.FindByID(c.Request.Context(), c.GetInt64("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	if vehicle == nil {
		response.NotFound(c, "Vehicle not found")
		return
	}
	response.JSON(c, http.StatusOK, ToVehicleResponse(*vehicle))
}
