package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"climax-api/internal/domain"
	"climax-api/internal/presentation"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"no location found matching the query"`
}

// handleGetForecast godoc
// @Summary Get forecast for a city
// @Description Retrieves the current conditions plus the upcoming days for the named city
// @Tags Weather
// @Produce json
// @Param q query string true "City name" example(Chicago)
// @Success 200 {object} presentation.Forecast "Successful response"
// @Failure 400 {object} ErrorResponse "Missing city parameter"
// @Failure 404 {object} ErrorResponse "No location found"
// @Failure 502 {object} ErrorResponse "Upstream weather API failure"
// @Router /v1/forecast [get]
func (r *routes) handleGetForecast(c *fiber.Ctx) error {
	city := c.Query("q")
	if city == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Missing required parameter: q",
		})
	}

	forecast, err := r.getForecast.Execute(c.Context(), city)
	if err != nil {
		return r.renderDomainError(c, err, map[string]any{"city": city})
	}

	return c.JSON(forecast)
}

// handleSearchCity godoc
// @Summary Search cities
// @Description Resolves a free-text query to matching cities. An empty query returns an empty list without calling the weather API.
// @Tags Weather
// @Produce json
// @Param q query string false "Search query" example(new)
// @Success 200 {array} presentation.City "Successful response"
// @Failure 404 {object} ErrorResponse "No location found"
// @Router /v1/search [get]
func (r *routes) handleSearchCity(c *fiber.Ctx) error {
	query := c.Query("q")

	// Empty search resets to an empty result list, no remote call.
	if query == "" {
		return c.JSON([]presentation.City{})
	}

	cities, err := r.searchCity.Execute(c.Context(), query)
	if err != nil {
		return r.renderDomainError(c, err, map[string]any{"query": query})
	}

	return c.JSON(cities)
}

// handleSaveFavorite godoc
// @Summary Pin a favorite city
// @Tags Favorites
// @Accept json
// @Produce json
// @Param city body presentation.City true "City to pin"
// @Success 201 {object} presentation.City "City saved"
// @Failure 400 {object} ErrorResponse "Malformed body"
// @Failure 500 {object} ErrorResponse "Storage failure"
// @Router /v1/favorites [post]
func (r *routes) handleSaveFavorite(c *fiber.Ctx) error {
	var city presentation.City
	if err := c.BodyParser(&city); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Invalid city payload",
		})
	}

	if city.ID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Missing required field: id",
		})
	}

	if err := r.favorites.SaveFavoriteCity(c.Context(), city); err != nil {
		return r.renderDomainError(c, err, map[string]any{"cityID": city.ID})
	}

	return c.Status(fiber.StatusCreated).JSON(city)
}

// handleFetchFavorites godoc
// @Summary List favorite cities
// @Tags Favorites
// @Produce json
// @Success 200 {array} presentation.City "Successful response"
// @Failure 500 {object} ErrorResponse "Storage failure"
// @Router /v1/favorites [get]
func (r *routes) handleFetchFavorites(c *fiber.Ctx) error {
	cities, err := r.favorites.FetchFavoriteCities(c.Context())
	if err != nil {
		return r.renderDomainError(c, err, nil)
	}

	if cities == nil {
		cities = []presentation.City{}
	}

	return c.JSON(cities)
}

// handleDeleteFavorite godoc
// @Summary Unpin a favorite city
// @Description Removes the favorite with the given city id. Deleting an unknown id succeeds.
// @Tags Favorites
// @Produce json
// @Param id path int true "City id" example(2618724)
// @Success 204 "City removed"
// @Failure 400 {object} ErrorResponse "Malformed id"
// @Failure 500 {object} ErrorResponse "Storage failure"
// @Router /v1/favorites/{id} [delete]
func (r *routes) handleDeleteFavorite(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Invalid city id",
		})
	}

	if err := r.favorites.DeleteFavoriteCity(c.Context(), presentation.City{ID: id}); err != nil {
		return r.renderDomainError(c, err, map[string]any{"cityID": id})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// renderDomainError maps the domain error vocabulary to HTTP statuses. The
// error message passes through as-is; the core never rewrites it.
func (r *routes) renderDomainError(c *fiber.Ctx, err error, fields map[string]any) error {
	r.l.Error(err, fields)

	status := fiber.StatusInternalServerError

	var serverErr *domain.ServerError
	switch {
	case errors.Is(err, domain.ErrParameterNotProvided):
		status = fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNoLocationFound):
		status = fiber.StatusNotFound
	case errors.Is(err, domain.ErrInvalidAPIKey), errors.Is(err, domain.ErrDisabledAPIKey):
		status = fiber.StatusBadGateway
	case errors.As(err, &serverErr):
		status = fiber.StatusBadGateway
	}

	return c.Status(status).JSON(ErrorResponse{Error: err.Error()})
}
