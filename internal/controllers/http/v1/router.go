package http

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"climax-api/internal/usecases"
	"climax-api/pkg/observe"
)

type routes struct {
	getForecast usecases.GetForecastByCityUseCase
	searchCity  usecases.SearchCityUseCase
	favorites   usecases.FavoritesUseCase
	l           *observe.Logger
}

func NewRouter(
	app *fiber.App,
	getForecast usecases.GetForecastByCityUseCase,
	searchCity usecases.SearchCityUseCase,
	favorites usecases.FavoritesUseCase,
	l *observe.Logger,
) {
	r := &routes{
		getForecast: getForecast,
		searchCity:  searchCity,
		favorites:   favorites,
		l:           l,
	}

	// Swagger documentation
	app.Get("/swagger/doc.json", func(c *fiber.Ctx) error {
		swaggerData, err := os.ReadFile("docs/swagger.json")
		if err != nil {
			return c.Status(fiber.ErrInternalServerError.Code).JSON(fiber.Map{"error": "Failed to read Swagger documentation"})
		}

		c.Set("Content-Type", "application/json")
		return c.Send(swaggerData)
	})

	app.Get("/swagger/*", swagger.New(swagger.Config{
		URL:         "/swagger/doc.json",
		DeepLinking: true,
	}))

	// API routes
	v1 := app.Group("/v1")
	v1.Get("/forecast", r.handleGetForecast)
	v1.Get("/search", r.handleSearchCity)
	v1.Post("/favorites", r.handleSaveFavorite)
	v1.Get("/favorites", r.handleFetchFavorites)
	v1.Delete("/favorites/:id", r.handleDeleteFavorite)
}
