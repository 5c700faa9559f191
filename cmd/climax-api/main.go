package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"climax-api/config"
	v1 "climax-api/internal/controllers/http/v1"
	"climax-api/internal/datasource"
	"climax-api/internal/datasource/memory"
	"climax-api/internal/datasource/postgres"
	"climax-api/internal/repositories"
	"climax-api/internal/usecases"
	"climax-api/pkg/httpclient"
	"climax-api/pkg/httpserver"
	"climax-api/pkg/observe"
)

// @title Climax API
// @version 1.0.0
// @description Weather lookup and favorite cities service built with Go and Fiber.
// @description Resolves city names to forecasts via a remote weather provider and keeps a small set of pinned favorite cities.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Weather
// @tag.description Forecast and city search operations
// @tag.name Favorites
// @tag.description Favorite city operations
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	cnf, err := config.NewConfig("config/config.yaml")
	if err != nil {
		log.Fatalln("cannot load configuration:", err)
	}

	writers := []io.Writer{os.Stdout}
	var sentryHook *observe.SentryHook
	if cnf.Sentry.DSN != "" {
		sentryHook = observe.NewSentryHook(cnf.AppEnv, cnf.AppName, cnf.Sentry.DSN, cnf.Sentry.Debug)
		writers = append(writers, sentryHook)
	}

	l := observe.NewZapLogger(cnf.AppName, cnf.AppEnv, writers...)

	// A missing API key can never work at runtime, so refuse to start.
	if strings.TrimSpace(cnf.Weather.APIKey) == "" {
		l.Fatal("weather API key is not configured, set WEATHER_API_KEY or weather.api_key")
	}

	app := httpserver.InitFiberServer(cnf.AppName)

	transport := httpclient.NewDefaultClient(&http.Client{Timeout: 30 * time.Second})
	weatherDataSource := datasource.NewWeatherRemoteDataSource(
		cnf.Weather.BaseURL,
		cnf.Weather.APIKey,
		cnf.Weather.ForecastDays,
		transport,
		l,
	)

	var favoritesDataSource datasource.FavoritesLocalDataSource
	if cnf.Database.URL != "" {
		pool, err := pgxpool.New(ctx, cnf.Database.URL)
		if err != nil {
			l.Fatal("cannot connect to database", map[string]any{"err": err})
		}
		defer pool.Close()

		store := postgres.NewFavoritesDataSource(pool)
		if err := store.EnsureSchema(ctx); err != nil {
			l.Fatal("cannot prepare favorites schema", map[string]any{"err": err})
		}
		favoritesDataSource = store
	} else {
		l.Warning("no database configured, favorites are kept in memory only")
		favoritesDataSource = memory.NewFavoritesDataSource()
	}

	weatherRepository := repositories.NewWeatherRepository(weatherDataSource)
	favoritesRepository := repositories.NewFavoritesRepository(favoritesDataSource)

	v1.NewRouter(
		app,
		usecases.NewGetForecastByCityUseCase(weatherRepository),
		usecases.NewSearchCityUseCase(weatherRepository),
		usecases.NewFavoritesUseCase(favoritesRepository),
		l,
	)

	go func() {
		if err := app.Listen(":" + cnf.Port); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err})
		}
	}()

	l.Info("application started successfully", map[string]any{"port": cnf.Port})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = app.ShutdownWithContext(shutdownCtx)
		if sentryHook != nil {
			sentryHook.Flush()
		}
		_ = l.Stop()
		cancel()
	}()

	select {
	case <-sigCh:
		fmt.Println("received shutdown signal")
	case <-ctx.Done():
		fmt.Println("context cancelled")
	}
}
