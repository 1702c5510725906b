package router

import (
	"MovieList/internal/handler"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func Register(app *fiber.App, movieHandler *handler.MovieHandler, pageHandler *handler.PageHandler, staticDir string) {
	app.Use(recover.New())
	app.Use(cors.New())

	app.Get("/", pageHandler.Index)
	app.Static("/static", staticDir)

	api := app.Group("/api/v1")

	movies := api.Group("/movies")
	movies.Get("/", movieHandler.GetAll)
	movies.Get("/highest-rated", movieHandler.GetHighestRated)
	movies.Get("/stats", movieHandler.Stats)
	movies.Get("/search", movieHandler.Search)
	movies.Get("/movies-by-genre/:genre", movieHandler.GetByGenre)
	movies.Get("/:id", movieHandler.GetByID)
	movies.Post("/", movieHandler.Create)
	movies.Patch("/:id", movieHandler.Update)
	movies.Delete("/:id", movieHandler.Delete)

	app.Use(handler.NotFound)
}
