package handler

import (
	"MovieList/internal/apperror"
	"MovieList/internal/model"
	"MovieList/internal/service/movie"
	"net/url"

	"github.com/gofiber/fiber/v2"
)

type MovieHandler struct {
	movieService movie.MovieService
}

func NewMovieHandler(movieService movie.MovieService) *MovieHandler {
	return &MovieHandler{movieService: movieService}
}

func (h *MovieHandler) GetAll(c *fiber.Ctx) error {
	movies, err := h.movieService.GetAll(c.Context(), c.Queries())
	if err != nil {
		return err
	}
	return success(c, fiber.StatusOK, len(movies), movies)
}

func (h *MovieHandler) GetHighestRated(c *fiber.Ctx) error {
	movies, err := h.movieService.GetHighestRated(c.Context(), c.Queries())
	if err != nil {
		return err
	}
	return success(c, fiber.StatusOK, len(movies), movies)
}

func (h *MovieHandler) GetByGenre(c *fiber.Ctx) error {
	genre, err := url.PathUnescape(c.Params("genre"))
	if err != nil {
		return apperror.New("Invalid genre", fiber.StatusBadRequest)
	}
	movies, err := h.movieService.GetByGenre(c.Context(), genre, c.Queries())
	if err != nil {
		return err
	}
	return success(c, fiber.StatusOK, len(movies), movies)
}

func (h *MovieHandler) GetByID(c *fiber.Ctx) error {
	m, err := h.movieService.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return success(c, fiber.StatusOK, 1, m)
}

func (h *MovieHandler) Create(c *fiber.Ctx) error {
	newMovie := new(model.Movie)
	if err := c.BodyParser(newMovie); err != nil {
		return apperror.New("Invalid JSON", fiber.StatusBadRequest)
	}
	if err := validate.Struct(newMovie); err != nil {
		return apperror.Newf(fiber.StatusBadRequest, "Not a valid movie object: %v", err)
	}

	created, err := h.movieService.Create(c.Context(), *newMovie)
	if err != nil {
		return err
	}
	return success(c, fiber.StatusCreated, 1, created)
}

func (h *MovieHandler) Update(c *fiber.Ctx) error {
	patch := new(model.MoviePatch)
	if err := c.BodyParser(patch); err != nil {
		return apperror.New("Invalid JSON", fiber.StatusBadRequest)
	}
	if err := validate.Struct(patch); err != nil {
		return apperror.Newf(fiber.StatusBadRequest, "Not a valid movie update: %v", err)
	}

	updated, err := h.movieService.Update(c.Context(), c.Params("id"), *patch)
	if err != nil {
		return err
	}
	return success(c, fiber.StatusOK, 1, updated)
}

func (h *MovieHandler) Delete(c *fiber.Ctx) error {
	if err := h.movieService.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *MovieHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.movieService.Stats(c.Context())
	if err != nil {
		return err
	}
	return success(c, fiber.StatusOK, len(stats), stats)
}

func (h *MovieHandler) Search(c *fiber.Ctx) error {
	results, err := h.movieService.Search(c.Context(), c.Query("q"))
	if err != nil {
		return err
	}
	return success(c, fiber.StatusOK, len(results), results)
}
