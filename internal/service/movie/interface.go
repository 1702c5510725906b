package movie

import (
	"MovieList/internal/model"
	"context"
)

type MovieService interface {
	GetAll(ctx context.Context, params map[string]string) ([]model.Movie, error)
	GetHighestRated(ctx context.Context, params map[string]string) ([]model.Movie, error)
	GetByGenre(ctx context.Context, genre string, params map[string]string) ([]model.Movie, error)
	GetByID(ctx context.Context, id string) (model.Movie, error)
	Create(ctx context.Context, movie model.Movie) (model.Movie, error)
	Update(ctx context.Context, id string, patch model.MoviePatch) (model.Movie, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) ([]model.MovieStats, error)
	Search(ctx context.Context, query string) ([]model.SearchResult, error)
}
