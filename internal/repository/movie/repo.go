package movie

import (
	"MovieList/internal/model"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
)

var ErrMovieNotFound = errors.New("movie not found")

type Repository interface {
	Find(ctx context.Context, query model.MovieQuery) ([]model.Movie, error)
	FindByID(ctx context.Context, id bson.ObjectID) (model.Movie, error)
	Insert(ctx context.Context, movie model.Movie) (model.Movie, error)
	Update(ctx context.Context, id bson.ObjectID, set bson.M) (model.Movie, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	Stats(ctx context.Context) ([]model.MovieStats, error)
}
