package movie

import (
	"MovieList/internal/apperror"
	"MovieList/internal/model"
	"context"
	"errors"
	"strings"

	repoMovie "MovieList/internal/repository/movie"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const HighestRatedLimit = 5

type movieService struct {
	repo repoMovie.Repository
}

func NewMovieService(repo repoMovie.Repository) MovieService {
	return &movieService{repo: repo}
}

func (s *movieService) GetAll(ctx context.Context, params map[string]string) ([]model.Movie, error) {
	query, err := ParseMovieQuery(params)
	if err != nil {
		return nil, err
	}
	return s.repo.Find(ctx, query)
}

func (s *movieService) GetHighestRated(ctx context.Context, params map[string]string) ([]model.Movie, error) {
	query, err := ParseMovieQuery(params)
	if err != nil {
		return nil, err
	}
	if len(query.Sort) == 0 {
		query.Sort = []model.SortField{{Field: "ratings", Desc: true}}
	}
	query.Limit = HighestRatedLimit
	return s.repo.Find(ctx, query)
}

func (s *movieService) GetByGenre(ctx context.Context, genre string, params map[string]string) ([]model.Movie, error) {
	genre = strings.TrimSpace(genre)
	if genre == "" {
		return nil, apperror.New("Genre is empty", fiber.StatusBadRequest)
	}
	query, err := ParseMovieQuery(params)
	if err != nil {
		return nil, err
	}
	query.Filters = append([]model.Filter{{Field: "genres", Operator: "$eq", Value: genre}}, query.Filters...)
	return s.repo.Find(ctx, query)
}

func (s *movieService) GetByID(ctx context.Context, id string) (model.Movie, error) {
	objectID, err := parseID(id)
	if err != nil {
		return model.Movie{}, err
	}
	movie, err := s.repo.FindByID(ctx, objectID)
	return movie, notFound(err)
}

func (s *movieService) Create(ctx context.Context, movie model.Movie) (model.Movie, error) {
	return s.repo.Insert(ctx, movie)
}

func (s *movieService) Update(ctx context.Context, id string, patch model.MoviePatch) (model.Movie, error) {
	objectID, err := parseID(id)
	if err != nil {
		return model.Movie{}, err
	}
	set := patch.Set()
	if len(set) == 0 {
		return model.Movie{}, apperror.New("Nothing to update", fiber.StatusBadRequest)
	}
	movie, err := s.repo.Update(ctx, objectID, set)
	return movie, notFound(err)
}

func (s *movieService) Delete(ctx context.Context, id string) error {
	objectID, err := parseID(id)
	if err != nil {
		return err
	}
	return notFound(s.repo.Delete(ctx, objectID))
}

func (s *movieService) Stats(ctx context.Context) ([]model.MovieStats, error) {
	return s.repo.Stats(ctx)
}

func (s *movieService) Search(ctx context.Context, query string) ([]model.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperror.New("Search query is empty", fiber.StatusBadRequest)
	}
	movies, err := s.repo.Find(ctx, model.MovieQuery{})
	if err != nil {
		return nil, err
	}
	return rankByTitle(movies, query), nil
}

func parseID(id string) (bson.ObjectID, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.NilObjectID, apperror.New("Invalid movie id", fiber.StatusBadRequest)
	}
	return objectID, nil
}

func notFound(err error) error {
	if errors.Is(err, repoMovie.ErrMovieNotFound) {
		return apperror.New("Movie not found", fiber.StatusNotFound)
	}
	return err
}
