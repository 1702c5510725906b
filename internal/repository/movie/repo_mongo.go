package movie

import (
	"MovieList/internal/model"
	"MovieList/internal/mongodb"
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type movieRepository struct {
	col *mongo.Collection
}

func NewMovieRepository(client *mongodb.Client) Repository {
	return &movieRepository{
		col: client.GetCollection(mongodb.Movies),
	}
}

func (r *movieRepository) Find(ctx context.Context, query model.MovieQuery) ([]model.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	cursor, err := r.col.Aggregate(ctx, buildPipeline(query))
	if err != nil {
		log.Error("Error while aggregating movies:", err)
		return nil, err
	}

	movies := make([]model.Movie, 0)
	if err := cursor.All(ctx, &movies); err != nil {
		log.Error("Error decoding movies:", err)
		return nil, err
	}
	return movies, nil
}

func (r *movieRepository) FindByID(ctx context.Context, id bson.ObjectID) (model.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var movie model.Movie
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&movie)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Movie{}, ErrMovieNotFound
		}
		log.Error("Error while getting movie:", err)
		return model.Movie{}, err
	}
	return movie, nil
}

func (r *movieRepository) Insert(ctx context.Context, movie model.Movie) (model.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	movie.ID = bson.NilObjectID
	if movie.CreatedAt == nil {
		now := time.Now().UTC()
		movie.CreatedAt = &now
	}
	if movie.CreatedBy == "" {
		movie.CreatedBy = model.DefaultCreatedBy
	}

	res, err := r.col.InsertOne(ctx, movie)
	if err != nil {
		log.Error("Error while inserting movie:", err)
		return model.Movie{}, err
	}

	movie.ID = res.InsertedID.(bson.ObjectID)
	return movie, nil
}

func (r *movieRepository) Update(ctx context.Context, id bson.ObjectID, set bson.M) (model.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var movie model.Movie
	opt := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opt).Decode(&movie)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Movie{}, ErrMovieNotFound
		}
		log.Error("Error while updating movie:", err)
		return model.Movie{}, err
	}
	return movie, nil
}

func (r *movieRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		log.Error("Error while deleting movie:", err)
		return err
	}
	if res.DeletedCount == 0 {
		return ErrMovieNotFound
	}
	return nil
}

func (r *movieRepository) Stats(ctx context.Context) ([]model.MovieStats, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	cursor, err := r.col.Aggregate(ctx, statsPipeline())
	if err != nil {
		log.Error("Error while aggregating movie stats:", err)
		return nil, err
	}

	stats := make([]model.MovieStats, 0)
	if err := cursor.All(ctx, &stats); err != nil {
		log.Error("Error decoding movie stats:", err)
		return nil, err
	}
	return stats, nil
}
