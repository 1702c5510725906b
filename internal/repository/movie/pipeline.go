package movie

import (
	"MovieList/internal/model"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

var defaultSort = bson.D{{Key: "createdAt", Value: -1}}

func buildPipeline(query model.MovieQuery) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: buildMatch(query.Filters)}},
	}

	sort := defaultSort
	if len(query.Sort) > 0 {
		sort = bson.D{}
		for _, s := range query.Sort {
			dir := 1
			if s.Desc {
				dir = -1
			}
			sort = append(sort, bson.E{Key: s.Field, Value: dir})
		}
	}
	pipeline = append(pipeline, bson.D{{Key: "$sort", Value: sort}})

	if len(query.Fields) > 0 {
		projection := bson.D{}
		for _, f := range query.Fields {
			projection = append(projection, bson.E{Key: f, Value: 1})
		}
		pipeline = append(pipeline, bson.D{{Key: "$project", Value: projection}})
	}

	if query.Limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: query.Limit}})
	}

	return pipeline
}

// buildMatch groups the operators of each field into one sub-document, in first-seen order.
func buildMatch(filters []model.Filter) bson.D {
	match := bson.D{}
	index := make(map[string]int)
	for _, f := range filters {
		i, ok := index[f.Field]
		if !ok {
			i = len(match)
			index[f.Field] = i
			match = append(match, bson.E{Key: f.Field, Value: bson.D{}})
		}
		ops := match[i].Value.(bson.D)
		match[i].Value = append(ops, bson.E{Key: f.Operator, Value: f.Value})
	}
	return match
}

func statsPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$releaseYear"},
			{Key: "avgPrice", Value: bson.D{{Key: "$avg", Value: "$price"}}},
			{Key: "minPrice", Value: bson.D{{Key: "$min", Value: "$price"}}},
			{Key: "maxPrice", Value: bson.D{{Key: "$max", Value: "$price"}}},
			{Key: "avgRating", Value: bson.D{{Key: "$avg", Value: "$ratings"}}},
			{Key: "minRating", Value: bson.D{{Key: "$min", Value: "$ratings"}}},
			{Key: "maxRating", Value: bson.D{{Key: "$max", Value: "$ratings"}}},
			{Key: "priceTotal", Value: bson.D{{Key: "$sum", Value: "$price"}}},
			{Key: "movieTotal", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
}
