package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const DefaultCreatedBy = "Nana Kwasi"

// Movie is a stored movie. Every field but _id and name may be missing from a
// projected document, so fields without a usable zero value are pointers.
type Movie struct {
	ID          bson.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name        string        `json:"name,omitempty" bson:"name,omitempty" validate:"required,min=1,max=200"`
	Description string        `json:"description,omitempty" bson:"description,omitempty"`
	Duration    int           `json:"duration,omitempty" bson:"duration,omitempty" validate:"min=0"`
	Ratings     *float64      `json:"ratings,omitempty" bson:"ratings,omitempty" validate:"omitempty,min=0,max=10"`
	TotalRating int           `json:"totalRating,omitempty" bson:"totalRating,omitempty" validate:"min=0"`
	ReleaseYear *int          `json:"releaseYear,omitempty" bson:"releaseYear,omitempty" validate:"required,min=1888,max=2100"`
	ReleaseDate *time.Time    `json:"releaseDate,omitempty" bson:"releaseDate,omitempty"`
	CreatedAt   *time.Time    `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	Genres      []string      `json:"genres,omitempty" bson:"genres,omitempty" validate:"dive,required"`
	Directors   []string      `json:"directors,omitempty" bson:"directors,omitempty" validate:"dive,required"`
	CoverImage  string        `json:"coverImage,omitempty" bson:"coverImage,omitempty" validate:"omitempty,excludesall=/\\"`
	Actors      []string      `json:"actors,omitempty" bson:"actors,omitempty" validate:"dive,required"`
	Price       float64       `json:"price,omitempty" bson:"price,omitempty" validate:"min=0"`
	CreatedBy   string        `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
}

// MoviePatch holds the fields a PATCH request may change. Nil fields are left alone.
type MoviePatch struct {
	Name        *string    `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string    `json:"description"`
	Duration    *int       `json:"duration" validate:"omitempty,min=0"`
	Ratings     *float64   `json:"ratings" validate:"omitempty,min=0,max=10"`
	TotalRating *int       `json:"totalRating" validate:"omitempty,min=0"`
	ReleaseYear *int       `json:"releaseYear" validate:"omitempty,min=1888,max=2100"`
	ReleaseDate *time.Time `json:"releaseDate"`
	Genres      []string   `json:"genres" validate:"omitempty,dive,required"`
	Directors   []string   `json:"directors" validate:"omitempty,dive,required"`
	CoverImage  *string    `json:"coverImage" validate:"omitempty,excludesall=/\\"`
	Actors      []string   `json:"actors" validate:"omitempty,dive,required"`
	Price       *float64   `json:"price" validate:"omitempty,min=0"`
}

// Set returns the $set document for the patch.
func (p MoviePatch) Set() bson.M {
	set := bson.M{}
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.Duration != nil {
		set["duration"] = *p.Duration
	}
	if p.Ratings != nil {
		set["ratings"] = *p.Ratings
	}
	if p.TotalRating != nil {
		set["totalRating"] = *p.TotalRating
	}
	if p.ReleaseYear != nil {
		set["releaseYear"] = *p.ReleaseYear
	}
	if p.ReleaseDate != nil {
		set["releaseDate"] = *p.ReleaseDate
	}
	if p.Genres != nil {
		set["genres"] = p.Genres
	}
	if p.Directors != nil {
		set["directors"] = p.Directors
	}
	if p.CoverImage != nil {
		set["coverImage"] = *p.CoverImage
	}
	if p.Actors != nil {
		set["actors"] = p.Actors
	}
	if p.Price != nil {
		set["price"] = *p.Price
	}
	return set
}

type MovieStats struct {
	ReleaseYear int     `json:"releaseYear" bson:"_id"`
	AvgPrice    float64 `json:"avgPrice" bson:"avgPrice"`
	MinPrice    float64 `json:"minPrice" bson:"minPrice"`
	MaxPrice    float64 `json:"maxPrice" bson:"maxPrice"`
	AvgRating   float64 `json:"avgRating" bson:"avgRating"`
	MinRating   float64 `json:"minRating" bson:"minRating"`
	MaxRating   float64 `json:"maxRating" bson:"maxRating"`
	PriceTotal  float64 `json:"priceTotal" bson:"priceTotal"`
	MovieTotal  int     `json:"movieTotal" bson:"movieTotal"`
}

type SearchResult struct {
	Movie      Movie   `json:"movie"`
	Similarity float64 `json:"similarity"`
}

// Response is the success envelope of the movies API.
type Response struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
	Data   any    `json:"data"`
}

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
