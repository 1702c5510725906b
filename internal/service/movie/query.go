package movie

import (
	"MovieList/internal/apperror"
	"MovieList/internal/model"
	"sort"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

var operators = map[string]string{
	"gte": "$gte",
	"gt":  "$gt",
	"lte": "$lte",
	"lt":  "$lt",
}

// page and limit are accepted for compatibility with older clients and ignored.
var reservedParams = map[string]bool{
	"page":   true,
	"limit":  true,
	"sort":   true,
	"fields": true,
}

// ParseMovieQuery turns list query parameters into a MovieQuery:
// field=value, field__gte=7, sort=-ratings,name and fields=name,ratings.
func ParseMovieQuery(params map[string]string) (model.MovieQuery, error) {
	var query model.MovieQuery

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if reservedParams[key] {
			continue
		}
		filter, err := parseFilter(key, params[key])
		if err != nil {
			return model.MovieQuery{}, err
		}
		query.Filters = append(query.Filters, filter)
	}

	if raw := params["sort"]; raw != "" {
		for _, part := range splitList(raw) {
			field := strings.TrimPrefix(part, "-")
			if _, ok := model.MovieFields[field]; !ok {
				return model.MovieQuery{}, apperror.Newf(fiber.StatusBadRequest, "Cannot sort by unknown field %q", field)
			}
			query.Sort = append(query.Sort, model.SortField{Field: field, Desc: strings.HasPrefix(part, "-")})
		}
	}

	if raw := params["fields"]; raw != "" {
		for _, field := range splitList(raw) {
			if _, ok := model.MovieFields[field]; !ok {
				return model.MovieQuery{}, apperror.Newf(fiber.StatusBadRequest, "Cannot select unknown field %q", field)
			}
			query.Fields = append(query.Fields, field)
		}
	}

	return query, nil
}

func parseFilter(key, value string) (model.Filter, error) {
	field, op, hasOp := strings.Cut(key, "__")
	kind, ok := model.MovieFields[field]
	if !ok {
		return model.Filter{}, apperror.Newf(fiber.StatusBadRequest, "Cannot filter by unknown field %q", field)
	}

	if hasOp {
		mongoOp, ok := operators[op]
		if !ok {
			return model.Filter{}, apperror.Newf(fiber.StatusBadRequest, "Unknown operator %q", op)
		}
		if kind != model.NumberField {
			return model.Filter{}, apperror.Newf(fiber.StatusBadRequest, "Operator %q needs a numeric field, %q is not", op, field)
		}
		n, err := parseNumber(field, value)
		if err != nil {
			return model.Filter{}, err
		}
		return model.Filter{Field: field, Operator: mongoOp, Value: n}, nil
	}

	switch kind {
	case model.NumberField:
		n, err := parseNumber(field, value)
		if err != nil {
			return model.Filter{}, err
		}
		return model.Filter{Field: field, Operator: "$eq", Value: n}, nil
	case model.TimeField:
		return model.Filter{}, apperror.Newf(fiber.StatusBadRequest, "Cannot filter by date field %q", field)
	}

	if field == "_id" {
		id, err := bson.ObjectIDFromHex(value)
		if err != nil {
			return model.Filter{}, apperror.New("Invalid movie id", fiber.StatusBadRequest)
		}
		return model.Filter{Field: field, Operator: "$eq", Value: id}, nil
	}
	return model.Filter{Field: field, Operator: "$eq", Value: value}, nil
}

func parseNumber(field, value string) (float64, error) {
	n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, apperror.Newf(fiber.StatusBadRequest, "Value %q for %q is not a number", value, field)
	}
	return n, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
