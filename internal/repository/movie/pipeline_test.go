package movie

import (
	"MovieList/internal/model"
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func stage(t *testing.T, st bson.D, name string) any {
	t.Helper()
	if len(st) != 1 || st[0].Key != name {
		t.Fatalf("expected stage %s, got %v", name, st)
	}
	return st[0].Value
}

func TestBuildPipeline_Defaults(t *testing.T) {
	p := buildPipeline(model.MovieQuery{})
	if len(p) != 2 {
		t.Fatalf("expected match+sort, got %d stages", len(p))
	}
	if m := stage(t, p[0], "$match").(bson.D); len(m) != 0 {
		t.Fatalf("expected empty match, got %v", m)
	}
	if s := stage(t, p[1], "$sort"); !reflect.DeepEqual(s, defaultSort) {
		t.Fatalf("expected default sort, got %v", s)
	}
}

func TestBuildPipeline_FiltersSortFieldsLimit(t *testing.T) {
	q := model.MovieQuery{
		Filters: []model.Filter{
			{Field: "ratings", Operator: "$gte", Value: 7.0},
			{Field: "genres", Operator: "$eq", Value: "Drama"},
			{Field: "ratings", Operator: "$lt", Value: 9.0},
		},
		Sort:   []model.SortField{{Field: "ratings", Desc: true}, {Field: "name"}},
		Fields: []string{"name", "ratings"},
		Limit:  5,
	}
	p := buildPipeline(q)
	if len(p) != 4 {
		t.Fatalf("expected 4 stages, got %d", len(p))
	}

	wantMatch := bson.D{
		{Key: "ratings", Value: bson.D{{Key: "$gte", Value: 7.0}, {Key: "$lt", Value: 9.0}}},
		{Key: "genres", Value: bson.D{{Key: "$eq", Value: "Drama"}}},
	}
	if m := stage(t, p[0], "$match"); !reflect.DeepEqual(m, wantMatch) {
		t.Fatalf("match=%v, want %v", m, wantMatch)
	}

	wantSort := bson.D{{Key: "ratings", Value: -1}, {Key: "name", Value: 1}}
	if s := stage(t, p[1], "$sort"); !reflect.DeepEqual(s, wantSort) {
		t.Fatalf("sort=%v, want %v", s, wantSort)
	}

	wantProject := bson.D{{Key: "name", Value: 1}, {Key: "ratings", Value: 1}}
	if pr := stage(t, p[2], "$project"); !reflect.DeepEqual(pr, wantProject) {
		t.Fatalf("project=%v, want %v", pr, wantProject)
	}

	if l := stage(t, p[3], "$limit"); l != 5 {
		t.Fatalf("limit=%v, want 5", l)
	}
}

func TestStatsPipeline_GroupsByReleaseYear(t *testing.T) {
	p := statsPipeline()
	group := stage(t, p[0], "$group").(bson.D)
	if group[0].Key != "_id" || group[0].Value != "$releaseYear" {
		t.Fatalf("expected grouping by $releaseYear, got %v", group[0])
	}
	stage(t, p[1], "$sort")
}
