package model

import (
	"encoding/json"
	"sort"
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func jsonKeys(t *testing.T, v any) []string {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func TestMovie_ProjectedDocumentKeepsOnlySelectedFields(t *testing.T) {
	raw, err := bson.Marshal(bson.D{
		{Key: "_id", Value: bson.NewObjectID()},
		{Key: "name", Value: "Heat"},
	})
	if err != nil {
		t.Fatalf("bson marshal: %v", err)
	}
	var m Movie
	if err := bson.Unmarshal(raw, &m); err != nil {
		t.Fatalf("bson unmarshal: %v", err)
	}

	got := jsonKeys(t, m)
	if len(got) != 2 || got[0] != "_id" || got[1] != "name" {
		t.Fatalf("projected movie has keys %v, want [_id name]", got)
	}
}

func TestMovie_ZeroRatingIsKept(t *testing.T) {
	raw, err := bson.Marshal(bson.D{
		{Key: "_id", Value: bson.NewObjectID()},
		{Key: "ratings", Value: 0.0},
		{Key: "releaseYear", Value: 1995},
	})
	if err != nil {
		t.Fatalf("bson marshal: %v", err)
	}
	var m Movie
	if err := bson.Unmarshal(raw, &m); err != nil {
		t.Fatalf("bson unmarshal: %v", err)
	}
	if m.Ratings == nil || *m.Ratings != 0 || m.ReleaseYear == nil || *m.ReleaseYear != 1995 {
		t.Fatalf("decoded %+v", m)
	}

	got := jsonKeys(t, m)
	if len(got) != 3 || got[0] != "_id" || got[1] != "ratings" || got[2] != "releaseYear" {
		t.Fatalf("keys %v", got)
	}
}
