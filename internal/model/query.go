package model

type FieldKind int

const (
	TextField FieldKind = iota
	NumberField
	ListField
	TimeField
)

// MovieFields lists the document fields a client may filter, sort or select on.
var MovieFields = map[string]FieldKind{
	"_id":         TextField,
	"name":        TextField,
	"description": TextField,
	"duration":    NumberField,
	"ratings":     NumberField,
	"totalRating": NumberField,
	"releaseYear": NumberField,
	"releaseDate": TimeField,
	"createdAt":   TimeField,
	"genres":      ListField,
	"directors":   ListField,
	"coverImage":  TextField,
	"actors":      ListField,
	"price":       NumberField,
	"createdBy":   TextField,
}

type Filter struct {
	Field    string
	Operator string // mongo operator, "$eq" for plain equality
	Value    any
}

type SortField struct {
	Field string
	Desc  bool
}

type MovieQuery struct {
	Filters []Filter
	Sort    []SortField
	Fields  []string
	// Limit caps the result set; zero means no cap.
	Limit int
}
