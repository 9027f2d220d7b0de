package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/library-service/cmd/api/query"
)

func Test_Example_Matches(t *testing.T) {
	record := map[string]string{
		"title":  "As aventuras de Pi",
		"author": "Artur",
		"isbn":   "001",
	}
	valueOf := func(column string) string { return record[column] }

	tests := []struct {
		name    string
		example query.Example
		want    bool
	}{
		{
			name:    "empty_example_matches_everything",
			example: query.NewExample(),
			want:    true,
		},
		{
			name:    "unset_fields_are_ignored",
			example: query.NewExample(query.Contains("title", ""), query.Contains("author", "")),
			want:    true,
		},
		{
			name:    "substring_matches_case_insensitively",
			example: query.NewExample(query.Contains("title", "AVENTURA")),
			want:    true,
		},
		{
			name:    "every_set_field_must_match",
			example: query.NewExample(query.Contains("title", "aventuras"), query.Contains("author", "Fulano")),
			want:    false,
		},
		{
			name:    "exact_field_rejects_substring",
			example: query.NewExample(query.Equals("isbn", "00")),
			want:    false,
		},
		{
			name:    "exact_field_matches_whole_value",
			example: query.NewExample(query.Equals("isbn", "001")),
			want:    true,
		},
		{
			name:    "unknown_column_does_not_match",
			example: query.NewExample(query.Contains("publisher", "x")),
			want:    false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.example.Matches(valueOf))
		})
	}
}

func Test_NewExample_DropsEmptyFields(t *testing.T) {
	e := query.NewExample(query.Contains("title", ""), query.Contains("author", "Artur"), query.Equals("isbn", ""))

	assert.False(t, e.IsEmpty())
	assert.Len(t, e.Fields(), 1)
	assert.Equal(t, "author", e.Fields()[0].Column)
	assert.True(t, query.NewExample(query.Contains("title", "")).IsEmpty())
}
