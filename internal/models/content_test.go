package models

import (
	"reflect"
	"testing"
)

func TestContentType_Valid(t *testing.T) {
	tests := []struct {
		name     string
		typ      ContentType
		expected bool
	}{
		{"twitter", TypeTwitter, true},
		{"youtube", TypeYoutube, true},
		{"document", TypeDocument, true},
		{"link", TypeLink, true},
		{"tag", TypeTag, true},
		{"empty", "", false},
		{"unknown", "podcast", false},
		{"wrong case", "Twitter", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.Valid(); got != tt.expected {
				t.Errorf("Valid() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUniqueTagTitles(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"nil", nil, []string{}},
		{"no duplicates", []string{"a", "b"}, []string{"a", "b"}},
		{"duplicates keep first", []string{"b", "a", "b", "c", "a"}, []string{"b", "a", "c"}},
		{"case sensitive", []string{"Go", "go"}, []string{"Go", "go"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UniqueTagTitles(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("UniqueTagTitles(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
