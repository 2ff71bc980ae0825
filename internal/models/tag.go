package models

import "github.com/google/uuid"

// Tag is a unique, shared label referenced by content items.
type Tag struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

// UniqueTagTitles returns titles with duplicates removed, keeping the first
// occurrence of each so the caller's order survives.
func UniqueTagTitles(titles []string) []string {
	seen := make(map[string]struct{}, len(titles))
	out := make([]string, 0, len(titles))
	for _, t := range titles {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
