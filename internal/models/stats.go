package models

// BrainStats holds aggregate counts exported as metrics.
type BrainStats struct {
	Users            int64
	ContentByType    map[ContentType]int64
	ActiveShareLinks int64
	ShareViews       int64
}
