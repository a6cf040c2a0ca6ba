package models

import "time"

// Tag is a row of the global tag dictionary.
type Tag struct {
	TagID     string    `json:"tag_id"`
	TagName   string    `json:"tag_name"`
	Embedding []float64 `json:"embedding,omitempty"`
	UseCount  int       `json:"use_count"`
}

// UserTagStat joins a user's usage of one tag with its global row. Inputs to
// the personalization ranker.
type UserTagStat struct {
	TagID          string    `json:"tag_id"`
	TagName        string    `json:"tag_name"`
	UseCount       int       `json:"use_count"`
	LastUsedAt     time.Time `json:"last_used_at"`
	GlobalUseCount int       `json:"global_use_count"`
	Embedding      []float64 `json:"embedding,omitempty"`
}
