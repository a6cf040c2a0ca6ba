package models

import "time"

// CacheType classifies a summary-cache entry by its source kind.
type CacheType string

const (
	CacheWebpage CacheType = "webpage"
	CacheYouTube CacheType = "youtube"
	CachePDF     CacheType = "pdf"
)

// Valid reports whether t is a known cache type.
func (t CacheType) Valid() bool {
	switch t {
	case CacheWebpage, CacheYouTube, CachePDF:
		return true
	}
	return false
}

// CacheEntry is one stored summarization result. Entries are shared across
// users; the personalized fields of SummarizeResult are never stored here.
type CacheEntry struct {
	EntryID             string    `json:"entry_id"`
	CacheKey            string    `json:"cache_key"`
	CacheType           CacheType `json:"cache_type"`
	ContentHash         string    `json:"content_hash"`
	ExtractedText       string    `json:"extracted_text"`
	Summary             string    `json:"summary"`
	CandidateTags       []string  `json:"candidate_tags"`
	CandidateCategories []string  `json:"candidate_categories"`
	WTUCost             int       `json:"wtu_cost"`
	ExpiresAt           time.Time `json:"expires_at"`
	CreatedAt           time.Time `json:"created_at"`
}

// SummarizeResult is the summarization pipeline's output. CandidateTags and
// CandidateCategories preserve LLM order; Tags and Category are personalized
// per user on every call, cached or not.
type SummarizeResult struct {
	ContentHash         string   `json:"content_hash"`
	ExtractedText       string   `json:"extracted_text"`
	Summary             string   `json:"summary"`
	Tags                []string `json:"tags"`
	Category            string   `json:"category"`
	CandidateTags       []string `json:"candidate_tags"`
	CandidateCategories []string `json:"candidate_categories"`
	WTUCost             int      `json:"wtu_cost"`
	Cached              bool     `json:"cached"`
}
