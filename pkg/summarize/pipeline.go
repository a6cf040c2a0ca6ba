package summarize

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/clipdock/clipd/pkg/extract"
	"github.com/clipdock/clipd/pkg/llm"
	"github.com/clipdock/clipd/pkg/models"
	"github.com/clipdock/clipd/pkg/services"
)

// Request describes one summarization job. Exactly one source field is used
// depending on Type: URL for webpages, URL+Transcript for YouTube, PDFData
// for documents.
type Request struct {
	UserID     string
	Type       models.CacheType
	URL        string
	Transcript string
	PDFData    []byte

	// Refresh skips the cache lookup and regenerates the entry.
	Refresh bool
}

// TieredCaller is the LLM surface the pipeline needs.
type TieredCaller interface {
	Complete(ctx context.Context, tier models.Tier, req llm.CompletionRequest) (*models.LLMResult, models.ModelEntry, error)
}

// CacheStore is the persistence surface for summary entries.
type CacheStore interface {
	Lookup(ctx context.Context, cacheKey string, cacheType models.CacheType) (*models.CacheEntry, error)
	Store(ctx context.Context, entry models.CacheEntry) error
}

// Biller charges completed LLM calls against the user's quota.
type Biller interface {
	Charge(ctx context.Context, userID string, entry models.ModelEntry, inputTokens, outputTokens int) (int, error)
}

// Personalizer re-ranks cached candidates per user.
type Personalizer interface {
	RankTags(ctx context.Context, userID string, candidates []string, k int) ([]string, error)
	SelectCategory(ctx context.Context, userID string, candidates []string) (string, error)
	RecordUse(ctx context.Context, userID string, tags []string) error
}

// Pipeline runs the summarize flow: extract, cache lookup, generate on miss
// (summary, tags, categories), charge, store, personalize.
//
// Cache entries are shared across users and store unpersonalized candidates;
// a cache hit costs the user nothing.
type Pipeline struct {
	extractor *extract.Extractor
	caller    TieredCaller
	cache     CacheStore
	biller    Biller
	ranker    Personalizer
	cacheTTL  time.Duration
	tagCount  int
}

// NewPipeline creates a Pipeline.
func NewPipeline(extractor *extract.Extractor, caller TieredCaller, cache CacheStore, biller Biller, ranker Personalizer, cacheTTL time.Duration, tagCount int) *Pipeline {
	return &Pipeline{
		extractor: extractor,
		caller:    caller,
		cache:     cache,
		biller:    biller,
		ranker:    ranker,
		cacheTTL:  cacheTTL,
		tagCount:  tagCount,
	}
}

// Summarize executes one job end to end.
func (p *Pipeline) Summarize(ctx context.Context, req Request) (*models.SummarizeResult, error) {
	if req.UserID == "" {
		return nil, services.NewValidationError("user_id", "is required")
	}
	if !req.Type.Valid() {
		return nil, services.NewValidationError("content_type", fmt.Sprintf("unknown content type %q", req.Type))
	}

	cacheKey, err := p.cacheKey(req)
	if err != nil {
		return nil, err
	}

	var hit *models.CacheEntry
	if !req.Refresh {
		entry, err := p.cache.Lookup(ctx, cacheKey, req.Type)
		switch {
		case err == nil:
			hit = entry
		case !errors.Is(err, services.ErrNotFound):
			return nil, err
		}
	}

	text, err := p.extractText(ctx, req)
	if err != nil {
		return nil, err
	}

	// A key hit only counts when the source behind it is unchanged.
	if hit != nil && hit.ContentHash == ContentHash(text) {
		slog.Debug("Summary cache hit", "cache_type", req.Type, "cache_key", cacheKey[:12])
		return p.personalize(ctx, req.UserID, hit, true)
	}

	entry, err := p.generate(ctx, req, cacheKey, text)
	if err != nil {
		return nil, err
	}

	if err := p.cache.Store(ctx, *entry); err != nil {
		// The result is still valid; losing the cache entry only costs a
		// future regeneration.
		slog.Warn("Failed to store summary cache entry", "error", err)
	}

	return p.personalize(ctx, req.UserID, entry, false)
}

// ConfirmTags records the tags the user actually kept, feeding future
// personalization.
func (p *Pipeline) ConfirmTags(ctx context.Context, userID string, tags []string) error {
	if userID == "" {
		return services.NewValidationError("user_id", "is required")
	}
	if len(tags) == 0 {
		return services.NewValidationError("tags", "at least one tag is required")
	}
	return p.ranker.RecordUse(ctx, userID, tags)
}

func (p *Pipeline) cacheKey(req Request) (string, error) {
	switch req.Type {
	case models.CacheWebpage, models.CacheYouTube:
		if req.URL == "" {
			return "", services.NewValidationError("url", "is required")
		}
		return CacheKeyForURL(req.URL), nil
	case models.CachePDF:
		if len(req.PDFData) == 0 {
			return "", services.NewValidationError("pdf_data", "is required")
		}
		return CacheKeyForBytes(req.PDFData), nil
	}
	return "", services.NewValidationError("content_type", fmt.Sprintf("unknown content type %q", req.Type))
}

func (p *Pipeline) extractText(ctx context.Context, req Request) (string, error) {
	switch req.Type {
	case models.CacheWebpage:
		return p.extractor.Webpage(ctx, req.URL)
	case models.CacheYouTube:
		return p.extractor.YouTube(ctx, req.Transcript)
	default:
		return p.extractor.PDF(ctx, req.PDFData)
	}
}

// generate runs the three LLM calls of a cache miss. Each call is charged
// as soon as its token counts are known; a quota rejection aborts the
// remaining calls.
func (p *Pipeline) generate(ctx context.Context, req Request, cacheKey, text string) (*models.CacheEntry, error) {
	maxTokens := summaryMaxTokens
	if req.Type == models.CachePDF {
		maxTokens = summaryMaxTokensPDF
	}

	totalWTU := 0
	summary, wtu, err := p.call(ctx, req.UserID, models.TierLight, llm.CompletionRequest{
		Messages:    summaryRequest(text, req.Type),
		MaxTokens:   maxTokens,
		Temperature: llm.Temp(summaryTemperature),
	})
	if err != nil {
		return nil, err
	}
	totalWTU += wtu

	tagsRaw, wtu, err := p.call(ctx, req.UserID, models.TierLight, llm.CompletionRequest{
		Messages:    tagsRequest(summary),
		MaxTokens:   taggingMaxTokens,
		Temperature: llm.Temp(taggingTemperature),
	})
	if err != nil {
		return nil, err
	}
	totalWTU += wtu

	categoriesRaw, wtu, err := p.call(ctx, req.UserID, models.TierLight, llm.CompletionRequest{
		Messages:    categoriesRequest(summary),
		MaxTokens:   taggingMaxTokens,
		Temperature: llm.Temp(taggingTemperature),
	})
	if err != nil {
		return nil, err
	}
	totalWTU += wtu

	return &models.CacheEntry{
		CacheKey:            cacheKey,
		CacheType:           req.Type,
		ContentHash:         ContentHash(text),
		ExtractedText:       text,
		Summary:             summary,
		CandidateTags:       ParseStringArray(tagsRaw),
		CandidateCategories: ParseStringArray(categoriesRaw),
		WTUCost:             totalWTU,
		ExpiresAt:           time.Now().Add(p.cacheTTL),
	}, nil
}

func (p *Pipeline) call(ctx context.Context, userID string, tier models.Tier, req llm.CompletionRequest) (string, int, error) {
	result, entry, err := p.caller.Complete(ctx, tier, req)
	if err != nil {
		return "", 0, err
	}
	wtu, err := p.biller.Charge(ctx, userID, entry, result.InputTokens, result.OutputTokens)
	if err != nil {
		return "", 0, err
	}
	return result.Content, wtu, nil
}

// personalize applies the user-specific ranking to a cache entry's
// candidates. Ranking failures degrade to the unpersonalized order rather
// than failing the request.
func (p *Pipeline) personalize(ctx context.Context, userID string, entry *models.CacheEntry, cached bool) (*models.SummarizeResult, error) {
	tags, err := p.ranker.RankTags(ctx, userID, entry.CandidateTags, p.tagCount)
	if err != nil {
		slog.Warn("Tag personalization failed, using candidate order", "error", err)
		tags = headOf(entry.CandidateTags, p.tagCount)
	}
	category, err := p.ranker.SelectCategory(ctx, userID, entry.CandidateCategories)
	if err != nil {
		slog.Warn("Category selection failed, using first candidate", "error", err)
		category = ""
		if len(entry.CandidateCategories) > 0 {
			category = entry.CandidateCategories[0]
		}
	}

	return &models.SummarizeResult{
		ContentHash:         entry.ContentHash,
		ExtractedText:       entry.ExtractedText,
		Summary:             entry.Summary,
		Tags:                tags,
		Category:            category,
		CandidateTags:       entry.CandidateTags,
		CandidateCategories: entry.CandidateCategories,
		WTUCost:             entry.WTUCost,
		Cached:              cached,
	}, nil
}

func headOf(items []string, k int) []string {
	if k <= 0 || k >= len(items) {
		return items
	}
	return items[:k]
}
