package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jgold-code/shelfaware/internal/core/domain"
	"github.com/jgold-code/shelfaware/internal/core/ports/driven"
	"github.com/jgold-code/shelfaware/internal/core/ports/driving"
	"github.com/jgold-code/shelfaware/internal/logger"
)

// Ensure RecommendationService implements the interface.
var _ driving.RecommendationService = (*RecommendationService)(nil)

// DefaultBatchSize is the number of recommendations requested per call.
const DefaultBatchSize = 10

// recommendTemperature favours diversity over determinism so that
// repeated calls with the same preferences return fresh books.
const recommendTemperature = 0.8

// systemPrompt is the fixed instruction contract for the completion
// endpoint. The response must be a bare JSON array; fenced output is
// tolerated and stripped before parsing.
const systemPrompt = `You are a knowledgeable book recommender. When given user preferences, recommend exactly %d books that match their interests. For each book, provide detailed information. Format your response as a JSON array with objects containing these fields: "title" (string), "authors" (array of strings), "description" (2-3 sentence summary), "reason" (why you recommend it for their preferences), "publishedDate" (year as string), "pageCount" (approximate number), "categories" (array with 1-2 genre strings), "averageRating" (number 0-5). Only respond with the JSON array, no additional text.`

// RecommendationService turns free-text preferences into normalised,
// cover-enriched book records.
type RecommendationService struct {
	completion driven.CompletionService
	covers     driving.CoverResolver
	batchSize  int

	// now is injectable for deterministic IDs in tests.
	now func() time.Time
}

// NewRecommendationService creates a recommendation service.
func NewRecommendationService(completion driven.CompletionService, covers driving.CoverResolver) *RecommendationService {
	return &RecommendationService{
		completion: completion,
		covers:     covers,
		batchSize:  DefaultBatchSize,
		now:        time.Now,
	}
}

// SetBatchSize overrides the number of books requested per call.
func (s *RecommendationService) SetBatchSize(n int) {
	if n > 0 {
		s.batchSize = n
	}
}

// rawRecommendation mirrors one element of the completion output before
// normalisation. Authors and categories accept both singular and array
// shapes; the model does not always honour the array contract.
type rawRecommendation struct {
	Title         string           `json:"title"`
	Authors       json.RawMessage  `json:"authors"`
	Author        string           `json:"author"`
	Description   string           `json:"description"`
	Reason        string           `json:"reason"`
	PublishedDate string           `json:"publishedDate"`
	PageCount     int              `json:"pageCount"`
	Categories    json.RawMessage  `json:"categories"`
	AverageRating *json.RawMessage `json:"averageRating"`
}

// Recommend issues one completion request and returns the enriched
// batch. See driving.RecommendationService for the error taxonomy.
func (s *RecommendationService) Recommend(ctx context.Context, preferences string) ([]domain.BookRecord, error) {
	if !s.completion.Configured() {
		return nil, domain.ErrNotConfigured
	}

	batchID := uuid.NewString()
	logger.Section("Recommendation Acquisition")
	logger.Debug("batch %s: model=%s preferences=%q", batchID, s.completion.ModelName(), preferences)

	messages := []driven.ChatMessage{
		{Role: "system", Content: fmt.Sprintf(systemPrompt, s.batchSize)},
		{Role: "user", Content: "Based on these preferences, recommend books: " + preferences},
	}

	content, err := s.completion.Chat(ctx, messages, driven.ChatOptions{
		Temperature: recommendTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}

	raws, err := parseRecommendations(content)
	if err != nil {
		return nil, err
	}
	if len(raws) == 0 {
		return nil, domain.ErrNoRecommendations
	}
	logger.Debug("batch %s: parsed %d recommendations", batchID, len(raws))

	// One shared timestamp per batch keeps IDs unique within the batch
	// and very likely unique across batches.
	stamp := s.now().UnixMilli()
	books := make([]domain.BookRecord, len(raws))
	queries := make([]domain.CoverQuery, len(raws))
	for i, raw := range raws {
		books[i] = normalise(raw, i, stamp)
		queries[i] = domain.CoverQuery{Title: books[i].Title, Author: books[i].PrimaryAuthor()}
	}

	// Covers are assigned by positional index; a failed lookup yields a
	// placeholder and never aborts the batch.
	urls := s.covers.ResolveMany(ctx, queries)
	for i := range books {
		books[i].ImageURL = urls[i]
	}

	logger.Debug("batch %s: %d books ready", batchID, len(books))
	return books, nil
}

// parseRecommendations strips any markdown fencing and decodes the
// completion output as a JSON array.
func parseRecommendations(content string) ([]rawRecommendation, error) {
	content = stripFences(content)

	var raws []rawRecommendation
	if err := json.Unmarshal([]byte(content), &raws); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	return raws, nil
}

// stripFences removes a markdown code fence wrapping, with or without a
// language tag. Model output is not guaranteed to be bare JSON.
func stripFences(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}

	content = strings.TrimPrefix(content, "```")
	if nl := strings.IndexByte(content, '\n'); nl >= 0 {
		// Drop the language tag line ("json", "JSON", or empty).
		tag := strings.TrimSpace(content[:nl])
		if tag == "" || strings.EqualFold(tag, "json") {
			content = content[nl+1:]
		}
	}
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	return strings.TrimSpace(content)
}

// normalise converts one raw element into a fully-defaulted BookRecord.
// ImageURL is filled later by cover resolution.
func normalise(raw rawRecommendation, index int, stamp int64) domain.BookRecord {
	book := domain.BookRecord{
		ID:            fmt.Sprintf("book-%d-%d", index, stamp),
		Title:         raw.Title,
		Authors:       stringList(raw.Authors, raw.Author),
		Description:   raw.Description,
		PublishedDate: raw.PublishedDate,
		Categories:    stringListOptional(raw.Categories),
		Reason:        raw.Reason,
	}

	if book.Title == "" {
		book.Title = domain.UnknownTitle
	}
	if book.Description == "" {
		book.Description = domain.DefaultDescription
	}
	if book.Reason == "" {
		book.Reason = domain.DefaultReason
	}
	if raw.PageCount > 0 {
		book.PageCount = raw.PageCount
	}
	if r, ok := ratingValue(raw.AverageRating); ok {
		book.AverageRating = r
	}
	return book
}

// stringList decodes an authors value that may be an array, a bare
// string, or absent. The result is never empty.
func stringList(raw json.RawMessage, singular string) []string {
	if list := decodeStringList(raw); len(list) > 0 {
		return list
	}
	if singular != "" {
		return []string{singular}
	}
	return []string{domain.UnknownAuthor}
}

// stringListOptional is like stringList but returns nil when absent.
func stringListOptional(raw json.RawMessage) []string {
	return decodeStringList(raw)
}

// decodeStringList accepts both `["a","b"]` and `"a"` shapes.
func decodeStringList(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		out := list[:0]
		for _, s := range list {
			if s != "" {
				out = append(out, s)
			}
		}
		return out
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil && single != "" {
		return []string{single}
	}
	return nil
}

// ratingValue decodes an averageRating that may be a number or a
// numeric string, clamped to [0,5]. Absent or unparseable values are
// dropped.
func ratingValue(raw *json.RawMessage) (float64, bool) {
	if raw == nil || len(*raw) == 0 {
		return 0, false
	}

	var f float64
	if err := json.Unmarshal(*raw, &f); err != nil {
		var s string
		if err := json.Unmarshal(*raw, &s); err != nil {
			return 0, false
		}
		if _, err := fmt.Sscanf(s, "%f", &f); err != nil {
			return 0, false
		}
	}

	if f < 0 {
		f = 0
	}
	if f > 5 {
		f = 5
	}
	return f, true
}
