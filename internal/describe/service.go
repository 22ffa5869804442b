package describe

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/angelmondragon/swiftmarket-backend/pkg/ai"
	"github.com/angelmondragon/swiftmarket-backend/pkg/logger"
)

const (
	FallbackFailed = "Failed to generate AI description."
	FallbackEmpty  = "No description generated."

	maxSuggestions = 5
)

// Outcome labels reported to the metrics recorder.
const (
	OutcomeGenerated = "generated"
	OutcomeCached    = "cached"
	OutcomeEmpty     = "empty"
	OutcomeFailed    = "failed"
)

type completer interface {
	Complete(ctx context.Context, req ai.Request) (string, error)
}

type cache interface {
	CachedDescription(ctx context.Context, name, category string) (string, bool, error)
	CacheDescription(ctx context.Context, name, category, text string, ttl time.Duration) error
}

type outcomeRecorder interface {
	DescribeOutcome(outcome string)
}

// Result is a product description. Generated is false when Text is a fallback string.
type Result struct {
	Text      string `json:"text"`
	Generated bool   `json:"generated"`
	Cached    bool   `json:"cached"`
}

// Options wires the description service.
type Options struct {
	Completer completer
	Cache     cache
	CacheTTL  time.Duration
	Metrics   outcomeRecorder
	Logger    *logger.Logger
}

// Service generates marketing copy and search suggestions. It never fails: every error
// degrades to a fallback.
type Service struct {
	completer completer
	cache     cache
	cacheTTL  time.Duration
	metrics   outcomeRecorder
	logg      *logger.Logger
}

// NewService builds a Service. A nil completer makes every call fall back.
func NewService(opts Options) (*Service, error) {
	if opts.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &Service{
		completer: opts.Completer,
		cache:     opts.Cache,
		cacheTTL:  opts.CacheTTL,
		metrics:   opts.Metrics,
		logg:      opts.Logger,
	}, nil
}

// DescriptionPrompt is the instruction sent for a product description.
func DescriptionPrompt(name, category string) string {
	return fmt.Sprintf("Write a compelling, professional 30-word marketing description for a product named %q in the %q category.", name, category)
}

// SuggestionPrompt is the instruction sent for related search terms.
func SuggestionPrompt(query string) string {
	return fmt.Sprintf("Based on the search query %q, provide 5 related product search terms for an e-commerce marketplace. Respond with a JSON array of strings only.", query)
}

// Describe returns marketing copy for a product.
func (s *Service) Describe(ctx context.Context, name, category string) Result {
	if s == nil {
		return Result{Text: FallbackFailed}
	}
	ctx = s.logg.WithFields(ctx, map[string]any{"product_name": name, "category": category})

	if s.cache != nil {
		text, found, err := s.cache.CachedDescription(ctx, name, category)
		switch {
		case err != nil:
			s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "describe.cache_lookup_failed")
		case found && text != "":
			s.record(OutcomeCached)
			return Result{Text: text, Generated: true, Cached: true}
		}
	}

	if s.completer == nil {
		s.record(OutcomeFailed)
		return Result{Text: FallbackFailed}
	}

	text, err := s.completer.Complete(ctx, ai.Request{
		Prompt:      DescriptionPrompt(name, category),
		Temperature: 0.7,
		TopP:        0.9,
		MaxTokens:   200,
	})
	if err != nil {
		s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "describe.fallback")
		s.record(OutcomeFailed)
		return Result{Text: FallbackFailed}
	}
	if text == "" {
		s.record(OutcomeEmpty)
		return Result{Text: FallbackEmpty}
	}

	if s.cache != nil {
		if err := s.cache.CacheDescription(ctx, name, category, text, s.cacheTTL); err != nil {
			s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "describe.cache_store_failed")
		}
	}
	s.record(OutcomeGenerated)
	return Result{Text: text, Generated: true}
}

// Suggest returns up to five search terms related to query. Any failure yields an empty slice.
func (s *Service) Suggest(ctx context.Context, query string) []string {
	query = strings.TrimSpace(query)
	if s == nil || query == "" || s.completer == nil {
		return []string{}
	}

	text, err := s.completer.Complete(ctx, ai.Request{Prompt: SuggestionPrompt(query), MaxTokens: 200})
	if err != nil {
		s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "suggest.failed")
		return []string{}
	}
	return parseSuggestions(text)
}

func parseSuggestions(text string) []string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	var raw []string
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &raw); err != nil {
		return []string{}
	}
	out := make([]string, 0, maxSuggestions)
	for _, term := range raw {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		out = append(out, term)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}

func (s *Service) record(outcome string) {
	if s.metrics != nil {
		s.metrics.DescribeOutcome(outcome)
	}
}
