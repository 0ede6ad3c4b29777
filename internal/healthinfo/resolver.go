package healthinfo

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/dubai-health/concierge/internal/llm"
	"github.com/dubai-health/concierge/internal/shared/cache"
	"github.com/dubai-health/concierge/internal/shared/metrics"
)

// Model replies shorter than this are treated as refusals or filler
// and skipped in favor of the offline database.
const minUsefulLength = 100

const researchPrompt = `You are a medical research assistant. Search the web for comprehensive, accurate medical information about the user's health query. Focus on:

1. **Medical Definition & Overview**: Clear explanation of the condition/symptom
2. **Symptoms & Signs**: Detailed symptom descriptions and what to watch for
3. **Causes & Risk Factors**: Common and serious causes, who is most affected
4. **Treatment Options**: Available treatments, medications, therapies
5. **When to Seek Care**: Emergency signs, when to see a doctor
6. **Prevention & Management**: Self-care measures, lifestyle changes
7. **Prognosis & Complications**: What to expect, potential complications

Provide authoritative medical information from reputable sources like Mayo Clinic, WebMD, Healthline, medical journals, and health organizations. Include specific details and actionable advice.

Format your response as: "Medical Source (Web Research): [comprehensive medical information]"

Be thorough and include all relevant medical details for the condition or symptom.`

// Resolver produces background medical context for a query. The
// offline database guarantees a non-empty answer when the model is
// unavailable.
type Resolver struct {
	completer   llm.Completer
	cache       cache.Cache
	searchTTL   time.Duration
	fallbackTTL time.Duration
	logger      *zap.Logger
}

// NewResolver creates a health information resolver.
func NewResolver(completer llm.Completer, c cache.Cache, searchTTL, fallbackTTL time.Duration, logger *zap.Logger) *Resolver {
	return &Resolver{
		completer:   completer,
		cache:       c,
		searchTTL:   searchTTL,
		fallbackTTL: fallbackTTL,
		logger:      logger,
	}
}

// Resolve returns medical background information for the query.
// Never returns empty text.
func (r *Resolver) Resolve(ctx context.Context, query string) string {
	key := cache.Key("health-info", query)
	if cached, ok := r.cache.Get(ctx, key); ok && cached != "" {
		metrics.RecordCacheLookup("healthinfo", true)
		return cached
	}
	metrics.RecordCacheLookup("healthinfo", false)

	reply, err := r.completer.Complete(ctx, "health_research", llm.Request{
		System:      researchPrompt,
		User:        "Search the web for comprehensive medical information about: " + query + "\n\nPlease provide detailed medical information including symptoms, causes, treatments, when to seek care, and management strategies.",
		Temperature: 0.3,
		MaxTokens:   2000,
	})
	if err == nil && len(reply) > minUsefulLength {
		metrics.RecordResolverFallback("healthinfo", "model")
		r.cache.Set(ctx, key, reply, r.searchTTL)
		return reply
	}
	if err != nil {
		r.logger.Warn("health info research failed",
			zap.String("query", query),
			zap.Error(err))
	}

	metrics.RecordResolverFallback("healthinfo", "offline")
	info := OfflineHealthInfo(query)
	r.cache.Set(ctx, key, info, r.fallbackTTL)
	return info
}
