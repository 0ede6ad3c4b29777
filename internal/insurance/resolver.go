package insurance

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dubai-health/concierge/internal/llm"
	"github.com/dubai-health/concierge/internal/shared/cache"
	"github.com/dubai-health/concierge/internal/shared/metrics"
)

const maxSearchResults = 3

const searchPrompt = `You are a healthcare insurance research assistant. Search the web for current health insurance plans available in Dubai, UAE that cover the specified medical benefits.

Focus on finding:
1. **Insurance plan names** and providers
2. **Premium costs** in AED (UAE Dirhams)
3. **Coverage details** for the requested medical benefits
4. **Major insurance providers** in UAE (like DHA, SEHA, Oman Insurance, AXA, etc.)
5. **Specific coverage** for medical specialties and procedures

Return your findings as a JSON array with this exact structure:
[
  {
    "planName": "Plan Name",
    "provider": "Insurance Provider",
    "premium": "Annual Premium in AED (number only)",
    "benefits": ["benefit1", "benefit2", "benefit3"]
  }
]

Only include real UAE health insurance plans with actual coverage information. Focus on plans that cover the requested benefits. If you cannot find specific plans, return an empty array [].`

// Resolver answers insurance plan lookups. It never fails and never
// returns an empty list: the fixed catalog is the terminal fallback.
type Resolver struct {
	completer llm.Completer
	cache     cache.Cache
	searchTTL time.Duration
	logger    *zap.Logger
}

// NewResolver creates an insurance resolver.
func NewResolver(completer llm.Completer, c cache.Cache, searchTTL time.Duration, logger *zap.Logger) *Resolver {
	return &Resolver{
		completer: completer,
		cache:     c,
		searchTTL: searchTTL,
		logger:    logger,
	}
}

// Resolve returns plans covering the requested benefit keywords. An
// empty keyword list short-circuits to the full catalog. Otherwise
// the model-backed search runs first; zero valid results degrade to
// the keyword-filtered catalog, then to the full catalog.
func (r *Resolver) Resolve(ctx context.Context, keywords []string, isEmergency bool) []Plan {
	if len(keywords) == 0 {
		metrics.RecordResolverFallback("insurance", "catalog")
		return FallbackCatalog()
	}

	search := keywords
	if isEmergency {
		search = append(append([]string{}, keywords...), "emergency-services", "urgent-care")
	}

	if plans := r.searchPlans(ctx, search); len(plans) > 0 {
		metrics.RecordResolverFallback("insurance", "model")
		return plans
	}

	if filtered := filterCatalog(keywords); len(filtered) > 0 {
		metrics.RecordResolverFallback("insurance", "filtered")
		return filtered
	}

	metrics.RecordResolverFallback("insurance", "catalog")
	return FallbackCatalog()
}

func (r *Resolver) searchPlans(ctx context.Context, keywords []string) []Plan {
	key := cache.Key("insurance", strings.Join(keywords, "-"))
	if raw, ok := r.cache.Get(ctx, key); ok {
		metrics.RecordCacheLookup("insurance", true)
		var cached []Plan
		if err := json.Unmarshal([]byte(raw), &cached); err == nil && len(cached) > 0 {
			return cached
		}
	}
	metrics.RecordCacheLookup("insurance", false)

	raw, err := r.completer.Complete(ctx, "insurance_search", llm.Request{
		System:      searchPrompt,
		User:        "Search the web for current health insurance plans in Dubai, UAE that cover these medical benefits: " + strings.Join(keywords, ", ") + "\n\nFind insurance plans with coverage for these specific medical services, including premium costs and provider information. Return as JSON array.",
		JSONMode:    true,
		Temperature: 0.3,
		MaxTokens:   1500,
	})
	if err != nil {
		r.logger.Warn("insurance search failed",
			zap.Strings("keywords", keywords),
			zap.Error(err))
		return nil
	}

	plans := parsePlanList(raw)
	valid := make([]Plan, 0, len(plans))
	for _, p := range plans {
		if p.PlanName == "" || p.Provider == "" || len(p.Benefits) == 0 {
			continue
		}
		valid = append(valid, p)
		if len(valid) == maxSearchResults {
			break
		}
	}

	if len(valid) > 0 {
		if encoded, err := json.Marshal(valid); err == nil {
			r.cache.Set(ctx, key, string(encoded), r.searchTTL)
		}
	}
	return valid
}

// filterCatalog keeps plans whose benefits cover every keyword, using
// a case-insensitive substring match with hyphens treated as spaces.
func filterCatalog(keywords []string) []Plan {
	matched := make([]Plan, 0, len(fallbackCatalog))
	for _, plan := range fallbackCatalog {
		haystack := normalize(strings.Join(plan.Benefits, " "))
		covered := true
		for _, kw := range keywords {
			if !strings.Contains(haystack, normalize(kw)) {
				covered = false
				break
			}
		}
		if covered {
			matched = append(matched, plan)
		}
	}
	return matched
}

func normalize(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), "-", " ")
}

// rawPlan tolerates premiums returned as strings like "4,200 AED".
type rawPlan struct {
	PlanName string          `json:"planName"`
	Provider string          `json:"provider"`
	Premium  json.RawMessage `json:"premium"`
	Benefits []string        `json:"benefits"`
}

func (rp rawPlan) toPlan() Plan {
	return Plan{
		PlanName: rp.PlanName,
		Provider: rp.Provider,
		Premium:  parsePremium(rp.Premium),
		Benefits: rp.Benefits,
	}
}

func parsePremium(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0
	}
	digits := strings.Builder{}
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	n, _ = strconv.ParseFloat(digits.String(), 64)
	return n
}

func parsePlanList(raw string) []Plan {
	toPlans := func(rps []rawPlan) []Plan {
		plans := make([]Plan, 0, len(rps))
		for _, rp := range rps {
			plans = append(plans, rp.toPlan())
		}
		return plans
	}

	var direct []rawPlan
	if err := json.Unmarshal([]byte(raw), &direct); err == nil {
		return toPlans(direct)
	}

	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &wrapped); err != nil {
		if salvaged, ok := llm.ExtractJSON(raw); ok && salvaged != raw {
			return parsePlanList(salvaged)
		}
		return nil
	}
	for _, key := range []string{"results", "plans", "insurance"} {
		if inner, ok := wrapped[key]; ok {
			var list []rawPlan
			if err := json.Unmarshal(inner, &list); err == nil {
				return toPlans(list)
			}
		}
	}
	return nil
}
