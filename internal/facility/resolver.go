package facility

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/dubai-health/concierge/internal/intent"
	"github.com/dubai-health/concierge/internal/llm"
	"github.com/dubai-health/concierge/internal/shared/cache"
	"github.com/dubai-health/concierge/internal/shared/metrics"
)

const (
	emergencyCacheKey = "facility:emergency-dubai"
	spreadsheetCap    = 3
	searchTimeout     = 15 * time.Second
)

const pricingSearchPrompt = `You are a healthcare pricing research assistant. Search the web for current pricing information for medical procedures and consultations in Dubai, UAE.

Focus on finding:
1. **Consultation fees** for relevant medical specialties
2. **Procedure costs** if applicable
3. **Hospital/clinic names** in Dubai
4. **Contact information** (phone numbers, addresses)
5. **Price ranges** in AED (UAE Dirhams)

Return your findings as a JSON array with this exact structure:
[
  {
    "clinicname": "Clinic Name",
    "service": "Service Description",
    "cashprice": "Price Range in AED",
    "address": "Dubai Address",
    "phone": "Phone Number",
    "source": "Web research pricing"
  }
]

Only include real Dubai healthcare facilities with actual pricing information. If you cannot find specific pricing, return an empty array [].`

const emergencySearchPrompt = `You are a healthcare facility research assistant. Search the web for current emergency medical facilities in Dubai, UAE.

Focus on finding:
1. **Hospital emergency departments** in Dubai
2. **24/7 emergency services**
3. **Contact information** (phone numbers, addresses)
4. **Major hospitals** with emergency care

Return your findings as a JSON array with this exact structure:
[
  {
    "name": "Hospital/Facility Name",
    "address": "Dubai Address",
    "phone": "Phone Number"
  }
]

Only include real Dubai emergency medical facilities with 24/7 emergency services. Focus on major hospitals and emergency centers.`

// sheetLister is the slice of SheetSource the resolver needs. A nil
// lister means the spreadsheet source is not configured.
type sheetLister interface {
	Procedures(ctx context.Context, specialty string, limit int) ([]Procedure, error)
}

// Resolver answers facility and pricing lookups through layered
// fallbacks. Every Resolve method returns a non-empty result and
// never an error: upstream failures degrade to the next tier.
type Resolver struct {
	completer llm.Completer
	sheet     sheetLister
	cache     cache.Cache
	searchTTL time.Duration
	logger    *zap.Logger
}

// NewResolver creates a facility resolver. sheet may be nil when
// spreadsheet credentials are not configured.
func NewResolver(completer llm.Completer, sheet *SheetSource, c cache.Cache, searchTTL time.Duration, logger *zap.Logger) *Resolver {
	r := &Resolver{
		completer: completer,
		cache:     c,
		searchTTL: searchTTL,
		logger:    logger,
	}
	if sheet != nil {
		r.sheet = sheet
	}
	return r
}

// ResolveEmergency returns emergency facilities: cached model search
// results first, then a live model search, then the static table.
func (r *Resolver) ResolveEmergency(ctx context.Context) []EmergencyFacility {
	if raw, ok := r.cache.Get(ctx, emergencyCacheKey); ok {
		metrics.RecordCacheLookup("facility_emergency", true)
		var cached []EmergencyFacility
		if err := json.Unmarshal([]byte(raw), &cached); err == nil && len(cached) > 0 {
			return cached
		}
	}
	metrics.RecordCacheLookup("facility_emergency", false)

	if found := r.searchEmergency(ctx); len(found) > 0 {
		if encoded, err := json.Marshal(found); err == nil {
			r.cache.Set(ctx, emergencyCacheKey, string(encoded), r.searchTTL)
		}
		metrics.RecordResolverFallback("facility_emergency", "model")
		return found
	}

	metrics.RecordResolverFallback("facility_emergency", "static")
	return staticEmergencyFacilities
}

func (r *Resolver) searchEmergency(ctx context.Context) []EmergencyFacility {
	ctx, cancel := context.WithTimeout(ctx, searchTimeout)
	defer cancel()

	raw, err := r.completer.Complete(ctx, "emergency_facility_search", llm.Request{
		System:      emergencySearchPrompt,
		User:        "Search the web for current emergency medical facilities in Dubai, UAE.\n\nFind major hospitals with emergency departments, 24/7 emergency services, and their contact information. Return as JSON array.",
		JSONMode:    true,
		Temperature: 0.3,
		MaxTokens:   1000,
	})
	if err != nil {
		r.logger.Warn("emergency facility search failed", zap.Error(err))
		return nil
	}

	facilities := parseFacilityList(raw)
	valid := facilities[:0]
	for _, f := range facilities {
		if f.Name != "" {
			valid = append(valid, f)
		}
	}
	return valid
}

// ResolveRegular returns non-emergency facilities for the classified
// query: spreadsheet rows filtered by specialty first, then the
// keyword table, then the generic defaults.
func (r *Resolver) ResolveRegular(ctx context.Context, rec intent.Record, query string) []EmergencyFacility {
	if r.sheet != nil {
		procedures, err := r.sheet.Procedures(ctx, rec.MedicalSpecialty, spreadsheetCap)
		if err != nil {
			r.logger.Warn("spreadsheet facility lookup failed", zap.Error(err))
		} else if len(procedures) > 0 {
			metrics.RecordResolverFallback("facility_regular", "spreadsheet")
			facilities := make([]EmergencyFacility, 0, len(procedures))
			for _, p := range procedures {
				facilities = append(facilities, EmergencyFacility{
					Name:    p.ClinicName,
					Address: p.Address,
					Phone:   p.Phone,
				})
			}
			return facilities
		}
	}

	metrics.RecordResolverFallback("facility_regular", "static")
	return ContextualFacilities(query, false)
}

// ResolvePricing returns priced procedures for the service query. The
// model-backed search is raced against a fixed timeout; on failure or
// empty results the contextual tables plus pharmacy recommendations
// serve instead.
func (r *Resolver) ResolvePricing(ctx context.Context, serviceQuery, query string) []Procedure {
	if serviceQuery != "" {
		if found := r.searchPricing(ctx, serviceQuery); len(found) > 0 {
			metrics.RecordResolverFallback("pricing", "model")
			return found
		}
	}

	metrics.RecordResolverFallback("pricing", "static")
	results := ContextualPricing(query)
	return append(results, PharmacyRecommendations(query)...)
}

func (r *Resolver) searchPricing(ctx context.Context, serviceQuery string) []Procedure {
	key := cache.Key("pricing", serviceQuery)
	if raw, ok := r.cache.Get(ctx, key); ok {
		metrics.RecordCacheLookup("pricing", true)
		var cached []Procedure
		if err := json.Unmarshal([]byte(raw), &cached); err == nil && len(cached) > 0 {
			return cached
		}
	}
	metrics.RecordCacheLookup("pricing", false)

	ctx, cancel := context.WithTimeout(ctx, searchTimeout)
	defer cancel()

	raw, err := r.completer.Complete(ctx, "pricing_search", llm.Request{
		System:      pricingSearchPrompt,
		User:        "Search the web for current pricing information in Dubai for: " + serviceQuery + "\n\nFind consultation fees, procedure costs, and facility information for relevant medical specialties in Dubai, UAE. Return as JSON array.",
		JSONMode:    true,
		Temperature: 0.3,
		MaxTokens:   1500,
	})
	if err != nil {
		r.logger.Warn("pricing search failed",
			zap.String("service_query", serviceQuery),
			zap.Error(err))
		return nil
	}

	procedures := parseProcedureList(raw)
	valid := procedures[:0]
	for _, p := range procedures {
		if p.ClinicName != "" && p.Service != "" {
			valid = append(valid, p)
		}
	}

	if len(valid) > 0 {
		if encoded, err := json.Marshal(valid); err == nil {
			r.cache.Set(ctx, key, string(encoded), r.searchTTL)
		}
	}
	return valid
}

// ProcedureListing serves the procedures endpoint when the
// spreadsheet is unavailable or empty: a general model-backed search
// first, then the fixed hospital listing.
func (r *Resolver) ProcedureListing(ctx context.Context) []Procedure {
	if found := r.searchPricing(ctx, "general health checkup"); len(found) > 0 {
		return found
	}
	return defaultProcedureListing
}

// Model replies are requested as JSON arrays but JSON mode forces an
// object wrapper, so both shapes occur in practice.

func parseProcedureList(raw string) []Procedure {
	var direct []Procedure
	if err := json.Unmarshal([]byte(raw), &direct); err == nil {
		return direct
	}

	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &wrapped); err != nil {
		if salvaged, ok := llm.ExtractJSON(raw); ok && salvaged != raw {
			return parseProcedureList(salvaged)
		}
		return nil
	}
	for _, key := range []string{"results", "pricing", "procedures", "data"} {
		if inner, ok := wrapped[key]; ok {
			var list []Procedure
			if err := json.Unmarshal(inner, &list); err == nil {
				return list
			}
		}
	}
	return nil
}

func parseFacilityList(raw string) []EmergencyFacility {
	var direct []EmergencyFacility
	if err := json.Unmarshal([]byte(raw), &direct); err == nil {
		return direct
	}

	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &wrapped); err != nil {
		if salvaged, ok := llm.ExtractJSON(raw); ok && salvaged != raw {
			return parseFacilityList(salvaged)
		}
		return nil
	}
	for _, key := range []string{"results", "facilities", "data"} {
		if inner, ok := wrapped[key]; ok {
			var list []EmergencyFacility
			if err := json.Unmarshal(inner, &list); err == nil {
				return list
			}
		}
	}
	return nil
}
