package facility

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"

	"github.com/dubai-health/concierge/internal/shared/cache"
	"github.com/dubai-health/concierge/internal/shared/config"
	"github.com/dubai-health/concierge/internal/shared/metrics"
)

const sheetCacheKey = "sheets:procedure-rows"

// tierRank orders spreadsheet rows by service tier. Unknown tiers
// rank alongside basic so they never displace known tiers.
func tierRank(tier string) int {
	switch strings.ToLower(strings.TrimSpace(tier)) {
	case "premium":
		return 0
	case "standard":
		return 1
	default:
		return 2
	}
}

// SheetSource reads the clinic procedure listing from a Google
// spreadsheet. The first row is treated as a header; header names are
// lowercased and stripped of whitespace before rows are keyed by them.
type SheetSource struct {
	svc      *sheets.Service
	sheetID  string
	readRng  string
	cache    cache.Cache
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewSheetSource builds a SheetSource authenticated with a service
// account. Returns an error when credentials are invalid; callers
// treat an absent source as "spreadsheet disabled".
func NewSheetSource(ctx context.Context, cfg config.SheetsConfig, c cache.Cache, ttl time.Duration, logger *zap.Logger) (*SheetSource, error) {
	conf := &jwt.Config{
		Email:      cfg.ClientEmail,
		PrivateKey: []byte(cfg.PrivateKey),
		Scopes:     []string{sheets.SpreadsheetsReadonlyScope},
		TokenURL:   google.JWTTokenURL,
	}

	svc, err := sheets.NewService(ctx, option.WithTokenSource(conf.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	readRng := cfg.Range
	if readRng == "" {
		readRng = "Sheet1"
	}

	return &SheetSource{
		svc:      svc,
		sheetID:  cfg.SheetID,
		readRng:  readRng,
		cache:    c,
		cacheTTL: ttl,
		logger:   logger,
	}, nil
}

// Rows returns the sheet contents as header-keyed records, served
// from cache within the TTL window.
func (s *SheetSource) Rows(ctx context.Context) ([]map[string]string, error) {
	if raw, ok := s.cache.Get(ctx, sheetCacheKey); ok {
		metrics.RecordCacheLookup("sheets", true)
		var rows []map[string]string
		if err := json.Unmarshal([]byte(raw), &rows); err == nil {
			return rows, nil
		}
	}
	metrics.RecordCacheLookup("sheets", false)

	resp, err := s.svc.Spreadsheets.Values.Get(s.sheetID, s.readRng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("fetch sheet values: %w", err)
	}
	if len(resp.Values) == 0 {
		return nil, nil
	}

	headers := make([]string, len(resp.Values[0]))
	for i, h := range resp.Values[0] {
		headers[i] = strings.ReplaceAll(strings.ToLower(fmt.Sprint(h)), " ", "")
	}

	rows := make([]map[string]string, 0, len(resp.Values)-1)
	for _, raw := range resp.Values[1:] {
		row := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(raw) {
				row[header] = fmt.Sprint(raw[i])
			} else {
				row[header] = ""
			}
		}
		rows = append(rows, row)
	}

	if encoded, err := json.Marshal(rows); err == nil {
		s.cache.Set(ctx, sheetCacheKey, string(encoded), s.cacheTTL)
	}

	s.logger.Debug("fetched sheet rows", zap.Int("count", len(rows)))
	return rows, nil
}

// Procedures converts sheet rows into Procedure records, optionally
// filtered by a case-insensitive specialty substring match, sorted by
// service tier and capped.
func (s *SheetSource) Procedures(ctx context.Context, specialty string, limit int) ([]Procedure, error) {
	rows, err := s.Rows(ctx)
	if err != nil {
		return nil, err
	}
	return proceduresFromRows(rows, specialty, limit), nil
}

func proceduresFromRows(rows []map[string]string, specialty string, limit int) []Procedure {
	specialty = strings.ToLower(strings.TrimSpace(specialty))

	matched := make([]Procedure, 0, len(rows))
	ranks := make([]int, 0, len(rows))
	for _, row := range rows {
		p := Procedure{
			ClinicName: row["clinicname"],
			Service:    row["service"],
			CashPrice:  row["cashprice"],
			Address:    row["address"],
			Phone:      row["phone"],
			Source:     row["source"],
		}
		if p.ClinicName == "" && p.Service == "" {
			continue
		}
		if specialty != "" {
			haystack := strings.ToLower(p.Service + " " + p.ClinicName)
			if !strings.Contains(haystack, specialty) {
				continue
			}
		}
		matched = append(matched, p)
		ranks = append(ranks, tierRank(row["tier"]))
	}

	// Stable insertion sort by tier rank; sheet order breaks ties.
	for i := 1; i < len(matched); i++ {
		for j := i; j > 0 && ranks[j-1] > ranks[j]; j-- {
			ranks[j-1], ranks[j] = ranks[j], ranks[j-1]
			matched[j-1], matched[j] = matched[j], matched[j-1]
		}
	}

	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched
}
