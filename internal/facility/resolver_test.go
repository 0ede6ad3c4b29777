package facility

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/dubai-health/concierge/internal/intent"
	"github.com/dubai-health/concierge/internal/llm"
	"github.com/dubai-health/concierge/internal/shared/cache"
)

type stubCompleter struct {
	reply string
	err   error
	calls int
}

func (s *stubCompleter) Complete(_ context.Context, _ string, _ llm.Request) (string, error) {
	s.calls++
	return s.reply, s.err
}

type stubSheet struct {
	procedures []Procedure
	err        error
}

func (s *stubSheet) Procedures(_ context.Context, _ string, _ int) ([]Procedure, error) {
	return s.procedures, s.err
}

func newTestResolver(c llm.Completer, sheet sheetLister) *Resolver {
	return &Resolver{
		completer: c,
		sheet:     sheet,
		cache:     cache.NewMemory(),
		searchTTL: time.Hour,
		logger:    zap.NewNop(),
	}
}

func TestContextualFacilities(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		isEmergency bool
		wantFirst   string
	}{
		{"emergency trio", "deep cut on my leg", true, "Dubai Hospital Emergency Department"},
		{"dermatology keywords", "my skin is dry and flaky", false, "Dubai Dermatology Clinic"},
		{"cardiology keywords", "chest pain at night", false, "American Hospital Dubai - Cardiology"},
		{"neurology keywords", "recurring migraine attacks", false, "German Neuroscience Center"},
		{"iv therapy keywords", "where can I get an IV drip", false, "IV Therapy Dubai"},
		{"no match falls to defaults", "just feeling off lately", false, "Mediclinic City Hospital"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ContextualFacilities(tt.query, tt.isEmergency)
			if len(got) == 0 {
				t.Fatal("expected non-empty facility list")
			}
			if got[0].Name != tt.wantFirst {
				t.Errorf("first facility = %q, want %q", got[0].Name, tt.wantFirst)
			}
		})
	}
}

func TestContextualFacilitiesRuleOrder(t *testing.T) {
	// "stress" appears in both the mental-health and later rules; the
	// earlier declaration must win.
	got := ContextualFacilities("work stress is getting to me", false)
	if got[0].Name != "German Neuroscience Center" {
		t.Errorf("first facility = %q, want mental-health rule to win", got[0].Name)
	}
}

func TestContextualPricing(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantFirst string
	}{
		{"wound pricing", "a cut that keeps bleeding", "Dubai Hospital Emergency"},
		{"dental pricing", "tooth ache for days", "Dr. Michael's Dental Clinic"},
		{"headache pricing", "I have a severe headache", "German Neuroscience Center"},
		{"default pricing", "something vague", "Mediclinic City Hospital"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ContextualPricing(tt.query)
			if len(got) == 0 {
				t.Fatal("expected non-empty pricing list")
			}
			if got[0].ClinicName != tt.wantFirst {
				t.Errorf("first clinic = %q, want %q", got[0].ClinicName, tt.wantFirst)
			}
		})
	}
}

func TestPharmacyRecommendations(t *testing.T) {
	if got := PharmacyRecommendations("where is a good gym"); got != nil {
		t.Errorf("expected nil for non-medication query, got %d entries", len(got))
	}

	got := PharmacyRecommendations("I need pain medicine for a headache")
	if len(got) != 4 {
		t.Fatalf("expected base trio plus pain entry, got %d", len(got))
	}
	if got[3].ClinicName != "Dubai Pharmacy" {
		t.Errorf("appended entry = %q, want %q", got[3].ClinicName, "Dubai Pharmacy")
	}
}

func TestProceduresFromRowsTierSort(t *testing.T) {
	rows := []map[string]string{
		{"clinicname": "Basic Clinic", "service": "Dermatology Consultation", "tier": "basic"},
		{"clinicname": "No Tier Clinic", "service": "Dermatology Check"},
		{"clinicname": "Premium Clinic", "service": "Dermatology Assessment", "tier": "Premium"},
		{"clinicname": "Standard Clinic", "service": "Dermatology Visit", "tier": "standard"},
		{"clinicname": "Other Clinic", "service": "Cardiology Consultation", "tier": "premium"},
	}

	got := proceduresFromRows(rows, "dermatology", 3)
	if len(got) != 3 {
		t.Fatalf("expected cap of 3, got %d", len(got))
	}
	wantOrder := []string{"Premium Clinic", "Standard Clinic", "Basic Clinic"}
	for i, want := range wantOrder {
		if got[i].ClinicName != want {
			t.Errorf("position %d = %q, want %q", i, got[i].ClinicName, want)
		}
	}
}

func TestProceduresFromRowsUnknownTierSortsLast(t *testing.T) {
	rows := []map[string]string{
		{"clinicname": "Mystery Clinic", "service": "ENT Consultation", "tier": "platinum"},
		{"clinicname": "Standard Clinic", "service": "ENT Check", "tier": "standard"},
	}
	got := proceduresFromRows(rows, "ent", 0)
	if got[0].ClinicName != "Standard Clinic" {
		t.Errorf("unknown tier should rank after standard, got %q first", got[0].ClinicName)
	}
}

func TestResolveEmergencyFallsBackToStatic(t *testing.T) {
	r := newTestResolver(&stubCompleter{err: errors.New("upstream down")}, nil)

	got := r.ResolveEmergency(context.Background())
	if len(got) != len(staticEmergencyFacilities) {
		t.Fatalf("expected static table of %d, got %d", len(staticEmergencyFacilities), len(got))
	}
	if got[0].Name != "Dubai Hospital Emergency" {
		t.Errorf("first facility = %q", got[0].Name)
	}
}

func TestResolveEmergencyUsesModelAndCaches(t *testing.T) {
	stub := &stubCompleter{
		reply: `{"facilities": [{"name": "Rashid Hospital Trauma Center", "address": "Oud Metha, Dubai", "phone": "+971 4 219 2000"}]}`,
	}
	r := newTestResolver(stub, nil)
	ctx := context.Background()

	first := r.ResolveEmergency(ctx)
	if len(first) != 1 || first[0].Name != "Rashid Hospital Trauma Center" {
		t.Fatalf("unexpected model result: %+v", first)
	}

	second := r.ResolveEmergency(ctx)
	if stub.calls != 1 {
		t.Errorf("expected cached second lookup, model called %d times", stub.calls)
	}
	if len(second) != 1 || second[0].Name != first[0].Name {
		t.Errorf("cached result differs: %+v", second)
	}
}

func TestResolveRegularPrefersSpreadsheet(t *testing.T) {
	sheet := &stubSheet{procedures: []Procedure{
		{ClinicName: "Premium Derm Clinic", Address: "Healthcare City", Phone: "+971 4 111 1111"},
	}}
	r := newTestResolver(&stubCompleter{}, sheet)

	got := r.ResolveRegular(context.Background(), intent.Record{MedicalSpecialty: "dermatology"}, "dry skin")
	if len(got) != 1 || got[0].Name != "Premium Derm Clinic" {
		t.Fatalf("expected spreadsheet result, got %+v", got)
	}
}

func TestResolveRegularFallsBackOnSheetError(t *testing.T) {
	r := newTestResolver(&stubCompleter{}, &stubSheet{err: errors.New("sheet unavailable")})

	got := r.ResolveRegular(context.Background(), intent.Record{MedicalSpecialty: "dermatology"}, "dry flaky skin")
	if len(got) == 0 {
		t.Fatal("expected keyword-table fallback")
	}
	if got[0].Name != "Dubai Dermatology Clinic" {
		t.Errorf("first facility = %q, want keyword-table entry", got[0].Name)
	}
}

func TestResolveRegularWithoutSheet(t *testing.T) {
	r := newTestResolver(&stubCompleter{}, nil)
	got := r.ResolveRegular(context.Background(), intent.Record{}, "unclassifiable query")
	if len(got) != len(defaultFacilities) {
		t.Fatalf("expected default facilities, got %d", len(got))
	}
}

func TestResolvePricingModelSuccess(t *testing.T) {
	stub := &stubCompleter{
		reply: `{"results": [{"clinicname": "Model Clinic", "service": "MRI Scan", "cashprice": "1,800 AED", "address": "Dubai", "phone": "+971 4 000 0000", "source": "Web research pricing"}]}`,
	}
	r := newTestResolver(stub, nil)

	got := r.ResolvePricing(context.Background(), "MRI scan", "how much does an MRI cost")
	if len(got) != 1 || got[0].ClinicName != "Model Clinic" {
		t.Fatalf("expected model pricing, got %+v", got)
	}

	// Second call must hit the cache.
	r.ResolvePricing(context.Background(), "MRI scan", "how much does an MRI cost")
	if stub.calls != 1 {
		t.Errorf("expected cached second lookup, model called %d times", stub.calls)
	}
}

func TestResolvePricingFallsBackWithPharmacies(t *testing.T) {
	r := newTestResolver(&stubCompleter{err: errors.New("timeout")}, nil)

	got := r.ResolvePricing(context.Background(), "pain medication", "I need pain medicine")
	if len(got) == 0 {
		t.Fatal("expected contextual fallback pricing")
	}
	var hasPharmacy bool
	for _, p := range got {
		if strings.Contains(p.ClinicName, "Pharmacy") {
			hasPharmacy = true
			break
		}
	}
	if !hasPharmacy {
		t.Error("expected pharmacy recommendations appended to fallback pricing")
	}
}

func TestResolvePricingEmptyServiceQuery(t *testing.T) {
	stub := &stubCompleter{}
	r := newTestResolver(stub, nil)

	got := r.ResolvePricing(context.Background(), "", "general question")
	if stub.calls != 0 {
		t.Errorf("model should not be called without a service query, got %d calls", stub.calls)
	}
	if len(got) == 0 {
		t.Fatal("expected default pricing")
	}
}

func TestParseProcedureListShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"direct array", `[{"clinicname": "A", "service": "B"}]`, 1},
		{"results wrapper", `{"results": [{"clinicname": "A", "service": "B"}]}`, 1},
		{"pricing wrapper", `{"pricing": [{"clinicname": "A", "service": "B"}, {"clinicname": "C", "service": "D"}]}`, 2},
		{"fenced array", "```json\n[{\"clinicname\": \"A\", \"service\": \"B\"}]\n```", 1},
		{"garbage", "not json at all", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseProcedureList(tt.raw); len(got) != tt.want {
				t.Errorf("parseProcedureList() returned %d entries, want %d", len(got), tt.want)
			}
		})
	}
}
