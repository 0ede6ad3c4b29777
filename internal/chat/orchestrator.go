package chat

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dubai-health/concierge/internal/facility"
	"github.com/dubai-health/concierge/internal/healthinfo"
	"github.com/dubai-health/concierge/internal/insurance"
	"github.com/dubai-health/concierge/internal/intent"
	"github.com/dubai-health/concierge/internal/shared/metrics"
	"github.com/dubai-health/concierge/internal/synthesis"
)

// Result is the full outcome of one chat pipeline run.
type Result struct {
	Response            string
	Intent              intent.Record
	EmergencyFacilities []facility.EmergencyFacility
	RegularFacilities   []facility.EmergencyFacility
	Pricing             []facility.Procedure
	InsurancePlans      []insurance.Plan
}

// Orchestrator runs the chat pipeline: classify the query, gather
// facility, pricing, insurance, and health data concurrently, then
// synthesize the answer. Every stage degrades instead of failing, so
// Run always produces a Result.
type Orchestrator struct {
	classifier *intent.Classifier
	facilities *facility.Resolver
	insurance  *insurance.Resolver
	healthInfo *healthinfo.Resolver
	synth      *synthesis.Synthesizer
	logger     *zap.Logger
}

// NewOrchestrator wires the pipeline stages together.
func NewOrchestrator(
	classifier *intent.Classifier,
	facilities *facility.Resolver,
	ins *insurance.Resolver,
	health *healthinfo.Resolver,
	synth *synthesis.Synthesizer,
	logger *zap.Logger,
) *Orchestrator {
	return &Orchestrator{
		classifier: classifier,
		facilities: facilities,
		insurance:  ins,
		healthInfo: health,
		synth:      synth,
		logger:     logger,
	}
}

// Run executes the pipeline for one message. emit is called for each
// progress frame and may be nil for the sync endpoint.
func (o *Orchestrator) Run(ctx context.Context, message string, emit func(Event)) Result {
	if emit == nil {
		emit = func(Event) {}
	}
	log := o.logger.With(zap.String("runId", uuid.NewString()))

	emit(progress("intent_analysis", "Analyzing your health query...", "analyzing"))

	start := time.Now()
	rec := o.classifier.Classify(ctx, message)
	metrics.RecordPipelineStage("intent", time.Since(start))
	log.Info("query classified",
		zap.String("queryType", rec.QueryType),
		zap.String("specialty", rec.MedicalSpecialty),
		zap.Bool("isEmergency", rec.IsEmergency))

	emit(progress("intent_complete", "Query understood.", ""))
	emit(progress("data_collection_start", "Gathering information...", ""))

	var (
		emergency []facility.EmergencyFacility
		regular   []facility.EmergencyFacility
		pricing   []facility.Procedure
		plans     []insurance.Plan
		health    string
	)

	start = time.Now()
	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		if rec.IsEmergency {
			emergency = o.facilities.ResolveEmergency(ctx)
		} else {
			regular = o.facilities.ResolveRegular(ctx, rec, message)
		}
	}()
	go func() {
		defer wg.Done()
		pricing = o.facilities.ResolvePricing(ctx, rec.ServiceQuery, message)
	}()
	go func() {
		defer wg.Done()
		plans = o.insurance.Resolve(ctx, rec.InsuranceKeywords, rec.IsEmergency)
	}()
	go func() {
		defer wg.Done()
		health = o.healthInfo.Resolve(ctx, message)
	}()
	wg.Wait()
	metrics.RecordPipelineStage("data_collection", time.Since(start))

	emit(progress("data_collection_complete", "Information gathered.", ""))
	emit(progress("response_generation", "Synthesizing your answer...", ""))

	facilities := regular
	if rec.IsEmergency {
		facilities = emergency
	}

	start = time.Now()
	response := o.synth.Synthesize(ctx, synthesis.Input{
		Query:      message,
		Intent:     rec,
		HealthInfo: health,
		Facilities: facilities,
		Pricing:    pricing,
		Plans:      plans,
	})
	metrics.RecordPipelineStage("synthesis", time.Since(start))

	return Result{
		Response:            response,
		Intent:              rec,
		EmergencyFacilities: emptyIfNil(emergency),
		RegularFacilities:   emptyIfNil(regular),
		Pricing:             emptyIfNil(pricing),
		InsurancePlans:      plans,
	}
}

// emptyIfNil keeps JSON output as [] instead of null for branches
// that did not run.
func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
