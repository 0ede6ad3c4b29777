package intent

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/dubai-health/concierge/internal/llm"
	"github.com/dubai-health/concierge/internal/shared/metrics"
)

// Record is the structured description of a user's health query. All
// fields are advisory: consumers must tolerate empty values.
type Record struct {
	IsEmergency       bool     `json:"isEmergency"`
	ServiceQuery      string   `json:"serviceQuery"`
	QueryType         string   `json:"queryType"`
	MedicalSpecialty  string   `json:"medicalSpecialty"`
	InsuranceKeywords []string `json:"insuranceKeywords"`
	PricingKeywords   []string `json:"pricingKeywords"`
	FacilityKeywords  []string `json:"facilityKeywords"`
	UrgencyLevel      string   `json:"urgencyLevel"`
}

// Query types.
const (
	QueryHealthAdvice      = "health-advice"
	QueryPricingInquiry    = "pricing-inquiry"
	QueryFacilitySearch    = "facility-search"
	QueryInsuranceCoverage = "insurance-coverage"
	QueryEmergencyCare     = "emergency-care"
)

// emergencyKeywords drive the heuristic fallback when the model call
// fails. Matching any of these marks the query as an emergency.
var emergencyKeywords = []string{"emergency", "cut", "bleeding", "accident"}

const systemPrompt = `You are an expert healthcare intent analyzer for a Dubai-based health assistant. Analyze the user's message and respond with a comprehensive JSON object.

CRITICAL ANALYSIS REQUIREMENTS:
1. **Emergency Detection**: Set "isEmergency": true for any life-threatening situations, severe injuries, or urgent medical conditions requiring immediate care.

2. **Service Classification**: Identify the most specific medical service from these categories:
   - Skin/Dermatology: rashes, acne, eczema, psoriasis, moles, dry skin, itching, burns, allergic reactions
   - Heart/Cardiology: chest pain, palpitations, blood pressure, cholesterol, heart disease, shortness of breath
   - Bone/Orthopedics: fractures, joint pain, back pain, sports injuries, arthritis, muscle strains
   - Eye/Ophthalmology: vision problems, eye pain, cataracts, glaucoma, eye infections
   - ENT: ear infections, hearing loss, sinus problems, throat pain, voice issues, tinnitus
   - Digestive/Gastroenterology: stomach pain, nausea, diarrhea, constipation, acid reflux, liver issues
   - Brain/Neurology: headaches, migraines, seizures, memory problems, dizziness, numbness
   - Kidney/Urology: urinary problems, kidney stones, bladder issues, prostate problems
   - Hormones/Endocrinology: diabetes, thyroid issues, weight problems, hormone imbalances
   - Cancer/Oncology: lumps, unusual growths, cancer concerns, screening questions
   - Lung/Pulmonology: breathing problems, asthma, cough, pneumonia, sleep apnea
   - Women's Health/Gynecology: menstrual issues, pregnancy, fertility, breast health
   - Children/Pediatrics: child health, growth concerns, developmental issues, vaccinations
   - Mental Health/Psychiatry: depression, anxiety, stress, sleep disorders, behavioral issues
   - General Medicine: fever, fatigue, general wellness, preventive care

3. **Query Type Detection**: Identify the primary intent:
   - "health-advice": Medical information, symptoms, conditions, treatments
   - "pricing-inquiry": Cost questions, procedure prices, consultation fees
   - "facility-search": Hospital/clinic locations, services, appointments
   - "insurance-coverage": Insurance questions, coverage, claims, benefits
   - "emergency-care": Urgent medical situations requiring immediate attention

4. **Insurance Keywords**: Generate 3-5 relevant keywords for insurance matching based on the medical service and condition.

5. **Pricing Keywords**: Generate 3-5 relevant keywords for pricing searches.

6. **Facility Keywords**: Generate 3-5 relevant keywords for facility searches.

RESPONSE FORMAT:
{
  "isEmergency": boolean,
  "serviceQuery": "specific medical service consultation",
  "queryType": "health-advice|pricing-inquiry|facility-search|insurance-coverage|emergency-care",
  "medicalSpecialty": "specific specialty name",
  "insuranceKeywords": ["keyword1", "keyword2", "keyword3"],
  "pricingKeywords": ["keyword1", "keyword2", "keyword3"],
  "facilityKeywords": ["keyword1", "keyword2", "keyword3"],
  "urgencyLevel": "low|medium|high|critical"
}

EXAMPLES:
- "I have a severe headache" -> {"isEmergency": false, "serviceQuery": "neurology consultation", "queryType": "health-advice", "medicalSpecialty": "neurology", "urgencyLevel": "medium"}
- "How much does an MRI cost?" -> {"isEmergency": false, "serviceQuery": "MRI scan", "queryType": "pricing-inquiry", "medicalSpecialty": "radiology", "urgencyLevel": "low"}
- "Chest pain and shortness of breath" -> {"isEmergency": true, "serviceQuery": "emergency cardiology", "queryType": "emergency-care", "medicalSpecialty": "cardiology", "urgencyLevel": "critical"}`

// Classifier converts a free-text health query into a Record.
type Classifier struct {
	completer llm.Completer
	logger    *zap.Logger
}

// NewClassifier creates an intent classifier.
func NewClassifier(completer llm.Completer, logger *zap.Logger) *Classifier {
	return &Classifier{completer: completer, logger: logger}
}

// Classify analyzes the query. It never fails: on any model error or
// malformed reply it returns the heuristic fallback record.
func (c *Classifier) Classify(ctx context.Context, query string) Record {
	raw, err := c.completer.Complete(ctx, "intent_analysis", llm.Request{
		System:      systemPrompt,
		User:        query,
		JSONMode:    true,
		Temperature: 0.3,
	})
	if err != nil {
		c.logger.Warn("intent analysis failed, using heuristic fallback", zap.Error(err))
		metrics.RecordResolverFallback("intent", "heuristic")
		return Fallback(query)
	}

	var rec Record
	if jsonErr := json.Unmarshal([]byte(raw), &rec); jsonErr != nil {
		if salvaged, ok := llm.ExtractJSON(raw); ok {
			jsonErr = json.Unmarshal([]byte(salvaged), &rec)
		}
		if jsonErr != nil {
			c.logger.Warn("intent analysis returned malformed JSON, using heuristic fallback",
				zap.Error(jsonErr))
			metrics.RecordResolverFallback("intent", "heuristic")
			return Fallback(query)
		}
	}

	metrics.RecordResolverFallback("intent", "model")
	return rec
}

// Fallback builds a Record from the query text alone. It is the
// terminal error boundary for the classification stage.
func Fallback(query string) Record {
	lower := strings.ToLower(query)
	isEmergency := false
	for _, kw := range emergencyKeywords {
		if strings.Contains(lower, kw) {
			isEmergency = true
			break
		}
	}

	urgency := "low"
	if isEmergency {
		urgency = "critical"
	}

	return Record{
		IsEmergency:       isEmergency,
		ServiceQuery:      query,
		InsuranceKeywords: []string{"general-care"},
		UrgencyLevel:      urgency,
	}
}
