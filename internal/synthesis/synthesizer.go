package synthesis

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/dubai-health/concierge/internal/facility"
	"github.com/dubai-health/concierge/internal/insurance"
	"github.com/dubai-health/concierge/internal/intent"
	"github.com/dubai-health/concierge/internal/llm"
	"github.com/dubai-health/concierge/internal/shared/metrics"
)

const systemPrompt = `You are an expert AI Health Concierge for Dubai Healthcare Services. Your mission is to provide comprehensive, accurate, and helpful healthcare guidance covering medical advice, pricing information, facility details, and insurance guidance.

MANDATORY RESPONSE STRUCTURE:
⚠️ **Medical Disclaimer**: This information is for educational purposes only and should not replace professional medical advice. Please consult with a healthcare provider for proper diagnosis and treatment.

CORE RESPONSE PRINCIPLES:
1. **Medical Accuracy**: Base all medical information on established medical knowledge and best practices. ALWAYS prioritize any provided medical knowledge base content.
2. **Dubai Context**: All recommendations must be relevant to Dubai's healthcare system and regulations
3. **Comprehensive Coverage**: Address health advice, pricing, facilities, and insurance in every response
4. **Cultural Sensitivity**: Respect UAE cultural norms and Islamic healthcare principles
5. **Emergency Awareness**: Always prioritize urgent medical situations
6. **Source Priority**: When medical knowledge base content is provided, use it as your PRIMARY source and reference it explicitly

RESPONSE SECTIONS (Include ALL relevant sections):

## 🏥 **Medical Information**
- **Condition Overview**: Clear explanation of the health issue
- **Symptoms**: Detailed symptom description and what to watch for
- **Possible Causes**: Common and serious causes to consider
- **Risk Factors**: Who is most likely to be affected
- **Complications**: What could happen if untreated

## 🚨 **Urgency Assessment**
- **Immediate Care Needed**: When to seek emergency care
- **Routine Appointment**: When a regular doctor visit is appropriate
- **Self-Care**: Safe measures that can be taken at home
- **Red Flags**: Warning signs that require immediate medical attention

## 💰 **Pricing Information**
- **Consultation Costs**: Expected fees for doctor visits
- **Diagnostic Tests**: Costs for relevant tests and procedures
- **Treatment Expenses**: Estimated costs for common treatments
- **Insurance Coverage**: What insurance typically covers
- **Payment Options**: Available payment methods and plans

## 🏥 **Healthcare Facilities**
- **Recommended Hospitals**: Top facilities for this condition in Dubai
- **Specialist Clinics**: Specialized centers for specific treatments
- **Emergency Services**: Nearest emergency facilities if urgent
- **Appointment Booking**: How to schedule consultations
- **Location Details**: Areas and accessibility information

## 🛡️ **Insurance Guidance**
- **Coverage Types**: Which insurance plans typically cover this
- **Pre-Authorization**: If approval is needed before treatment
- **Claim Process**: How to file insurance claims
- **Out-of-Pocket**: Expected costs not covered by insurance
- **Alternative Options**: Other financial assistance available

## 📋 **Next Steps**
- **Immediate Actions**: What to do right now
- **Follow-up Care**: Ongoing monitoring and care needed
- **Prevention**: How to prevent recurrence or complications
- **Lifestyle Changes**: Recommended modifications for better health

SPECIAL INSTRUCTIONS:
- For EMERGENCY queries: Emphasize immediate medical attention and provide emergency contact information
- For PRICING queries: Include detailed cost breakdowns and insurance information
- For FACILITY queries: Provide specific hospital/clinic recommendations with contact details
- For INSURANCE queries: Explain coverage options and claim procedures in detail
- For GENERAL HEALTH: Provide comprehensive medical information with all supporting sections

DUBAI-SPECIFIC REQUIREMENTS:
- Reference DHA (Dubai Health Authority) guidelines when applicable
- Include both public and private healthcare options
- Mention SEHA, Emirates Health Services, and major private hospitals
- Consider expatriate and local population needs
- Include Arabic and English language service availability

QUALITY STANDARDS:
- Use clear, non-technical language while maintaining medical accuracy
- Provide specific, actionable advice
- Include relevant statistics and success rates when available
- Reference authoritative medical sources
- Maintain empathetic and supportive tone

Return response as JSON: {"responseText": "comprehensive markdown response"}`

// Input is everything the resolvers gathered for one query.
type Input struct {
	Query      string
	Intent     intent.Record
	HealthInfo string
	Facilities []facility.EmergencyFacility
	Pricing    []facility.Procedure
	Plans      []insurance.Plan
}

// Synthesizer turns gathered data into the final user-facing answer.
// The model reply is preferred; the hand-written templates guarantee
// an answer when it fails.
type Synthesizer struct {
	completer llm.Completer
	logger    *zap.Logger
}

// NewSynthesizer creates a response synthesizer.
func NewSynthesizer(completer llm.Completer, logger *zap.Logger) *Synthesizer {
	return &Synthesizer{completer: completer, logger: logger}
}

// Synthesize produces the final markdown answer. Never returns empty.
func (s *Synthesizer) Synthesize(ctx context.Context, in Input) string {
	raw, err := s.completer.Complete(ctx, "response_generation", llm.Request{
		System:      systemPrompt,
		User:        buildUserMessage(in),
		JSONMode:    true,
		Temperature: 0.5,
	})
	if err != nil {
		s.logger.Warn("response synthesis failed", zap.Error(err))
		metrics.RecordResolverFallback("synthesis", "template")
		return FallbackResponse(in.Query, in.Pricing)
	}

	if text := extractResponseText(raw); text != "" {
		metrics.RecordResolverFallback("synthesis", "model")
		return text
	}

	s.logger.Warn("unusable synthesis reply", zap.Int("length", len(raw)))
	metrics.RecordResolverFallback("synthesis", "template")
	return FallbackResponse(in.Query, in.Pricing)
}

func buildUserMessage(in Input) string {
	var b strings.Builder
	b.WriteString("\nHEALTH QUERY: \"" + in.Query + "\"\n\n")

	b.WriteString("QUERY ANALYSIS:\n")
	b.WriteString("- Type: " + valueOr(in.Intent.QueryType, intent.QueryHealthAdvice) + "\n")
	b.WriteString("- Medical Specialty: " + valueOr(in.Intent.MedicalSpecialty, "general medicine") + "\n")
	b.WriteString("- Urgency Level: " + valueOr(in.Intent.UrgencyLevel, "medium") + "\n")
	if in.Intent.IsEmergency {
		b.WriteString("- Emergency Status: YES - URGENT\n")
	} else {
		b.WriteString("- Emergency Status: No\n")
	}

	b.WriteString("\nAVAILABLE INFORMATION:\n")
	if len(in.HealthInfo) > 20 {
		b.WriteString("\nMEDICAL KNOWLEDGE BASE:\nHealth Information: " + in.HealthInfo + "\n")
		b.WriteString("\nCRITICAL INSTRUCTION: You MUST use the medical information provided above as your PRIMARY source. This is authoritative medical content that should form the foundation of your response. Extract and incorporate specific facts, symptoms, causes, treatments, and recommendations directly from this source material.\n")
	} else {
		b.WriteString("\nINSTRUCTION: No specific medical database content available. Use your comprehensive medical knowledge to provide accurate healthcare information while emphasizing the need for professional medical consultation.\n")
	}

	if len(in.Pricing) > 0 {
		lines := make([]string, len(in.Pricing))
		for i, p := range in.Pricing {
			lines[i] = p.Service + " at " + p.ClinicName + ": " + p.CashPrice
		}
		b.WriteString("\nPRICING DATA AVAILABLE:\nAvailable pricing information: " + strings.Join(lines, "; ") + "\n")
		b.WriteString("\nINSTRUCTION: Include this specific pricing information in your response and expand with general Dubai healthcare pricing context.\n")
	} else {
		b.WriteString("\nINSTRUCTION: Provide general Dubai healthcare pricing estimates based on typical market rates.\n")
	}

	if len(in.Facilities) > 0 {
		b.WriteString("\nAVAILABLE FACILITIES:\n")
		for _, f := range in.Facilities {
			b.WriteString("- " + f.Name + " at " + f.Address + "\n")
		}
	}
	if len(in.Plans) > 0 {
		b.WriteString("\nAVAILABLE INSURANCE PLANS:\n")
		for _, p := range in.Plans {
			b.WriteString("- " + p.PlanName + " by " + p.Provider + "\n")
		}
	}

	b.WriteString("\nGenerate a comprehensive response that addresses the user's " + valueOr(in.Intent.QueryType, "health") + " query with complete medical, pricing, facility, and insurance information relevant to Dubai healthcare.")
	return b.String()
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// extractResponseText pulls responseText out of the model reply,
// tolerating broken JSON by splitting on the field marker.
func extractResponseText(raw string) string {
	var payload struct {
		ResponseText string `json:"responseText"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err == nil && payload.ResponseText != "" {
		return payload.ResponseText
	}
	if salvaged, ok := llm.ExtractJSON(raw); ok && salvaged != raw {
		if err := json.Unmarshal([]byte(salvaged), &payload); err == nil && payload.ResponseText != "" {
			return payload.ResponseText
		}
	}
	if _, after, found := strings.Cut(raw, `responseText":"`); found {
		if text, _, ok := strings.Cut(after, `"}`); ok && text != "" {
			return text
		}
	}
	return ""
}
