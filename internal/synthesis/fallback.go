package synthesis

import (
	"strings"

	"github.com/dubai-health/concierge/internal/facility"
)

const disclaimer = "⚠️ **Medical Disclaimer**: This information is for educational purposes only and should not replace professional medical advice. Please consult with a healthcare provider for proper diagnosis and treatment."

// FallbackResponse builds a hand-written answer when the model is
// unavailable. Templates are keyed on query keywords, most specific
// first, and each interpolates available pricing data.
func FallbackResponse(query string, pricing []facility.Procedure) string {
	lower := strings.ToLower(query)
	pricingInfo := formatPricing(pricing)

	switch {
	case containsAny(lower, "cut", "bleeding", "wound"):
		return disclaimer + `

## Immediate Care for Cuts/Wounds

If you have a cut, here's what you should do:

**Immediate Steps:**
1. **Stop the bleeding** - Apply direct pressure with a clean cloth
2. **Clean the wound** - Rinse gently with clean water if possible
3. **Assess severity** - Deep cuts, excessive bleeding, or cuts that won't stop bleeding need immediate medical attention

**Seek Emergency Care If:**
- The cut is deep (you can see fat, muscle, or bone)
- Bleeding won't stop after 10-15 minutes of direct pressure
- The cut is longer than 1/2 inch
- You can't clean debris from the wound
- Signs of infection develop (redness, warmth, swelling, pus)

**Follow-up Care:**
- Keep the wound clean and dry
- Change bandages regularly
- Watch for signs of infection
- Consider a tetanus shot if you're not up to date` + pricingInfo + `

Please visit one of the recommended emergency facilities if you're concerned about the severity of your injury.`

	case containsAny(lower, "iv", "nutrition", "drip", "hydration"):
		return disclaimer + `

## IV Therapy & Nutrition Services

IV therapy is a popular wellness treatment in Dubai that delivers vitamins, minerals, and hydration directly into your bloodstream.

**What to Expect:**
- **During the procedure**: You'll feel a small pinch when the needle is inserted, similar to a blood draw
- **Sensation**: Cool feeling as the IV fluid enters your arm, completely painless after insertion
- **Duration**: Most sessions take 30-60 minutes depending on the treatment
- **Comfort**: You can relax, read, or use your phone during the session

**Common Benefits:**
- Immediate hydration (you may feel more energized within hours)
- Better nutrient absorption than oral supplements
- Potential improvement in energy levels and skin appearance
- Hangover relief (if applicable)

**After Treatment:**
- Mild soreness at injection site is normal for 24-48 hours
- Increased urination is common as your body processes the extra fluids
- Most people feel effects within 2-4 hours` + pricingInfo + `

**When to Choose IV Therapy:**
- Dehydration from travel, exercise, or illness
- Vitamin deficiencies confirmed by blood tests
- Wellness maintenance and energy boost
- Recovery support after intense physical activity`

	case strings.Contains(lower, "yellow") && strings.Contains(lower, "eyes"):
		return disclaimer + `

## Yellow Eyes (Jaundice) - Important Information

Yellow discoloration of the eyes (scleral icterus) can indicate several medical conditions and should be evaluated by a healthcare professional.

**Possible Causes:**
- **Liver conditions**: Hepatitis, cirrhosis, liver dysfunction
- **Gallbladder issues**: Gallstones, bile duct obstruction
- **Blood disorders**: Hemolytic anemia, sickle cell disease
- **Medications**: Certain antibiotics, pain relievers, or supplements
- **Infections**: Viral hepatitis, malaria (in endemic areas)
- **Genetic conditions**: Gilbert's syndrome, other inherited disorders

**Associated Symptoms to Watch For:**
- Dark urine or pale stools
- Abdominal pain (especially upper right side)
- Nausea, vomiting, or loss of appetite
- Fatigue or weakness
- Fever or chills
- Skin itching
- Swelling in legs or abdomen

**When to Seek Immediate Medical Care:**
- Severe abdominal pain
- High fever (over 38.5°C/101.3°F)
- Confusion or altered mental state
- Difficulty breathing
- Rapid worsening of yellow color
- Vomiting blood or black stools

**What to Do:**
1. **Schedule a medical appointment promptly** - Yellow eyes warrant professional evaluation
2. **Avoid alcohol** completely until you see a doctor
3. **Stay hydrated** with water
4. **List your medications** and supplements to discuss with your doctor
5. **Monitor symptoms** and note any changes` + pricingInfo + `

**Important**: Yellow eyes can indicate serious liver or blood conditions. Please see a DHA-licensed healthcare provider in Dubai as soon as possible for proper diagnosis and treatment according to Dubai Health Authority protocols.`

	case containsAny(lower, "skin", "dry", "texture", "crocodile", "scaly", "flaky", "dermat"):
		return disclaimer + `

## Dry, Textured Skin - Dermatological Information

Dry skin with a rough, "crocodile-like" texture can indicate several skin conditions that benefit from professional dermatological evaluation.

**Possible Causes:**
- **Xerosis (severe dry skin)**: Most common cause of rough, scaly skin texture
- **Atopic dermatitis (eczema)**: Chronic inflammatory skin condition
- **Ichthyosis**: Genetic condition causing fish-scale-like skin
- **Psoriasis**: Autoimmune condition causing thick, scaly patches
- **Environmental factors**: Low humidity, harsh soaps, hot showers
- **Age-related changes**: Decreased oil production with aging
- **Underlying conditions**: Thyroid disorders, diabetes, kidney disease

**Associated Symptoms to Monitor:**
- Itching or burning sensation
- Cracking or bleeding of skin
- Redness or inflammation
- Thick, scaly patches
- Changes in skin color
- Spreading to other body areas

**When to See a Dermatologist:**
- Severe dryness that doesn't improve with moisturizing
- Cracking, bleeding, or infected-looking areas
- Intense itching that interferes with sleep
- Sudden onset or rapid worsening
- Skin changes affecting large body areas
- Signs of infection (warmth, pus, red streaking)

**Immediate Care Measures:**
1. **Gentle cleansing** - Use mild, fragrance-free cleansers
2. **Moisturize immediately** after bathing while skin is damp
3. **Use thick moisturizers** or ointments rather than lotions
4. **Avoid hot water** - use lukewarm water for bathing
5. **Humidify your environment** especially during dry seasons
6. **Protect your skin** from harsh weather and chemicals` + pricingInfo + `

**Important**: Persistent skin texture changes warrant dermatological evaluation to rule out underlying conditions and receive appropriate treatment.`

	default:
		return disclaimer + `

## Health Guidance

I understand you have a health concern. While I can provide general information, it's important to consult with a qualified healthcare professional for proper evaluation, diagnosis, and treatment.

**General Recommendations:**
- Schedule a consultation with an appropriate healthcare provider
- Be prepared to describe your symptoms in detail
- Bring any relevant medical history or current medications
- Don't hesitate to ask questions during your appointment` + pricingInfo + `

The facilities and pricing information in the other tabs can help you find appropriate care in Dubai. If this is urgent, please don't delay in seeking medical attention.`
	}
}

func formatPricing(pricing []facility.Procedure) string {
	if len(pricing) == 0 {
		return ""
	}
	lines := make([]string, len(pricing))
	for i, p := range pricing {
		lines[i] = "- " + p.Service + ": " + p.CashPrice + " (" + p.ClinicName + ")"
	}
	return "\n\n**Cost Information:**\n" + strings.Join(lines, "\n")
}

func containsAny(s string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
