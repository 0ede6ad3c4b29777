package insurance

// Plan is a health insurance product. Premium is the annual premium
// in AED. JSON field names match what the chat frontend renders.
type Plan struct {
	PlanName string   `json:"planName"`
	Provider string   `json:"provider"`
	Premium  float64  `json:"premium"`
	Benefits []string `json:"benefits"`
}

// fallbackCatalog is the fixed plan catalog returned whenever the
// model-backed search yields nothing usable. Entries are reference
// data and must not be mutated.
var fallbackCatalog = []Plan{
	{
		PlanName: "Essential Health Plan",
		Provider: "UAE Insurance Group",
		Premium:  450,
		Benefits: []string{
			"Outpatient consultations (all specialties)",
			"Emergency care coverage",
			"Prescription medications",
			"Basic diagnostic tests",
			"Preventive care services",
			"Dermatology consultations",
			"ENT specialist visits",
		},
	},
	{
		PlanName: "Comprehensive Care Plus",
		Provider: "Dubai Health Insurance",
		Premium:  850,
		Benefits: []string{
			"Full hospitalization coverage",
			"All specialist consultations (cardiology, neurology, oncology)",
			"Advanced diagnostics & imaging",
			"Dental and vision care",
			"Maternity & women's health benefits",
			"Mental health & therapy coverage",
			"Orthopedic & sports medicine",
			"Gastroenterology & endocrinology",
			"International coverage",
		},
	},
	{
		PlanName: "Family Protection Plan",
		Provider: "Emirates Health Shield",
		Premium:  1200,
		Benefits: []string{
			"Family coverage for up to 4 members",
			"Comprehensive medical care (all specialties)",
			"Pediatric & children's health",
			"Emergency evacuation",
			"Mental health & counseling support",
			"Cancer screening & oncology care",
			"Respiratory & pulmonology services",
			"Rheumatology & autoimmune care",
			"Wellness & preventive programs",
			"No waiting period for most services",
		},
	},
	{
		PlanName: "Premium Specialist Plan",
		Provider: "Dubai Medical Insurance",
		Premium:  1500,
		Benefits: []string{
			"Unlimited specialist consultations",
			"Advanced cancer treatment coverage",
			"Neurological & brain disorder care",
			"Heart surgery & cardiac procedures",
			"Organ transplant coverage",
			"Fertility & reproductive health",
			"Plastic & reconstructive surgery",
			"Travel medicine & vaccinations",
			"Home healthcare services",
			"VIP hospital room upgrades",
		},
	},
	{
		PlanName: "Senior Care Plan",
		Provider: "Emirates Senior Health",
		Premium:  950,
		Benefits: []string{
			"Age 50+ specialized coverage",
			"Chronic disease management",
			"Diabetes & endocrine care",
			"Cardiology & heart monitoring",
			"Orthopedic & joint replacement",
			"Memory care & neurology",
			"Regular health screenings",
			"Medication management",
			"Physical therapy coverage",
			"24/7 medical helpline",
		},
	},
	{
		PlanName: "Young Professional Plan",
		Provider: "Dubai Youth Insurance",
		Premium:  350,
		Benefits: []string{
			"Basic outpatient care",
			"Sports injury coverage",
			"Mental health & stress management",
			"Dermatology & skin care",
			"Reproductive health services",
			"Travel medicine",
			"Preventive screenings",
			"Telemedicine consultations",
			"Wellness programs",
			"Emergency care",
		},
	},
}

// FallbackCatalog returns a copy of the fixed plan catalog.
func FallbackCatalog() []Plan {
	out := make([]Plan, len(fallbackCatalog))
	copy(out, fallbackCatalog)
	return out
}
